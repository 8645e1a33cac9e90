package postgres

import (
	"context"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, event *domain.AuditEvent) error {
	var details *string
	if event.Details != "" {
		details = &event.Details
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (id, company_id, actor_user_id, action, resource_type, resource_id, details, created_at)
 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.ID, event.CompanyID, event.ActorUserID, string(event.Action), event.ResourceType,
		event.ResourceID, details, event.CreatedAt,
	)
	return err
}
