package memory

import (
	"context"

	"cash-wallet-ledger/internal/core/domain"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	store *Store
}

// NewAuditRepo creates an AuditRepo over store.
func NewAuditRepo(store *Store) *AuditRepo {
	return &AuditRepo{store: store}
}

func (r *AuditRepo) Create(ctx context.Context, event *domain.AuditEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.audit = append(r.store.audit, *event)
	return nil
}

// Events returns a snapshot of recorded events.
func (r *AuditRepo) Events() []domain.AuditEvent {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return append([]domain.AuditEvent(nil), r.store.audit...)
}
