package ports

import (
	"context"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// Collaborators owned by neighbouring subsystems. The ledger only reads through them.

// EmploymentDirectory resolves employment records.
type EmploymentDirectory interface {
	// GetActive returns nil, nil when the record is absent or no longer active.
	GetActive(ctx context.Context, companyID, employmentID uuid.UUID) (*domain.Employment, error)
	ListActive(ctx context.Context, companyID uuid.UUID) ([]domain.Employment, error)
}

// FileStore verifies uploaded files.
type FileStore interface {
	// Verify returns the canonical ref, or "" when the file does not exist for the company.
	Verify(ctx context.Context, companyID uuid.UUID, fileRef string) (string, error)
}

// CompanyDirectory resolves tenant settings.
type CompanyDirectory interface {
	Profile(ctx context.Context, companyID uuid.UUID) (*domain.CompanyProfile, error)
}

// OperationsAggregate reads the daily operations stream.
type OperationsAggregate interface {
	Sums(ctx context.Context, companyID uuid.UUID, employmentID *uuid.UUID, r domain.DateRange) (domain.OperationsSums, error)
	SumsByEmployee(ctx context.Context, companyID uuid.UUID, r domain.DateRange) (map[uuid.UUID]domain.OperationsSums, error)
}

// AuditSink receives audit events. Record never blocks or fails the caller.
type AuditSink interface {
	Record(ctx context.Context, event *domain.AuditEvent)
}

// AuditPublisher forwards audit events to a message broker.
type AuditPublisher interface {
	Publish(ctx context.Context, event *domain.AuditEvent) error
}
