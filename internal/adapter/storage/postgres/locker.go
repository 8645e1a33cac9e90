package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AdvisoryLocker implements ports.RowLocker with transaction-scoped advisory locks.
type AdvisoryLocker struct{}

// NewAdvisoryLocker creates a new AdvisoryLocker.
func NewAdvisoryLocker() *AdvisoryLocker {
	return &AdvisoryLocker{}
}

// LockEmployment blocks until no other transaction holds the employment's lock.
// Released automatically at commit or rollback.
func (l *AdvisoryLocker) LockEmployment(ctx context.Context, tx pgx.Tx, employmentID uuid.UUID) error {
	query := `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

	if _, err := tx.Exec(ctx, query, "employment:"+employmentID.String()); err != nil {
		return fmt.Errorf("lock employment %s: %w", employmentID, err)
	}
	return nil
}
