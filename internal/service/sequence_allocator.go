package service

import (
	"context"
	"fmt"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SequenceAllocator issues per-company, per-series document numbers.
// Allocation happens inside the caller's transaction, so a rolled back
// approval leaves no gap.
type SequenceAllocator struct {
	repo ports.SequenceRepository
}

// NewSequenceAllocator creates a new SequenceAllocator.
func NewSequenceAllocator(repo ports.SequenceRepository) *SequenceAllocator {
	return &SequenceAllocator{repo: repo}
}

// Next returns the next value of the series, starting at 1.
func (a *SequenceAllocator) Next(ctx context.Context, tx pgx.Tx, companyID uuid.UUID, series domain.SeriesCode) (int64, error) {
	n, err := a.repo.Increment(ctx, tx, companyID, series)
	if err != nil {
		return 0, fmt.Errorf("allocate %s: %w", series, err)
	}
	return n, nil
}

// NextNumber allocates and formats a document number such as ACME-RCPT-000042.
func (a *SequenceAllocator) NextNumber(ctx context.Context, tx pgx.Tx, companyID uuid.UUID, companySlug string, series domain.SeriesCode) (string, error) {
	n, err := a.Next(ctx, tx, companyID, series)
	if err != nil {
		return "", err
	}
	return domain.FormatDocumentNumber(companySlug, series, n), nil
}
