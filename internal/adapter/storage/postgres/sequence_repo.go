package postgres

import (
	"context"
	"fmt"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SequenceRepo implements ports.SequenceRepository.
type SequenceRepo struct{}

// NewSequenceRepo creates a new SequenceRepo.
func NewSequenceRepo() *SequenceRepo {
	return &SequenceRepo{}
}

// Increment bumps the counter in a single upsert; the row lock it takes is held until tx ends.
func (r *SequenceRepo) Increment(ctx context.Context, tx pgx.Tx, companyID uuid.UUID, series domain.SeriesCode) (int64, error) {
	query := `INSERT INTO sequence_counters (company_id, counter_code, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (company_id, counter_code)
		DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value`

	var value int64
	if err := tx.QueryRow(ctx, query, companyID, string(series)).Scan(&value); err != nil {
		return 0, fmt.Errorf("increment sequence %s: %w", series, err)
	}
	return value, nil
}
