package postgres

import (
	"context"
	"errors"
)

var errSchemaMissing = errors.New("ledger schema not applied")

// HealthCheck reports PostgreSQL as healthy once it answers and the ledger
// tables exist.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	var ready bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('cash_transactions') IS NOT NULL`).Scan(&ready); err != nil {
		return err
	}
	if !ready {
		return errSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
