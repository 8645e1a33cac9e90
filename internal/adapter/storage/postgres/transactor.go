package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Transactor opens the transactions every ledger write runs in. Row and
// advisory locks taken inside are held until Commit or Rollback.
type Transactor struct {
	pool        Pool
	lockTimeout time.Duration
}

// NewTransactor creates a Transactor. A positive lockTimeout bounds how long a
// statement waits on a wallet, sequence or employment lock before failing.
func NewTransactor(pool Pool, lockTimeout time.Duration) *Transactor {
	return &Transactor{pool: pool, lockTimeout: lockTimeout}
}

// Begin implements ports.DBTransactor.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	if t.lockTimeout <= 0 {
		return tx, nil
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", t.lockTimeout.Milliseconds())); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("setting lock timeout: %w", err)
	}
	return tx, nil
}
