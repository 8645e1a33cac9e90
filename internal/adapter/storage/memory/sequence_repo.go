package memory

import (
	"context"
	"fmt"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SequenceRepo implements ports.SequenceRepository.
type SequenceRepo struct {
	store *Store
}

// NewSequenceRepo creates a SequenceRepo over store.
func NewSequenceRepo(store *Store) *SequenceRepo {
	return &SequenceRepo{store: store}
}

// Increment bumps the counter, holding its lock until tx ends.
func (r *SequenceRepo) Increment(ctx context.Context, tx pgx.Tx, companyID uuid.UUID, series domain.SeriesCode) (int64, error) {
	mt, err := asTx(tx)
	if err != nil {
		return 0, err
	}
	if err := mt.lock(ctx, counterLockKey(companyID, series)); err != nil {
		return 0, fmt.Errorf("lock sequence %s: %w", series, err)
	}

	key := counterKey{companyID, series}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	prev, existed := r.store.counters[key]
	r.store.counters[key] = prev + 1
	mt.record(func() {
		if existed {
			r.store.counters[key] = prev
		} else {
			delete(r.store.counters, key)
		}
	})
	return prev + 1, nil
}

// Locker implements ports.RowLocker.
type Locker struct{}

// NewLocker creates a Locker.
func NewLocker() *Locker {
	return &Locker{}
}

// LockEmployment serialises transactions touching the same employment record.
func (l *Locker) LockEmployment(ctx context.Context, tx pgx.Tx, employmentID uuid.UUID) error {
	mt, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := mt.lock(ctx, rowLockKey("employment", employmentID)); err != nil {
		return fmt.Errorf("lock employment %s: %w", employmentID, err)
	}
	return nil
}
