package memory

import (
	"context"
	"fmt"
	"time"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HandoverRepo implements ports.HandoverRepository.
type HandoverRepo struct {
	store *Store
}

// NewHandoverRepo creates a HandoverRepo over store.
func NewHandoverRepo(store *Store) *HandoverRepo {
	return &HandoverRepo{store: store}
}

func (r *HandoverRepo) Create(ctx context.Context, tx pgx.Tx, b *domain.HandoverBatch) error {
	mt, err := asTx(tx)
	if err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.batches[b.ID]; ok {
		return fmt.Errorf("handover batch %s already exists", b.ID)
	}
	r.store.batches[b.ID] = copyBatch(b)
	mt.record(func() { delete(r.store.batches, b.ID) })
	return nil
}

func (r *HandoverRepo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.HandoverBatch, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.batches[id]
	if !ok || b.CompanyID != companyID {
		return nil, nil
	}
	return copyBatch(b), nil
}

func (r *HandoverRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*domain.HandoverBatch, error) {
	mt, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if err := mt.lock(ctx, rowLockKey("handover_batch", id)); err != nil {
		return nil, fmt.Errorf("lock handover batch: %w", err)
	}
	return r.GetByID(ctx, companyID, id)
}

func (r *HandoverRepo) MarkApproved(ctx context.Context, tx pgx.Tx, id uuid.UUID, approvedAt time.Time) error {
	mt, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := mt.lock(ctx, rowLockKey("handover_batch", id)); err != nil {
		return fmt.Errorf("lock handover batch: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.batches[id]
	if !ok || b.Status != domain.TransactionStatusDraft {
		return fmt.Errorf("draft handover batch not found: %s", id)
	}
	prev := copyBatch(b)
	next := copyBatch(b)
	at := approvedAt
	next.Status = domain.TransactionStatusApproved
	next.ApprovedAt = &at
	r.store.batches[id] = next
	mt.record(func() { r.store.batches[id] = prev })
	return nil
}

func copyBatch(b *domain.HandoverBatch) *domain.HandoverBatch {
	cp := *b
	cp.Lines = append([]domain.HandoverExpenseLine(nil), b.Lines...)
	return &cp
}
