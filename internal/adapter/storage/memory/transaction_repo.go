package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionRepo implements ports.CashTransactionRepository.
type TransactionRepo struct {
	store *Store
}

// NewTransactionRepo creates a TransactionRepo over store.
func NewTransactionRepo(store *Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.CashTransaction) error {
	mt, err := asTx(tx)
	if err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.transactions[t.ID]; ok {
		return fmt.Errorf("cash transaction %s already exists", t.ID)
	}
	if t.ReceiptNo != nil {
		for _, existing := range r.store.transactions {
			if existing.CompanyID == t.CompanyID && existing.ReceiptNo != nil && *existing.ReceiptNo == *t.ReceiptNo {
				return fmt.Errorf("receipt number %s already used", *t.ReceiptNo)
			}
		}
	}
	cp := *t
	r.store.transactions[t.ID] = &cp
	mt.record(func() { delete(r.store.transactions, t.ID) })
	return nil
}

func (r *TransactionRepo) GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.CashTransaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.transactions[id]
	if !ok || t.CompanyID != companyID {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *TransactionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*domain.CashTransaction, error) {
	mt, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if err := mt.lock(ctx, rowLockKey("cash_transaction", id)); err != nil {
		return nil, fmt.Errorf("lock cash transaction: %w", err)
	}
	return r.GetByID(ctx, companyID, id)
}

func (r *TransactionRepo) UpdateAttachment(ctx context.Context, tx pgx.Tx, id uuid.UUID, attachmentRef *string) error {
	return r.mutateDraft(ctx, tx, id, func(t *domain.CashTransaction) {
		t.AttachmentRef = attachmentRef
	})
}

func (r *TransactionRepo) MarkApproved(ctx context.Context, tx pgx.Tx, id uuid.UUID, receiptNo string, balanceAfter decimal.Decimal, approvedAt time.Time) error {
	return r.mutateDraft(ctx, tx, id, func(t *domain.CashTransaction) {
		t.MarkApproved(receiptNo, balanceAfter, approvedAt)
	})
}

func (r *TransactionRepo) mutateDraft(ctx context.Context, tx pgx.Tx, id uuid.UUID, fn func(*domain.CashTransaction)) error {
	mt, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := mt.lock(ctx, rowLockKey("cash_transaction", id)); err != nil {
		return fmt.Errorf("lock cash transaction: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	t, ok := r.store.transactions[id]
	if !ok || !t.IsDraft() {
		return fmt.Errorf("draft transaction not found: %s", id)
	}
	prev := *t
	next := *t
	fn(&next)
	r.store.transactions[id] = &next
	mt.record(func() { r.store.transactions[id] = &prev })
	return nil
}

func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.CashTransaction, int64, error) {
	r.store.mu.Lock()
	var matched []domain.CashTransaction
	for _, t := range r.store.transactions {
		if matchesListParams(t, params) {
			matched = append(matched, *t)
		}
	}
	r.store.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start < 0 {
		start = 0
	}
	if start >= len(matched) {
		return []domain.CashTransaction{}, total, nil
	}
	end := start + params.PageSize
	if params.PageSize <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func matchesListParams(t *domain.CashTransaction, p ports.TransactionListParams) bool {
	if t.CompanyID != p.CompanyID {
		return false
	}
	if p.EmploymentID != nil && (t.EmploymentID == nil || *t.EmploymentID != *p.EmploymentID) {
		return false
	}
	if p.BatchID != nil && (t.BatchID == nil || *t.BatchID != *p.BatchID) {
		return false
	}
	if p.Status != nil && t.Status != *p.Status {
		return false
	}
	if p.Type != nil && t.Type != *p.Type {
		return false
	}
	if p.Range != nil && !p.Range.Contains(t.Date) {
		return false
	}
	return true
}

func (r *TransactionRepo) SumApproved(ctx context.Context, companyID uuid.UUID, employmentID *uuid.UUID, rng domain.DateRange) (domain.LedgerSums, error) {
	sums := domain.LedgerSums{}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.transactions {
		if !approvedInRange(t, companyID, rng) {
			continue
		}
		if employmentID != nil && (t.EmploymentID == nil || *t.EmploymentID != *employmentID) {
			continue
		}
		sums = sums.Include(t.Type, t.Amount)
	}
	return sums, nil
}

func (r *TransactionRepo) SumApprovedByEmployee(ctx context.Context, companyID uuid.UUID, rng domain.DateRange) (map[uuid.UUID]domain.LedgerSums, error) {
	result := make(map[uuid.UUID]domain.LedgerSums)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.transactions {
		if t.EmploymentID == nil || !approvedInRange(t, companyID, rng) {
			continue
		}
		result[*t.EmploymentID] = result[*t.EmploymentID].Include(t.Type, t.Amount)
	}
	return result, nil
}

func approvedInRange(t *domain.CashTransaction, companyID uuid.UUID, rng domain.DateRange) bool {
	return t.CompanyID == companyID && t.Status == domain.TransactionStatusApproved && rng.Contains(t.Date)
}
