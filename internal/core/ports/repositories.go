package ports

import (
	"context"
	"time"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for supervisor wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type WalletRepository interface {
	// Insert creates the wallet if it does not exist yet; an existing row is left untouched.
	Insert(ctx context.Context, tx pgx.Tx, wallet *domain.Wallet) error
	Get(ctx context.Context, companyID, userID uuid.UUID) (*domain.Wallet, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, companyID, userID uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, companyID, userID uuid.UUID, balance decimal.Decimal) error
}

// SequenceRepository owns the per-company document counters.
type SequenceRepository interface {
	// Increment atomically bumps the counter (creating it at 1) and returns the new value.
	Increment(ctx context.Context, tx pgx.Tx, companyID uuid.UUID, series domain.SeriesCode) (int64, error)
}

// CashTransactionRepository defines persistence operations for ledger rows.
type CashTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.CashTransaction) error
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.CashTransaction, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*domain.CashTransaction, error)
	UpdateAttachment(ctx context.Context, tx pgx.Tx, id uuid.UUID, attachmentRef *string) error
	// MarkApproved only transitions rows that are still DRAFT.
	MarkApproved(ctx context.Context, tx pgx.Tx, id uuid.UUID, receiptNo string, balanceAfter decimal.Decimal, approvedAt time.Time) error
	List(ctx context.Context, params TransactionListParams) ([]domain.CashTransaction, int64, error)
	// Aggregates over APPROVED rows
	SumApproved(ctx context.Context, companyID uuid.UUID, employmentID *uuid.UUID, r domain.DateRange) (domain.LedgerSums, error)
	SumApprovedByEmployee(ctx context.Context, companyID uuid.UUID, r domain.DateRange) (map[uuid.UUID]domain.LedgerSums, error)
}

// TransactionListParams holds filter + pagination for listing ledger rows.
type TransactionListParams struct {
	CompanyID    uuid.UUID
	EmploymentID *uuid.UUID
	BatchID      *uuid.UUID
	Status       *domain.TransactionStatus
	Type         *domain.TransactionType
	Range        *domain.DateRange
	Page         int
	PageSize     int
}

// HandoverRepository persists handover batches with their expense lines.
type HandoverRepository interface {
	Create(ctx context.Context, tx pgx.Tx, batch *domain.HandoverBatch) error
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.HandoverBatch, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*domain.HandoverBatch, error)
	MarkApproved(ctx context.Context, tx pgx.Tx, id uuid.UUID, approvedAt time.Time) error
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Create(ctx context.Context, event *domain.AuditEvent) error
}

// RowLocker takes transaction-scoped locks on records the ledger does not own.
type RowLocker interface {
	LockEmployment(ctx context.Context, tx pgx.Tx, employmentID uuid.UUID) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
