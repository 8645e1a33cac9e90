package ports

import (
	"context"
	"time"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(companyID, userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	CompanyID uuid.UUID
	UserID    uuid.UUID
}

// IdempotencyCache stores replayable responses for client-supplied Idempotency-Keys.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Claim marks key as in flight. False means another request holds it.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// --- Service Ports (Business Logic) ---

// LedgerService records receipts, loans and deductions through the draft/approve workflow.
type LedgerService interface {
	CreateReceipt(ctx context.Context, req CreateReceiptRequest) (*domain.CashTransaction, error)
	CreateLoan(ctx context.Context, req CreateLoanRequest) (*domain.CashTransaction, error)
	CreateDeduction(ctx context.Context, req CreateDeductionRequest) (*domain.CashTransaction, error)
	UpdateTransactionStatus(ctx context.Context, req UpdateStatusRequest) (*domain.CashTransaction, error)
	GetTransaction(ctx context.Context, companyID, id uuid.UUID) (*domain.CashTransaction, error)
	ListTransactions(ctx context.Context, params TransactionListParams) ([]domain.CashTransaction, int64, error)
}

// CreateReceiptRequest holds validated input for a cash receipt from an employee.
type CreateReceiptRequest struct {
	CompanyID     uuid.UUID
	ActorUserID   uuid.UUID
	EmploymentID  uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	AttachmentRef *string
	Description   *string
	Action        domain.SubmitAction
}

// CreateLoanRequest holds validated input for a loan paid out of custody.
type CreateLoanRequest struct {
	CompanyID          uuid.UUID
	ActorUserID        uuid.UUID
	EmploymentID       uuid.UUID
	Amount             decimal.Decimal
	Date               time.Time
	Reason             *string
	SupervisorOverride *uuid.UUID // disbursing supervisor, defaults to the actor
	Action             domain.SubmitAction
}

// CreateDeductionRequest holds validated input for a deduction credited to custody.
type CreateDeductionRequest struct {
	CompanyID    uuid.UUID
	ActorUserID  uuid.UUID
	EmploymentID uuid.UUID
	Amount       decimal.Decimal
	Date         time.Time
	Reason       *string
	Action       domain.SubmitAction
}

// UpdateStatusRequest moves a draft forward or re-saves it.
type UpdateStatusRequest struct {
	CompanyID     uuid.UUID
	ActorUserID   uuid.UUID
	TransactionID uuid.UUID
	Action        domain.SubmitAction
	AttachmentRef *string
}

// HandoverService closes out a supervisor's wallet period.
type HandoverService interface {
	Handover(ctx context.Context, req HandoverRequest) (*domain.HandoverBatch, error)
	ApproveHandover(ctx context.Context, companyID, actorUserID, batchID uuid.UUID) (*domain.HandoverBatch, error)
	GetHandover(ctx context.Context, companyID, batchID uuid.UUID) (*domain.HandoverBatch, error)
}

// HandoverRequest holds validated input for a handover.
type HandoverRequest struct {
	CompanyID        uuid.UUID
	SupervisorUserID uuid.UUID
	Date             time.Time
	Lines            []ExpenseLineInput
	Action           domain.SubmitAction
}

// ExpenseLineInput is one expense in a handover request.
type ExpenseLineInput struct {
	Statement  string
	Amount     decimal.Decimal
	ReceiptRef *string
}

// ExposureService computes outstanding cash per employee.
type ExposureService interface {
	DueForEmployee(ctx context.Context, companyID, employmentID uuid.UUID, r domain.DateRange) (decimal.Decimal, error)
	NotCollectedTotal(ctx context.Context, companyID uuid.UUID, r domain.DateRange) (decimal.Decimal, error)
	ListEmployees(ctx context.Context, companyID uuid.UUID, r domain.DateRange, filter domain.StatusFilter) ([]domain.EmployeeExposure, error)
	EmployeeDetail(ctx context.Context, companyID, employmentID uuid.UUID, r domain.DateRange) (*EmployeeDetail, error)
	StatsForSupervisor(ctx context.Context, companyID, supervisorUserID uuid.UUID, r domain.DateRange) (*domain.SupervisorStats, error)
}

// EmployeeDetail is the single-employee breakdown with its ledger rows.
type EmployeeDetail struct {
	Exposure     domain.EmployeeExposure
	Transactions []domain.CashTransaction
}

// WalletService exposes read access to custody balances.
type WalletService interface {
	Balance(ctx context.Context, companyID, userID uuid.UUID) (decimal.Decimal, error)
}

// ExportService renders listings as spreadsheets.
type ExportService interface {
	EmployeesWorkbook(ctx context.Context, companyID uuid.UUID, r domain.DateRange, filter domain.StatusFilter) ([]byte, error)
}
