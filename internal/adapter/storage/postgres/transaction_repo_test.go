package postgres

import (
	"context"
	"testing"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestCashTransaction(companyID uuid.UUID) *domain.CashTransaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	employmentID := uuid.New()
	return &domain.CashTransaction{
		ID:               uuid.New(),
		CompanyID:        companyID,
		EmploymentID:     &employmentID,
		SupervisorUserID: uuid.New(),
		Type:             domain.TransactionTypeReceipt,
		Status:           domain.TransactionStatusDraft,
		Amount:           decimal.RequireFromString("150.25"),
		Date:             now,
		AttachmentRef:    strPtr("files/receipt-1.jpg"),
		CreatedAt:        now,
	}
}

func cashTxColumns() []string {
	return []string{"id", "company_id", "employment_record_id", "supervisor_user_id", "override_user_id",
		"type", "status", "amount", "date", "receipt_no", "balance_after", "batch_id",
		"description", "attachment_ref", "created_at", "approved_at"}
}

func cashTxRow(t *domain.CashTransaction) *pgxmock.Rows {
	return pgxmock.NewRows(cashTxColumns()).AddRow(
		t.ID, t.CompanyID, t.EmploymentID, t.SupervisorUserID, t.OverrideUserID,
		t.Type, t.Status, t.Amount.String(), t.Date, t.ReceiptNo, optionalAmountArg(t.BalanceAfter), t.BatchID,
		t.Description, t.AttachmentRef, t.CreatedAt, t.ApprovedAt,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestCashTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO cash_transactions").
		WithArgs(
			txn.ID, txn.CompanyID, txn.EmploymentID, txn.SupervisorUserID, txn.OverrideUserID,
			string(txn.Type), string(txn.Status), "150.25", txn.Date, txn.ReceiptNo,
			optionalAmountArg(txn.BalanceAfter), txn.BatchID, txn.Description, txn.AttachmentRef,
			txn.CreatedAt, txn.ApprovedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestCashTransaction(uuid.New())
	balance := decimal.RequireFromString("900.5")
	txn.Status = domain.TransactionStatusApproved
	txn.ReceiptNo = strPtr("ACME-RCPT-000001")
	txn.BalanceAfter = &balance

	mock.ExpectQuery("SELECT .+ FROM cash_transactions WHERE company_id .+ AND id").
		WithArgs(txn.CompanyID, txn.ID).
		WillReturnRows(cashTxRow(txn))

	result, err := repo.GetByID(context.Background(), txn.CompanyID, txn.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.ID, result.ID)
	assert.True(t, txn.Amount.Equal(result.Amount))
	require.NotNil(t, result.BalanceAfter)
	assert.True(t, balance.Equal(*result.BalanceAfter))
	assert.Equal(t, "ACME-RCPT-000001", *result.ReceiptNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM cash_transactions WHERE company_id").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(cashTxColumns()))

	result, err := repo.GetByID(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestCashTransaction(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM cash_transactions WHERE company_id .+ FOR UPDATE").
		WithArgs(txn.CompanyID, txn.ID).
		WillReturnRows(cashTxRow(txn))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), dbTx, txn.CompanyID, txn.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsDraft())
	assert.Nil(t, result.BalanceAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_MarkApproved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txID := uuid.New()
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cash_transactions .+ WHERE id = .+ AND status = 'DRAFT'").
		WithArgs("ACME-LOAN-000007", "40", at, txID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.MarkApproved(context.Background(), dbTx, txID, "ACME-LOAN-000007", decimal.NewFromInt(40), at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_MarkApproved_AlreadyApproved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cash_transactions").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.MarkApproved(context.Background(), dbTx, uuid.New(), "X", decimal.Zero, time.Now())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_UpdateAttachment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txID := uuid.New()
	ref := strPtr("files/new.jpg")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE cash_transactions SET attachment_ref").
		WithArgs(ref, txID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateAttachment(context.Background(), dbTx, txID, ref)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestCashTransaction(uuid.New())
	status := domain.TransactionStatusDraft

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(txn.CompanyID, *txn.EmploymentID, string(status)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("SELECT .+ FROM cash_transactions WHERE .+ LIMIT").
		WithArgs(txn.CompanyID, *txn.EmploymentID, string(status), 20, 0).
		WillReturnRows(cashTxRow(txn))

	txns, total, err := repo.List(context.Background(), ports.TransactionListParams{
		CompanyID:    txn.CompanyID,
		EmploymentID: txn.EmploymentID,
		Status:       &status,
		Page:         1,
		PageSize:     20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, txns, 1)
	assert.Equal(t, txn.ID, txns[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_SumApproved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	companyID, employmentID := uuid.New(), uuid.New()
	rng := domain.DateRange{From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)}

	mock.ExpectQuery("SELECT .+ FROM cash_transactions .+ status = 'APPROVED' .+ employment_record_id").
		WithArgs(companyID, rng.From, rng.To, employmentID).
		WillReturnRows(pgxmock.NewRows([]string{"receipts", "deductions", "loans"}).
			AddRow("300.0000", "20.5000", "0"))

	sums, err := repo.SumApproved(context.Background(), companyID, &employmentID, rng)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(sums.Receipts))
	assert.True(t, decimal.RequireFromString("20.5").Equal(sums.Deductions))
	assert.True(t, sums.Loans.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_SumApprovedByEmployee(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	companyID := uuid.New()
	a, b := uuid.New(), uuid.New()
	rng := domain.DateRange{From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)}

	mock.ExpectQuery("SELECT employment_record_id, .+ GROUP BY employment_record_id").
		WithArgs(companyID, rng.From, rng.To).
		WillReturnRows(pgxmock.NewRows([]string{"employment_record_id", "receipts", "deductions", "loans"}).
			AddRow(a, "10", "0", "5").
			AddRow(b, "0", "7.25", "0"))

	sums, err := repo.SumApprovedByEmployee(context.Background(), companyID, rng)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.True(t, decimal.NewFromInt(10).Equal(sums[a].Receipts))
	assert.True(t, decimal.NewFromInt(5).Equal(sums[a].Loans))
	assert.True(t, decimal.RequireFromString("7.25").Equal(sums[b].Deductions))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_SumApproved_BadNumeric(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM cash_transactions").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"receipts", "deductions", "loans"}).
			AddRow("NaN?", "0", "0"))

	_, err = repo.SumApproved(context.Background(), uuid.New(), nil, domain.DateRange{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
