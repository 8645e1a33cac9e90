package postgres

import (
	"context"
	"testing"
	"time"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBatch() *domain.HandoverBatch {
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()
	return &domain.HandoverBatch{
		ID:                    id,
		CompanyID:             uuid.New(),
		SupervisorUserID:      uuid.New(),
		Status:                domain.TransactionStatusDraft,
		Date:                  now,
		ExpensesTotal:         decimal.NewFromInt(300),
		HandedOverAmount:      decimal.NewFromInt(700),
		WalletBalanceSnapshot: decimal.NewFromInt(1000),
		Lines: []domain.HandoverExpenseLine{
			{ID: uuid.New(), BatchID: id, Statement: "fuel", Amount: decimal.NewFromInt(200)},
			{ID: uuid.New(), BatchID: id, Statement: "parking", Amount: decimal.NewFromInt(100), ReceiptRef: strPtr("files/p.jpg")},
		},
		CreatedAt: now,
	}
}

func batchColumns() []string {
	return []string{"id", "company_id", "supervisor_user_id", "status", "date",
		"expenses_total", "handed_over_amount", "wallet_balance_snapshot", "created_at", "approved_at"}
}

func batchRow(b *domain.HandoverBatch) *pgxmock.Rows {
	return pgxmock.NewRows(batchColumns()).AddRow(
		b.ID, b.CompanyID, b.SupervisorUserID, b.Status, b.Date,
		b.ExpensesTotal.String(), b.HandedOverAmount.String(), b.WalletBalanceSnapshot.String(),
		b.CreatedAt, b.ApprovedAt,
	)
}

func lineRows(b *domain.HandoverBatch) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "batch_id", "statement", "amount", "receipt_ref"})
	for _, l := range b.Lines {
		rows.AddRow(l.ID, l.BatchID, l.Statement, l.Amount.String(), l.ReceiptRef)
	}
	return rows
}

func TestHandoverRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHandoverRepo(mock)
	b := newTestBatch()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO handover_batches").
		WithArgs(b.ID, b.CompanyID, b.SupervisorUserID, "DRAFT", b.Date,
			"300", "700", "1000", b.CreatedAt, b.ApprovedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	for i, l := range b.Lines {
		mock.ExpectExec("INSERT INTO handover_expense_lines").
			WithArgs(l.ID, b.ID, i, l.Statement, l.Amount.String(), l.ReceiptRef).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, b)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandoverRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHandoverRepo(mock)
	b := newTestBatch()

	mock.ExpectQuery("SELECT .+ FROM handover_batches WHERE company_id").
		WithArgs(b.CompanyID, b.ID).
		WillReturnRows(batchRow(b))
	mock.ExpectQuery("SELECT .+ FROM handover_expense_lines WHERE batch_id .+ ORDER BY position").
		WithArgs(b.ID).
		WillReturnRows(lineRows(b))

	result, err := repo.GetByID(context.Background(), b.CompanyID, b.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsBalanced())
	require.Len(t, result.Lines, 2)
	assert.Equal(t, "fuel", result.Lines[0].Statement)
	assert.Equal(t, "files/p.jpg", *result.Lines[1].ReceiptRef)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandoverRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHandoverRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM handover_batches").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(batchColumns()))

	result, err := repo.GetByID(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandoverRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHandoverRepo(mock)
	b := newTestBatch()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM handover_batches .+ FOR UPDATE").
		WithArgs(b.CompanyID, b.ID).
		WillReturnRows(batchRow(b))
	mock.ExpectQuery("SELECT .+ FROM handover_expense_lines").
		WithArgs(b.ID).
		WillReturnRows(lineRows(b))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), dbTx, b.CompanyID, b.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Lines, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandoverRepo_MarkApproved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHandoverRepo(mock)
	id := uuid.New()
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE handover_batches SET status = 'APPROVED'").
		WithArgs(at, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.MarkApproved(context.Background(), dbTx, id, at)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
