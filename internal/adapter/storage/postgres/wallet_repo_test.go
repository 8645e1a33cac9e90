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

func newTestWallet(companyID uuid.UUID) *domain.Wallet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Wallet{
		CompanyID: companyID,
		UserID:    uuid.New(),
		Balance:   decimal.RequireFromString("1250.75"),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func walletColumns() []string {
	return []string{"company_id", "user_id", "balance", "created_at", "updated_at"}
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows(walletColumns()).AddRow(
		w.CompanyID, w.UserID, w.Balance.String(), w.CreatedAt, w.UpdatedAt,
	)
}

func TestWalletRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := domain.NewWallet(uuid.New(), uuid.New(), time.Now().UTC())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wallets .+ ON CONFLICT").
		WithArgs(w.CompanyID, w.UserID, "0", w.CreatedAt, w.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Insert(context.Background(), dbTx, w)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE company_id .+ AND user_id").
		WithArgs(w.CompanyID, w.UserID).
		WillReturnRows(walletRow(w))

	result, err := repo.Get(context.Background(), w.CompanyID, w.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, w.UserID, result.UserID)
	assert.True(t, w.Balance.Equal(result.Balance))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallets").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(walletColumns()))

	result, err := repo.Get(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(uuid.New())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM wallets WHERE company_id .+ FOR UPDATE").
		WithArgs(w.CompanyID, w.UserID).
		WillReturnRows(walletRow(w))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetForUpdate(context.Background(), dbTx, w.CompanyID, w.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "1250.75", result.Balance.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_UpdateBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	companyID, userID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets SET balance").
		WithArgs("99.5", companyID, userID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), dbTx, companyID, userID, decimal.RequireFromString("99.50"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_UpdateBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets SET balance").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), dbTx, uuid.New(), uuid.New(), decimal.NewFromInt(1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "wallet not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSequenceRepo_Increment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSequenceRepo()
	companyID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO sequence_counters .+ ON CONFLICT .+ RETURNING value").
		WithArgs(companyID, "RCPT").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(int64(42)))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	n, err := repo.Increment(context.Background(), dbTx, companyID, domain.SeriesReceipt)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdvisoryLocker_LockEmployment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	employmentID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs("employment:" + employmentID.String()).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = NewAdvisoryLocker().LockEmployment(context.Background(), dbTx, employmentID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
