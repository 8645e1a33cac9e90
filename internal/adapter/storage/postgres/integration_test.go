//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("cash_ledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))
	// Second run must be a no-op.
	require.NoError(t, Migrate(ctx, pool))
	return pool
}

func TestIntegration_SequenceIncrement_Concurrent(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	repo := NewSequenceRepo()
	companyID := uuid.New()

	const workers = 20
	values := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := pool.Begin(ctx)
			if !assert.NoError(t, err) {
				return
			}
			defer tx.Rollback(ctx)
			n, err := repo.Increment(ctx, tx, companyID, domain.SeriesLoan)
			if !assert.NoError(t, err) {
				return
			}
			if assert.NoError(t, tx.Commit(ctx)) {
				values <- n
			}
		}()
	}
	wg.Wait()
	close(values)

	seen := map[int64]bool{}
	for v := range values {
		assert.False(t, seen[v], "duplicate sequence value %d", v)
		seen[v] = true
	}
	assert.Len(t, seen, workers)
	for i := int64(1); i <= workers; i++ {
		assert.True(t, seen[i], "gap at %d", i)
	}
}

func TestIntegration_WalletBalance_CheckConstraint(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	repo := NewWalletRepo(pool)
	companyID, userID := uuid.New(), uuid.New()

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, tx, domain.NewWallet(companyID, userID, time.Now().UTC())))
	require.NoError(t, repo.UpdateBalance(ctx, tx, companyID, userID, decimal.RequireFromString("10.5")))
	require.NoError(t, tx.Commit(ctx))

	w, err := repo.Get(ctx, companyID, userID)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.True(t, decimal.RequireFromString("10.5").Equal(w.Balance))

	tx, err = pool.Begin(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)
	err = repo.UpdateBalance(ctx, tx, companyID, userID, decimal.NewFromInt(-1))
	assert.Error(t, err)
}
