package service

import (
	"context"
	"fmt"
	"time"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"
	"cash-wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletStore owns supervisor balances. Every mutation goes through ApplyDelta.
// It implements ports.WalletService.
type WalletStore struct {
	repo       ports.WalletRepository
	transactor ports.DBTransactor
	now        func() time.Time
}

// NewWalletStore creates a new WalletStore.
func NewWalletStore(repo ports.WalletRepository, transactor ports.DBTransactor) *WalletStore {
	return &WalletStore{repo: repo, transactor: transactor, now: time.Now}
}

// Ensure returns the wallet for the pair, creating it with a zero balance if needed.
func (w *WalletStore) Ensure(ctx context.Context, companyID, userID uuid.UUID) (*domain.Wallet, error) {
	dbTx, err := w.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := w.repo.Insert(ctx, dbTx, domain.NewWallet(companyID, userID, w.now().UTC())); err != nil {
		return nil, apperror.InternalError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	wallet, err := w.repo.Get(ctx, companyID, userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if wallet == nil {
		return nil, apperror.InternalError(fmt.Errorf("wallet %s/%s vanished after insert", companyID, userID))
	}
	return wallet, nil
}

// Lock creates the wallet if needed and takes its row lock for the rest of tx.
func (w *WalletStore) Lock(ctx context.Context, tx pgx.Tx, companyID, userID uuid.UUID) (*domain.Wallet, error) {
	if err := w.repo.Insert(ctx, tx, domain.NewWallet(companyID, userID, w.now().UTC())); err != nil {
		return nil, apperror.InternalError(err)
	}
	wallet, err := w.repo.GetForUpdate(ctx, tx, companyID, userID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if wallet == nil {
		return nil, apperror.InternalError(fmt.Errorf("wallet %s/%s missing under lock", companyID, userID))
	}
	return wallet, nil
}

// ApplyDelta locks the wallet, adds delta and persists the result. The returned
// wallet carries the balance_after for the caller's ledger row.
func (w *WalletStore) ApplyDelta(ctx context.Context, tx pgx.Tx, companyID, userID uuid.UUID, delta decimal.Decimal) (*domain.Wallet, error) {
	wallet, err := w.Lock(ctx, tx, companyID, userID)
	if err != nil {
		return nil, err
	}

	next, ok := wallet.Project(delta)
	if !ok {
		return nil, apperror.ErrInsufficientBalance()
	}
	if err := w.repo.UpdateBalance(ctx, tx, companyID, userID, next); err != nil {
		return nil, apperror.InternalError(err)
	}

	wallet.Balance = next
	wallet.UpdatedAt = w.now().UTC()
	return wallet, nil
}

// Balance reads the current balance without locking. A missing wallet reads as zero.
func (w *WalletStore) Balance(ctx context.Context, companyID, userID uuid.UUID) (decimal.Decimal, error) {
	wallet, err := w.repo.Get(ctx, companyID, userID)
	if err != nil {
		return decimal.Zero, apperror.InternalError(err)
	}
	if wallet == nil {
		return decimal.Zero, nil
	}
	return wallet.Balance, nil
}
