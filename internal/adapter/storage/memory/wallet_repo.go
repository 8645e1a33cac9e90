package memory

import (
	"context"
	"fmt"
	"time"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	store *Store
}

// NewWalletRepo creates a WalletRepo over store.
func NewWalletRepo(store *Store) *WalletRepo {
	return &WalletRepo{store: store}
}

// Insert creates the wallet unless one already exists for the pair. The wallet
// lock is taken first so a concurrent writer cannot commit against a row this
// transaction may still roll back.
func (r *WalletRepo) Insert(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	mt, err := asTx(tx)
	if err != nil {
		return err
	}
	if err := mt.lock(ctx, walletLockKey(w.CompanyID, w.UserID)); err != nil {
		return fmt.Errorf("lock wallet: %w", err)
	}
	key := walletKey{w.CompanyID, w.UserID}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.wallets[key]; ok {
		return nil
	}
	cp := *w
	r.store.wallets[key] = &cp
	mt.record(func() { delete(r.store.wallets, key) })
	return nil
}

// Get returns a copy of the wallet, or nil when absent.
func (r *WalletRepo) Get(ctx context.Context, companyID, userID uuid.UUID) (*domain.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.wallets[walletKey{companyID, userID}]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

// GetForUpdate locks the wallet until tx ends, then reads it.
func (r *WalletRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, companyID, userID uuid.UUID) (*domain.Wallet, error) {
	mt, err := asTx(tx)
	if err != nil {
		return nil, err
	}
	if err := mt.lock(ctx, walletLockKey(companyID, userID)); err != nil {
		return nil, fmt.Errorf("lock wallet: %w", err)
	}
	return r.Get(ctx, companyID, userID)
}

// UpdateBalance writes a new balance. Negative balances are rejected.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, companyID, userID uuid.UUID, balance decimal.Decimal) error {
	mt, err := asTx(tx)
	if err != nil {
		return err
	}
	if balance.IsNegative() {
		return fmt.Errorf("wallet balance would be negative: %s", balance)
	}
	if err := mt.lock(ctx, walletLockKey(companyID, userID)); err != nil {
		return fmt.Errorf("lock wallet: %w", err)
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	w, ok := r.store.wallets[walletKey{companyID, userID}]
	if !ok {
		return fmt.Errorf("wallet not found: %s/%s", companyID, userID)
	}
	prevBalance, prevUpdated := w.Balance, w.UpdatedAt
	w.Balance = balance
	w.UpdatedAt = time.Now().UTC()
	mt.record(func() {
		w.Balance = prevBalance
		w.UpdatedAt = prevUpdated
	})
	return nil
}
