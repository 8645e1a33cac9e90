package postgres

import (
	"context"
	"errors"
	"fmt"

	"cash-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Insert creates the wallet row unless one already exists for the pair.
func (r *WalletRepo) Insert(ctx context.Context, tx pgx.Tx, w *domain.Wallet) error {
	query := `INSERT INTO wallets (company_id, user_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, user_id) DO NOTHING`

	_, err := tx.Exec(ctx, query, w.CompanyID, w.UserID, w.Balance.String(), w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// Get fetches a wallet without locking.
func (r *WalletRepo) Get(ctx context.Context, companyID, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT company_id, user_id, balance::text, created_at, updated_at
		FROM wallets WHERE company_id = $1 AND user_id = $2`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, companyID, userID))
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

// GetForUpdate fetches a wallet with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, companyID, userID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT company_id, user_id, balance::text, created_at, updated_at
		FROM wallets WHERE company_id = $1 AND user_id = $2 FOR UPDATE`

	w, err := scanWallet(tx.QueryRow(ctx, query, companyID, userID))
	if err != nil {
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return w, nil
}

// UpdateBalance writes a new balance within a transaction.
func (r *WalletRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, companyID, userID uuid.UUID, balance decimal.Decimal) error {
	query := `UPDATE wallets SET balance = $1, updated_at = NOW() WHERE company_id = $2 AND user_id = $3`

	tag, err := tx.Exec(ctx, query, balance.String(), companyID, userID)
	if err != nil {
		return fmt.Errorf("update wallet balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet not found: %s/%s", companyID, userID)
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	var balance string
	err := row.Scan(&w.CompanyID, &w.UserID, &balance, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if w.Balance, err = parseAmount(balance); err != nil {
		return nil, err
	}
	return w, nil
}
