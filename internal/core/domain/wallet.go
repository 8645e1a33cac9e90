package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is a supervisor's cash-on-hand for one company.
type Wallet struct {
	CompanyID uuid.UUID       `json:"company_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewWallet returns an empty wallet for the pair.
func NewWallet(companyID, userID uuid.UUID, now time.Time) *Wallet {
	return &Wallet{
		CompanyID: companyID,
		UserID:    userID,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Project returns the balance after delta and whether it stays non-negative.
func (w *Wallet) Project(delta decimal.Decimal) (decimal.Decimal, bool) {
	next := w.Balance.Add(delta)
	return next, !next.IsNegative()
}
