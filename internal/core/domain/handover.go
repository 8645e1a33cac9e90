package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MinStatementLength is the shortest accepted expense statement, in characters.
const MinStatementLength = 2

var (
	ErrNoExpenseLines      = errors.New("at least one expense line is required")
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
	ErrStatementTooShort   = errors.New("statement too short")
	ErrExpensesExceedFunds = errors.New("expenses exceed wallet balance")
)

// HandoverExpenseLine is one expense paid out of custody.
type HandoverExpenseLine struct {
	ID         uuid.UUID       `json:"id"`
	BatchID    uuid.UUID       `json:"batch_id"`
	Statement  string          `json:"statement"`
	Amount     decimal.Decimal `json:"amount"`
	ReceiptRef *string         `json:"receipt_ref,omitempty"`
}

// HandoverBatch closes out a wallet period into expenses plus returned cash.
type HandoverBatch struct {
	ID                    uuid.UUID             `json:"id"`
	CompanyID             uuid.UUID             `json:"company_id"`
	SupervisorUserID      uuid.UUID             `json:"supervisor_user_id"`
	Status                TransactionStatus     `json:"status"`
	Date                  time.Time             `json:"date"`
	ExpensesTotal         decimal.Decimal       `json:"expenses_total"`
	HandedOverAmount      decimal.Decimal       `json:"handed_over_amount"`
	WalletBalanceSnapshot decimal.Decimal       `json:"wallet_balance_snapshot"`
	Lines                 []HandoverExpenseLine `json:"lines"`
	CreatedAt             time.Time             `json:"created_at"`
	ApprovedAt            *time.Time            `json:"approved_at,omitempty"`
}

// IsBalanced reports whether expenses and handed-over cash add up to the snapshot.
func (b *HandoverBatch) IsBalanced() bool {
	return b.ExpensesTotal.Add(b.HandedOverAmount).Equal(b.WalletBalanceSnapshot)
}

// ValidateExpenseLine checks a single line. Statements are measured after trimming.
func ValidateExpenseLine(l HandoverExpenseLine) error {
	if !l.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if utf8.RuneCountInString(strings.TrimSpace(l.Statement)) < MinStatementLength {
		return ErrStatementTooShort
	}
	return nil
}

// PlanHandover splits snapshot into the expense total and the cash to hand over.
func PlanHandover(snapshot decimal.Decimal, lines []HandoverExpenseLine) (expenses, handedOver decimal.Decimal, err error) {
	if len(lines) == 0 {
		return decimal.Zero, decimal.Zero, ErrNoExpenseLines
	}
	expenses = decimal.Zero
	for _, l := range lines {
		if err := ValidateExpenseLine(l); err != nil {
			return decimal.Zero, decimal.Zero, err
		}
		expenses = expenses.Add(l.Amount)
	}
	handedOver = snapshot.Sub(expenses)
	if handedOver.IsNegative() {
		return expenses, handedOver, ErrExpensesExceedFunds
	}
	return expenses, handedOver, nil
}
