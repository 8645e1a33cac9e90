package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidRange = errors.New("range start must not be after range end")

// DateRange is an inclusive time window.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Validate rejects inverted ranges.
func (r DateRange) Validate() error {
	if r.From.After(r.To) {
		return ErrInvalidRange
	}
	return nil
}

// Contains reports whether t lies inside the range, both ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// OperationsSums are the externally recorded collection figures.
type OperationsSums struct {
	CashCollected   decimal.Decimal `json:"cash_collected"`
	DeductionAmount decimal.Decimal `json:"deduction_amount"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	OrdersCount     int64           `json:"orders_count"`
}

// Add merges two sums.
func (s OperationsSums) Add(o OperationsSums) OperationsSums {
	return OperationsSums{
		CashCollected:   s.CashCollected.Add(o.CashCollected),
		DeductionAmount: s.DeductionAmount.Add(o.DeductionAmount),
		TotalRevenue:    s.TotalRevenue.Add(o.TotalRevenue),
		OrdersCount:     s.OrdersCount + o.OrdersCount,
	}
}

// LedgerSums are approved ledger totals by type.
type LedgerSums struct {
	Receipts   decimal.Decimal `json:"receipts"`
	Deductions decimal.Decimal `json:"deductions"`
	Loans      decimal.Decimal `json:"loans"`
}

// Include adds an approved row to the sums. Handover rows are not employee movements.
func (s LedgerSums) Include(t TransactionType, amount decimal.Decimal) LedgerSums {
	switch t {
	case TransactionTypeReceipt:
		s.Receipts = s.Receipts.Add(amount)
	case TransactionTypeDeduction:
		s.Deductions = s.Deductions.Add(amount)
	case TransactionTypeLoan:
		s.Loans = s.Loans.Add(amount)
	}
	return s
}

// Remaining is the cash an employee still owes; negative when over-collected.
func Remaining(ops OperationsSums, ledger LedgerSums) decimal.Decimal {
	return ops.CashCollected.
		Sub(ledger.Receipts).
		Sub(ops.DeductionAmount).
		Sub(ledger.Deductions)
}

// FloorAtZero clamps negative amounts to zero.
func FloorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// NotCollectedTotal floors each employee's remainder before summing,
// so one employee's surplus never offsets another's shortfall.
func NotCollectedTotal(remainders []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range remainders {
		total = total.Add(FloorAtZero(r))
	}
	return total
}

// SettlementStatus summarizes whether an employee has handed everything over.
type SettlementStatus string

const (
	SettlementBalanced   SettlementStatus = "BALANCED"
	SettlementUnbalanced SettlementStatus = "UNBALANCED"
)

// StatusFilter narrows the employee listing.
type StatusFilter string

const (
	StatusFilterAll        StatusFilter = "all"
	StatusFilterBalanced   StatusFilter = "balanced"
	StatusFilterUnbalanced StatusFilter = "unbalanced"
)

// ParseStatusFilter accepts "", all, balanced, unbalanced.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch StatusFilter(s) {
	case "", StatusFilterAll:
		return StatusFilterAll, true
	case StatusFilterBalanced:
		return StatusFilterBalanced, true
	case StatusFilterUnbalanced:
		return StatusFilterUnbalanced, true
	}
	return "", false
}

// Match reports whether status passes the filter.
func (f StatusFilter) Match(status SettlementStatus) bool {
	switch f {
	case StatusFilterBalanced:
		return status == SettlementBalanced
	case StatusFilterUnbalanced:
		return status == SettlementUnbalanced
	}
	return true
}

// EmployeeExposure is one employee's line in the settlement listing.
type EmployeeExposure struct {
	EmploymentID uuid.UUID      `json:"employment_id"`
	UserID       *uuid.UUID     `json:"user_id,omitempty"`
	Name         string         `json:"name"`
	Operations   OperationsSums `json:"-"`
	Ledger       LedgerSums     `json:"-"`
}

func (e EmployeeExposure) Remaining() decimal.Decimal {
	return Remaining(e.Operations, e.Ledger)
}

func (e EmployeeExposure) NotCollected() decimal.Decimal {
	return FloorAtZero(e.Remaining())
}

// TotalDeductions combines operational and ledger deductions.
func (e EmployeeExposure) TotalDeductions() decimal.Decimal {
	return e.Operations.DeductionAmount.Add(e.Ledger.Deductions)
}

func (e EmployeeExposure) Status() SettlementStatus {
	if e.Remaining().IsPositive() {
		return SettlementUnbalanced
	}
	return SettlementBalanced
}

// SupervisorStats is the supervisor dashboard summary.
type SupervisorStats struct {
	MyWallet         decimal.Decimal `json:"my_wallet"`
	CashNotCollected decimal.Decimal `json:"cash_not_collected"`
	TotalLoans       decimal.Decimal `json:"total_loans"`
	CashCollected    decimal.Decimal `json:"cash_collected"`
	Range            DateRange       `json:"range"`
}
