package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyProfile carries the tenant settings the ledger depends on.
type CompanyProfile struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Timezone string    `json:"timezone"`
}

// Location resolves the company timezone, using fallback when unset or unknown.
func (p CompanyProfile) Location(fallback *time.Location) *time.Location {
	if p.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}

// Employment is an employee's contract with a company.
type Employment struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
}

// DailyOperation is one day of field activity recorded by operations.
type DailyOperation struct {
	ID              uuid.UUID       `json:"id"`
	CompanyID       uuid.UUID       `json:"company_id"`
	EmploymentID    uuid.UUID       `json:"employment_id"`
	Date            time.Time       `json:"date"`
	CashCollected   decimal.Decimal `json:"cash_collected"`
	DeductionAmount decimal.Decimal `json:"deduction_amount"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	OrdersCount     int64           `json:"orders_count"`
}

// Sums converts the day into aggregate form.
func (o DailyOperation) Sums() OperationsSums {
	return OperationsSums{
		CashCollected:   o.CashCollected,
		DeductionAmount: o.DeductionAmount,
		TotalRevenue:    o.TotalRevenue,
		OrdersCount:     o.OrdersCount,
	}
}
