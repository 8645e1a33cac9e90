package postgres

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NUMERIC columns are selected as ::text and bound as strings so no float ever touches an amount.

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}

func parseOptionalAmount(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := parseAmount(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalAmountArg(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
