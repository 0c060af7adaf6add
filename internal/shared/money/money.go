// Package money holds the rounding rules shared by every monetary value in
// the payroll engine. Amounts are kept at two decimal places, rounded half
// away from zero.
package money

import (
	"github.com/shopspring/decimal"
)

const Places = 2

var Hundred = decimal.NewFromInt(100)

// Round rounds to cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Percent returns base * pct / 100, rounded to cents.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return Round(base.Mul(pct).Div(Hundred))
}

// NonNegative clamps d to zero from below.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Parse parses a user-supplied decimal string; empty means zero.
func Parse(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// ParseOptional parses an optional decimal string.
func ParseOptional(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// StringPtr renders an optional decimal for responses.
func StringPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	v := d.StringFixed(Places)
	return &v
}
