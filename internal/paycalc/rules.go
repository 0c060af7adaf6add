package paycalc

import (
	"fmt"

	paycalcerrors "uni-payroll/internal/paycalc/errors"
	"uni-payroll/internal/shared/money"

	"github.com/shopspring/decimal"
)

type CapKind string

const (
	CapNone   CapKind = ""
	CapMin    CapKind = "min"
	CapMax    CapKind = "max"
	CapAnnual CapKind = "annual"
)

// CapExceededError records that a line was clamped. It is informational:
// it rides on the line and never fails a calculation.
type CapExceededError struct {
	Code      string          `json:"code"`
	Cap       CapKind         `json:"cap"`
	Requested decimal.Decimal `json:"requested"`
	Applied   decimal.Decimal `json:"applied"`
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("%s clamped by %s cap from %s to %s",
		e.Code, e.Cap, e.Requested.StringFixed(money.Places), e.Applied.StringFixed(money.Places))
}

// Line is one itemized allowance or deduction.
type Line struct {
	OverrideID        string            `json:"override_id,omitempty"`
	ConfigID          string            `json:"config_id"`
	Code              string            `json:"code"`
	Name              string            `json:"name"`
	Method            Method            `json:"calculation_method"`
	Occurrences       int               `json:"occurrences"`
	ComputedAmount    decimal.Decimal   `json:"computed_amount"`
	Amount            decimal.Decimal   `json:"amount"`
	CapApplied        CapKind           `json:"cap_applied,omitempty"`
	Notice            *CapExceededError `json:"notice,omitempty"`
	IsTaxable         bool              `json:"is_taxable"`
	IsMandatory       bool              `json:"is_mandatory"`
	ContributesToNet  bool              `json:"contributes_to_net"`
	FromConfigDefault bool              `json:"from_config_default,omitempty"`
}

type AllowanceLine = Line
type DeductionLine = Line

// resolveAmount picks the amount for one override: a custom amount wins,
// then the method decides between the config default and a percentage of
// base. Fixed amounts repeat per occurrence; percentages apply once.
func resolveAmount(o Override, base decimal.Decimal, occurrences int, percentMethod Method) (decimal.Decimal, error) {
	if o.CustomAmount != nil {
		return money.Round(o.CustomAmount.Mul(decimal.NewFromInt(int64(occurrences)))), nil
	}

	switch o.Rule.Method {
	case MethodFixedAmount:
		if o.Rule.DefaultAmount == nil {
			return decimal.Zero, paycalcerrors.ErrMissingRuleAmount.WithDetails(map[string]string{"code": o.Rule.Code})
		}
		return money.Round(o.Rule.DefaultAmount.Mul(decimal.NewFromInt(int64(occurrences)))), nil
	case percentMethod:
		pct := o.CustomPercentage
		if pct == nil {
			pct = o.Rule.Percentage
		}
		if pct == nil {
			return decimal.Zero, paycalcerrors.ErrMissingRuleAmount.WithDetails(map[string]string{"code": o.Rule.Code})
		}
		return money.Percent(base, *pct), nil
	default:
		return decimal.Zero, paycalcerrors.ErrUnknownMethod.WithDetails(map[string]string{
			"code":   o.Rule.Code,
			"method": string(o.Rule.Method),
		})
	}
}

// clampPerPeriod applies min first, then max. When min exceeds max the max
// wins, so a line never exceeds its configured ceiling.
func clampPerPeriod(line *Line, rule Rule) {
	if rule.MinAmount != nil && line.Amount.LessThan(*rule.MinAmount) {
		markCap(line, CapMin, money.Round(*rule.MinAmount))
	}
	if rule.MaxAmount != nil && line.Amount.GreaterThan(*rule.MaxAmount) {
		markCap(line, CapMax, money.Round(*rule.MaxAmount))
	}
}

// clampAnnual limits the line to what is left under the annual cap. A
// fully consumed cap yields a zero line, never a missing one.
func clampAnnual(line *Line, rule Rule, ytd decimal.Decimal) {
	if rule.AnnualMaxAmount == nil {
		return
	}
	remaining := money.NonNegative(rule.AnnualMaxAmount.Sub(ytd))
	if line.Amount.GreaterThan(remaining) {
		markCap(line, CapAnnual, remaining)
	}
}

func markCap(line *Line, kind CapKind, applied decimal.Decimal) {
	line.Notice = &CapExceededError{
		Code:      line.Code,
		Cap:       kind,
		Requested: line.ComputedAmount,
		Applied:   applied,
	}
	line.Amount = applied
	line.CapApplied = kind
}

func newLine(o Override, computed decimal.Decimal, occurrences int) Line {
	return Line{
		OverrideID:       o.ID,
		ConfigID:         o.Rule.ConfigID,
		Code:             o.Rule.Code,
		Name:             o.Rule.Name,
		Method:           o.Rule.Method,
		Occurrences:      occurrences,
		ComputedAmount:   computed,
		Amount:           computed,
		IsTaxable:        o.Rule.IsTaxable,
		IsMandatory:      o.Rule.IsMandatory,
		ContributesToNet: o.Rule.ContributesToNet,
	}
}

// SumLines totals line amounts.
func SumLines(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
