package paycalc

import (
	"github.com/shopspring/decimal"
)

// ComputeAllowances itemizes the active allowances whose effective range
// covers the period end date. Inactive, expired or not-yet-due allowances
// are left out entirely. basePay is gross pay before any allowance.
func ComputeAllowances(allowances []Override, period Period, basePay decimal.Decimal) ([]AllowanceLine, error) {
	lines := make([]AllowanceLine, 0, len(allowances))
	for _, a := range allowances {
		if !a.IsActive || !a.Rule.IsActive || !a.coversDate(period.End) {
			continue
		}

		window, ok := period.Intersect(a.EffectiveFrom, a.EffectiveTo)
		if !ok {
			continue
		}
		occurrences := Occurrences(a.Rule.Frequency, a.EffectiveFrom, window)
		if occurrences == 0 {
			continue
		}

		amount, err := resolveAmount(a, basePay, occurrences, MethodPercentageOfBase)
		if err != nil {
			return nil, err
		}

		line := newLine(a, amount, occurrences)
		clampPerPeriod(&line, a.Rule)
		lines = append(lines, line)
	}
	return lines, nil
}
