package paycalc

import (
	"time"

	paycalcerrors "uni-payroll/internal/paycalc/errors"

	"github.com/shopspring/decimal"
)

// ComputeDeductions itemizes deductions against grossPay.
//
// Employee overrides apply when active and effective on the period end
// date. A mandatory config applies to every employee: an override row that
// covers the period still supplies its custom values even when toggled
// inactive, and without one the config defaults are used. Amounts clamp to
// min, then max, then to whatever remains of the annual cap given
// ytdDeducted (keyed by config id). A cap-exhausted line stays, at zero.
func ComputeDeductions(
	deductions []Override,
	mandatory []Rule,
	grossPay decimal.Decimal,
	period Period,
	ytdDeducted map[string]decimal.Decimal,
) ([]DeductionLine, error) {
	selected, err := selectDeductions(deductions, mandatory, period)
	if err != nil {
		return nil, err
	}

	lines := make([]DeductionLine, 0, len(selected))
	for _, d := range selected {
		window, ok := period.Intersect(d.override.EffectiveFrom, d.override.EffectiveTo)
		if !ok {
			window = period
		}
		occurrences := Occurrences(d.override.Rule.Frequency, d.override.EffectiveFrom, window)
		if occurrences == 0 {
			continue
		}

		amount, err := resolveAmount(d.override, grossPay, occurrences, MethodPercentageOfGross)
		if err != nil {
			return nil, err
		}

		line := newLine(d.override, amount, occurrences)
		line.ContributesToNet = false
		line.FromConfigDefault = d.fromDefault
		clampPerPeriod(&line, d.override.Rule)
		clampAnnual(&line, d.override.Rule, ytdDeducted[d.override.Rule.ConfigID])
		lines = append(lines, line)
	}
	return lines, nil
}

type selectedDeduction struct {
	override    Override
	fromDefault bool
}

func selectDeductions(deductions []Override, mandatory []Rule, period Period) ([]selectedDeduction, error) {
	byConfig := make(map[string]Override, len(deductions))
	order := make([]string, 0, len(deductions))

	for _, d := range deductions {
		if !d.Rule.IsActive || !d.coversDate(period.End) {
			continue
		}
		if !d.IsActive && !d.Rule.IsMandatory {
			continue
		}
		if existing, dup := byConfig[d.Rule.ConfigID]; dup {
			// An active row beats a toggled-off mandatory row; two active rows are ambiguous.
			switch {
			case existing.IsActive && d.IsActive:
				return nil, paycalcerrors.ErrAmbiguousRule.WithDetails(map[string]string{"code": d.Rule.Code})
			case d.IsActive:
				byConfig[d.Rule.ConfigID] = d
			}
			continue
		}
		byConfig[d.Rule.ConfigID] = d
		order = append(order, d.Rule.ConfigID)
	}

	out := make([]selectedDeduction, 0, len(order)+len(mandatory))
	for _, id := range order {
		out = append(out, selectedDeduction{override: byConfig[id]})
	}

	for _, rule := range mandatory {
		if !rule.IsActive || !rule.IsMandatory {
			continue
		}
		if _, ok := byConfig[rule.ConfigID]; ok {
			continue
		}
		out = append(out, selectedDeduction{
			override: Override{
				Rule:          rule,
				EffectiveFrom: yearStart(period.Start),
				IsActive:      true,
			},
			fromDefault: true,
		})
	}
	return out, nil
}

// yearStart anchors config-default recurrences at January 1st so that an
// annual mandatory deduction is due once a year, not once per period.
func yearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}
