package paycalc

import (
	paycalcerrors "uni-payroll/internal/paycalc/errors"
	"uni-payroll/internal/shared/money"

	"github.com/shopspring/decimal"
)

type GrossPayResult struct {
	AssignmentID  string          `json:"assignment_id"`
	PayRateType   PayRateType     `json:"pay_rate_type"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	RegularPay    decimal.Decimal `json:"regular_pay"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	CoveredDays   int             `json:"covered_days,omitempty"`
	PeriodDays    int             `json:"period_days,omitempty"`
	Occurrences   int             `json:"occurrences,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
}

// ValidateAssignment reports the ConfigurationError ComputeGrossPay would
// return, without computing anything. Runs call it before writing payments.
func ValidateAssignment(a Assignment, period Period) error {
	switch a.PayRateType {
	case RateHourly:
		if a.HourlyRate == nil || a.HourlyRate.IsNegative() {
			return paycalcerrors.ErrMissingHourlyRate.WithDetails(map[string]string{"assignment_id": a.ID})
		}
	case RateSalary:
		if a.SalaryAmount == nil || a.SalaryAmount.IsNegative() {
			return paycalcerrors.ErrMissingSalaryAmount.WithDetails(map[string]string{"assignment_id": a.ID})
		}
		if _, ok := PeriodsPerYear(period.Frequency); !ok {
			return paycalcerrors.ErrUnknownPeriodFrequency.WithDetails(map[string]string{"frequency": string(period.Frequency)})
		}
	case RateStipend:
		if a.StipendAmount == nil || a.StipendAmount.IsNegative() || a.StipendFrequency == "" {
			return paycalcerrors.ErrMissingStipendAmount.WithDetails(map[string]string{"assignment_id": a.ID})
		}
	default:
		return paycalcerrors.ErrUnknownPayRateType.WithDetails(map[string]string{
			"assignment_id": a.ID,
			"pay_rate_type": string(a.PayRateType),
		})
	}
	return nil
}

// ComputeGrossPay returns base pay for one assignment in one period.
//
// hourly:  regular*rate + overtime*rate*1.5
// salary:  annual/periods-per-year, pro-rated by covered calendar days
// stipend: stipend amount times its occurrences inside the covered window
func ComputeGrossPay(a Assignment, period Period, regularHours, overtimeHours decimal.Decimal) (GrossPayResult, error) {
	if dateOf(period.Start).After(dateOf(period.End)) {
		return GrossPayResult{}, paycalcerrors.ErrInvalidPeriod
	}
	if regularHours.IsNegative() || overtimeHours.IsNegative() {
		return GrossPayResult{}, paycalcerrors.ErrNegativeHours
	}
	if err := ValidateAssignment(a, period); err != nil {
		return GrossPayResult{}, err
	}

	res := GrossPayResult{
		AssignmentID:  a.ID,
		PayRateType:   a.PayRateType,
		RegularHours:  regularHours,
		OvertimeHours: overtimeHours,
		PeriodDays:    period.Days(),
		Amount:        decimal.Zero,
		RegularPay:    decimal.Zero,
		OvertimePay:   decimal.Zero,
	}

	switch a.PayRateType {
	case RateHourly:
		rate := *a.HourlyRate
		res.RegularPay = money.Round(regularHours.Mul(rate))
		res.OvertimePay = money.Round(overtimeHours.Mul(rate).Mul(OvertimeMultiplier))
		res.Amount = res.RegularPay.Add(res.OvertimePay)

	case RateSalary:
		covered, ok := period.Intersect(a.StartDate, a.EndDate)
		if !ok {
			return res, nil
		}
		res.CoveredDays = covered.Days()
		perYear, _ := PeriodsPerYear(period.Frequency)
		periodAmount := a.SalaryAmount.Div(decimal.NewFromInt(int64(perYear)))
		if res.CoveredDays < res.PeriodDays {
			periodAmount = periodAmount.
				Mul(decimal.NewFromInt(int64(res.CoveredDays))).
				Div(decimal.NewFromInt(int64(res.PeriodDays)))
		}
		res.Amount = money.Round(periodAmount)
		res.RegularPay = res.Amount

	case RateStipend:
		covered, ok := period.Intersect(a.StartDate, a.EndDate)
		if !ok {
			return res, nil
		}
		res.CoveredDays = covered.Days()
		res.Occurrences = Occurrences(a.StipendFrequency, a.StartDate, covered)
		res.Amount = money.Round(a.StipendAmount.Mul(decimal.NewFromInt(int64(res.Occurrences))))
		res.RegularPay = res.Amount
	}

	return res, nil
}
