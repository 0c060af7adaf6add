package paycalc_test

import (
	"testing"

	"uni-payroll/internal/paycalc"
	paycalcerrors "uni-payroll/internal/paycalc/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func deductionRule(code string) paycalc.Rule {
	return paycalc.Rule{
		ConfigID:  "cfg-" + code,
		Code:      code,
		Name:      code,
		Method:    paycalc.MethodPercentageOfGross,
		Frequency: paycalc.FrequencyPerPeriod,
		IsActive:  true,
	}
}

func override(rule paycalc.Rule) paycalc.Override {
	return paycalc.Override{ID: "ov-" + rule.Code, Rule: rule, EffectiveFrom: date(2026, 1, 1), IsActive: true}
}

func TestComputeDeductions_Caps(t *testing.T) {
	p := monthlyPeriod()

	t.Run("per period max clamps percentage", func(t *testing.T) {
		rule := deductionRule("UNION")
		rule.Percentage = dp("10")
		rule.MaxAmount = dp("20")

		lines, err := paycalc.ComputeDeductions([]paycalc.Override{override(rule)}, nil, d("350"), p, nil)

		assert.NoError(t, err)
		assert.Len(t, lines, 1)
		assert.Equal(t, "20.00", lines[0].Amount.StringFixed(2))
		assert.Equal(t, "35.00", lines[0].ComputedAmount.StringFixed(2))
		assert.Equal(t, paycalc.CapMax, lines[0].CapApplied)
		assert.NotNil(t, lines[0].Notice)
	})

	t.Run("min raises small amounts", func(t *testing.T) {
		rule := deductionRule("PARKING")
		rule.Percentage = dp("1")
		rule.MinAmount = dp("10")

		lines, err := paycalc.ComputeDeductions([]paycalc.Override{override(rule)}, nil, d("350"), p, nil)

		assert.NoError(t, err)
		assert.Equal(t, "10.00", lines[0].Amount.StringFixed(2))
		assert.Equal(t, paycalc.CapMin, lines[0].CapApplied)
	})

	t.Run("annual cap leaves the remainder", func(t *testing.T) {
		rule := deductionRule("RETIRE")
		rule.Method = paycalc.MethodFixedAmount
		rule.DefaultAmount = dp("20")
		rule.AnnualMaxAmount = dp("500")

		ytd := map[string]decimal.Decimal{rule.ConfigID: d("495")}
		lines, err := paycalc.ComputeDeductions([]paycalc.Override{override(rule)}, nil, d("350"), p, ytd)

		assert.NoError(t, err)
		assert.Equal(t, "5.00", lines[0].Amount.StringFixed(2))
		assert.Equal(t, paycalc.CapAnnual, lines[0].CapApplied)
	})

	t.Run("exhausted annual cap keeps a zero line", func(t *testing.T) {
		rule := deductionRule("RETIRE")
		rule.Method = paycalc.MethodFixedAmount
		rule.DefaultAmount = dp("20")
		rule.AnnualMaxAmount = dp("500")

		ytd := map[string]decimal.Decimal{rule.ConfigID: d("510")}
		lines, err := paycalc.ComputeDeductions([]paycalc.Override{override(rule)}, nil, d("350"), p, ytd)

		assert.NoError(t, err)
		assert.Len(t, lines, 1)
		assert.True(t, lines[0].Amount.IsZero())
		assert.False(t, lines[0].Amount.IsNegative())
		assert.Equal(t, paycalc.CapAnnual, lines[0].CapApplied)
	})

	t.Run("custom amount overrides default", func(t *testing.T) {
		rule := deductionRule("LOAN")
		rule.Method = paycalc.MethodFixedAmount
		rule.DefaultAmount = dp("50")
		ov := override(rule)
		ov.CustomAmount = dp("75.5")

		lines, err := paycalc.ComputeDeductions([]paycalc.Override{ov}, nil, d("350"), p, nil)

		assert.NoError(t, err)
		assert.Equal(t, "75.50", lines[0].Amount.StringFixed(2))
	})
}

func TestComputeDeductions_Selection(t *testing.T) {
	p := monthlyPeriod()

	t.Run("inactive optional override is excluded", func(t *testing.T) {
		rule := deductionRule("GYM")
		rule.Percentage = dp("2")
		ov := override(rule)
		ov.IsActive = false

		lines, err := paycalc.ComputeDeductions([]paycalc.Override{ov}, nil, d("1000"), p, nil)

		assert.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("mandatory survives employee toggle", func(t *testing.T) {
		rule := deductionRule("TAX")
		rule.IsMandatory = true
		rule.Percentage = dp("10")
		ov := override(rule)
		ov.IsActive = false
		ov.CustomPercentage = dp("12")

		lines, err := paycalc.ComputeDeductions([]paycalc.Override{ov}, []paycalc.Rule{rule}, d("1000"), p, nil)

		assert.NoError(t, err)
		assert.Len(t, lines, 1)
		assert.Equal(t, "120.00", lines[0].Amount.StringFixed(2))
	})

	t.Run("mandatory without employee row uses config default", func(t *testing.T) {
		rule := deductionRule("PENSION")
		rule.IsMandatory = true
		rule.Percentage = dp("5")

		lines, err := paycalc.ComputeDeductions(nil, []paycalc.Rule{rule}, d("1000"), p, nil)

		assert.NoError(t, err)
		assert.Len(t, lines, 1)
		assert.True(t, lines[0].FromConfigDefault)
		assert.Equal(t, "50.00", lines[0].Amount.StringFixed(2))
	})

	t.Run("expired override is excluded", func(t *testing.T) {
		rule := deductionRule("OLD")
		rule.Percentage = dp("5")
		ov := override(rule)
		ov.EffectiveTo = datep(2026, 2, 28)

		lines, err := paycalc.ComputeDeductions([]paycalc.Override{ov}, nil, d("1000"), p, nil)

		assert.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("two active overrides for one config are ambiguous", func(t *testing.T) {
		rule := deductionRule("DUP")
		rule.Percentage = dp("5")
		a, b := override(rule), override(rule)
		b.ID = "ov-other"

		_, err := paycalc.ComputeDeductions([]paycalc.Override{a, b}, nil, d("1000"), p, nil)

		assert.ErrorIs(t, err, paycalcerrors.ErrAmbiguousRule)
	})

	t.Run("fixed deduction without amount", func(t *testing.T) {
		rule := deductionRule("EMPTY")
		rule.Method = paycalc.MethodFixedAmount

		_, err := paycalc.ComputeDeductions([]paycalc.Override{override(rule)}, nil, d("1000"), p, nil)

		assert.ErrorIs(t, err, paycalcerrors.ErrMissingRuleAmount)
	})
}

func TestComputeAllowances(t *testing.T) {
	p := monthlyPeriod()
	housing := paycalc.Rule{
		ConfigID: "cfg-house", Code: "HOUSE", Name: "Housing", Method: paycalc.MethodFixedAmount,
		DefaultAmount: dp("300"), Frequency: paycalc.FrequencyMonthly, IsActive: true, ContributesToNet: true,
	}
	bonus := paycalc.Rule{
		ConfigID: "cfg-bonus", Code: "RESEARCH", Name: "Research", Method: paycalc.MethodPercentageOfBase,
		Percentage: dp("10"), MaxAmount: dp("150"), Frequency: paycalc.FrequencyPerPeriod, IsActive: true, ContributesToNet: true,
	}

	t.Run("fixed and percentage of base", func(t *testing.T) {
		lines, err := paycalc.ComputeAllowances([]paycalc.Override{override(housing), override(bonus)}, p, d("1000"))

		assert.NoError(t, err)
		assert.Len(t, lines, 2)
		assert.Equal(t, "300.00", lines[0].Amount.StringFixed(2))
		assert.Equal(t, "100.00", lines[1].Amount.StringFixed(2))
	})

	t.Run("percentage clamped by max", func(t *testing.T) {
		lines, err := paycalc.ComputeAllowances([]paycalc.Override{override(bonus)}, p, d("5000"))

		assert.NoError(t, err)
		assert.Equal(t, "150.00", lines[0].Amount.StringFixed(2))
		assert.Equal(t, paycalc.CapMax, lines[0].CapApplied)
	})

	t.Run("inactive and expired excluded", func(t *testing.T) {
		inactive := override(housing)
		inactive.IsActive = false
		expired := override(bonus)
		expired.EffectiveTo = datep(2026, 3, 15)

		lines, err := paycalc.ComputeAllowances([]paycalc.Override{inactive, expired}, p, d("1000"))

		assert.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("weekly fixed allowance repeats", func(t *testing.T) {
		meal := housing
		meal.Code = "MEAL"
		meal.DefaultAmount = dp("10")
		meal.Frequency = paycalc.FrequencyWeekly
		ov := override(meal)
		ov.EffectiveFrom = date(2026, 3, 2)

		lines, err := paycalc.ComputeAllowances([]paycalc.Override{ov}, p, d("1000"))

		assert.NoError(t, err)
		assert.Equal(t, 5, lines[0].Occurrences)
		assert.Equal(t, "50.00", lines[0].Amount.StringFixed(2))
	})
}

func TestComputeNetPay(t *testing.T) {
	allowances := []paycalc.AllowanceLine{
		{Code: "HOUSE", Amount: d("100"), ContributesToNet: true},
		{Code: "INFO", Amount: d("40"), ContributesToNet: false},
	}

	t.Run("positive", func(t *testing.T) {
		res := paycalc.ComputeNetPay(d("350"), allowances, []paycalc.DeductionLine{{Code: "TAX", Amount: d("20")}})

		assert.Equal(t, "430.00", res.NetPay.StringFixed(2))
		assert.Equal(t, "140.00", res.TotalAllowances.StringFixed(2))
		assert.False(t, res.NeedsReview)
	})

	t.Run("negative clamps to zero and flags review", func(t *testing.T) {
		res := paycalc.ComputeNetPay(d("100"), nil, []paycalc.DeductionLine{{Code: "LOAN", Amount: d("250")}})

		assert.True(t, res.NetPay.IsZero())
		assert.True(t, res.NeedsReview)
		assert.NotEmpty(t, res.ReviewReason)
		assert.Equal(t, "-150.00", res.UnclampedNetPay.StringFixed(2))
	})
}

func TestCalculate(t *testing.T) {
	rule := deductionRule("UNION")
	rule.Percentage = dp("10")
	rule.MaxAmount = dp("20")

	in := paycalc.Input{
		EmployeeID: "emp-1",
		Period:     monthlyPeriod(),
		Work: []paycalc.AssignmentHours{
			{
				Assignment:    paycalc.Assignment{ID: "a1", PayRateType: paycalc.RateHourly, HourlyRate: dp("20"), StartDate: date(2026, 1, 1)},
				RegularHours:  d("10"),
				OvertimeHours: d("5"),
			},
		},
		Deductions: []paycalc.Override{override(rule)},
	}

	res, err := paycalc.Calculate(in)

	assert.NoError(t, err)
	assert.Equal(t, "350.00", res.GrossPay.StringFixed(2))
	assert.Equal(t, "20.00", res.TotalDeductions.StringFixed(2))
	assert.Equal(t, "330.00", res.NetPay.StringFixed(2))
	assert.Len(t, res.Gross, 1)

	t.Run("configuration error surfaces", func(t *testing.T) {
		bad := in
		bad.Work = []paycalc.AssignmentHours{{Assignment: paycalc.Assignment{ID: "a2", PayRateType: paycalc.RateSalary}}}

		_, err := paycalc.Calculate(bad)

		assert.ErrorIs(t, err, paycalcerrors.ErrMissingSalaryAmount)
	})
}
