// Package paycalc computes gross pay, itemized allowances, itemized
// deductions and net pay for one employee and one payroll period.
//
// The package performs no I/O. Callers load assignments, hours, rules and
// year-to-date totals and pass them in as plain values; every monetary
// result is a decimal rounded to cents, half away from zero.
package paycalc

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayRateType string

const (
	RateHourly  PayRateType = "hourly"
	RateSalary  PayRateType = "salary"
	RateStipend PayRateType = "stipend"
)

type Frequency string

const (
	FrequencyPerPeriod   Frequency = "per_period"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencySemiMonthly Frequency = "semi_monthly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencySemester    Frequency = "semester"
	FrequencyAnnually    Frequency = "annually"
	FrequencyOneTime     Frequency = "one_time"
)

type Method string

const (
	MethodFixedAmount       Method = "fixed_amount"
	MethodPercentageOfBase  Method = "percentage_of_base"
	MethodPercentageOfGross Method = "percentage_of_gross"
)

// OvertimeMultiplier applies to every overtime hour. There is no
// double-overtime tier.
var OvertimeMultiplier = decimal.RequireFromString("1.5")

// Period is an inclusive date range.
type Period struct {
	Start     time.Time
	End       time.Time
	Frequency Frequency
}

// Days returns the number of calendar days in the period, both ends included.
func (p Period) Days() int {
	return daysBetween(p.Start, p.End)
}

// Covers reports whether d falls inside the period.
func (p Period) Covers(d time.Time) bool {
	d = dateOf(d)
	return !d.Before(dateOf(p.Start)) && !d.After(dateOf(p.End))
}

// Intersect clips the period to [from, to]; a nil to is open-ended.
// ok is false when nothing remains.
func (p Period) Intersect(from time.Time, to *time.Time) (Period, bool) {
	start := dateOf(p.Start)
	end := dateOf(p.End)
	if f := dateOf(from); f.After(start) {
		start = f
	}
	if to != nil {
		if t := dateOf(*to); t.Before(end) {
			end = t
		}
	}
	if start.After(end) {
		return Period{}, false
	}
	return Period{Start: start, End: end, Frequency: p.Frequency}, true
}

// Assignment carries the rate data the engine needs. Rates already include
// any position default the caller fell back to.
type Assignment struct {
	ID               string
	PayRateType      PayRateType
	HourlyRate       *decimal.Decimal
	SalaryAmount     *decimal.Decimal // annual
	StipendAmount    *decimal.Decimal
	StipendFrequency Frequency
	StartDate        time.Time
	EndDate          *time.Time
}

// AssignmentHours is the approved work for one assignment in the period.
type AssignmentHours struct {
	Assignment    Assignment
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
}

// Rule is the shared shape of an allowance or deduction config.
type Rule struct {
	ConfigID        string
	Code            string
	Name            string
	Method          Method
	DefaultAmount   *decimal.Decimal
	Percentage      *decimal.Decimal
	MinAmount       *decimal.Decimal
	MaxAmount       *decimal.Decimal
	AnnualMaxAmount *decimal.Decimal
	Frequency       Frequency
	IsTaxable       bool
	IsMandatory     bool
	IsActive        bool
	// ContributesToNet only matters for allowances.
	ContributesToNet bool
}

// Override is an employee-level assignment of a Rule.
type Override struct {
	ID               string
	Rule             Rule
	CustomAmount     *decimal.Decimal
	CustomPercentage *decimal.Decimal
	EffectiveFrom    time.Time
	EffectiveTo      *time.Time
	IsActive         bool
}

func (o Override) coversDate(d time.Time) bool {
	d = dateOf(d)
	if dateOf(o.EffectiveFrom).After(d) {
		return false
	}
	return o.EffectiveTo == nil || !dateOf(*o.EffectiveTo).Before(d)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	f, t := dateOf(from), dateOf(to)
	if t.Before(f) {
		return 0
	}
	return int(t.Sub(f).Hours()/24) + 1
}
