package compensation

import (
	"time"

	compensationerrors "uni-payroll/internal/compensation/errors"
	"uni-payroll/internal/paycalc"
	"uni-payroll/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var validFrequencies = map[string]struct{}{
	string(paycalc.FrequencyPerPeriod):   {},
	string(paycalc.FrequencyWeekly):      {},
	string(paycalc.FrequencyBiweekly):    {},
	string(paycalc.FrequencySemiMonthly): {},
	string(paycalc.FrequencyMonthly):     {},
	string(paycalc.FrequencyQuarterly):   {},
	string(paycalc.FrequencySemester):    {},
	string(paycalc.FrequencyAnnually):    {},
	string(paycalc.FrequencyOneTime):     {},
}

// parseRule validates a config request. percentMethod is the only
// percentage method allowed for the kind of config being written.
func parseRule(req RuleRequest, percentMethod paycalc.Method) (RuleFields, error) {
	method := paycalc.Method(req.CalculationMethod)
	if method != paycalc.MethodFixedAmount && method != percentMethod {
		return RuleFields{}, compensationerrors.ErrInvalidMethod
	}
	if _, ok := validFrequencies[req.Frequency]; !ok {
		return RuleFields{}, compensationerrors.ErrInvalidFrequency
	}

	defaultAmount, err := parseAmount(req.DefaultAmount)
	if err != nil {
		return RuleFields{}, err
	}
	percentage, err := parseAmount(req.Percentage)
	if err != nil {
		return RuleFields{}, err
	}
	minAmount, err := parseAmount(req.MinAmount)
	if err != nil {
		return RuleFields{}, err
	}
	maxAmount, err := parseAmount(req.MaxAmount)
	if err != nil {
		return RuleFields{}, err
	}

	if method == paycalc.MethodFixedAmount && defaultAmount == nil {
		return RuleFields{}, compensationerrors.ErrAmountRequired
	}
	if method == percentMethod && percentage == nil {
		return RuleFields{}, compensationerrors.ErrPercentageRequired
	}
	if minAmount != nil && maxAmount != nil && minAmount.GreaterThan(*maxAmount) {
		return RuleFields{}, compensationerrors.ErrMinAboveMax
	}

	return RuleFields{
		Code:              req.Code,
		Name:              req.Name,
		CalculationMethod: req.CalculationMethod,
		DefaultAmount:     defaultAmount,
		Percentage:        percentage,
		MinAmount:         minAmount,
		MaxAmount:         maxAmount,
		Frequency:         req.Frequency,
		IsTaxable:         req.IsTaxable,
		IsMandatory:       req.IsMandatory,
		IsActive:          req.IsActive == nil || *req.IsActive,
	}, nil
}

func parseAmount(s *string) (*decimal.Decimal, error) {
	d, err := money.ParseOptional(s)
	if err != nil || (d != nil && d.IsNegative()) {
		return nil, compensationerrors.ErrInvalidAmount
	}
	return d, nil
}

type assignIDs struct {
	university uuid.UUID
	employee   uuid.UUID
	config     uuid.UUID
}

func parseAssignRequest(universityID, employeeID string, req AssignRuleRequest) (assignIDs, OverrideFields, error) {
	var ids assignIDs
	var err error

	if ids.university, err = uuid.Parse(universityID); err != nil {
		return ids, OverrideFields{}, compensationerrors.ErrInvalidUniversityID
	}
	if ids.employee, err = uuid.Parse(employeeID); err != nil {
		return ids, OverrideFields{}, compensationerrors.ErrInvalidEmployeeID
	}
	if ids.config, err = uuid.Parse(req.ConfigID); err != nil {
		return ids, OverrideFields{}, compensationerrors.ErrInvalidConfigID
	}

	from, err := time.Parse(dateLayout, req.EffectiveFrom)
	if err != nil {
		return ids, OverrideFields{}, compensationerrors.ErrInvalidDateFormat
	}
	var to *time.Time
	if req.EffectiveTo != nil && *req.EffectiveTo != "" {
		t, err := time.Parse(dateLayout, *req.EffectiveTo)
		if err != nil {
			return ids, OverrideFields{}, compensationerrors.ErrInvalidDateFormat
		}
		if t.Before(from) {
			return ids, OverrideFields{}, compensationerrors.ErrInvalidDateRange
		}
		to = &t
	}

	customAmount, err := parseAmount(req.CustomAmount)
	if err != nil {
		return ids, OverrideFields{}, err
	}
	customPercentage, err := parseAmount(req.CustomPercentage)
	if err != nil {
		return ids, OverrideFields{}, err
	}

	return ids, OverrideFields{
		CustomAmount:     customAmount,
		CustomPercentage: customPercentage,
		EffectiveFrom:    from,
		EffectiveTo:      to,
		IsActive:         true,
	}, nil
}

func uuidPtr(s string) *uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func (c AllowanceConfig) toRule() paycalc.Rule {
	r := c.RuleFields.toRule(c.ID)
	r.ContributesToNet = c.ContributesToNet
	return r
}

func (c DeductionConfig) toRule() paycalc.Rule {
	r := c.RuleFields.toRule(c.ID)
	r.AnnualMaxAmount = c.AnnualMaxAmount
	return r
}

func (f RuleFields) toRule(id uuid.UUID) paycalc.Rule {
	return paycalc.Rule{
		ConfigID:      id.String(),
		Code:          f.Code,
		Name:          f.Name,
		Method:        paycalc.Method(f.CalculationMethod),
		DefaultAmount: f.DefaultAmount,
		Percentage:    f.Percentage,
		MinAmount:     f.MinAmount,
		MaxAmount:     f.MaxAmount,
		Frequency:     paycalc.Frequency(f.Frequency),
		IsTaxable:     f.IsTaxable,
		IsMandatory:   f.IsMandatory,
		IsActive:      f.IsActive,
	}
}

func toOverride(id uuid.UUID, rule paycalc.Rule, f OverrideFields) paycalc.Override {
	return paycalc.Override{
		ID:               id.String(),
		Rule:             rule,
		CustomAmount:     f.CustomAmount,
		CustomPercentage: f.CustomPercentage,
		EffectiveFrom:    f.EffectiveFrom,
		EffectiveTo:      f.EffectiveTo,
		IsActive:         f.IsActive,
	}
}

func percentString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	v := d.String()
	return &v
}

func mapRule(id, universityID uuid.UUID, f RuleFields) RuleResponse {
	return RuleResponse{
		ID:                id.String(),
		UniversityID:      universityID.String(),
		Code:              f.Code,
		Name:              f.Name,
		CalculationMethod: f.CalculationMethod,
		DefaultAmount:     money.StringPtr(f.DefaultAmount),
		Percentage:        percentString(f.Percentage),
		MinAmount:         money.StringPtr(f.MinAmount),
		MaxAmount:         money.StringPtr(f.MaxAmount),
		Frequency:         f.Frequency,
		IsTaxable:         f.IsTaxable,
		IsMandatory:       f.IsMandatory,
		IsActive:          f.IsActive,
	}
}

func mapAllowanceConfig(c AllowanceConfig) AllowanceConfigResponse {
	return AllowanceConfigResponse{
		RuleResponse:     mapRule(c.ID, c.UniversityID, c.RuleFields),
		ContributesToNet: c.ContributesToNet,
	}
}

func mapDeductionConfig(c DeductionConfig) DeductionConfigResponse {
	return DeductionConfigResponse{
		RuleResponse:    mapRule(c.ID, c.UniversityID, c.RuleFields),
		AnnualMaxAmount: money.StringPtr(c.AnnualMaxAmount),
	}
}

func mapOverride(id, employeeID, configID uuid.UUID, f OverrideFields) EmployeeRuleResponse {
	resp := EmployeeRuleResponse{
		ID:               id.String(),
		EmployeeID:       employeeID.String(),
		ConfigID:         configID.String(),
		CustomAmount:     money.StringPtr(f.CustomAmount),
		CustomPercentage: percentString(f.CustomPercentage),
		EffectiveFrom:    f.EffectiveFrom.Format(dateLayout),
		IsActive:         f.IsActive,
	}
	if f.EffectiveTo != nil {
		to := f.EffectiveTo.Format(dateLayout)
		resp.EffectiveTo = &to
	}
	return resp
}

func mapEmployeeAllowance(a EmployeeAllowance) EmployeeRuleResponse {
	resp := mapOverride(a.ID, a.EmployeeID, a.AllowanceConfigID, a.OverrideFields)
	if a.Config != nil {
		resp.Code = a.Config.Code
		resp.Name = a.Config.Name
	}
	return resp
}

func mapEmployeeDeduction(d EmployeeDeduction) EmployeeRuleResponse {
	resp := mapOverride(d.ID, d.EmployeeID, d.DeductionConfigID, d.OverrideFields)
	if d.Config != nil {
		resp.Code = d.Config.Code
		resp.Name = d.Config.Name
	}
	return resp
}
