package compensation

// Amounts travel as decimal strings so no precision is lost in JSON.
type RuleRequest struct {
	Code              string  `json:"code" binding:"required,max=50"`
	Name              string  `json:"name" binding:"required,max=150"`
	CalculationMethod string  `json:"calculation_method" binding:"required"`
	DefaultAmount     *string `json:"default_amount"`
	Percentage        *string `json:"percentage"`
	MinAmount         *string `json:"min_amount"`
	MaxAmount         *string `json:"max_amount"`
	Frequency         string  `json:"frequency" binding:"required"`
	IsTaxable         bool    `json:"is_taxable"`
	IsMandatory       bool    `json:"is_mandatory"`
	IsActive          *bool   `json:"is_active"`
}

type UpsertAllowanceConfigRequest struct {
	RuleRequest
	ContributesToNet *bool `json:"contributes_to_net"`
}

type UpsertDeductionConfigRequest struct {
	RuleRequest
	AnnualMaxAmount *string `json:"annual_max_amount"`
}

type AssignRuleRequest struct {
	ConfigID         string  `json:"config_id" binding:"required,uuid"`
	CustomAmount     *string `json:"custom_amount"`
	CustomPercentage *string `json:"custom_percentage"`
	EffectiveFrom    string  `json:"effective_from" binding:"required"`
	EffectiveTo      *string `json:"effective_to"`
}

type RuleResponse struct {
	ID                string  `json:"id"`
	UniversityID      string  `json:"university_id"`
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	CalculationMethod string  `json:"calculation_method"`
	DefaultAmount     *string `json:"default_amount,omitempty"`
	Percentage        *string `json:"percentage,omitempty"`
	MinAmount         *string `json:"min_amount,omitempty"`
	MaxAmount         *string `json:"max_amount,omitempty"`
	Frequency         string  `json:"frequency"`
	IsTaxable         bool    `json:"is_taxable"`
	IsMandatory       bool    `json:"is_mandatory"`
	IsActive          bool    `json:"is_active"`
}

type AllowanceConfigResponse struct {
	RuleResponse
	ContributesToNet bool `json:"contributes_to_net"`
}

type DeductionConfigResponse struct {
	RuleResponse
	AnnualMaxAmount *string `json:"annual_max_amount,omitempty"`
}

type EmployeeRuleResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	ConfigID         string  `json:"config_id"`
	Code             string  `json:"code,omitempty"`
	Name             string  `json:"name,omitempty"`
	CustomAmount     *string `json:"custom_amount,omitempty"`
	CustomPercentage *string `json:"custom_percentage,omitempty"`
	EffectiveFrom    string  `json:"effective_from"`
	EffectiveTo      *string `json:"effective_to,omitempty"`
	IsActive         bool    `json:"is_active"`
}

type EmployeeCompensationResponse struct {
	EmployeeID string                 `json:"employee_id"`
	Allowances []EmployeeRuleResponse `json:"allowances"`
	Deductions []EmployeeRuleResponse `json:"deductions"`
}
