package payroll

import "gorm.io/datatypes"

type CreatePeriodRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Frequency   string `json:"frequency" binding:"required,oneof=weekly biweekly semi_monthly monthly"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	PaymentDate string `json:"payment_date" binding:"required"`
}

type PeriodResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Frequency   string  `json:"frequency"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	PaymentDate string  `json:"payment_date"`
	IsClosed    bool    `json:"is_closed"`
	ClosedAt    *string `json:"closed_at,omitempty"`
	ClosedBy    *string `json:"closed_by,omitempty"`
}

type CreateRunRequest struct {
	PayrollPeriodID string `json:"payroll_period_id" binding:"required,uuid"`
	// RunNumber is taken from the university counter when omitted.
	RunNumber *int64 `json:"run_number"`
}

type CancelRunRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type RunResponse struct {
	ID                      string  `json:"id"`
	PayrollPeriodID         string  `json:"payroll_period_id"`
	RunNumber               int64   `json:"run_number"`
	Status                  string  `json:"status"`
	TotalEmployeesProcessed int     `json:"total_employees_processed"`
	TotalEmployeesSkipped   int     `json:"total_employees_skipped"`
	TotalGrossPay           string  `json:"total_gross_pay"`
	TotalAllowances         string  `json:"total_allowances"`
	TotalDeductions         string  `json:"total_deductions"`
	TotalNetPay             string  `json:"total_net_pay"`
	StartedAt               *string `json:"started_at,omitempty"`
	CalculatedAt            *string `json:"calculated_at,omitempty"`
	ApprovedBy              *string `json:"approved_by,omitempty"`
	ApprovedAt              *string `json:"approved_at,omitempty"`
	CompletedAt             *string `json:"completed_at,omitempty"`
	CancelledBy             *string `json:"cancelled_by,omitempty"`
	CancelledAt             *string `json:"cancelled_at,omitempty"`
	CancellationReason      *string `json:"cancellation_reason,omitempty"`
	FailureReason           *string `json:"failure_reason,omitempty"`
	CreatedBy               string  `json:"created_by"`
}

type PaymentLineResponse struct {
	Kind              string `json:"kind"`
	ConfigID          string `json:"config_id"`
	Code              string `json:"code"`
	Name              string `json:"name"`
	CalculationMethod string `json:"calculation_method"`
	ComputedAmount    string `json:"computed_amount"`
	Amount            string `json:"amount"`
	CapApplied        string `json:"cap_applied,omitempty"`
	IsTaxable         bool   `json:"is_taxable"`
	ContributesToNet  bool   `json:"contributes_to_net"`
}

type AdjustmentResponse struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    string `json:"amount"`
	Reason    string `json:"reason"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

type PaymentResponse struct {
	ID              string                `json:"id"`
	PayrollRunID    string                `json:"payroll_run_id"`
	EmployeeID      string                `json:"employee_id"`
	GrossPay        string                `json:"gross_pay"`
	TotalAllowances string                `json:"total_allowances"`
	TotalDeductions string                `json:"total_deductions"`
	NetPay          string                `json:"net_pay"`
	Status          string                `json:"status"`
	NeedsReview     bool                  `json:"needs_review"`
	ReviewReason    *string               `json:"review_reason,omitempty"`
	FailureReason   *string               `json:"failure_reason,omitempty"`
	CompletedAt     *string               `json:"completed_at,omitempty"`
	Lines           []PaymentLineResponse `json:"lines,omitempty"`
	Adjustments     []AdjustmentResponse  `json:"adjustments,omitempty"`
	Snapshot        datatypes.JSON        `json:"calculation_snapshot,omitempty"`
}

type CreateAdjustmentRequest struct {
	Amount string `json:"amount" binding:"required,decimal"`
	Reason string `json:"reason" binding:"required,max=500"`
}

type DeductionTotalResponse struct {
	ConfigID string `json:"config_id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
}

type YTDResponse struct {
	EmployeeID      string                   `json:"employee_id"`
	Year            int                      `json:"year"`
	Payments        int                      `json:"payments"`
	GrossPay        string                   `json:"gross_pay"`
	TotalAllowances string                   `json:"total_allowances"`
	TotalDeductions string                   `json:"total_deductions"`
	NetPay          string                   `json:"net_pay"`
	Adjustments     string                   `json:"adjustments"`
	Deductions      []DeductionTotalResponse `json:"deductions"`
}
