package paycalc

import (
	"github.com/shopspring/decimal"
)

// Input is everything needed to pay one employee for one period.
type Input struct {
	EmployeeID          string
	Period              Period
	Work                []AssignmentHours
	Allowances          []Override
	Deductions          []Override
	MandatoryDeductions []Rule
	YTDDeducted         map[string]decimal.Decimal
}

type Result struct {
	EmployeeID string           `json:"employee_id"`
	Gross      []GrossPayResult `json:"gross"`
	Allowances []AllowanceLine  `json:"allowances"`
	Deductions []DeductionLine  `json:"deductions"`
	NetPayResult
}

// Calculate runs gross, allowances, deductions and net for one employee.
// Gross is summed across all assignments worked in the period and is the
// base for percentage allowances and deductions.
func Calculate(in Input) (Result, error) {
	res := Result{EmployeeID: in.EmployeeID}

	gross := decimal.Zero
	for _, w := range in.Work {
		g, err := ComputeGrossPay(w.Assignment, in.Period, w.RegularHours, w.OvertimeHours)
		if err != nil {
			return Result{}, err
		}
		res.Gross = append(res.Gross, g)
		gross = gross.Add(g.Amount)
	}

	allowances, err := ComputeAllowances(in.Allowances, in.Period, gross)
	if err != nil {
		return Result{}, err
	}
	deductions, err := ComputeDeductions(in.Deductions, in.MandatoryDeductions, gross, in.Period, in.YTDDeducted)
	if err != nil {
		return Result{}, err
	}

	res.Allowances = allowances
	res.Deductions = deductions
	res.NetPayResult = ComputeNetPay(gross, allowances, deductions)
	return res, nil
}
