package payroll

import (
	"time"

	"uni-payroll/internal/shared/money"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func mapPeriodToResponse(p PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Frequency:   p.Frequency,
		StartDate:   p.StartDate.Format(dateLayout),
		EndDate:     p.EndDate.Format(dateLayout),
		PaymentDate: p.PaymentDate.Format(dateLayout),
		IsClosed:    p.IsClosed,
		ClosedAt:    timeString(p.ClosedAt),
		ClosedBy:    uuidString(p.ClosedBy),
	}
}

func mapPeriodsToResponse(periods []PayrollPeriod) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, mapPeriodToResponse(p))
	}
	return out
}

func mapRunToResponse(r PayrollRun) RunResponse {
	return RunResponse{
		ID:                      r.ID.String(),
		PayrollPeriodID:         r.PayrollPeriodID.String(),
		RunNumber:               r.RunNumber,
		Status:                  r.Status,
		TotalEmployeesProcessed: r.TotalEmployeesProcessed,
		TotalEmployeesSkipped:   r.TotalEmployeesSkipped,
		TotalGrossPay:           r.TotalGrossPay.StringFixed(money.Places),
		TotalAllowances:         r.TotalAllowances.StringFixed(money.Places),
		TotalDeductions:         r.TotalDeductions.StringFixed(money.Places),
		TotalNetPay:             r.TotalNetPay.StringFixed(money.Places),
		StartedAt:               timeString(r.StartedAt),
		CalculatedAt:            timeString(r.CalculatedAt),
		ApprovedBy:              uuidString(r.ApprovedBy),
		ApprovedAt:              timeString(r.ApprovedAt),
		CompletedAt:             timeString(r.CompletedAt),
		CancelledBy:             uuidString(r.CancelledBy),
		CancelledAt:             timeString(r.CancelledAt),
		CancellationReason:      r.CancellationReason,
		FailureReason:           r.FailureReason,
		CreatedBy:               r.CreatedBy.String(),
	}
}

func mapRunsToResponse(runs []PayrollRun) []RunResponse {
	out := make([]RunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, mapRunToResponse(r))
	}
	return out
}

func mapPaymentToResponse(p PayrollPayment) PaymentResponse {
	resp := PaymentResponse{
		ID:              p.ID.String(),
		PayrollRunID:    p.PayrollRunID.String(),
		EmployeeID:      p.EmployeeID.String(),
		GrossPay:        p.GrossPay.StringFixed(money.Places),
		TotalAllowances: p.TotalAllowances.StringFixed(money.Places),
		TotalDeductions: p.TotalDeductions.StringFixed(money.Places),
		NetPay:          p.NetPay.StringFixed(money.Places),
		Status:          p.Status,
		NeedsReview:     p.NeedsReview,
		ReviewReason:    p.ReviewReason,
		FailureReason:   p.FailureReason,
		CompletedAt:     timeString(p.CompletedAt),
		Snapshot:        p.Snapshot,
	}
	for _, l := range p.Lines {
		resp.Lines = append(resp.Lines, PaymentLineResponse{
			Kind:              l.Kind,
			ConfigID:          l.ConfigID.String(),
			Code:              l.Code,
			Name:              l.Name,
			CalculationMethod: l.CalculationMethod,
			ComputedAmount:    l.ComputedAmount.StringFixed(money.Places),
			Amount:            l.Amount.StringFixed(money.Places),
			CapApplied:        l.CapApplied,
			IsTaxable:         l.IsTaxable,
			ContributesToNet:  l.ContributesToNet,
		})
	}
	for _, a := range p.Adjustments {
		resp.Adjustments = append(resp.Adjustments, mapAdjustmentToResponse(a))
	}
	return resp
}

// list responses leave out the snapshot, it can be large
func mapPaymentsToResponse(payments []PayrollPayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp := mapPaymentToResponse(p)
		resp.Snapshot = nil
		out = append(out, resp)
	}
	return out
}

func mapAdjustmentToResponse(a PaymentAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:        a.ID.String(),
		PaymentID: a.PaymentID.String(),
		Amount:    a.Amount.StringFixed(money.Places),
		Reason:    a.Reason,
		CreatedBy: a.CreatedBy.String(),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func mapYTDToResponse(employeeID string, year int, totals YTDTotals, byCode []CodeTotal) YTDResponse {
	resp := YTDResponse{
		EmployeeID:      employeeID,
		Year:            year,
		Payments:        totals.Payments,
		GrossPay:        totals.GrossPay.StringFixed(money.Places),
		TotalAllowances: totals.TotalAllowances.StringFixed(money.Places),
		TotalDeductions: totals.TotalDeductions.StringFixed(money.Places),
		NetPay:          totals.NetPay.StringFixed(money.Places),
		Adjustments:     totals.Adjustments.StringFixed(money.Places),
		Deductions:      make([]DeductionTotalResponse, 0, len(byCode)),
	}
	for _, c := range byCode {
		resp.Deductions = append(resp.Deductions, DeductionTotalResponse{
			ConfigID: c.ConfigID,
			Code:     c.Code,
			Name:     c.Name,
			Amount:   c.Amount.StringFixed(money.Places),
		})
	}
	return resp
}

func uuidString(v *uuid.UUID) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}

func timeString(v *time.Time) *string {
	if v == nil {
		return nil
	}
	s := v.Format(time.RFC3339)
	return &s
}
