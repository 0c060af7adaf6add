package paycalc

import (
	"fmt"

	"uni-payroll/internal/shared/money"

	"github.com/shopspring/decimal"
)

type NetPayResult struct {
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	ContributingPay decimal.Decimal `json:"contributing_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	UnclampedNetPay decimal.Decimal `json:"unclamped_net_pay"`
	NetPay          decimal.Decimal `json:"net_pay"`
	NeedsReview     bool            `json:"needs_review"`
	ReviewReason    string          `json:"review_reason,omitempty"`
}

// ComputeNetPay returns gross + contributing allowances - deductions. A
// negative result is clamped to zero and flagged for manual review.
func ComputeNetPay(grossPay decimal.Decimal, allowances []AllowanceLine, deductions []DeductionLine) NetPayResult {
	contributing := decimal.Zero
	for _, a := range allowances {
		if a.ContributesToNet {
			contributing = contributing.Add(a.Amount)
		}
	}
	totalDeductions := SumLines(deductions)
	net := money.Round(grossPay.Add(contributing).Sub(totalDeductions))

	res := NetPayResult{
		GrossPay:        grossPay,
		TotalAllowances: SumLines(allowances),
		ContributingPay: contributing,
		TotalDeductions: totalDeductions,
		UnclampedNetPay: net,
		NetPay:          net,
	}
	if net.IsNegative() {
		res.NetPay = decimal.Zero
		res.NeedsReview = true
		res.ReviewReason = fmt.Sprintf(
			"deductions %s exceed gross plus allowances %s",
			totalDeductions.StringFixed(money.Places),
			grossPay.Add(contributing).StringFixed(money.Places),
		)
	}
	return res
}
