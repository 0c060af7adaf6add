package events

import "time"

const PayrollRunLifecycleTopic = "payroll.run.lifecycle.v1"

const (
	PayrollRunCalculated = "payroll.run.calculated"
	PayrollRunCompleted  = "payroll.run.completed"
	PayrollRunCancelled  = "payroll.run.cancelled"
	PayrollRunFailed     = "payroll.run.failed"
)

type PayrollRunLifecycleEvent struct {
	EventType          string    `json:"event_type"`
	RequestID          string    `json:"request_id,omitempty"`
	RunID              string    `json:"run_id"`
	PeriodID           string    `json:"period_id"`
	UniversityID       string    `json:"university_id"`
	Status             string    `json:"status"`
	EmployeesProcessed int       `json:"employees_processed"`
	EmployeesSkipped   int       `json:"employees_skipped"`
	TotalGrossPay      string    `json:"total_gross_pay"`
	TotalNetPay        string    `json:"total_net_pay"`
	Reason             string    `json:"reason,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}
