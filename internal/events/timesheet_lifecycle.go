package events

import "time"

const TimesheetLifecycleTopic = "payroll.timesheet.lifecycle.v1"

const (
	TimesheetApproved = "timesheet.approved"
	TimesheetRejected = "timesheet.rejected"
)

type TimesheetLifecycleEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	TimesheetID     string    `json:"timesheet_id"`
	EmployeeID      string    `json:"employee_id"`
	UniversityID    string    `json:"university_id"`
	ActorID         string    `json:"actor_id"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}
