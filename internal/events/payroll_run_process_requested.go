package events

import "time"

const PayrollRunProcessRequestedTopic = "payroll.run.process.requested.v1"

const PayrollRunProcessRequested = "payroll.run.process.requested"

type PayrollRunProcessRequestedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	RunID        string    `json:"run_id"`
	UniversityID string    `json:"university_id"`
	RequestedBy  string    `json:"requested_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
