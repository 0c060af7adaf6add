package timesheet

import (
	"time"

	"uni-payroll/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusProcessed = "processed"
	StatusPaid      = "paid"
)

const (
	EntryRegular   = "regular"
	EntryOvertime  = "overtime"
	EntryHoliday   = "holiday"
	EntrySickLeave = "sick_leave"
	EntryVacation  = "vacation"
)

type Timesheet struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey"`
	UniversityID uuid.UUID            `gorm:"type:uuid;not null;index:idx_timesheets_university_status"`
	EmployeeID   uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:uq_timesheets_employee_assignment_period"`
	AssignmentID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:uq_timesheets_employee_assignment_period"`
	Assignment   *employee.Assignment `gorm:"foreignKey:AssignmentID;references:ID"`

	PeriodStartDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_timesheets_employee_assignment_period"`
	PeriodEndDate   time.Time `gorm:"type:date;not null"`

	TotalHours            decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`
	RegularHours          decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`
	OvertimeHours         decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`
	OvertimeEligibleHours decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`

	Status          string     `gorm:"type:varchar(20);not null;default:'draft';index:idx_timesheets_university_status"`
	SubmittedBy     *uuid.UUID `gorm:"type:uuid"`
	SubmittedAt     *time.Time
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectedAt      *time.Time
	RejectionReason *string    `gorm:"type:text"`
	PayrollRunID    *uuid.UUID `gorm:"type:uuid;index"`
	ProcessedAt     *time.Time
	PaidAt          *time.Time
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null"`

	Entries []TimeEntry `gorm:"foreignKey:TimesheetID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TimeEntry struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TimesheetID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	WorkDate     time.Time       `gorm:"type:date;not null"`
	StartTime    *string         `gorm:"type:varchar(5)"`
	EndTime      *string         `gorm:"type:varchar(5)"`
	BreakMinutes int             `gorm:"not null;default:0"`
	Hours        decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	EntryType    string          `gorm:"type:varchar(20);not null;default:'regular'"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    time.Time
}

// Editable reports whether entries may still be replaced.
func (t Timesheet) Editable() bool {
	return t.Status == StatusDraft || t.Status == StatusRejected
}

var allowedTransitions = map[string][]string{
	StatusDraft:     {StatusSubmitted},
	StatusRejected:  {StatusDraft, StatusSubmitted},
	StatusSubmitted: {StatusApproved, StatusRejected},
	StatusApproved:  {StatusProcessed},
	StatusProcessed: {StatusPaid, StatusApproved},
}

// CanTransition reports whether a timesheet may move from one status to another.
// processed -> approved is the release path used when a run is cancelled.
func CanTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
