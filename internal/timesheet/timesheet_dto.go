package timesheet

type CreateTimesheetRequest struct {
	EmployeeID      string             `json:"employee_id" binding:"required,uuid"`
	AssignmentID    string             `json:"assignment_id" binding:"omitempty,uuid"`
	PeriodStartDate string             `json:"period_start_date" binding:"required"`
	PeriodEndDate   string             `json:"period_end_date" binding:"required"`
	Entries         []TimeEntryRequest `json:"entries" binding:"omitempty,dive"`
}

type TimeEntryRequest struct {
	WorkDate     string  `json:"work_date" binding:"required"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakMinutes int     `json:"break_minutes"`
	Hours        *string `json:"hours"`
	EntryType    string  `json:"entry_type" binding:"omitempty,oneof=regular overtime holiday sick_leave vacation"`
	Notes        string  `json:"notes"`
}

type ReplaceEntriesRequest struct {
	Entries []TimeEntryRequest `json:"entries" binding:"dive"`
}

type RejectTimesheetRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ListFilter struct {
	Status     string
	EmployeeID string
	From       string
	To         string
}

type TimeEntryResponse struct {
	ID           string  `json:"id"`
	WorkDate     string  `json:"work_date"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	BreakMinutes int     `json:"break_minutes"`
	Hours        string  `json:"hours"`
	EntryType    string  `json:"entry_type"`
	Notes        string  `json:"notes,omitempty"`
}

type TimesheetResponse struct {
	ID                    string              `json:"id"`
	UniversityID          string              `json:"university_id"`
	EmployeeID            string              `json:"employee_id"`
	AssignmentID          string              `json:"assignment_id"`
	PeriodStartDate       string              `json:"period_start_date"`
	PeriodEndDate         string              `json:"period_end_date"`
	TotalHours            string              `json:"total_hours"`
	RegularHours          string              `json:"regular_hours"`
	OvertimeHours         string              `json:"overtime_hours"`
	OvertimeEligibleHours string              `json:"overtime_eligible_hours"`
	Status                string              `json:"status"`
	SubmittedBy           *string             `json:"submitted_by,omitempty"`
	SubmittedAt           *string             `json:"submitted_at,omitempty"`
	ApprovedBy            *string             `json:"approved_by,omitempty"`
	ApprovedAt            *string             `json:"approved_at,omitempty"`
	RejectedBy            *string             `json:"rejected_by,omitempty"`
	RejectedAt            *string             `json:"rejected_at,omitempty"`
	RejectionReason       *string             `json:"rejection_reason,omitempty"`
	PayrollRunID          *string             `json:"payroll_run_id,omitempty"`
	Entries               []TimeEntryResponse `json:"entries"`
}
