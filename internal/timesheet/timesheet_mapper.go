package timesheet

import (
	"time"

	"github.com/google/uuid"
)

func mapToResponse(t Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:                    t.ID.String(),
		UniversityID:          t.UniversityID.String(),
		EmployeeID:            t.EmployeeID.String(),
		AssignmentID:          t.AssignmentID.String(),
		PeriodStartDate:       t.PeriodStartDate.Format(dateLayout),
		PeriodEndDate:         t.PeriodEndDate.Format(dateLayout),
		TotalHours:            t.TotalHours.StringFixed(2),
		RegularHours:          t.RegularHours.StringFixed(2),
		OvertimeHours:         t.OvertimeHours.StringFixed(2),
		OvertimeEligibleHours: t.OvertimeEligibleHours.StringFixed(2),
		Status:                t.Status,
		SubmittedBy:           uuidString(t.SubmittedBy),
		SubmittedAt:           timeString(t.SubmittedAt),
		ApprovedBy:            uuidString(t.ApprovedBy),
		ApprovedAt:            timeString(t.ApprovedAt),
		RejectedBy:            uuidString(t.RejectedBy),
		RejectedAt:            timeString(t.RejectedAt),
		RejectionReason:       t.RejectionReason,
		PayrollRunID:          uuidString(t.PayrollRunID),
		Entries:               make([]TimeEntryResponse, 0, len(t.Entries)),
	}
	for _, e := range t.Entries {
		resp.Entries = append(resp.Entries, TimeEntryResponse{
			ID:           e.ID.String(),
			WorkDate:     e.WorkDate.Format(dateLayout),
			StartTime:    e.StartTime,
			EndTime:      e.EndTime,
			BreakMinutes: e.BreakMinutes,
			Hours:        e.Hours.StringFixed(2),
			EntryType:    e.EntryType,
			Notes:        e.Notes,
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
