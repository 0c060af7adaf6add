package timesheeterrors

import (
	"net/http"

	"uni-payroll/internal/shared/apperror"
)

var (
	ErrInvalidUniversityID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid university id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"period_start_date must be before or equal period_end_date",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeValidation,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrNegativeHours = apperror.New(
		apperror.CodeValidation,
		"hours must not be negative",
		http.StatusBadRequest,
	)
	ErrHoursRequired = apperror.New(
		apperror.CodeValidation,
		"each entry needs hours or both start_time and end_time",
		http.StatusBadRequest,
	)
	ErrEntryOutsidePeriod = apperror.New(
		apperror.CodeValidation,
		"time entry is outside the timesheet period",
		http.StatusBadRequest,
	)
	ErrNoEntries = apperror.New(
		apperror.CodeValidation,
		"timesheet has no time entries",
		http.StatusBadRequest,
	)
	ErrHardCapExceeded = apperror.New(
		apperror.CodeValidation,
		"hours exceed the assignment hard cap",
		http.StatusBadRequest,
	)
	ErrEmployeeNotActive = apperror.New(
		apperror.CodeValidation,
		"employee is not active",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeValidation,
		"rejection reason is required",
		http.StatusBadRequest,
	)
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"timesheet not found",
		http.StatusNotFound,
	)
	ErrTimesheetExists = apperror.New(
		apperror.CodeConflict,
		"a timesheet already exists for this employee, assignment and period",
		http.StatusConflict,
	)
	ErrNotEditable = apperror.New(
		apperror.CodeInvalidState,
		"timesheet entries are read-only once submitted",
		http.StatusConflict,
	)
	ErrConcurrentUpdate = apperror.New(
		apperror.CodeInvalidState,
		"timesheet status changed concurrently",
		http.StatusConflict,
	)
	ErrSelfApproval = apperror.New(
		apperror.CodeForbidden,
		"approvers cannot review their own timesheet",
		http.StatusForbidden,
	)
	ErrNotApprover = apperror.New(
		apperror.CodeForbidden,
		"not allowed to review timesheets for this employee",
		http.StatusForbidden,
	)
)
