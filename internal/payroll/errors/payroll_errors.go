package payrollerrors

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
	ErrInvalidPeriodID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll period id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentDate = apperror.New(
		apperror.CodeValidation,
		"payment_date cannot be before start_date",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeValidation,
		"year must be a four digit year",
		http.StatusBadRequest,
	)
	ErrInvalidRunNumber = apperror.New(
		apperror.CodeValidation,
		"run_number must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidAdjustment = apperror.New(
		apperror.CodeValidation,
		"adjustment amount must be a non-zero decimal",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeValidation,
		"reason is required",
		http.StatusBadRequest,
	)

	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll period not found",
		http.StatusNotFound,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll payment not found",
		http.StatusNotFound,
	)

	ErrPeriodExists = apperror.New(
		apperror.CodeConflict,
		"a payroll period with the same dates already exists",
		http.StatusConflict,
	)
	ErrRunNumberExists = apperror.New(
		apperror.CodeConflict,
		"run number already used for this period",
		http.StatusConflict,
	)
	ErrDuplicateRun = apperror.New(
		apperror.CodeDuplicateRun,
		"an active payroll run already exists for this period",
		http.StatusConflict,
	)

	ErrSelfApproval = apperror.New(
		apperror.CodeForbidden,
		"payroll run cannot be approved by its creator",
		http.StatusForbidden,
	)

	ErrPeriodClosed = apperror.New(
		apperror.CodeInvalidState,
		"payroll period is closed",
		http.StatusConflict,
	)
	ErrPeriodNotSettled = apperror.New(
		apperror.CodeInvalidState,
		"payroll period can only be closed after its run is completed",
		http.StatusConflict,
	)
	ErrAdjustOnlyCompleted = apperror.New(
		apperror.CodeInvalidState,
		"only completed payments can be adjusted",
		http.StatusConflict,
	)
	ErrRunCancelled = apperror.New(
		apperror.CodeInvalidState,
		"payroll run was cancelled while processing",
		http.StatusConflict,
	)
	ErrRunBusy = apperror.New(
		apperror.CodeBusy,
		"payroll run is already being processed",
		http.StatusConflict,
	)

	ErrRunConfiguration = apperror.New(
		apperror.CodeConfiguration,
		"payroll run has configuration errors",
		http.StatusUnprocessableEntity,
	)
)
