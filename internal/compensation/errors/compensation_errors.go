package compensationerrors

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
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidConfigID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid config id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"effective_from must be before or equal effective_to",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeValidation,
		"amounts must be valid non-negative decimals",
		http.StatusBadRequest,
	)
	ErrInvalidMethod = apperror.New(
		apperror.CodeValidation,
		"calculation method is not allowed for this kind of config",
		http.StatusBadRequest,
	)
	ErrAmountRequired = apperror.New(
		apperror.CodeValidation,
		"fixed_amount configs require default_amount",
		http.StatusBadRequest,
	)
	ErrPercentageRequired = apperror.New(
		apperror.CodeValidation,
		"percentage configs require percentage",
		http.StatusBadRequest,
	)
	ErrMinAboveMax = apperror.New(
		apperror.CodeValidation,
		"min_amount cannot exceed max_amount",
		http.StatusBadRequest,
	)
	ErrInvalidFrequency = apperror.New(
		apperror.CodeValidation,
		"invalid frequency",
		http.StatusBadRequest,
	)
	ErrConfigNotFound = apperror.New(
		apperror.CodeNotFound,
		"compensation config not found",
		http.StatusNotFound,
	)
	ErrEmployeeRuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee compensation assignment not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotInUniversity = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this university",
		http.StatusBadRequest,
	)
	ErrConfigCodeExists = apperror.New(
		apperror.CodeConflict,
		"config code already exists",
		http.StatusConflict,
	)
	ErrOverlappingRange = apperror.New(
		apperror.CodeConflict,
		"an active assignment of this config already overlaps the effective range",
		http.StatusConflict,
	)
	ErrConfigInUse = apperror.New(
		apperror.CodeConflict,
		"config is referenced by payments; amounts, method, caps and frequency can no longer change",
		http.StatusConflict,
	)
	ErrConfigInactive = apperror.New(
		apperror.CodeInvalidState,
		"config is inactive",
		http.StatusConflict,
	)
)
