package positionerrors

import (
	"net/http"

	"uni-payroll/internal/shared/apperror"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"position not found",
		http.StatusNotFound,
	)
	ErrPositionNameExists = apperror.New(
		apperror.CodeConflict,
		"position name already exists",
		http.StatusConflict,
	)
	ErrPositionInUse = apperror.New(
		apperror.CodeConflict,
		"position is used by an active assignment",
		http.StatusConflict,
	)
	ErrInvalidPayDefaults = apperror.New(
		apperror.CodeValidation,
		"pay defaults must be valid non-negative decimals",
		http.StatusBadRequest,
	)
	ErrInvalidStipendFrequency = apperror.New(
		apperror.CodeValidation,
		"invalid stipend frequency",
		http.StatusBadRequest,
	)
)
