package employeeerrors

import (
	"net/http"

	"uni-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists in this university",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidUniversityID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid university ID",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"end_date must not be before start_date",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeValidation,
		"rates, amounts and caps must be non-negative decimals",
		http.StatusBadRequest,
	)
	ErrTerminated = apperror.New(
		apperror.CodeInvalidState,
		"terminated employees cannot change status",
		http.StatusConflict,
	)
	ErrEmployeeNotActive = apperror.New(
		apperror.CodeInvalidState,
		"employee is not active",
		http.StatusConflict,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignment not found",
		http.StatusNotFound,
	)
	ErrNoAssignmentForPeriod = apperror.New(
		apperror.CodeValidation,
		"no active approved assignment covers the whole period",
		http.StatusBadRequest,
	)
	ErrAmbiguousAssignment = apperror.New(
		apperror.CodeValidation,
		"more than one active approved assignment covers the period; pass assignment_id",
		http.StatusBadRequest,
	)
	ErrAssignmentNotUsable = apperror.New(
		apperror.CodeValidation,
		"assignment is not active, not approved or does not cover the period",
		http.StatusBadRequest,
	)
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)
)
