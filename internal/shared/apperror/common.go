package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// Validation builds a ValidationError: bad input shape such as negative hours.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// Configuration builds a ConfigurationError: stored data lacks what a
// calculation needs (a rate for the pay-rate type, an ambiguous assignment).
func Configuration(message string) *AppError {
	return New(CodeConfiguration, message, http.StatusUnprocessableEntity)
}

// StateTransition builds a StateTransitionError for an illegal lifecycle move.
func StateTransition(entity, from, to string) *AppError {
	return New(
		CodeInvalidState,
		fmt.Sprintf("%s cannot move from %s to %s", entity, from, to),
		http.StatusConflict,
	)
}

func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusBadRequest)
}
