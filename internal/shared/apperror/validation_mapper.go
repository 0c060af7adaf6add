package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError is one failed binding rule, reported in the error details.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

var errMalformedBody = New(CodeValidation, "Request body is malformed", http.StatusBadRequest)

// payroll_period_id -> Payroll Period Id
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError turns a gin binding error into a ValidationError. The
// message names the first failing field; every failure is listed in Details.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return errMalformedBody.WithDetails(err.Error())
	}

	fields := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, FieldError{Field: e.Field(), Rule: e.Tag(), Param: e.Param()})
	}

	// Field() sudah pakai nama json karena RegisterTagNameFunc di Init()
	first := errs[0]
	name := formatFieldName(first.Field())
	switch first.Tag() {
	case "required":
		return RequiredField(name).WithDetails(fields)
	case "oneof":
		return Validation(name + " must be one of: " + strings.ReplaceAll(first.Param(), " ", ", ")).WithDetails(fields)
	default:
		return InvalidField(name).WithDetails(fields)
	}
}
