package paycalcerrors

import (
	"net/http"

	"uni-payroll/internal/shared/apperror"
)

var (
	ErrMissingHourlyRate = apperror.New(
		apperror.CodeConfiguration,
		"hourly assignment has no hourly rate",
		http.StatusUnprocessableEntity,
	)
	ErrMissingSalaryAmount = apperror.New(
		apperror.CodeConfiguration,
		"salaried assignment has no salary amount",
		http.StatusUnprocessableEntity,
	)
	ErrMissingStipendAmount = apperror.New(
		apperror.CodeConfiguration,
		"stipend assignment has no stipend amount or frequency",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownPayRateType = apperror.New(
		apperror.CodeConfiguration,
		"assignment has an unknown pay rate type",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownPeriodFrequency = apperror.New(
		apperror.CodeConfiguration,
		"payroll period frequency is required to pro-rate salaries",
		http.StatusUnprocessableEntity,
	)
	ErrMissingRuleAmount = apperror.New(
		apperror.CodeConfiguration,
		"allowance or deduction has neither an amount nor a percentage",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownMethod = apperror.New(
		apperror.CodeConfiguration,
		"unknown calculation method",
		http.StatusUnprocessableEntity,
	)
	ErrAmbiguousRule = apperror.New(
		apperror.CodeConfiguration,
		"more than one employee override covers the period for the same config",
		http.StatusUnprocessableEntity,
	)
	ErrNegativeHours = apperror.New(
		apperror.CodeValidation,
		"hours cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidation,
		"period start must be on or before period end",
		http.StatusBadRequest,
	)
)
