package employee

import (
	"errors"
	"strings"

	employeeerrors "uni-payroll/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraintErrors maps named constraints from the schema to domain errors.
var constraintErrors = map[string]error{
	"uq_employee_number":        employeeerrors.ErrEmployeeNumberAlreadyExists,
	"uq_employee_email":         employeeerrors.ErrEmployeeAlreadyExists,
	"fk_assignments_position":   employeeerrors.ErrPositionNotFound,
	"fk_assignments_employee":   employeeerrors.ErrEmployeeNotFound,
	"fk_assignments_supervisor": employeeerrors.ErrEmployeeNotFound,
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation {
			if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
				return mapped
			}
		}
		return err
	}

	// driver tanpa PgError: cocokkan nama constraint dari pesan
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") || strings.Contains(errMsg, "violates foreign key constraint") {
		for name, mapped := range constraintErrors {
			if strings.Contains(errMsg, name) {
				return mapped
			}
		}
	}

	return err
}

func mapAssignmentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrAssignmentNotFound
	}
	return mapRepositoryError(err)
}
