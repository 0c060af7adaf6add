package timesheet

import (
	"errors"
	"strings"

	timesheeterrors "uni-payroll/internal/timesheet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timesheeterrors.ErrTimesheetNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation &&
		strings.HasPrefix(pgErr.ConstraintName, "uq_timesheets_employee_assignment_period") {
		return timesheeterrors.ErrTimesheetExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "uq_timesheets_employee_assignment_period") {
		return timesheeterrors.ErrTimesheetExists
	}

	return err
}
