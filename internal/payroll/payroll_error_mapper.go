package payroll

import (
	"errors"
	"strings"

	payrollerrors "uni-payroll/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch {
		case strings.HasPrefix(pgErr.ConstraintName, "uq_payroll_runs_active_period"):
			return payrollerrors.ErrDuplicateRun
		case strings.HasPrefix(pgErr.ConstraintName, "uq_payroll_runs_number"):
			return payrollerrors.ErrRunNumberExists
		case strings.HasPrefix(pgErr.ConstraintName, "uq_payroll_periods_range"):
			return payrollerrors.ErrPeriodExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_payroll_runs_active_period") {
		return payrollerrors.ErrDuplicateRun
	}

	return err
}
