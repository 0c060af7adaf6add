package compensation

import (
	"errors"
	"strings"

	compensationerrors "uni-payroll/internal/compensation/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return compensationerrors.ErrConfigNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.HasPrefix(pgErr.ConstraintName, "uq_allowance_configs_code") ||
				strings.HasPrefix(pgErr.ConstraintName, "uq_deduction_configs_code") {
				return compensationerrors.ErrConfigCodeExists
			}
		case pgExclusionViolation:
			return compensationerrors.ErrOverlappingRange
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "_configs_code") {
		return compensationerrors.ErrConfigCodeExists
	}
	if strings.Contains(errMsg, "conflicting key value violates exclusion constraint") {
		return compensationerrors.ErrOverlappingRange
	}

	return err
}
