package position

import (
	"errors"
	"strings"

	positionerrors "uni-payroll/internal/position/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return positionerrors.ErrPositionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation &&
		strings.HasPrefix(pgErr.ConstraintName, "uq_positions_name") {
		return positionerrors.ErrPositionNameExists
	}

	return err
}
