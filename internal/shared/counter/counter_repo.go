package counter

import (
	"context"
	"database/sql"

	"uni-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

const (
	TypePayrollRun     = "payroll_run"
	TypeEmployeeNumber = "employee_number"
)

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, universityID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) GetNextValue(ctx context.Context, universityID string, counterType string) (int64, error) {
	var nextValue int64

	// Atomic upsert-and-increment per university and counter type.
	err := connection.WithSQLTx(r.db, r.tx).WithContext(ctx).Raw(`
		INSERT INTO university_counters (university_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (university_id, counter_type) DO UPDATE
		SET last_value = university_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, universityID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
