package timesheet

import (
	"context"
	"database/sql"
	"time"

	"uni-payroll/internal/shared/connection"
	"uni-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Timesheet) error
	FindAll(ctx context.Context, universityID string, filter ListFilter) ([]Timesheet, error)
	FindByIDAndUniversity(ctx context.Context, universityID, id string) (*Timesheet, error)
	ReplaceEntries(ctx context.Context, timesheetID string, entries []TimeEntry) error
	// UpdateIfStatus applies updates only while the row is in one of fromStatuses.
	UpdateIfStatus(ctx context.Context, universityID, id string, fromStatuses []string, updates map[string]any) (int64, error)

	ListPayable(ctx context.Context, universityID, runID string, start, end time.Time) ([]Timesheet, error)
	MarkProcessed(ctx context.Context, universityID, runID string, ids []string) (int64, error)
	MarkPaid(ctx context.Context, universityID, runID string) (int64, error)
	Release(ctx context.Context, universityID, runID string) (int64, error)
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.WithSQLTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, t *Timesheet) error {
	return r.conn(ctx).Omit("Assignment").Create(t).Error
}

func (r *repository) FindAll(ctx context.Context, universityID string, filter ListFilter) ([]Timesheet, error) {
	db := r.conn(ctx).
		Scopes(tenant.Scope(universityID))

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != "" {
		db = db.Where("period_end_date >= ?", filter.From)
	}
	if filter.To != "" {
		db = db.Where("period_start_date <= ?", filter.To)
	}

	var list []Timesheet
	err := db.Order("period_start_date DESC").Find(&list).Error
	return list, err
}

func (r *repository) FindByIDAndUniversity(ctx context.Context, universityID, id string) (*Timesheet, error) {
	var t Timesheet
	err := r.conn(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("work_date ASC")
		}).
		Preload("Assignment.Position").
		Scopes(tenant.Scope(universityID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) ReplaceEntries(ctx context.Context, timesheetID string, entries []TimeEntry) error {
	db := r.conn(ctx)
	if err := db.Where("timesheet_id = ?", timesheetID).Delete(&TimeEntry{}).Error; err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	return db.Create(&entries).Error
}

func (r *repository) UpdateIfStatus(ctx context.Context, universityID, id string, fromStatuses []string, updates map[string]any) (int64, error) {
	res := r.conn(ctx).
		Model(&Timesheet{}).
		Scopes(tenant.Scope(universityID)).
		Where("id = ?", id).
		Where("status IN ?", fromStatuses).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) ListPayable(ctx context.Context, universityID, runID string, start, end time.Time) ([]Timesheet, error) {
	var list []Timesheet
	err := r.conn(ctx).
		Preload("Assignment.Position").
		Joins("JOIN employees ON employees.id = timesheets.employee_id AND employees.status = ?", "active").
		Scopes(tenant.ScopeTable("timesheets", universityID)).
		Where("timesheets.period_start_date >= ? AND timesheets.period_end_date <= ?", start, end).
		Where("(timesheets.status = ? OR (timesheets.status = ? AND timesheets.payroll_run_id = ?))",
			StatusApproved, StatusProcessed, runID).
		Order("timesheets.employee_id ASC, timesheets.period_start_date ASC").
		Find(&list).Error
	return list, err
}

func (r *repository) MarkProcessed(ctx context.Context, universityID, runID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.conn(ctx).
		Model(&Timesheet{}).
		Scopes(tenant.Scope(universityID)).
		Where("id IN ?", ids).
		Where("status = ?", StatusApproved).
		Updates(map[string]any{
			"status":         StatusProcessed,
			"payroll_run_id": runID,
			"processed_at":   time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) MarkPaid(ctx context.Context, universityID, runID string) (int64, error) {
	res := r.conn(ctx).
		Model(&Timesheet{}).
		Scopes(tenant.Scope(universityID)).
		Where("payroll_run_id = ? AND status = ?", runID, StatusProcessed).
		Updates(map[string]any{
			"status":  StatusPaid,
			"paid_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Release(ctx context.Context, universityID, runID string) (int64, error) {
	res := r.conn(ctx).
		Model(&Timesheet{}).
		Scopes(tenant.Scope(universityID)).
		Where("payroll_run_id = ? AND status = ?", runID, StatusProcessed).
		Updates(map[string]any{
			"status":         StatusApproved,
			"payroll_run_id": nil,
			"processed_at":   nil,
		})
	return res.RowsAffected, res.Error
}
