package employee

import (
	"context"
	"database/sql"
	"time"

	"uni-payroll/internal/shared/connection"
	"uni-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAllByUniversity(ctx context.Context, universityID string) ([]Employee, error)
	FindByIDAndUniversity(ctx context.Context, universityID string, id string) (*Employee, error)
	UpdateStatus(ctx context.Context, universityID, id, status string) error

	PositionExists(ctx context.Context, universityID, positionID string) (bool, error)
	CreateAssignment(ctx context.Context, a *Assignment) error
	FindAssignmentByID(ctx context.Context, universityID, id string) (*Assignment, error)
	FindAssignmentsByEmployee(ctx context.Context, universityID, employeeID string) ([]Assignment, error)
	FindCoveringAssignments(ctx context.Context, universityID, employeeID string, start, end time.Time) ([]Assignment, error)
	ApproveAssignment(ctx context.Context, universityID, id string) (int64, error)
	IsSupervisorOf(ctx context.Context, universityID, supervisorID, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.WithSQLTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

func (r *repository) FindAllByUniversity(ctx context.Context, universityID string) ([]Employee, error) {
	var empls []Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByIDAndUniversity(ctx context.Context, universityID string, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) UpdateStatus(ctx context.Context, universityID, id, status string) error {
	res := r.conn(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(universityID)).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) PositionExists(ctx context.Context, universityID, positionID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("positions").
		Where("id = ?", positionID).
		Where("university_id = ?", universityID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateAssignment(ctx context.Context, a *Assignment) error {
	return r.conn(ctx).Omit("Position").Create(a).Error
}

func (r *repository) FindAssignmentByID(ctx context.Context, universityID, id string) (*Assignment, error) {
	var a Assignment
	err := r.conn(ctx).
		Preload("Position").
		Scopes(tenant.Scope(universityID)).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAssignmentsByEmployee(ctx context.Context, universityID, employeeID string) ([]Assignment, error) {
	var list []Assignment
	err := r.conn(ctx).
		Preload("Position").
		Scopes(tenant.Scope(universityID)).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&list).Error
	return list, err
}

func (r *repository) FindCoveringAssignments(
	ctx context.Context,
	universityID, employeeID string,
	start, end time.Time,
) ([]Assignment, error) {
	var list []Assignment
	err := r.conn(ctx).
		Preload("Position").
		Scopes(tenant.Scope(universityID)).
		Where("employee_id = ?", employeeID).
		Where("is_active = ? AND is_approved = ?", true, true).
		Where("start_date <= ?", start).
		Where("(end_date IS NULL OR end_date >= ?)", end).
		Find(&list).Error
	return list, err
}

func (r *repository) ApproveAssignment(ctx context.Context, universityID, id string) (int64, error) {
	res := r.conn(ctx).
		Model(&Assignment{}).
		Scopes(tenant.Scope(universityID)).
		Where("id = ?", id).
		Updates(map[string]any{"is_approved": true, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

func (r *repository) IsSupervisorOf(ctx context.Context, universityID, supervisorID, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Assignment{}).
		Scopes(tenant.Scope(universityID)).
		Where("employee_id = ?", employeeID).
		Where("supervisor_id = ?", supervisorID).
		Where("is_active = ?", true).
		Count(&count).Error
	return count > 0, err
}
