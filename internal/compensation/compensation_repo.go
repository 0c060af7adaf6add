package compensation

import (
	"context"
	"database/sql"
	"time"

	"uni-payroll/internal/shared/connection"
	"uni-payroll/internal/tenant"

	"gorm.io/gorm"
)

const (
	KindAllowance = "allowance"
	KindDeduction = "deduction"
)

//go:generate mockgen -source=compensation_repo.go -destination=mock/compensation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateAllowanceConfig(ctx context.Context, cfg *AllowanceConfig) error
	UpdateAllowanceConfig(ctx context.Context, cfg *AllowanceConfig) error
	FindAllowanceConfigs(ctx context.Context, universityID string) ([]AllowanceConfig, error)
	FindAllowanceConfigByID(ctx context.Context, universityID, id string) (*AllowanceConfig, error)

	CreateDeductionConfig(ctx context.Context, cfg *DeductionConfig) error
	UpdateDeductionConfig(ctx context.Context, cfg *DeductionConfig) error
	FindDeductionConfigs(ctx context.Context, universityID string) ([]DeductionConfig, error)
	FindDeductionConfigByID(ctx context.Context, universityID, id string) (*DeductionConfig, error)
	FindMandatoryDeductionConfigs(ctx context.Context, universityID string) ([]DeductionConfig, error)

	IsConfigReferenced(ctx context.Context, kind, configID string) (bool, error)
	EmployeeBelongsToUniversity(ctx context.Context, universityID, employeeID string) (bool, error)

	CreateEmployeeAllowance(ctx context.Context, row *EmployeeAllowance) error
	CreateEmployeeDeduction(ctx context.Context, row *EmployeeDeduction) error
	HasOverlappingRange(ctx context.Context, kind, employeeID, configID string, from time.Time, to *time.Time) (bool, error)
	DeactivateEmployeeAllowance(ctx context.Context, universityID, id string) (int64, error)
	DeactivateEmployeeDeduction(ctx context.Context, universityID, id string) (int64, error)

	FindEmployeeAllowances(ctx context.Context, universityID string, employeeIDs []string) ([]EmployeeAllowance, error)
	FindEmployeeDeductions(ctx context.Context, universityID string, employeeIDs []string) ([]EmployeeDeduction, error)
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

func (r *repository) CreateAllowanceConfig(ctx context.Context, cfg *AllowanceConfig) error {
	return r.conn(ctx).Create(cfg).Error
}

func (r *repository) UpdateAllowanceConfig(ctx context.Context, cfg *AllowanceConfig) error {
	return r.conn(ctx).Save(cfg).Error
}

func (r *repository) FindAllowanceConfigs(ctx context.Context, universityID string) ([]AllowanceConfig, error) {
	var cfgs []AllowanceConfig
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Order("code ASC").
		Find(&cfgs).Error
	return cfgs, err
}

func (r *repository) FindAllowanceConfigByID(ctx context.Context, universityID, id string) (*AllowanceConfig, error) {
	var cfg AllowanceConfig
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		First(&cfg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) CreateDeductionConfig(ctx context.Context, cfg *DeductionConfig) error {
	return r.conn(ctx).Create(cfg).Error
}

func (r *repository) UpdateDeductionConfig(ctx context.Context, cfg *DeductionConfig) error {
	return r.conn(ctx).Save(cfg).Error
}

func (r *repository) FindDeductionConfigs(ctx context.Context, universityID string) ([]DeductionConfig, error) {
	var cfgs []DeductionConfig
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Order("code ASC").
		Find(&cfgs).Error
	return cfgs, err
}

func (r *repository) FindDeductionConfigByID(ctx context.Context, universityID, id string) (*DeductionConfig, error) {
	var cfg DeductionConfig
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		First(&cfg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) FindMandatoryDeductionConfigs(ctx context.Context, universityID string) ([]DeductionConfig, error) {
	var cfgs []DeductionConfig
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Where("is_mandatory = ? AND is_active = ?", true, true).
		Order("code ASC").
		Find(&cfgs).Error
	return cfgs, err
}

func (r *repository) IsConfigReferenced(ctx context.Context, kind, configID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("payroll_payment_lines").
		Where("kind = ? AND config_id = ?", kind, configID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeBelongsToUniversity(ctx context.Context, universityID, employeeID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(universityID)).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateEmployeeAllowance(ctx context.Context, row *EmployeeAllowance) error {
	return r.conn(ctx).Omit("Config").Create(row).Error
}

func (r *repository) CreateEmployeeDeduction(ctx context.Context, row *EmployeeDeduction) error {
	return r.conn(ctx).Omit("Config").Create(row).Error
}

func (r *repository) HasOverlappingRange(
	ctx context.Context,
	kind, employeeID, configID string,
	from time.Time,
	to *time.Time,
) (bool, error) {
	table, column := "employee_allowances", "allowance_config_id"
	if kind == KindDeduction {
		table, column = "employee_deductions", "deduction_config_id"
	}

	db := r.conn(ctx).
		Table(table).
		Where("employee_id = ?", employeeID).
		Where(column+" = ?", configID).
		Where("is_active = ?", true).
		Where("(effective_to IS NULL OR effective_to >= ?)", from)
	if to != nil {
		db = db.Where("effective_from <= ?", *to)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) DeactivateEmployeeAllowance(ctx context.Context, universityID, id string) (int64, error) {
	res := r.conn(ctx).
		Model(&EmployeeAllowance{}).
		Scopes(tenant.Scope(universityID)).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

func (r *repository) DeactivateEmployeeDeduction(ctx context.Context, universityID, id string) (int64, error) {
	res := r.conn(ctx).
		Model(&EmployeeDeduction{}).
		Scopes(tenant.Scope(universityID)).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now().UTC()})
	return res.RowsAffected, res.Error
}

func (r *repository) FindEmployeeAllowances(ctx context.Context, universityID string, employeeIDs []string) ([]EmployeeAllowance, error) {
	var rows []EmployeeAllowance
	err := r.conn(ctx).
		Preload("Config").
		Scopes(tenant.Scope(universityID)).
		Where("employee_id IN ?", employeeIDs).
		Order("employee_id, effective_from").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindEmployeeDeductions(ctx context.Context, universityID string, employeeIDs []string) ([]EmployeeDeduction, error) {
	var rows []EmployeeDeduction
	err := r.conn(ctx).
		Preload("Config").
		Scopes(tenant.Scope(universityID)).
		Where("employee_id IN ?", employeeIDs).
		Order("employee_id, effective_from").
		Find(&rows).Error
	return rows, err
}
