package position

import (
	"context"
	"database/sql"

	"uni-payroll/internal/shared/connection"
	"uni-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, pos *Position) error
	FindAllByUniversity(ctx context.Context, universityID string) ([]Position, error)
	FindByIDAndUniversity(ctx context.Context, universityID string, id string) (*Position, error)
	Update(ctx context.Context, pos *Position) error
	Delete(ctx context.Context, universityID string, id string) error
	HasActiveAssignments(ctx context.Context, universityID string, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, pos *Position) error {
	return r.conn(ctx).Create(pos).Error
}

func (r *repository) FindAllByUniversity(ctx context.Context, universityID string) ([]Position, error) {
	var positions []Position
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Order("name ASC").
		Find(&positions).Error
	return positions, err
}

func (r *repository) FindByIDAndUniversity(ctx context.Context, universityID string, id string) (*Position, error) {
	var pos Position
	err := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		First(&pos, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *repository) Update(ctx context.Context, pos *Position) error {
	return r.conn(ctx).Save(pos).Error
}

func (r *repository) Delete(ctx context.Context, universityID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(universityID)).
		Delete(&Position{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) HasActiveAssignments(ctx context.Context, universityID string, id string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("assignments").
		Scopes(tenant.Scope(universityID)).
		Where("position_id = ? AND is_active = TRUE", id).
		Count(&count).Error
	return count > 0, err
}
