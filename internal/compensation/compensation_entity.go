package compensation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MethodFixedAmount       = "fixed_amount"
	MethodPercentageOfBase  = "percentage_of_base"
	MethodPercentageOfGross = "percentage_of_gross"
)

// RuleFields are shared by allowance and deduction configs.
type RuleFields struct {
	Code              string           `gorm:"column:code;type:varchar(50);not null"`
	Name              string           `gorm:"column:name;type:varchar(150);not null"`
	CalculationMethod string           `gorm:"column:calculation_method;type:varchar(30);not null"`
	DefaultAmount     *decimal.Decimal `gorm:"column:default_amount;type:numeric(14,2)"`
	Percentage        *decimal.Decimal `gorm:"column:percentage;type:numeric(7,4)"`
	MinAmount         *decimal.Decimal `gorm:"column:min_amount;type:numeric(14,2)"`
	MaxAmount         *decimal.Decimal `gorm:"column:max_amount;type:numeric(14,2)"`
	Frequency         string           `gorm:"column:frequency;type:varchar(20);not null"`
	IsTaxable         bool             `gorm:"column:is_taxable;not null"`
	IsMandatory       bool             `gorm:"column:is_mandatory;not null"`
	IsActive          bool             `gorm:"column:is_active;not null"`
}

type AllowanceConfig struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UniversityID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RuleFields       `gorm:"embedded"`
	ContributesToNet bool       `gorm:"column:contributes_to_net;not null"`
	CreatedBy        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (AllowanceConfig) TableName() string {
	return "allowance_configs"
}

type DeductionConfig struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UniversityID    uuid.UUID `gorm:"type:uuid;not null;index"`
	RuleFields      `gorm:"embedded"`
	AnnualMaxAmount *decimal.Decimal `gorm:"column:annual_max_amount;type:numeric(14,2)"`
	CreatedBy       *uuid.UUID       `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (DeductionConfig) TableName() string {
	return "deduction_configs"
}

// OverrideFields are shared by employee allowance and deduction rows.
type OverrideFields struct {
	CustomAmount     *decimal.Decimal `gorm:"column:custom_amount;type:numeric(14,2)"`
	CustomPercentage *decimal.Decimal `gorm:"column:custom_percentage;type:numeric(7,4)"`
	EffectiveFrom    time.Time        `gorm:"column:effective_from;type:date;not null"`
	EffectiveTo      *time.Time       `gorm:"column:effective_to;type:date"`
	IsActive         bool             `gorm:"column:is_active;not null"`
}

type EmployeeAllowance struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UniversityID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	EmployeeID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	AllowanceConfigID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Config            *AllowanceConfig `gorm:"foreignKey:AllowanceConfigID;references:ID"`
	OverrideFields    `gorm:"embedded"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (EmployeeAllowance) TableName() string {
	return "employee_allowances"
}

type EmployeeDeduction struct {
	ID                uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UniversityID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	EmployeeID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	DeductionConfigID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Config            *DeductionConfig `gorm:"foreignKey:DeductionConfigID;references:ID"`
	OverrideFields    `gorm:"embedded"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (EmployeeDeduction) TableName() string {
	return "employee_deductions"
}
