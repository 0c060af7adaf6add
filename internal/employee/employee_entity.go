package employee

import (
	"time"

	"uni-payroll/internal/paycalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"
)

type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UniversityID   uuid.UUID  `gorm:"type:uuid;index"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
	FullName       string
	Email          string `gorm:"uniqueIndex"`
	EmployeeNumber string
	Status         string
	HireDate       time.Time `gorm:"type:date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (e Employee) IsPayrollEligible() bool {
	return e.Status == StatusActive
}

// PositionDefaults is the read-only view of a job position's pay defaults.
type PositionDefaults struct {
	ID                      uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name                    string           `gorm:"column:name"`
	DefaultPayRateType      string           `gorm:"column:default_pay_rate_type"`
	DefaultHourlyRate       *decimal.Decimal `gorm:"column:default_hourly_rate"`
	DefaultSalaryAmount     *decimal.Decimal `gorm:"column:default_salary_amount"`
	DefaultStipendAmount    *decimal.Decimal `gorm:"column:default_stipend_amount"`
	DefaultStipendFrequency string           `gorm:"column:default_stipend_frequency"`
	MaxHoursPerWeek         *decimal.Decimal `gorm:"column:max_hours_per_week"`
}

func (PositionDefaults) TableName() string {
	return "positions"
}

type Assignment struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UniversityID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	EmployeeID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	PositionID        *uuid.UUID        `gorm:"type:uuid"`
	Position          *PositionDefaults `gorm:"foreignKey:PositionID;references:ID"`
	SupervisorID      *uuid.UUID        `gorm:"type:uuid"`
	Title             string
	PayRateType       string           `gorm:"type:varchar(20)"`
	HourlyRate        *decimal.Decimal `gorm:"type:numeric(12,4)"`
	SalaryAmount      *decimal.Decimal `gorm:"type:numeric(14,2)"`
	StipendAmount     *decimal.Decimal `gorm:"type:numeric(14,2)"`
	StipendFrequency  string           `gorm:"type:varchar(20)"`
	MaxHoursPerWeek   *decimal.Decimal `gorm:"type:numeric(6,2)"`
	MaxHoursPerPeriod *decimal.Decimal `gorm:"type:numeric(6,2)"`
	HoursCapIsHard    bool
	StartDate         time.Time  `gorm:"type:date;not null"`
	EndDate           *time.Time `gorm:"type:date"`
	IsActive          bool
	IsApproved        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Covers reports whether the validity window contains [start, end].
func (a Assignment) Covers(start, end time.Time) bool {
	if a.StartDate.After(start) {
		return false
	}
	return a.EndDate == nil || !a.EndDate.Before(end)
}

// WeeklyCap falls back to the position's cap.
func (a Assignment) WeeklyCap() *decimal.Decimal {
	if a.MaxHoursPerWeek != nil {
		return a.MaxHoursPerWeek
	}
	if a.Position != nil {
		return a.Position.MaxHoursPerWeek
	}
	return nil
}

// ToPaycalc fills missing rates from the position defaults.
func (a Assignment) ToPaycalc() paycalc.Assignment {
	out := paycalc.Assignment{
		ID:               a.ID.String(),
		PayRateType:      paycalc.PayRateType(a.PayRateType),
		HourlyRate:       a.HourlyRate,
		SalaryAmount:     a.SalaryAmount,
		StipendAmount:    a.StipendAmount,
		StipendFrequency: paycalc.Frequency(a.StipendFrequency),
		StartDate:        a.StartDate,
		EndDate:          a.EndDate,
	}

	p := a.Position
	if p == nil {
		return out
	}
	if out.PayRateType == "" {
		out.PayRateType = paycalc.PayRateType(p.DefaultPayRateType)
	}
	if out.HourlyRate == nil {
		out.HourlyRate = p.DefaultHourlyRate
	}
	if out.SalaryAmount == nil {
		out.SalaryAmount = p.DefaultSalaryAmount
	}
	if out.StipendAmount == nil {
		out.StipendAmount = p.DefaultStipendAmount
	}
	if out.StipendFrequency == "" {
		out.StipendFrequency = paycalc.Frequency(p.DefaultStipendFrequency)
	}
	return out
}
