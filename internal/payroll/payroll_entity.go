package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	RunStatusPending     = "pending"
	RunStatusCalculating = "calculating"
	RunStatusCalculated  = "calculated"
	RunStatusApproved    = "approved"
	RunStatusProcessing  = "processing"
	RunStatusCompleted   = "completed"
	RunStatusFailed      = "failed"
	RunStatusCancelled   = "cancelled"
)

const (
	PaymentStatusPending    = "pending"
	PaymentStatusProcessing = "processing"
	PaymentStatusCompleted  = "completed"
	PaymentStatusFailed     = "failed"
	PaymentStatusCancelled  = "cancelled"
	PaymentStatusRefunded   = "refunded"
)

const (
	LineKindAllowance = "allowance"
	LineKindDeduction = "deduction"
)

const (
	FrequencyWeekly      = "weekly"
	FrequencyBiweekly    = "biweekly"
	FrequencySemiMonthly = "semi_monthly"
	FrequencyMonthly     = "monthly"
)

type PayrollPeriod struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UniversityID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_payroll_periods_range"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Frequency    string    `gorm:"type:varchar(20);not null"`
	StartDate    time.Time `gorm:"type:date;not null;uniqueIndex:uq_payroll_periods_range"`
	EndDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_payroll_periods_range"`
	PaymentDate  time.Time `gorm:"type:date;not null"`
	IsClosed     bool      `gorm:"not null;default:false"`
	ClosedAt     *time.Time
	ClosedBy     *uuid.UUID `gorm:"type:uuid"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PayrollRun. A partial unique index (uq_payroll_runs_active_period) keeps
// at most one run per period outside cancelled and failed.
type PayrollRun struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UniversityID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	PayrollPeriodID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_runs_number"`
	Period                  *PayrollPeriod  `gorm:"foreignKey:PayrollPeriodID;references:ID"`
	RunNumber               int64           `gorm:"not null;uniqueIndex:uq_payroll_runs_number"`
	Status                  string          `gorm:"type:varchar(20);not null;index"`
	TotalEmployeesProcessed int             `gorm:"not null;default:0"`
	TotalEmployeesSkipped   int             `gorm:"not null;default:0"`
	TotalGrossPay           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalAllowances         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalNetPay             decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	LockToken               *string         `gorm:"type:varchar(64)"`
	LockedAt                *time.Time
	StartedAt               *time.Time
	CalculatedAt            *time.Time
	ApprovedBy              *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt              *time.Time
	CompletedAt             *time.Time
	CancelledBy             *uuid.UUID `gorm:"type:uuid"`
	CancelledAt             *time.Time
	CancellationReason      *string   `gorm:"type:text"`
	FailureReason           *string   `gorm:"type:text"`
	CreatedBy               uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type PayrollPayment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UniversityID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PayrollRunID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_payments_run_employee"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_payments_run_employee;index"`
	GrossPay        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalAllowances decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	Status          string          `gorm:"type:varchar(20);not null;index"`
	NeedsReview     bool            `gorm:"not null;default:false"`
	ReviewReason    *string         `gorm:"type:text"`
	FailureReason   *string         `gorm:"type:text"`
	Snapshot        datatypes.JSON  `gorm:"column:calculation_snapshot;type:jsonb"`
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Lines       []PaymentLine       `gorm:"foreignKey:PaymentID"`
	Adjustments []PaymentAdjustment `gorm:"foreignKey:PaymentID"`
}

type PaymentLine struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind              string          `gorm:"type:varchar(20);not null"`
	ConfigID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Code              string          `gorm:"type:varchar(50);not null"`
	Name              string          `gorm:"type:varchar(120);not null"`
	CalculationMethod string          `gorm:"type:varchar(30);not null"`
	ComputedAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CapApplied        string          `gorm:"type:varchar(10);not null;default:''"`
	IsTaxable         bool
	ContributesToNet  bool
	CreatedAt         time.Time
}

func (PaymentLine) TableName() string {
	return "payroll_payment_lines"
}

// PaymentAdjustment is the only way to correct a completed payment.
type PaymentAdjustment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Reason    string          `gorm:"type:text;not null"`
	CreatedBy uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

func (PaymentAdjustment) TableName() string {
	return "payroll_payment_adjustments"
}

var runTransitions = map[string][]string{
	RunStatusPending:     {RunStatusCalculating, RunStatusCancelled, RunStatusFailed},
	RunStatusCalculating: {RunStatusCalculated, RunStatusFailed, RunStatusCancelled},
	RunStatusCalculated:  {RunStatusApproved, RunStatusCalculating, RunStatusCancelled, RunStatusFailed},
	RunStatusApproved:    {RunStatusProcessing, RunStatusCancelled, RunStatusFailed},
	RunStatusProcessing:  {RunStatusCompleted, RunStatusFailed, RunStatusCancelled},
	RunStatusFailed:      {RunStatusCalculating, RunStatusCancelled},
}

// CanTransitionRun reports whether a run may move from one status to another.
func CanTransitionRun(from, to string) bool {
	for _, s := range runTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsCalculatedOrLater covers the statuses where processing is a no-op,
// except for a calculated run with failed payments (see RetriesPayments).
func IsCalculatedOrLater(status string) bool {
	switch status {
	case RunStatusCalculated, RunStatusApproved, RunStatusProcessing, RunStatusCompleted:
		return true
	}
	return false
}

// RetriesPayments reports a calculated run whose failed payments can still
// be recalculated before approval.
func (r PayrollRun) RetriesPayments() bool {
	return r.Status == RunStatusCalculated && r.TotalEmployeesSkipped > 0
}
