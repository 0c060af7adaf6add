package position

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Position struct {
	ID                      uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name                    string           `gorm:"size:255;not null"`
	Description             string           `gorm:"type:text"`
	UniversityID            uuid.UUID        `gorm:"type:uuid;not null"`
	DefaultPayRateType      string           `gorm:"type:varchar(20)"`
	DefaultHourlyRate       *decimal.Decimal `gorm:"type:numeric(12,4)"`
	DefaultSalaryAmount     *decimal.Decimal `gorm:"type:numeric(14,2)"`
	DefaultStipendAmount    *decimal.Decimal `gorm:"type:numeric(14,2)"`
	DefaultStipendFrequency string           `gorm:"type:varchar(20)"`
	MaxHoursPerWeek         *decimal.Decimal `gorm:"type:numeric(6,2)"`
	CreatedAt               time.Time        `gorm:"autoCreateTime"`
	UpdatedAt               time.Time        `gorm:"autoUpdateTime"`
	DeletedAt               gorm.DeletedAt   `gorm:"index"`
}
