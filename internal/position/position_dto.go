package position

type PayDefaults struct {
	DefaultPayRateType      string  `json:"default_pay_rate_type" binding:"omitempty,oneof=hourly salary stipend"`
	DefaultHourlyRate       *string `json:"default_hourly_rate"`
	DefaultSalaryAmount     *string `json:"default_salary_amount"`
	DefaultStipendAmount    *string `json:"default_stipend_amount"`
	DefaultStipendFrequency string  `json:"default_stipend_frequency"`
	MaxHoursPerWeek         *string `json:"max_hours_per_week"`
}

type CreatePositionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PayDefaults
}

type UpdatePositionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PayDefaults
}

type PositionResponse struct {
	ID                      string  `json:"id"`
	UniversityID            string  `json:"university_id"`
	Name                    string  `json:"name"`
	Description             string  `json:"description"`
	DefaultPayRateType      string  `json:"default_pay_rate_type,omitempty"`
	DefaultHourlyRate       *string `json:"default_hourly_rate,omitempty"`
	DefaultSalaryAmount     *string `json:"default_salary_amount,omitempty"`
	DefaultStipendAmount    *string `json:"default_stipend_amount,omitempty"`
	DefaultStipendFrequency string  `json:"default_stipend_frequency,omitempty"`
	MaxHoursPerWeek         *string `json:"max_hours_per_week,omitempty"`
	CreatedAt               string  `json:"created_at"`
	UpdatedAt               string  `json:"updated_at"`
}
