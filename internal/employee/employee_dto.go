package employee

type CreateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	EmployeeNumber string `json:"employee_number"`
	DepartmentID   string `json:"department_id" binding:"omitempty,uuid"`
	HireDate       string `json:"hire_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active on_leave terminated"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	UniversityID   string `json:"university_id"`
	DepartmentID   string `json:"department_id,omitempty"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	EmployeeNumber string `json:"employee_number"`
	Status         string `json:"status"`
	HireDate       string `json:"hire_date"`
}

type CreateAssignmentRequest struct {
	PositionID        string  `json:"position_id" binding:"omitempty,uuid"`
	SupervisorID      string  `json:"supervisor_id" binding:"omitempty,uuid"`
	Title             string  `json:"title" binding:"required"`
	PayRateType       string  `json:"pay_rate_type" binding:"omitempty,oneof=hourly salary stipend"`
	HourlyRate        *string `json:"hourly_rate"`
	SalaryAmount      *string `json:"salary_amount"`
	StipendAmount     *string `json:"stipend_amount"`
	StipendFrequency  string  `json:"stipend_frequency"`
	MaxHoursPerWeek   *string `json:"max_hours_per_week"`
	MaxHoursPerPeriod *string `json:"max_hours_per_period"`
	HoursCapIsHard    bool    `json:"hours_cap_is_hard"`
	StartDate         string  `json:"start_date" binding:"required"`
	EndDate           *string `json:"end_date"`
}

type AssignmentResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	PositionID        string  `json:"position_id,omitempty"`
	PositionName      string  `json:"position_name,omitempty"`
	SupervisorID      string  `json:"supervisor_id,omitempty"`
	Title             string  `json:"title"`
	PayRateType       string  `json:"pay_rate_type"`
	HourlyRate        *string `json:"hourly_rate,omitempty"`
	SalaryAmount      *string `json:"salary_amount,omitempty"`
	StipendAmount     *string `json:"stipend_amount,omitempty"`
	StipendFrequency  string  `json:"stipend_frequency,omitempty"`
	MaxHoursPerWeek   *string `json:"max_hours_per_week,omitempty"`
	MaxHoursPerPeriod *string `json:"max_hours_per_period,omitempty"`
	HoursCapIsHard    bool    `json:"hours_cap_is_hard"`
	StartDate         string  `json:"start_date"`
	EndDate           *string `json:"end_date,omitempty"`
	IsActive          bool    `json:"is_active"`
	IsApproved        bool    `json:"is_approved"`
}
