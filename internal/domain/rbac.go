package domain

// EnforceRequest is shared by the rbac service and the route middleware so
// neither package has to import the other.
type EnforceRequest struct {
	EmployeeID   string `json:"employee_id" binding:"required"`
	UniversityID string `json:"university_id" binding:"required"`
	Resource     string `json:"resource" binding:"required"`
	Action       string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
