package api

// swagger:model api.EmployeeResponse
type EmployeeResponse struct {
	ID           int    `json:"id" example:"2"`
	Name         string `json:"name" example:"Bob"`
	EmployeeCode string `json:"employee_code" example:"EMP-042"`
}
