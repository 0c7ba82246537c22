package api

// SignupRequest 註冊請求；沒有 role 欄位，一律建立為 user
// swagger:model api.SignupRequest
type SignupRequest struct {
	Name         string `json:"name" example:"Bob"`
	Email        string `json:"email" example:"bob@example.com"`
	Password     string `json:"password" example:"Secret123!"`
	EmployeeCode string `json:"employee_code,omitempty" example:"EMP-042"`
}
