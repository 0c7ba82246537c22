package api

import "time"

// ShiftRequest 指派班次
// swagger:model api.ShiftRequest
type ShiftRequest struct {
	UserID    int    `json:"userId" validate:"gt=0" example:"2"`
	Date      string `json:"date" validate:"required" example:"2025-03-10"`
	StartTime string `json:"startTime" validate:"required" example:"09:00"`
	EndTime   string `json:"endTime" validate:"required" example:"13:00"`
}

// swagger:model api.ShiftResponse
type ShiftResponse struct {
	ID           int       `json:"id" example:"10"`
	UserID       int       `json:"user_id" example:"2"`
	Date         string    `json:"date" example:"2025-03-10"`
	StartTime    string    `json:"start_time" example:"09:00"`
	EndTime      string    `json:"end_time" example:"13:00"`
	CreatedAt    time.Time `json:"created_at" example:"2025-03-01T10:00:00Z"`
	EmployeeName string    `json:"employee_name,omitempty" example:"Bob"`
	EmployeeCode string    `json:"employee_code,omitempty" example:"EMP-042"`
}
