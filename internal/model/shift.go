// File: internal/model/shift.go
package model

import "time"

// Shift 的 Date 格式為 YYYY-MM-DD，StartTime/EndTime 為 HH:MM
type Shift struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	Date         string    `db:"date" json:"date"`
	StartTime    string    `db:"start_time" json:"start_time"`
	EndTime      string    `db:"end_time" json:"end_time"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	EmployeeName string    `db:"employee_name" json:"employee_name,omitempty"`
	EmployeeCode string    `db:"employee_code" json:"employee_code,omitempty"`
}
