// File: internal/model/user.go
package model

import "time"

// Role 是封閉的角色列舉，只允許 admin 與 user
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

const (
	DefaultEmployeeCode = "EMP-NEW"
	DefaultDepartment   = "General"
)

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	Role         Role      `db:"role" json:"role"`
	EmployeeCode string    `db:"employee_code" json:"employee_code"`
	Department   string    `db:"department" json:"department"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Employee is the assignable view of a user.
type Employee struct {
	ID           int    `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	EmployeeCode string `db:"employee_code" json:"employee_code"`
}
