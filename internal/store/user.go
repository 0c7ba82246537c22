package store

import (
	"context"
	"fmt"

	"shift-scheduler/internal/database"
	"shift-scheduler/internal/model"
)

const userColumns = `id, name, email, password, role, employee_code, department, created_at`

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.EmployeeCode,
		&u.Department,
		&u.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", translate(err))
	}
	return u, nil
}

func EmailExists(ctx context.Context, db database.DB, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("EmailExists: %w", translate(err))
	}
	return exists, nil
}

// CreateUser inserts u and fills in ID and CreatedAt.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, email, password, role, employee_code, department)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.EmployeeCode,
		u.Department,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", translate(err))
	}
	return u, nil
}

// EnsureUser inserts u unless the email is already taken. It reports
// whether a row was written.
func EnsureUser(ctx context.Context, db database.DB, u *model.User) (bool, error) {
	tag, err := db.Exec(ctx,
		`INSERT INTO users (name, email, password, role, employee_code, department)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO NOTHING`,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.EmployeeCode,
		u.Department,
	)
	if err != nil {
		return false, fmt.Errorf("EnsureUser: %w", translate(err))
	}
	return tag.RowsAffected() > 0, nil
}

// ListEmployees returns assignable users; admins are left out.
func ListEmployees(ctx context.Context, db database.DB) ([]model.Employee, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, employee_code
		 FROM users WHERE role = $1
		 ORDER BY name ASC, id ASC`,
		model.RoleUser,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEmployees: %w", translate(err))
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.EmployeeCode); err != nil {
			return nil, fmt.Errorf("ListEmployees: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEmployees: %w", err)
	}
	return employees, nil
}
