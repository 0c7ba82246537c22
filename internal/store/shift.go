package store

import (
	"context"
	"fmt"

	"shift-scheduler/internal/database"
	"shift-scheduler/internal/model"
)

// ShiftFilter narrows ListShifts. A nil UserID means every user.
type ShiftFilter struct {
	UserID *int
}

const shiftSelect = `SELECT s.id, s.user_id,
		to_char(s.date, 'YYYY-MM-DD'),
		to_char(s.start_time, 'HH24:MI'),
		to_char(s.end_time, 'HH24:MI'),
		s.created_at,
		u.name, u.employee_code
	 FROM shifts s
	 JOIN users u ON s.user_id = u.id`

func ListShifts(ctx context.Context, db database.DB, f ShiftFilter) ([]model.Shift, error) {
	query := shiftSelect
	var args []any
	if f.UserID != nil {
		query += ` WHERE s.user_id = $1`
		args = append(args, *f.UserID)
	}
	query += ` ORDER BY s.date DESC, s.start_time ASC, s.id ASC`

	shifts, err := queryShifts(ctx, db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListShifts: %w", err)
	}
	return shifts, nil
}

// ListShiftsForDay returns the shifts already held by userID on date.
func ListShiftsForDay(ctx context.Context, db database.DB, userID int, date string) ([]model.Shift, error) {
	shifts, err := queryShifts(ctx, db,
		shiftSelect+` WHERE s.user_id = $1 AND s.date = $2::date
		 ORDER BY s.start_time ASC`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("ListShiftsForDay: %w", err)
	}
	return shifts, nil
}

func CreateShift(ctx context.Context, db database.DB, s *model.Shift) (*model.Shift, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO shifts (user_id, date, start_time, end_time)
		 VALUES ($1, $2::date, $3::time, $4::time)
		 RETURNING id,
			to_char(date, 'YYYY-MM-DD'),
			to_char(start_time, 'HH24:MI'),
			to_char(end_time, 'HH24:MI'),
			created_at`,
		s.UserID,
		s.Date,
		s.StartTime,
		s.EndTime,
	)
	if err := row.Scan(&s.ID, &s.Date, &s.StartTime, &s.EndTime, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateShift: %w", translate(err))
	}
	return s, nil
}

func queryShifts(ctx context.Context, db database.DB, query string, args ...any) ([]model.Shift, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	shifts := []model.Shift{}
	for rows.Next() {
		var s model.Shift
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.CreatedAt,
			&s.EmployeeName,
			&s.EmployeeCode,
		); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}
