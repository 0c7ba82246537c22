package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shift-scheduler/internal/database"
	"shift-scheduler/internal/metrics"
	"shift-scheduler/internal/model"
	"shift-scheduler/internal/store"
)

var (
	listShifts       = store.ListShifts
	listShiftsForDay = store.ListShiftsForDay
	insertShift      = store.CreateShift
	listEmployees    = store.ListEmployees
)

const dateLayout = "2006-01-02"

type ShiftInput struct {
	UserID    int
	Date      string
	StartTime string
	EndTime   string
}

func requireAdmin(p model.Principal) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// ListShifts returns every shift for an admin and only the caller's own
// shifts for a user, newest date first.
func ListShifts(ctx context.Context, db database.DB, p model.Principal) ([]model.Shift, error) {
	var filter store.ShiftFilter
	switch p.Role {
	case model.RoleAdmin:
	case model.RoleUser:
		id := p.ID
		filter.UserID = &id
	default:
		return nil, ErrForbidden
	}
	return listShifts(ctx, db, filter)
}

// CreateShift assigns a shift. Only admins may call it.
func CreateShift(ctx context.Context, db database.DB, p model.Principal, in ShiftInput) (*model.Shift, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	date, candidate, err := parseShiftInput(in)
	if err != nil {
		metrics.ShiftRejectionsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	held, err := listShiftsForDay(ctx, db, in.UserID, date)
	if err != nil {
		return nil, err
	}
	existing := make([]Interval, 0, len(held))
	for _, s := range held {
		iv, err := ParseInterval(s.StartTime, s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("stored shift %d: %w", s.ID, err)
		}
		existing = append(existing, iv)
	}

	if err := ValidateShift(candidate, existing); err != nil {
		metrics.ShiftRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}

	created, err := insertShift(ctx, db, &model.Shift{
		UserID:    in.UserID,
		Date:      date,
		StartTime: FormatClock(candidate.Start),
		EndTime:   FormatClock(candidate.End),
	})
	switch {
	case errors.Is(err, store.ErrOverlap):
		// a concurrent insert won; the exclusion constraint caught it
		err = ErrShiftOverlap
	case errors.Is(err, store.ErrForeignKey):
		err = ErrEmployeeNotFound
	case errors.Is(err, store.ErrCheckViolation):
		err = ErrShiftTooShort
	}
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			metrics.ShiftRejectionsTotal.WithLabelValues(reason).Inc()
		}
		return nil, err
	}

	metrics.ShiftsCreatedTotal.Inc()
	return created, nil
}

// ListEmployees returns the users a shift can be assigned to. Admin only.
func ListEmployees(ctx context.Context, db database.DB, p model.Principal) ([]model.Employee, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	return listEmployees(ctx, db)
}

func parseShiftInput(in ShiftInput) (string, Interval, error) {
	if in.UserID <= 0 {
		return "", Interval{}, fmt.Errorf("%w: userId is required", ErrInvalidShift)
	}
	d, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return "", Interval{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidShift, in.Date)
	}
	iv, err := ParseInterval(in.StartTime, in.EndTime)
	if err != nil {
		return "", Interval{}, err
	}
	return d.Format(dateLayout), iv, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrShiftTooShort):
		return "duration"
	case errors.Is(err, ErrShiftOverlap):
		return "overlap"
	case errors.Is(err, ErrEmployeeNotFound):
		return "unknown_employee"
	case errors.Is(err, ErrInvalidShift):
		return "invalid"
	}
	return ""
}
