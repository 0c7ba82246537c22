package service

import (
	"fmt"
	"time"
)

// MinShiftDuration is the shortest shift an admin may assign.
const MinShiftDuration = 4 * time.Hour

// Interval is a half-open [Start, End) span measured from midnight of
// the shift's date.
type Interval struct {
	Start time.Duration
	End   time.Duration
}

func (iv Interval) Duration() time.Duration { return iv.End - iv.Start }

// Overlaps uses half-open semantics: touching intervals do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// ParseClock parses "HH:MM" into an offset from midnight. Shifts are stored
// at minute precision, so seconds are rejected rather than dropped.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidShift, s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// FormatClock renders d as HH:MM.
func FormatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// ValidateShift checks candidate against the shifts the same employee
// already holds on the same date. Shifts never cross midnight, so an end
// at or before the start counts as too short.
func ValidateShift(candidate Interval, existing []Interval) error {
	if candidate.Duration() < MinShiftDuration {
		return ErrShiftTooShort
	}
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return ErrShiftOverlap
		}
	}
	return nil
}
