package service

import "errors"

// Domain errors. The HTTP layer maps each of these to a status code.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts, try again later")

	ErrMissingFields  = errors.New("missing fields")
	ErrDuplicateEmail = errors.New("user already exists")
	// bcrypt only looks at the first 72 bytes of a password.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

	ErrShiftTooShort    = errors.New("shift must be at least 4 hours")
	ErrShiftOverlap     = errors.New("shift overlaps with existing one")
	ErrInvalidShift     = errors.New("invalid shift")
	ErrEmployeeNotFound = errors.New("employee not found")
)
