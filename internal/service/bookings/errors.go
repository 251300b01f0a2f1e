package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the actor may not see or change the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrStatusConflict is returned when the booking changed between read and write
	ErrStatusConflict = errors.New("booking was modified concurrently")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
