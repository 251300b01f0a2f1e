package change_status

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("change_status: invalid input data")

	// ErrAccessDenied is returned when the actor is not a participant of the booking
	ErrAccessDenied = errors.New("change_status: access denied")

	// ErrStatusConflict is returned when the booking changed between read and write
	ErrStatusConflict = errors.New("change_status: booking was modified concurrently")

	// ErrScheduleUnavailable is returned when a barber could not be assigned on confirmation
	ErrScheduleUnavailable = errors.New("change_status: schedule service unavailable")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("change_status: internal error")
)
