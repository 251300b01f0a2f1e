package assign_barber

import "errors"

var (
	// ErrInvalidInput is returned for malformed requests
	ErrInvalidInput = errors.New("assign_barber: invalid input data")

	// ErrAccessDenied is returned when the actor may not assign a barber to the booking
	ErrAccessDenied = errors.New("assign_barber: access denied")

	// ErrAlreadyAssigned is returned when the booking already has a barber
	ErrAlreadyAssigned = errors.New("assign_barber: barber already assigned")

	// ErrBookingClosed is returned when the booking is in a terminal status
	ErrBookingClosed = errors.New("assign_barber: booking is closed")

	// ErrScheduleUnavailable is returned when candidate barbers cannot be fetched
	ErrScheduleUnavailable = errors.New("assign_barber: schedule service unavailable")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("assign_barber: internal error")
)
