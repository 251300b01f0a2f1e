package domain

import "errors"

var (
	// ErrUnknownStatus is returned when a status string is outside the enumeration
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownRole is returned when a role string is outside the enumeration
	ErrUnknownRole = errors.New("domain: unknown role")

	// ErrMalformedBooking is returned when a booking cannot be evaluated at all
	ErrMalformedBooking = errors.New("domain: malformed booking")
)
