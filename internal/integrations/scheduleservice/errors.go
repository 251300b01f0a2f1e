package scheduleservice

import "errors"

var (
	// ErrInternal is returned when a request cannot be built
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrUnavailable is returned when the schedule service cannot be reached
	ErrUnavailable = errors.New("scheduleservice client: service unavailable")

	// ErrInvalidResponse is returned for unexpected status codes or payloads
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")
)
