package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking has the given id
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStatusConflict is returned when the stored status no longer matches the expected one
	ErrStatusConflict = errors.New("booking.repository: status changed concurrently")

	// ErrAlreadyAssigned is returned when the booking already has a barber or is closed
	ErrAlreadyAssigned = errors.New("booking.repository: barber already assigned")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when a SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
