package domain

// Default configuration values
const (
	DefaultGraceMinutes = 15
)

// Business validation constants
const (
	MaxGraceMinutes             = 240
	MaxNoteLength               = 500
	MaxCancellationReasonLength = 500
	MaxBulkConfirmSize          = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Reasons shared across the engine and the services
const (
	ReasonBookingNotFound   = "Booking not found"
	ReasonNoBarberAvailable = "No barber is available for this time slot"
)
