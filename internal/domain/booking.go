package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
	StatusRejected  BookingStatus = "rejected"
)

// AllStatuses lists every booking status in lifecycle order
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
	StatusRejected,
}

// ParseBookingStatus converts a raw string to a BookingStatus
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// IsValid returns true if the status belongs to the closed set
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow, StatusRejected:
		return true
	}
	return false
}

// IsTerminal returns true if no further transition is possible from the status
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow, StatusRejected:
		return true
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}

// Booking represents a barbershop appointment
type Booking struct {
	ID              string
	CustomerID      string
	BarberID        *string // nil until a barber is assigned
	ServiceID       string
	StartTime       time.Time
	DurationMinutes int
	Status          BookingStatus

	// Annotations attached by the caller, never interpreted by the engine
	RejectionReason    *string
	NoShowNote         *string
	CancellationReason *string

	StatusChangedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EndTime returns the scheduled end of the booking
func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// HasBarber returns true if a barber is assigned to the booking
func (b *Booking) HasBarber() bool {
	return b.BarberID != nil && *b.BarberID != ""
}

// IsAssignedTo returns true if the booking is assigned to the given barber
func (b *Booking) IsAssignedTo(barberID string) bool {
	return b.HasBarber() && *b.BarberID == barberID
}

// IsTerminal returns true if the booking can no longer change status
func (b *Booking) IsTerminal() bool {
	return b.Status.IsTerminal()
}

// ActiveStatuses lists the statuses from which a booking can still move
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// StatusUpdate describes a conditional status write.
// The write applies only while the stored status still equals From.
type StatusUpdate struct {
	BookingID string
	From      BookingStatus
	To        BookingStatus
	Note      *string // stored as the annotation matching To
	ChangedAt time.Time
}
