package eventbus

import (
	"time"

	"github.com/google/uuid"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

const (
	RoutingStatusChanged  = "booking.status_changed"
	RoutingBarberAssigned = "booking.barber_assigned"
)

// Event is a message published on the booking exchange
type Event interface {
	ID() string
	RoutingKey() string
}

// BookingStatusChanged is emitted after a status change is committed
type BookingStatusChanged struct {
	EventID    string    `json:"eventId"`
	BookingID  string    `json:"bookingId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ActorID    string    `json:"actorId"`
	ActorRole  string    `json:"actorRole"`
	Note       *string   `json:"note,omitempty"`
	Override   bool      `json:"override,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewStatusChanged builds the event for a committed update
func NewStatusChanged(upd domain.StatusUpdate, actor domain.Actor, override bool) BookingStatusChanged {
	return BookingStatusChanged{
		EventID:    uuid.NewString(),
		BookingID:  upd.BookingID,
		From:       upd.From.String(),
		To:         upd.To.String(),
		ActorID:    actor.ID,
		ActorRole:  actor.Role.String(),
		Note:       upd.Note,
		Override:   override,
		OccurredAt: upd.ChangedAt,
	}
}

func (e BookingStatusChanged) ID() string         { return e.EventID }
func (e BookingStatusChanged) RoutingKey() string { return RoutingStatusChanged }

// BarberAssigned is emitted after the assignment selector placed a barber
type BarberAssigned struct {
	EventID    string    `json:"eventId"`
	BookingID  string    `json:"bookingId"`
	BarberID   string    `json:"barberId"`
	Strategy   string    `json:"strategy"`
	Alternates []string  `json:"alternates"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewBarberAssigned builds the event for a committed assignment
func NewBarberAssigned(bookingID string, result domain.AssignmentResult, at time.Time) BarberAssigned {
	alternates := make([]string, 0, len(result.Alternates))
	for _, b := range result.Alternates {
		alternates = append(alternates, b.ID)
	}

	event := BarberAssigned{
		EventID:    uuid.NewString(),
		BookingID:  bookingID,
		Strategy:   string(result.Strategy),
		Alternates: alternates,
		OccurredAt: at,
	}
	if result.Chosen != nil {
		event.BarberID = result.Chosen.ID
	}
	return event
}

func (e BarberAssigned) ID() string         { return e.EventID }
func (e BarberAssigned) RoutingKey() string { return RoutingBarberAssigned }
