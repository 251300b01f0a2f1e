package bookings

import (
	"context"
	"time"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/integrations/eventbus"
)

// BookingRepository interface of the booking repository
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, upd domain.StatusUpdate) error
}

// BarberAssigner assigns a barber to an unassigned booking before it is confirmed
type BarberAssigner interface {
	Assign(ctx context.Context, booking *domain.Booking, now time.Time) (*domain.AssignmentResult, error)
}

// EventPublisher sends committed changes to the broker
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event) error
}

// Metrics engine decision counters
type Metrics interface {
	RecordDecision(component string, allowed bool, kind string)
}

// TimeProvider source of the current time
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider reads the wall clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
