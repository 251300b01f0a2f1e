package assign_barber

import (
	"context"
	"time"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/integrations/eventbus"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/integrations/scheduleservice"
)

// BookingRepository booking storage used by the use case
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	AssignBarber(ctx context.Context, id string, barberID string) error
}

// ScheduleServiceClient source of barbers free for a slot
type ScheduleServiceClient interface {
	GetAvailableBarbers(ctx context.Context, serviceID string, start time.Time, durationMinutes int) ([]scheduleservice.Barber, error)
}

// EventPublisher sends committed changes to the broker
type EventPublisher interface {
	Publish(ctx context.Context, event eventbus.Event) error
}

// Metrics engine decision counters
type Metrics interface {
	RecordDecision(component string, allowed bool, kind string)
	RecordAssignment(strategy string)
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
