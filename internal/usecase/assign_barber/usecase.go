package assign_barber

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/engine/assignment"
	bookingRepo "github.com/ThinhTran1001/barbershop-web-sub002/internal/infra/storage/booking"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/integrations/eventbus"
)

// UseCase picks and stores a barber for a booking that has none
type UseCase struct {
	bookingRepo    BookingRepository
	scheduleClient ScheduleServiceClient
	publisher      EventPublisher
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleClient ScheduleServiceClient,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		scheduleClient: scheduleClient,
		publisher:      publisher,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute assigns a barber on behalf of an admin or the booking's customer
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignBarber: booking=%s, actor=%s, role=%s", req.BookingID, req.Actor.ID, req.Actor.Role)

	// 1. Validate input
	if req.BookingID == "" || req.Actor.ID == "" || !req.Actor.Role.IsValid() {
		uc.logger.Warn("AssignBarber: invalid request %+v", *req)
		return nil, ErrInvalidInput
	}

	// 2. Read the clock once for the whole evaluation
	now := uc.timeProvider.Now()

	// 3. Load the booking
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("AssignBarber: booking=%s not found", req.BookingID)
			return nil, domain.Reject(domain.RejectionNotFound, domain.ReasonBookingNotFound)
		}
		uc.logger.Error("AssignBarber: failed to load booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
	}

	// 4. Only admin or the owning customer may ask for an assignment
	switch req.Actor.Role {
	case domain.RoleAdmin:
	case domain.RoleCustomer:
		if booking.CustomerID != req.Actor.ID {
			uc.logger.Warn("AssignBarber: customer=%s does not own booking=%s", req.Actor.ID, req.BookingID)
			return nil, ErrAccessDenied
		}
	default:
		uc.logger.Warn("AssignBarber: role=%s may not assign barbers", req.Actor.Role)
		return nil, ErrAccessDenied
	}

	// 5. Booking must still be open and unassigned
	if booking.IsTerminal() {
		uc.logger.Warn("AssignBarber: booking=%s is closed, status=%s", req.BookingID, booking.Status)
		return nil, ErrBookingClosed
	}
	if booking.HasBarber() {
		uc.logger.Warn("AssignBarber: booking=%s already has barber=%s", req.BookingID, *booking.BarberID)
		return nil, ErrAlreadyAssigned
	}

	// 6. Select and store
	result, err := uc.Assign(ctx, booking, now)
	if err != nil {
		return nil, err
	}

	return &Response{
		BookingID:  booking.ID,
		Chosen:     *result.Chosen,
		Alternates: result.Alternates,
		Strategy:   result.Strategy,
	}, nil
}

// Assign runs the assignment selector for an unassigned booking and stores the
// chosen barber. On success booking.BarberID is updated in place.
// An empty candidate pool is returned as a no_candidates rejection.
func (uc *UseCase) Assign(ctx context.Context, booking *domain.Booking, now time.Time) (*domain.AssignmentResult, error) {
	// 1. Candidates already filtered for availability by the schedule service
	barbers, err := uc.scheduleClient.GetAvailableBarbers(ctx, booking.ServiceID, booking.StartTime, booking.DurationMinutes)
	if err != nil {
		uc.logger.Error("AssignBarber: failed to fetch candidates for booking=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
	}

	candidates := make([]domain.CandidateBarber, 0, len(barbers))
	for _, b := range barbers {
		candidates = append(candidates, b.ToDomain())
	}

	// 2. Pick
	result := assignment.SelectBarber(candidates, now)
	if result.Chosen == nil {
		uc.metrics.RecordDecision("assignment", false, string(domain.RejectionNoCandidates))
		uc.logger.Warn("AssignBarber: no candidates for booking=%s at %s", booking.ID, booking.StartTime.Format(time.RFC3339))
		return nil, domain.Reject(domain.RejectionNoCandidates, domain.ReasonNoBarberAvailable)
	}
	uc.metrics.RecordDecision("assignment", true, "")

	// 3. Conditional write, only while barber_id is still empty
	if err := uc.bookingRepo.AssignBarber(ctx, booking.ID, result.Chosen.ID); err != nil {
		if errors.Is(err, bookingRepo.ErrAlreadyAssigned) {
			uc.logger.Warn("AssignBarber: booking=%s was assigned concurrently", booking.ID)
			return nil, ErrAlreadyAssigned
		}
		uc.logger.Error("AssignBarber: failed to store barber for booking=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to store assignment: %v", ErrInternal, err)
	}

	barberID := result.Chosen.ID
	booking.BarberID = &barberID
	uc.metrics.RecordAssignment(string(result.Strategy))

	// 4. Notify, failures do not undo the assignment
	if err := uc.publisher.Publish(ctx, eventbus.NewBarberAssigned(booking.ID, result, now)); err != nil {
		uc.logger.Error("AssignBarber: failed to publish event for booking=%s: %v", booking.ID, err)
	}

	uc.logger.Info("AssignBarber: booking=%s assigned to barber=%s, strategy=%s, alternates=%d",
		booking.ID, barberID, result.Strategy, len(result.Alternates))
	return &result, nil
}
