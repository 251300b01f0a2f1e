package change_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/engine/timewindow"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/engine/transition"
	bookingRepo "github.com/ThinhTran1001/barbershop-web-sub002/internal/infra/storage/booking"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/integrations/eventbus"
	assignBarberUC "github.com/ThinhTran1001/barbershop-web-sub002/internal/usecase/assign_barber"
)

// UseCase moves a booking through its lifecycle on behalf of an actor
type UseCase struct {
	bookingRepo  BookingRepository
	assigner     BarberAssigner
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	graceMinutes int
	logger       Logger
}

// NewUseCase creates the use case. graceMinutes bounds completion and
// no-show after the scheduled end.
func NewUseCase(
	bookingRepo BookingRepository,
	assigner BarberAssigner,
	publisher EventPublisher,
	metrics Metrics,
	graceMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		assigner:     assigner,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		graceMinutes: graceMinutes,
		logger:       logger,
	}
}

// Execute validates and commits a status change.
// Engine rejections are returned as *domain.RejectionError with the engine's reason.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChangeStatus: booking=%s, status=%s, actor=%s, role=%s",
		req.BookingID, req.Status, req.Actor.ID, req.Actor.Role)

	// 1. Validate input
	requested, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ChangeStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Read the clock once, every gate below sees the same instant
	now := uc.timeProvider.Now()

	// 3. Load the booking, a missing one is judged by the validator
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
		uc.logger.Error("ChangeStatus: failed to load booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
	}

	// 4. Only participants may act on a booking
	if booking != nil {
		if err := checkParticipant(booking, req.Actor); err != nil {
			uc.logger.Warn("ChangeStatus: actor=%s (%s) is not a participant of booking=%s",
				req.Actor.ID, req.Actor.Role, req.BookingID)
			return nil, err
		}
	}

	// 5. Transition table
	verdict, err := transition.ValidateTransition(booking, requested, req.Actor.Role)
	if err != nil {
		uc.logger.Error("ChangeStatus: cannot evaluate booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	uc.metrics.RecordDecision("transition", verdict.Allowed, string(verdict.Kind))
	if !verdict.Allowed {
		uc.logger.Warn("ChangeStatus: transition rejected for booking=%s: %s", req.BookingID, verdict.Reason)
		return nil, domain.Reject(verdict.Kind, verdict.Reason)
	}

	resp := &Response{Booking: booking}

	// 6. Time window for closing out
	if requested == domain.StatusCompleted || requested == domain.StatusNoShow {
		window, err := uc.checkWindow(booking, requested, req.Actor.Role, now)
		if err != nil {
			return nil, err
		}
		resp.Window = window
	}

	// 7. A booking is never confirmed without a barber
	if requested == domain.StatusConfirmed && !booking.HasBarber() {
		result, err := uc.assigner.Assign(ctx, booking, now)
		if err != nil {
			return nil, uc.assignmentError(booking.ID, err)
		}
		resp.Assignment = result
	}

	// 8. Conditional write keyed on the status the decision was made for
	upd := domain.StatusUpdate{
		BookingID: booking.ID,
		From:      booking.Status,
		To:        requested,
		Note:      req.Note,
		ChangedAt: now,
	}
	if err := uc.bookingRepo.UpdateStatus(ctx, upd); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			uc.logger.Warn("ChangeStatus: booking=%s changed concurrently, expected status=%s", booking.ID, upd.From)
			return nil, ErrStatusConflict
		}
		uc.logger.Error("ChangeStatus: failed to update booking=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	applyUpdate(booking, upd)

	// 9. Notify, failures do not undo the change
	override := resp.Window != nil && resp.Window.Override
	if err := uc.publisher.Publish(ctx, eventbus.NewStatusChanged(upd, req.Actor, override)); err != nil {
		uc.logger.Error("ChangeStatus: failed to publish event for booking=%s: %v", booking.ID, err)
	}

	uc.logger.Info("ChangeStatus: booking=%s moved %s -> %s by %s=%s",
		booking.ID, upd.From, upd.To, req.Actor.Role, req.Actor.ID)
	return resp, nil
}

func (uc *UseCase) checkWindow(booking *domain.Booking, requested domain.BookingStatus, role domain.Role, now time.Time) (*domain.WindowDecision, error) {
	gate := timewindow.CanComplete
	if requested == domain.StatusNoShow {
		gate = timewindow.CanMarkNoShow
	}

	decision, err := gate(booking, role, now, uc.graceMinutes)
	if err != nil {
		uc.logger.Error("ChangeStatus: cannot evaluate window of booking=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	uc.metrics.RecordDecision("timewindow", decision.Allowed, string(decision.Kind))

	if !decision.Allowed {
		uc.logger.Warn("ChangeStatus: window rejected for booking=%s: %s", booking.ID, decision.Reason)
		return nil, domain.Reject(decision.Kind, decision.Reason)
	}
	if decision.Override {
		uc.logger.Info("ChangeStatus: admin override of time window for booking=%s", booking.ID)
	}
	return &decision, nil
}

func (uc *UseCase) assignmentError(bookingID string, err error) error {
	var rejection *domain.RejectionError
	switch {
	case errors.As(err, &rejection):
		return rejection
	case errors.Is(err, assignBarberUC.ErrAlreadyAssigned):
		return ErrStatusConflict
	case errors.Is(err, assignBarberUC.ErrScheduleUnavailable):
		return fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
	default:
		uc.logger.Error("ChangeStatus: failed to assign barber to booking=%s: %v", bookingID, err)
		return fmt.Errorf("%w: failed to assign barber: %v", ErrInternal, err)
	}
}

// applyUpdate mirrors a committed update onto the loaded booking
func applyUpdate(booking *domain.Booking, upd domain.StatusUpdate) {
	booking.Status = upd.To
	changedAt := upd.ChangedAt
	booking.StatusChangedAt = &changedAt
	booking.UpdatedAt = upd.ChangedAt

	if upd.Note == nil {
		return
	}
	switch upd.To {
	case domain.StatusRejected:
		booking.RejectionReason = upd.Note
	case domain.StatusNoShow:
		booking.NoShowNote = upd.Note
	case domain.StatusCancelled:
		booking.CancellationReason = upd.Note
	}
}
