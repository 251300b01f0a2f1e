package bookings

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
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/service/bookings/models"
)

const (
	reasonConcurrentChange = "Booking was modified concurrently"
	reasonAssignFailed     = "Barber could not be assigned"
	reasonInternal         = "Booking could not be confirmed"
)

// Service booking reads and status operations that are not a single transition request
type Service struct {
	bookingRepo  BookingRepository
	assigner     BarberAssigner
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	graceMinutes int
	logger       Logger
}

// NewService creates a new booking service
func NewService(
	bookingRepo BookingRepository,
	assigner BarberAssigner,
	publisher EventPublisher,
	metrics Metrics,
	graceMinutes int,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		assigner:     assigner,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		graceMinutes: graceMinutes,
		logger:       logger,
	}
}

// GetByID returns a booking the actor participates in.
// Admin sees every booking, a barber the ones assigned to them and a customer their own.
func (s *Service) GetByID(ctx context.Context, id string, actor domain.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for %s=%s", id, actor.Role, actor.ID)

	booking, err := s.load(ctx, "GetByID", id, actor)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking, transition.AllowedTargets(actor.Role, booking.Status)), nil
}

// GetCompletionWindow reports whether the actor could complete the booking right now
// together with the window bounds and the current phase.
// A negative decision is part of the response, not an error.
func (s *Service) GetCompletionWindow(ctx context.Context, id string, actor domain.Actor) (*models.CompletionWindowResponse, error) {
	s.logger.Info("GetCompletionWindow: booking id=%s for %s=%s", id, actor.Role, actor.ID)

	booking, err := s.load(ctx, "GetCompletionWindow", id, actor)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	decision, err := timewindow.CanComplete(booking, actor.Role, now, s.graceMinutes)
	if err != nil {
		s.logger.Error("GetCompletionWindow: cannot evaluate booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetCompletionWindow - %v", ErrInternal, err)
	}

	return models.FromWindowDecision(booking.ID, decision, now), nil
}

// Cancel moves a pending or confirmed booking to cancelled.
// Negative decisions are returned as *domain.RejectionError.
func (s *Service) Cancel(ctx context.Context, id string, actor domain.Actor, reason *string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by %s=%s", id, actor.Role, actor.ID)

	if reason != nil && len(*reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: reason too long for booking id=%s", id)
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.load(ctx, "Cancel", id, actor)
	if err != nil {
		return nil, err
	}

	// Status first so a repeated cancel reads the same, then the role table
	verdict, err := transition.ValidateCancellation(booking)
	if err == nil && verdict.Allowed {
		verdict, err = transition.ValidateTransition(booking, domain.StatusCancelled, actor.Role)
	}
	if err != nil {
		s.logger.Error("Cancel: cannot evaluate booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - %v", ErrInternal, err)
	}
	s.metrics.RecordDecision("transition", verdict.Allowed, string(verdict.Kind))
	if !verdict.Allowed {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled: %s", id, verdict.Reason)
		return nil, domain.Reject(verdict.Kind, verdict.Reason)
	}

	upd := domain.StatusUpdate{
		BookingID: booking.ID,
		From:      booking.Status,
		To:        domain.StatusCancelled,
		Note:      reason,
		ChangedAt: s.timeProvider.Now(),
	}
	if err := s.commit(ctx, booking, upd, actor); err != nil {
		if errors.Is(err, ErrStatusConflict) {
			s.logger.Warn("Cancel: booking id=%s changed concurrently", id)
			return nil, err
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(booking, transition.AllowedTargets(actor.Role, booking.Status)), nil
}

// ConfirmMany confirms pending bookings in bulk on behalf of an admin.
// Every id gets its own result, one failure does not stop the others.
// Bookings without a barber get one assigned before confirmation.
func (s *Service) ConfirmMany(ctx context.Context, ids []string, actor domain.Actor) (*models.ConfirmManyResponse, error) {
	s.logger.Info("ConfirmMany: %d bookings by %s=%s", len(ids), actor.Role, actor.ID)

	if actor.Role != domain.RoleAdmin {
		s.logger.Warn("ConfirmMany: role=%s may not confirm in bulk", actor.Role)
		return nil, ErrAccessDenied
	}
	ids, err := normalizeIDs(ids)
	if err != nil {
		s.logger.Warn("ConfirmMany: invalid ids: %v", err)
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("ConfirmMany: repository error: %v", err)
		return nil, fmt.Errorf("%w: ConfirmMany - repository error: %v", ErrInternal, err)
	}

	byID := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}

	now := s.timeProvider.Now()
	resp := &models.ConfirmManyResponse{Results: make([]models.ConfirmResult, 0, len(ids))}
	for _, id := range ids {
		result := s.confirmOne(ctx, id, byID[id], actor, now)
		if result.Confirmed {
			resp.Confirmed++
		} else {
			resp.Failed++
		}
		resp.Results = append(resp.Results, result)
	}

	s.logger.Info("ConfirmMany: confirmed=%d, failed=%d", resp.Confirmed, resp.Failed)
	return resp, nil
}

func (s *Service) confirmOne(ctx context.Context, id string, booking *domain.Booking, actor domain.Actor, now time.Time) models.ConfirmResult {
	result := models.ConfirmResult{BookingID: id}

	verdict, err := transition.ValidateConfirmation(booking)
	if err != nil {
		s.logger.Error("ConfirmMany: cannot evaluate booking id=%s: %v", id, err)
		result.Reason = reasonInternal
		return result
	}
	s.metrics.RecordDecision("transition", verdict.Allowed, string(verdict.Kind))
	if !verdict.Allowed {
		result.Reason = verdict.Reason
		return result
	}

	if !booking.HasBarber() {
		if _, err := s.assigner.Assign(ctx, booking, now); err != nil {
			var rejection *domain.RejectionError
			if errors.As(err, &rejection) {
				result.Reason = rejection.Reason
			} else {
				s.logger.Error("ConfirmMany: failed to assign barber to booking id=%s: %v", id, err)
				result.Reason = reasonAssignFailed
			}
			return result
		}
	}

	upd := domain.StatusUpdate{
		BookingID: booking.ID,
		From:      booking.Status,
		To:        domain.StatusConfirmed,
		ChangedAt: now,
	}
	if err := s.commit(ctx, booking, upd, actor); err != nil {
		if errors.Is(err, ErrStatusConflict) {
			result.Reason = reasonConcurrentChange
		} else {
			s.logger.Error("ConfirmMany: failed to confirm booking id=%s: %v", id, err)
			result.Reason = reasonInternal
		}
		return result
	}

	result.Confirmed = true
	result.BarberID = booking.BarberID
	return result
}

// Helper methods

// load fetches a booking and checks that the actor participates in it
func (s *Service) load(ctx context.Context, op, id string, actor domain.Actor) (*domain.Booking, error) {
	if id == "" || actor.ID == "" || !actor.Role.IsValid() {
		s.logger.Warn("%s: invalid input id=%q actor=%q role=%q", op, id, actor.ID, actor.Role)
		return nil, ErrInvalidInput
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !canAccess(booking, actor) {
		s.logger.Warn("%s: access denied for %s=%s to booking id=%s", op, actor.Role, actor.ID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// commit writes the update conditionally, mirrors it on booking and publishes the event
func (s *Service) commit(ctx context.Context, booking *domain.Booking, upd domain.StatusUpdate, actor domain.Actor) error {
	if err := s.bookingRepo.UpdateStatus(ctx, upd); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusConflict) {
			return ErrStatusConflict
		}
		return fmt.Errorf("%w: update status: %v", ErrInternal, err)
	}

	booking.Status = upd.To
	changedAt := upd.ChangedAt
	booking.StatusChangedAt = &changedAt
	booking.UpdatedAt = upd.ChangedAt
	if upd.To == domain.StatusCancelled && upd.Note != nil {
		booking.CancellationReason = upd.Note
	}

	if err := s.publisher.Publish(ctx, eventbus.NewStatusChanged(upd, actor, false)); err != nil {
		s.logger.Error("commit: failed to publish event for booking id=%s: %v", booking.ID, err)
	}
	return nil
}

// canAccess admin sees every booking, a barber the assigned ones, a customer their own
func canAccess(booking *domain.Booking, actor domain.Actor) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleBarber:
		return booking.IsAssignedTo(actor.ID)
	case domain.RoleCustomer:
		return booking.CustomerID == actor.ID
	}
	return false
}

// normalizeIDs drops duplicates keeping the first occurrence
func normalizeIDs(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one booking id is required", ErrInvalidInput)
	}
	if len(ids) > domain.MaxBulkConfirmSize {
		return nil, fmt.Errorf("%w: at most %d bookings per request", ErrInvalidInput, domain.MaxBulkConfirmSize)
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("%w: empty booking id", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
