package transition

import (
	"fmt"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

const (
	msgAlreadyConfirmed = "Booking is already confirmed"
	msgConfirmCancelled = "Booking has already been cancelled"
	msgConfirmCompleted = "Booking has already been completed"
	msgConfirmNoShow    = "Booking was marked as no-show"
	msgConfirmRejected  = "Booking has already been rejected"
	msgCancelCancelled  = "Booking has already been cancelled"
	msgCancelCompleted  = "Cannot cancel a completed booking"
	msgCancelNoShow     = "Cannot cancel a booking marked as no-show"
	msgCancelRejected   = "Cannot cancel a rejected booking"
)

// ValidateConfirmation is the pending → confirmed check used by bulk
// confirmation, phrased per current status.
func ValidateConfirmation(booking *domain.Booking) (domain.TransitionResult, error) {
	if booking == nil {
		return reject(domain.RejectionNotFound, msgNotFound), nil
	}

	switch booking.Status {
	case domain.StatusPending:
		return allow(), nil
	case domain.StatusConfirmed:
		return reject(domain.RejectionTerminalState, msgAlreadyConfirmed), nil
	case domain.StatusCancelled:
		return reject(domain.RejectionTerminalState, msgConfirmCancelled), nil
	case domain.StatusCompleted:
		return reject(domain.RejectionTerminalState, msgConfirmCompleted), nil
	case domain.StatusNoShow:
		return reject(domain.RejectionTerminalState, msgConfirmNoShow), nil
	case domain.StatusRejected:
		return reject(domain.RejectionTerminalState, msgConfirmRejected), nil
	}

	return domain.TransitionResult{}, fmt.Errorf("%w: booking %s has status %q",
		domain.ErrMalformedBooking, booking.ID, booking.Status)
}

// ValidateCancellation allows cancelling only pending and confirmed bookings.
// The reason for every other status is fixed, so repeated calls read the same.
func ValidateCancellation(booking *domain.Booking) (domain.TransitionResult, error) {
	if booking == nil {
		return reject(domain.RejectionNotFound, msgNotFound), nil
	}

	switch booking.Status {
	case domain.StatusPending, domain.StatusConfirmed:
		return allow(), nil
	case domain.StatusCancelled:
		return reject(domain.RejectionTerminalState, msgCancelCancelled), nil
	case domain.StatusCompleted:
		return reject(domain.RejectionTerminalState, msgCancelCompleted), nil
	case domain.StatusNoShow:
		return reject(domain.RejectionTerminalState, msgCancelNoShow), nil
	case domain.StatusRejected:
		return reject(domain.RejectionTerminalState, msgCancelRejected), nil
	}

	return domain.TransitionResult{}, fmt.Errorf("%w: booking %s has status %q",
		domain.ErrMalformedBooking, booking.ID, booking.Status)
}
