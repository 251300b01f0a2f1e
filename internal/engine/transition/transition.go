// Package transition enforces the booking status state machine per actor role.
//
//	pending ──► confirmed ──► completed
//	   │            │──────► no_show
//	   │            │──────► cancelled
//	   │            └──────► rejected
//	   ├──► cancelled
//	   └──► rejected
//
// completed, cancelled, no_show and rejected are terminal.
package transition

import (
	"fmt"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

const (
	msgNotFound          = domain.ReasonBookingNotFound
	msgTerminalCancelled = "Booking has already been cancelled and cannot be changed"
	msgTerminalCompleted = "Booking has already been completed and cannot be changed"
	msgTerminalNoShow    = "Booking was marked as no-show and cannot be changed"
	msgTerminalRejected  = "Booking has been rejected and cannot be changed"
	msgTerminalGeneric   = "Booking is in a final state and cannot be changed"
	msgRoleNotPermitted  = "%s cannot change status from %s to %s"
)

// ValidateTransition decides whether role may move booking to the requested status.
// Rejections are returned in the result. An error means the booking or role
// could not be evaluated at all.
func ValidateTransition(booking *domain.Booking, requested domain.BookingStatus, role domain.Role) (domain.TransitionResult, error) {
	if booking == nil {
		return reject(domain.RejectionNotFound, msgNotFound), nil
	}
	if !booking.Status.IsValid() {
		return domain.TransitionResult{}, fmt.Errorf("%w: booking %s has status %q",
			domain.ErrMalformedBooking, booking.ID, booking.Status)
	}
	if !role.IsValid() {
		return domain.TransitionResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownRole, role)
	}

	// Terminal bookings never move, not even to the same status and not even for admin
	if booking.Status.IsTerminal() {
		return reject(domain.RejectionTerminalState, terminalReason(booking.Status)), nil
	}

	if !permitted(role, booking.Status, requested) {
		return reject(domain.RejectionRoleNotPermitted,
			fmt.Sprintf(msgRoleNotPermitted, role, booking.Status, requested)), nil
	}

	return allow(), nil
}

// AllowedTargets returns the statuses role may move a booking to from current,
// in lifecycle order. Empty for terminal statuses.
func AllowedTargets(role domain.Role, current domain.BookingStatus) []domain.BookingStatus {
	targets := make([]domain.BookingStatus, 0, len(domain.AllStatuses))
	if current.IsTerminal() {
		return targets
	}
	for _, next := range domain.AllStatuses {
		if permitted(role, current, next) {
			targets = append(targets, next)
		}
	}
	return targets
}

// permitted is the role × current × requested table
func permitted(role domain.Role, from, to domain.BookingStatus) bool {
	switch role {
	case domain.RoleAdmin:
		switch from {
		case domain.StatusPending:
			return to == domain.StatusConfirmed || to == domain.StatusCancelled || to == domain.StatusRejected
		case domain.StatusConfirmed:
			return to == domain.StatusCompleted || to == domain.StatusCancelled ||
				to == domain.StatusNoShow || to == domain.StatusRejected
		}
	case domain.RoleBarber:
		switch from {
		case domain.StatusPending:
			return false
		case domain.StatusConfirmed:
			return to == domain.StatusCompleted || to == domain.StatusNoShow
		}
	case domain.RoleCustomer:
		switch from {
		case domain.StatusPending, domain.StatusConfirmed:
			return to == domain.StatusCancelled
		}
	}
	return false
}

func terminalReason(status domain.BookingStatus) string {
	switch status {
	case domain.StatusCancelled:
		return msgTerminalCancelled
	case domain.StatusCompleted:
		return msgTerminalCompleted
	case domain.StatusNoShow:
		return msgTerminalNoShow
	case domain.StatusRejected:
		return msgTerminalRejected
	default:
		return msgTerminalGeneric
	}
}

func allow() domain.TransitionResult {
	return domain.TransitionResult{Allowed: true}
}

func reject(kind domain.RejectionKind, reason string) domain.TransitionResult {
	return domain.TransitionResult{Allowed: false, Reason: reason, Kind: kind}
}
