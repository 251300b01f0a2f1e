package change_status

import (
	"fmt"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

// validateRequest checks the request shape and parses the target status
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if req.BookingID == "" {
		return "", fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if req.Actor.ID == "" {
		return "", fmt.Errorf("%w: actor id is required", ErrInvalidInput)
	}
	if !req.Actor.Role.IsValid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Actor.Role)
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return "", fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return status, nil
}

// checkParticipant allows admin on any booking, a barber on bookings assigned
// to them and a customer on their own bookings
func checkParticipant(booking *domain.Booking, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleBarber:
		if booking.IsAssignedTo(actor.ID) {
			return nil
		}
	case domain.RoleCustomer:
		if booking.CustomerID == actor.ID {
			return nil
		}
	}
	return ErrAccessDenied
}
