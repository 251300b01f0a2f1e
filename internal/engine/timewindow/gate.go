package timewindow

import (
	"time"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

const (
	msgCompleteNotEligible = "only a barber or admin may complete a booking"
	msgNoShowNotEligible   = "only a barber or admin may mark a booking as no-show"
)

// CanComplete gates the completed transition by role.
// Admin always passes with Override set and barber is held to the time window.
// Every other role is rejected.
func CanComplete(booking *domain.Booking, role domain.Role, now time.Time, graceMinutes int) (domain.WindowDecision, error) {
	return gate(booking, role, now, graceMinutes, msgCompleteNotEligible)
}

// CanMarkNoShow gates the no_show transition with the same rules as CanComplete.
func CanMarkNoShow(booking *domain.Booking, role domain.Role, now time.Time, graceMinutes int) (domain.WindowDecision, error) {
	return gate(booking, role, now, graceMinutes, msgNoShowNotEligible)
}

func gate(booking *domain.Booking, role domain.Role, now time.Time, graceMinutes int, notEligible string) (domain.WindowDecision, error) {
	if err := checkBooking(booking); err != nil {
		return domain.WindowDecision{}, err
	}

	switch role {
	case domain.RoleAdmin:
		// Bounds are reported for display only, the window is not enforced
		window := computeWindow(booking, graceMinutes)
		return domain.WindowDecision{
			Allowed:  true,
			Override: true,
			Window:   window,
			Phase:    phaseAt(window, now),
		}, nil

	case domain.RoleBarber:
		return IsWithinTimeWindow(booking, now, graceMinutes)

	default:
		return domain.WindowDecision{
			Allowed: false,
			Reason:  notEligible,
			Kind:    domain.RejectionRoleNotEligible,
		}, nil
	}
}
