package change_status

import "github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"

// Request move a booking to another status
type Request struct {
	BookingID string
	Status    string
	Actor     domain.Actor
	Note      *string // rejection reason, no-show note or cancellation reason
}

// Response the booking after the committed change
type Response struct {
	Booking    *domain.Booking
	Window     *domain.WindowDecision   // set for completed and no_show
	Assignment *domain.AssignmentResult // set when a barber was assigned on confirmation
}
