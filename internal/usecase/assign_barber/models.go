package assign_barber

import "github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"

// Request assign a barber to an unassigned booking
type Request struct {
	BookingID string
	Actor     domain.Actor
}

// Response the assignment that was committed
type Response struct {
	BookingID  string
	Chosen     domain.CandidateBarber
	Alternates []domain.CandidateBarber
	Strategy   domain.AssignmentStrategy
}
