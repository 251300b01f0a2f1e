package assign_barber

import (
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	assignBarber "github.com/ThinhTran1001/barbershop-web-sub002/internal/usecase/assign_barber"
)

// BarberResponse a candidate barber
type BarberResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	MonthlyBookingCount int     `json:"monthlyBookingCount"`
	AvailabilityScore   float64 `json:"availabilityScore"`
}

// AssignBarberResponse HTTP response model
type AssignBarberResponse struct {
	BookingID  string           `json:"bookingId"`
	Barber     BarberResponse   `json:"barber"`
	Alternates []BarberResponse `json:"alternates"`
	Strategy   string           `json:"strategy"`
}

// FromUseCaseResponse converts the use case result to the HTTP model
func FromUseCaseResponse(resp *assignBarber.Response) *AssignBarberResponse {
	out := &AssignBarberResponse{
		BookingID:  resp.BookingID,
		Barber:     fromCandidate(resp.Chosen),
		Alternates: make([]BarberResponse, 0, len(resp.Alternates)),
		Strategy:   string(resp.Strategy),
	}
	for _, alt := range resp.Alternates {
		out.Alternates = append(out.Alternates, fromCandidate(alt))
	}
	return out
}

func fromCandidate(c domain.CandidateBarber) BarberResponse {
	return BarberResponse{
		ID:                  c.ID,
		Name:                c.Name,
		MonthlyBookingCount: c.MonthlyBookingCount,
		AvailabilityScore:   c.AvailabilityScore,
	}
}
