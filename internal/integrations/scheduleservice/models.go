package scheduleservice

import "github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"

// Barber is a barber free for the requested slot
type Barber struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	MonthlyBookingCount int     `json:"monthlyBookingCount"`
	AvailabilityScore   float64 `json:"availabilityScore"`
}

// ToDomain converts to the engine's candidate type
func (b Barber) ToDomain() domain.CandidateBarber {
	return domain.CandidateBarber{
		ID:                  b.ID,
		Name:                b.Name,
		MonthlyBookingCount: b.MonthlyBookingCount,
		AvailabilityScore:   b.AvailabilityScore,
	}
}

// AvailableBarbersResponse payload of GET /internal/barbers/available
type AvailableBarbersResponse struct {
	Barbers []Barber `json:"barbers"`
}

// Logger interface used by the client
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
