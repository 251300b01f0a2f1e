package domain

// CandidateBarber is a barber eligible for a slot, supplied fresh per assignment
type CandidateBarber struct {
	ID                  string
	Name                string
	MonthlyBookingCount int     // fairness metric, non-negative
	AvailabilityScore   float64 // tie-breaker in [0,1]
}
