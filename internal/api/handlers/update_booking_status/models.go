package update_booking_status

import (
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/engine/transition"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/service/bookings/models"
	changeStatus "github.com/ThinhTran1001/barbershop-web-sub002/internal/usecase/change_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Booking    *models.BookingResponse `json:"booking"`
	Override   bool                    `json:"override"`
	Assignment *AssignmentResponse     `json:"assignment,omitempty"`
}

// AssignmentResponse barber picked while confirming
type AssignmentResponse struct {
	BarberID     string   `json:"barberId"`
	Strategy     string   `json:"strategy"`
	AlternateIDs []string `json:"alternateIds"`
}

// ToUseCaseRequest converts the HTTP request to the use case model
func (r *UpdateStatusRequest) ToUseCaseRequest(bookingID string, actor domain.Actor) *changeStatus.Request {
	return &changeStatus.Request{
		BookingID: bookingID,
		Status:    r.Status,
		Actor:     actor,
		Note:      r.Note,
	}
}

// FromUseCaseResponse converts the use case result to the HTTP model
func FromUseCaseResponse(resp *changeStatus.Response, role domain.Role) *UpdateStatusResponse {
	out := &UpdateStatusResponse{
		Booking:  models.FromDomainBooking(resp.Booking, transition.AllowedTargets(role, resp.Booking.Status)),
		Override: resp.Window != nil && resp.Window.Override,
	}

	if a := resp.Assignment; a != nil && a.Chosen != nil {
		out.Assignment = &AssignmentResponse{
			BarberID:     a.Chosen.ID,
			Strategy:     string(a.Strategy),
			AlternateIDs: make([]string, 0, len(a.Alternates)),
		}
		for _, alt := range a.Alternates {
			out.Assignment.AlternateIDs = append(out.Assignment.AlternateIDs, alt.ID)
		}
	}

	return out
}
