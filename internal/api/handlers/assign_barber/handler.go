package assign_barber

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/api/middleware"
	assignBarber "github.com/ThinhTran1001/barbershop-web-sub002/internal/usecase/assign_barber"
)

const (
	msgInvalidBookingID    = "invalid booking ID"
	msgMissingActor        = "missing caller identity"
	msgForbidden           = "access denied"
	msgAlreadyAssigned     = "booking already has a barber"
	msgBookingClosed       = "booking is closed and cannot be assigned"
	msgScheduleUnavailable = "schedule service is unavailable, try again later"
)

type Handler struct {
	useCase AssignBarberUseCase
	logger  Logger
}

func NewHandler(useCase AssignBarberUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/assign-barber
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/assign-barber - Missing booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/assign-barber - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &assignBarber.Request{BookingID: bookingID, Actor: actor})
	if err != nil {
		if rejection, ok := handlers.AsRejection(err); ok {
			h.logger.Warn("POST /bookings/{id}/assign-barber - Rejected: booking_id=%s, kind=%s", bookingID, rejection.Kind)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, assignBarber.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, assignBarber.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/assign-barber - Access denied: booking_id=%s, user_id=%s",
				bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, assignBarber.ErrAlreadyAssigned):
			handlers.RespondConflict(w, msgAlreadyAssigned)

		case errors.Is(err, assignBarber.ErrBookingClosed):
			handlers.RespondBadRequest(w, msgBookingClosed)

		case errors.Is(err, assignBarber.ErrScheduleUnavailable):
			h.logger.Error("POST /bookings/{id}/assign-barber - Schedule service unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgScheduleUnavailable)

		default:
			h.logger.Error("POST /bookings/{id}/assign-barber - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/assign-barber - Assigned: booking_id=%s, barber_id=%s, strategy=%s",
		bookingID, resp.Chosen.ID, resp.Strategy)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
