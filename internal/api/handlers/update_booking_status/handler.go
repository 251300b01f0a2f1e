package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/api/middleware"
	changeStatus "github.com/ThinhTran1001/barbershop-web-sub002/internal/usecase/change_status"
)

const (
	msgInvalidBookingID    = "invalid booking ID"
	msgInvalidRequestBody  = "invalid request body"
	msgMissingActor        = "missing caller identity"
	msgForbidden           = "access denied"
	msgConflict            = "booking was modified concurrently, reload and retry"
	msgScheduleUnavailable = "schedule service is unavailable, try again later"
)

type Handler struct {
	useCase ChangeStatusUseCase
	logger  Logger
}

func NewHandler(useCase ChangeStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, actor))
	if err != nil {
		if rejection, ok := handlers.AsRejection(err); ok {
			h.logger.Warn("PATCH /bookings/{id}/status - Rejected: booking_id=%s, status=%s, kind=%s, reason=%s",
				bookingID, req.Status, rejection.Kind, rejection.Reason)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, changeStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, changeStatus.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/status - Access denied: booking_id=%s, user_id=%s",
				bookingID, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, changeStatus.ErrStatusConflict):
			h.logger.Warn("PATCH /bookings/{id}/status - Conflict: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, changeStatus.ErrScheduleUnavailable):
			h.logger.Error("PATCH /bookings/{id}/status - Schedule service unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgScheduleUnavailable)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to change status: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status changed: booking_id=%s, status=%s, user_id=%s",
		bookingID, resp.Booking.Status, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp, actor.Role))
}
