package confirm_bookings

import (
	"errors"
	"net/http"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/api/handlers"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/api/middleware"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingActor       = "missing caller identity"
	msgForbidden          = "only an admin may confirm bookings in bulk"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm
// Always 200 once the batch is accepted, per-booking outcomes are in the body.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/confirm - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req ConfirmBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.ConfirmMany(r.Context(), req.BookingIDs, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/confirm - Access denied: user_id=%s, role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/confirm - Failed to confirm bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/confirm - Batch processed: confirmed=%d, failed=%d, user_id=%s",
		resp.Confirmed, resp.Failed, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
