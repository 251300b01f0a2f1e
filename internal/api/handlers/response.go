package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

const (
	msgInternalError = "internal server error"
	msgEmptyBody     = "request body is empty"
)

// ErrorResponse body of every error reply
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"` // rejection kind for engine decisions
}

// RespondJSON writes data as JSON with the given status
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError writes an error body with the given status
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden 403
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError 500 without leaking details
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondRejection writes a negative engine decision with the engine's reason
func RespondRejection(w http.ResponseWriter, rejection *domain.RejectionError) {
	status := RejectionStatus(rejection.Kind)
	RespondJSON(w, status, ErrorResponse{
		Code:    status,
		Message: rejection.Reason,
		Kind:    string(rejection.Kind),
	})
}

// RejectionStatus maps a rejection kind to its HTTP status
func RejectionStatus(kind domain.RejectionKind) int {
	switch kind {
	case domain.RejectionNotFound:
		return http.StatusNotFound
	case domain.RejectionRoleNotPermitted, domain.RejectionRoleNotEligible:
		return http.StatusForbidden
	case domain.RejectionTerminalState, domain.RejectionOutsideTimeWindow:
		return http.StatusBadRequest
	case domain.RejectionNoCandidates:
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// AsRejection extracts an engine rejection from err
func AsRejection(err error) (*domain.RejectionError, bool) {
	var rejection *domain.RejectionError
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

// DecodeJSON decodes the request body into v, unknown fields are rejected
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New(msgEmptyBody)
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
