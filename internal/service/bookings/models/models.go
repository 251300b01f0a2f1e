package models

import (
	"time"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

// Response models

// BookingResponse booking data with the statuses the caller may move it to
type BookingResponse struct {
	ID              string  `json:"id"`
	CustomerID      string  `json:"customerId"`
	BarberID        *string `json:"barberId,omitempty"`
	ServiceID       string  `json:"serviceId"`
	StartTime       string  `json:"startTime"` // RFC3339
	EndTime         string  `json:"endTime"`   // RFC3339
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`

	RejectionReason    *string `json:"rejectionReason,omitempty"`
	NoShowNote         *string `json:"noShowNote,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	StatusChangedAt    *string `json:"statusChangedAt,omitempty"` // RFC3339

	AllowedTransitions []string `json:"allowedTransitions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompletionWindowResponse live view of the completion window for the caller
type CompletionWindowResponse struct {
	BookingID     string `json:"bookingId"`
	Allowed       bool   `json:"allowed"`
	Reason        string `json:"reason,omitempty"`
	Kind          string `json:"kind,omitempty"`
	Phase         string `json:"phase,omitempty"`
	Override      bool   `json:"override"`
	WindowStart   string `json:"windowStart,omitempty"`
	WindowEnd     string `json:"windowEnd,omitempty"`
	GraceEnd      string `json:"graceEnd,omitempty"`
	IsGracePeriod bool   `json:"isGracePeriod"`
	ServerTime    string `json:"serverTime"`
}

// ConfirmResult outcome of confirming one booking
type ConfirmResult struct {
	BookingID string  `json:"bookingId"`
	Confirmed bool    `json:"confirmed"`
	Reason    string  `json:"reason,omitempty"`
	BarberID  *string `json:"barberId,omitempty"`
}

// ConfirmManyResponse per-booking outcomes in request order
type ConfirmManyResponse struct {
	Results   []ConfirmResult `json:"results"`
	Confirmed int             `json:"confirmed"`
	Failed    int             `json:"failed"`
}

// Conversion methods

// FromDomainBooking converts a domain booking to the DTO.
// AllowedTransitions is computed for the given role.
func FromDomainBooking(b *domain.Booking, allowed []domain.BookingStatus) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		BarberID:           b.BarberID,
		ServiceID:          b.ServiceID,
		StartTime:          b.StartTime.Format(time.RFC3339),
		EndTime:            b.EndTime().Format(time.RFC3339),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		RejectionReason:    b.RejectionReason,
		NoShowNote:         b.NoShowNote,
		CancellationReason: b.CancellationReason,
		AllowedTransitions: make([]string, 0, len(allowed)),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	for _, status := range allowed {
		resp.AllowedTransitions = append(resp.AllowedTransitions, string(status))
	}

	if b.StatusChangedAt != nil {
		changedAt := b.StatusChangedAt.Format(time.RFC3339)
		resp.StatusChangedAt = &changedAt
	}

	return resp
}

// FromWindowDecision converts a window decision to the DTO.
// Bounds are omitted when the decision carries none.
func FromWindowDecision(bookingID string, d domain.WindowDecision, now time.Time) *CompletionWindowResponse {
	resp := &CompletionWindowResponse{
		BookingID:     bookingID,
		Allowed:       d.Allowed,
		Reason:        d.Reason,
		Kind:          string(d.Kind),
		Phase:         string(d.Phase),
		Override:      d.Override,
		IsGracePeriod: d.Window.IsGracePeriod,
		ServerTime:    now.Format(time.RFC3339),
	}

	if !d.Window.StartTime.IsZero() {
		resp.WindowStart = d.Window.StartTime.Format(time.RFC3339)
		resp.WindowEnd = d.Window.EndTime.Format(time.RFC3339)
		resp.GraceEnd = d.Window.GraceEndTime.Format(time.RFC3339)
	}

	return resp
}
