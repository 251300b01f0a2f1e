package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

func TestValidateConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		allowed bool
		reason  string
	}{
		{"pending", domain.StatusPending, true, ""},
		{"confirmed", domain.StatusConfirmed, false, "Booking is already confirmed"},
		{"cancelled", domain.StatusCancelled, false, "Booking has already been cancelled"},
		{"completed", domain.StatusCompleted, false, "Booking has already been completed"},
		{"no_show", domain.StatusNoShow, false, "Booking was marked as no-show"},
		{"rejected", domain.StatusRejected, false, "Booking has already been rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ValidateConfirmation(bookingWithStatus(tt.status))

			require.NoError(t, err)
			assert.Equal(t, tt.allowed, res.Allowed)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestValidateConfirmation_NilBooking(t *testing.T) {
	res, err := ValidateConfirmation(nil)

	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, domain.RejectionNotFound, res.Kind)
}

func TestValidateCancellation(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		allowed bool
		reason  string
	}{
		{"pending", domain.StatusPending, true, ""},
		{"confirmed", domain.StatusConfirmed, true, ""},
		{"cancelled", domain.StatusCancelled, false, "Booking has already been cancelled"},
		{"completed", domain.StatusCompleted, false, "Cannot cancel a completed booking"},
		{"no_show", domain.StatusNoShow, false, "Cannot cancel a booking marked as no-show"},
		{"rejected", domain.StatusRejected, false, "Cannot cancel a rejected booking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ValidateCancellation(bookingWithStatus(tt.status))

			require.NoError(t, err)
			assert.Equal(t, tt.allowed, res.Allowed)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestValidateCancellation_CompletedPhrasingIsStable(t *testing.T) {
	booking := bookingWithStatus(domain.StatusCompleted)

	for i := 0; i < 3; i++ {
		res, err := ValidateCancellation(booking)

		require.NoError(t, err)
		assert.Equal(t, "Cannot cancel a completed booking", res.Reason)
		assert.NotEqual(t, msgTerminalGeneric, res.Reason)
	}
}

func TestValidateCancellation_MalformedStatus(t *testing.T) {
	_, err := ValidateCancellation(bookingWithStatus("archived"))

	assert.ErrorIs(t, err, domain.ErrMalformedBooking)
}
