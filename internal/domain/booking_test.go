package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	for _, status := range AllStatuses {
		got, err := ParseBookingStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	for _, raw := range []string{"", "Pending", "in_progress", "cancelled_by_user"} {
		_, err := ParseBookingStatus(raw)
		assert.ErrorIs(t, err, ErrUnknownStatus, raw)
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	terminal := map[BookingStatus]bool{
		StatusPending:   false,
		StatusConfirmed: false,
		StatusCompleted: true,
		StatusCancelled: true,
		StatusNoShow:    true,
		StatusRejected:  true,
	}

	for status, want := range terminal {
		assert.Equal(t, want, status.IsTerminal(), status)
	}
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"admin", "barber", "customer"} {
		role, err := ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, role.String())
	}

	_, err := ParseRole("manager")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestBooking_Helpers(t *testing.T) {
	barberID := "barber-1"
	b := &Booking{
		StartTime:       time.Date(2025, time.March, 10, 23, 45, 0, 0, time.UTC),
		DurationMinutes: 30,
		BarberID:        &barberID,
		Status:          StatusConfirmed,
	}

	assert.Equal(t, time.Date(2025, time.March, 11, 0, 15, 0, 0, time.UTC), b.EndTime())
	assert.True(t, b.HasBarber())
	assert.True(t, b.IsAssignedTo("barber-1"))
	assert.False(t, b.IsAssignedTo("barber-2"))
	assert.False(t, b.IsTerminal())

	b.BarberID = nil
	assert.False(t, b.HasBarber())
	assert.False(t, b.IsAssignedTo(""))
}
