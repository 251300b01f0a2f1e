package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

var allRoles = []domain.Role{domain.RoleAdmin, domain.RoleBarber, domain.RoleCustomer}

func bookingWithStatus(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: "b-1", Status: status, DurationMinutes: 30}
}

func TestValidateTransition_NilBooking(t *testing.T) {
	res, err := ValidateTransition(nil, domain.StatusConfirmed, domain.RoleAdmin)

	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, "Booking not found", res.Reason)
	assert.Equal(t, domain.RejectionNotFound, res.Kind)
}

func TestValidateTransition_TerminalIsImmutable(t *testing.T) {
	terminal := []domain.BookingStatus{
		domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow, domain.StatusRejected,
	}

	for _, current := range terminal {
		for _, role := range allRoles {
			for _, requested := range domain.AllStatuses {
				res, err := ValidateTransition(bookingWithStatus(current), requested, role)

				require.NoError(t, err)
				assert.False(t, res.Allowed, "%s: %s -> %s", role, current, requested)
				assert.Equal(t, domain.RejectionTerminalState, res.Kind)
			}
		}
	}
}

func TestValidateTransition_TerminalReasons(t *testing.T) {
	tests := []struct {
		status domain.BookingStatus
		reason string
	}{
		{domain.StatusCancelled, "Booking has already been cancelled and cannot be changed"},
		{domain.StatusCompleted, "Booking has already been completed and cannot be changed"},
		{domain.StatusNoShow, "Booking was marked as no-show and cannot be changed"},
		{domain.StatusRejected, "Booking has been rejected and cannot be changed"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			res, err := ValidateTransition(bookingWithStatus(tt.status), tt.status, domain.RoleAdmin)

			require.NoError(t, err)
			assert.False(t, res.Allowed)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestValidateTransition_TableCompleteness(t *testing.T) {
	expected := map[domain.Role]map[domain.BookingStatus][]domain.BookingStatus{
		domain.RoleAdmin: {
			domain.StatusPending:   {domain.StatusConfirmed, domain.StatusCancelled, domain.StatusRejected},
			domain.StatusConfirmed: {domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow, domain.StatusRejected},
		},
		domain.RoleBarber: {
			domain.StatusPending:   {},
			domain.StatusConfirmed: {domain.StatusCompleted, domain.StatusNoShow},
		},
		domain.RoleCustomer: {
			domain.StatusPending:   {domain.StatusCancelled},
			domain.StatusConfirmed: {domain.StatusCancelled},
		},
	}

	for role, rows := range expected {
		for current, targets := range rows {
			var allowed []domain.BookingStatus
			for _, requested := range domain.AllStatuses {
				res, err := ValidateTransition(bookingWithStatus(current), requested, role)
				require.NoError(t, err)
				if res.Allowed {
					allowed = append(allowed, requested)
				}
			}

			assert.ElementsMatch(t, targets, allowed, "%s from %s", role, current)
			assert.ElementsMatch(t, targets, AllowedTargets(role, current), "%s from %s", role, current)
		}
	}
}

func TestValidateTransition_RoleNotPermittedReason(t *testing.T) {
	res, err := ValidateTransition(bookingWithStatus(domain.StatusPending), domain.StatusConfirmed, domain.RoleBarber)

	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, "barber cannot change status from pending to confirmed", res.Reason)
	assert.Equal(t, domain.RejectionRoleNotPermitted, res.Kind)
}

func TestValidateTransition_SameStatusIsNotATransition(t *testing.T) {
	res, err := ValidateTransition(bookingWithStatus(domain.StatusPending), domain.StatusPending, domain.RoleAdmin)

	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, "admin cannot change status from pending to pending", res.Reason)
}

func TestValidateTransition_HardFailures(t *testing.T) {
	_, err := ValidateTransition(bookingWithStatus("archived"), domain.StatusCancelled, domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrMalformedBooking)

	_, err = ValidateTransition(bookingWithStatus(domain.StatusPending), domain.StatusCancelled, "guest")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestAllowedTargets_Terminal(t *testing.T) {
	assert.Empty(t, AllowedTargets(domain.RoleAdmin, domain.StatusCompleted))
}
