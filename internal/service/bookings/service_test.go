package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	bookingRepo "github.com/ThinhTran1001/barbershop-web-sub002/internal/infra/storage/booking"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/integrations/eventbus"
	"github.com/ThinhTran1001/barbershop-web-sub002/pkg/logger"
)

// --- mocks ---

type mockBookingRepo struct {
	bookings map[string]*domain.Booking
	updates  []domain.StatusUpdate
	updateFn func(upd domain.StatusUpdate) error
	loadErr  error
}

func (m *mockBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (m *mockBookingRepo) GetByIDs(_ context.Context, ids []string) ([]*domain.Booking, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := []*domain.Booking{}
	for _, id := range ids {
		if b, ok := m.bookings[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, upd domain.StatusUpdate) error {
	if m.updateFn != nil {
		if err := m.updateFn(upd); err != nil {
			return err
		}
	}
	m.updates = append(m.updates, upd)
	return nil
}

type mockAssigner struct {
	err error
}

func (m *mockAssigner) Assign(_ context.Context, b *domain.Booking, _ time.Time) (*domain.AssignmentResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	chosen := domain.CandidateBarber{ID: "barber-auto"}
	id := chosen.ID
	b.BarberID = &id
	return &domain.AssignmentResult{Chosen: &chosen, Strategy: domain.StrategyRoundRobin}, nil
}

type mockPublisher struct {
	events []eventbus.Event
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, event eventbus.Event) error {
	m.events = append(m.events, event)
	return m.err
}

type nopMetrics struct{}

func (nopMetrics) RecordDecision(string, bool, string) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// --- helpers ---

var slotStart = time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)

var (
	admin    = domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}
	barber   = domain.Actor{ID: "barber-1", Role: domain.RoleBarber}
	customer = domain.Actor{ID: "cust-1", Role: domain.RoleCustomer}
)

func strPtr(s string) *string { return &s }

func newBooking(id string, status domain.BookingStatus, barberID *string) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		CustomerID:      "cust-1",
		BarberID:        barberID,
		ServiceID:       "svc-1",
		StartTime:       slotStart,
		DurationMinutes: 30,
		Status:          status,
	}
}

func newTestService(repo *mockBookingRepo, assigner *mockAssigner, now time.Time) (*Service, *mockPublisher) {
	publisher := &mockPublisher{}
	svc := NewService(repo, assigner, publisher, nopMetrics{}, domain.DefaultGraceMinutes, logger.NewNop())
	svc.timeProvider = fixedTime{t: now}
	return svc, publisher
}

func repoWith(bookings ...*domain.Booking) *mockBookingRepo {
	repo := &mockBookingRepo{bookings: map[string]*domain.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

// --- GetByID ---

func TestGetByID_Access(t *testing.T) {
	tests := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{"admin", admin, nil},
		{"assigned barber", barber, nil},
		{"owning customer", customer, nil},
		{"other barber", domain.Actor{ID: "barber-2", Role: domain.RoleBarber}, ErrAccessDenied},
		{"other customer", domain.Actor{ID: "cust-2", Role: domain.RoleCustomer}, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repoWith(newBooking("b-1", domain.StatusConfirmed, strPtr("barber-1")))
			svc, _ := newTestService(repo, &mockAssigner{}, slotStart)

			resp, err := svc.GetByID(context.Background(), "b-1", tt.actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "b-1", resp.ID)
			assert.Equal(t, "2025-03-10T14:30:00Z", resp.EndTime)
		})
	}
}

func TestGetByID_AllowedTransitionsFollowRole(t *testing.T) {
	repo := repoWith(newBooking("b-1", domain.StatusConfirmed, strPtr("barber-1")))
	svc, _ := newTestService(repo, &mockAssigner{}, slotStart)

	asBarber, err := svc.GetByID(context.Background(), "b-1", barber)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"completed", "no_show"}, asBarber.AllowedTransitions)

	asCustomer, err := svc.GetByID(context.Background(), "b-1", customer)
	require.NoError(t, err)
	assert.Equal(t, []string{"cancelled"}, asCustomer.AllowedTransitions)
}

func TestGetByID_Errors(t *testing.T) {
	svc, _ := newTestService(repoWith(), &mockAssigner{}, slotStart)

	_, err := svc.GetByID(context.Background(), "missing", admin)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), "", admin)
	assert.ErrorIs(t, err, ErrInvalidInput)

	failing := &mockBookingRepo{loadErr: errors.New("db down")}
	svc, _ = newTestService(failing, &mockAssigner{}, slotStart)
	_, err = svc.GetByID(context.Background(), "b-1", admin)
	assert.ErrorIs(t, err, ErrInternal)
}

// --- GetCompletionWindow ---

func TestGetCompletionWindow(t *testing.T) {
	repo := repoWith(newBooking("b-1", domain.StatusConfirmed, strPtr("barber-1")))

	t.Run("barber before start", func(t *testing.T) {
		svc, _ := newTestService(repo, &mockAssigner{}, slotStart.Add(-90*time.Second))

		resp, err := svc.GetCompletionWindow(context.Background(), "b-1", barber)

		require.NoError(t, err)
		assert.False(t, resp.Allowed)
		assert.Equal(t, "Booking has not started yet. It starts in 2 minutes", resp.Reason)
		assert.Equal(t, "upcoming", resp.Phase)
		assert.Equal(t, "2025-03-10T14:45:00Z", resp.GraceEnd)
	})

	t.Run("barber in grace period", func(t *testing.T) {
		svc, _ := newTestService(repo, &mockAssigner{}, slotStart.Add(40*time.Minute))

		resp, err := svc.GetCompletionWindow(context.Background(), "b-1", barber)

		require.NoError(t, err)
		assert.True(t, resp.Allowed)
		assert.True(t, resp.IsGracePeriod)
		assert.Equal(t, "grace_period", resp.Phase)
	})

	t.Run("admin override", func(t *testing.T) {
		svc, _ := newTestService(repo, &mockAssigner{}, slotStart.Add(72*time.Hour))

		resp, err := svc.GetCompletionWindow(context.Background(), "b-1", admin)

		require.NoError(t, err)
		assert.True(t, resp.Allowed)
		assert.True(t, resp.Override)
		assert.Equal(t, "2025-03-10T14:00:00Z", resp.WindowStart)
	})

	t.Run("customer not eligible", func(t *testing.T) {
		svc, _ := newTestService(repo, &mockAssigner{}, slotStart)

		resp, err := svc.GetCompletionWindow(context.Background(), "b-1", customer)

		require.NoError(t, err)
		assert.False(t, resp.Allowed)
		assert.Equal(t, "role_not_eligible", resp.Kind)
		assert.Empty(t, resp.WindowStart)
	})
}

// --- Cancel ---

func TestCancel_Success(t *testing.T) {
	repo := repoWith(newBooking("b-1", domain.StatusPending, nil))
	svc, publisher := newTestService(repo, &mockAssigner{}, slotStart.Add(-time.Hour))

	resp, err := svc.Cancel(context.Background(), "b-1", customer, strPtr("plans changed"))

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "plans changed", *resp.CancellationReason)
	assert.Empty(t, resp.AllowedTransitions)
	require.Len(t, repo.updates, 1)
	assert.Equal(t, domain.StatusPending, repo.updates[0].From)
	require.Len(t, publisher.events, 1)
}

func TestCancel_TerminalReasonsAreStable(t *testing.T) {
	tests := []struct {
		status domain.BookingStatus
		reason string
	}{
		{domain.StatusCancelled, "Booking has already been cancelled"},
		{domain.StatusCompleted, "Cannot cancel a completed booking"},
		{domain.StatusNoShow, "Cannot cancel a booking marked as no-show"},
		{domain.StatusRejected, "Cannot cancel a rejected booking"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			repo := repoWith(newBooking("b-1", tt.status, strPtr("barber-1")))
			svc, _ := newTestService(repo, &mockAssigner{}, slotStart)

			for i := 0; i < 2; i++ {
				_, err := svc.Cancel(context.Background(), "b-1", admin, nil)

				var rejection *domain.RejectionError
				require.ErrorAs(t, err, &rejection)
				assert.Equal(t, domain.RejectionTerminalState, rejection.Kind)
				assert.Equal(t, tt.reason, rejection.Reason)
			}
			assert.Empty(t, repo.updates)
		})
	}
}

func TestCancel_BarberNotPermitted(t *testing.T) {
	repo := repoWith(newBooking("b-1", domain.StatusConfirmed, strPtr("barber-1")))
	svc, _ := newTestService(repo, &mockAssigner{}, slotStart)

	_, err := svc.Cancel(context.Background(), "b-1", barber, nil)

	var rejection *domain.RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, domain.RejectionRoleNotPermitted, rejection.Kind)
}

func TestCancel_Conflict(t *testing.T) {
	repo := repoWith(newBooking("b-1", domain.StatusConfirmed, strPtr("barber-1")))
	repo.updateFn = func(domain.StatusUpdate) error { return bookingRepo.ErrStatusConflict }
	svc, publisher := newTestService(repo, &mockAssigner{}, slotStart)

	_, err := svc.Cancel(context.Background(), "b-1", admin, nil)

	assert.ErrorIs(t, err, ErrStatusConflict)
	assert.Empty(t, publisher.events)
}

func TestCancel_PublishFailureKeepsChange(t *testing.T) {
	repo := repoWith(newBooking("b-1", domain.StatusConfirmed, strPtr("barber-1")))
	svc, publisher := newTestService(repo, &mockAssigner{}, slotStart)
	publisher.err = errors.New("broker down")

	resp, err := svc.Cancel(context.Background(), "b-1", admin, nil)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

// --- ConfirmMany ---

func TestConfirmMany_MixedBatch(t *testing.T) {
	repo := repoWith(
		newBooking("b-1", domain.StatusPending, strPtr("barber-1")),
		newBooking("b-2", domain.StatusConfirmed, strPtr("barber-1")),
		newBooking("b-3", domain.StatusPending, nil),
		newBooking("b-4", domain.StatusCancelled, nil),
	)
	svc, publisher := newTestService(repo, &mockAssigner{}, slotStart.Add(-24*time.Hour))

	resp, err := svc.ConfirmMany(context.Background(), []string{"b-1", "b-2", "b-3", "b-4", "b-5", "b-1"}, admin)

	require.NoError(t, err)
	require.Len(t, resp.Results, 5)
	assert.Equal(t, 2, resp.Confirmed)
	assert.Equal(t, 3, resp.Failed)

	assert.True(t, resp.Results[0].Confirmed)
	assert.Equal(t, "Booking is already confirmed", resp.Results[1].Reason)
	assert.True(t, resp.Results[2].Confirmed)
	assert.Equal(t, "barber-auto", *resp.Results[2].BarberID)
	assert.Equal(t, "Booking has already been cancelled", resp.Results[3].Reason)
	assert.Equal(t, "Booking not found", resp.Results[4].Reason)

	assert.Len(t, repo.updates, 2)
	assert.Len(t, publisher.events, 2)
}

func TestConfirmMany_NoBarberAvailable(t *testing.T) {
	repo := repoWith(newBooking("b-1", domain.StatusPending, nil))
	assigner := &mockAssigner{err: domain.Reject(domain.RejectionNoCandidates, domain.ReasonNoBarberAvailable)}
	svc, _ := newTestService(repo, assigner, slotStart)

	resp, err := svc.ConfirmMany(context.Background(), []string{"b-1"}, admin)

	require.NoError(t, err)
	assert.False(t, resp.Results[0].Confirmed)
	assert.Equal(t, domain.ReasonNoBarberAvailable, resp.Results[0].Reason)
	assert.Empty(t, repo.updates)
}

func TestConfirmMany_Rejected(t *testing.T) {
	svc, _ := newTestService(repoWith(), &mockAssigner{}, slotStart)

	_, err := svc.ConfirmMany(context.Background(), []string{"b-1"}, barber)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ConfirmMany(context.Background(), nil, admin)
	assert.ErrorIs(t, err, ErrInvalidInput)

	tooMany := make([]string, domain.MaxBulkConfirmSize+1)
	for i := range tooMany {
		tooMany[i] = "b"
	}
	_, err = svc.ConfirmMany(context.Background(), tooMany, admin)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ConfirmMany(context.Background(), []string{"b-1", ""}, admin)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
