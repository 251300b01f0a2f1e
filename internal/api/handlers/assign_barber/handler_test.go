package assign_barber

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/api/middleware"
	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
	assignBarber "github.com/ThinhTran1001/barbershop-web-sub002/internal/usecase/assign_barber"
	"github.com/ThinhTran1001/barbershop-web-sub002/pkg/logger"
)

type mockUseCase struct {
	resp *assignBarber.Response
	err  error
}

func (m *mockUseCase) Execute(context.Context, *assignBarber.Request) (*assignBarber.Response, error) {
	return m.resp, m.err
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/b-1/assign-barber", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": "b-1"})
	return req.WithContext(middleware.WithActor(req.Context(), domain.Actor{ID: "admin-1", Role: domain.RoleAdmin}))
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{resp: &assignBarber.Response{
		BookingID:  "b-1",
		Chosen:     domain.CandidateBarber{ID: "3", Name: "Cara", MonthlyBookingCount: 1, AvailabilityScore: 0.9},
		Alternates: []domain.CandidateBarber{{ID: "1", Name: "Alex", MonthlyBookingCount: 4}},
		Strategy:   domain.StrategyScored,
	}}
	rec := httptest.NewRecorder()

	NewHandler(uc, logger.NewNop()).Handle(rec, newRequest())

	require.Equal(t, http.StatusOK, rec.Code)
	var body AssignBarberResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "3", body.Barber.ID)
	assert.Equal(t, "scored", body.Strategy)
	require.Len(t, body.Alternates, 1)
	assert.Equal(t, "1", body.Alternates[0].ID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no candidates", domain.Reject(domain.RejectionNoCandidates, domain.ReasonNoBarberAvailable), http.StatusConflict},
		{"not found", domain.Reject(domain.RejectionNotFound, domain.ReasonBookingNotFound), http.StatusNotFound},
		{"already assigned", assignBarber.ErrAlreadyAssigned, http.StatusConflict},
		{"closed", assignBarber.ErrBookingClosed, http.StatusBadRequest},
		{"forbidden", assignBarber.ErrAccessDenied, http.StatusForbidden},
		{"schedule down", fmt.Errorf("%w: dial tcp", assignBarber.ErrScheduleUnavailable), http.StatusServiceUnavailable},
		{"internal", assignBarber.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			NewHandler(&mockUseCase{err: tt.err}, logger.NewNop()).Handle(rec, newRequest())

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
