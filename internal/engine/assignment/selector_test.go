package assignment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

func at(hour int) time.Time {
	return time.Date(2025, time.March, 10, hour, 30, 0, 0, time.UTC)
}

func ids(barbers []domain.CandidateBarber) []string {
	out := make([]string, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, b.ID)
	}
	return out
}

func TestSelectBarber_EmptyPool(t *testing.T) {
	res := SelectBarber(nil, at(10))

	assert.Nil(t, res.Chosen)
	assert.NotNil(t, res.Alternates)
	assert.Empty(t, res.Alternates)
	assert.Empty(t, res.Strategy)
}

func TestSelectBarber_RoundRobinRotatesByHour(t *testing.T) {
	pool := []domain.CandidateBarber{{ID: "C"}, {ID: "A"}, {ID: "B"}}

	expected := map[int]string{0: "A", 1: "B", 2: "C", 3: "A", 13: "B"}
	for hour, id := range expected {
		res := SelectBarber(pool, at(hour))

		require.NotNil(t, res.Chosen)
		assert.Equal(t, id, res.Chosen.ID, "hour %d", hour)
		assert.Equal(t, domain.StrategyRoundRobin, res.Strategy)
	}
}

func TestSelectBarber_RoundRobinAlternatesKeepIdOrder(t *testing.T) {
	pool := []domain.CandidateBarber{{ID: "C"}, {ID: "A"}, {ID: "B"}}

	res := SelectBarber(pool, at(1))

	assert.Equal(t, []string{"A", "C"}, ids(res.Alternates))
}

func TestSelectBarber_FairnessBeatsScore(t *testing.T) {
	pool := []domain.CandidateBarber{
		{ID: "1", MonthlyBookingCount: 8, AvailabilityScore: .85},
		{ID: "2", MonthlyBookingCount: 12, AvailabilityScore: .90},
		{ID: "3", MonthlyBookingCount: 5, AvailabilityScore: .80},
	}

	res := SelectBarber(pool, at(10))

	require.NotNil(t, res.Chosen)
	assert.Equal(t, "3", res.Chosen.ID)
	assert.Equal(t, domain.StrategyScored, res.Strategy)
	assert.Equal(t, []string{"1", "2"}, ids(res.Alternates))
}

func TestSelectBarber_MinCountSubsetUsesScore(t *testing.T) {
	pool := []domain.CandidateBarber{
		{ID: "1", MonthlyBookingCount: 3, AvailabilityScore: .40},
		{ID: "2", MonthlyBookingCount: 9, AvailabilityScore: .99},
		{ID: "3", MonthlyBookingCount: 3, AvailabilityScore: .70},
	}

	res := SelectBarber(pool, at(10))

	require.NotNil(t, res.Chosen)
	assert.Equal(t, "3", res.Chosen.ID)
	assert.Equal(t, []string{"1", "2"}, ids(res.Alternates))
}

func TestSelectBarber_ScoreTieBreak(t *testing.T) {
	pool := []domain.CandidateBarber{
		{ID: "x", MonthlyBookingCount: 10, AvailabilityScore: .85},
		{ID: "y", MonthlyBookingCount: 10, AvailabilityScore: .90},
		{ID: "z", MonthlyBookingCount: 10, AvailabilityScore: .80},
	}

	res := SelectBarber(pool, at(10))

	require.NotNil(t, res.Chosen)
	assert.Equal(t, "y", res.Chosen.ID)
	assert.Equal(t, .90, res.Chosen.AvailabilityScore)
	assert.Equal(t, domain.StrategyScored, res.Strategy)
	assert.Equal(t, []string{"x", "z"}, ids(res.Alternates))
}

func TestSelectBarber_EqualScoresKeepInputOrder(t *testing.T) {
	pool := []domain.CandidateBarber{
		{ID: "b", MonthlyBookingCount: 4, AvailabilityScore: .5},
		{ID: "a", MonthlyBookingCount: 4, AvailabilityScore: .5},
	}

	res := SelectBarber(pool, at(10))

	require.NotNil(t, res.Chosen)
	assert.Equal(t, "b", res.Chosen.ID)
}

func TestSelectBarber_Deterministic(t *testing.T) {
	pool := []domain.CandidateBarber{
		{ID: "1", MonthlyBookingCount: 2, AvailabilityScore: .3},
		{ID: "2", MonthlyBookingCount: 2, AvailabilityScore: .3},
		{ID: "3", MonthlyBookingCount: 7, AvailabilityScore: .9},
	}

	first := SelectBarber(pool, at(9))
	second := SelectBarber(pool, at(9))

	assert.Equal(t, first, second)
}

func TestSelectBarber_DoesNotMutateInput(t *testing.T) {
	pool := []domain.CandidateBarber{{ID: "C"}, {ID: "A"}, {ID: "B"}}

	SelectBarber(pool, at(0))

	assert.Equal(t, []string{"C", "A", "B"}, ids(pool))
}

func TestSelectBarber_SingleCandidate(t *testing.T) {
	res := SelectBarber([]domain.CandidateBarber{{ID: "only", MonthlyBookingCount: 4}}, at(23))

	require.NotNil(t, res.Chosen)
	assert.Equal(t, "only", res.Chosen.ID)
	assert.Equal(t, domain.StrategyScored, res.Strategy)
	assert.Empty(t, res.Alternates)
}
