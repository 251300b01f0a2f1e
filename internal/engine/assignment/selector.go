// Package assignment picks a barber for an unassigned booking from a pool
// already filtered for slot availability.
package assignment

import (
	"sort"
	"time"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

// SelectBarber chooses one candidate and ranks the rest.
//
// All counts zero: round robin over ids sorted ascending, keyed by now's hour.
// All counts equal and non-zero: highest availability score wins.
// Counts differ: the best-scored barber among those with the fewest bookings wins.
//
// Score ties keep the input order. The input slice is not modified.
func SelectBarber(candidates []domain.CandidateBarber, now time.Time) domain.AssignmentResult {
	if len(candidates) == 0 {
		return domain.AssignmentResult{Alternates: []domain.CandidateBarber{}}
	}

	ranked := make([]domain.CandidateBarber, len(candidates))
	copy(ranked, candidates)

	minCount, maxCount := countRange(ranked)

	var (
		chosenIdx int
		strategy  domain.AssignmentStrategy
	)

	switch {
	case maxCount == 0:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].ID < ranked[j].ID
		})
		chosenIdx = now.Hour() % len(ranked)
		strategy = domain.StrategyRoundRobin

	case minCount == maxCount:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].AvailabilityScore > ranked[j].AvailabilityScore
		})
		strategy = domain.StrategyScored

	default:
		// Least loaded first, so the head of the ranking is the best of the min-count subset
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].MonthlyBookingCount != ranked[j].MonthlyBookingCount {
				return ranked[i].MonthlyBookingCount < ranked[j].MonthlyBookingCount
			}
			return ranked[i].AvailabilityScore > ranked[j].AvailabilityScore
		})
		strategy = domain.StrategyScored
	}

	chosen := ranked[chosenIdx]
	alternates := make([]domain.CandidateBarber, 0, len(ranked)-1)
	alternates = append(alternates, ranked[:chosenIdx]...)
	alternates = append(alternates, ranked[chosenIdx+1:]...)

	return domain.AssignmentResult{
		Chosen:     &chosen,
		Alternates: alternates,
		Strategy:   strategy,
	}
}

func countRange(candidates []domain.CandidateBarber) (int, int) {
	minCount, maxCount := candidates[0].MonthlyBookingCount, candidates[0].MonthlyBookingCount
	for _, c := range candidates[1:] {
		if c.MonthlyBookingCount < minCount {
			minCount = c.MonthlyBookingCount
		}
		if c.MonthlyBookingCount > maxCount {
			maxCount = c.MonthlyBookingCount
		}
	}
	return minCount, maxCount
}
