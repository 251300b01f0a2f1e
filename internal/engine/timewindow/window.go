// Package timewindow decides when a booking may be closed out as completed or no-show.
package timewindow

import (
	"fmt"
	"math"
	"time"

	"github.com/ThinhTran1001/barbershop-web-sub002/internal/domain"
)

const (
	msgNotToday    = "Booking can only be completed on its scheduled date (%s)"
	msgNotStarted  = "Booking has not started yet. It starts in %s"
	msgGraceClosed = "Completion window has closed. The grace period ended %s ago"
)

// IsWithinTimeWindow allows closing out a booking from its start until
// graceMinutes after its scheduled end, on the booking's own calendar day.
// Both bounds are inclusive. Negative grace is treated as zero.
func IsWithinTimeWindow(booking *domain.Booking, now time.Time, graceMinutes int) (domain.WindowDecision, error) {
	if err := checkBooking(booking); err != nil {
		return domain.WindowDecision{}, err
	}

	window := computeWindow(booking, graceMinutes)
	phase := phaseAt(window, now)
	decision := domain.WindowDecision{Window: window, Phase: phase}

	switch phase {
	case domain.PhaseNotToday:
		expected := booking.StartTime.In(now.Location()).Format(domain.DateFormat)
		return rejectWindow(decision, fmt.Sprintf(msgNotToday, expected)), nil

	case domain.PhaseUpcoming:
		left := ceilMinutes(window.StartTime.Sub(now))
		return rejectWindow(decision, fmt.Sprintf(msgNotStarted, formatMinutes(left))), nil

	case domain.PhaseExpired:
		since := ceilMinutes(now.Sub(window.GraceEndTime))
		return rejectWindow(decision, fmt.Sprintf(msgGraceClosed, formatMinutes(since))), nil
	}

	decision.Allowed = true
	decision.Window.IsGracePeriod = phase == domain.PhaseGracePeriod
	return decision, nil
}

// computeWindow derives the start, end and grace end of a booking
func computeWindow(booking *domain.Booking, graceMinutes int) domain.TimeWindow {
	if graceMinutes < 0 {
		graceMinutes = 0
	}
	end := booking.EndTime()

	return domain.TimeWindow{
		StartTime:    booking.StartTime,
		EndTime:      end,
		GraceEndTime: end.Add(time.Duration(graceMinutes) * time.Minute),
	}
}

// phaseAt places now relative to the window. The day check uses now's location.
func phaseAt(window domain.TimeWindow, now time.Time) domain.WindowPhase {
	switch {
	case !isSameDay(window.StartTime.In(now.Location()), now):
		return domain.PhaseNotToday
	case now.Before(window.StartTime):
		return domain.PhaseUpcoming
	case now.After(window.GraceEndTime):
		return domain.PhaseExpired
	case now.After(window.EndTime):
		return domain.PhaseGracePeriod
	default:
		return domain.PhaseInProgress
	}
}

func checkBooking(booking *domain.Booking) error {
	if booking == nil {
		return fmt.Errorf("%w: booking is nil", domain.ErrMalformedBooking)
	}
	if booking.StartTime.IsZero() {
		return fmt.Errorf("%w: booking %s has no start time", domain.ErrMalformedBooking, booking.ID)
	}
	if booking.DurationMinutes <= 0 {
		return fmt.Errorf("%w: booking %s has duration %d", domain.ErrMalformedBooking, booking.ID, booking.DurationMinutes)
	}
	return nil
}

func rejectWindow(decision domain.WindowDecision, reason string) domain.WindowDecision {
	decision.Allowed = false
	decision.Reason = reason
	decision.Kind = domain.RejectionOutsideTimeWindow
	return decision
}

// isSameDay reports whether both times fall on the same calendar date
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ceilMinutes rounds up so that any non-zero gap reads as at least one minute
func ceilMinutes(d time.Duration) int {
	return int(math.Ceil(d.Minutes()))
}

func formatMinutes(n int) string {
	if n == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", n)
}
