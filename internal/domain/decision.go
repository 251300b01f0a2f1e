package domain

import "time"

// RejectionKind classifies why an engine decision was negative
type RejectionKind string

const (
	RejectionNotFound          RejectionKind = "not_found"
	RejectionTerminalState     RejectionKind = "terminal_state"
	RejectionRoleNotPermitted  RejectionKind = "role_not_permitted"
	RejectionOutsideTimeWindow RejectionKind = "outside_time_window"
	RejectionRoleNotEligible   RejectionKind = "role_not_eligible"
	RejectionNoCandidates      RejectionKind = "no_candidates"
)

// TransitionResult is the outcome of a status transition check
type TransitionResult struct {
	Allowed bool
	Reason  string
	Kind    RejectionKind
}

// WindowPhase labels where "now" falls relative to a booking
type WindowPhase string

const (
	PhaseNotToday    WindowPhase = "not_today"
	PhaseUpcoming    WindowPhase = "upcoming"
	PhaseInProgress  WindowPhase = "in_progress"
	PhaseGracePeriod WindowPhase = "grace_period"
	PhaseExpired     WindowPhase = "expired"
)

// TimeWindow holds the computed bounds of a booking
type TimeWindow struct {
	StartTime     time.Time
	EndTime       time.Time
	GraceEndTime  time.Time
	IsGracePeriod bool
}

// WindowDecision is the outcome of a completion or no-show time check
type WindowDecision struct {
	Allowed  bool
	Reason   string
	Kind     RejectionKind
	Window   TimeWindow
	Phase    WindowPhase
	Override bool // set when an admin bypassed the window
}

// AssignmentStrategy names the policy that produced an assignment
type AssignmentStrategy string

const (
	StrategyRoundRobin AssignmentStrategy = "round_robin"
	StrategyScored     AssignmentStrategy = "scored"
)

// AssignmentResult is the outcome of barber selection.
// Chosen is nil when the pool was empty.
type AssignmentResult struct {
	Chosen     *CandidateBarber
	Alternates []CandidateBarber
	Strategy   AssignmentStrategy
}

// RejectionError carries a negative engine decision through the service layer
type RejectionError struct {
	Kind   RejectionKind
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

// Reject builds a RejectionError
func Reject(kind RejectionKind, reason string) *RejectionError {
	return &RejectionError{Kind: kind, Reason: reason}
}
