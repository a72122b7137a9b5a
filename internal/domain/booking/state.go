package booking

import "github.com/boyarintsev1/shareit/internal/domain"

// State is a derived, query-time classification of bookings relative to the
// current instant and/or approval status. It is never persisted.
//
// Temporal buckets are exhaustive and non-overlapping: CURRENT covers
// start <= now < end, PAST covers end <= now, FUTURE covers start > now
// (strict lower bound; a booking starting exactly at now is CURRENT).
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// States lists the closed set of recognized states.
func States() []State {
	return []State{StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected}
}

// IsValid returns true if the state is a recognized filter value.
func (s State) IsValid() bool {
	switch s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return true
	}
	return false
}

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}

// ParseState converts a raw filter value to a State, failing with the
// "Unknown state" error the API contract requires for unrecognized values.
func ParseState(raw string) (State, error) {
	state := State(raw)
	if !state.IsValid() {
		return "", domain.NewUnknownStateError(raw)
	}
	return state, nil
}
