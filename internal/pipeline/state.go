package pipeline

import "fmt"

// State is a pipeline stage.
type State string

const (
	StatePending  State = "pending"
	StateProbe    State = "probe"
	StateCollect  State = "collect"
	StateGenerate State = "generate"
	StateMutate   State = "mutate"
	StateVerify   State = "verify"
	StateDone     State = "done"
	StateAborted  State = "aborted"
)

var next = map[State]State{
	StatePending:  StateProbe,
	StateProbe:    StateCollect,
	StateCollect:  StateGenerate,
	StateGenerate: StateMutate,
	StateMutate:   StateVerify,
	StateVerify:   StateDone,
}

// IsTerminal reports whether no further transition is possible from s.
func IsTerminal(s State) bool {
	return s == StateDone || s == StateAborted
}

func isAllowedTransition(from, to State) bool {
	if IsTerminal(from) {
		return false
	}
	if to == StateAborted {
		return from != StatePending
	}
	return next[from] == to
}

// TransitionError reports an out-of-order state change.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("disallowed transition: %s -> %s", e.From, e.To)
}
