package codeinput

// State classifies the logical value against the target length
type State uint8

const (
	StateEmpty State = iota
	StatePartial
	StateComplete
)

var stateNames = [...]string{
	StateEmpty:    "empty",
	StatePartial:  "partial",
	StateComplete: "complete",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// stateFor derives the state from filled characters out of total
func stateFor(filled, total int) State {
	switch {
	case filled <= 0:
		return StateEmpty
	case filled >= total:
		return StateComplete
	default:
		return StatePartial
	}
}

// tracker remembers the last observed state so completion fires once per transition
type tracker struct {
	state State
}

// advance records next and reports whether it entered StateComplete
func (t *tracker) advance(next State) bool {
	entered := next == StateComplete && t.state != StateComplete
	t.state = next
	return entered
}

// reset records next without reporting a transition
func (t *tracker) reset(next State) {
	t.state = next
}
