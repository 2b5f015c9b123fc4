package engine

// FieldState models the per-instance lifecycle of a form field: it starts
// untouched and moves to valid or invalid on the first edit, then flips
// between the two on later edits. It never returns to untouched.
type FieldState string

const (
	StateUntouched FieldState = "untouched"
	StateValid     FieldState = "valid"
	StateInvalid   FieldState = "invalid"
)

// StateTracker holds field states for one open document instance. It is the
// UI-facing companion of the validator: Observe records the verdict of each
// edit so the renderer can distinguish "never touched" from "touched and
// fine".
type StateTracker struct {
	states map[string]FieldState
}

func NewStateTracker() *StateTracker {
	return &StateTracker{states: make(map[string]FieldState)}
}

// Observe transitions the field's state based on a validation verdict and
// returns the new state.
func (t *StateTracker) Observe(fieldKey string, res FieldResult) FieldState {
	state := StateInvalid
	if res.IsValid {
		state = StateValid
	}
	t.states[fieldKey] = state
	return state
}

// State returns the current state of a field; fields never observed are
// untouched.
func (t *StateTracker) State(fieldKey string) FieldState {
	if s, ok := t.states[fieldKey]; ok {
		return s
	}
	return StateUntouched
}

// Reset returns every field to untouched, for a freshly opened document.
func (t *StateTracker) Reset() {
	t.states = make(map[string]FieldState)
}
