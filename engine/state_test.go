package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateTrackerTransitions(t *testing.T) {
	tracker := NewStateTracker()

	assert.Equal(t, StateUntouched, tracker.State("invoice_no"))

	s := tracker.Observe("invoice_no", FieldResult{IsValid: false, ErrorMessage: "Invoice No is required"})
	assert.Equal(t, StateInvalid, s)
	assert.Equal(t, StateInvalid, tracker.State("invoice_no"))

	s = tracker.Observe("invoice_no", FieldResult{IsValid: true})
	assert.Equal(t, StateValid, s)

	s = tracker.Observe("invoice_no", FieldResult{IsValid: false})
	assert.Equal(t, StateInvalid, s)

	// other fields stay untouched
	assert.Equal(t, StateUntouched, tracker.State("currency"))
}

func TestStateTrackerReset(t *testing.T) {
	tracker := NewStateTracker()
	tracker.Observe("invoice_no", FieldResult{IsValid: true})

	tracker.Reset()
	assert.Equal(t, StateUntouched, tracker.State("invoice_no"))
}
