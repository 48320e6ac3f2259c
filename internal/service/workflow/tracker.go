// Package workflow holds the submission state machine shared by the
// recruitment and feedback services: Idle → Submitting → Succeeded, with a
// timed reset back to Idle after the success display window. Invalid and
// failed submissions return to Idle carrying the surfaced errors.
package workflow

import (
	"context"
	"sync"
	"time"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
)

// Tracker guards the state of one form instance. Callers are expected to
// serialize submissions (the UI disables resubmission while one is in
// flight), but the tracker enforces it anyway.
type Tracker struct {
	mu     sync.Mutex
	state  State
	errors map[string]string
	reset  *time.Timer
}

func NewTracker() *Tracker {
	return &Tracker{state: StateIdle}
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Errors returns a copy of the current field-error map. Empty means the last
// submission was not rejected.
func (t *Tracker) Errors() map[string]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]string, len(t.errors))
	for k, v := range t.errors {
		out[k] = v
	}
	return out
}

// Begin moves Idle → Submitting and clears stale errors. Returns false when a
// submission is already in flight.
func (t *Tracker) Begin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateSubmitting {
		return false
	}
	t.stopResetLocked()
	t.state = StateSubmitting
	t.errors = nil
	return true
}

// Reject records validation errors and forces Idle, cancelling any pending
// success-window reset. An invalid submission lands in Idle from every state.
func (t *Tracker) Reject(errs map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopResetLocked()
	t.state = StateIdle
	t.errors = errs
}

// Fail returns to Idle with the surfaced errors.
func (t *Tracker) Fail(errs map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateIdle
	t.errors = errs
}

// Succeed enters Succeeded and arms the timed reset back to Idle.
func (t *Tracker) Succeed(window time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateSucceeded
	t.errors = nil
	t.stopResetLocked()
	t.reset = time.AfterFunc(window, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.state == StateSucceeded {
			t.state = StateIdle
		}
	})
}

// Reset clears errors and state immediately, as when the user dismisses the
// form.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopResetLocked()
	t.state = StateIdle
	t.errors = nil
}

func (t *Tracker) stopResetLocked() {
	if t.reset != nil {
		t.reset.Stop()
		t.reset = nil
	}
}

// SimulateLatency models the backend round trip that does not exist. It is
// cosmetic: configs may set the duration to zero.
func SimulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
