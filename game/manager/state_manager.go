package manager

import (
	"time"
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// StopReason records why a run left the Running state.
type StopReason int

const (
	NotStopped StopReason = iota
	GlucoseExhausted
	QuitRequested
	Interrupted
)

func (r StopReason) String() string {
	switch r {
	case GlucoseExhausted:
		return "glucose exhausted"
	case QuitRequested:
		return "quit"
	case Interrupted:
		return "interrupted"
	default:
		return "not stopped"
	}
}

// StateManager is the one-way Running -> Stopped machine of a run.
type StateManager struct {
	state   State
	reason  StopReason
	started time.Time
	stopped time.Time
	now     func() time.Time
}

func NewStateManager(now func() time.Time) *StateManager {
	if now == nil {
		now = time.Now
	}
	return &StateManager{
		state:   Running,
		started: now(),
		now:     now,
	}
}

func (sm *StateManager) State() State {
	return sm.state
}

func (sm *StateManager) Running() bool {
	return sm.state == Running
}

func (sm *StateManager) Reason() StopReason {
	return sm.reason
}

// Stop moves the run to Stopped. Only the first call has any effect; it
// reports whether this call changed the state.
func (sm *StateManager) Stop(reason StopReason) bool {
	if sm.state == Stopped {
		return false
	}
	sm.state = Stopped
	sm.reason = reason
	sm.stopped = sm.now()
	return true
}

// Evaluate applies the termination rule to a census: the run stops once
// no glucose is left.
func (sm *StateManager) Evaluate(c Census) bool {
	if sm.state == Running && c.Glucose == 0 {
		sm.Stop(GlucoseExhausted)
	}
	return sm.Running()
}

// Lifespan is the wall-clock time from start to stop, or to now while
// still running.
func (sm *StateManager) Lifespan() time.Duration {
	if sm.state == Stopped {
		return sm.stopped.Sub(sm.started)
	}
	return sm.now().Sub(sm.started)
}
