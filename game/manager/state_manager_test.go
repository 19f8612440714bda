package manager

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func TestStateManager_OneWay(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	sm := NewStateManager(clock.now)

	if !sm.Running() || sm.State() != Running {
		t.Fatal("Expected a new run to be running")
	}
	if sm.Reason() != NotStopped {
		t.Errorf("Expected no stop reason, got %v", sm.Reason())
	}

	clock.t = clock.t.Add(3 * time.Second)
	if !sm.Stop(QuitRequested) {
		t.Error("Expected first stop to take effect")
	}
	if sm.Stop(GlucoseExhausted) {
		t.Error("Expected second stop to be ignored")
	}
	if sm.Reason() != QuitRequested {
		t.Errorf("Expected quit reason, got %v", sm.Reason())
	}

	// A census with glucose never restarts the run.
	if sm.Evaluate(Census{Glucose: 5}) {
		t.Error("Expected stopped run to stay stopped")
	}

	clock.t = clock.t.Add(time.Hour)
	if got := sm.Lifespan(); got != 3*time.Second {
		t.Errorf("Expected lifespan 3s, got %v", got)
	}
}

func TestStateManager_Evaluate(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	sm := NewStateManager(clock.now)

	if !sm.Evaluate(Census{Yeast: 1, Glucose: 1}) {
		t.Error("Expected run to continue with glucose left")
	}
	clock.t = clock.t.Add(time.Second)
	if got := sm.Lifespan(); got != time.Second {
		t.Errorf("Expected running lifespan 1s, got %v", got)
	}

	if sm.Evaluate(Census{Yeast: 1, Other: 2}) {
		t.Error("Expected run to stop without glucose")
	}
	if sm.Reason() != GlucoseExhausted {
		t.Errorf("Expected glucose exhausted, got %v", sm.Reason())
	}
	if sm.State().String() != "stopped" {
		t.Errorf("Expected stopped, got %v", sm.State())
	}
}

func TestStopReasonString(t *testing.T) {
	tests := map[StopReason]string{
		NotStopped:       "not stopped",
		GlucoseExhausted: "glucose exhausted",
		QuitRequested:    "quit",
		Interrupted:      "interrupted",
	}
	for r, want := range tests {
		if r.String() != want {
			t.Errorf("Expected %q, got %q", want, r.String())
		}
	}
}
