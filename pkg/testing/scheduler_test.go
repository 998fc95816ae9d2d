package testing

import (
	"testing"
	"time"
)

// TestManualScheduler_FiresInDueOrder verifies advancing the clock fires
// due timers oldest first.
func TestManualScheduler_FiresInDueOrder(t *testing.T) {
	s := NewManualScheduler()
	var fired []string
	s.Schedule(2*time.Second, func() { fired = append(fired, "later") })
	s.Schedule(time.Second, func() { fired = append(fired, "sooner") })

	s.Advance(3 * time.Second)

	if len(fired) != 2 || fired[0] != "sooner" || fired[1] != "later" {
		t.Errorf("expected [sooner later], got %v", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", s.Pending())
	}
}

// TestManualScheduler_PartialAdvance verifies timers beyond the advanced
// window stay armed.
func TestManualScheduler_PartialAdvance(t *testing.T) {
	s := NewManualScheduler()
	fired := false
	s.Schedule(5*time.Second, func() { fired = true })

	s.Advance(4 * time.Second)
	if fired {
		t.Error("expected timer not yet due")
	}
	s.Advance(time.Second)
	if !fired {
		t.Error("expected timer fired at its due time")
	}
}

// TestManualScheduler_Cancel verifies cancellation is silent and final.
func TestManualScheduler_Cancel(t *testing.T) {
	s := NewManualScheduler()
	fired := false
	cancel := s.Schedule(time.Second, func() { fired = true })

	cancel()
	cancel() // repeated cancel is a no-op
	s.Advance(2 * time.Second)

	if fired {
		t.Error("expected cancelled timer to stay silent")
	}
}

// TestManualScheduler_ReschedulingCallback verifies a callback may arm a
// new timer during Advance.
func TestManualScheduler_ReschedulingCallback(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	s.Schedule(time.Second, func() {
		count++
		s.Schedule(time.Second, func() { count++ })
	})

	s.Advance(time.Second)
	if count != 1 {
		t.Fatalf("expected one firing, got %d", count)
	}
	s.Advance(time.Second)
	if count != 2 {
		t.Errorf("expected the rescheduled timer to fire, got %d", count)
	}
}
