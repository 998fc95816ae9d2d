package testing

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler implements announce.Scheduler with a controllable
// clock. Timers only fire when the clock is advanced, so expiry
// behavior is deterministic. All methods are safe for concurrent use.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	nextID uint64
	timers []*manualTimer
}

type manualTimer struct {
	id  uint64
	due time.Time
	fn  func()
}

// NewManualScheduler returns a ManualScheduler starting at a fixed epoch.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Schedule arms a timer that fires fn once the clock advances past d.
// The returned cancel function removes a timer that has not fired.
func (s *ManualScheduler) Schedule(d time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t := &manualTimer{id: s.nextID, due: s.now.Add(d), fn: fn}
	s.timers = append(s.timers, t)
	id := t.id
	return func() { s.cancel(id) }
}

// Pending returns the number of armed timers.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Advance moves the clock forward by d and fires every timer that came
// due, in due order. Callbacks run without the scheduler lock held, so
// they may schedule or cancel further timers.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	var due, rest []*manualTimer
	for _, t := range s.timers {
		if !t.due.After(s.now) {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.timers = rest
	sort.SliceStable(due, func(i, j int) bool { return due[i].due.Before(due[j].due) })
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

func (s *ManualScheduler) cancel(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}
