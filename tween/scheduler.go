package tween

import (
	"slices"
	"time"
)

// Scheduler runs delayed callbacks from a game loop. Time only advances
// when Update is called, and callbacks run on the goroutine calling Update.
// It satisfies sequencer.Scheduler.
type Scheduler struct {
	timers []*timer
}

type timer struct {
	delay     Simple
	fn        func()
	cancelled bool
}

// AfterFunc schedules fn to run during the first Update at which at least d
// has elapsed. It never runs fn synchronously.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := &timer{
		delay: Simple{Duration: d},
		fn:    fn,
	}

	s.timers = append(s.timers, t)

	return func() { t.cancelled = true }
}

// Update advances all timers by dt and runs the callbacks that are due, in
// the order they were scheduled.
func (s *Scheduler) Update(dt time.Duration) {
	var due []*timer

	s.timers = slices.DeleteFunc(s.timers, func(t *timer) bool {
		if t.cancelled {
			return true
		}

		if t.delay.Update(dt) {
			due = append(due, t)
			return true
		}

		return false
	})

	// callbacks may schedule new timers, run them after the list is settled
	for _, t := range due {
		if !t.cancelled {
			t.fn()
		}
	}
}

// Pending returns the number of timers that have neither fired nor been
// cancelled.
func (s *Scheduler) Pending() int {
	var count int
	for _, t := range s.timers {
		if !t.cancelled {
			count++
		}
	}

	return count
}

// Clear cancels all pending timers.
func (s *Scheduler) Clear() {
	for _, t := range s.timers {
		t.cancelled = true
	}

	s.timers = nil
}
