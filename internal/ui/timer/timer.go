// Package timer provides cancellable single-shot timers for widget state
// machines.
//
// Widgets never call time.AfterFunc directly. They schedule work through a
// [Scheduler] and keep the returned [Handle] so teardown can cancel every
// pending re-entry deterministically. Two schedulers are provided:
//
//   - [Manual]: a virtual clock advanced explicitly, used by tests
//   - [Tea]: timers delivered as Bubbletea messages on the Update loop
//
// Callbacks always run on the goroutine that drives the scheduler
// (Advance for Manual, Handle for Tea), so widget state needs no locking.
package timer

import "time"

// Handle is a pending single-shot timer.
type Handle interface {
	// Stop cancels the timer. Returns true if the call prevented the
	// callback from running, false if it already fired or was stopped.
	Stop() bool
}

// Scheduler arms single-shot timers.
type Scheduler interface {
	// AfterFunc schedules f to run once after d elapses.
	// A non-positive d fires on the next opportunity.
	AfterFunc(d time.Duration, f func()) Handle
}

// Stop stops h if it is non-nil and returns nil, so callers can write
// h = timer.Stop(h).
func Stop(h Handle) Handle {
	if h != nil {
		h.Stop()
	}
	return nil
}
