// Package clock paces free-running execution. A Scheduler emits an
// "advance" signal once per period while it is active, and never while it
// is idle.
package clock

import (
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or the timer was already stopped.
	Stop() bool
}

// Clock schedules one-shot callbacks.
type Clock interface {
	// AfterFunc calls fn on its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}

// System is the wall clock.
type System struct{}

var _ Clock = System{}

// AfterFunc wraps time.AfterFunc.
func (System) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
