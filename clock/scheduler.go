package clock

import (
	"log"
	"time"
)

// RunState is the run/idle state of a Scheduler.
type RunState int

//go:generate go tool stringer -linecomment -type=RunState
const (
	STATE_IDLE   = RunState(0) // Idle
	STATE_ACTIVE = RunState(1) // Active
)

const (
	DEFAULT_PERIOD = 300 * time.Millisecond // Period of a new scheduler.
)

// Scheduler emits an advance signal once per period while active.
//
// Timer callbacks are not delivered directly: they are handed to the post
// function, which is expected to run them on the same queue as every other
// intent. When the posted callback runs, the scheduler re-checks that it is
// still active and that the callback belongs to the current arming; a
// callback armed before a stop is therefore dropped by the scheduler itself
// rather than by the consumer of the signal.
type Scheduler struct {
	Verbose bool // If set, state changes are logged.

	clock   Clock
	post    func(func())
	advance func()

	state  RunState
	period time.Duration
	armed  uint64 // Generation of the pending timer.
	timer  Timer
}

// NewScheduler creates an idle scheduler. advance is called once per
// emission. If post is nil, timer callbacks run directly on the clock's
// goroutine.
func NewScheduler(clk Clock, post func(func()), advance func()) (sc *Scheduler) {
	if post == nil {
		post = func(fn func()) { fn() }
	}

	sc = &Scheduler{
		clock:   clk,
		post:    post,
		advance: advance,
		period:  DEFAULT_PERIOD,
	}

	return
}

// State returns the current run state.
func (sc *Scheduler) State() RunState {
	return sc.state
}

// Period returns the configured period.
func (sc *Scheduler) Period() time.Duration {
	return sc.period
}

// SetPeriod stores a new period. A pending emission keeps the period it was
// armed with; the new period applies from the following one.
func (sc *Scheduler) SetPeriod(period time.Duration) {
	if period <= 0 {
		return
	}
	sc.period = period
}

// Start moves Idle to Active and arms the first emission. Starting an
// active scheduler does nothing.
func (sc *Scheduler) Start() {
	if sc.state == STATE_ACTIVE {
		return
	}

	sc.state = STATE_ACTIVE
	if sc.Verbose {
		log.Printf("clock: start %v", sc.period)
	}

	sc.arm()
}

// Stop moves Active to Idle and cancels the pending emission. Stopping an
// idle scheduler does nothing.
func (sc *Scheduler) Stop() {
	if sc.state == STATE_IDLE {
		return
	}

	sc.state = STATE_IDLE
	sc.armed++
	if sc.timer != nil {
		sc.timer.Stop()
		sc.timer = nil
	}

	if sc.Verbose {
		log.Printf("clock: stop")
	}
}

func (sc *Scheduler) arm() {
	sc.armed++
	generation := sc.armed

	sc.timer = sc.clock.AfterFunc(sc.period, func() {
		sc.post(func() { sc.fire(generation) })
	})
}

func (sc *Scheduler) fire(generation uint64) {
	if sc.state != STATE_ACTIVE || generation != sc.armed {
		return
	}

	sc.timer = nil
	sc.advance()

	// advance may have stopped, or stopped and restarted, the scheduler.
	if sc.state == STATE_ACTIVE && generation == sc.armed {
		sc.arm()
	}
}
