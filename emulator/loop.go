package emulator

import (
	"context"
	"sync/atomic"

	"github.com/ezrec/td4/clock"
	"github.com/ezrec/td4/cpu"
)

const (
	EVENT_QUEUE_DEPTH = 64 // Intents buffered ahead of the loop.
)

// Loop is the single event queue in front of a Controller. Operator
// intents and scheduler ticks are processed one at a time, in order, and
// a Snapshot is published after each one.
type Loop struct {
	ctl      *Controller
	events   chan func(*Controller)
	updated  chan struct{}
	done     chan struct{}
	started  atomic.Bool
	snapshot atomic.Pointer[Snapshot]
}

// NewLoop creates a loop around a new idle controller. Intents may be
// posted before Run is called; they are processed once it is.
func NewLoop(stepper cpu.Stepper, mem cpu.Memory, clk clock.Clock) (lp *Loop) {
	lp = &Loop{
		events:  make(chan func(*Controller), EVENT_QUEUE_DEPTH),
		updated: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	lp.ctl = NewController(stepper, mem, clk, lp.post)
	lp.publish()

	return
}

// post queues a scheduler callback.
func (lp *Loop) post(fn func()) {
	lp.Post(func(*Controller) { fn() })
}

// Post queues fn to run against the controller. It does not wait for fn
// to run, and drops fn if the loop has already stopped.
func (lp *Loop) Post(fn func(ctl *Controller)) {
	select {
	case lp.events <- fn:
	case <-lp.done:
	}
}

// Do queues fn and waits for it to run.
func (lp *Loop) Do(ctx context.Context, fn func(ctl *Controller)) (err error) {
	ran := make(chan struct{})
	wrapped := func(ctl *Controller) {
		defer close(ran)
		fn(ctl)
	}

	select {
	case lp.events <- wrapped:
	case <-lp.done:
		return ErrLoopClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-ran:
	case <-lp.done:
		err = ErrLoopClosed
	case <-ctx.Done():
		err = ctx.Err()
	}

	return
}

// Snapshot returns the state published after the most recent event.
func (lp *Loop) Snapshot() *Snapshot {
	return lp.snapshot.Load()
}

// Updated signals after a new snapshot is published. Signals coalesce.
func (lp *Loop) Updated() <-chan struct{} {
	return lp.updated
}

// Done is closed when Run returns.
func (lp *Loop) Done() <-chan struct{} {
	return lp.done
}

// Run processes events until ctx ends. The scheduler is stopped on exit.
// Run may only be called once.
func (lp *Loop) Run(ctx context.Context) (err error) {
	if !lp.started.CompareAndSwap(false, true) {
		panic("emulator: Loop.Run called twice")
	}
	defer close(lp.done)

	for {
		select {
		case <-ctx.Done():
			lp.ctl.Stop()
			lp.publish()
			err = ctx.Err()
			return
		case fn := <-lp.events:
			fn(lp.ctl)
			lp.publish()
		}
	}
}

func (lp *Loop) publish() {
	lp.snapshot.Store(lp.ctl.Snapshot())

	select {
	case lp.updated <- struct{}{}:
	default:
	}
}
