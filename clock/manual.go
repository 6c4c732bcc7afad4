package clock

import (
	"sync"
	"time"
)

// Manual is a Clock that only moves when Advance is called. Callbacks run
// synchronously on the goroutine calling Advance, in deadline order.
type Manual struct {
	mutex  sync.Mutex
	now    time.Duration
	serial int
	timers []*manualTimer
}

var _ Clock = (*Manual)(nil)

type manualTimer struct {
	clock    *Manual
	deadline time.Duration
	serial   int
	fn       func()
}

// Now returns the time elapsed since the clock was created.
func (mc *Manual) Now() time.Duration {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	return mc.now
}

// Pending returns the number of timers that have not fired or been stopped.
func (mc *Manual) Pending() int {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	return len(mc.timers)
}

// AfterFunc registers fn to run once the clock has advanced by d.
func (mc *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	mc.serial++
	tm := &manualTimer{
		clock:    mc,
		deadline: mc.now + d,
		serial:   mc.serial,
		fn:       fn,
	}
	mc.timers = append(mc.timers, tm)

	return tm
}

// Advance moves the clock forward by d, firing every timer that falls due.
func (mc *Manual) Advance(d time.Duration) {
	mc.mutex.Lock()
	target := mc.now + d
	mc.mutex.Unlock()

	for {
		tm := mc.next(target)
		if tm == nil {
			break
		}
		tm.fn()
	}

	mc.mutex.Lock()
	mc.now = target
	mc.mutex.Unlock()
}

// next removes and returns the earliest timer due by target.
func (mc *Manual) next(target time.Duration) (tm *manualTimer) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	index := -1
	for n, candidate := range mc.timers {
		if candidate.deadline > target {
			continue
		}
		if tm == nil || candidate.deadline < tm.deadline ||
			(candidate.deadline == tm.deadline && candidate.serial < tm.serial) {
			tm = candidate
			index = n
		}
	}

	if tm != nil {
		mc.timers = append(mc.timers[:index], mc.timers[index+1:]...)
		mc.now = tm.deadline
	}

	return
}

func (tm *manualTimer) Stop() bool {
	mc := tm.clock

	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	for n, candidate := range mc.timers {
		if candidate == tm {
			mc.timers = append(mc.timers[:n], mc.timers[n+1:]...)
			return true
		}
	}

	return false
}
