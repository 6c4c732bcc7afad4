package emulator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/td4/clock"
	"github.com/ezrec/td4/cpu"
)

func startLoop(t *testing.T) (lp *Loop, clk *clock.Manual, cancel context.CancelFunc) {
	clk = &clock.Manual{}
	lp = NewLoop(&countStepper{}, cpu.NewMemory(), clk)

	ctx, cancel := context.WithCancel(context.Background())
	go lp.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-lp.Done()
	})

	return
}

// barrier waits until every previously posted event has been processed.
func barrier(t *testing.T, lp *Loop) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, lp.Do(ctx, func(*Controller) {}))
}

func TestLoop_InitialSnapshot(t *testing.T) {
	assert := assert.New(t)

	lp := NewLoop(&countStepper{}, cpu.NewMemory(), &clock.Manual{})
	snap := lp.Snapshot()

	assert.NotNil(snap)
	assert.Equal(clock.STATE_IDLE, snap.RunState)
	assert.Equal(DEFAULT_PERIOD, snap.Period)
	assert.Len(snap.Memory, cpu.MEMORY_SIZE)
	assert.False(snap.Running())
	assert.True(snap.AtPc(0))
}

func TestLoop_PostBeforeRun(t *testing.T) {
	assert := assert.New(t)

	clk := &clock.Manual{}
	lp := NewLoop(&countStepper{}, cpu.NewMemory(), clk)
	lp.Post(func(ctl *Controller) { ctl.SetPeriod(700) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go lp.Run(ctx)

	barrier(t, lp)
	assert.Equal(700, lp.Snapshot().Period)
}

func TestLoop_Intents(t *testing.T) {
	assert := assert.New(t)

	lp, _, _ := startLoop(t)

	lp.Post(func(ctl *Controller) { ctl.EditMemoryBit(3, 4, false) })
	lp.Post(func(ctl *Controller) { ctl.EditInputBit(0, false) })
	lp.Post(func(ctl *Controller) { ctl.Step() })
	barrier(t, lp)

	snap := lp.Snapshot()
	assert.Equal(uint8(0b0001_0000), snap.Memory[3])
	assert.Equal(uint8(0b0001_0000), snap.Table.Editor(3).Value())
	assert.Equal(uint8(1), snap.State.In)
	assert.Equal(uint8(1), snap.Input.Value())
	assert.Equal(uint8(1), snap.State.PC)
	assert.True(snap.AtPc(1))
	assert.Equal("ADD A,0", snap.Disassembly(0))
	assert.Equal(1, snap.Ticks)
}

func TestLoop_SnapshotIsImmutable(t *testing.T) {
	assert := assert.New(t)

	lp, _, _ := startLoop(t)

	before := lp.Snapshot()
	lp.Post(func(ctl *Controller) { ctl.EditMemoryBit(0, 0, false) })
	barrier(t, lp)

	assert.Equal(uint8(0), before.Memory[0])
	assert.Equal(uint8(0), before.Table.Editor(0).Value())
	assert.Equal(uint8(1), lp.Snapshot().Memory[0])
}

func TestLoop_Ticks(t *testing.T) {
	assert := assert.New(t)

	lp, clk, _ := startLoop(t)

	lp.Post(func(ctl *Controller) {
		ctl.SetPeriod(200)
		ctl.Run()
	})
	barrier(t, lp)

	for range 3 {
		clk.Advance(200 * time.Millisecond)
		barrier(t, lp)
	}

	snap := lp.Snapshot()
	assert.True(snap.Running())
	assert.Equal(3, snap.Ticks)

	lp.Post(func(ctl *Controller) { ctl.Stop() })
	barrier(t, lp)

	clk.Advance(10 * time.Second)
	barrier(t, lp)
	assert.Equal(3, lp.Snapshot().Ticks)
	assert.False(lp.Snapshot().Running())
}

func TestLoop_StopBeforeQueuedTick(t *testing.T) {
	assert := assert.New(t)

	clk := &clock.Manual{}
	lp := NewLoop(&countStepper{}, cpu.NewMemory(), clk)

	lp.Post(func(ctl *Controller) { ctl.Run() })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go lp.Run(ctx)
	barrier(t, lp)

	// The stop is queued ahead of the tick's signal, so the tick is dropped.
	lp.Post(func(ctl *Controller) { ctl.Stop() })
	clk.Advance(DEFAULT_PERIOD * time.Millisecond)
	barrier(t, lp)

	assert.Equal(0, lp.Snapshot().Ticks)
}

func TestLoop_Updated(t *testing.T) {
	assert := assert.New(t)

	lp, _, _ := startLoop(t)

	// Drain the signal from construction.
	select {
	case <-lp.Updated():
	default:
	}

	lp.Post(func(ctl *Controller) { ctl.Reset() })

	select {
	case <-lp.Updated():
	case <-time.After(5 * time.Second):
		assert.Fail("no update signal")
	}
}

func TestLoop_Closed(t *testing.T) {
	assert := assert.New(t)

	lp := NewLoop(&countStepper{}, cpu.NewMemory(), &clock.Manual{})

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- lp.Run(ctx) }()

	lp.Post(func(ctl *Controller) { ctl.Run() })
	barrier(t, lp)
	cancel()

	assert.ErrorIs(<-result, context.Canceled)
	assert.False(lp.Snapshot().Running())

	err := lp.Do(context.Background(), func(*Controller) {})
	assert.ErrorIs(err, ErrLoopClosed)

	// Posting to a closed loop does not block.
	lp.Post(func(ctl *Controller) {})
}

func TestLoop_DoContext(t *testing.T) {
	assert := assert.New(t)

	lp := NewLoop(&countStepper{}, cpu.NewMemory(), &clock.Manual{})

	// The loop is not running, so the event is queued but never processed.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := lp.Do(ctx, func(*Controller) {})
	assert.ErrorIs(err, context.DeadlineExceeded)
}
