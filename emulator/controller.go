// Package emulator owns the TD4 processor state and routes every operator
// intent (run, stop, step, reset, period changes and bit edits) to it.
package emulator

import (
	"log"
	"time"

	"github.com/ezrec/td4/bitedit"
	"github.com/ezrec/td4/clock"
	"github.com/ezrec/td4/cpu"
)

const (
	MIN_PERIOD     = 100 // Shortest tick period, in milliseconds.
	MAX_PERIOD     = 1000
	DEFAULT_PERIOD = 300
)

// Controller is the sole owner and mutator of the processor state. It is
// not safe for concurrent use; Loop serializes access to it.
type Controller struct {
	Verbose bool // If set, edits and advances are logged.

	state   cpu.State
	memory  cpu.Memory
	stepper cpu.Stepper

	scheduler *clock.Scheduler
	input     *bitedit.HalfByteEditor
	table     *bitedit.MemoryTable

	minPeriod int
	maxPeriod int
	ticks     int
}

// NewController creates an idle controller for mem. Scheduler callbacks
// are passed to post, which must run them on the same goroutine as every
// other call into the controller; a nil post runs them on the clock's
// goroutine.
func NewController(stepper cpu.Stepper, mem cpu.Memory, clk clock.Clock, post func(func())) (ctl *Controller) {
	ctl = &Controller{
		memory:    mem,
		stepper:   stepper,
		minPeriod: MIN_PERIOD,
		maxPeriod: MAX_PERIOD,
	}

	ctl.scheduler = clock.NewScheduler(clk, post, ctl.tick)
	ctl.scheduler.SetPeriod(DEFAULT_PERIOD * time.Millisecond)

	ctl.input = bitedit.NewHalfByteEditor(ctl.state.In)
	ctl.table = bitedit.NewMemoryTable(ctl.memory)

	return
}

// SetPeriodRange changes the bounds SetPeriod clamps to, and re-clamps the
// current period.
func (ctl *Controller) SetPeriodRange(lo, hi int) {
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}

	ctl.minPeriod = lo
	ctl.maxPeriod = hi
	ctl.SetPeriod(ctl.Period())
}

// PeriodRange returns the bounds of the tick period, in milliseconds.
func (ctl *Controller) PeriodRange() (lo, hi int) {
	return ctl.minPeriod, ctl.maxPeriod
}

// Reset clears the registers, the carry flag and both ports. Program
// memory and the run state are left alone.
func (ctl *Controller) Reset() {
	ctl.state.Reset()
	ctl.refresh()

	if ctl.Verbose {
		log.Printf("reset")
	}
}

// Run starts free-running execution at the current period.
func (ctl *Controller) Run() {
	ctl.scheduler.Verbose = ctl.Verbose
	ctl.scheduler.Start()
}

// Stop ends free-running execution. No tick is delivered after Stop
// returns.
func (ctl *Controller) Stop() {
	ctl.scheduler.Verbose = ctl.Verbose
	ctl.scheduler.Stop()
}

// Step advances one cycle, but only while idle.
func (ctl *Controller) Step() {
	if ctl.RunState() != clock.STATE_IDLE {
		return
	}
	ctl.advance()
}

// tick is the scheduler's advance signal. It only fires while active.
func (ctl *Controller) tick() {
	ctl.advance()
}

func (ctl *Controller) advance() {
	pc := ctl.stepper.Step(&ctl.state, ctl.memory)
	ctl.state.PC = pc & cpu.NIBBLE_MASK
	ctl.ticks++

	ctl.refresh()

	if ctl.Verbose {
		log.Printf("%v", ctl.state)
	}
}

// SetPeriod changes the tick period, clamped to the period range, and
// returns the period in effect. A running scheduler keeps running; the new
// period applies from the emission after the pending one.
func (ctl *Controller) SetPeriod(ms int) int {
	ms = max(ctl.minPeriod, min(ms, ctl.maxPeriod))
	ctl.scheduler.SetPeriod(time.Duration(ms) * time.Millisecond)
	return ms
}

// EditInputBit clears bit of the input port and sets it to the negation
// of previous. Edits are ignored while running.
func (ctl *Controller) EditInputBit(bit uint, previous bool) {
	if bit >= bitedit.NIBBLE_BITS {
		panic(bitedit.ErrBitRange{Bit: bit, Width: bitedit.NIBBLE_BITS})
	}
	if ctl.RunState() != clock.STATE_IDLE {
		return
	}

	ctl.state.In = bitedit.Toggle(ctl.state.In, bit, previous)
	ctl.input.Update(ctl.state.In)

	if ctl.Verbose {
		log.Printf("Input = 0b%04b", ctl.state.In&cpu.NIBBLE_MASK)
	}
}

// EditMemoryBit clears bit of the word at addr and sets it to the
// negation of previous. Edits are ignored while running.
func (ctl *Controller) EditMemoryBit(addr int, bit uint, previous bool) {
	if err := ctl.memory.Check(addr); err != nil {
		panic(err)
	}
	if bit >= bitedit.BYTE_BITS {
		panic(bitedit.ErrBitRange{Bit: bit, Width: bitedit.BYTE_BITS})
	}
	if ctl.RunState() != clock.STATE_IDLE {
		return
	}

	value := bitedit.Toggle(ctl.memory[addr], bit, previous)
	ctl.memory[addr] = value
	ctl.table.Editor(addr).Update(value)

	if ctl.Verbose {
		log.Printf("Rom[%2d] = 0b%04b_%04b", addr, value>>4, value&cpu.NIBBLE_MASK)
	}
}

// Apply routes an edit intent to EditInputBit or EditMemoryBit.
func (ctl *Controller) Apply(in bitedit.Intent) {
	switch in.Target {
	case bitedit.TARGET_INPUT:
		ctl.EditInputBit(in.Bit, in.Previous)
	case bitedit.TARGET_MEMORY:
		ctl.EditMemoryBit(in.Address, in.Bit, in.Previous)
	}
}

// Load replaces program memory with a copy of image, which may shrink the
// memory. Images larger than cpu.MEMORY_SIZE are rejected with
// cpu.ErrImageSize. Loads are ignored while running.
func (ctl *Controller) Load(image []uint8) (err error) {
	if len(image) > cpu.MEMORY_SIZE {
		err = cpu.ErrImageSize
		return
	}
	if ctl.RunState() != clock.STATE_IDLE {
		return
	}

	ctl.memory = cpu.Memory(image).Clone()
	ctl.refresh()

	return
}

// refresh brings the editors in line with the state and memory.
func (ctl *Controller) refresh() {
	ctl.input.Update(ctl.state.In)
	ctl.table.Sync(ctl.memory)
}

// State returns a copy of the registers and ports.
func (ctl *Controller) State() cpu.State {
	return ctl.state
}

// A returns register A.
func (ctl *Controller) A() uint8 {
	return ctl.state.A
}

// B returns register B.
func (ctl *Controller) B() uint8 {
	return ctl.state.B
}

// Pc returns the program counter.
func (ctl *Controller) Pc() uint8 {
	return ctl.state.PC
}

// Carry returns the carry flag.
func (ctl *Controller) Carry() bool {
	return ctl.state.Carry
}

// Out returns the output port.
func (ctl *Controller) Out() uint8 {
	return ctl.state.Out
}

// In returns the input port.
func (ctl *Controller) In() uint8 {
	return ctl.state.In
}

// Memory returns a copy of program memory.
func (ctl *Controller) Memory() cpu.Memory {
	return ctl.memory.Clone()
}

// Byte returns the word at addr.
func (ctl *Controller) Byte(addr int) uint8 {
	return ctl.memory[addr]
}

// RunState returns Idle or Active.
func (ctl *Controller) RunState() clock.RunState {
	return ctl.scheduler.State()
}

// Period returns the tick period in milliseconds.
func (ctl *Controller) Period() int {
	return int(ctl.scheduler.Period() / time.Millisecond)
}

// Ticks returns the number of cycles advanced since start up.
func (ctl *Controller) Ticks() int {
	return ctl.ticks
}

// Input returns the input port editor.
func (ctl *Controller) Input() *bitedit.HalfByteEditor {
	return ctl.input
}

// Table returns the program memory editors.
func (ctl *Controller) Table() *bitedit.MemoryTable {
	return ctl.table
}
