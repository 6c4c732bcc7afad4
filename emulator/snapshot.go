package emulator

import (
	"github.com/ezrec/td4/bitedit"
	"github.com/ezrec/td4/clock"
	"github.com/ezrec/td4/cpu"
)

// Snapshot is an immutable copy of everything a render pass displays.
type Snapshot struct {
	State     cpu.State
	Memory    cpu.Memory
	RunState  clock.RunState
	Period    int // Milliseconds.
	MinPeriod int
	MaxPeriod int
	Ticks     int
	Input     *bitedit.HalfByteEditor
	Table     *bitedit.MemoryTable
}

// Snapshot copies the displayable state.
func (ctl *Controller) Snapshot() (snap *Snapshot) {
	input := *ctl.input

	snap = &Snapshot{
		State:     ctl.state,
		Memory:    ctl.memory.Clone(),
		RunState:  ctl.RunState(),
		Period:    ctl.Period(),
		MinPeriod: ctl.minPeriod,
		MaxPeriod: ctl.maxPeriod,
		Ticks:     ctl.ticks,
		Input:     &input,
		Table:     ctl.table.Clone(),
	}

	return
}

// Running reports whether the scheduler is active.
func (snap *Snapshot) Running() bool {
	return snap.RunState == clock.STATE_ACTIVE
}

// AtPc reports whether addr is the program counter.
func (snap *Snapshot) AtPc(addr int) bool {
	return int(snap.State.PC) == addr
}

// Disassembly returns the mnemonic of the word at addr.
func (snap *Snapshot) Disassembly(addr int) string {
	return cpu.Disassemble(snap.Memory[addr])
}
