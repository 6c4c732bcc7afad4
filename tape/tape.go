// Package tape records the output port to a stream.
package tape

import (
	"fmt"
	"io"

	"github.com/ezrec/td4/cpu"
)

// Recorder is a cpu.Stepper that passes every cycle to Stepper, and
// writes the output port to Output whenever it changes.
//
// In text mode each change is one line of cycle number and value. In
// binary mode each change is one byte.
type Recorder struct {
	Stepper cpu.Stepper
	Output  io.Writer
	Binary  bool

	cycle   int
	last    uint8
	started bool
	err     error
}

var _ cpu.Stepper = (*Recorder)(nil)

// Step advances one cycle and records the output port.
func (rc *Recorder) Step(st *cpu.State, mem cpu.Memory) (pc uint8) {
	pc = rc.Stepper.Step(st, mem)
	rc.cycle++

	if rc.started && st.Out == rc.last {
		return
	}
	rc.started = true
	rc.last = st.Out

	if rc.err != nil {
		return
	}

	if rc.Binary {
		_, rc.err = rc.Output.Write([]byte{st.Out & cpu.NIBBLE_MASK})
	} else {
		_, rc.err = fmt.Fprintf(rc.Output, "%d 0x%1X 0b%04b\n", rc.cycle, st.Out&cpu.NIBBLE_MASK, st.Out&cpu.NIBBLE_MASK)
	}

	return
}

// Err returns the first write error. Nothing more is written after one.
func (rc *Recorder) Err() error {
	return rc.err
}
