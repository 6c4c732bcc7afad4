package cpu

import (
	"fmt"
)

const (
	NIBBLE_MASK = uint8(0x0f) // Meaningful bits of registers and ports.
	NIBBLE_BITS = 4           // Width of registers and ports.
)

// State is the register file and I/O ports of the processor.
type State struct {
	A     uint8 // Register A. Only the low nibble is meaningful.
	B     uint8 // Register B. Only the low nibble is meaningful.
	PC    uint8 // Program counter, 0..15.
	Carry bool  // Carry flag.
	Out   uint8 // Output port.
	In    uint8 // Input port.
}

// Reset clears the registers, the carry flag and both ports.
func (st *State) Reset() {
	*st = State{}
}

func (st State) String() string {
	carry := 0
	if st.Carry {
		carry = 1
	}

	return fmt.Sprintf("PC:%02d A:%04b(%X) B:%04b(%X) C:%d IN:%04b OUT:%04b",
		st.PC, st.A&NIBBLE_MASK, st.A&NIBBLE_MASK, st.B&NIBBLE_MASK, st.B&NIBBLE_MASK,
		carry, st.In&NIBBLE_MASK, st.Out&NIBBLE_MASK)
}
