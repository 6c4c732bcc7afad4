package cpu

import (
	"log"
)

// Td4 executes TD4 instruction words through the processor's data path: a
// source selector (A, B, IN or zero), a 4-bit adder fed by the immediate,
// and a load selector (A, B, OUT or PC). The carry flag latches the adder
// carry on every cycle, so only ADD can leave it set.
type Td4 struct {
	Verbose bool // If set, each executed word is logged.
}

var _ Stepper = (*Td4)(nil)

// Step executes the word at st.PC and returns the next program counter.
func (td *Td4) Step(st *State, mem Memory) (pc uint8) {
	code := mem.Fetch(st.PC)
	_, imm := Decode(code)

	if td.Verbose {
		log.Printf("%02d: %02x %v", st.PC, code, Disassemble(code))
	}

	selA := code&0x10 != 0 || code&0x80 != 0
	selB := code&0x20 != 0

	var src uint8
	switch {
	case !selB && !selA:
		src = st.A
	case !selB && selA:
		src = st.B
	case selB && !selA:
		src = st.In
	default:
		src = 0
	}

	sum := (src & NIBBLE_MASK) + imm
	carry := sum > NIBBLE_MASK
	sum &= NIBBLE_MASK

	pc = (st.PC + 1) & NIBBLE_MASK

	switch code >> 6 {
	case 0b00:
		st.A = sum
	case 0b01:
		st.B = sum
	case 0b10:
		st.Out = sum
	case 0b11:
		// JMP always loads; JNC loads only while the carry is clear.
		if code&0x10 != 0 || !st.Carry {
			pc = sum
		}
	}

	st.Carry = carry

	return
}
