package bitedit

import (
	"fmt"
)

// Target identifies the byte an intent edits.
type Target int

//go:generate go tool stringer -linecomment -type=Target
const (
	TARGET_INPUT  = Target(0) // input
	TARGET_MEMORY = Target(1) // memory
)

const (
	NIBBLE_BITS = 4 // Width of the input port.
	BYTE_BITS   = 8 // Width of a memory word.
)

// Width returns the number of editable bits of the target.
func (tg Target) Width() int {
	if tg == TARGET_INPUT {
		return NIBBLE_BITS
	}
	return BYTE_BITS
}

// Intent is a request to flip one bit. Previous is the value the control
// displayed when it was activated.
type Intent struct {
	Target   Target
	Address  int // Memory address. Zero for the input port.
	Bit      uint
	Previous bool
}

func (in Intent) String() string {
	previous := 0
	if in.Previous {
		previous = 1
	}

	if in.Target == TARGET_INPUT {
		return fmt.Sprintf("%v.%d (was %d)", in.Target, in.Bit, previous)
	}

	return fmt.Sprintf("%v[%d].%d (was %d)", in.Target, in.Address, in.Bit, previous)
}

// Check returns an error if the bit index is outside of the target.
func (in Intent) Check() (err error) {
	width := in.Target.Width()
	if in.Bit >= uint(width) {
		err = ErrBitRange{Bit: in.Bit, Width: width}
	}
	return
}

// Bit returns bit of value.
func Bit(value uint8, bit uint) bool {
	return (value>>bit)&1 != 0
}

// Toggle clears bit of value and then sets it to the negation of previous.
// No other bit of value is changed.
func Toggle(value uint8, bit uint, previous bool) uint8 {
	value &^= 1 << bit
	if !previous {
		value |= 1 << bit
	}
	return value
}
