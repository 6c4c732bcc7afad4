package bitedit

import (
	"github.com/ezrec/td4/indicator"
	"github.com/ezrec/td4/internal"
)

// Activator is anything that produces an edit intent when the operator
// activates it.
type Activator interface {
	Activate() Intent
}

// Control is one interactive bit cell, bound to one bit of one byte.
type Control struct {
	Target  Target
	Address int
	Bit     uint
	Value   bool // Value displayed when the control was built.
}

var _ Activator = Control{}

// Activate returns the intent to flip the bound bit. It carries the
// displayed value, not the live one.
func (ct Control) Activate() Intent {
	return Intent{
		Target:   ct.Target,
		Address:  ct.Address,
		Bit:      ct.Bit,
		Previous: ct.Value,
	}
}

// Label is the face text of the control.
func (ct Control) Label() string {
	if ct.Value {
		return "1"
	}
	return "0"
}

// Face is the lamp drawn on the control.
func (ct Control) Face(ind indicator.Indicator) indicator.Shape {
	return ind.Shape(ct.Value)
}

// buildRow fills controls for value, most significant bit first.
func buildRow(controls []Control, target Target, address int, value uint8) {
	n := 0
	for bit, on := range internal.IterBits(value, len(controls)) {
		controls[n] = Control{
			Target:  target,
			Address: address,
			Bit:     bit,
			Value:   on,
		}
		n++
	}
}

// rowValue reassembles the displayed value of a row.
func rowValue(controls []Control) (value uint8) {
	for _, ct := range controls {
		if ct.Value {
			value |= 1 << ct.Bit
		}
	}
	return
}

// rowActivate activates the control bound to bit.
func rowActivate(controls []Control, bit uint) (in Intent, err error) {
	for _, ct := range controls {
		if ct.Bit == bit {
			in = ct.Activate()
			return
		}
	}

	err = ErrBitRange{Bit: bit, Width: len(controls)}
	return
}
