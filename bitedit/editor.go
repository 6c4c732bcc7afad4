package bitedit

import (
	"slices"
)

// HalfByteEditor is the row of four controls for the input port.
type HalfByteEditor struct {
	controls [NIBBLE_BITS]Control
}

// NewHalfByteEditor creates an editor showing value.
func NewHalfByteEditor(value uint8) (ed *HalfByteEditor) {
	ed = &HalfByteEditor{}
	ed.Update(value)
	return
}

// Update rebuilds the controls to show value.
func (ed *HalfByteEditor) Update(value uint8) {
	buildRow(ed.controls[:], TARGET_INPUT, 0, value)
}

// Controls returns the controls, most significant bit first.
func (ed *HalfByteEditor) Controls() []Control {
	return slices.Clone(ed.controls[:])
}

// Value is the displayed 4-bit value.
func (ed *HalfByteEditor) Value() uint8 {
	return rowValue(ed.controls[:])
}

// Activate activates the control for bit.
func (ed *HalfByteEditor) Activate(bit uint) (Intent, error) {
	return rowActivate(ed.controls[:], bit)
}

// ByteEditor is the row of eight controls for one memory word.
type ByteEditor struct {
	address  int
	controls [BYTE_BITS]Control
}

// NewByteEditor creates an editor for address showing value.
func NewByteEditor(address int, value uint8) (ed *ByteEditor) {
	ed = &ByteEditor{address: address}
	ed.Update(value)
	return
}

// Address is the memory address the editor is bound to.
func (ed *ByteEditor) Address() int {
	return ed.address
}

// Update rebuilds the controls to show value.
func (ed *ByteEditor) Update(value uint8) {
	buildRow(ed.controls[:], TARGET_MEMORY, ed.address, value)
}

// Controls returns the controls, most significant bit first.
func (ed *ByteEditor) Controls() []Control {
	return slices.Clone(ed.controls[:])
}

// Value is the displayed byte.
func (ed *ByteEditor) Value() uint8 {
	return rowValue(ed.controls[:])
}

// Activate activates the control for bit.
func (ed *ByteEditor) Activate(bit uint) (Intent, error) {
	return rowActivate(ed.controls[:], bit)
}
