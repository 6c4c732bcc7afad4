package bitedit

import (
	"github.com/ezrec/td4/translate"
)

var f = translate.From

// ErrBitRange reports a bit index outside of the edited value.
type ErrBitRange struct {
	Bit   uint
	Width int
}

func (err ErrBitRange) Error() string {
	return f("bit %d outside of %d bit value", err.Bit, err.Width)
}

// ErrAddressRange reports a memory table address with no editor.
type ErrAddressRange struct {
	Address int
	Size    int
}

func (err ErrAddressRange) Error() string {
	return f("address %d outside of %d entry table", err.Address, err.Size)
}
