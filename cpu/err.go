package cpu

import (
	"errors"

	"github.com/ezrec/td4/translate"
)

var f = translate.From

var (
	ErrImageSize = errors.New(f("image larger than program memory"))
)

// ErrAddress reports a program memory address outside of the memory.
type ErrAddress struct {
	Address int
	Size    int
}

func (err ErrAddress) Error() string {
	return f("address %d outside of %d byte memory", err.Address, err.Size)
}
