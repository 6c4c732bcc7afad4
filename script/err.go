package script

import (
	"github.com/ezrec/td4/translate"
)

var f = translate.From

// ErrArgument reports a builtin argument outside of its range.
type ErrArgument struct {
	Name  string
	Value int
}

func (err ErrArgument) Error() string {
	return f("argument %v out of range: %d", err.Name, err.Value)
}
