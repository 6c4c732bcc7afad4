package rom

import (
	"github.com/ezrec/td4/translate"
)

var f = translate.From

// ErrFormat reports an unknown image format name.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("unknown image format '%v'", string(err))
}

// ErrSyntax reports a bad token in a hex image.
type ErrSyntax struct {
	LineNo int
	Token  string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Token, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
