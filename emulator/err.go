package emulator

import (
	"errors"

	"github.com/ezrec/td4/translate"
)

var f = translate.From

var (
	ErrLoopClosed = errors.New(f("event loop closed"))
)
