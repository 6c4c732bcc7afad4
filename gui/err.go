package gui

import (
	"errors"

	"github.com/ezrec/td4/translate"
)

var f = translate.From

var (
	ErrHeadless = errors.New(f("built without a window system"))
)
