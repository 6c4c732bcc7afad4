package config

import (
	"strings"

	"github.com/ezrec/td4/translate"
)

var f = translate.From

// ErrUnknownKey lists settings keys that are not understood.
type ErrUnknownKey []string

func (err ErrUnknownKey) Error() string {
	return f("unknown settings %v", strings.Join(err, ", "))
}

// ErrValue reports an unusable setting.
type ErrValue struct {
	Key   string
	Value any
}

func (err ErrValue) Error() string {
	return f("%v: bad value '%v'", err.Key, err.Value)
}
