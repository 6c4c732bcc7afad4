//go:build headless

package gui

import (
	"context"

	"github.com/ezrec/td4/emulator"
)

// Run reports ErrHeadless; this build has no window system.
func Run(ctx context.Context, loop *emulator.Loop, opts Options) error {
	return ErrHeadless
}
