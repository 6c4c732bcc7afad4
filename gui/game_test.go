//go:build !headless

package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/td4/emulator"
)

func TestPressedActions_Order(t *testing.T) {
	assert := assert.New(t)

	pressed := map[ebiten.Key]bool{
		ebiten.KeyEscape: true,
		ebiten.KeyS:      true,
		ebiten.KeyR:      true,
		ebiten.KeyMinus:  true,
	}
	want := []emulator.Action{
		emulator.ACTION_RUN,
		emulator.ACTION_STOP,
		emulator.ACTION_PERIOD_DOWN,
		emulator.ACTION_QUIT,
	}

	for range 20 {
		acts := pressedActions(func(key ebiten.Key) bool { return pressed[key] })
		assert.Equal(want, acts)
	}

	assert.Empty(pressedActions(func(ebiten.Key) bool { return false }))
}
