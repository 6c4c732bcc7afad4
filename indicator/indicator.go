// Package indicator maps on/off states to filled round lamps.
package indicator

import (
	"image/color"

	"github.com/ezrec/td4/internal"
)

const (
	DEFAULT_RADIUS = float32(10) // Radius of the default lamp.
)

var (
	RED   = color.RGBA{R: 0xff, A: 0xff} // Lit lamp.
	BLACK = color.RGBA{A: 0xff}          // Dark lamp.
)

// Shape is a filled square with rounded corners. When Radius is half of
// Size the shape is a circle.
type Shape struct {
	Size   float32     // Edge of the bounding square.
	Radius float32     // Corner radius.
	Color  color.Color // Fill.
	On     bool        // State the shape was made for.
}

// Center returns the centre of the shape when its top left corner is
// placed at (x, y).
func (sh Shape) Center(x, y float32) (cx, cy float32) {
	half := sh.Size / 2
	return x + half, y + half
}

// Contains reports whether (px, py) is inside the shape placed at (x, y).
func (sh Shape) Contains(x, y, px, py float32) bool {
	return px >= x && px < x+sh.Size && py >= y && py < y+sh.Size
}

// Indicator is a lamp of fixed radius with a colour for each state.
type Indicator struct {
	Radius float32
	On     color.Color
	Off    color.Color
}

// New creates an indicator. A non-positive radius selects DEFAULT_RADIUS,
// and nil colours select RED and BLACK.
func New(radius float32, on, off color.Color) (ind Indicator) {
	if radius <= 0 {
		radius = DEFAULT_RADIUS
	}
	if on == nil {
		on = RED
	}
	if off == nil {
		off = BLACK
	}

	ind = Indicator{
		Radius: radius,
		On:     on,
		Off:    off,
	}

	return
}

// Default is the red-on-black lamp of radius 10.
func Default() Indicator {
	return New(DEFAULT_RADIUS, RED, BLACK)
}

// Size returns the edge of the bounding square, 2*Radius.
func (ind Indicator) Size() float32 {
	return 2 * ind.Radius
}

// Shape returns the lamp for a state.
func (ind Indicator) Shape(on bool) Shape {
	clr := ind.Off
	if on {
		clr = ind.On
	}

	return Shape{
		Size:   ind.Size(),
		Radius: ind.Radius,
		Color:  clr,
		On:     on,
	}
}

// Lamps returns one lamp per bit of the low width bits of value, most
// significant bit first.
func (ind Indicator) Lamps(value uint8, width int) (lamps []Shape) {
	lamps = make([]Shape, 0, width)
	for _, on := range internal.IterBits(value, width) {
		lamps = append(lamps, ind.Shape(on))
	}

	return
}
