package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/td4/bitedit"
	"github.com/ezrec/td4/clock"
	"github.com/ezrec/td4/cpu"
	"github.com/ezrec/td4/emulator"
	"github.com/ezrec/td4/indicator"
)

func newTestController() *emulator.Controller {
	mem := cpu.NewMemory()
	mem[1] = 0xb5
	return emulator.NewController(&cpu.Td4{}, mem, &clock.Manual{}, nil)
}

func labelTexts(scene *Scene) (texts []string) {
	for _, label := range scene.Labels {
		texts = append(texts, label.Text)
	}
	return
}

// litMarkers returns the read-only lamps that are lit.
func litMarkers(scene *Scene) (cells []Cell) {
	for _, cell := range scene.Cells {
		if cell.Control == nil && cell.Shape.On {
			cells = append(cells, cell)
		}
	}
	return
}

func TestCompose(t *testing.T) {
	assert := assert.New(t)

	ind := indicator.Default()
	scene := Compose(newTestController().Snapshot(), ind, ind)

	controls := 0
	for _, cell := range scene.Cells {
		if cell.Control != nil {
			controls++
		}
	}
	assert.Equal(bitedit.NIBBLE_BITS+cpu.MEMORY_SIZE*bitedit.BYTE_BITS, controls)
	assert.Equal(3*4+1+4+4+cpu.MEMORY_SIZE*9, len(scene.Cells))

	texts := labelTexts(scene)
	assert.Contains(texts, "PC")
	assert.Contains(texts, "0x0")
	assert.Contains(texts, "false")
	assert.Contains(texts, "ADD A,0")
	assert.Contains(texts, "OUT 5")
	assert.Contains(texts, "15")
	assert.Contains(texts, "Idle 300 ms [100..1000] ticks 0")

	// Only the marker of address 0 is lit.
	lit := litMarkers(scene)
	if assert.Len(lit, 1) {
		assert.Equal(indicator.RED, lit[0].Shape.Color)
	}

	assert.Greater(scene.Width, 0)
	assert.Greater(float32(scene.Height), scene.StatusY+scene.StatusHeight)

	for _, cell := range scene.Cells {
		assert.LessOrEqual(cell.X+cell.Shape.Size, float32(scene.Width))
		assert.LessOrEqual(cell.Y+cell.Shape.Size, float32(scene.Height))
	}
}

func TestCompose_Marker(t *testing.T) {
	assert := assert.New(t)

	ind := indicator.Default()
	ctl := newTestController()

	before := litMarkers(Compose(ctl.Snapshot(), ind, ind))
	ctl.Step()
	ctl.Step()
	after := litMarkers(Compose(ctl.Snapshot(), ind, ind))

	// PC 0b0010, OUT 0b0101 and the marker of address 2.
	assert.Len(before, 1)
	if assert.Len(after, 4) {
		marker := after[len(after)-1]
		assert.Equal(before[0].X, marker.X)
		assert.Greater(marker.Y, before[0].Y)
	}
}

func TestScene_Hit(t *testing.T) {
	assert := assert.New(t)

	ind := indicator.Default()
	ctl := newTestController()
	scene := Compose(ctl.Snapshot(), ind, ind)

	var first *Cell
	for n, cell := range scene.Cells {
		if cell.Control != nil {
			first = &scene.Cells[n]
			break
		}
	}
	if !assert.NotNil(first) {
		return
	}

	cx, cy := first.Shape.Center(first.X, first.Y)
	ct, ok := scene.Hit(cx, cy)
	assert.True(ok)
	assert.Equal(bitedit.TARGET_INPUT, ct.Target)
	assert.Equal(uint(3), ct.Bit)

	ctl.Apply(ct.Activate())
	assert.Equal(uint8(0b1000), ctl.In())

	scene = Compose(ctl.Snapshot(), ind, ind)
	assert.Contains(labelTexts(scene), "0x8")

	_, ok = scene.Hit(0, 0)
	assert.False(ok)

	_, ok = scene.Hit(float32(scene.Width+10), 0)
	assert.False(ok)
}

func TestOptions_Defaults(t *testing.T) {
	assert := assert.New(t)

	opts := Options{}.withDefaults()
	assert.Equal("TD4", opts.Title)
	assert.Equal(2, opts.Scale)
	assert.Equal(indicator.Default(), opts.Indicator)
	assert.Equal(opts.Indicator, opts.Marker)
}
