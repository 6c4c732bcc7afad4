// Package gui is the windowed front-end: lamp rows for the registers and
// ports, clickable cells for the input port and program memory, and the
// keyboard shortcuts of emulator.ActionForKey.
package gui

import (
	"fmt"

	"github.com/ezrec/td4/bitedit"
	"github.com/ezrec/td4/emulator"
	"github.com/ezrec/td4/indicator"
)

const (
	PADDING      = 4  // Pixels between cells and around the scene.
	GLYPH_WIDTH  = 7  // basicfont.Face7x13
	GLYPH_HEIGHT = 13 // basicfont.Face7x13
	LABEL_GLYPHS = 4  // Width of the row label column.
	TEXT_GLYPHS  = 12 // Width of the read-out column.
)

// Cell is one lamp placed on the scene. Control is nil for read-only
// lamps.
type Cell struct {
	X, Y    float32
	Shape   indicator.Shape
	Control *bitedit.Control
}

// Label is a line of text. Y is the baseline.
type Label struct {
	X, Y int
	Text string
}

// Scene is the placement of everything drawn for one snapshot.
type Scene struct {
	Width, Height int
	Cells         []Cell
	Labels        []Label

	StatusY, StatusHeight float32 // Band of the run state line.
}

type composer struct {
	scene  *Scene
	ind    indicator.Indicator
	y      float32
	rowH   float32
	pitch  float32
	cellX0 float32
}

// Compose lays out snap. ind draws bit cells and read-outs; marker draws
// the program counter marker of each memory row.
func Compose(snap *emulator.Snapshot, ind, marker indicator.Indicator) (scene *Scene) {
	scene = &Scene{}

	size := max(ind.Size(), marker.Size())
	cm := &composer{
		scene:  scene,
		ind:    ind,
		y:      PADDING,
		rowH:   max(size, GLYPH_HEIGHT) + PADDING,
		pitch:  size + PADDING,
		cellX0: PADDING + LABEL_GLYPHS*GLYPH_WIDTH,
	}

	st := snap.State

	cm.lamps("A", st.A)
	cm.lamps("B", st.B)
	cm.lamps("PC", st.PC)

	cm.label("C")
	cm.cell(0, ind.Shape(st.Carry), nil)
	cm.text(1, fmt.Sprintf("%v", st.Carry))
	cm.next()

	cm.label("IN")
	for n, ct := range snap.Input.Controls() {
		cm.cell(n, ct.Face(ind), &ct)
	}
	cm.text(bitedit.NIBBLE_BITS, fmt.Sprintf("0x%1X", snap.Input.Value()))
	cm.next()

	cm.lamps("OUT", st.Out)

	scene.StatusY, scene.StatusHeight = cm.y, cm.rowH
	cm.label(fmt.Sprintf("%v %d ms [%d..%d] ticks %d",
		snap.RunState, snap.Period, snap.MinPeriod, snap.MaxPeriod, snap.Ticks))
	cm.next()

	for ed := range snap.Table.Editors() {
		addr := ed.Address()
		cm.label(fmt.Sprintf("%2d", addr))
		for n, ct := range ed.Controls() {
			cm.cell(n, ct.Face(ind), &ct)
		}
		cm.cell(bitedit.BYTE_BITS, marker.Shape(snap.AtPc(addr)), nil)
		cm.text(bitedit.BYTE_BITS+1, snap.Disassembly(addr))
		cm.next()
	}

	scene.Width = int(cm.cellX0 + (bitedit.BYTE_BITS+1)*cm.pitch + TEXT_GLYPHS*GLYPH_WIDTH + PADDING)
	scene.Height = int(cm.y + PADDING)

	return
}

func (cm *composer) baseline() int {
	return int(cm.y + (cm.rowH+GLYPH_HEIGHT)/2 - 3)
}

func (cm *composer) label(text string) {
	cm.scene.Labels = append(cm.scene.Labels, Label{X: PADDING, Y: cm.baseline(), Text: text})
}

// text places a read-out after column n.
func (cm *composer) text(n int, text string) {
	x := cm.cellX0 + float32(n)*cm.pitch + PADDING
	cm.scene.Labels = append(cm.scene.Labels, Label{X: int(x), Y: cm.baseline(), Text: text})
}

func (cm *composer) cell(n int, shape indicator.Shape, ct *bitedit.Control) {
	cm.scene.Cells = append(cm.scene.Cells, Cell{
		X:       cm.cellX0 + float32(n)*cm.pitch,
		Y:       cm.y + (cm.rowH-shape.Size)/2,
		Shape:   shape,
		Control: ct,
	})
}

// lamps places a read-only half byte with its hex value.
func (cm *composer) lamps(name string, value uint8) {
	cm.label(name)
	for n, shape := range cm.ind.Lamps(value, bitedit.NIBBLE_BITS) {
		cm.cell(n, shape, nil)
	}
	cm.text(bitedit.NIBBLE_BITS, fmt.Sprintf("0x%1X", value))
	cm.next()
}

func (cm *composer) next() {
	cm.y += cm.rowH
}

// Hit returns the control under (px, py).
func (scene *Scene) Hit(px, py float32) (ct bitedit.Control, ok bool) {
	for _, cell := range scene.Cells {
		if cell.Control != nil && cell.Shape.Contains(cell.X, cell.Y, px, py) {
			return *cell.Control, true
		}
	}
	return
}
