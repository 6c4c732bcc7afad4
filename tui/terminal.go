// Package tui is the terminal front-end. It draws the same rows as the
// windowed front-end with text lamps, and accepts the same keys and
// mouse clicks on bit cells.
package tui

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/ezrec/td4/bitedit"
	"github.com/ezrec/td4/emulator"
	"github.com/ezrec/td4/indicator"
)

const (
	LAMP_ON  = '●'
	LAMP_OFF = '○'

	CELL_COLUMN = 5 // First lamp column.
	CELL_PITCH  = 2 // Columns per lamp.
	STATUS_ROW  = 6 // Run state line.
	MEMORY_ROW  = 8 // Row of address 0.
	MARKER_GAP  = 1 // Extra columns before the program counter marker.
)

// Options configures the front-end.
type Options struct {
	Verbose   bool
	Indicator indicator.Indicator
	Marker    indicator.Indicator
}

type hotspot struct {
	x, y    int
	control bitedit.Control
}

// Terminal draws loop snapshots on a tcell screen and posts operator
// intents back to the loop.
type Terminal struct {
	Options

	screen   tcell.Screen
	loop     *emulator.Loop
	hotspots []hotspot
	pressed  bool
}

// New creates a front-end on an initialized screen.
func New(screen tcell.Screen, loop *emulator.Loop, opts Options) (term *Terminal) {
	if opts.Indicator.Radius <= 0 {
		opts.Indicator = indicator.Default()
	}
	if opts.Marker.Radius <= 0 {
		opts.Marker = opts.Indicator
	}

	term = &Terminal{
		Options: opts,
		screen:  screen,
		loop:    loop,
	}

	return
}

// Run opens the terminal and blocks until the operator quits or ctx ends.
func Run(ctx context.Context, loop *emulator.Loop, opts Options) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return
	}
	err = screen.Init()
	if err != nil {
		return
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.Clear()

	return New(screen, loop, opts).Run(ctx)
}

// Run redraws on every published snapshot and handles events until the
// operator quits, the loop stops, or ctx ends.
func (term *Terminal) Run(ctx context.Context) (err error) {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			select {
			case <-term.loop.Updated():
				_ = term.screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-term.loop.Done():
				_ = term.screen.PostEvent(tcell.NewEventInterrupt(nil))
				return
			case <-watchCtx.Done():
				_ = term.screen.PostEvent(tcell.NewEventInterrupt(nil))
				return
			}
		}
	}()

	for {
		term.Draw(term.loop.Snapshot())

		ev := term.screen.PollEvent()
		if ev == nil {
			return
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		select {
		case <-term.loop.Done():
			return emulator.ErrLoopClosed
		default:
		}

		if term.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent reacts to one screen event, and reports whether the
// operator asked to quit.
func (term *Terminal) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		term.screen.Sync()
	case *tcell.EventKey:
		return term.handleKey(ev)
	case *tcell.EventMouse:
		term.handleMouse(ev)
	}
	return
}

func (term *Terminal) handleKey(ev *tcell.EventKey) (quit bool) {
	act := emulator.ACTION_NONE

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		act = emulator.ACTION_QUIT
	case tcell.KeyUp:
		act = emulator.ACTION_PERIOD_UP
	case tcell.KeyDown:
		act = emulator.ACTION_PERIOD_DOWN
	case tcell.KeyRune:
		act = emulator.ActionForKey(ev.Rune())
	}

	switch act {
	case emulator.ACTION_NONE:
	case emulator.ACTION_QUIT:
		quit = true
	default:
		term.loop.Post(act.Apply)
	}

	return
}

// handleMouse activates the cell under a button press. Holding the
// button does not repeat.
func (term *Terminal) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	press := down && !term.pressed
	term.pressed = down

	if !press {
		return
	}

	x, y := ev.Position()
	ct, ok := term.Hit(x, y)
	if !ok {
		return
	}

	in := ct.Activate()
	if term.Verbose {
		log.Printf("tui: %v", in)
	}
	term.loop.Post(func(ctl *emulator.Controller) { ctl.Apply(in) })
}

// Hit returns the control drawn at column x of row y.
func (term *Terminal) Hit(x, y int) (ct bitedit.Control, ok bool) {
	for _, spot := range term.hotspots {
		if spot.y == y && x >= spot.x && x < spot.x+CELL_PITCH {
			return spot.control, true
		}
	}
	return
}

// Draw renders snap and shows the screen.
func (term *Terminal) Draw(snap *emulator.Snapshot) {
	term.screen.Clear()
	term.hotspots = term.hotspots[:0]

	st := snap.State
	term.lampRow(0, "A", st.A)
	term.lampRow(1, "B", st.B)
	term.lampRow(2, "PC", st.PC)

	term.text(0, 3, "C", tcell.StyleDefault)
	term.lamp(CELL_COLUMN, 3, term.Indicator.Shape(st.Carry))
	term.text(CELL_COLUMN+CELL_PITCH+1, 3, fmt.Sprintf("%v", st.Carry), tcell.StyleDefault)

	term.text(0, 4, "IN", tcell.StyleDefault)
	term.controlRow(4, snap.Input.Controls())
	term.text(term.readout(bitedit.NIBBLE_BITS), 4, fmt.Sprintf("0x%1X", snap.Input.Value()), tcell.StyleDefault)

	term.lampRow(5, "OUT", st.Out)

	status := fmt.Sprintf("%v %d ms [%d..%d] ticks %d",
		snap.RunState, snap.Period, snap.MinPeriod, snap.MaxPeriod, snap.Ticks)
	term.text(0, STATUS_ROW, status, tcell.StyleDefault.Reverse(true))

	for ed := range snap.Table.Editors() {
		addr := ed.Address()
		y := MEMORY_ROW + addr
		term.text(0, y, fmt.Sprintf("%2d", addr), tcell.StyleDefault)
		term.controlRow(y, ed.Controls())

		x := term.readout(bitedit.BYTE_BITS) + MARKER_GAP
		term.lamp(x, y, term.Marker.Shape(snap.AtPc(addr)))
		term.text(x+CELL_PITCH+1, y, snap.Disassembly(addr), tcell.StyleDefault)
	}

	term.screen.Show()
}

// readout is the column after n lamps.
func (term *Terminal) readout(n int) int {
	return CELL_COLUMN + n*CELL_PITCH + 1
}

func (term *Terminal) lampRow(y int, name string, value uint8) {
	term.text(0, y, name, tcell.StyleDefault)
	for n, shape := range term.Indicator.Lamps(value, bitedit.NIBBLE_BITS) {
		term.lamp(CELL_COLUMN+n*CELL_PITCH, y, shape)
	}
	term.text(term.readout(bitedit.NIBBLE_BITS), y, fmt.Sprintf("0x%1X", value), tcell.StyleDefault)
}

func (term *Terminal) controlRow(y int, controls []bitedit.Control) {
	for n, ct := range controls {
		x := CELL_COLUMN + n*CELL_PITCH
		term.lamp(x, y, ct.Face(term.Indicator))
		term.hotspots = append(term.hotspots, hotspot{x: x, y: y, control: ct})
	}
}

// lamp draws a shape as a filled or hollow circle. Dark lamps use the
// terminal foreground.
func (term *Terminal) lamp(x, y int, shape indicator.Shape) {
	if shape.On {
		style := tcell.StyleDefault.Foreground(tcell.FromImageColor(shape.Color))
		term.screen.SetContent(x, y, LAMP_ON, nil, style)
		return
	}
	term.screen.SetContent(x, y, LAMP_OFF, nil, tcell.StyleDefault)
}

func (term *Terminal) text(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		term.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
