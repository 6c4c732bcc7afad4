//go:build !headless

package gui

import (
	"context"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/ezrec/td4/emulator"
	"github.com/ezrec/td4/rom"
)

var (
	BACKGROUND = color.RGBA{0x30, 0x30, 0x30, 0xff}
	FOREGROUND = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	STATUS_BAR = color.RGBA{0x18, 0x18, 0x18, 0xff}
)

// keyRunes is ordered, so keys pressed in the same frame post their
// actions in a fixed order.
var keyRunes = []struct {
	key ebiten.Key
	r   rune
}{
	{ebiten.KeyR, 'r'},
	{ebiten.KeyS, 's'},
	{ebiten.KeySpace, ' '},
	{ebiten.KeyN, 'n'},
	{ebiten.KeyX, 'x'},
	{ebiten.KeyEqual, '+'},
	{ebiten.KeyNumpadAdd, '+'},
	{ebiten.KeyArrowUp, '+'},
	{ebiten.KeyMinus, '-'},
	{ebiten.KeyNumpadSubtract, '-'},
	{ebiten.KeyArrowDown, '-'},
	{ebiten.KeyQ, 'q'},
	{ebiten.KeyEscape, 'q'},
}

// pressedActions returns the actions of the keys for which pressed is
// true, in keyRunes order.
func pressedActions(pressed func(key ebiten.Key) bool) (acts []emulator.Action) {
	for _, kr := range keyRunes {
		if pressed(kr.key) {
			acts = append(acts, emulator.ActionForKey(kr.r))
		}
	}
	return
}

// Game is the ebiten.Game of the front-end. It reads loop snapshots and
// posts operator intents back to the loop.
type Game struct {
	Options

	ctx   context.Context
	loop  *emulator.Loop
	scene *Scene

	clipboardOnce sync.Once
	clipboardOK   bool
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates the front-end for loop.
func NewGame(ctx context.Context, loop *emulator.Loop, opts Options) (g *Game) {
	g = &Game{
		Options: opts.withDefaults(),
		ctx:     ctx,
		loop:    loop,
	}
	g.compose()
	return
}

// Run opens the window and blocks until it is closed, the operator quits,
// or ctx ends.
func Run(ctx context.Context, loop *emulator.Loop, opts Options) (err error) {
	g := NewGame(ctx, loop, opts)

	ebiten.SetWindowSize(g.scene.Width*g.Scale, g.scene.Height*g.Scale)
	ebiten.SetWindowTitle(g.Title)
	ebiten.SetRunnableOnUnfocused(true)

	return ebiten.RunGame(g)
}

func (g *Game) compose() {
	g.scene = Compose(g.loop.Snapshot(), g.Indicator, g.Marker)
}

// Update handles input and picks up the latest snapshot.
func (g *Game) Update() error {
	if g.ctx.Err() != nil || ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	select {
	case <-g.loop.Done():
		return ebiten.Termination
	default:
	}

	g.compose()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			g.copyImage()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			g.pasteImage()
		}
		return nil
	}

	for _, act := range pressedActions(inpututil.IsKeyJustPressed) {
		if act == emulator.ACTION_QUIT {
			return ebiten.Termination
		}
		g.loop.Post(act.Apply)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if ct, ok := g.scene.Hit(float32(x), float32(y)); ok {
			in := ct.Activate()
			if g.Verbose {
				log.Printf("gui: %v", in)
			}
			g.loop.Post(func(ctl *emulator.Controller) { ctl.Apply(in) })
		}
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(BACKGROUND)

	scene := g.scene
	face := basicfont.Face7x13

	ebitenutil.DrawRect(screen, 0, float64(scene.StatusY), float64(scene.Width), float64(scene.StatusHeight), STATUS_BAR)

	for _, cell := range scene.Cells {
		cx, cy := cell.Shape.Center(cell.X, cell.Y)
		vector.DrawFilledCircle(screen, cx, cy, cell.Shape.Radius, cell.Shape.Color, true)
	}

	for _, label := range scene.Labels {
		text.Draw(screen, label.Text, face, label.X, label.Y, FOREGROUND)
	}
}

// Layout keeps the scene at its natural size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.scene.Width, g.scene.Height
}

func (g *Game) initClipboard() bool {
	g.clipboardOnce.Do(func() {
		err := clipboard.Init()
		if err != nil && g.Verbose {
			log.Printf("gui: clipboard: %v", err)
		}
		g.clipboardOK = err == nil
	})
	return g.clipboardOK
}

// copyImage puts the program memory on the clipboard as a hex image.
func (g *Game) copyImage() {
	if !g.initClipboard() {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(rom.FormatHex(g.loop.Snapshot().Memory)))
}

// pasteImage loads a hex image from the clipboard.
func (g *Game) pasteImage() {
	if !g.initClipboard() {
		return
	}

	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}

	mem, err := rom.Parse(string(data))
	if err != nil {
		log.Printf("gui: paste: %v", err)
		return
	}

	g.loop.Post(func(ctl *emulator.Controller) {
		if err := ctl.Load(mem); err != nil {
			log.Printf("gui: paste: %v", err)
		}
	})
}
