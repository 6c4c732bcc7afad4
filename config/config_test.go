package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/td4/indicator"
	"github.com/ezrec/td4/rom"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.NoError(cfg.Validate())
	assert.Equal(300, cfg.Clock.Period)
	assert.Equal(100, cfg.Clock.MinPeriod)
	assert.Equal(1000, cfg.Clock.MaxPeriod)
	assert.Equal("prg.bin", cfg.Program.Image)
	assert.Equal(rom.FORMAT_AUTO, cfg.Program.ImageFormat())

	ind := cfg.Display.Indicator()
	assert.Equal(indicator.DEFAULT_RADIUS, ind.Radius)
	assert.Equal(color.RGBA{R: 0xff, A: 0xff}, ind.On)
	assert.Equal(color.RGBA{A: 0xff}, ind.Off)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse(`
[clock]
period = 500

[display]
radius = 6.5
marker = "#00ff80"

[program]
image = "count.td4"
format = "hex"
`)
	assert.NoError(err)
	if !assert.NotNil(cfg) {
		return
	}

	assert.Equal(500, cfg.Clock.Period)
	assert.Equal(100, cfg.Clock.MinPeriod)
	assert.Equal(float32(6.5), cfg.Display.Radius)
	assert.Equal("#ff0000", cfg.Display.On)
	assert.Equal("count.td4", cfg.Program.Image)
	assert.Equal(rom.FORMAT_HEX, cfg.Program.ImageFormat())

	marker := cfg.Display.MarkerIndicator()
	assert.Equal(color.RGBA{G: 0xff, B: 0x80, A: 0xff}, marker.On)
	assert.Equal(float32(6.5), marker.Radius)
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		key  string
	}){
		{"min_zero", "[clock]\nmin_period = 0", "clock.min_period"},
		{"max_below_min", "[clock]\nmin_period = 400\nmax_period = 200\nperiod = 400", "clock.max_period"},
		{"radius", "[display]\nradius = -1.0", "display.radius"},
		{"colour", "[display]\noff = \"black\"", "display.off"},
		{"format", "[program]\nformat = \"ihex\"", "program.format"},
	}

	for _, entry := range table {
		cfg, err := Parse(entry.text)
		assert.Nil(cfg, entry.name)
		if assert.IsType(ErrValue{}, err, entry.name) {
			assert.Equal(entry.key, err.(ErrValue).Key, entry.name)
		}
	}

	cfg, err := Parse("[clock]\nspeed = 3\n[sound]\non = true")
	assert.Nil(cfg)
	if assert.IsType(ErrUnknownKey{}, err) {
		assert.Contains(err.(ErrUnknownKey), "clock.speed")
		assert.Contains(err.(ErrUnknownKey), "sound.on")
	}

	_, err = Parse("[clock\n")
	assert.Error(err)
}

func TestParse_PeriodClamped(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse("[clock]\nperiod = 50")
	assert.NoError(err)
	assert.Equal(50, cfg.Clock.Period)
	assert.Equal(100, cfg.Clock.ClampedPeriod())

	cfg, err = Parse("[clock]\nperiod = 5000\nmax_period = 2000")
	assert.NoError(err)
	assert.Equal(2000, cfg.Clock.ClampedPeriod())

	cfg = Default()
	cfg.Clock.Period = 50
	assert.NoError(cfg.Validate())
	assert.Equal(300, Default().Clock.ClampedPeriod())
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "td4.toml")
	assert.NoError(os.WriteFile(path, []byte("[clock]\nperiod = 250\n"), 0o644))

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(250, cfg.Clock.Period)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}

func TestParseColor(t *testing.T) {
	assert := assert.New(t)

	col, err := ParseColor("#102030")
	assert.NoError(err)
	assert.Equal(color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, col)

	_, err = ParseColor("red")
	assert.Error(err)
}
