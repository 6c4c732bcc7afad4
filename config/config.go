// Package config reads the TD4 settings file.
//
// The file is TOML:
//
//	[clock]
//	period = 300       # milliseconds
//	min_period = 100
//	max_period = 1000
//
//	[display]
//	radius = 10.0
//	on = "#ff0000"
//	off = "#000000"
//	marker = "#ff0000"
//
//	[program]
//	image = "prg.bin"
//	format = "auto"    # auto, bin or hex
//
// Every key is optional. Keys that are not listed above are an error.
package config

import (
	"image/color"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ezrec/td4/emulator"
	"github.com/ezrec/td4/indicator"
	"github.com/ezrec/td4/rom"
)

const (
	DEFAULT_IMAGE = "prg.bin"
)

// Clock is the [clock] table. Periods are in milliseconds.
type Clock struct {
	Period    int `toml:"period"`
	MinPeriod int `toml:"min_period"`
	MaxPeriod int `toml:"max_period"`
}

// Display is the [display] table.
type Display struct {
	Radius float32 `toml:"radius"`
	On     string  `toml:"on"`
	Off    string  `toml:"off"`
	Marker string  `toml:"marker"` // Lit colour of the program counter marker.
}

// Program is the [program] table.
type Program struct {
	Image  string `toml:"image"`
	Format string `toml:"format"`
}

// Config is the whole settings file.
type Config struct {
	Clock   Clock   `toml:"clock"`
	Display Display `toml:"display"`
	Program Program `toml:"program"`
}

// Default returns the settings used when there is no file.
func Default() (cfg *Config) {
	cfg = &Config{
		Clock: Clock{
			Period:    emulator.DEFAULT_PERIOD,
			MinPeriod: emulator.MIN_PERIOD,
			MaxPeriod: emulator.MAX_PERIOD,
		},
		Display: Display{
			Radius: indicator.DEFAULT_RADIUS,
			On:     "#ff0000",
			Off:    "#000000",
			Marker: "#ff0000",
		},
		Program: Program{
			Image:  DEFAULT_IMAGE,
			Format: rom.FORMAT_AUTO.String(),
		},
	}

	return
}

// Load reads the file at path over the defaults.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.check(md)
	if err != nil {
		cfg = nil
	}

	return
}

// Parse reads settings text over the defaults.
func Parse(text string) (cfg *Config, err error) {
	cfg = Default()

	md, err := toml.Decode(text, cfg)
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.check(md)
	if err != nil {
		cfg = nil
	}

	return
}

func (cfg *Config) check(md toml.MetaData) (err error) {
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		slices.Sort(keys)
		err = ErrUnknownKey(keys)
		return
	}

	return cfg.Validate()
}

// Validate checks that every value is usable. The period itself is not
// checked; ClampedPeriod brings it into range.
func (cfg *Config) Validate() (err error) {
	clk := cfg.Clock
	switch {
	case clk.MinPeriod < 1:
		return ErrValue{Key: "clock.min_period", Value: clk.MinPeriod}
	case clk.MaxPeriod < clk.MinPeriod:
		return ErrValue{Key: "clock.max_period", Value: clk.MaxPeriod}
	}

	if cfg.Display.Radius <= 0 {
		return ErrValue{Key: "display.radius", Value: cfg.Display.Radius}
	}

	for key, text := range map[string]string{
		"display.on":     cfg.Display.On,
		"display.off":    cfg.Display.Off,
		"display.marker": cfg.Display.Marker,
	} {
		_, err = ParseColor(text)
		if err != nil {
			return ErrValue{Key: key, Value: text}
		}
	}

	_, err = rom.ParseFormat(cfg.Program.Format)
	if err != nil {
		return ErrValue{Key: "program.format", Value: cfg.Program.Format}
	}

	return
}

// ClampedPeriod is the period limited to [MinPeriod, MaxPeriod].
func (clk Clock) ClampedPeriod() int {
	return max(clk.MinPeriod, min(clk.Period, clk.MaxPeriod))
}

// ParseColor parses a "#rrggbb" colour.
func ParseColor(text string) (col color.RGBA, err error) {
	cf, err := colorful.Hex(text)
	if err != nil {
		return
	}

	r, g, b := cf.RGB255()
	col = color.RGBA{R: r, G: g, B: b, A: 0xff}
	return
}

// Indicator is the lamp used for bit cells and read-outs.
func (disp Display) Indicator() indicator.Indicator {
	return disp.lamp(disp.On)
}

// MarkerIndicator is the lamp used for the program counter marker.
func (disp Display) MarkerIndicator() indicator.Indicator {
	return disp.lamp(disp.Marker)
}

// lamp builds an indicator; unparseable colours fall back to the defaults.
func (disp Display) lamp(on string) indicator.Indicator {
	var onColor, offColor color.Color
	if col, err := ParseColor(on); err == nil {
		onColor = col
	}
	if col, err := ParseColor(disp.Off); err == nil {
		offColor = col
	}

	return indicator.New(disp.Radius, onColor, offColor)
}

// ImageFormat is the parsed program image format, FORMAT_AUTO if unknown.
func (prog Program) ImageFormat() rom.Format {
	format, _ := rom.ParseFormat(prog.Format)
	return format
}
