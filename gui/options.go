package gui

import (
	"github.com/ezrec/td4/indicator"
)

// Options configures the front-end.
type Options struct {
	Verbose   bool
	Title     string
	Scale     int // Window pixels per scene pixel.
	Indicator indicator.Indicator
	Marker    indicator.Indicator
}

func (opts Options) withDefaults() Options {
	if opts.Title == "" {
		opts.Title = "TD4"
	}
	if opts.Scale < 1 {
		opts.Scale = 2
	}
	if opts.Indicator.Radius <= 0 {
		opts.Indicator = indicator.Default()
	}
	if opts.Marker.Radius <= 0 {
		opts.Marker = opts.Indicator
	}
	return opts
}
