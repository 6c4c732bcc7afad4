package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/ezrec/td4/clock"
	"github.com/ezrec/td4/config"
	"github.com/ezrec/td4/cpu"
	"github.com/ezrec/td4/emulator"
	"github.com/ezrec/td4/gui"
	"github.com/ezrec/td4/rom"
	"github.com/ezrec/td4/script"
	"github.com/ezrec/td4/tape"
	"github.com/ezrec/td4/tui"
)

func main() {
	var settings string
	var image string
	var format string
	var period int
	var useTui bool
	var useGui bool
	var scriptFile string
	var output string
	var binaryTape bool
	var verbose bool

	flag.StringVar(&settings, "c", "", "TOML settings file")
	flag.StringVar(&image, "i", "", "Program image (default from settings, or prg.bin)")
	flag.StringVar(&format, "f", "", "Program image format: auto, bin or hex")
	flag.IntVar(&period, "period", 0, "Tick period in milliseconds, clamped to the configured range")
	flag.BoolVar(&useTui, "tui", false, "Terminal front-end")
	flag.BoolVar(&useGui, "gui", false, "Window front-end (default without -script)")
	flag.StringVar(&scriptFile, "script", "", ".star operator script to run")
	flag.StringVar(&output, "o", "", "Output port tape (- for stdout)")
	flag.BoolVar(&binaryTape, "b", false, "Write the output port tape as raw bytes")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := config.Default()
	if len(settings) != 0 {
		var err error
		cfg, err = config.Load(settings)
		if err != nil {
			log.Fatalf("%v: %v", settings, err)
		}
	}

	if len(image) != 0 {
		cfg.Program.Image = image
	}
	if len(format) != 0 {
		cfg.Program.Format = format
	}
	if period != 0 {
		cfg.Clock.Period = period
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	mem, err := rom.Load(cfg.Program.Image, cfg.Program.ImageFormat())
	if err != nil {
		// A missing default image starts with empty memory.
		if len(image) != 0 || !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("%v", err)
		}
		if verbose {
			log.Printf("%v: %v", cfg.Program.Image, err)
		}
		mem = cpu.NewMemory()
	}

	var stepper cpu.Stepper = &cpu.Td4{Verbose: verbose}

	var recorder *tape.Recorder
	if len(output) != 0 {
		recorder = &tape.Recorder{Stepper: stepper, Binary: binaryTape}
		if output == "-" {
			recorder.Output = os.Stdout
		} else {
			ouf, err := os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
			recorder.Output = ouf
		}
		stepper = recorder
	}

	loop := emulator.NewLoop(stepper, mem, clock.System{})
	loop.Post(func(ctl *emulator.Controller) {
		ctl.Verbose = verbose
		ctl.SetPeriodRange(cfg.Clock.MinPeriod, cfg.Clock.MaxPeriod)
		ctl.SetPeriod(cfg.Clock.ClampedPeriod())
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	loopDone := make(chan error, 1)
	go func() {
		loopDone <- loop.Run(ctx)
	}()

	headless := len(scriptFile) != 0 && !useTui && !useGui

	if len(scriptFile) != 0 {
		sc := script.New(loop)
		sc.Verbose = verbose

		if headless {
			err = sc.Exec(ctx, scriptFile, nil)
		} else {
			go func() {
				err := sc.Exec(ctx, scriptFile, nil)
				if err != nil {
					log.Printf("%v: %v", scriptFile, err)
				}
			}()
		}
	}

	switch {
	case headless:
	case useTui:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			log.Fatalf("%v: -tui needs a terminal", os.Args[0])
		}
		err = tui.Run(ctx, loop, tui.Options{
			Verbose:   verbose,
			Indicator: cfg.Display.Indicator(),
			Marker:    cfg.Display.MarkerIndicator(),
		})
	default:
		err = gui.Run(ctx, loop, gui.Options{
			Verbose:   verbose,
			Title:     "TD4 " + cfg.Program.Image,
			Indicator: cfg.Display.Indicator(),
			Marker:    cfg.Display.MarkerIndicator(),
		})
	}

	cancel()
	<-loopDone

	if recorder != nil && recorder.Err() != nil {
		log.Printf("%v: %v", output, recorder.Err())
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
