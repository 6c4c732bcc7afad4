// Package script drives the emulator from Starlark operator scripts.
//
// A script sees the operator's controls as builtins:
//
//	run()                    start free-running execution
//	stop()                   stop free-running execution
//	step(n=1)                advance n cycles while idle
//	reset()                  clear registers and ports
//	set_period(ms)           change the tick period, returns the clamped value
//	period()                 the tick period in milliseconds
//	toggle_input(bit)        activate an input port cell
//	toggle_memory(addr, bit) activate a program memory cell
//	sleep(ms)                wait
//	state()                  dict of a, b, pc, carry, out, in, running, period, ticks
//	memory()                 list of program memory words
//	disassemble(word)        mnemonic of an instruction word
package script

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/td4/cpu"
	"github.com/ezrec/td4/emulator"
)

// Runner runs fn against the controller and waits for it. emulator.Loop
// is a Runner.
type Runner interface {
	Do(ctx context.Context, fn func(ctl *emulator.Controller)) error
}

// Script executes Starlark sources against a Runner.
type Script struct {
	Verbose bool
	Output  io.Writer                                        // print() destination.
	Sleep   func(ctx context.Context, d time.Duration) error // sleep() implementation.

	runner Runner
}

// New creates a script host for runner, printing to os.Stdout.
func New(runner Runner) (sc *Script) {
	sc = &Script{
		Output: os.Stdout,
		Sleep:  sleep,
		runner: runner,
	}
	return
}

func sleep(ctx context.Context, d time.Duration) (err error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		err = ctx.Err()
	}

	return
}

// Exec runs a script. If src is nil, the script is read from the file
// name; otherwise src is the text of the script. Execution is abandoned
// when ctx ends.
func (sc *Script) Exec(ctx context.Context, name string, src any) (err error) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(sc.Output, msg)
		},
	}

	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(ctx.Err().Error())
	})
	defer stop()

	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, name, src, sc.builtins(ctx))

	if err != nil && sc.Verbose {
		if eval, ok := err.(*starlark.EvalError); ok {
			log.Printf("%v", eval.Backtrace())
		}
	}

	return
}

type builtinFunc func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func (sc *Script) builtins(ctx context.Context) (dict starlark.StringDict) {
	funcs := map[string]builtinFunc{
		"run":           sc.control(ctx, (*emulator.Controller).Run),
		"stop":          sc.control(ctx, (*emulator.Controller).Stop),
		"reset":         sc.control(ctx, (*emulator.Controller).Reset),
		"step":          sc.step(ctx),
		"set_period":    sc.setPeriod(ctx),
		"period":        sc.period(ctx),
		"toggle_input":  sc.toggleInput(ctx),
		"toggle_memory": sc.toggleMemory(ctx),
		"sleep":         sc.sleep(ctx),
		"state":         sc.state(ctx),
		"memory":        sc.memory(ctx),
		"disassemble":   disassemble,
	}

	dict = starlark.StringDict{}
	for name, fn := range funcs {
		dict[name] = starlark.NewBuiltin(name, fn)
	}

	return
}

// control wraps a controller method without arguments.
func (sc *Script) control(ctx context.Context, method func(ctl *emulator.Controller)) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
			return nil, err
		}
		if err := sc.runner.Do(ctx, method); err != nil {
			return nil, err
		}
		return starlark.None, nil
	}
}

func (sc *Script) step(ctx context.Context) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		n := 1
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "n?", &n); err != nil {
			return nil, err
		}
		for range n {
			if err := sc.runner.Do(ctx, (*emulator.Controller).Step); err != nil {
				return nil, err
			}
		}
		return starlark.None, nil
	}
}

func (sc *Script) setPeriod(ctx context.Context) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var ms int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "ms", &ms); err != nil {
			return nil, err
		}
		err := sc.runner.Do(ctx, func(ctl *emulator.Controller) {
			ms = ctl.SetPeriod(ms)
		})
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt(ms), nil
	}
}

func (sc *Script) period(ctx context.Context) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
			return nil, err
		}
		var ms int
		err := sc.runner.Do(ctx, func(ctl *emulator.Controller) {
			ms = ctl.Period()
		})
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt(ms), nil
	}
}

// toggleInput activates the displayed input cell, so a script toggles
// exactly as a click on that cell would.
func (sc *Script) toggleInput(ctx context.Context) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var bit int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "bit", &bit); err != nil {
			return nil, err
		}
		if bit < 0 {
			return nil, ErrArgument{Name: "bit", Value: bit}
		}

		var err error
		doErr := sc.runner.Do(ctx, func(ctl *emulator.Controller) {
			in, activateErr := ctl.Input().Activate(uint(bit))
			if activateErr != nil {
				err = activateErr
				return
			}
			ctl.Apply(in)
		})
		if doErr != nil {
			return nil, doErr
		}
		if err != nil {
			return nil, err
		}
		return starlark.None, nil
	}
}

func (sc *Script) toggleMemory(ctx context.Context) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr, bit int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "bit", &bit); err != nil {
			return nil, err
		}
		if bit < 0 {
			return nil, ErrArgument{Name: "bit", Value: bit}
		}

		var err error
		doErr := sc.runner.Do(ctx, func(ctl *emulator.Controller) {
			in, activateErr := ctl.Table().Activate(addr, uint(bit))
			if activateErr != nil {
				err = activateErr
				return
			}
			ctl.Apply(in)
		})
		if doErr != nil {
			return nil, doErr
		}
		if err != nil {
			return nil, err
		}
		return starlark.None, nil
	}
}

func (sc *Script) sleep(ctx context.Context) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var ms int
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "ms", &ms); err != nil {
			return nil, err
		}
		if ms < 0 {
			return nil, ErrArgument{Name: "ms", Value: ms}
		}
		if err := sc.Sleep(ctx, time.Duration(ms)*time.Millisecond); err != nil {
			return nil, err
		}
		return starlark.None, nil
	}
}

func (sc *Script) state(ctx context.Context) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
			return nil, err
		}

		var snap *emulator.Snapshot
		err := sc.runner.Do(ctx, func(ctl *emulator.Controller) {
			snap = ctl.Snapshot()
		})
		if err != nil {
			return nil, err
		}

		st := snap.State
		dict := starlark.NewDict(9)
		for _, item := range []struct {
			key   string
			value starlark.Value
		}{
			{"a", starlark.MakeInt(int(st.A))},
			{"b", starlark.MakeInt(int(st.B))},
			{"pc", starlark.MakeInt(int(st.PC))},
			{"carry", starlark.Bool(st.Carry)},
			{"out", starlark.MakeInt(int(st.Out))},
			{"in", starlark.MakeInt(int(st.In))},
			{"running", starlark.Bool(snap.Running())},
			{"period", starlark.MakeInt(snap.Period)},
			{"ticks", starlark.MakeInt(snap.Ticks)},
		} {
			_ = dict.SetKey(starlark.String(item.key), item.value)
		}

		return dict, nil
	}
}

func (sc *Script) memory(ctx context.Context) builtinFunc {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
			return nil, err
		}

		var mem cpu.Memory
		err := sc.runner.Do(ctx, func(ctl *emulator.Controller) {
			mem = ctl.Memory()
		})
		if err != nil {
			return nil, err
		}

		words := make([]starlark.Value, len(mem))
		for addr, word := range mem {
			words[addr] = starlark.MakeInt(int(word))
		}

		return starlark.NewList(words), nil
	}
}

func disassemble(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var word int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "word", &word); err != nil {
		return nil, err
	}
	if word < 0 || word > 0xff {
		return nil, ErrArgument{Name: "word", Value: word}
	}
	return starlark.String(cpu.Disassemble(uint8(word))), nil
}
