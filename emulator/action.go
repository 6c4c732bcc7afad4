package emulator

// Action is a front-end command that is not a bit edit.
type Action int

//go:generate go tool stringer -linecomment -type=Action
const (
	ACTION_NONE        = Action(0) // none
	ACTION_RUN         = Action(1) // run
	ACTION_STOP        = Action(2) // stop
	ACTION_STEP        = Action(3) // step
	ACTION_RESET       = Action(4) // reset
	ACTION_PERIOD_UP   = Action(5) // period+
	ACTION_PERIOD_DOWN = Action(6) // period-
	ACTION_QUIT        = Action(7) // quit
)

const (
	PERIOD_STEP = 50 // Period change of ACTION_PERIOD_UP and ACTION_PERIOD_DOWN, in milliseconds.
)

// ActionForKey maps the front-end keyboard shortcuts, shared by every
// front-end, to actions.
func ActionForKey(key rune) Action {
	switch key {
	case 'r', 'R':
		return ACTION_RUN
	case 's', 'S':
		return ACTION_STOP
	case ' ', 'n', 'N':
		return ACTION_STEP
	case 'x', 'X':
		return ACTION_RESET
	case '+', '=':
		return ACTION_PERIOD_UP
	case '-', '_':
		return ACTION_PERIOD_DOWN
	case 'q', 'Q':
		return ACTION_QUIT
	}
	return ACTION_NONE
}

// Apply performs the action. ACTION_NONE and ACTION_QUIT do nothing here;
// quitting belongs to the front-end.
func (act Action) Apply(ctl *Controller) {
	switch act {
	case ACTION_RUN:
		ctl.Run()
	case ACTION_STOP:
		ctl.Stop()
	case ACTION_STEP:
		ctl.Step()
	case ACTION_RESET:
		ctl.Reset()
	case ACTION_PERIOD_UP:
		ctl.SetPeriod(ctl.Period() + PERIOD_STEP)
	case ACTION_PERIOD_DOWN:
		ctl.SetPeriod(ctl.Period() - PERIOD_STEP)
	}
}
