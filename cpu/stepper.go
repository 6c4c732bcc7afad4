package cpu

// Stepper performs one fetch/decode/execute cycle. Register, flag and port
// side effects are applied to st directly; the next program counter is
// returned and must not be written into st by the stepper.
type Stepper interface {
	Step(st *State, mem Memory) (pc uint8)
}

// StepperFunc adapts an ordinary function to the Stepper interface.
type StepperFunc func(st *State, mem Memory) (pc uint8)

// Step calls fn(st, mem).
func (fn StepperFunc) Step(st *State, mem Memory) uint8 {
	return fn(st, mem)
}
