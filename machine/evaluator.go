// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"log"
)

// Evaluator applies a program to a state one step at a time.
//
// Pending work is kept on an explicit stack rather than the Go call stack,
// so neither long loops nor deeply nested programs grow the call stack.
type Evaluator struct {
	Verbose bool // If set, logs every step.
	Limit   int  // Maximum steps before ErrStepLimit. Zero is unlimited.

	state   State        // Live state.
	pending []*Operation // Operations still to apply, next on top.
	steps   int          // Steps taken since Reset.
}

// NewEvaluator creates an evaluator ready to apply program to state.
func NewEvaluator(program *Operation, state State) (ev *Evaluator) {
	ev = &Evaluator{}
	ev.Reset(program, state)
	return
}

// Reset prepares the evaluator to apply program to state.
func (ev *Evaluator) Reset(program *Operation, state State) {
	ev.state = state
	ev.pending = append(ev.pending[:0], program)
	ev.steps = 0
}

// State returns the live state.
func (ev *Evaluator) State() State {
	return ev.state
}

// Steps returns the number of steps taken since Reset. A step is one
// primitive operation or one loop condition test.
func (ev *Evaluator) Steps() int {
	return ev.steps
}

// Done is true once the whole program has been applied.
func (ev *Evaluator) Done() bool {
	return len(ev.pending) == 0
}

// Tick performs a single step.
func (ev *Evaluator) Tick() (done bool, err error) {
	for len(ev.pending) > 0 {
		op := ev.pending[len(ev.pending)-1]

		if op.isNoop() {
			ev.pending = ev.pending[:len(ev.pending)-1]
			continue
		}

		// Sequences only rearrange the pending work.
		if op.Kind == OP_SEQUENCE {
			ev.pending[len(ev.pending)-1] = op.Second
			ev.pending = append(ev.pending, op.First)
			continue
		}

		if ev.Limit > 0 && ev.steps >= ev.Limit {
			err = &ErrRuntime{Step: ev.steps, Err: ErrStepLimit}
			return
		}

		ev.pending = ev.pending[:len(ev.pending)-1]
		ev.steps++

		if op.Kind == OP_WHILE_NON_ZERO {
			// The condition is tested at the live pointer, which the
			// body may have moved since the previous test.
			cell := ev.state.Cell()
			if ev.Verbose {
				log.Printf("%v: while %v", ev.steps, ev.state)
			}
			if !cell.IsZero() {
				ev.pending = append(ev.pending, op, op.Body)
			}
			return
		}

		ev.state = op.step(ev.state)
		if ev.Verbose {
			log.Printf("%v: %v %v", ev.steps, op.Kind, ev.state)
		}
		return
	}

	done = true
	return
}

// Run ticks until the program is done, or an error occurs.
func (ev *Evaluator) Run() (state State, err error) {
	for done := false; !done; {
		done, err = ev.Tick()
		if err != nil {
			break
		}
	}

	state = ev.state

	return
}

// Evaluate applies a program to a state, and returns the resulting state.
// It does not return if the program does not terminate.
func Evaluate(program *Operation, state State) State {
	ev := NewEvaluator(program, state)
	state, _ = ev.Run()
	return state
}

// Run applies program to the initial state for a tape of width bits, and
// returns the output.
func Run(program *Operation, width uint) (out Output, err error) {
	state, err := NewState(width)
	if err != nil {
		return
	}

	out = Evaluate(program, state).Output

	return
}
