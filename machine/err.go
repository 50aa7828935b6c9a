package machine

import (
	"errors"

	"github.com/ezrec/tapevm/translate"
)

var f = translate.From

var (
	ErrStepLimit = errors.New(f("step limit exceeded"))
)

// ErrRuntime indicates the step at which evaluation stopped.
type ErrRuntime struct {
	Step int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %d %v", err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
