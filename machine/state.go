package machine

import (
	"fmt"

	"github.com/ezrec/tapevm/counter"
	"github.com/ezrec/tapevm/tape"
)

// State is the complete machine state. It is a value: operations return a
// new State and never modify the one they were given.
//
// A State must come from NewState, or from applying operations to one.
// The zero State has no tape; only Cell, String, and Equal accept it.
type State struct {
	Tape    *tape.Tape      // Memory tape.
	Pointer counter.Counter // Address of the current cell.
	Output  Output          // Bytes written so far.
}

// NewState returns the initial state for a tape of the given width: every
// cell zero, the pointer at cell zero, and no output.
func NewState(width uint) (s State, err error) {
	tp, err := tape.New(width)
	if err != nil {
		return
	}

	s = State{
		Tape:    tp,
		Pointer: counter.New(width),
	}

	return
}

// Cell returns the cell under the pointer. Without a tape, the cell is the
// zero Counter.
func (s State) Cell() counter.Counter {
	if s.Tape == nil {
		return counter.Counter{}
	}
	return s.Tape.Read(s.Pointer)
}

// Equal compares tape cells, pointer, and output.
func (s State) Equal(other State) bool {
	return s.Pointer == other.Pointer &&
		s.Tape.Equal(other.Tape) &&
		s.Output.Equal(other.Output)
}

// String returns a short summary of the state.
func (s State) String() string {
	return fmt.Sprintf("ptr=0x%02x cell=0x%02x out=%d", s.Pointer.Value(), s.Cell().Value(), s.Output.Len())
}
