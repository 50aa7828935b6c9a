package machine

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tapevm/counter"
)

// load builds a state with the given cells, starting at cell 0.
func load(t *testing.T, cells ...uint64) (s State) {
	s, err := NewState(8)
	if err != nil {
		t.Fatal(err)
	}

	for n, value := range cells {
		p := counter.FromValue(8, uint64(n))
		for range value {
			s.Tape = s.Tape.IncAt(p)
		}
	}

	return
}

func TestEvaluator(t *testing.T) {
	assert := assert.New(t)

	s := load(t)
	ev := NewEvaluator(SequenceOf(IncCell, IncCell, WriteOutput), s)
	assert.False(ev.Done())
	assert.Equal(0, ev.Steps())

	for n := range 3 {
		done, err := ev.Tick()
		assert.NoError(err)
		assert.False(done)
		assert.Equal(n+1, ev.Steps())
	}
	assert.True(ev.Done())

	done, err := ev.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(3, ev.Steps())

	assert.Equal([]byte{2}, ev.State().Output.Bytes())

	// Reset reuses the evaluator.
	ev.Reset(DecCell, s)
	state, err := ev.Run()
	assert.NoError(err)
	assert.Equal(uint64(255), state.Cell().Value())
	assert.Equal(1, ev.Steps())
}

func TestEvaluator_LoopEntrySkip(t *testing.T) {
	assert := assert.New(t)

	s := load(t, 0, 7)
	body := SequenceOf(IncCell, IncPointer, WriteOutput)

	ev := NewEvaluator(WhileNonZero(body), s)
	state, err := ev.Run()
	assert.NoError(err)
	assert.True(state.Equal(s))
	assert.Equal(1, ev.Steps())
}

func TestEvaluator_LoopRetest(t *testing.T) {
	assert := assert.New(t)

	// Cell 0 is cleared by the body before the pointer moves to cell 1,
	// which is not zero, so the loop must run again.
	s := load(t, 1, 1, 0)
	ev := NewEvaluator(WhileNonZero(SequenceOf(DecCell, IncPointer)), s)

	state, err := ev.Run()
	assert.NoError(err)
	assert.Equal(uint64(2), state.Pointer.Value())
	assert.True(state.Tape.Equal(load(t).Tape))

	// 3 tests and 2 iterations of 2 primitives.
	assert.Equal(7, ev.Steps())
}

func TestEvaluator_LoopCount(t *testing.T) {
	assert := assert.New(t)

	// ++++++++[>++++++++<-]>.
	prog := SequenceOf(
		IncCell, IncCell, IncCell, IncCell, IncCell, IncCell, IncCell, IncCell,
		WhileNonZero(SequenceOf(
			IncPointer,
			IncCell, IncCell, IncCell, IncCell, IncCell, IncCell, IncCell, IncCell,
			DecPointer, DecCell,
		)),
		IncPointer, WriteOutput,
	)

	out, err := Run(prog, 8)
	assert.NoError(err)
	assert.Equal([]byte{64}, out.Bytes())
}

func TestEvaluator_Nested(t *testing.T) {
	assert := assert.New(t)

	// Clear a 255 cell with a nested loop that also counts into cell 1
	// and cell 2.
	s := load(t, 255)
	inner := WhileNonZero(SequenceOf(DecCell, IncPointer, IncCell, IncPointer, IncCell, DecPointer, DecPointer))
	prog := SequenceOf(WhileNonZero(inner), IncPointer, WriteOutput, IncPointer, WriteOutput)

	state := Evaluate(prog, s)
	assert.Equal([]byte{255, 255}, state.Output.Bytes())
	assert.True(state.Tape.Read(counter.New(8)).IsZero())
}

func TestEvaluator_Deep(t *testing.T) {
	assert := assert.New(t)

	// 10000 nested loops, each entered once.
	prog := SequenceOf(DecCell, WriteOutput)
	for range 10000 {
		prog = WhileNonZero(prog)
	}
	prog = SequenceOf(IncCell, prog, IncPointer, WriteOutput)

	out, err := Run(prog, 8)
	assert.NoError(err)
	assert.Equal([]byte{0, 0}, out.Bytes())

	// A long flat program.
	long := Noop
	for range 100000 {
		long = Sequence(IncCell, long)
	}
	out, err = Run(Sequence(long, WriteOutput), 8)
	assert.NoError(err)
	assert.Equal([]byte{100000 % 256}, out.Bytes())
}

func TestEvaluator_Limit(t *testing.T) {
	assert := assert.New(t)

	// +[] never terminates.
	forever := SequenceOf(IncCell, WhileNonZero(Noop))

	ev := NewEvaluator(forever, load(t))
	ev.Limit = 100

	_, err := ev.Run()
	assert.ErrorIs(err, ErrStepLimit)

	var rterr *ErrRuntime
	assert.True(errors.As(err, &rterr))
	assert.Equal(100, rterr.Step)
	assert.Equal(100, ev.Steps())
	assert.False(ev.Done())

	// Raising the limit resumes where evaluation stopped.
	ev.Limit = 150
	_, err = ev.Run()
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(150, ev.Steps())

	// Terminating programs within the limit are unaffected.
	ev.Reset(SequenceOf(IncCell, WriteOutput), load(t))
	state, err := ev.Run()
	assert.NoError(err)
	assert.Equal([]byte{1}, state.Output.Bytes())
}

func TestEvaluator_Verbose(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	ev := NewEvaluator(SequenceOf(IncCell, WhileNonZero(DecCell)), load(t))
	ev.Verbose = true
	_, err := ev.Run()
	assert.NoError(err)

	text := buf.String()
	assert.Contains(text, "1: + ptr=0x00 cell=0x01 out=0")
	assert.Contains(text, "2: while ptr=0x00 cell=0x01 out=0")
	assert.Contains(text, "3: - ptr=0x00 cell=0x00 out=0")
	assert.Contains(text, "4: while ptr=0x00 cell=0x00 out=0")
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	out, err := Run(nil, 8)
	assert.NoError(err)
	assert.Equal(0, out.Len())

	out, err = Run(Noop, 8)
	assert.NoError(err)
	assert.Equal(0, out.Len())

	_, err = Run(Noop, 0)
	assert.Error(err)

	// Pointer wraps below cell zero.
	out, err = Run(SequenceOf(DecPointer, IncCell, IncCell, IncPointer, DecPointer, WriteOutput), 8)
	assert.NoError(err)
	assert.Equal([]byte{2}, out.Bytes())

	// A narrow tape wraps sooner.
	out, err = Run(SequenceOf(DecCell, WriteOutput, IncPointer, IncPointer, IncPointer, IncPointer, WriteOutput), 2)
	assert.NoError(err)
	assert.Equal([]byte{3, 3}, out.Bytes())
}
