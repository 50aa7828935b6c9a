// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"strings"
)

// Operation is a node of a program. Primitive kinds have no children;
// OP_SEQUENCE uses First and Second, OP_WHILE_NON_ZERO uses Body.
// A program is an owned tree of Operations with no cycles.
type Operation struct {
	Kind   Kind
	First  *Operation // Applied first in a sequence.
	Second *Operation // Applied second in a sequence.
	Body   *Operation // Loop body.
}

// The primitive operations.
var (
	Noop        = &Operation{Kind: OP_NOOP}
	IncPointer  = &Operation{Kind: OP_INC_POINTER}
	DecPointer  = &Operation{Kind: OP_DEC_POINTER}
	IncCell     = &Operation{Kind: OP_INC_CELL}
	DecCell     = &Operation{Kind: OP_DEC_CELL}
	WriteOutput = &Operation{Kind: OP_WRITE_OUTPUT}
)

// isNoop is true for nil and for OP_NOOP.
func (op *Operation) isNoop() bool {
	return op == nil || op.Kind == OP_NOOP
}

// Sequence returns the operation applying a, then b.
// A Noop on either side is dropped.
func Sequence(a, b *Operation) *Operation {
	switch {
	case a.isNoop() && b.isNoop():
		return Noop
	case a.isNoop():
		return b
	case b.isNoop():
		return a
	}

	return &Operation{Kind: OP_SEQUENCE, First: a, Second: b}
}

// SequenceOf applies ops in order. No ops is Noop.
func SequenceOf(ops ...*Operation) (op *Operation) {
	op = Noop
	for n := len(ops) - 1; n >= 0; n-- {
		op = Sequence(ops[n], op)
	}
	return
}

// WhileNonZero repeats body while the cell under the pointer is not zero.
func WhileNonZero(body *Operation) *Operation {
	if body == nil {
		body = Noop
	}
	return &Operation{Kind: OP_WHILE_NON_ZERO, Body: body}
}

// Primitive is true if the operation is applied in a single step.
func (op *Operation) Primitive() bool {
	return op.isNoop() || op.Kind.Primitive()
}

// step applies a primitive operation to a state.
func (op *Operation) step(s State) State {
	switch op.Kind {
	case OP_INC_POINTER:
		s.Pointer = s.Pointer.Inc()
	case OP_DEC_POINTER:
		s.Pointer = s.Pointer.Dec()
	case OP_INC_CELL:
		s.Tape = s.Tape.IncAt(s.Pointer)
	case OP_DEC_CELL:
		s.Tape = s.Tape.DecAt(s.Pointer)
	case OP_WRITE_OUTPUT:
		s.Output = s.Output.Append(byte(s.Cell().Value()))
	}
	return s
}

// Apply returns the state after applying the operation to s.
func (op *Operation) Apply(s State) State {
	if op.Primitive() {
		if op == nil {
			return s
		}
		return op.step(s)
	}

	return Evaluate(op, s)
}

// String renders the operation as program text. Noop renders as nothing.
func (op *Operation) String() string {
	var sb strings.Builder

	end := &Operation{}

	todo := []*Operation{op}
	for len(todo) > 0 {
		op := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		switch {
		case op == end:
			sb.WriteByte(']')
		case op.isNoop():
		case op.Kind == OP_SEQUENCE:
			todo = append(todo, op.Second, op.First)
		case op.Kind == OP_WHILE_NON_ZERO:
			sb.WriteByte('[')
			todo = append(todo, end, op.Body)
		default:
			sb.WriteString(op.Kind.String())
		}
	}

	return sb.String()
}
