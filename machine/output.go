package machine

import (
	"iter"
	"slices"
)

// outputNode is one byte of output, linked to the byte written before it.
type outputNode struct {
	value byte
	prev  *outputNode
}

// Output is the append-only sequence of bytes written by a program.
// It is a persistent list: Append never changes the receiver, so outputs
// that share a prefix never see each other's bytes.
type Output struct {
	last   *outputNode
	length int
}

// Append returns the output with one more byte at the end.
func (out Output) Append(value byte) Output {
	return Output{
		last:   &outputNode{value: value, prev: out.last},
		length: out.length + 1,
	}
}

// Len returns the number of bytes written.
func (out Output) Len() int {
	return out.length
}

// Bytes returns a copy of the output, in the order it was written.
func (out Output) Bytes() (data []byte) {
	data = make([]byte, out.length)
	n := out.length
	for node := out.last; node != nil; node = node.prev {
		n--
		data[n] = node.value
	}
	return
}

// All yields the bytes in the order they were written.
func (out Output) All() iter.Seq[byte] {
	return slices.Values(out.Bytes())
}

// Equal compares the written bytes of two outputs.
func (out Output) Equal(other Output) bool {
	if out.length != other.length {
		return false
	}

	a, b := out.last, other.last
	for a != b {
		if a.value != b.value {
			return false
		}
		a, b = a.prev, b.prev
	}

	return true
}
