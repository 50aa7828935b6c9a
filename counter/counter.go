// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package counter implements fixed width binary counters with wrap-around
// arithmetic. They serve as both the tape pointer and the tape cells.
package counter

import (
	"fmt"
	"iter"
	"strings"
)

const (
	MIN_WIDTH = 1  // Narrowest counter.
	MAX_WIDTH = 64 // Widest counter.
)

// Counter is an unsigned integer of a fixed number of bits. All arithmetic
// is modulo 2^Width(); a carry or borrow out of the top bit is discarded.
type Counter struct {
	width uint
	value uint64
}

// mask returns the all-ones value for a width.
func mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// New returns a zero counter of the given width.
// Panics with ErrWidthInvalid if width is out of range.
func New(width uint) Counter {
	if width < MIN_WIDTH || width > MAX_WIDTH {
		panic(fmt.Errorf("%w: %d", ErrWidthInvalid, width))
	}

	return Counter{width: width}
}

// FromValue returns a counter holding value modulo 2^width.
func FromValue(width uint, value uint64) Counter {
	c := New(width)
	c.value = value & mask(width)
	return c
}

// Width returns the number of bits in the counter.
func (c Counter) Width() uint {
	return c.width
}

// Value returns the integer value.
func (c Counter) Value() uint64 {
	return c.value
}

// Bit returns bit n, where bit 0 is the least significant.
// Bits at or above the width are always clear.
func (c Counter) Bit(n uint) bool {
	if n >= c.width {
		return false
	}
	return ((c.value >> n) & 1) == 1
}

// Bits yields exactly Width() bits, least significant first.
func (c Counter) Bits() iter.Seq[bool] {
	return func(yield func(bit bool) bool) {
		for n := range c.width {
			if !yield(c.Bit(n)) {
				return
			}
		}
	}
}

// Inc returns the counter plus one. The all-ones value wraps to zero.
func (c Counter) Inc() Counter {
	c.value = (c.value + 1) & mask(c.width)
	return c
}

// Dec returns the counter minus one. Zero wraps to the all-ones value.
func (c Counter) Dec() Counter {
	c.value = (c.value - 1) & mask(c.width)
	return c
}

// IsZero is true iff every bit is clear.
func (c Counter) IsZero() bool {
	return c.value == 0
}

// IsMax is true iff every bit is set.
func (c Counter) IsMax() bool {
	return c.value == mask(c.width)
}

// String returns the bits, most significant first.
func (c Counter) String() string {
	var sb strings.Builder
	sb.WriteString("0b")
	for n := c.width; n > 0; n-- {
		if c.Bit(n - 1) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
