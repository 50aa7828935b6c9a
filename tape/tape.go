// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tape provides the memory tape of the machine: a perfect binary
// tree of depth N whose 2^N leaves are N bit cells, addressed by an N bit
// pointer.
//
// A Tape is immutable. Updates copy only the nodes on the path from the
// root to the addressed leaf, and share every other subtree with the tape
// they were derived from. Because of this a zero filled tape of any width
// costs only N+1 nodes, and sparse use of very wide tapes is cheap.
package tape

import (
	"iter"

	"github.com/ezrec/tapevm/counter"
	"github.com/ezrec/tapevm/internal"
)

const (
	MIN_WIDTH     = 1  // Narrowest tape, 2 cells.
	MAX_WIDTH     = 32 // Widest tape, 2^32 cells.
	DEFAULT_WIDTH = 8  // 256 byte cells.
)

// node is either an interior node (left and right set) or a leaf (cell set).
type node struct {
	left  *node
	right *node
	cell  counter.Counter
}

// Tape is the addressed tree of cells.
type Tape struct {
	width uint
	root  *node
	zeros []*node // zeros[h] is the zero filled subtree of height h.
}

// New creates a zero filled tape of depth width, with cells of the same width.
func New(width uint) (tp *Tape, err error) {
	if width < MIN_WIDTH || width > MAX_WIDTH {
		err = ErrWidthInvalid
		return
	}

	// Every zero subtree of a given height is the same subtree.
	zeros := make([]*node, width+1)
	zeros[0] = &node{cell: counter.New(width)}
	for h := uint(1); h <= width; h++ {
		zeros[h] = &node{left: zeros[h-1], right: zeros[h-1]}
	}

	tp = &Tape{width: width, root: zeros[width], zeros: zeros}

	return
}

// Width returns the depth of the tree, which is also the width of pointers
// and cells.
func (tp *Tape) Width() uint {
	return tp.width
}

// Len returns the number of cells.
func (tp *Tape) Len() uint64 {
	return uint64(1) << tp.width
}

// right reports if the pointer selects the right child at depth.
// The most significant pointer bit selects at the root.
func (tp *Tape) right(ptr counter.Counter, depth uint) bool {
	return ptr.Bit(tp.width - 1 - depth)
}

// leaf walks to the leaf addressed by ptr.
func (tp *Tape) leaf(ptr counter.Counter) (n *node) {
	n = tp.root
	for depth := range tp.width {
		if tp.right(ptr, depth) {
			n = n.right
		} else {
			n = n.left
		}
	}
	return
}

// Read returns the cell addressed by ptr.
func (tp *Tape) Read(ptr counter.Counter) counter.Counter {
	return tp.leaf(ptr).cell
}

// update returns a new tape with the addressed cell replaced by op(cell).
func (tp *Tape) update(ptr counter.Counter, op func(counter.Counter) counter.Counter) *Tape {
	path := make([]*node, tp.width)

	n := tp.root
	for depth := range tp.width {
		path[depth] = n
		if tp.right(ptr, depth) {
			n = n.right
		} else {
			n = n.left
		}
	}

	child := &node{cell: op(n.cell)}
	for depth := tp.width; depth > 0; depth-- {
		parent := *path[depth-1]
		if tp.right(ptr, depth-1) {
			parent.right = child
		} else {
			parent.left = child
		}
		child = &parent
	}

	return &Tape{width: tp.width, root: child, zeros: tp.zeros}
}

// IncAt returns a tape with the addressed cell incremented.
func (tp *Tape) IncAt(ptr counter.Counter) *Tape {
	return tp.update(ptr, counter.Counter.Inc)
}

// DecAt returns a tape with the addressed cell decremented.
func (tp *Tape) DecAt(ptr counter.Counter) *Tape {
	return tp.update(ptr, counter.Counter.Dec)
}

// Equal compares the cells of two tapes. Shared subtrees are not descended.
func (tp *Tape) Equal(other *Tape) bool {
	if tp == other {
		return true
	}
	if tp == nil || other == nil || tp.width != other.width {
		return false
	}

	type pair struct{ a, b *node }
	todo := []pair{{tp.root, other.root}}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		switch {
		case p.a == p.b:
			// Shared.
		case p.a.left == nil:
			if p.a.cell != p.b.cell {
				return false
			}
		default:
			todo = append(todo, pair{p.a.left, p.b.left}, pair{p.a.right, p.b.right})
		}
	}

	return true
}

// cells yields the leaves under n, which is at the given height above the
// leaves and whose first leaf has address base.
func (n *node) cells(height uint, base uint64) iter.Seq2[uint64, counter.Counter] {
	if height == 0 {
		return func(yield func(addr uint64, cell counter.Counter) bool) {
			yield(base, n.cell)
		}
	}

	half := uint64(1) << (height - 1)
	return func(yield func(addr uint64, cell counter.Counter) bool) {
		internal.IterSeq2Concat(
			n.left.cells(height-1, base),
			n.right.cells(height-1, base+half),
		)(yield)
	}
}

// Cells yields every cell in address order.
func (tp *Tape) Cells() iter.Seq2[uint64, counter.Counter] {
	return tp.root.cells(tp.width, 0)
}

// NonZero yields only the cells that are not zero, in address order.
// Untouched zero subtrees are skipped without being visited.
func (tp *Tape) NonZero() iter.Seq2[uint64, counter.Counter] {
	var walk func(n *node, height uint, base uint64, yield func(uint64, counter.Counter) bool) bool
	walk = func(n *node, height uint, base uint64, yield func(uint64, counter.Counter) bool) bool {
		if n == tp.zeros[height] {
			return true
		}
		if height == 0 {
			if n.cell.IsZero() {
				return true
			}
			return yield(base, n.cell)
		}
		half := uint64(1) << (height - 1)
		return walk(n.left, height-1, base, yield) &&
			walk(n.right, height-1, base+half, yield)
	}

	return func(yield func(addr uint64, cell counter.Counter) bool) {
		walk(tp.root, tp.width, 0, yield)
	}
}
