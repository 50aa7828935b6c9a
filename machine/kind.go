package machine

// Kind is the type of an Operation.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	OP_NOOP           = Kind(0) // noop
	OP_INC_POINTER    = Kind(1) // >
	OP_DEC_POINTER    = Kind(2) // <
	OP_INC_CELL       = Kind(3) // +
	OP_DEC_CELL       = Kind(4) // -
	OP_WRITE_OUTPUT   = Kind(5) // .
	OP_SEQUENCE       = Kind(6) // seq
	OP_WHILE_NON_ZERO = Kind(7) // while
)

// Primitive is true for the kinds that transform a state in a single step.
func (k Kind) Primitive() bool {
	return k >= OP_NOOP && k <= OP_WRITE_OUTPUT
}
