// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package tape provides the byte cell memory that bfvm programs operate on.
//
// A Tape is a fixed number of zeroed cells and a cursor. Cell arithmetic
// wraps modulo 256. The two variants differ only at the edges: a Bounded
// tape refuses to move past either end, while a Circular tape wraps around.
package tape

const (
	// DEFAULT_CAPACITY is the default number of cells on a new tape.
	DEFAULT_CAPACITY = 1024
)

// Tape defines the operations a program can perform on its memory.
type Tape interface {
	// MoveLeft moves the cursor one cell towards the start.
	MoveLeft() error
	// MoveRight moves the cursor one cell towards the end.
	MoveRight() error
	// Increment adds one to the current cell.
	Increment()
	// Decrement subtracts one from the current cell.
	Decrement()
	// Read returns the current cell.
	Read() byte
	// Write replaces the current cell.
	Write(value byte)
}

// Policy selects the behaviour of a tape at its edges.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	POLICY_BOUNDED  = Policy(0) // bounded
	POLICY_CIRCULAR = Policy(1) // circular
)

// ParsePolicy returns the policy with the given name.
func ParsePolicy(name string) (policy Policy, err error) {
	for _, policy = range []Policy{POLICY_BOUNDED, POLICY_CIRCULAR} {
		if policy.String() == name {
			return
		}
	}

	err = ErrPolicy
	return
}

// NewTape creates a zeroed tape of capacity cells with the given edge policy.
func NewTape(capacity int, policy Policy) (tape Tape, err error) {
	if capacity <= 0 {
		err = ErrCapacity
		return
	}

	switch policy {
	case POLICY_BOUNDED:
		tape = NewBounded(capacity)
	case POLICY_CIRCULAR:
		tape = NewCircular(capacity)
	default:
		err = ErrPolicy
	}

	return
}
