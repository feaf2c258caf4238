package program

import (
	"strconv"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INCREMENT  = Op(0) // +
	OP_DECREMENT  = Op(1) // -
	OP_LEFT       = Op(2) // <
	OP_RIGHT      = Op(3) // >
	OP_READ       = Op(4) // ,
	OP_WRITE      = Op(5) // .
	OP_LOOP_OPEN  = Op(6) // [
	OP_LOOP_CLOSE = Op(7) // ]
)

// opMap is a map of source symbols to operations.
var opMap = map[rune]Op{
	'+': OP_INCREMENT,
	'-': OP_DECREMENT,
	'<': OP_LEFT,
	'>': OP_RIGHT,
	',': OP_READ,
	'.': OP_WRITE,
	'[': OP_LOOP_OPEN,
	']': OP_LOOP_CLOSE,
}

// OpOf returns the operation for a source symbol.
// ok is false if the symbol is a comment.
func OpOf(symbol rune) (op Op, ok bool) {
	op, ok = opMap[symbol]
	return
}

// IsLoop returns true if the operation is a loop bracket.
func (op Op) IsLoop() bool {
	return op == OP_LOOP_OPEN || op == OP_LOOP_CLOSE
}

// Instruction is a single decoded operation.
type Instruction struct {
	Op     Op  // Operation.
	Target int // Index of the matching bracket, for loop operations only.
}

// String returns the instruction in a listing friendly form.
func (in Instruction) String() string {
	if in.Op.IsLoop() {
		return in.Op.String() + " " + strconv.Itoa(in.Target)
	}
	return in.Op.String()
}
