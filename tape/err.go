package tape

import (
	"errors"
	"strconv"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrOutOfBounds = errors.New(f("tape out of bounds"))
	ErrCapacity    = errors.New(f("tape capacity invalid"))
	ErrPolicy      = errors.New(f("tape policy unknown"))
)

// Direction of a cursor movement.
type Direction int

const (
	DIRECTION_LEFT  = Direction(-1)
	DIRECTION_RIGHT = Direction(1)
)

func (d Direction) String() string {
	if d == DIRECTION_LEFT {
		return "left"
	}
	return "right"
}

// ErrBoundary indicates a move past the edge of a bounded tape.
type ErrBoundary struct {
	Cursor    int
	Capacity  int
	Direction Direction
}

func (err *ErrBoundary) Error() string {
	return f("move %v from cell %s of %s: %v", err.Direction, strconv.Itoa(err.Cursor), strconv.Itoa(err.Capacity), ErrOutOfBounds)
}

func (err *ErrBoundary) Unwrap() error {
	return ErrOutOfBounds
}
