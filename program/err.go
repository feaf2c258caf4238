package program

import (
	"errors"
	"strconv"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Parse errors
	ErrUnmatchedLoopOpen  = errors.New(f("unmatched '['"))
	ErrUnmatchedLoopClose = errors.New(f("unmatched ']'"))
)

// ErrSyntax indicates the source location of a parse error.
type ErrSyntax struct {
	Offset int // Character index in the original source, from 0.
	Line   int // Line number, from 1.
	Column int // Column number, from 1.
	Err    error
}

func (err *ErrSyntax) Error() string {
	return strconv.Itoa(err.Line) + ":" + strconv.Itoa(err.Column) + ": " + err.Err.Error()
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
