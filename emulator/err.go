package emulator

import (
	"strconv"

	"github.com/ezrec/bfvm/program"
	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int
	Op  program.Op
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %s '%v' %v", strconv.Itoa(err.Ip), err.Op, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
