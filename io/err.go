package io

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Console errors
	ErrClosed = errors.New(f("console closed"))
)
