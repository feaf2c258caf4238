package config

import (
	"errors"

	"github.com/ezrec/bfvm/translate"
)

var f = translate.From

var (
	// Config errors
	ErrConfigFormat = errors.New(f("config format unknown"))
	ErrConfigType   = errors.New(f("config type invalid"))
	ErrConfigValue  = errors.New(f("config value invalid"))
)

// ErrConfig indicates the setting responsible for a configuration error.
type ErrConfig struct {
	Key string
	Err error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Key, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
