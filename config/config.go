// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads bfvm run settings from a TOML or Starlark file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bfvm/tape"
)

// Config holds the settings for a single run.
type Config struct {
	TapeSize int    `toml:"tape_size"` // Number of tape cells.
	Tape     string `toml:"tape"`      // Tape edge policy, "bounded" or "circular".
	Verbose  bool   `toml:"verbose"`   // Log every executed instruction.
	Timeout  string `toml:"timeout"`   // Wall clock limit, as a time.Duration string.
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		TapeSize: tape.DEFAULT_CAPACITY,
		Tape:     tape.POLICY_BOUNDED.String(),
	}
}

// Load reads a configuration file, choosing the format from its extension.
// Settings missing from the file keep their defaults.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()

	switch filepath.Ext(path) {
	case ".toml":
		err = cfg.loadToml(path)
	case ".star":
		err = cfg.loadStarlark(path)
	default:
		err = ErrConfigFormat
	}
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}

	return
}

func (cfg *Config) loadToml(path string) (err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = toml.Unmarshal(data, cfg)

	return
}

func (cfg *Config) loadStarlark(path string) (err error) {
	thread := &starlark.Thread{Name: path}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"BOUNDED":           starlark.String(tape.POLICY_BOUNDED.String()),
		"CIRCULAR":          starlark.String(tape.POLICY_CIRCULAR.String()),
		"DEFAULT_TAPE_SIZE": starlark.MakeInt(tape.DEFAULT_CAPACITY),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, path, nil, pred)
	if err != nil {
		return
	}

	if value, ok := globals["tape_size"]; ok {
		st_int, ok := value.(starlark.Int)
		if !ok {
			return &ErrConfig{Key: "tape_size", Err: ErrConfigType}
		}
		st_int64, ok := st_int.Int64()
		if !ok {
			return &ErrConfig{Key: "tape_size", Err: ErrConfigValue}
		}
		cfg.TapeSize = int(st_int64)
	}

	if value, ok := globals["tape"]; ok {
		str, ok := starlark.AsString(value)
		if !ok {
			return &ErrConfig{Key: "tape", Err: ErrConfigType}
		}
		cfg.Tape = str
	}

	if value, ok := globals["verbose"]; ok {
		st_bool, ok := value.(starlark.Bool)
		if !ok {
			return &ErrConfig{Key: "verbose", Err: ErrConfigType}
		}
		cfg.Verbose = bool(st_bool)
	}

	if value, ok := globals["timeout"]; ok {
		str, ok := starlark.AsString(value)
		if !ok {
			return &ErrConfig{Key: "timeout", Err: ErrConfigType}
		}
		cfg.Timeout = str
	}

	return
}

// Validate checks that every setting has a usable value.
func (cfg *Config) Validate() (err error) {
	if cfg.TapeSize <= 0 {
		return &ErrConfig{Key: "tape_size", Err: tape.ErrCapacity}
	}

	_, err = tape.ParsePolicy(cfg.Tape)
	if err != nil {
		return &ErrConfig{Key: "tape", Err: err}
	}

	_, err = cfg.TimeoutDuration()
	if err != nil {
		return &ErrConfig{Key: "timeout", Err: err}
	}

	return
}

// TimeoutDuration returns the wall clock limit, or zero for none.
func (cfg *Config) TimeoutDuration() (timeout time.Duration, err error) {
	if len(cfg.Timeout) == 0 {
		return
	}

	timeout, err = time.ParseDuration(cfg.Timeout)
	if err == nil && timeout < 0 {
		err = ErrConfigValue
	}

	return
}

// NewTape creates the configured tape.
func (cfg *Config) NewTape() (tp tape.Tape, err error) {
	policy, err := tape.ParsePolicy(cfg.Tape)
	if err != nil {
		return
	}

	return tape.NewTape(cfg.TapeSize, policy)
}
