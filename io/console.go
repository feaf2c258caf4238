// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package io adapts byte streams into the byte source and sink used by the
// bfvm emulator.
package io

import (
	"bufio"
	"io"
	"sync"
)

// Console provides byte-at-a-time input and buffered output for a running
// program. It wraps an io.Reader for input and an io.Writer for output.
// A nil Input reads as end of input, and a nil Output discards bytes.
//
// Output may be flushed or closed by a host goroutine while a program is
// still running.
type Console struct {
	Input  io.Reader
	Output io.Writer

	mutex  sync.Mutex
	writer *bufio.Writer
	closed bool
}

var _ io.ByteReader = (*Console)(nil)
var _ io.ByteWriter = (*Console)(nil)

// ReadByte reads exactly one byte from the input, never reading ahead.
// Pending output is flushed first, so prompts appear before a read blocks.
// Returns io.EOF once the input is exhausted.
func (con *Console) ReadByte() (value byte, err error) {
	err = con.Flush()
	if err != nil {
		return
	}

	if con.Input == nil {
		err = io.EOF
		return
	}

	var one [1]byte
	for {
		var n int
		n, err = con.Input.Read(one[:])
		if n == 1 {
			value = one[0]
			err = nil
			return
		}
		if err != nil {
			return
		}
	}
}

// WriteByte buffers one byte for the output.
func (con *Console) WriteByte(value byte) (err error) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	if con.closed {
		err = ErrClosed
		return
	}

	if con.Output == nil {
		return
	}

	if con.writer == nil {
		con.writer = bufio.NewWriter(con.Output)
	}

	err = con.writer.WriteByte(value)

	return
}

// Flush writes any buffered output.
func (con *Console) Flush() (err error) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	return con.flush()
}

func (con *Console) flush() (err error) {
	if con.closed {
		err = ErrClosed
		return
	}

	if con.writer == nil {
		return
	}

	err = con.writer.Flush()

	return
}

// Close flushes any buffered output. Later reads and writes fail with
// ErrClosed. Closing twice is not an error.
func (con *Console) Close() (err error) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	if con.closed {
		return
	}

	err = con.flush()
	con.closed = true

	return
}
