// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"io"
	"log"

	"github.com/ezrec/bfvm/program"
	"github.com/ezrec/bfvm/tape"
)

// Emulator state. Program + Tape + byte IO.
type Emulator struct {
	Verbose bool             // If set, logs every executed instruction.
	Program *program.Program // Reference to the running program.
	Tape    tape.Tape        // Tape memory, owned by the emulator while running.

	Input  io.ByteReader // Byte source. If nil, reads behave as end of input.
	Output io.ByteWriter // Byte sink. If nil, written bytes are discarded.

	Ip    int // Instruction pointer.
	Ticks int // Instructions executed since a reset.
}

// NewEmulator creates a new emulator for a program and tape.
func NewEmulator(prog *program.Program, tp tape.Tape) (emu *Emulator) {
	emu = &Emulator{
		Program: prog,
		Tape:    tp,
	}

	return
}

// Execute runs a program to completion against a tape and byte streams.
func Execute(prog *program.Program, input io.ByteReader, output io.ByteWriter, tp tape.Tape) error {
	emu := NewEmulator(prog, tp)
	emu.Input = input
	emu.Output = output

	return emu.Run()
}

// Reset the instruction pointer to the start of the program.
// The tape is left untouched.
func (emu *Emulator) Reset() {
	emu.Ip = 0
	emu.Ticks = 0
}

// Run executes from the current instruction pointer until the end of the
// program. A program with an infinite loop never returns.
func (emu *Emulator) Run() (err error) {
	for emu.Ip < emu.Program.Len() {
		err = emu.tick()
		if err != nil {
			return
		}
	}

	return
}

// tick fetches, decodes and executes a single instruction.
func (emu *Emulator) tick() (err error) {
	in := emu.Program.At(emu.Ip)

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: emu.Ip, Op: in.Op, Err: err}
		}
	}()

	if emu.Verbose {
		log.Printf("%04d: %-6v %v", emu.Ip, in, emu.Tape)
	}

	tp := emu.Tape
	switch in.Op {
	case program.OP_INCREMENT:
		tp.Increment()
	case program.OP_DECREMENT:
		tp.Decrement()
	case program.OP_LEFT:
		err = tp.MoveLeft()
	case program.OP_RIGHT:
		err = tp.MoveRight()
	case program.OP_READ:
		var value byte
		value, err = emu.readByte()
		if errors.Is(err, io.EOF) {
			// End of input leaves the cell unchanged.
			err = nil
			break
		}
		if err == nil {
			tp.Write(value)
		}
	case program.OP_WRITE:
		err = emu.writeByte(tp.Read())
	case program.OP_LOOP_OPEN:
		if tp.Read() == 0 {
			emu.Ip = in.Target
		}
	case program.OP_LOOP_CLOSE:
		if tp.Read() != 0 {
			emu.Ip = in.Target
		}
	}

	if err != nil {
		return
	}

	emu.Ip++
	emu.Ticks++

	return
}

func (emu *Emulator) readByte() (value byte, err error) {
	if emu.Input == nil {
		err = io.EOF
		return
	}

	return emu.Input.ReadByte()
}

func (emu *Emulator) writeByte(value byte) (err error) {
	if emu.Output == nil {
		return
	}

	return emu.Output.WriteByte(value)
}
