// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Parse converts source text into a Program.
func Parse(source string) (prog *Program, err error) {
	return ParseReader(strings.NewReader(source))
}

// ParseReader converts source text from a reader into a Program.
//
// On an unmatched ']' parsing stops at once. On an unmatched '[' the
// outermost unmatched bracket is reported. Either way the error is an
// *ErrSyntax, and no Program is returned.
func ParseReader(input io.Reader) (prog *Program, err error) {
	var instructions []Instruction
	var loops Stack

	in := bufio.NewReader(input)
	line, column := 1, 0
	for offset := 0; ; offset++ {
		var symbol rune
		symbol, _, err = in.ReadRune()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}

		column++
		if symbol == '\n' {
			line++
			column = 0
		}

		op, ok := OpOf(symbol)
		if !ok {
			continue
		}

		ip := len(instructions)
		switch op {
		case OP_LOOP_OPEN:
			loops.Push(Pending{Ip: ip, Offset: offset, Line: line, Column: column})
			instructions = append(instructions, Instruction{Op: op})
		case OP_LOOP_CLOSE:
			open, ok := loops.Pop()
			if !ok {
				err = &ErrSyntax{Offset: offset, Line: line, Column: column, Err: ErrUnmatchedLoopClose}
				return
			}
			instructions = append(instructions, Instruction{Op: op, Target: open.Ip})
			instructions[open.Ip].Target = ip
		default:
			instructions = append(instructions, Instruction{Op: op})
		}
	}

	if open, ok := loops.Bottom(); ok {
		err = &ErrSyntax{Offset: open.Offset, Line: open.Line, Column: open.Column, Err: ErrUnmatchedLoopOpen}
		return
	}

	prog = &Program{instructions: instructions}

	return
}
