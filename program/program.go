package program

import (
	"iter"
	"strings"
)

// Program is an immutable list of instructions with resolved loop targets.
type Program struct {
	instructions []Instruction
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.instructions)
}

// At returns the instruction at ip.
func (prog *Program) At(ip int) Instruction {
	return prog.instructions[ip]
}

// All returns an iterator over the instruction pointers and instructions.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, in Instruction) bool) {
		for ip := range prog.Len() {
			if !yield(ip, prog.instructions[ip]) {
				return
			}
		}
	}
}

// String returns the program source with all comments removed.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, in := range prog.All() {
		sb.WriteString(in.Op.String())
	}
	return sb.String()
}
