// Package program implements the instruction set and parser for bfvm.
//
// A program is written with eight single character symbols that act on a byte
// tape: '+' and '-' change the current cell, '<' and '>' move the cursor, ','
// and '.' read and write a byte, and '[' and ']' delimit a loop that repeats
// while the current cell is non-zero. Every other character is a comment.
//
// Parse resolves each loop bracket to the index of its partner, so a Program
// never needs to search for a matching bracket at run time.
package program
