// Package cpu implements the compiler and machine for Human Resource Machine programs.
//
// The machine consists of a program counter, a single "current" slot (the tile held
// by the office worker), an inbox and outbox of tokens, and a fixed bank of registers
// (the floor tiles). Every slot is either empty, a number, or a letter.
//
// The compiler translates ordered, labeled blocks of source lines into a flat Program.
// A jump to a label always lands on the first line of that label's block.
package cpu
