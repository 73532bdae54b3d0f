package cpu

import (
	"fmt"
	"slices"
	"strings"
)

// CodeBlock is a labeled group of source lines.
type CodeBlock struct {
	Label string
	Lines []string
}

// Program is the flat instruction list produced by a compilation.
// Locations are 1-based; Instructions is indexed from 0.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int // Map of block labels to locations.
	Registers    int            // Register count the program was compiled for.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Instructions)
}

// At returns the instruction at a 1-based location.
func (prog *Program) At(location int) (ins *Instruction, ok bool) {
	if location < 1 || location > prog.Len() {
		return
	}

	return &prog.Instructions[location-1], true
}

// Location returns the 1-based location of a block label.
func (prog *Program) Location(label string) (location int, ok bool) {
	location, ok = prog.Labels[label]
	return
}

// Trace returns the trace string of the instruction at a 1-based location.
func (prog *Program) Trace(location int) string {
	ins, ok := prog.At(location)
	if !ok {
		return fmt.Sprintf("%3d: ?", location)
	}

	return fmt.Sprintf("%3d: %v", location, ins)
}

// String returns the program listing, with block labels.
func (prog *Program) String() string {
	labels := make(map[int][]string, len(prog.Labels))
	for label, location := range prog.Labels {
		labels[location] = append(labels[location], label)
	}

	for _, names := range labels {
		slices.Sort(names)
	}

	var sb strings.Builder
	for n := range prog.Instructions {
		location := n + 1
		for _, label := range labels[location] {
			fmt.Fprintf(&sb, "%v:\n", label)
		}
		fmt.Fprintf(&sb, "%v\n", prog.Trace(location))
	}

	return sb.String()
}
