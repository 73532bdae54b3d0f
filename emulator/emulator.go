// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs compiled programs on the machine.
package emulator

import (
	"errors"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/hrm/cpu"
)

// Emulator state. Machine + Program + compile-time defines.
type Emulator struct {
	Verbose      bool         // If set, enables verbose logging.
	*cpu.Machine              // Reference to the machine simulation.
	Program      *cpu.Program // Reference to the currently running program.
	Trace        io.Writer    // If set, each step is traced here.

	defines map[string]string
}

// NewEmulator creates a new emulator with a register bank of the given size,
// or cpu.REGISTER_COUNT if zero.
func NewEmulator(registers int) (emu *Emulator) {
	emu = &Emulator{
		Machine: cpu.NewMachine(registers),
		Program: &cpu.Program{},
		defines: map[string]string{},
	}

	return
}

// Define adds a compile-time define, such as a name for a floor register.
func (emu *Emulator) Define(name string, value string) {
	emu.defines[name] = value
}

// Defines returns an iterator over all of the defines.
// Defines added with Define() override the machine's.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	defines := maps.Collect(emu.Machine.Defines())
	maps.Copy(defines, emu.defines)
	return maps.All(defines)
}

// Compile compiles code blocks for this emulator, and makes it the current program.
func (emu *Emulator) Compile(blocks []cpu.CodeBlock) (prog *cpu.Program, err error) {
	cc := &cpu.Compiler{
		Verbose:   emu.Verbose,
		Registers: len(emu.Machine.Register),
	}
	for name, value := range emu.Defines() {
		cc.Predefine(name, value)
	}

	prog, err = cc.Compile(blocks)
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Reset the machine to the start of the program with a fresh inbox, and
// the floor registers preset.
func (emu *Emulator) Reset(inbox []string, floor map[int]string) (err error) {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Trace = emu.Trace
	err = emu.Machine.Reset(emu.Program, inbox...)
	if err != nil {
		return
	}

	for index, token := range floor {
		if index < 0 || index >= len(emu.Machine.Register) {
			err = ErrFloor(index)
			return
		}
		emu.Machine.Register[index] = cpu.MakeValue(token)
	}

	if emu.Verbose {
		log.Printf("emulator: reset, %v", emu.Machine.String())
	}

	return
}

// Ticks returns the total steps since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Machine.Steps
}

// LineNo returns the block and line number for the next instruction.
func (emu *Emulator) LineNo() (block string, lineno int) {
	ins, ok := emu.Program.At(emu.Machine.Location())
	if !ok {
		return
	}

	return ins.Block, ins.LineNo
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	location := emu.Machine.Location()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Location: location, Trace: emu.Program.Trace(location), Err: err}
		}
	}()

	err = emu.Machine.Step()
	if errors.Is(err, cpu.ErrIpEmpty) {
		err = nil
		done = true
		return
	}
	if err != nil {
		return
	}

	done = emu.Machine.Done()
	return
}

// Run ticks the emulator until the program completes.
func (emu *Emulator) Run() (summary cpu.Summary, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	summary = emu.Machine.Summary()
	return
}
