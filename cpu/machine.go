package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"strconv"

	"github.com/ezrec/hrm/internal"
)

// REGISTER_COUNT is the default size of the register bank.
const REGISTER_COUNT = 10

// Summary is the result of a completed run.
type Summary struct {
	Outbox       []string // Produced outbox tokens.
	Instructions int      // Instruction count of the program.
	Steps        int      // Steps executed.
}

// Machine is the execution state of a program: the worker's hand, the
// inbox and outbox conveyors, and the floor registers.
type Machine struct {
	Verbose bool      // Set to enable verbose logging.
	Trace   io.Writer // If set, each step is traced here before it executes.

	Program  *Program // Program being executed.
	Current  Value    // Value held in hand.
	Inbox    Queue    // Remaining input.
	Outbox   Queue    // Produced output.
	Register []Value  // Register bank.

	Ip        int // Index of the next instruction to execute.
	Steps     int // Steps executed since reset.
	StepLimit int // If non-zero, the maximum number of steps to execute.

	jumped bool
}

// NewMachine creates a machine with a specifically sized register bank.
func NewMachine(registers int) (m *Machine) {
	if registers <= 0 {
		registers = REGISTER_COUNT
	}

	m = &Machine{
		Register: make([]Value, registers),
	}

	return
}

// Defines for the machine, for use by the compiler.
func (m *Machine) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"REGISTERS":     strconv.Itoa(len(m.Register)),
		"LAST_REGISTER": strconv.Itoa(len(m.Register) - 1),
	})
}

// Reset the machine to run a program from the start with a fresh inbox.
// The inbox tokens are copied. A program compiled for more registers than
// the machine has is loaded, but will not run.
func (m *Machine) Reset(prog *Program, inbox ...string) (err error) {
	if m.Verbose {
		log.Printf("machine: reset, %v instructions, inbox %v", prog.Len(), internal.List(inbox))
	}

	m.Program = prog
	m.Current = Value{}
	m.Inbox.Reset()
	m.Inbox.PushTokens(inbox...)
	m.Outbox.Reset()
	clear(m.Register)
	m.Ip = 0
	m.Steps = 0
	m.jumped = false

	err = m.checkRegisters()
	return
}

// checkRegisters verifies the program fits the register bank.
func (m *Machine) checkRegisters() (err error) {
	if m.Program != nil && m.Program.Registers > len(m.Register) {
		err = ErrRegisterCount{Program: m.Program.Registers, Machine: len(m.Register)}
	}
	return
}

// Done returns true when the program counter has run past the last instruction.
func (m *Machine) Done() bool {
	return m.Ip >= m.Program.Len()
}

// Location returns the 1-based location of the next instruction.
func (m *Machine) Location() int {
	return m.Ip + 1
}

// String returns the current machine state as a trace line.
func (m *Machine) String() string {
	regs := make([]string, len(m.Register))
	for n, reg := range m.Register {
		regs[n] = reg.Token
	}

	return fmt.Sprintf("current: %v registers: %v inbox: %v outbox: %v",
		m.Current,
		internal.List(regs),
		internal.List(m.Inbox.Tokens()),
		internal.List(m.Outbox.Tokens()),
	)
}

// Summary of the run so far.
func (m *Machine) Summary() Summary {
	return Summary{
		Outbox:       m.Outbox.Tokens(),
		Instructions: m.Program.Len(),
		Steps:        m.Steps,
	}
}

// Fetch returns the next instruction to execute.
func (m *Machine) Fetch() (ins *Instruction, err error) {
	ins, ok := m.Program.At(m.Location())
	if !ok {
		err = ErrIpEmpty
		return
	}

	return
}

// Step executes a single instruction.
// An INBOX on an empty inbox finishes the program and is not an error.
func (m *Machine) Step() (err error) {
	ins, err := m.Fetch()
	if err != nil {
		return
	}

	err = m.checkRegisters()
	if err != nil {
		return
	}

	if m.StepLimit > 0 && m.Steps >= m.StepLimit {
		err = ErrStepLimit
		return
	}

	if m.Trace != nil {
		fmt.Fprintf(m.Trace, "%v\n-> %v\n", m.String(), m.Program.Trace(m.Location()))
	}

	if m.Verbose {
		log.Printf("%v", m.Program.Trace(m.Location()))
	}

	ip := m.Ip
	m.jumped = false

	err = m.Execute(ins)
	if errors.Is(err, ErrInboxEmpty) {
		if m.Verbose {
			log.Printf("machine: inbox empty, finished")
		}
		m.Ip = m.Program.Len()
		m.jumped = true
		err = nil
	}
	if err != nil {
		return
	}

	if !m.jumped && m.Ip == ip {
		m.Ip++
	}

	m.Steps++

	return
}

// Run steps the machine until the program completes.
// A runtime error aborts the run, and is reported with the trace of the
// instruction that failed.
func (m *Machine) Run() (summary Summary, err error) {
	for !m.Done() {
		location := m.Location()
		err = m.Step()
		if err != nil {
			err = &ErrExecute{Trace: m.Program.Trace(location), Err: err}
			return
		}
	}

	summary = m.Summary()
	return
}

// Execute executes a single instruction against the machine state.
func (m *Machine) Execute(ins *Instruction) (err error) {
	switch ins.Op {
	case OP_INBOX:
		value, ok := m.Inbox.Pop()
		if !ok {
			err = ErrInboxEmpty
			return
		}
		m.Current = value
	case OP_OUTBOX:
		var value Value
		value, err = m.current()
		if err != nil {
			return
		}
		m.Outbox.Push(value)
		m.Current = Value{}
	case OP_COPY_TO:
		var value Value
		value, err = m.current()
		if err != nil {
			return
		}
		err = m.setRegister(ins.Arg(0), value)
	case OP_COPY_FROM:
		var value Value
		value, err = m.register(ins.Arg(0))
		if err != nil {
			return
		}
		m.Current = value
	case OP_ADD, OP_SUB:
		var a, b int
		a, err = m.currentInt()
		if err != nil {
			return
		}
		b, err = m.registerInt(ins.Arg(0))
		if err != nil {
			return
		}
		var number int
		if ins.Op == OP_SUB {
			number, err = sub(a, b)
		} else {
			number, err = add(a, b)
		}
		if err != nil {
			return
		}
		m.Current = MakeNumber(number)
	case OP_BUMP:
		index := ins.Arg(1)
		var value int
		value, err = m.registerInt(index)
		if err != nil {
			return
		}
		value, err = add(value, ins.Arg(0))
		if err != nil {
			return
		}
		err = m.setRegister(index, MakeNumber(value))
	case OP_JUMP:
		err = m.jump(ins.Arg(0))
	case OP_JUMP_IF_ZERO, OP_JUMP_IF_NEGATIVE:
		var value int
		value, err = m.currentInt()
		if err != nil {
			return
		}
		if (ins.Op == OP_JUMP_IF_ZERO && value == 0) ||
			(ins.Op == OP_JUMP_IF_NEGATIVE && value < 0) {
			err = m.jump(ins.Arg(0))
		}
	default:
		err = ErrOpcodeUnknown(ins.Op.String())
	}

	return
}

func (m *Machine) current() (value Value, err error) {
	if m.Current.Empty() {
		err = ErrCurrentEmpty
		return
	}
	value = m.Current
	return
}

func (m *Machine) currentInt() (number int, err error) {
	value, err := m.current()
	if err != nil {
		return
	}
	number, err = value.Int()
	return
}

func (m *Machine) register(index int) (value Value, err error) {
	if index < 0 || index >= len(m.Register) {
		err = ErrRegister(strconv.Itoa(index))
		return
	}
	value = m.Register[index]
	if value.Empty() {
		err = ErrRegisterUnset(index)
		return
	}
	return
}

func (m *Machine) registerInt(index int) (number int, err error) {
	value, err := m.register(index)
	if err != nil {
		return
	}
	number, err = value.Int()
	return
}

func (m *Machine) setRegister(index int, value Value) (err error) {
	if index < 0 || index >= len(m.Register) {
		err = ErrRegister(strconv.Itoa(index))
		return
	}
	m.Register[index] = value
	return
}

// jump moves the program counter to a 1-based location.
func (m *Machine) jump(location int) (err error) {
	if location < 1 || location > m.Program.Len() {
		err = ErrJump(location)
		return
	}
	m.Ip = location - 1
	m.jumped = true
	return
}
