package cpu

import (
	"errors"
	"strings"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrIpEmpty        = errors.New(f("ip empty"))
	ErrInboxEmpty     = errors.New(f("inbox empty"))
	ErrCurrentEmpty   = errors.New(f("nothing in hand"))
	ErrRegisterEmpty  = errors.New(f("register empty"))
	ErrValueEmpty     = errors.New(f("value empty"))
	ErrValueNotNumber = errors.New(f("value not a number"))
	ErrJumpRange      = errors.New(f("jump out of range"))
	ErrStepLimit      = errors.New(f("step limit reached"))
	ErrValueOverflow  = errors.New(f("value out of range"))

	// Compiler errors
	ErrOpcodeMissing    = errors.New(f("opcode missing"))
	ErrOpcodeInvalid    = errors.New(f("opcode invalid"))
	ErrArgsInvalid      = errors.New(f("argument count invalid"))
	ErrRegisterInvalid  = errors.New(f("register invalid"))
	ErrIncrementInvalid = errors.New(f("increment invalid"))
	ErrLabelInvalid     = errors.New(f("label invalid"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrEquateInvalid    = errors.New(f("define invalid"))

	// Instruction set catalog errors
	ErrSignatureMissing = errors.New(f("signature missing"))
	ErrRoleUnknown      = errors.New(f("argument role unknown"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Unwrap() error {
	return ErrLabelInvalid
}

type ErrOpcodeUnknown string

func (eo ErrOpcodeUnknown) Error() string {
	return f("unknown operation '%v'", string(eo))
}

func (eo ErrOpcodeUnknown) Unwrap() error {
	return ErrOpcodeInvalid
}

type ErrRegister string

func (er ErrRegister) Error() string {
	return f("bad register '%v'", string(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrRegisterInvalid
}

type ErrIncrement string

func (ei ErrIncrement) Error() string {
	return f("bad increment '%v', expected +1 or -1", string(ei))
}

func (ei ErrIncrement) Unwrap() error {
	return ErrIncrementInvalid
}

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrExpression) Unwrap() error {
	return ErrEquateInvalid
}

// ErrRegisterCount is a program compiled for more registers than the machine has.
type ErrRegisterCount struct {
	Program int // Registers the program was compiled for.
	Machine int // Registers of the machine.
}

func (er ErrRegisterCount) Error() string {
	return f("program needs %v registers, machine has %v", er.Program, er.Machine)
}

func (er ErrRegisterCount) Unwrap() error {
	return ErrRegisterInvalid
}

type ErrRegisterUnset int

func (er ErrRegisterUnset) Error() string {
	return f("register %v is empty", int(er))
}

func (er ErrRegisterUnset) Unwrap() error {
	return ErrRegisterEmpty
}

type ErrNotNumber string

func (en ErrNotNumber) Error() string {
	return f("'%v' is not a number", string(en))
}

func (en ErrNotNumber) Unwrap() error {
	return ErrValueNotNumber
}

type ErrJump int

func (ej ErrJump) Error() string {
	return f("location %v out of range", int(ej))
}

func (ej ErrJump) Unwrap() error {
	return ErrJumpRange
}

// ErrArgCount reports an argument count mismatch, listing the expected roles.
type ErrArgCount struct {
	Op  Op
	Got int
}

func (err ErrArgCount) Error() string {
	roles := make([]string, 0, len(err.Op.Roles()))
	for _, role := range err.Op.Roles() {
		roles = append(roles, role.String())
	}
	expected := strings.Join(roles, " ")
	if len(expected) == 0 {
		expected = f("no arguments")
	}
	return f("%v takes %v, got %v arguments", err.Op, expected, err.Got)
}

func (err ErrArgCount) Unwrap() error {
	return ErrArgsInvalid
}

// ErrCompile locates a compilation error in the source.
type ErrCompile struct {
	Block  string // Block label.
	LineNo int    // 1-based line within the block.
	Line   string // Source text.
	Err    error
}

func (err *ErrCompile) Error() string {
	return f("%v line %d '%v' %v", err.Block, err.LineNo, err.Line, err.Err)
}

func (err *ErrCompile) Unwrap() error {
	return err.Err
}

// ErrInternal is a defect in the instruction set catalog, never in the user program.
type ErrInternal struct {
	Op  Op
	Err error
}

func (err *ErrInternal) Error() string {
	return f("internal: %v %v", err.Op, err.Err)
}

func (err *ErrInternal) Unwrap() error {
	return err.Err
}

// ErrExecute reports a runtime error with the trace of the instruction that failed.
type ErrExecute struct {
	Trace string
	Err   error
}

func (err *ErrExecute) Error() string {
	return f("%v: %v", err.Trace, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
