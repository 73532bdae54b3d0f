package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is an instruction operation.
type Op int

const (
	OP_INBOX            = Op(0) // INBOX
	OP_OUTBOX           = Op(1) // OUTBOX
	OP_COPY_TO          = Op(2) // COPY_TO
	OP_COPY_FROM        = Op(3) // COPY_FROM
	OP_ADD              = Op(4) // ADD
	OP_SUB              = Op(5) // SUB
	OP_BUMP             = Op(6) // BUMP
	OP_JUMP             = Op(7) // JUMP
	OP_JUMP_IF_ZERO     = Op(8) // JUMP_IF_ZERO
	OP_JUMP_IF_NEGATIVE = Op(9) // JUMP_IF_NEGATIVE
)

// Role is the kind of an instruction argument.
type Role int

//go:generate go tool stringer -linecomment -type=Role,ValueKind
const (
	ROLE_REGISTER  = Role(0) // register
	ROLE_INCREMENT = Role(1) // increment
	ROLE_LOCATION  = Role(2) // location
)

// Signature is the name and argument roles of an operation.
type Signature struct {
	Name  string
	Roles []Role
}

// signatures is the instruction set catalog.
var signatures = map[Op]Signature{
	OP_INBOX:            {"INBOX", nil},
	OP_OUTBOX:           {"OUTBOX", nil},
	OP_COPY_TO:          {"COPY_TO", []Role{ROLE_REGISTER}},
	OP_COPY_FROM:        {"COPY_FROM", []Role{ROLE_REGISTER}},
	OP_ADD:              {"ADD", []Role{ROLE_REGISTER}},
	OP_SUB:              {"SUB", []Role{ROLE_REGISTER}},
	OP_BUMP:             {"BUMP", []Role{ROLE_INCREMENT, ROLE_REGISTER}},
	OP_JUMP:             {"JUMP", []Role{ROLE_LOCATION}},
	OP_JUMP_IF_ZERO:     {"JUMP_IF_ZERO", []Role{ROLE_LOCATION}},
	OP_JUMP_IF_NEGATIVE: {"JUMP_IF_NEGATIVE", []Role{ROLE_LOCATION}},
}

// opMap maps upper case operation names to operations.
var opMap = func() map[string]Op {
	ops := make(map[string]Op, len(signatures))
	for op, sig := range signatures {
		ops[sig.Name] = op
	}
	return ops
}()

// Ops returns all operations of the instruction set, in opcode order.
func Ops() (ops []Op) {
	for op := OP_INBOX; op <= OP_JUMP_IF_NEGATIVE; op++ {
		ops = append(ops, op)
	}
	return
}

// LookupOp finds an operation by name, ignoring case.
func LookupOp(name string) (op Op, ok bool) {
	op, ok = opMap[strings.ToUpper(name)]
	return
}

// Signature returns the catalog entry of the operation.
func (op Op) Signature() (sig Signature, ok bool) {
	sig, ok = signatures[op]
	return
}

// Roles returns the argument roles of the operation.
func (op Op) Roles() []Role {
	return signatures[op].Roles
}

// IsJump returns true if the operation may move the program counter.
func (op Op) IsJump() bool {
	switch op {
	case OP_JUMP, OP_JUMP_IF_ZERO, OP_JUMP_IF_NEGATIVE:
		return true
	}
	return false
}

func (op Op) String() string {
	sig, ok := signatures[op]
	if !ok {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return sig.Name
}

// Instruction is a single compiled operation with its resolved arguments.
type Instruction struct {
	Op   Op    // Operation.
	Args []int // Register index, increment, or 1-based location; per Op.Roles().

	Block  string // Label of the source block.
	LineNo int    // 1-based line within the source block.
	Line   string // Source text.
}

// Arg returns the n'th argument, or 0 if missing.
func (ins *Instruction) Arg(n int) int {
	if n >= len(ins.Args) {
		return 0
	}
	return ins.Args[n]
}

// String returns the instruction as it would be written in source, with
// locations printed as numbers.
func (ins Instruction) String() string {
	words := []string{ins.Op.String()}
	roles := ins.Op.Roles()
	for n, arg := range ins.Args {
		if n < len(roles) && roles[n] == ROLE_INCREMENT {
			words = append(words, fmt.Sprintf("%+d", arg))
			continue
		}
		words = append(words, strconv.Itoa(arg))
	}

	return strings.Join(words, " ")
}
