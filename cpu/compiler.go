// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/hrm/internal"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":   "0",
	"LOCATION": "0",
}

// exprRegexp matches compile-time $(...) expressions.
var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// Compiler translates labeled code blocks into a Program.
type Compiler struct {
	Verbose   bool // If set, verbosely logs the compiler actions.
	Registers int  // Register count; REGISTER_COUNT if zero.

	predefine map[string]string
	Label     map[string]int    // Map of block labels to locations.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
// Equates substitute register and increment arguments, and are visible
// to $(...) expressions when they are integers.
func (cc *Compiler) Predefine(equ string, value string) {
	if cc.predefine == nil {
		cc.predefine = map[string]string{equ: value}
	} else {
		cc.predefine[equ] = value
	}
}

func (cc *Compiler) registers() int {
	if cc.Registers <= 0 {
		return REGISTER_COUNT
	}
	return cc.Registers
}

// Compile compiles the blocks, in order, into a Program.
// Either every line compiles, or no Program is returned.
func (cc *Compiler) Compile(blocks []CodeBlock) (prog *Program, err error) {
	registers := cc.registers()

	cc.Label = make(map[string]int, len(blocks))
	cc.Equate = maps.Clone(sysEquate)
	cc.Equate["REGISTERS"] = strconv.Itoa(registers)
	for attr, val := range cc.predefine {
		cc.Equate[attr] = val
	}

	// Block labels resolve to the location of the block's first line.
	location := 1
	for _, block := range blocks {
		if len(block.Label) == 0 {
			err = &ErrCompile{Block: block.Label, Err: ErrLabelInvalid}
			return
		}
		_, ok := cc.Label[block.Label]
		if ok {
			err = &ErrCompile{Block: block.Label, Err: ErrLabelDuplicate}
			return
		}
		cc.Label[block.Label] = location
		location += len(block.Lines)
	}
	count := location - 1

	instructions := make([]Instruction, 0, count)
	for _, block := range blocks {
		for n, line := range block.Lines {
			lineno := n + 1
			if cc.Verbose {
				log.Printf("%v:%v: %v", block.Label, lineno, line)
			}

			var ins Instruction
			ins, err = cc.compileLine(line, lineno, len(instructions)+1, count)
			if err != nil {
				var internalErr *ErrInternal
				if !errors.As(err, &internalErr) {
					err = &ErrCompile{Block: block.Label, LineNo: lineno, Line: line, Err: err}
				}
				return
			}
			ins.Block = block.Label
			ins.LineNo = lineno
			ins.Line = line
			instructions = append(instructions, ins)
		}
	}

	prog = &Program{
		Instructions: instructions,
		Labels:       maps.Clone(cc.Label),
		Registers:    registers,
	}

	return
}

// compileLine compiles a single source line at a 1-based location.
func (cc *Compiler) compileLine(line string, lineno int, location int, count int) (ins Instruction, err error) {
	cc.Equate["LINENO"] = strconv.Itoa(lineno)
	cc.Equate["LOCATION"] = strconv.Itoa(location)

	line, err = cc.expandLine(line)
	if err != nil {
		return
	}

	words := internal.Words(line)
	if len(words) == 0 {
		err = ErrOpcodeMissing
		return
	}

	op, ok := LookupOp(words[0])
	if !ok {
		err = ErrOpcodeUnknown(words[0])
		return
	}

	roles, err := signatureRoles(op)
	if err != nil {
		return
	}

	words = words[1:]
	if len(words) != len(roles) {
		err = ErrArgCount{Op: op, Got: len(words)}
		return
	}

	ins.Op = op
	ins.Args = make([]int, len(roles))
	for n, role := range roles {
		word := words[n]
		var arg int
		switch role {
		case ROLE_REGISTER:
			arg, err = cc.register(cc.substitute(word))
		case ROLE_INCREMENT:
			arg, err = cc.increment(cc.substitute(word))
		case ROLE_LOCATION:
			arg, err = cc.location(word, count)
		}
		if err != nil {
			return
		}
		ins.Args[n] = arg
	}

	return
}

// signatureRoles checks the catalog entry of an operation.
func signatureRoles(op Op) (roles []Role, err error) {
	sig, ok := op.Signature()
	if !ok {
		err = &ErrInternal{Op: op, Err: ErrSignatureMissing}
		return
	}

	for _, role := range sig.Roles {
		switch role {
		case ROLE_REGISTER, ROLE_INCREMENT, ROLE_LOCATION:
		default:
			err = &ErrInternal{Op: op, Err: fmt.Errorf("%w: %v", ErrRoleUnknown, role)}
			return
		}
	}

	roles = sig.Roles
	return
}

// substitute replaces a word with its equate, if any.
func (cc *Compiler) substitute(word string) string {
	equate, ok := cc.Equate[word]
	if ok {
		return equate
	}
	return word
}

func (cc *Compiler) register(word string) (index int, err error) {
	index, err = strconv.Atoi(word)
	if err != nil || index < 0 || index >= cc.registers() {
		err = ErrRegister(word)
		return
	}
	return
}

func (cc *Compiler) increment(word string) (value int, err error) {
	switch word {
	case "+1":
		value = 1
	case "-1":
		value = -1
	default:
		err = ErrIncrement(word)
	}
	return
}

func (cc *Compiler) location(label string, count int) (location int, err error) {
	location, ok := cc.Label[label]
	if !ok {
		err = ErrLabelMissing(label)
		return
	}
	if location < 1 || location > count {
		err = ErrJump(location)
		return
	}
	return
}

// expandLine does compile-time $(...) evaluations.
// Results are signed, so $(1) is also a valid increment.
func (cc *Compiler) expandLine(line string) (expanded string, err error) {
	expanded = exprRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := cc.parenEval(str[2 : len(str)-1])
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		if value >= 0 {
			return "+" + strconv.Itoa(value)
		}
		return strconv.Itoa(value)
	})
	return
}

// parenEval evaluates an expression against the integer equates.
func (cc *Compiler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{Name: "hrm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range cc.Equate {
		number, _err := strconv.Atoi(str)
		if _err != nil {
			// Non-integer equates are only word substitutions.
			continue
		}
		pred[key] = starlark.MakeInt(number)
	}

	prog := "rc=" + expr + "\n"
	dict, _err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if _err != nil {
		if cc.Verbose {
			log.Printf("$(%v): %v", expr, _err)
		}
		err = ErrExpression(strings.TrimSpace(expr))
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression(strings.TrimSpace(expr))
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrExpression(strings.TrimSpace(expr))
		return
	}

	value = int(st_int64)
	return
}
