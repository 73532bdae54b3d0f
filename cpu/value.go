package cpu

import (
	"strconv"

	"github.com/ezrec/hrm/internal"
)

// ValueKind is the content type of a Value.
type ValueKind int

const (
	VALUE_EMPTY  = ValueKind(0) // empty
	VALUE_NUMBER = ValueKind(1) // number
	VALUE_LETTER = ValueKind(2) // letter
)

// Value is the content of a slot: empty, a number, or a letter (any other token).
// The zero Value is empty.
type Value struct {
	Kind   ValueKind
	Token  string // Original token text.
	Number int    // Parsed value, valid for VALUE_NUMBER.
}

// MakeValue classifies a token.
func MakeValue(token string) (value Value) {
	if len(token) == 0 {
		return
	}

	value.Token = token
	number, err := strconv.Atoi(token)
	if err != nil {
		value.Kind = VALUE_LETTER
		return
	}

	value.Kind = VALUE_NUMBER
	value.Number = number
	return
}

// MakeNumber creates a numeric value.
func MakeNumber(number int) Value {
	return Value{Kind: VALUE_NUMBER, Token: strconv.Itoa(number), Number: number}
}

// Empty returns true if the slot holds nothing.
func (value Value) Empty() bool {
	return value.Kind == VALUE_EMPTY
}

// Int returns the numeric content of the value.
func (value Value) Int() (number int, err error) {
	switch value.Kind {
	case VALUE_EMPTY:
		err = ErrValueEmpty
	case VALUE_NUMBER:
		number = value.Number
	default:
		err = ErrNotNumber(value.Token)
	}
	return
}

// String returns the original token, or '-' when empty.
func (value Value) String() string {
	if value.Empty() {
		return internal.EMPTY
	}
	return value.Token
}

// add returns a + b, or ErrValueOverflow.
func add(a, b int) (sum int, err error) {
	sum = a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		err = ErrValueOverflow
	}
	return
}

// sub returns a - b, or ErrValueOverflow.
func sub(a, b int) (diff int, err error) {
	diff = a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		err = ErrValueOverflow
	}
	return
}
