package emulator

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	ErrFloorInvalid = errors.New(f("floor register invalid"))
)

type ErrFloor int

func (ef ErrFloor) Error() string {
	return f("floor register %v out of range", int(ef))
}

func (ef ErrFloor) Unwrap() error {
	return ErrFloorInvalid
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Location int    // 1-based location of the failing instruction.
	Trace    string // Trace string of the failing instruction.
	Err      error
}

func (err *ErrRuntime) Error() string {
	return f("%v: %v", err.Trace, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
