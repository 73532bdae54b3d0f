package solution

import (
	"errors"

	"github.com/ezrec/hrm/translate"
)

var f = translate.From

var (
	ErrSolutionMissing    = errors.New(f("solution missing"))
	ErrSolutionIncomplete = errors.New(f("solution incomplete"))
	ErrCodeSyntax         = errors.New(f("code must map labels to lists of lines"))
	ErrTargetSyntax       = errors.New(f("target must be path[:name...]"))
)

// ErrNotFound is a solution name not present in the configuration.
type ErrNotFound string

func (err ErrNotFound) Error() string {
	return f("solution %v not found", string(err))
}

func (err ErrNotFound) Unwrap() error {
	return ErrSolutionMissing
}

// ErrIncomplete is a solution missing a required field.
type ErrIncomplete struct {
	Name  string
	Field string
}

func (err ErrIncomplete) Error() string {
	return f("solution %v has no %v", err.Name, err.Field)
}

func (err ErrIncomplete) Unwrap() error {
	return ErrSolutionIncomplete
}
