package script

import (
	"errors"

	"github.com/ezrec/alpha/translate"
)

var f = translate.From

var (
	ErrNoConfig       = errors.New(f("script never calls config()"))
	ErrConfigRepeated = errors.New(f("config() called more than once"))
	ErrOperandType    = errors.New(f("not an accumulator or cell; use acc() or cell()"))
	ErrLiteralRange   = errors.New(f("literal does not fit in 32 bits"))
	ErrCellsType      = errors.New(f("cells must be a count or a list of addresses"))
)

// ErrArgument reports a bad argument to a script builtin.
type ErrArgument struct {
	Name string // Parameter name.
	Err  error
}

func (err *ErrArgument) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrArgument) Unwrap() error {
	return err.Err
}

// ErrLiteral reports a literal that is not a 32-bit integer.
type ErrLiteral string

func (err ErrLiteral) Error() string {
	return f("literal %v does not fit in 32 bits", string(err))
}

func (err ErrLiteral) Unwrap() error {
	return ErrLiteralRange
}
