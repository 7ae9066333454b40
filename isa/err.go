package isa

import (
	"errors"

	"github.com/ezrec/alpha/translate"
)

var f = translate.From

var (
	ErrDivisionByZero = errors.New(f("division by zero"))
	ErrOpInvalid      = errors.New(f("operator invalid"))
	ErrCmpInvalid     = errors.New(f("comparison invalid"))
)

// ErrParseOp is returned when a symbol is not an arithmetic operator.
type ErrParseOp string

func (err ErrParseOp) Error() string {
	return f("'%v' is not an operator", string(err))
}

func (err ErrParseOp) Unwrap() error {
	return ErrOpInvalid
}

// ErrParseCmp is returned when a symbol is not a comparison.
type ErrParseCmp string

func (err ErrParseCmp) Error() string {
	return f("'%v' is not a comparison", string(err))
}

func (err ErrParseCmp) Unwrap() error {
	return ErrCmpInvalid
}
