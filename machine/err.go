package machine

import (
	"errors"
	"strings"

	"github.com/ezrec/alpha/isa"
	"github.com/ezrec/alpha/translate"
)

var f = translate.From

var (
	// Validation errors
	ErrUnknownAccumulator = errors.New(f("unknown accumulator"))
	ErrUnknownCell        = errors.New(f("unknown memory cell"))
	ErrNoCellsConfigured  = errors.New(f("no memory cells configured"))
	ErrDuplicateLabel     = errors.New(f("label duplicated"))
	ErrUnresolvedLabel    = errors.New(f("label unresolved"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrConfigInvalid      = errors.New(f("configuration invalid"))
	ErrOpInvalid          = isa.ErrOpInvalid
	ErrCmpInvalid         = isa.ErrCmpInvalid

	// Runtime faults
	ErrDivisionByZero = isa.ErrDivisionByZero
	ErrStackUnderflow = errors.New(f("stack empty"))
)

// Problem is a single validation failure.
type Problem struct {
	Kind    error  // One of the validation errors.
	Index   int    // Offending instruction index, -1 for the configuration.
	Operand int    // Offending accumulator or cell index, if any.
	Label   string // Offending label, if any.
}

func (p *Problem) Error() string {
	var detail string
	switch {
	case len(p.Label) != 0:
		detail = f(" '%v'", p.Label)
	case p.Kind == ErrUnknownAccumulator:
		detail = " " + isa.Acc(p.Operand).String()
	case p.Kind == ErrUnknownCell:
		detail = " " + isa.Cell(p.Operand).String()
	}

	if p.Index < 0 {
		return f("configuration: %v%v", p.Kind, detail)
	}
	return f("instruction %d: %v%v", p.Index, p.Kind, detail)
}

func (p *Problem) Unwrap() error {
	return p.Kind
}

// ValidationError collects every problem found in a program.
type ValidationError struct {
	Problems []*Problem
}

func (err *ValidationError) Error() string {
	lines := make([]string, 0, len(err.Problems))
	for _, p := range err.Problems {
		lines = append(lines, p.Error())
	}
	return strings.Join(lines, "\n")
}

func (err *ValidationError) Unwrap() []error {
	errs := make([]error, len(err.Problems))
	for n, p := range err.Problems {
		errs[n] = p
	}
	return errs
}

// Fault is a runtime failure. The run stops at the faulting instruction.
type Fault struct {
	Kind        error // ErrDivisionByZero, ErrStackUnderflow or ErrUnresolvedLabel.
	Index       int   // Faulting instruction index.
	Instruction isa.Instruction
}

func (err *Fault) Error() string {
	return f("instruction %d '%v': %v", err.Index, err.Instruction, err.Kind)
}

func (err *Fault) Unwrap() error {
	return err.Kind
}
