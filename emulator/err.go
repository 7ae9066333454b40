package emulator

import (
	"errors"

	"github.com/ezrec/alpha/isa"
	"github.com/ezrec/alpha/machine"
	"github.com/ezrec/alpha/translate"
)

var f = translate.From

var (
	ErrNoProgram = errors.New(f("no program loaded"))
	ErrStepLimit = errors.New(f("step limit reached"))
)

// ErrRuntime indicates the location of a runtime error. Err is the
// *machine.Fault for faults, or ErrStepLimit.
type ErrRuntime struct {
	Index       int             // Instruction index.
	Label       string          // Nearest label at or before the instruction.
	Instruction isa.Instruction // Faulting instruction.
	Err         error
}

func (err *ErrRuntime) Error() string {
	// A machine fault already names the instruction; only its kind is shown.
	cause := err.Err
	var fault *machine.Fault
	if errors.As(cause, &fault) {
		cause = fault.Kind
	}

	if len(err.Label) == 0 {
		return f("instruction %d '%v': %v", err.Index, err.Instruction, cause)
	}
	return f("instruction %d (%v) '%v': %v", err.Index, err.Label, err.Instruction, cause)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
