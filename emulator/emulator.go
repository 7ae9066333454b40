// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator hosts Alpha-Notation programs: it loads and validates a
// program, steps it under a step budget, and renders the machine state.
package emulator

import (
	"context"
	"log"

	"github.com/ezrec/alpha/isa"
	"github.com/ezrec/alpha/machine"
)

const (
	DEFAULT_STEP_LIMIT = 100_000 // Steps allowed to a Run with no explicit limit.
)

// Emulator state. Program + configuration + machine state.
type Emulator struct {
	Verbose bool           // If set, enables verbose logging.
	Config  machine.Config // Machine the program runs on.
	*machine.State         // Current machine state.

	program *isa.Program
}

// NewEmulator creates a new emulator for a machine configuration.
func NewEmulator(cfg machine.Config) (emu *Emulator) {
	emu = &Emulator{
		Config: cfg.Clone(),
		State:  machine.NewState(cfg),
	}

	return
}

// Program returns the loaded program, or nil.
func (emu *Emulator) Program() *isa.Program {
	return emu.program
}

// Load validates a program against the configuration, and makes it the
// current program. The machine is reset.
func (emu *Emulator) Load(prog *isa.Program) (err error) {
	err = machine.Validate(prog, emu.Config)
	if err != nil {
		return
	}

	emu.program = prog
	emu.Reset()

	if emu.Verbose {
		log.Printf("emulator: loaded %d instructions", prog.Len())
	}

	return
}

// Reset the machine to its initial state.
func (emu *Emulator) Reset() {
	emu.State = machine.NewState(emu.Config)

	if emu.Verbose {
		log.Printf("emulator: reset")
	}
}

// Steps returns the total steps since a reset.
func (emu *Emulator) Steps() int {
	return emu.State.Steps
}

// Label returns the nearest label at or before the current instruction.
func (emu *Emulator) Label() string {
	if emu.program == nil {
		return ""
	}
	label, _ := emu.program.LabelAt(emu.State.PC)
	return label
}

// Instruction returns the instruction at the current PC, or nil.
func (emu *Emulator) Instruction() isa.Instruction {
	if emu.program == nil {
		return nil
	}
	entry, _ := emu.program.At(emu.State.PC)
	return entry.Instruction
}

// Tick performs a single step of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.program == nil {
		err = ErrNoProgram
		return
	}

	pc := emu.State.PC
	label := emu.Label()
	inst := emu.Instruction()

	defer func() {
		if err != nil {
			err = &ErrRuntime{Index: pc, Label: label, Instruction: inst, Err: err}
		}
	}()

	outcome, err := machine.Step(emu.program, emu.State)
	if err != nil {
		return
	}

	if emu.Verbose && inst != nil {
		log.Printf("%03d: %-24v %v", pc, inst, outcome)
	}

	done = outcome == machine.OUTCOME_HALT
	return
}

// Run ticks until the program halts, faults, exhausts limit steps, or ctx is
// done. A limit of zero or less selects DEFAULT_STEP_LIMIT.
//
// The limit counts steps taken by this call, not since reset, so Run may be
// called again to continue a program that hit ErrStepLimit.
func (emu *Emulator) Run(ctx context.Context, limit int) (err error) {
	if limit <= 0 {
		limit = DEFAULT_STEP_LIMIT
	}

	for range limit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	if emu.State.Halted {
		return nil
	}

	if emu.Verbose {
		log.Printf("emulator: step limit %d reached at %d", limit, emu.State.PC)
	}

	return &ErrRuntime{
		Index:       emu.State.PC,
		Label:       emu.Label(),
		Instruction: emu.Instruction(),
		Err:         ErrStepLimit,
	}
}
