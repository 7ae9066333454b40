package machine

import (
	"fmt"

	"github.com/ezrec/alpha/isa"
)

// Outcome describes what a step did to the program counter.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_NEXT = Outcome(0) // next
	OUTCOME_JUMP = Outcome(1) // jump
	OUTCOME_HALT = Outcome(2) // halt
)

// Step executes the instruction at st.PC.
//
// The outcome is OUTCOME_HALT once PC has left the program, whether by this
// step or an earlier one; stepping a halted state changes nothing. A jump that
// is taken reports OUTCOME_JUMP, anything else OUTCOME_NEXT.
//
// On a fault Step returns a *Fault and leaves st exactly as it was before the
// step. Register indices are not checked: the program must have passed
// Validate against the configuration st was created from.
func Step(prog *isa.Program, st *State) (outcome Outcome, err error) {
	if st.Halted {
		return OUTCOME_HALT, nil
	}

	pc := st.PC
	entry, ok := prog.At(pc)
	if !ok {
		st.Halted = true
		return OUTCOME_HALT, nil
	}

	defer func() {
		if err != nil {
			err = &Fault{Kind: err, Index: pc, Instruction: entry.Instruction}
		}
	}()

	acc := st.Accumulators
	cell := st.Cells

	next := pc + 1
	jumped := false
	var value int32

	jump := func() {
		target, ok := prog.Target(pc)
		if !ok {
			err = ErrUnresolvedLabel
			return
		}
		next = target
		jumped = true
	}

	switch in := entry.Instruction.(type) {
	case isa.AccFromAcc:
		acc[in.U] = acc[in.V]
	case isa.AccFromCell:
		acc[in.U] = cell[in.I]
	case isa.CellFromAcc:
		cell[in.I] = acc[in.U]
	case isa.CellFromLiteral:
		cell[in.I] = in.K
	case isa.AccFromLiteral:
		acc[in.U] = in.K
	case isa.AccOpLiteral:
		value, err = in.Op.Apply(acc[in.U], in.K)
		if err == nil {
			acc[in.U] = value
		}
	case isa.AccOpAcc:
		value, err = in.Op.Apply(acc[in.U], acc[in.V])
		if err == nil {
			acc[in.U] = value
		}
	case isa.AccFromAccOpAcc:
		value, err = in.Op.Apply(acc[in.V], acc[in.W])
		if err == nil {
			acc[in.U] = value
		}
	case isa.AccOpCell:
		value, err = in.Op.Apply(acc[in.U], cell[in.I])
		if err == nil {
			acc[in.U] = value
		}
	case isa.AccFromCellOpCell:
		value, err = in.Op.Apply(cell[in.I], cell[in.J])
		if err == nil {
			acc[in.U] = value
		}
	case isa.CellFromCellOpLiteral:
		value, err = in.Op.Apply(cell[in.J], in.K)
		if err == nil {
			cell[in.I] = value
		}
	case isa.CellFromCellOpAcc:
		value, err = in.Op.Apply(cell[in.J], acc[in.U])
		if err == nil {
			cell[in.I] = value
		}
	case isa.CellFromCell:
		cell[in.I] = cell[in.J]
	case isa.JumpIfAccCmpAcc:
		if in.Cmp.Compare(acc[in.U], acc[in.V]) {
			jump()
		}
	case isa.JumpIfAccCmpLiteral:
		if in.Cmp.Compare(acc[in.U], in.K) {
			jump()
		}
	case isa.JumpIfAccCmpCell:
		if in.Cmp.Compare(acc[in.U], cell[in.I]) {
			jump()
		}
	case isa.Jump:
		jump()
	case isa.Push:
		st.Stack.Push(st.Load(st.StackRegister))
	case isa.Pop:
		value, ok = st.Stack.Pop()
		if !ok {
			err = ErrStackUnderflow
		} else {
			st.Store(st.StackRegister, value)
		}
	default:
		panic(fmt.Sprintf("machine: unknown instruction %T at %d", in, pc))
	}

	if err != nil {
		return
	}

	st.PC = next
	st.Steps++

	switch {
	case st.PC < 0 || st.PC >= prog.Len():
		st.Halted = true
		outcome = OUTCOME_HALT
	case jumped:
		outcome = OUTCOME_JUMP
	default:
		outcome = OUTCOME_NEXT
	}

	return
}

// Run validates a program, then executes it from a fresh state until it
// halts.
//
// A validation failure returns a *ValidationError and no state. A fault
// returns the state as it was when the faulting instruction was reached.
// Run has no step bound; a program that loops forever never returns. Hosts
// that need a bound drive Step themselves.
func Run(prog *isa.Program, cfg Config) (st *State, err error) {
	err = Validate(prog, cfg)
	if err != nil {
		return
	}

	st = NewState(cfg)
	for !st.Halted {
		_, err = Step(prog, st)
		if err != nil {
			return
		}
	}

	return
}
