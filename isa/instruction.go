package isa

import (
	"fmt"
)

// Instruction is one of the nineteen Alpha-Notation instruction shapes.
//
// The set is closed: only the types in this package implement it.
type Instruction interface {
	// Operands lists every operand in order of appearance, destination first.
	Operands() []Operand
	// String renders the instruction in Alpha-Notation.
	String() string

	instruction()
}

// Arithmetic is implemented by the instructions that apply an Op.
type Arithmetic interface {
	Instruction
	Operator() Op
}

// Jumper is implemented by the instructions that may transfer control to a
// label.
type Jumper interface {
	Instruction
	Target() string
}

// Conditional is implemented by the jumps guarded by a comparison.
type Conditional interface {
	Jumper
	Condition() Cmp
}

// AccFromAcc is αu := αv.
type AccFromAcc struct{ U, V int }

// AccFromCell is αu := ρ(i).
type AccFromCell struct{ U, I int }

// CellFromAcc is ρ(i) := αu.
type CellFromAcc struct{ I, U int }

// CellFromLiteral is ρ(i) := k.
type CellFromLiteral struct {
	I int
	K int32
}

// AccFromLiteral is αu := k.
type AccFromLiteral struct {
	U int
	K int32
}

// AccOpLiteral is αu := αu op k.
type AccOpLiteral struct {
	U  int
	Op Op
	K  int32
}

// AccOpAcc is αu := αu op αv.
type AccOpAcc struct {
	U  int
	Op Op
	V  int
}

// AccFromAccOpAcc is αu := αv op αw.
type AccFromAccOpAcc struct {
	U  int
	Op Op
	V  int
	W  int
}

// AccOpCell is αu := αu op ρ(i).
type AccOpCell struct {
	U  int
	Op Op
	I  int
}

// AccFromCellOpCell is αu := ρ(i) op ρ(j).
type AccFromCellOpCell struct {
	U  int
	I  int
	Op Op
	J  int
}

// CellFromCellOpLiteral is ρ(i) := ρ(j) op k.
type CellFromCellOpLiteral struct {
	I  int
	J  int
	Op Op
	K  int32
}

// CellFromCellOpAcc is ρ(i) := ρ(j) op αu.
type CellFromCellOpAcc struct {
	I  int
	J  int
	Op Op
	U  int
}

// CellFromCell is ρ(i) := ρ(j).
type CellFromCell struct{ I, J int }

// JumpIfAccCmpAcc is: if αu cmp αv then goto label.
type JumpIfAccCmpAcc struct {
	U     int
	Cmp   Cmp
	V     int
	Label string
}

// JumpIfAccCmpLiteral is: if αu cmp k then goto label.
type JumpIfAccCmpLiteral struct {
	U     int
	Cmp   Cmp
	K     int32
	Label string
}

// JumpIfAccCmpCell is: if αu cmp ρ(i) then goto label.
type JumpIfAccCmpCell struct {
	U     int
	Cmp   Cmp
	I     int
	Label string
}

// Jump is: goto label.
type Jump struct{ Label string }

// Push pushes the stack register onto the stack.
type Push struct{}

// Pop pops the top of the stack into the stack register.
type Pop struct{}

func (AccFromAcc) instruction()            {}
func (AccFromCell) instruction()           {}
func (CellFromAcc) instruction()           {}
func (CellFromLiteral) instruction()       {}
func (AccFromLiteral) instruction()        {}
func (AccOpLiteral) instruction()          {}
func (AccOpAcc) instruction()              {}
func (AccFromAccOpAcc) instruction()       {}
func (AccOpCell) instruction()             {}
func (AccFromCellOpCell) instruction()     {}
func (CellFromCellOpLiteral) instruction() {}
func (CellFromCellOpAcc) instruction()     {}
func (CellFromCell) instruction()          {}
func (JumpIfAccCmpAcc) instruction()       {}
func (JumpIfAccCmpLiteral) instruction()   {}
func (JumpIfAccCmpCell) instruction()      {}
func (Jump) instruction()                  {}
func (Push) instruction()                  {}
func (Pop) instruction()                   {}

func (in AccFromAcc) Operands() []Operand { return []Operand{Acc(in.U), Acc(in.V)} }
func (in AccFromCell) Operands() []Operand { return []Operand{Acc(in.U), Cell(in.I)} }
func (in CellFromAcc) Operands() []Operand { return []Operand{Cell(in.I), Acc(in.U)} }
func (in CellFromLiteral) Operands() []Operand { return []Operand{Cell(in.I), Lit(in.K)} }
func (in AccFromLiteral) Operands() []Operand { return []Operand{Acc(in.U), Lit(in.K)} }
func (in AccOpLiteral) Operands() []Operand { return []Operand{Acc(in.U), Lit(in.K)} }
func (in AccOpAcc) Operands() []Operand { return []Operand{Acc(in.U), Acc(in.V)} }
func (in AccFromAccOpAcc) Operands() []Operand {
	return []Operand{Acc(in.U), Acc(in.V), Acc(in.W)}
}
func (in AccOpCell) Operands() []Operand { return []Operand{Acc(in.U), Cell(in.I)} }
func (in AccFromCellOpCell) Operands() []Operand {
	return []Operand{Acc(in.U), Cell(in.I), Cell(in.J)}
}
func (in CellFromCellOpLiteral) Operands() []Operand {
	return []Operand{Cell(in.I), Cell(in.J), Lit(in.K)}
}
func (in CellFromCellOpAcc) Operands() []Operand {
	return []Operand{Cell(in.I), Cell(in.J), Acc(in.U)}
}
func (in CellFromCell) Operands() []Operand       { return []Operand{Cell(in.I), Cell(in.J)} }
func (in JumpIfAccCmpAcc) Operands() []Operand     { return []Operand{Acc(in.U), Acc(in.V)} }
func (in JumpIfAccCmpLiteral) Operands() []Operand { return []Operand{Acc(in.U), Lit(in.K)} }
func (in JumpIfAccCmpCell) Operands() []Operand    { return []Operand{Acc(in.U), Cell(in.I)} }

// The stack register is part of the machine configuration, so push and pop
// carry no operands of their own.
func (Jump) Operands() []Operand { return nil }
func (Push) Operands() []Operand { return nil }
func (Pop) Operands() []Operand  { return nil }

func (in AccOpLiteral) Operator() Op          { return in.Op }
func (in AccOpAcc) Operator() Op              { return in.Op }
func (in AccFromAccOpAcc) Operator() Op       { return in.Op }
func (in AccOpCell) Operator() Op             { return in.Op }
func (in AccFromCellOpCell) Operator() Op     { return in.Op }
func (in CellFromCellOpLiteral) Operator() Op { return in.Op }
func (in CellFromCellOpAcc) Operator() Op     { return in.Op }

func (in JumpIfAccCmpAcc) Target() string     { return in.Label }
func (in JumpIfAccCmpLiteral) Target() string { return in.Label }
func (in JumpIfAccCmpCell) Target() string    { return in.Label }
func (in Jump) Target() string                { return in.Label }

func (in JumpIfAccCmpAcc) Condition() Cmp     { return in.Cmp }
func (in JumpIfAccCmpLiteral) Condition() Cmp { return in.Cmp }
func (in JumpIfAccCmpCell) Condition() Cmp    { return in.Cmp }

func (in AccFromAcc) String() string {
	return fmt.Sprintf("%v := %v", Acc(in.U), Acc(in.V))
}

func (in AccFromCell) String() string {
	return fmt.Sprintf("%v := %v", Acc(in.U), Cell(in.I))
}

func (in CellFromAcc) String() string {
	return fmt.Sprintf("%v := %v", Cell(in.I), Acc(in.U))
}

func (in CellFromLiteral) String() string {
	return fmt.Sprintf("%v := %v", Cell(in.I), Lit(in.K))
}

func (in AccFromLiteral) String() string {
	return fmt.Sprintf("%v := %v", Acc(in.U), Lit(in.K))
}

func (in AccOpLiteral) String() string {
	return fmt.Sprintf("%v := %v %v %v", Acc(in.U), Acc(in.U), in.Op, Lit(in.K))
}

func (in AccOpAcc) String() string {
	return fmt.Sprintf("%v := %v %v %v", Acc(in.U), Acc(in.U), in.Op, Acc(in.V))
}

func (in AccFromAccOpAcc) String() string {
	return fmt.Sprintf("%v := %v %v %v", Acc(in.U), Acc(in.V), in.Op, Acc(in.W))
}

func (in AccOpCell) String() string {
	return fmt.Sprintf("%v := %v %v %v", Acc(in.U), Acc(in.U), in.Op, Cell(in.I))
}

func (in AccFromCellOpCell) String() string {
	return fmt.Sprintf("%v := %v %v %v", Acc(in.U), Cell(in.I), in.Op, Cell(in.J))
}

func (in CellFromCellOpLiteral) String() string {
	return fmt.Sprintf("%v := %v %v %v", Cell(in.I), Cell(in.J), in.Op, Lit(in.K))
}

func (in CellFromCellOpAcc) String() string {
	return fmt.Sprintf("%v := %v %v %v", Cell(in.I), Cell(in.J), in.Op, Acc(in.U))
}

func (in CellFromCell) String() string {
	return fmt.Sprintf("%v := %v", Cell(in.I), Cell(in.J))
}

func (in JumpIfAccCmpAcc) String() string {
	return fmt.Sprintf("if %v %v %v then goto %v", Acc(in.U), in.Cmp, Acc(in.V), in.Label)
}

func (in JumpIfAccCmpLiteral) String() string {
	return fmt.Sprintf("if %v %v %v then goto %v", Acc(in.U), in.Cmp, Lit(in.K), in.Label)
}

func (in JumpIfAccCmpCell) String() string {
	return fmt.Sprintf("if %v %v %v then goto %v", Acc(in.U), in.Cmp, Cell(in.I), in.Label)
}

func (in Jump) String() string {
	return fmt.Sprintf("goto %v", in.Label)
}

func (Push) String() string { return "push" }
func (Pop) String() string  { return "pop" }
