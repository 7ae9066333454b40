package isa

import (
	"fmt"
)

// OperandKind tells what an Operand refers to.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_LITERAL     = OperandKind(0) // literal
	OPERAND_ACCUMULATOR = OperandKind(1) // accumulator
	OPERAND_CELL        = OperandKind(2) // cell
)

// Operand is a literal integer, a reference to accumulator αu, or a
// reference to memory cell ρ(i).
//
// Indices are not checked against any machine configuration here; that is
// the job of the validator.
type Operand struct {
	Kind  OperandKind
	Index int   // Accumulator or cell index.
	Value int32 // Literal value.
}

// Lit returns a literal operand.
func Lit(k int32) Operand {
	return Operand{Kind: OPERAND_LITERAL, Value: k}
}

// Acc returns an accumulator operand.
func Acc(u int) Operand {
	return Operand{Kind: OPERAND_ACCUMULATOR, Index: u}
}

// Cell returns a memory cell operand.
func Cell(i int) Operand {
	return Operand{Kind: OPERAND_CELL, Index: i}
}

// IsLiteral is true for literal operands.
func (op Operand) IsLiteral() bool {
	return op.Kind == OPERAND_LITERAL
}

// IsAccumulator is true for accumulator operands.
func (op Operand) IsAccumulator() bool {
	return op.Kind == OPERAND_ACCUMULATOR
}

// IsCell is true for memory cell operands.
func (op Operand) IsCell() bool {
	return op.Kind == OPERAND_CELL
}

// String renders the operand in Alpha-Notation.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_ACCUMULATOR:
		return fmt.Sprintf("α%d", op.Index)
	case OPERAND_CELL:
		return fmt.Sprintf("ρ(%d)", op.Index)
	default:
		return fmt.Sprintf("%d", op.Value)
	}
}
