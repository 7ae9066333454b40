package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		inst   Instruction
		expect string
	}){
		{AccFromAcc{U: 0, V: 1}, "α0 := α1"},
		{AccFromCell{U: 1, I: 3}, "α1 := ρ(3)"},
		{CellFromAcc{I: 2, U: 0}, "ρ(2) := α0"},
		{CellFromLiteral{I: 2, K: -4}, "ρ(2) := -4"},
		{AccFromLiteral{U: 0, K: 10}, "α0 := 10"},
		{AccOpLiteral{U: 0, Op: OP_MUL, K: 2}, "α0 := α0 * 2"},
		{AccOpAcc{U: 0, Op: OP_ADD, V: 1}, "α0 := α0 + α1"},
		{AccFromAccOpAcc{U: 0, Op: OP_SUB, V: 1, W: 2}, "α0 := α1 - α2"},
		{AccOpCell{U: 1, Op: OP_DIV, I: 0}, "α1 := α1 / ρ(0)"},
		{AccFromCellOpCell{U: 0, I: 1, Op: OP_ADD, J: 2}, "α0 := ρ(1) + ρ(2)"},
		{CellFromCellOpLiteral{I: 0, J: 1, Op: OP_MUL, K: 4}, "ρ(0) := ρ(1) * 4"},
		{CellFromCellOpAcc{I: 0, J: 0, Op: OP_SUB, U: 1}, "ρ(0) := ρ(0) - α1"},
		{CellFromCell{I: 3, J: 4}, "ρ(3) := ρ(4)"},
		{JumpIfAccCmpAcc{U: 0, Cmp: CMP_LT, V: 1, Label: "loop"}, "if α0 < α1 then goto loop"},
		{JumpIfAccCmpLiteral{U: 0, Cmp: CMP_EQ, K: 13, Label: "end"}, "if α0 = 13 then goto end"},
		{JumpIfAccCmpCell{U: 2, Cmp: CMP_GE, I: 1, Label: "x"}, "if α2 ≥ ρ(1) then goto x"},
		{Jump{Label: "end"}, "goto end"},
		{Push{}, "push"},
		{Pop{}, "pop"},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, entry.inst.String())
	}
}

func TestInstruction_Operands(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]Operand{Acc(0), Acc(1), Acc(2)},
		AccFromAccOpAcc{U: 0, Op: OP_ADD, V: 1, W: 2}.Operands())
	assert.Equal([]Operand{Cell(0), Cell(1), Lit(4)},
		CellFromCellOpLiteral{I: 0, J: 1, Op: OP_MUL, K: 4}.Operands())
	assert.Equal([]Operand{Acc(3), Cell(7)},
		JumpIfAccCmpCell{U: 3, Cmp: CMP_EQ, I: 7, Label: "l"}.Operands())
	assert.Empty(Jump{Label: "l"}.Operands())
	assert.Empty(Push{}.Operands())
	assert.Empty(Pop{}.Operands())
}

func TestInstruction_Interfaces(t *testing.T) {
	assert := assert.New(t)

	var inst Instruction = AccOpCell{U: 1, Op: OP_SUB, I: 2}
	arith, ok := inst.(Arithmetic)
	assert.True(ok)
	assert.Equal(OP_SUB, arith.Operator())

	_, ok = inst.(Jumper)
	assert.False(ok)

	inst = JumpIfAccCmpLiteral{U: 0, Cmp: CMP_GT, K: 0, Label: "loop"}
	cond, ok := inst.(Conditional)
	assert.True(ok)
	assert.Equal(CMP_GT, cond.Condition())
	assert.Equal("loop", cond.Target())

	inst = Jump{Label: "end"}
	_, ok = inst.(Conditional)
	assert.False(ok)
	jump, ok := inst.(Jumper)
	assert.True(ok)
	assert.Equal("end", jump.Target())
}

func TestOperand(t *testing.T) {
	assert := assert.New(t)

	assert.True(Lit(3).IsLiteral())
	assert.True(Acc(3).IsAccumulator())
	assert.True(Cell(3).IsCell())
	assert.False(Cell(3).IsAccumulator())
	assert.Equal("α3", Acc(3).String())
	assert.Equal("ρ(3)", Cell(3).String())
	assert.Equal("-3", Lit(-3).String())
	assert.Equal("cell", OPERAND_CELL.String())
	assert.Equal("OperandKind(9)", OperandKind(9).String())
}
