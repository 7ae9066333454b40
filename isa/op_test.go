package isa

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOp_Apply(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op     Op
		a, b   int32
		expect int32
	}){
		{OP_ADD, 20, 5, 25},
		{OP_SUB, 20, 5, 15},
		{OP_MUL, 20, 5, 100},
		{OP_DIV, 20, 5, 4},
		{OP_DIV, 7, 2, 3},
		{OP_DIV, -7, 2, -3},
		{OP_DIV, 7, -2, -3},
		{OP_ADD, math.MaxInt32, 1, math.MinInt32},
		{OP_SUB, math.MinInt32, 1, math.MaxInt32},
		{OP_DIV, math.MinInt32, -1, math.MinInt32},
	}

	for _, entry := range table {
		value, err := entry.op.Apply(entry.a, entry.b)
		assert.NoError(err, "%d %v %d", entry.a, entry.op, entry.b)
		assert.Equal(entry.expect, value, "%d %v %d", entry.a, entry.op, entry.b)
	}
}

func TestOp_Apply_DivisionByZero(t *testing.T) {
	assert := assert.New(t)

	value, err := OP_DIV.Apply(10, 0)
	assert.ErrorIs(err, ErrDivisionByZero)
	assert.Equal(int32(0), value)

	_, err = Op(9).Apply(1, 1)
	assert.ErrorIs(err, ErrOpInvalid)
}

func TestCmp_Compare(t *testing.T) {
	assert := assert.New(t)

	assert.True(CMP_LT.Compare(5, 10))
	assert.False(CMP_LT.Compare(10, 10))
	assert.True(CMP_LE.Compare(5, 10))
	assert.True(CMP_LE.Compare(10, 10))
	assert.True(CMP_EQ.Compare(10, 10))
	assert.False(CMP_EQ.Compare(10, 5))
	assert.True(CMP_GE.Compare(10, 5))
	assert.True(CMP_GE.Compare(10, 10))
	assert.True(CMP_GT.Compare(10, 5))
	assert.False(CMP_GT.Compare(10, 10))
	assert.False(Cmp(-1).Compare(1, 1))
}

func TestParseOp(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Op{OP_ADD, OP_SUB, OP_MUL, OP_DIV} {
		parsed, err := ParseOp(op.String())
		assert.NoError(err)
		assert.Equal(op, parsed)
	}

	_, err := ParseOp("%")
	assert.ErrorIs(err, ErrOpInvalid)
	assert.Equal(ErrParseOp("%"), err)
}

func TestParseCmp(t *testing.T) {
	assert := assert.New(t)

	table := map[string]Cmp{
		"<":  CMP_LT,
		"<=": CMP_LE,
		"≤":  CMP_LE,
		"=":  CMP_EQ,
		"==": CMP_EQ,
		">=": CMP_GE,
		"≥":  CMP_GE,
		">":  CMP_GT,
	}

	for symbol, expect := range table {
		cmp, err := ParseCmp(symbol)
		assert.NoError(err, symbol)
		assert.Equal(expect, cmp, symbol)
	}

	_, err := ParseCmp("!=")
	assert.ErrorIs(err, ErrCmpInvalid)
}

func TestOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("/", OP_DIV.String())
	assert.Equal("Op(7)", Op(7).String())
	assert.Equal("≥", CMP_GE.String())
	assert.Equal("Cmp(5)", Cmp(5).String())
	assert.True(OP_MUL.Valid())
	assert.False(Op(4).Valid())
	assert.True(CMP_GT.Valid())
	assert.False(Cmp(-1).Valid())
}

func TestSymbols(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value  fmt.Stringer
		expect string
	}){
		{OP_ADD, "+"},
		{OP_SUB, "-"},
		{OP_MUL, "*"},
		{OP_DIV, "/"},
		{Op(-1), "Op(-1)"},
		{CMP_LT, "<"},
		{CMP_LE, "≤"},
		{CMP_EQ, "="},
		{CMP_GE, "≥"},
		{CMP_GT, ">"},
		{Cmp(-2), "Cmp(-2)"},
		{OPERAND_LITERAL, "literal"},
		{OPERAND_ACCUMULATOR, "accumulator"},
		{OPERAND_CELL, "cell"},
		{OperandKind(3), "OperandKind(3)"},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, entry.value.String())
	}
}
