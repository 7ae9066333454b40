package script

import (
	"go.starlark.net/starlark"

	"github.com/ezrec/alpha/isa"
)

// operand is the script-side handle for a register, made by acc() and cell().
type operand struct {
	isa.Operand
}

var _ starlark.Value = operand{}

func (op operand) Type() string         { return "operand" }
func (op operand) Freeze()              {}
func (op operand) Truth() starlark.Bool { return starlark.True }

func (op operand) Hash() (uint32, error) {
	return uint32(op.Kind)<<28 ^ uint32(op.Index), nil
}

// operandOf converts a script value back into a register operand.
func operandOf(v starlark.Value) (op isa.Operand, err error) {
	reg, ok := v.(operand)
	if !ok {
		err = ErrOperandType
		return
	}
	op = reg.Operand
	return
}

// literal unpacks a 32-bit constant.
type literal int32

func (k *literal) Unpack(v starlark.Value) (err error) {
	n, err := starlark.AsInt32(v)
	if err != nil {
		return ErrLiteral(v.String())
	}
	*k = literal(n)
	return
}

// operator unpacks an arithmetic operator symbol.
type operator isa.Op

func (op *operator) Unpack(v starlark.Value) (err error) {
	symbol, ok := starlark.AsString(v)
	if !ok {
		symbol = v.String()
	}
	parsed, err := isa.ParseOp(symbol)
	*op = operator(parsed)
	return
}

// comparison unpacks a comparison symbol.
type comparison isa.Cmp

func (cmp *comparison) Unpack(v starlark.Value) (err error) {
	symbol, ok := starlark.AsString(v)
	if !ok {
		symbol = v.String()
	}
	parsed, err := isa.ParseCmp(symbol)
	*cmp = comparison(parsed)
	return
}
