package script

import (
	"go.starlark.net/starlark"

	"github.com/ezrec/alpha/isa"
)

// decoders maps each instruction builtin to its argument unpacker.
// Parameter names follow the instruction fields.
var decoders = map[string]decoder{
	"acc_from_acc": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.AccFromAcc
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "v", &in.V, "label?", &label)
		inst = in
		return
	},
	"acc_from_cell": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.AccFromCell
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "i", &in.I, "label?", &label)
		inst = in
		return
	},
	"cell_from_acc": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.CellFromAcc
		err = starlark.UnpackArgs(name, args, kwargs, "i", &in.I, "u", &in.U, "label?", &label)
		inst = in
		return
	},
	"cell_from_literal": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.CellFromLiteral
		var k literal
		err = starlark.UnpackArgs(name, args, kwargs, "i", &in.I, "k", &k, "label?", &label)
		in.K = int32(k)
		inst = in
		return
	},
	"acc_from_literal": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.AccFromLiteral
		var k literal
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "k", &k, "label?", &label)
		in.K = int32(k)
		inst = in
		return
	},
	"acc_op_literal": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.AccOpLiteral
		var op operator
		var k literal
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "op", &op, "k", &k, "label?", &label)
		in.Op, in.K = isa.Op(op), int32(k)
		inst = in
		return
	},
	"acc_op_acc": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.AccOpAcc
		var op operator
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "op", &op, "v", &in.V, "label?", &label)
		in.Op = isa.Op(op)
		inst = in
		return
	},
	"acc_from_acc_op_acc": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.AccFromAccOpAcc
		var op operator
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "v", &in.V, "op", &op, "w", &in.W, "label?", &label)
		in.Op = isa.Op(op)
		inst = in
		return
	},
	"acc_op_cell": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.AccOpCell
		var op operator
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "op", &op, "i", &in.I, "label?", &label)
		in.Op = isa.Op(op)
		inst = in
		return
	},
	"acc_from_cell_op_cell": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.AccFromCellOpCell
		var op operator
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "i", &in.I, "op", &op, "j", &in.J, "label?", &label)
		in.Op = isa.Op(op)
		inst = in
		return
	},
	"cell_from_cell_op_literal": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.CellFromCellOpLiteral
		var op operator
		var k literal
		err = starlark.UnpackArgs(name, args, kwargs, "i", &in.I, "j", &in.J, "op", &op, "k", &k, "label?", &label)
		in.Op, in.K = isa.Op(op), int32(k)
		inst = in
		return
	},
	"cell_from_cell_op_acc": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.CellFromCellOpAcc
		var op operator
		err = starlark.UnpackArgs(name, args, kwargs, "i", &in.I, "j", &in.J, "op", &op, "u", &in.U, "label?", &label)
		in.Op = isa.Op(op)
		inst = in
		return
	},
	"cell_from_cell": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.CellFromCell
		err = starlark.UnpackArgs(name, args, kwargs, "i", &in.I, "j", &in.J, "label?", &label)
		inst = in
		return
	},
	"jump_if_acc_cmp_acc": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.JumpIfAccCmpAcc
		var cmp comparison
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "cmp", &cmp, "v", &in.V, "target", &in.Label, "label?", &label)
		in.Cmp = isa.Cmp(cmp)
		inst = in
		return
	},
	"jump_if_acc_cmp_literal": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.JumpIfAccCmpLiteral
		var cmp comparison
		var k literal
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "cmp", &cmp, "k", &k, "target", &in.Label, "label?", &label)
		in.Cmp, in.K = isa.Cmp(cmp), int32(k)
		inst = in
		return
	},
	"jump_if_acc_cmp_cell": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.JumpIfAccCmpCell
		var cmp comparison
		err = starlark.UnpackArgs(name, args, kwargs, "u", &in.U, "cmp", &cmp, "i", &in.I, "target", &in.Label, "label?", &label)
		in.Cmp = isa.Cmp(cmp)
		inst = in
		return
	},
	"jump": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		var in isa.Jump
		err = starlark.UnpackArgs(name, args, kwargs, "target", &in.Label, "label?", &label)
		inst = in
		return
	},
	"push": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		err = starlark.UnpackArgs(name, args, kwargs, "label?", &label)
		inst = isa.Push{}
		return
	},
	"pop": func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error) {
		err = starlark.UnpackArgs(name, args, kwargs, "label?", &label)
		inst = isa.Pop{}
		return
	},
}
