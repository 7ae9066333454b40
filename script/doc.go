// Package script loads Alpha-Notation programs described in Starlark.
//
// A script declares the machine with config() and then calls one builtin per
// instruction, in program order:
//
//	config(2, cells = [0], presets = {acc(0): 6})
//	acc_from_literal(1, 1)
//	acc_op_acc(1, "*", 0, label = "loop")
//	acc_op_literal(0, "-", 1)
//	jump_if_acc_cmp_literal(0, ">", 1, "loop")
//	cell_from_acc(0, 1)
//
// Operators are "+", "-", "*" and "/"; comparisons are "<", "<=", "=",
// ">=" and ">". acc(u) and cell(i) name registers where a builtin needs an
// operand value, such as the stack register or the presets.
package script
