// Package isa defines the instruction model of the Alpha-Notation machine.
//
// An Alpha-Notation program manipulates a configured number of accumulators
// (α0…αn), a configured set of memory cells (ρ(i)) and a value stack, using
// nineteen fixed instruction shapes: assignments, integer arithmetic with the
// operators + - * /, conditional and unconditional jumps to labels, and
// push/pop.
//
// The instruction shapes form a closed set. Each is its own struct type
// implementing Instruction, and consumers dispatch on them with a type
// switch. A Program pairs instructions with optional labels and resolves
// every label to an instruction index once, when it is built.
package isa
