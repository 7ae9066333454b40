// Package machine validates and executes Alpha-Notation programs.
//
// A Config declares the machine a program runs on: the number of
// accumulators, the set of addressable memory cells, the register that push
// and pop operate on, and any non-zero initial values. Validate checks a
// program against a Config and reports every problem it finds. Step executes
// one instruction against a State; Run validates a program and steps it until
// it halts or faults.
//
// Execution is single-threaded and synchronous. Each State is owned by its
// caller, and distinct States never share storage.
package machine
