package machine

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/alpha/internal"
	"github.com/ezrec/alpha/isa"
)

// State is the mutable state of a single run.
type State struct {
	Accumulators  []int32       // Accumulator bank.
	Cells         map[int]int32 // Configured memory cells.
	Stack         Stack         // Value stack.
	PC            int           // Index of the next instruction.
	Halted        bool          // Set once PC leaves the program.
	Steps         int           // Instructions executed.
	StackRegister isa.Operand   // Register moved by push and pop.
}

// NewState creates the initial state for a configuration: every register
// zero unless preset, an empty stack, and PC at the first instruction.
func NewState(cfg Config) (st *State) {
	st = &State{
		Accumulators:  make([]int32, max(cfg.Accumulators, 0)),
		Cells:         make(map[int]int32, len(cfg.Cells)),
		StackRegister: cfg.StackRegister,
	}

	for _, i := range cfg.Cells {
		st.Cells[i] = 0
	}

	for reg, value := range cfg.Presets {
		if cfg.Has(reg) && !reg.IsLiteral() {
			st.Store(reg, value)
		}
	}

	return
}

// Load reads an operand. Literals evaluate to themselves.
func (st *State) Load(op isa.Operand) int32 {
	switch op.Kind {
	case isa.OPERAND_ACCUMULATOR:
		return st.Accumulators[op.Index]
	case isa.OPERAND_CELL:
		return st.Cells[op.Index]
	}
	return op.Value
}

// Store writes a register operand.
func (st *State) Store(op isa.Operand, value int32) {
	switch op.Kind {
	case isa.OPERAND_ACCUMULATOR:
		st.Accumulators[op.Index] = value
	case isa.OPERAND_CELL:
		st.Cells[op.Index] = value
	default:
		panic(fmt.Sprintf("machine: store to %v operand", op.Kind))
	}
}

// Clone returns a snapshot that shares no storage with st.
func (st *State) Clone() *State {
	clone := *st
	clone.Accumulators = slices.Clone(st.Accumulators)
	clone.Cells = maps.Clone(st.Cells)
	clone.Stack = st.Stack.Clone()
	return &clone
}

// Registers iterates over the accumulators, then the cells in address order.
func (st *State) Registers() iter.Seq2[isa.Operand, int32] {
	return internal.Concat2(
		internal.MapKeys(slices.All(st.Accumulators), isa.Acc),
		internal.MapKeys(internal.Sorted(st.Cells), isa.Cell),
	)
}

// String returns the current machine state as a string.
func (st *State) String() (text string) {
	text = fmt.Sprintf("% 6s: %v\n", "pc", st.PC)
	text += fmt.Sprintf("% 6s: %v\n", "halted", st.Halted)
	for reg, value := range st.Registers() {
		text += fmt.Sprintf("% 6s: %v\n", reg, value)
	}

	stack := "----"
	if !st.Stack.Empty() {
		stack = fmt.Sprintf("%v", st.Stack.Data)
	}
	text += fmt.Sprintf("% 6s: %v\n", "stack", stack)

	return
}
