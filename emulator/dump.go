package emulator

import (
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/alpha/translate"
)

// Dump writes the accumulators, the memory cells and the stack as tables.
func (emu *Emulator) Dump(w io.Writer) (err error) {
	st := emu.State

	status := f("pc %d, %d steps", st.PC, st.Steps)
	if st.Halted {
		status += f(", halted")
	}
	if label := emu.Label(); len(label) != 0 {
		status += f(", at %v", label)
	}
	if reg := emu.Config.StackRegister; !reg.IsLiteral() {
		status += f(", stack register %v", reg)
	}
	_, err = fmt.Fprintln(w, status)
	if err != nil {
		return
	}

	regs := table.NewWriter()
	regs.SetTitle(f("Registers"))
	regs.AppendHeader(table.Row{f("Register"), f("Value")})
	for reg, value := range st.Registers() {
		regs.AppendRow(table.Row{reg.String(), translate.Number(value)})
	}

	_, err = fmt.Fprintln(w, regs.Render())
	if err != nil {
		return
	}

	stack := table.NewWriter()
	stack.SetTitle(f("Stack"))
	stack.AppendHeader(table.Row{f("Depth"), f("Value")})
	// Top of stack first.
	for depth, value := range slices.Backward(st.Stack.Data) {
		stack.AppendRow(table.Row{len(st.Stack.Data) - 1 - depth, translate.Number(value)})
	}
	if st.Stack.Empty() {
		stack.AppendRow(table.Row{"-", f("empty")})
	}

	_, err = fmt.Fprintln(w, stack.Render())
	return
}
