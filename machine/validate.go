package machine

import (
	"cmp"
	"maps"
	"slices"

	"github.com/ezrec/alpha/isa"
)

// Validate checks a program against a configuration before it runs.
//
// It returns nil, or a *ValidationError listing every problem found:
// unknown accumulators and cells, cell references when no cells are
// configured, duplicated labels, jumps to undefined labels, undefined
// operators and comparisons, and an unusable stack register or preset.
func Validate(prog *isa.Program, cfg Config) error {
	var problems []*Problem

	report := func(kind error, index int) *Problem {
		p := &Problem{Kind: kind, Index: index}
		problems = append(problems, p)
		return p
	}

	checkRegister := func(op isa.Operand, index int, cellsReported *bool) {
		switch op.Kind {
		case isa.OPERAND_ACCUMULATOR:
			if !cfg.HasAccumulator(op.Index) {
				report(ErrUnknownAccumulator, index).Operand = op.Index
			}
		case isa.OPERAND_CELL:
			if len(cfg.Cells) == 0 {
				if !*cellsReported {
					report(ErrNoCellsConfigured, index).Operand = op.Index
					*cellsReported = true
				}
			} else if !cfg.HasCell(op.Index) {
				report(ErrUnknownCell, index).Operand = op.Index
			}
		}
	}

	if cfg.Accumulators < 0 {
		report(ErrConfigInvalid, -1)
	}

	presets := slices.SortedFunc(maps.Keys(cfg.Presets), func(a, b isa.Operand) int {
		return cmp.Or(
			cmp.Compare(a.Kind, b.Kind),
			cmp.Compare(a.Index, b.Index),
			cmp.Compare(a.Value, b.Value),
		)
	})

	for _, reg := range presets {
		var reported bool
		if reg.IsLiteral() {
			report(ErrConfigInvalid, -1)
			continue
		}
		checkRegister(reg, -1, &reported)
	}

	stackUsable := cfg.StackRegister.IsAccumulator() || cfg.StackRegister.IsCell()

	for pc, entry := range prog.All() {
		inst := entry.Instruction
		if inst == nil {
			report(ErrInstructionInvalid, pc)
			continue
		}

		operands := inst.Operands()

		switch inst.(type) {
		case isa.Push, isa.Pop:
			if !stackUsable {
				report(ErrConfigInvalid, pc)
			} else {
				operands = append(operands, cfg.StackRegister)
			}
		}

		var cellsReported bool
		for _, op := range operands {
			checkRegister(op, pc, &cellsReported)
		}

		if arith, ok := inst.(isa.Arithmetic); ok && !arith.Operator().Valid() {
			report(ErrOpInvalid, pc)
		}

		if cond, ok := inst.(isa.Conditional); ok && !cond.Condition().Valid() {
			report(ErrCmpInvalid, pc)
		}
	}

	for _, ref := range prog.Duplicates() {
		report(ErrDuplicateLabel, ref.Index).Label = ref.Label
	}

	for _, ref := range prog.Unresolved() {
		report(ErrUnresolvedLabel, ref.Index).Label = ref.Label
	}

	if len(problems) == 0 {
		return nil
	}

	slices.SortStableFunc(problems, func(a, b *Problem) int {
		return cmp.Compare(a.Index, b.Index)
	})

	return &ValidationError{Problems: problems}
}
