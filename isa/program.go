package isa

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Entry is a single, optionally labelled, program line.
type Entry struct {
	Label       string // Empty when the line has no label.
	Instruction Instruction
}

// Labeled returns an entry carrying a label.
func Labeled(label string, inst Instruction) Entry {
	return Entry{Label: label, Instruction: inst}
}

// Entries wraps a list of unlabelled instructions.
func Entries(insts ...Instruction) (entries []Entry) {
	entries = make([]Entry, len(insts))
	for n, inst := range insts {
		entries[n].Instruction = inst
	}
	return
}

// LabelRef locates a label problem found while building a program.
type LabelRef struct {
	Label string
	Index int // Index of the offending entry.
}

// Program is an ordered list of entries with every label resolved to an
// entry index.
//
// A Program is immutable once built, and may be shared between machines.
type Program struct {
	entries   []Entry
	labels    map[string]int
	targets   []int // Resolved jump destination per entry, -1 if none.
	duplicate []LabelRef
	missing   []LabelRef
}

// NewProgram builds a program and resolves its labels.
//
// Building never fails. A label defined twice keeps its first definition and
// is reported by Duplicates; a jump to an undefined label is reported by
// Unresolved. Both are validation errors.
func NewProgram(entries ...Entry) (prog *Program) {
	prog = &Program{
		entries: slices.Clone(entries),
		labels:  make(map[string]int, len(entries)),
		targets: make([]int, len(entries)),
	}

	for n, entry := range prog.entries {
		if len(entry.Label) == 0 {
			continue
		}
		_, ok := prog.labels[entry.Label]
		if ok {
			prog.duplicate = append(prog.duplicate, LabelRef{Label: entry.Label, Index: n})
			continue
		}
		prog.labels[entry.Label] = n
	}

	// Final linking of jump labels.
	for n, entry := range prog.entries {
		prog.targets[n] = -1
		jump, ok := entry.Instruction.(Jumper)
		if !ok {
			continue
		}
		index, ok := prog.labels[jump.Target()]
		if !ok {
			prog.missing = append(prog.missing, LabelRef{Label: jump.Target(), Index: n})
			continue
		}
		prog.targets[n] = index
	}

	return
}

// Len is the number of entries.
func (prog *Program) Len() int {
	return len(prog.entries)
}

// At returns the entry at index pc.
func (prog *Program) At(pc int) (entry Entry, ok bool) {
	if pc < 0 || pc >= len(prog.entries) {
		return
	}
	return prog.entries[pc], true
}

// All iterates over the entries in order.
func (prog *Program) All() iter.Seq2[int, Entry] {
	return func(yield func(pc int, entry Entry) bool) {
		for pc, entry := range prog.entries {
			if !yield(pc, entry) {
				return
			}
		}
	}
}

// Resolve returns the entry index a label names.
func (prog *Program) Resolve(label string) (pc int, ok bool) {
	pc, ok = prog.labels[label]
	return
}

// Target returns the resolved destination of the jump at index pc.
// It is false for non-jumps and for unresolved labels.
func (prog *Program) Target(pc int) (target int, ok bool) {
	if pc < 0 || pc >= len(prog.targets) {
		return
	}
	target = prog.targets[pc]
	ok = target >= 0
	return
}

// LabelAt returns the nearest label defined at or before index pc.
func (prog *Program) LabelAt(pc int) (label string, ok bool) {
	pc = min(pc, len(prog.entries)-1)
	for ; pc >= 0; pc-- {
		label = prog.entries[pc].Label
		if len(label) != 0 && prog.labels[label] == pc {
			return label, true
		}
	}

	return "", false
}

// Duplicates lists every redefinition of an already defined label.
func (prog *Program) Duplicates() []LabelRef {
	return slices.Clone(prog.duplicate)
}

// Unresolved lists every jump whose label is not defined.
func (prog *Program) Unresolved() []LabelRef {
	return slices.Clone(prog.missing)
}

// String returns a listing of the program.
func (prog *Program) String() string {
	var sb strings.Builder
	for pc, entry := range prog.entries {
		label := ""
		if len(entry.Label) != 0 {
			label = entry.Label + ":"
		}
		fmt.Fprintf(&sb, "%03d %-8s %v\n", pc, label, entry.Instruction)
	}
	return sb.String()
}
