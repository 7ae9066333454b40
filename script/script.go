// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package script

import (
	"log"

	"github.com/pkg/errors"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/alpha/isa"
	"github.com/ezrec/alpha/machine"
)

// Loader executes program scripts.
type Loader struct {
	Verbose bool // If set, log every recorded instruction.
}

// recording collects what a single script execution declares.
type recording struct {
	verbose bool
	entries []isa.Entry
	config  *machine.Config
}

// Load executes a script with the default loader.
func Load(filename string, src any) (prog *isa.Program, cfg machine.Config, err error) {
	return (&Loader{}).Load(filename, src)
}

// Load executes a script and returns the program and machine configuration
// it declares. src follows starlark.ExecFileOptions: nil reads filename,
// otherwise a string, []byte or io.Reader holds the script text.
//
// Instructions are recorded in call order; every instruction builtin takes
// an optional label keyword.
func (ld *Loader) Load(filename string, src any) (prog *isa.Program, cfg machine.Config, err error) {
	rec := &recording{verbose: ld.Verbose}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}

	_, err = starlark.ExecFileOptions(&syntax.FileOptions{TopLevelControl: true, While: true, GlobalReassign: true}, thread, filename, src, rec.predeclared())
	if err != nil {
		err = errors.Wrapf(err, "%v", filename)
		return
	}

	if rec.config == nil {
		err = errors.Wrapf(ErrNoConfig, "%v", filename)
		return
	}

	prog = isa.NewProgram(rec.entries...)
	cfg = *rec.config

	if ld.Verbose {
		log.Printf("%v: %d instructions, %d accumulators, %d cells", filename, prog.Len(), cfg.Accumulators, len(cfg.Cells))
	}

	return
}

// decoder unpacks the arguments of one instruction builtin.
type decoder func(name string, args starlark.Tuple, kwargs []starlark.Tuple) (inst isa.Instruction, label string, err error)

func (rec *recording) predeclared() starlark.StringDict {
	pred := starlark.StringDict{
		"config": starlark.NewBuiltin("config", rec.configure),
		"acc": starlark.NewBuiltin("acc", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var u int
			err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &u)
			return operand{isa.Acc(u)}, err
		}),
		"cell": starlark.NewBuiltin("cell", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var i int
			err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &i)
			return operand{isa.Cell(i)}, err
		}),
	}

	for name, decode := range decoders {
		pred[name] = starlark.NewBuiltin(name, rec.record(decode))
	}

	return pred
}

// record returns a builtin that appends one instruction to the program and
// yields its index.
func (rec *recording) record(decode decoder) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		inst, label, err := decode(fn.Name(), args, kwargs)
		if err != nil {
			return nil, err
		}

		index := len(rec.entries)
		rec.entries = append(rec.entries, isa.Labeled(label, inst))

		if rec.verbose {
			log.Printf("script: %03d %-8s %v", index, label, inst)
		}

		return starlark.MakeInt(index), nil
	}
}

// configure implements config(accumulators, cells=None, stack=None, presets=None).
func (rec *recording) configure(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if rec.config != nil {
		return nil, ErrConfigRepeated
	}

	var accumulators int
	var cells, stack starlark.Value
	var presets *starlark.Dict
	err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"accumulators", &accumulators,
		"cells?", &cells,
		"stack?", &stack,
		"presets?", &presets,
	)
	if err != nil {
		return nil, err
	}

	var opts []machine.Option

	switch v := cells.(type) {
	case nil, starlark.NoneType:
	case starlark.Int:
		count, err := starlark.AsInt32(v)
		if err != nil {
			return nil, &ErrArgument{Name: "cells", Err: err}
		}
		opts = append(opts, machine.WithCellRange(count))
	case starlark.Iterable:
		var addrs []int
		iter := v.Iterate()
		defer iter.Done()
		var item starlark.Value
		for iter.Next(&item) {
			addr, err := starlark.AsInt32(item)
			if err != nil {
				return nil, &ErrArgument{Name: "cells", Err: err}
			}
			addrs = append(addrs, addr)
		}
		opts = append(opts, machine.WithCells(addrs...))
	default:
		return nil, &ErrArgument{Name: "cells", Err: ErrCellsType}
	}

	if stack != nil && stack != starlark.None {
		reg, err := operandOf(stack)
		if err != nil {
			return nil, &ErrArgument{Name: "stack", Err: err}
		}
		opts = append(opts, machine.WithStackRegister(reg))
	}

	if presets != nil {
		for _, item := range presets.Items() {
			reg, err := operandOf(item[0])
			if err != nil {
				return nil, &ErrArgument{Name: "presets", Err: err}
			}
			value, err := starlark.AsInt32(item[1])
			if err != nil {
				return nil, &ErrArgument{Name: "presets", Err: ErrLiteralRange}
			}
			opts = append(opts, machine.WithPreset(reg, int32(value)))
		}
	}

	cfg := machine.NewConfig(accumulators, opts...)
	rec.config = &cfg

	return starlark.None, nil
}
