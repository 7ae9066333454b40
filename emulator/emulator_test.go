package emulator

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/alpha/isa"
	"github.com/ezrec/alpha/machine"
)

// countdown decrements α0 to zero, pushing every value on the way.
func countdown() *isa.Program {
	return isa.NewProgram(
		isa.Labeled("loop", isa.JumpIfAccCmpLiteral{U: 0, Cmp: isa.CMP_LE, K: 0, Label: "end"}),
		isa.Labeled("", isa.Push{}),
		isa.Labeled("", isa.AccOpLiteral{U: 0, Op: isa.OP_SUB, K: 1}),
		isa.Labeled("", isa.Jump{Label: "loop"}),
		isa.Labeled("end", isa.CellFromAcc{I: 0, U: 0}),
	)
}

func countdownConfig(start int32) machine.Config {
	return machine.NewConfig(1, machine.WithCells(0), machine.WithPreset(isa.Acc(0), start))
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(countdownConfig(3))

	assert.False(emu.Verbose)
	assert.Nil(emu.Program())
	assert.Nil(emu.Instruction())
	assert.Equal("", emu.Label())
	assert.Equal([]int32{3}, emu.State.Accumulators)

	_, err := emu.Tick()
	assert.ErrorIs(err, ErrNoProgram)
}

func TestEmulator_Load(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(machine.NewConfig(1))

	bad := isa.NewProgram(isa.Entries(
		isa.AccFromAcc{U: 0, V: 4},
		isa.Jump{Label: "nowhere"},
	)...)
	err := emu.Load(bad)
	assert.ErrorIs(err, machine.ErrUnknownAccumulator)
	assert.ErrorIs(err, machine.ErrUnresolvedLabel)
	assert.Nil(emu.Program())

	good := isa.NewProgram(isa.Entries(isa.AccFromLiteral{U: 0, K: 9})...)
	assert.NoError(emu.Load(good))
	assert.Equal(good, emu.Program())
	assert.Equal(isa.AccFromLiteral{U: 0, K: 9}, emu.Instruction())
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(countdownConfig(2))
	assert.NoError(emu.Load(countdown()))

	ticks := 0
	for {
		done, err := emu.Tick()
		assert.NoError(err)
		if err != nil || done {
			break
		}
		ticks++
		assert.Less(ticks, 100)
	}

	// Two trips around the loop, then the exit test and the store.
	assert.Equal(10, emu.Steps())
	assert.True(emu.State.Halted)
	assert.Equal(int32(0), emu.State.Cells[0])
	assert.Equal([]int32{2, 1}, emu.State.Stack.Data)

	// Halted machines stay halted.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(10, emu.Steps())

	emu.Reset()
	assert.False(emu.State.Halted)
	assert.Equal(0, emu.Steps())
	assert.Equal([]int32{2}, emu.State.Accumulators)
	assert.True(emu.State.Stack.Empty())
}

func TestEmulator_Fault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(machine.NewConfig(2))
	prog := isa.NewProgram(
		isa.Labeled("", isa.AccFromLiteral{U: 0, K: 7}),
		isa.Labeled("divide", isa.AccOpAcc{U: 0, Op: isa.OP_DIV, V: 1}),
	)
	assert.NoError(emu.Load(prog))

	err := emu.Run(context.Background(), 0)
	assert.ErrorIs(err, machine.ErrDivisionByZero)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	if rt != nil {
		assert.Equal(1, rt.Index)
		assert.Equal("divide", rt.Label)
		assert.Equal(isa.AccOpAcc{U: 0, Op: isa.OP_DIV, V: 1}, rt.Instruction)
		assert.Contains(rt.Error(), "(divide)")
		assert.Equal("instruction 1 (divide) 'α0 := α0 / α1': division by zero", rt.Error())
	}

	var fault *machine.Fault
	assert.True(errors.As(err, &fault))
	if fault != nil {
		assert.Equal(1, fault.Index)
		assert.ErrorIs(fault, machine.ErrDivisionByZero)
	}

	// The faulting step did not advance the machine.
	assert.Equal(1, emu.State.PC)
	assert.Equal(int32(7), emu.State.Accumulators[0])
	assert.False(emu.State.Halted)
}

func TestEmulator_StackUnderflow(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(machine.NewConfig(1))
	assert.NoError(emu.Load(isa.NewProgram(isa.Entries(isa.Pop{})...)))

	_, err := emu.Tick()
	assert.ErrorIs(err, machine.ErrStackUnderflow)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.NotContains(err.Error(), "()")
	assert.Equal("instruction 0 'pop': stack empty", err.Error())

	var fault *machine.Fault
	assert.True(errors.As(err, &fault))
}

func TestEmulator_Run(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(countdownConfig(5))
	assert.NoError(emu.Load(countdown()))

	assert.NoError(emu.Run(context.Background(), 0))
	assert.True(emu.State.Halted)
	assert.Equal([]int32{5, 4, 3, 2, 1}, emu.State.Stack.Data)
}

func TestEmulator_RunStepLimit(t *testing.T) {
	assert := assert.New(t)

	forever := isa.NewProgram(isa.Labeled("spin", isa.Jump{Label: "spin"}))

	emu := NewEmulator(machine.NewConfig(0))
	assert.NoError(emu.Load(forever))

	err := emu.Run(context.Background(), 25)
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(25, emu.Steps())
	assert.False(emu.State.Halted)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	if rt != nil {
		assert.Equal("spin", rt.Label)
	}

	// A continued run counts from where the last one stopped.
	err = emu.Run(context.Background(), 5)
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(30, emu.Steps())
}

func TestEmulator_RunExactLimit(t *testing.T) {
	assert := assert.New(t)

	prog := isa.NewProgram(isa.Entries(
		isa.AccFromLiteral{U: 0, K: 1},
		isa.AccFromLiteral{U: 0, K: 2},
	)...)

	emu := NewEmulator(machine.NewConfig(1))
	assert.NoError(emu.Load(prog))

	// The last step runs off the end of the program and halts it.
	assert.NoError(emu.Run(context.Background(), 2))
	assert.True(emu.State.Halted)
	assert.Equal(int32(2), emu.State.Accumulators[0])
}

func TestEmulator_RunCancel(t *testing.T) {
	assert := assert.New(t)

	forever := isa.NewProgram(isa.Labeled("spin", isa.Jump{Label: "spin"}))

	emu := NewEmulator(machine.NewConfig(0))
	assert.NoError(emu.Load(forever))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emu.Run(ctx, 1000)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, emu.Steps())
}

func TestEmulator_Verbose(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(countdownConfig(1))
	emu.Verbose = true
	assert.NoError(emu.Load(countdown()))
	assert.NoError(emu.Run(context.Background(), 0))
	assert.True(emu.State.Halted)
}

func TestEmulator_Dump(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(countdownConfig(3))
	assert.NoError(emu.Load(countdown()))

	var buf bytes.Buffer
	assert.NoError(emu.Dump(&buf))
	text := buf.String()
	assert.Contains(text, "pc 0, 0 steps")
	assert.Contains(text, "at loop")
	assert.Contains(text, "α0")
	assert.Contains(text, "ρ(0)")
	assert.Contains(text, "empty")

	assert.NoError(emu.Run(context.Background(), 0))

	buf.Reset()
	assert.NoError(emu.Dump(&buf))
	text = buf.String()
	assert.Contains(text, "halted")
	assert.Contains(text, "stack register α0")
	assert.NotContains(text, "empty")
}
