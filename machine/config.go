package machine

import (
	"maps"
	"slices"

	"github.com/ezrec/alpha/isa"
)

// Config declares the machine a program runs on.
//
// Configurations are plain values. Any number of them may coexist, and a
// Config is never modified by validation or execution.
type Config struct {
	Accumulators  int                   // Number of accumulators, α0 … α(n-1).
	Cells         []int                 // Addressable memory cells, sorted.
	StackRegister isa.Operand           // Register moved by push and pop.
	Presets       map[isa.Operand]int32 // Initial values, zero when absent.
}

// Option adjusts a Config under construction.
type Option func(cfg *Config)

// NewConfig creates a configuration with the given number of accumulators,
// no memory cells and α0 as the stack register.
func NewConfig(accumulators int, opts ...Option) (cfg Config) {
	cfg = Config{
		Accumulators:  accumulators,
		StackRegister: isa.Acc(0),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return
}

// WithCells adds memory cells to the configuration.
func WithCells(cells ...int) Option {
	return func(cfg *Config) {
		cfg.Cells = append(cfg.Cells, cells...)
		slices.Sort(cfg.Cells)
		cfg.Cells = slices.Compact(cfg.Cells)
	}
}

// WithCellRange adds memory cells ρ(0) … ρ(count-1).
func WithCellRange(count int) Option {
	cells := make([]int, 0, max(count, 0))
	for i := range max(count, 0) {
		cells = append(cells, i)
	}
	return WithCells(cells...)
}

// WithStackRegister selects the accumulator or cell that push reads and pop
// writes.
func WithStackRegister(reg isa.Operand) Option {
	return func(cfg *Config) {
		cfg.StackRegister = reg
	}
}

// WithPreset sets the initial value of an accumulator or cell.
func WithPreset(reg isa.Operand, value int32) Option {
	return func(cfg *Config) {
		if cfg.Presets == nil {
			cfg.Presets = make(map[isa.Operand]int32)
		}
		cfg.Presets[reg] = value
	}
}

// HasAccumulator is true if αu exists.
func (cfg Config) HasAccumulator(u int) bool {
	return u >= 0 && u < cfg.Accumulators
}

// HasCell is true if ρ(i) is addressable.
func (cfg Config) HasCell(i int) bool {
	_, found := slices.BinarySearch(cfg.Cells, i)
	return found
}

// Has is true if the operand is a literal or a register that exists.
func (cfg Config) Has(op isa.Operand) bool {
	switch op.Kind {
	case isa.OPERAND_ACCUMULATOR:
		return cfg.HasAccumulator(op.Index)
	case isa.OPERAND_CELL:
		return cfg.HasCell(op.Index)
	}
	return op.IsLiteral()
}

// Clone returns a deep copy of the configuration.
func (cfg Config) Clone() Config {
	cfg.Cells = slices.Clone(cfg.Cells)
	cfg.Presets = maps.Clone(cfg.Presets)
	return cfg
}
