package isa

// Op is an arithmetic operator.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD = Op(0) // +
	OP_SUB = Op(1) // -
	OP_MUL = Op(2) // *
	OP_DIV = Op(3) // /
)

// Valid is true for the four defined operators.
func (op Op) Valid() bool {
	return op >= OP_ADD && op <= OP_DIV
}

// Apply computes a op b on 32-bit two's complement words.
//
// Results wrap on overflow. Division truncates toward zero, and
// math.MinInt32 / -1 yields math.MinInt32.
func (op Op) Apply(a, b int32) (value int32, err error) {
	switch op {
	case OP_ADD:
		value = a + b
	case OP_SUB:
		value = a - b
	case OP_MUL:
		value = a * b
	case OP_DIV:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		value = a / b
	default:
		err = ErrOpInvalid
	}

	return
}

// ParseOp maps an operator symbol to its Op.
func ParseOp(symbol string) (op Op, err error) {
	switch symbol {
	case "+":
		op = OP_ADD
	case "-":
		op = OP_SUB
	case "*", "×":
		op = OP_MUL
	case "/", "÷":
		op = OP_DIV
	default:
		err = ErrParseOp(symbol)
	}

	return
}

// Cmp is a comparison between two words.
type Cmp int

//go:generate go tool stringer -linecomment -type=Cmp
const (
	CMP_LT = Cmp(0) // <
	CMP_LE = Cmp(1) // ≤
	CMP_EQ = Cmp(2) // =
	CMP_GE = Cmp(3) // ≥
	CMP_GT = Cmp(4) // >
)

// Valid is true for the five defined comparisons.
func (cmp Cmp) Valid() bool {
	return cmp >= CMP_LT && cmp <= CMP_GT
}

// Compare evaluates a cmp b. Undefined comparisons are never true.
func (cmp Cmp) Compare(a, b int32) bool {
	switch cmp {
	case CMP_LT:
		return a < b
	case CMP_LE:
		return a <= b
	case CMP_EQ:
		return a == b
	case CMP_GE:
		return a >= b
	case CMP_GT:
		return a > b
	}

	return false
}

// ParseCmp maps a comparison symbol to its Cmp. Both the ASCII and the
// typeset forms are accepted.
func ParseCmp(symbol string) (cmp Cmp, err error) {
	switch symbol {
	case "<":
		cmp = CMP_LT
	case "<=", "≤":
		cmp = CMP_LE
	case "=", "==":
		cmp = CMP_EQ
	case ">=", "≥":
		cmp = CMP_GE
	case ">":
		cmp = CMP_GT
	default:
		err = ErrParseCmp(symbol)
	}

	return
}
