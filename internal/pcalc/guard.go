package pcalc

import "math"

// Bounds of the evaluated integer type.
const (
	MaxValue = math.MaxInt32
	MinValue = math.MinInt32
)

// AddOverflows reports whether a + b is not representable.
func AddOverflows(a, b int32) bool {
	if b > 0 {
		return a > MaxValue-b
	}
	return a < MinValue-b
}

// SubOverflows reports whether a - b is not representable.
func SubOverflows(a, b int32) bool {
	if b < 0 {
		return a > MaxValue+b
	}
	return a < MinValue+b
}

// MulOverflows reports whether a * b is not representable, without
// computing the product.
func MulOverflows(a, b int32) bool {
	if a > 0 {
		if b > 0 {
			return a > MaxValue/b
		}
		return b < MinValue/a
	}
	if b > 0 {
		return a < MinValue/b
	}
	return a != 0 && b < MaxValue/a
}

// DivUndefined reports whether a / b has no representable result: division
// by zero, or MinValue / -1.
func DivUndefined(a, b int32) bool {
	return b == 0 || (a == MinValue && b == -1)
}

// apply computes a <o> b, consulting the guard first; it never performs an
// operation the guard rejects.
func apply(o op, a, b int32) (int32, bool) {
	switch o {
	case opAdd:
		if AddOverflows(a, b) {
			return 0, false
		}
		return a + b, true
	case opSub:
		if SubOverflows(a, b) {
			return 0, false
		}
		return a - b, true
	case opMul:
		if MulOverflows(a, b) {
			return 0, false
		}
		return a * b, true
	case opDiv:
		if DivUndefined(a, b) {
			return 0, false
		}
		return a / b, true
	}
	panic(opError(o))
}
