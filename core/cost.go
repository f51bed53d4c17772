package core

import "math"

// Cost is the set of numeric types usable as edge costs.
//
// For integer kinds the maximum value doubles as Infinity, so a path whose
// total cost reaches it is indistinguishable from no path. Pick a kind wide
// enough for the longest path you expect.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Infinity returns the "unreachable" distance for C: +Inf for floating point
// kinds and the maximum representable value for integer kinds.
//
// Complexity: O(bits of C).
func Infinity[C Cost]() C {
	if isFloat[C]() {
		return C(math.Inf(1))
	}

	// Double until the next step overflows; v ends at the top power of two.
	v := C(1)
	for v*2 > v {
		v *= 2
	}

	return v + (v - 1)
}

// IsInfinite reports whether c equals Infinity[C]().
func IsInfinite[C Cost](c C) bool {
	return c == Infinity[C]()
}

// IsNaN reports whether c is a floating point NaN. Always false for
// integer kinds.
func IsNaN[C Cost](c C) bool {
	return c != c
}

// isFloat reports whether C has a floating point underlying type.
func isFloat[C Cost]() bool {
	half := C(1)
	half /= 2

	return half != 0
}
