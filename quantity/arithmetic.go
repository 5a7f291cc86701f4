// File: arithmetic.go
// Role: the two IEEE-754 overrides this domain needs, kept as small,
// named, unexported kernels with explicit math.* calls and no implicit
// coercions.
package quantity

import "math"

// mul multiplies a and b, except that a zero factor always yields zero,
// even against NaN or +Inf. This is the one place the "0 × ∞ ≡ 0"
// override lives; every other combination is plain IEEE-754 float64 '*'.
func mul(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a * b
}

// add sums a and b, except that +Inf dominates a NaN operand: if either
// operand is +Inf and the other is NaN, the result is +Inf. Every other
// combination is plain IEEE-754 float64 '+', so NaN still propagates
// through ordinary addition and Inf+finite still saturates to Inf.
func add(a, b float64) float64 {
	if math.IsInf(a, 1) && math.IsNaN(b) {
		return math.Inf(1)
	}
	if math.IsInf(b, 1) && math.IsNaN(a) {
		return math.Inf(1)
	}
	return a + b
}
