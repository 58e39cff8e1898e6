package numeric

import "math"

// DefaultEpsilon is the tolerance used by the approximate Euclidean fold when
// no explicit tolerance is supplied.
const DefaultEpsilon = 1e-4

// GCD computes the greatest common divisor of two integer-valued floats by the
// classic recursive Euclidean algorithm, with GCD(x, 0) = x. Callers are
// expected to floor or round fractional inputs first; values that arrive with
// a fractional part stay within ordinary float semantics.
func GCD(x, y float64) float64 {
	if y == 0 {
		return x
	}
	return GCD(math.Floor(y), FloorMod(x, y))
}

// ApproxGCD is ApproxGCDTol with DefaultEpsilon.
func ApproxGCD(x, y float64) float64 {
	return ApproxGCDTol(x, y, DefaultEpsilon)
}

// ApproxGCDTol runs the Euclidean fold on real-valued inputs, seeded with
// |x| and |y| and using the truncating remainder, terminating once the
// remainder drops below epsilon instead of reaching exactly zero. It finds
// some common measure of x and y within the tolerance, not the best rational
// approximation: callers wanting the smallest denominator will not get it.
func ApproxGCDTol(x, y, epsilon float64) float64 {
	a, b := math.Abs(x), math.Abs(y)
	for b >= epsilon {
		a, b = b, math.Mod(a, b)
	}
	return a
}
