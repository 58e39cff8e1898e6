// Package rational implements exact-ish arithmetic over numerator/denominator
// pairs of integer-valued float64s. Every operation returns a fresh value and
// no operation ever observes a zero denominator: the constructor collapses
// degenerate input to the canonical zero instead of erroring. Overflow and
// precision loss follow native float semantics and are not intercepted.
package rational

import (
	"math"
	"strconv"

	"ratio/src/math/numeric"
)

// Rational is a number held exactly as a numerator/denominator pair.
// Construct through New or the From* functions; a Rational built directly
// from a struct literal bypasses the zero-denominator guard.
type Rational struct {
	Num float64
	Den float64
}

var (
	Zero = Rational{Num: 0, Den: 1}
	One  = Rational{Num: 1, Den: 1}
)

// New builds a Rational. A zero denominator collapses to the canonical zero
// value {0, 1}, discarding whatever numerator was supplied.
func New(num, den float64) Rational {
	if den == 0 {
		return Zero
	}
	return Rational{Num: num, Den: den}
}

// FromFloat64 is FromFloat64Tol with numeric.DefaultEpsilon.
func FromFloat64(n float64) Rational {
	return FromFloat64Tol(n, numeric.DefaultEpsilon)
}

// FromFloat64Tol approximates n as a ratio of integers. The fold's result g
// is a near-common measure of 1 and n, so n/g and 1/g both land close to
// integers; flooring them yields the pair. A g that collapses to zero
// propagates the host's division semantics (Inf, NaN) untouched.
func FromFloat64Tol(n, epsilon float64) Rational {
	g := numeric.ApproxGCDTol(1, n, epsilon)
	return New(math.Floor(n/g), math.Floor(1/g))
}

// FromString is FromStringTol with numeric.DefaultEpsilon.
func FromString(s string) Rational {
	return FromStringTol(s, numeric.DefaultEpsilon)
}

// FromStringTol parses a leading decimal literal from s, degrading to 0 on
// unparseable input, then approximates it like FromFloat64Tol.
func FromStringTol(s string, epsilon float64) Rational {
	return FromFloat64Tol(numeric.ParseDecimalFloat(s), epsilon)
}

// Float64 returns Num / Den using native float division.
func (r Rational) Float64() float64 {
	return r.Num / r.Den
}

// Int truncates the value toward zero.
func (r Rational) Int() int64 {
	return int64(math.Trunc(r.Float64()))
}

// FractionDigits renders the unsigned fractional part of the value scaled to
// precision decimal places, rounded to nearest and left-padded with zeros to
// precision characters. The result carries no sign regardless of the sign
// of r.
func (r Rational) FractionDigits(precision int) string {
	f := r.Float64()
	frac := math.Abs(f - math.Trunc(f))
	width := precision
	if width < 0 {
		width = -width
	}
	scaled := math.Round(frac * math.Pow(10, float64(width)))
	digits := strconv.FormatFloat(scaled, 'f', -1, 64)
	for len(digits) < precision {
		digits = "0" + digits
	}
	return digits
}

// FloatString renders the value as "<integer>.<fraction>" with precision
// fractional digits. The integer part truncates toward zero and the fraction
// is unsigned, so -3/2 renders as "-1.50".
func (r Rational) FloatString(precision int) string {
	return strconv.FormatInt(r.Int(), 10) + "." + r.FractionDigits(precision)
}

// String renders the value with two fractional digits.
func (r Rational) String() string {
	return r.FloatString(2)
}

// Reduce divides both components by their greatest common divisor until the
// gcd reaches a fixed point, then normalizes the sign onto the numerator.
// One pass suffices for integer components; the loop covers representations
// where the first gcd does not already land on one.
func (r Rational) Reduce() Rational {
	num, den := r.Num, r.Den
	for g := numeric.GCD(num, den); g != 0 && g != 1; g = numeric.GCD(num, den) {
		num /= g
		den /= g
	}
	if numeric.Sign(den) < 0 {
		num, den = -num, -den
	}
	return New(num, den)
}

// IsZero reports whether the value is zero, reduced or not.
func (r Rational) IsZero() bool {
	return r.Num == 0
}

// Neg returns the additive inverse.
func (r Rational) Neg() Rational {
	return New(-r.Num, r.Den)
}

// Abs returns the absolute value.
func (r Rational) Abs() Rational {
	return New(math.Abs(r.Num), math.Abs(r.Den))
}

// Inv returns the reciprocal. The reciprocal of a zero value collapses to the
// canonical zero through the constructor.
func (r Rational) Inv() Rational {
	return New(r.Den, r.Num)
}
