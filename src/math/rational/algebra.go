package rational

import (
	"ratio/src/math/numeric"
)

// Add returns r + o, reduced.
func (r Rational) Add(o Rational) Rational {
	return New(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den).Reduce()
}

// Sub returns r - o, reduced.
func (r Rational) Sub(o Rational) Rational {
	return New(r.Num*o.Den-o.Num*r.Den, r.Den*o.Den).Reduce()
}

// Mul returns r * o, reduced.
func (r Rational) Mul(o Rational) Rational {
	return New(r.Num*o.Num, r.Den*o.Den).Reduce()
}

// Div returns r / o, reduced. A divisor with zero numerator makes the raw
// denominator zero, which the constructor collapses to the canonical zero:
// dividing by a zero rational silently yields zero rather than signaling.
// Callers that need strict detection check o.Num themselves first.
func (r Rational) Div(o Rational) Rational {
	return New(r.Num*o.Den, o.Num*r.Den).Reduce()
}

// Scale multiplies r by the scalar k, approximating k as a rational first.
func (r Rational) Scale(k float64) Rational {
	return FromFloat64(k).Mul(r)
}

// Equal reports whether r and o reduce to identical component pairs.
// Reduction normalizes the sign onto the numerator, so {1,-2} and {-1,2}
// compare equal.
func (r Rational) Equal(o Rational) bool {
	a, b := r.Reduce(), o.Reduce()
	return a.Num == b.Num && a.Den == b.Den
}

// GreaterThan compares by cross-multiplication. Each negative denominator
// flips the discriminant's sign, so each contributes a factor of -1; no prior
// reduction is needed.
func (r Rational) GreaterThan(o Rational) bool {
	d := r.Num*o.Den - o.Num*r.Den
	sign := 1
	if numeric.Sign(r.Den) < 0 {
		sign = -sign
	}
	if numeric.Sign(o.Den) < 0 {
		sign = -sign
	}
	return float64(sign)*d > 0
}

// LessThan reports r < o.
func (r Rational) LessThan(o Rational) bool {
	return o.GreaterThan(r)
}

// GreaterOrEqual reports r >= o.
func (r Rational) GreaterOrEqual(o Rational) bool {
	return r.GreaterThan(o) || r.Equal(o)
}

// LessOrEqual reports r <= o.
func (r Rational) LessOrEqual(o Rational) bool {
	return r.LessThan(o) || r.Equal(o)
}

// Min returns the smaller of a and b.
func Min(a, b Rational) Rational {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Rational) Rational {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
