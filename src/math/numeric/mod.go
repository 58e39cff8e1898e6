package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FloorMod returns a modulo m with the result in the sign class of m: for
// m > 0 the result always lies in [0, m). Contrast with math.Mod, which keeps
// the sign of a.
func FloorMod(a, m float64) float64 {
	return math.Mod(math.Mod(a, m)+m, m)
}

// Sign returns -1, 0, or 1 according to the sign of v.
func Sign[T constraints.Signed | constraints.Float](v T) int {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}
