package rational

import (
	"errors"
	"strconv"
	"strings"
)

var errBadFraction = errors.New("rational: invalid fraction string")

// RatString renders the raw components as "n/d", without reducing.
func (r Rational) RatString() string {
	return strconv.FormatFloat(r.Num, 'f', -1, 64) + "/" +
		strconv.FormatFloat(r.Den, 'f', -1, 64)
}

// ParseRatString parses "n" or "n/d" into a Rational. Unlike the decimal
// parsers, this one is strict: malformed input returns an error instead of
// degrading to zero.
func ParseRatString(s string) (Rational, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return Zero, errBadFraction
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Zero, errBadFraction
	}
	den := 1.0
	if len(parts) == 2 {
		den, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return Zero, errBadFraction
		}
	}
	return New(num, den), nil
}
