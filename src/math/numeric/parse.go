package numeric

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseDecimalInt parses the longest leading base-10 integer in s, after
// optional whitespace and sign. It returns 0 when no digit is present; input
// is never rejected. This is a documented lossy fallback, not a validating
// parser.
func ParseDecimalInt(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	// the prefix is known well-formed; out-of-range input saturates
	v, _ := strconv.ParseInt(s[:i], 10, 64)
	return v
}

// ParseDecimalFloat parses the longest leading base-10 floating literal in s,
// after optional whitespace and sign. A trailing exponent marker only counts
// when at least one digit follows it. Returns 0 when no digit is present.
func ParseDecimalFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && isDigit(s[i]) {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	v, _ := strconv.ParseFloat(s[:i], 64)
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
