package numeric

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDecimalInt(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out int64
	}{
		{"42", 42},
		{"+8", 8},
		{"-17", -17},
		{"  -17xyz", -17},
		{"12.9", 12},
		{"007", 7},
		{"\t99 bottles", 99},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"+", 0},
		{".5", 0},
	} {
		t.Run(fmt.Sprintf("%d/%q=%d", idx, tc.in, tc.out), func(t *testing.T) {
			result := ParseDecimalInt(tc.in)
			require.Equal(t, tc.out, result)
		})
	}
}

func TestParseDecimalFloat(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out float64
	}{
		{"3.25", 3.25},
		{"-0.5", -0.5},
		{".5", 0.5},
		{"-.5", -0.5},
		{"5.", 5},
		{"1e3", 1000},
		{"1E2", 100},
		{"1e+2", 100},
		{"2.5e-1", 0.25},
		{"1e", 1},
		{"7e-", 7},
		{"  2.5rem", 2.5},
		{"6.02e23", 6.02e23},
		{"abc", 0},
		{"", 0},
		{".", 0},
		{"+", 0},
		{"e5", 0},
	} {
		t.Run(fmt.Sprintf("%d/%q=%v", idx, tc.in, tc.out), func(t *testing.T) {
			result := ParseDecimalFloat(tc.in)
			require.Equal(t, tc.out, result)
		})
	}
}
