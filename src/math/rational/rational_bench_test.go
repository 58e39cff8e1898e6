package rational

import "testing"

var (
	benchRationalResult Rational
	benchBoolResult     bool
	benchStringResult   string
)

func BenchmarkAdd(b *testing.B) {
	x, y := New(355, 113), New(113, 355)
	for i := 0; i < b.N; i++ {
		benchRationalResult = x.Add(y)
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := New(355, 113), New(113, 355)
	for i := 0; i < b.N; i++ {
		benchRationalResult = x.Mul(y)
	}
}

func BenchmarkReduce(b *testing.B) {
	r := New(3600, 15120)
	for i := 0; i < b.N; i++ {
		benchRationalResult = r.Reduce()
	}
}

func BenchmarkEqual(b *testing.B) {
	x, y := New(2, 4), New(1, 2)
	for i := 0; i < b.N; i++ {
		benchBoolResult = x.Equal(y)
	}
}

func BenchmarkGreaterThan(b *testing.B) {
	x, y := New(355, 113), New(113, 355)
	for i := 0; i < b.N; i++ {
		benchBoolResult = x.GreaterThan(y)
	}
}

func BenchmarkFromFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchRationalResult = FromFloat64(0.7308)
	}
}

func BenchmarkFloatString(b *testing.B) {
	r := New(-3, 2)
	for i := 0; i < b.N; i++ {
		benchStringResult = r.FloatString(2)
	}
}
