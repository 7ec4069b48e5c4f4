package rep_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ogaral/sl2word/apcx"
	"github.com/ogaral/sl2word/rep"
	"github.com/ogaral/sl2word/xrat"
)

// benchRep builds one representation for benchmarking.
func benchRep(b *testing.B, p uint) *rep.Rep {
	b.Helper()
	r, err := rep.NewRep(p, apcx.New(p, 2, 1))
	require.NoError(b, err)

	return r
}

// BenchmarkSternBrocot_Fibonacci locates 377/233 — consecutive Fibonacci
// numbers maximize tree depth per magnitude — at 128-bit precision.
func BenchmarkSternBrocot_Fibonacci(b *testing.B) {
	r := benchRep(b, 128)
	q := xrat.FromInts(377, 233)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.SternBrocot(q); err != nil {
			b.Fatalf("SternBrocot failed: %v", err)
		}
	}
}

// BenchmarkRandomWord_64 evaluates 64-letter random words at 128-bit
// precision.
func BenchmarkRandomWord_64(b *testing.B) {
	r := benchRep(b, 128)
	rng := rep.RNGFromSeed(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := r.RandomWord(64, rng); err != nil {
			b.Fatalf("RandomWord failed: %v", err)
		}
	}
}
