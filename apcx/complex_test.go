package apcx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogaral/sl2word/apcx"
)

// prec is the bit precision used throughout these tests; generous enough
// that float64 reference values are exact to well below tol.
const prec = 128

// tol is the absolute tolerance for comparisons against float64 references.
const tol = 1e-12

// re64 extracts the real component as a float64.
func re64(z apcx.Complex) float64 {
	f, _ := z.Re().Float64()
	return f
}

// im64 extracts the imaginary component as a float64.
func im64(z apcx.Complex) float64 {
	f, _ := z.Im().Float64()
	return f
}

// assertClose checks both components of z against float64 references.
func assertClose(t *testing.T, z apcx.Complex, wantRe, wantIm float64, msg string) {
	t.Helper()
	assert.InDelta(t, wantRe, re64(z), tol, "%s: real component", msg)
	assert.InDelta(t, wantIm, im64(z), tol, "%s: imaginary component", msg)
}

// TestNew_PanicsOnZeroPrecision pins the programmer-error contract: a zero
// bit precision is rejected with a panic, not a sentinel.
func TestNew_PanicsOnZeroPrecision(t *testing.T) {
	assert.Panics(t, func() { apcx.New(0, 1, 0) }, "prec=0 must panic")
}

// TestComplex_Arithmetic covers Add, Sub, Neg, Conj and Mul against
// schoolbook float64 references.
func TestComplex_Arithmetic(t *testing.T) {
	z := apcx.New(prec, 3, -2)
	w := apcx.New(prec, -1, 4)

	assertClose(t, z.Add(w), 2, 2, "add")
	assertClose(t, z.Sub(w), 4, -6, "sub")
	assertClose(t, z.Neg(), -3, 2, "neg")
	assertClose(t, z.Conj(), 3, 2, "conj")
	// (3−2i)(−1+4i) = −3+12i+2i+8 = 5+14i
	assertClose(t, z.Mul(w), 5, 14, "mul")
	assertClose(t, z.Square(), 5, -12, "square")
}

// TestComplex_AbsSq verifies |z|² and the derived magnitude ordering.
func TestComplex_AbsSq(t *testing.T) {
	z := apcx.New(prec, 3, 4)
	got, _ := z.AbsSq().Float64()
	assert.InDelta(t, 25.0, got, tol, "|3+4i|² = 25")

	small := apcx.New(prec, 1, 1)
	assert.Equal(t, 1, z.CmpAbs(small), "|3+4i| > |1+i|")
	assert.Equal(t, -1, small.CmpAbs(z), "|1+i| < |3+4i|")
	// Distinct values of equal magnitude must compare equal.
	assert.Equal(t, 0, apcx.New(prec, 0, 5).CmpAbs(apcx.New(prec, 5, 0)),
		"|5i| == |5|")
}

// TestComplex_Sqrt_PrincipalBranch pins the branch convention: Re ≥ 0,
// and Im ≥ 0 on the negative real axis.
func TestComplex_Sqrt_PrincipalBranch(t *testing.T) {
	assertClose(t, apcx.New(prec, 4, 0).Sqrt(), 2, 0, "sqrt(4)")
	assertClose(t, apcx.New(prec, -4, 0).Sqrt(), 0, 2, "sqrt(-4) = 2i")
	assertClose(t, apcx.New(prec, 0, 2).Sqrt(), 1, 1, "sqrt(2i) = 1+i")
	assertClose(t, apcx.New(prec, 0, -2).Sqrt(), 1, -1, "sqrt(-2i) = 1-i")

	// Round trip: sqrt(z)² ≈ z on a generic value off the axes.
	z := apcx.New(prec, -2.5, 1.75)
	assertClose(t, z.Sqrt().Square(), -2.5, 1.75, "sqrt round trip")
	// Principal branch keeps the real part non-negative.
	assert.GreaterOrEqual(t, re64(z.Sqrt()), 0.0, "principal branch: Re ≥ 0")
}

// TestComplex_Sqrt_ExactDyadic pins exactness where the root is exactly
// representable, with no rounding tolerance at all.
func TestComplex_Sqrt_ExactDyadic(t *testing.T) {
	assert.True(t, apcx.Zero(prec).Sqrt().IsZero(), "sqrt(0) = 0")
	assert.True(t, apcx.New(prec, 2.25, 0).Sqrt().Equal(apcx.New(prec, 1.5, 0)),
		"sqrt(2.25) = 1.5 exactly")
	assert.True(t, apcx.New(prec, -2.25, 0).Sqrt().Equal(apcx.New(prec, 0, 1.5)),
		"sqrt(-2.25) = 1.5i exactly")

	// Off the axes: (1.5+2i)² = −1.75+6i, and |−1.75+6i| = 6.25 is dyadic,
	// so every intermediate of the general formula stays exact.
	got := apcx.New(prec, -1.75, 6).Sqrt()
	assert.True(t, got.Equal(apcx.New(prec, 1.5, 2)), "sqrt(-1.75+6i) = 1.5+2i exactly")
}

// TestComplex_RecipDiv covers reciprocal and division plus the zero-divisor
// sentinel.
func TestComplex_RecipDiv(t *testing.T) {
	z := apcx.New(prec, 0, 2)
	inv, err := z.Recip()
	require.NoError(t, err, "recip of a nonzero value")
	assertClose(t, inv, 0, -0.5, "1/(2i) = -i/2")

	q, err := apcx.New(prec, 1, 1).Div(apcx.New(prec, 1, -1))
	require.NoError(t, err, "div by nonzero value")
	assertClose(t, q, 0, 1, "(1+i)/(1-i) = i")

	_, err = apcx.Zero(prec).Recip()
	assert.ErrorIs(t, err, apcx.ErrDivisionByZero, "recip of zero must error")
	_, err = z.Div(apcx.Zero(prec))
	assert.ErrorIs(t, err, apcx.ErrDivisionByZero, "div by zero must error")
}

// TestComplex_EqualityAndZero covers IsZero and structural equality.
func TestComplex_EqualityAndZero(t *testing.T) {
	assert.True(t, apcx.Zero(prec).IsZero(), "Zero() is zero")
	assert.False(t, apcx.I(prec).IsZero(), "i is not zero")
	assert.True(t, apcx.One(prec).Equal(apcx.New(prec, 1, 0)), "1 == 1")
	assert.False(t, apcx.One(prec).Equal(apcx.I(prec)), "1 != i")
}

// TestDigitsForPrec verifies the bits→digits derivation and its floor.
func TestDigitsForPrec(t *testing.T) {
	assert.Equal(t, 19, apcx.DigitsForPrec(64), "64 bits ≈ 19 digits")
	assert.Equal(t, int(math.Floor(256*math.Log10(2))), apcx.DigitsForPrec(256))
	assert.Equal(t, 3, apcx.DigitsForPrec(1), "tiny precision floors at 3")
}
