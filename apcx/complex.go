// SPDX-License-Identifier: MIT
// Package apcx: the Complex value type and its arithmetic.
// All operations are pure: they allocate fresh big.Float storage and leave
// both operands untouched. Binary operations produce results at the
// receiver's precision.

package apcx

import (
	"errors"
	"math/big"
)

var (
	// ErrDivisionByZero is returned by Recip and Div when the divisor is
	// exactly zero at the configured precision.
	ErrDivisionByZero = errors.New("apcx: division by zero")
)

// panic message for the programmer error of a zero bit precision; user-facing
// validation of the precision flag happens at the CLI boundary.
const panicPrecisionZero = "apcx: precision must be a positive bit count"

// Complex is an immutable arbitrary-precision complex number: a pair of
// big.Float values at a fixed bit precision.
//
// The zero Complex is not usable; construct values with New, FromFloats,
// Zero, One or I.
type Complex struct {
	re, im *big.Float
	prec   uint
}

// newFloat allocates one big.Float at the given precision.
func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// New constructs a Complex at prec bits from two float64 components.
// Panics on prec == 0 (programmer error).
func New(prec uint, re, im float64) Complex {
	if prec == 0 {
		panic(panicPrecisionZero)
	}

	return Complex{
		re:   newFloat(prec).SetFloat64(re),
		im:   newFloat(prec).SetFloat64(im),
		prec: prec,
	}
}

// FromFloats constructs a Complex at prec bits from two big.Float
// components. The inputs are copied (and rounded to prec), never aliased.
// Panics on prec == 0 (programmer error).
func FromFloats(prec uint, re, im *big.Float) Complex {
	if prec == 0 {
		panic(panicPrecisionZero)
	}

	return Complex{
		re:   newFloat(prec).Set(re),
		im:   newFloat(prec).Set(im),
		prec: prec,
	}
}

// Zero returns 0 at prec bits.
func Zero(prec uint) Complex { return New(prec, 0, 0) }

// One returns 1 at prec bits.
func One(prec uint) Complex { return New(prec, 1, 0) }

// I returns the imaginary unit at prec bits.
func I(prec uint) Complex { return New(prec, 0, 1) }

// Prec reports the bit precision the value was constructed at.
func (z Complex) Prec() uint { return z.prec }

// Re returns a copy of the real component.
func (z Complex) Re() *big.Float { return newFloat(z.prec).Set(z.re) }

// Im returns a copy of the imaginary component.
func (z Complex) Im() *big.Float { return newFloat(z.prec).Set(z.im) }

// IsZero reports whether both components are exactly zero.
func (z Complex) IsZero() bool {
	return z.re.Sign() == 0 && z.im.Sign() == 0
}

// Equal reports exact structural equality of the two components.
func (z Complex) Equal(w Complex) bool {
	return z.re.Cmp(w.re) == 0 && z.im.Cmp(w.im) == 0
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{
		re:   newFloat(z.prec).Add(z.re, w.re),
		im:   newFloat(z.prec).Add(z.im, w.im),
		prec: z.prec,
	}
}

// Sub returns z − w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{
		re:   newFloat(z.prec).Sub(z.re, w.re),
		im:   newFloat(z.prec).Sub(z.im, w.im),
		prec: z.prec,
	}
}

// Neg returns −z.
func (z Complex) Neg() Complex {
	return Complex{
		re:   newFloat(z.prec).Neg(z.re),
		im:   newFloat(z.prec).Neg(z.im),
		prec: z.prec,
	}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{
		re:   newFloat(z.prec).Set(z.re),
		im:   newFloat(z.prec).Neg(z.im),
		prec: z.prec,
	}
}

// Mul returns z · w using the schoolbook product
// (ac − bd) + (ad + bc)i.
//
// Complexity: four big.Float multiplications, two additions.
func (z Complex) Mul(w Complex) Complex {
	var (
		ac = newFloat(z.prec).Mul(z.re, w.re)
		bd = newFloat(z.prec).Mul(z.im, w.im)
		ad = newFloat(z.prec).Mul(z.re, w.im)
		bc = newFloat(z.prec).Mul(z.im, w.re)
	)

	return Complex{
		re:   ac.Sub(ac, bd),
		im:   ad.Add(ad, bc),
		prec: z.prec,
	}
}

// Square returns z².
func (z Complex) Square() Complex { return z.Mul(z) }

// AbsSq returns |z|² = re² + im² as a big.Float at z's precision.
// Magnitude ordering of complex values only ever needs |z|², so callers
// should prefer CmpAbs over materializing |z| itself.
func (z Complex) AbsSq() *big.Float {
	var (
		rr = newFloat(z.prec).Mul(z.re, z.re)
		ii = newFloat(z.prec).Mul(z.im, z.im)
	)

	return rr.Add(rr, ii)
}

// CmpAbs compares |z| and |w|, returning −1, 0 or +1. The comparison is
// performed on squared magnitudes, which preserves the ordering.
func (z Complex) CmpAbs(w Complex) int {
	return z.AbsSq().Cmp(w.AbsSq())
}

// Sqrt returns the principal square root of z: the root with Re ≥ 0, and
// Im ≥ 0 when Re = 0 (so negative reals map to the positive imaginary
// axis). A consistent branch is load-bearing for the generator matrices in
// rep: mixing branches flips their determinant to −1.
//
// Implementation: with r = |z| and z = x + iy,
//
//	Re = sqrt((r + x)/2),  Im = copysign(sqrt((r − x)/2), y),
//
// with the pure-real cases handled exactly.
func (z Complex) Sqrt() Complex {
	prec := z.prec

	if z.IsZero() {
		return Zero(prec)
	}

	if z.im.Sign() == 0 {
		if z.re.Sign() >= 0 {
			return Complex{
				re:   newFloat(prec).Sqrt(z.re),
				im:   newFloat(prec),
				prec: prec,
			}
		}

		return Complex{
			re:   newFloat(prec),
			im:   newFloat(prec).Sqrt(newFloat(prec).Neg(z.re)),
			prec: prec,
		}
	}

	var (
		r    = newFloat(prec).Sqrt(z.AbsSq()) // |z|
		half = newFloat(prec).SetFloat64(0.5)
		rpx  = newFloat(prec).Add(r, z.re)
		rmx  = newFloat(prec).Sub(r, z.re)
	)
	rpx.Mul(rpx, half)
	rmx.Mul(rmx, half)
	// r ≥ |x| holds exactly; rounding may leave a negative residue here.
	if rpx.Sign() < 0 {
		rpx.SetInt64(0)
	}
	if rmx.Sign() < 0 {
		rmx.SetInt64(0)
	}

	var (
		reOut = newFloat(prec).Sqrt(rpx)
		imOut = newFloat(prec).Sqrt(rmx)
	)
	if z.im.Sign() < 0 {
		imOut.Neg(imOut)
	}

	return Complex{re: reOut, im: imOut, prec: prec}
}

// Recip returns 1/z, or ErrDivisionByZero when z = 0.
func (z Complex) Recip() (Complex, error) {
	if z.IsZero() {
		return Complex{}, ErrDivisionByZero
	}

	var (
		den = z.AbsSq()
		re  = newFloat(z.prec).Quo(z.re, den)
		im  = newFloat(z.prec).Quo(newFloat(z.prec).Neg(z.im), den)
	)

	return Complex{re: re, im: im, prec: z.prec}, nil
}

// Div returns z/w, or ErrDivisionByZero when w = 0.
func (z Complex) Div(w Complex) (Complex, error) {
	inv, err := w.Recip()
	if err != nil {
		return Complex{}, err
	}

	return z.Mul(inv), nil
}
