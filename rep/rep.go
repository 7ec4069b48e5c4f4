// SPDX-License-Identifier: MIT
// Package rep: construction of the generator matrices from the parameter.

package rep

import (
	"github.com/ogaral/sl2word/apcx"
	"github.com/ogaral/sl2word/mobius"
)

// Rep holds the four matrices of a two-generator representation at a fixed
// bit precision. Construct with NewRep; the matrices are immutable and
// shared by every evaluation.
type Rep struct {
	prec             uint
	a, b, aInv, bInv mobius.Matrix
}

// NewRep resolves the parameter z into the generator matrices
//
//	A = ρ_a(z):  c = 1/sqrt(z² − 1)            → [[c·z, c], [c, c·z]]
//	B = ρ_b(z):  y = −z/sqrt(z² − 1),
//	             c = 1/sqrt(y² − 1)            → [[c·y, c·i], [−c·i, c·y]]
//
// and their inverses, all at prec bits. Both constructions take the
// principal branch of apcx.Sqrt throughout; a consistent branch is what
// keeps det = 1 (an inconsistent one silently flips it to −1, which the
// package tests pin by direct determinant computation).
//
// Errors:
//   - ErrDegenerateParameter when z² − 1 (or y² − 1) is exactly zero at
//     this precision — z = ±1 makes the reciprocal undefined.
//
// Complexity: O(1) complex operations plus two matrix inversions.
func NewRep(prec uint, z apcx.Complex) (*Rep, error) {
	one := apcx.One(prec)

	s := z.Square().Sub(one)
	if s.IsZero() {
		return nil, ErrDegenerateParameter
	}

	ca, err := s.Sqrt().Recip()
	if err != nil {
		return nil, ErrDegenerateParameter
	}

	caz := ca.Mul(z)
	a := mobius.New(caz, ca, ca, caz)

	y, err := z.Neg().Div(s.Sqrt())
	if err != nil {
		return nil, ErrDegenerateParameter
	}

	t := y.Square().Sub(one)
	if t.IsZero() {
		return nil, ErrDegenerateParameter
	}

	cb, err := t.Sqrt().Recip()
	if err != nil {
		return nil, ErrDegenerateParameter
	}

	var (
		cby = cb.Mul(y)
		cbi = cb.Mul(apcx.I(prec))
	)
	b := mobius.New(cby, cbi, cbi.Neg(), cby)

	aInv, err := a.Inverse()
	if err != nil {
		return nil, ErrDegenerateParameter
	}
	bInv, err := b.Inverse()
	if err != nil {
		return nil, ErrDegenerateParameter
	}

	return &Rep{prec: prec, a: a, b: b, aInv: aInv, bInv: bInv}, nil
}

// Prec reports the bit precision the representation was built at.
func (r *Rep) Prec() uint { return r.prec }

// A returns the generator matrix ρ_a(z).
func (r *Rep) A() mobius.Matrix { return r.a }

// B returns the generator matrix ρ_b(z).
func (r *Rep) B() mobius.Matrix { return r.b }

// AInv returns ρ_a(z)⁻¹.
func (r *Rep) AInv() mobius.Matrix { return r.aInv }

// BInv returns ρ_b(z)⁻¹.
func (r *Rep) BInv() mobius.Matrix { return r.bInv }

// MatrixFor maps one symbol to its matrix.
func (r *Rep) MatrixFor(s Symbol) (mobius.Matrix, error) {
	switch s {
	case SymA:
		return r.a, nil
	case SymB:
		return r.b, nil
	case SymAInv:
		return r.aInv, nil
	case SymBInv:
		return r.bInv, nil
	default:
		return mobius.Matrix{}, ErrBadSymbol
	}
}
