// SPDX-License-Identifier: MIT
// Package mobius: dominant eigenpair of a unit-determinant matrix and the
// numerical eigenvector self-check.

package mobius

import "github.com/ogaral/sl2word/apcx"

// Eigenpair couples an eigenvalue with one associated eigenvector.
type Eigenpair struct {
	Value  apcx.Complex
	Vector [2]apcx.Complex
}

// DominantEigenpair solves λ² − tλ + 1 = 0 for t = Trace(m) — the
// characteristic polynomial of a unit-determinant 2×2 matrix — and returns
// the root of larger magnitude with an eigenvector.
//
// Algorithm:
//  1. x = sqrt(t² − 4); λ₋ = (t − x)/2, λ₊ = (t + x)/2.
//  2. Compare |λ₋| and |λ₊| via apcx.CmpAbs. A tie resolves to the minus
//     branch; downstream classification of boundary elements depends on
//     this convention, so tests pin it.
//  3. M − λI has rank ≤ 1 at an eigenvalue, so one of its rows (up to sign)
//     already is an eigenvector: the minus branch reads (λ−D, C) off the
//     second row, the plus branch (B, λ−A) off the first.
//  4. If the selected row is numerically zero, the other row of the same
//     M − λI is tried; if both vanish the eigenvector is ill-defined and
//     ErrEigenvectorDegenerate is returned — never a zero vector posing as
//     a valid result.
//
// Complexity: O(1) complex operations at the matrix's precision.
func (m Matrix) DominantEigenpair() (Eigenpair, error) {
	var (
		prec = m.Prec()
		t    = m.Trace()
		half = apcx.New(prec, 0.5, 0)
		x    = t.Square().Sub(apcx.New(prec, 4, 0)).Sqrt()

		lamMinus = t.Sub(x).Mul(half)
		lamPlus  = t.Add(x).Mul(half)
	)

	var lam apcx.Complex
	var row, alt [2]apcx.Complex
	if lamMinus.CmpAbs(lamPlus) >= 0 {
		lam = lamMinus
		row = [2]apcx.Complex{lam.Sub(m.D), m.C}
		alt = [2]apcx.Complex{m.B, lam.Sub(m.A)}
	} else {
		lam = lamPlus
		row = [2]apcx.Complex{m.B, lam.Sub(m.A)}
		alt = [2]apcx.Complex{lam.Sub(m.D), m.C}
	}

	if vecZero(row) {
		if vecZero(alt) {
			return Eigenpair{}, ErrEigenvectorDegenerate
		}
		row = alt
	}

	return Eigenpair{Value: lam, Vector: row}, nil
}

// vecZero reports whether both components are exactly zero at their
// precision.
func vecZero(v [2]apcx.Complex) bool {
	return v[0].IsZero() && v[1].IsZero()
}

// IsEigenvector checks numerically whether v = (x, y) is an eigenvector of
// m: it derives the observed eigenvalue λ_obs = (Mv)ₓ/x and accepts when
// |λ_obs·y − (Mv)_y| stays below the configured tolerance (DefaultEpsilon
// unless overridden via WithEpsilon).
//
// This is a diagnostic self-check, not an enforced invariant: a false
// return advises the caller to raise the precision.
//
// Errors:
//   - ErrZeroLeadingEntry when x = 0 (the ratio is undefined).
func (m Matrix) IsEigenvector(v [2]apcx.Complex, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	var (
		ux = m.A.Mul(v[0]).Add(m.B.Mul(v[1]))
		uy = m.C.Mul(v[0]).Add(m.D.Mul(v[1]))
	)

	obs, err := ux.Div(v[0])
	if err != nil {
		return false, ErrZeroLeadingEntry
	}

	var (
		diff = obs.Mul(v[1]).Sub(uy)
		eps  = apcx.New(m.Prec(), o.eps, 0)
	)

	return diff.CmpAbs(eps) < 0, nil
}
