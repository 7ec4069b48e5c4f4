// SPDX-License-Identifier: MIT
// Package rep: exact Stern-Brocot word location.

package rep

import (
	"github.com/ogaral/sl2word/mobius"
	"github.com/ogaral/sl2word/xrat"
)

// SternBrocot returns the matrix of the word sitting at position q in the
// Stern-Brocot tree, without ever materializing the symbol sequence.
//
// Description:
//
//	The tree's root is 1/1; descending left or right corresponds to
//	appending a generator to the word. The walk keeps two bounds with
//	their accumulated matrices — (low, lowM) starting at (0, A) and
//	(high, highM) starting at (∞, B) — and repeatedly forms the exact
//	Farey mediant of the bounds:
//
//	  med < q:  q lies in (med, high)  → low  ← med, lowM  ← lowM·highM
//	  med > q:  q lies in (low, med)   → high ← med, highM ← lowM·highM
//	  med = q:  finished               → result = lowM·highM
//
//	Every comparison is an exact big-rational comparison; floating point
//	never participates in control flow.
//
// Termination:
//
//	Each reduced rational occupies a unique finite depth in the tree, and
//	every iteration strictly narrows (low, high) around q, so the loop
//	finishes within the sum of q's continued-fraction terms. Only an
//	irrational target could loop forever, and inputs are exact integer
//	pairs. Non-positive targets sit outside the tree and are rejected
//	up front with ErrTargetOutOfRange.
//
// Edge cases:
//   - q = ∞  ⇒ exactly B (the root's right child).
//   - q = 1  ⇒ exactly A (the root's left child).
//
// Complexity: O(Σ continued-fraction terms of q) matrix multiplications.
func (r *Rep) SternBrocot(q xrat.Extended) (mobius.Matrix, error) {
	if q.IsInf() {
		return r.b, nil
	}
	if q.Cmp(xrat.Zero()) <= 0 {
		return mobius.Matrix{}, ErrTargetOutOfRange
	}
	if q.Equal(xrat.One()) {
		return r.a, nil
	}

	var (
		low, high   = xrat.Zero(), xrat.Inf()
		lowM, highM = r.a, r.b
	)
	for {
		med := low.Mediant(high)
		switch med.Cmp(q) {
		case -1:
			low, lowM = med, lowM.Mul(highM)
		case 1:
			high, highM = med, lowM.Mul(highM)
		default:
			return lowM.Mul(highM), nil
		}
	}
}
