// SPDX-License-Identifier: MIT
// Package rep: the word evaluator driving mobius.Product / SternBrocot and
// the analysis bundle for reporting.

package rep

import (
	"math/rand"

	"github.com/ogaral/sl2word/apcx"
	"github.com/ogaral/sl2word/mobius"
	"github.com/ogaral/sl2word/xrat"
)

// Word evaluates an explicit symbol sequence: each symbol maps to its
// matrix and the sequence folds left to right, leftmost symbol applied
// first. An empty word surfaces mobius.ErrEmptyProduct — the fold has no
// seed and there is deliberately no identity fallback.
//
// Complexity: O(len(w)) matrix multiplications.
func (r *Rep) Word(w Word) (mobius.Matrix, error) {
	ms := make([]mobius.Matrix, len(w))
	for i, s := range w {
		m, err := r.MatrixFor(s)
		if err != nil {
			return mobius.Matrix{}, err
		}
		ms[i] = m
	}

	return mobius.Product(ms)
}

// RandomWord samples n symbols uniformly over {a, b, A, B} from rng and
// evaluates the resulting word. The sampled word is returned alongside the
// matrix so runs are reproducible and reportable. rng==nil uses the
// default deterministic stream (seed-0 policy of RNGFromSeed).
//
// Errors:
//   - ErrNegativeLength for n < 0.
//   - mobius.ErrEmptyProduct for n = 0 (empty word, same as Word).
//
// Complexity: O(n) draws and matrix multiplications.
func (r *Rep) RandomWord(n int, rng *rand.Rand) (mobius.Matrix, Word, error) {
	if n < 0 {
		return mobius.Matrix{}, nil, ErrNegativeLength
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}

	alphabet := [4]Symbol{SymA, SymB, SymAInv, SymBInv}
	w := make(Word, n)
	for i := range w {
		w[i] = alphabet[rng.Intn(len(alphabet))]
	}

	m, err := r.Word(w)
	if err != nil {
		return mobius.Matrix{}, nil, err
	}

	return m, w, nil
}

// Rational evaluates the word located at q in the Stern-Brocot tree.
// See SternBrocot for semantics and edge cases.
func (r *Rep) Rational(q xrat.Extended) (mobius.Matrix, error) {
	return r.SternBrocot(q)
}

// Result bundles everything the driver reports about one evaluated word.
type Result struct {
	// Matrix is the word's matrix representative.
	Matrix mobius.Matrix
	// Trace is A + D of that matrix.
	Trace apcx.Complex
	// Eigen is the dominant eigenpair.
	Eigen mobius.Eigenpair
	// PrecisionOK is false when the eigenvector self-check failed,
	// advising the caller to raise the precision. It is a soft signal —
	// never an error.
	PrecisionOK bool
}

// Analyze derives the reportable quantities from a result matrix: trace,
// dominant eigenpair, and the numerical eigenvector self-check.
//
// The self-check requires a nonzero leading eigenvector component; when
// that precondition fails the check is inapplicable (not failed) and
// PrecisionOK stays true. A degenerate eigenpair, by contrast, is a hard
// precision-insufficiency signal and propagates as
// mobius.ErrEigenvectorDegenerate.
func Analyze(m mobius.Matrix, opts ...mobius.Option) (Result, error) {
	ep, err := m.DominantEigenpair()
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Matrix:      m,
		Trace:       m.Trace(),
		Eigen:       ep,
		PrecisionOK: true,
	}

	ok, err := m.IsEigenvector(ep.Vector, opts...)
	if err == nil && !ok {
		res.PrecisionOK = false
	}

	return res, nil
}
