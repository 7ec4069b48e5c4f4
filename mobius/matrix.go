// SPDX-License-Identifier: MIT
// Package mobius: the Matrix value type and its ring operations.

package mobius

import (
	"fmt"

	"github.com/ogaral/sl2word/apcx"
)

// Matrix is an immutable 2×2 complex matrix [[A, B], [C, D]]. Operations
// never mutate their operands; replace values, don't edit them.
type Matrix struct {
	A, B, C, D apcx.Complex
}

// New assembles a Matrix from its four entries in row-major order.
func New(a, b, c, d apcx.Complex) Matrix {
	return Matrix{A: a, B: b, C: c, D: d}
}

// Identity returns the 2×2 identity at prec bits.
func Identity(prec uint) Matrix {
	return Matrix{
		A: apcx.One(prec), B: apcx.Zero(prec),
		C: apcx.Zero(prec), D: apcx.One(prec),
	}
}

// Prec reports the bit precision of the entries (taken from A; matrices are
// always assembled at a single precision).
func (m Matrix) Prec() uint { return m.A.Prec() }

// Det returns the determinant A·D − B·C.
func (m Matrix) Det() apcx.Complex {
	return m.A.Mul(m.D).Sub(m.B.Mul(m.C))
}

// Trace returns A + D.
func (m Matrix) Trace() apcx.Complex {
	return m.A.Add(m.D)
}

// Mul returns the non-commutative product m·n.
//
// Complexity: eight complex multiplications, four additions.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A.Mul(n.A).Add(m.B.Mul(n.C)),
		B: m.A.Mul(n.B).Add(m.B.Mul(n.D)),
		C: m.C.Mul(n.A).Add(m.D.Mul(n.C)),
		D: m.C.Mul(n.B).Add(m.D.Mul(n.D)),
	}
}

// Inverse returns m⁻¹ = (1/det)·[[D, −B], [−C, A]], or ErrSingular when the
// determinant is exactly zero at this precision.
func (m Matrix) Inverse() (Matrix, error) {
	inv, err := m.Det().Recip()
	if err != nil {
		return Matrix{}, ErrSingular
	}

	return Matrix{
		A: inv.Mul(m.D),
		B: inv.Mul(m.B.Neg()),
		C: inv.Mul(m.C.Neg()),
		D: inv.Mul(m.A),
	}, nil
}

// Product left-folds Mul over a non-empty ordered sequence, seeding with
// the first element — the leftmost matrix is applied first. An empty
// sequence returns ErrEmptyProduct; there is no silent identity fallback.
//
// Complexity: O(len(ms)) matrix multiplications.
func Product(ms []Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return Matrix{}, ErrEmptyProduct
	}

	res := ms[0]
	for _, m := range ms[1:] {
		res = res.Mul(m)
	}

	return res, nil
}

// Equal reports exact structural equality of all four entries.
func (m Matrix) Equal(n Matrix) bool {
	return m.A.Equal(n.A) && m.B.Equal(n.B) && m.C.Equal(n.C) && m.D.Equal(n.D)
}

// Text renders the matrix row by row with the given significant digits.
func (m Matrix) Text(digits int) string {
	return fmt.Sprintf("[%s %s; %s %s]",
		m.A.Text(digits), m.B.Text(digits), m.C.Text(digits), m.D.Text(digits))
}

// String renders the matrix with a digit count derived from its precision.
func (m Matrix) String() string {
	return m.Text(apcx.DigitsForPrec(m.Prec()))
}
