// Package apcx provides immutable arbitrary-precision complex numbers built
// on math/big.
//
// The apcx package provides:
//
//   - A Complex value type: a (real, imaginary) pair of big.Float values at
//     a caller-fixed bit precision, never mutated after construction.
//   - The arithmetic the representation layer needs: Add, Sub, Neg, Mul,
//     Square, Sqrt (principal branch), Recip, Div.
//   - Exact magnitude ordering via CmpAbs (compares |z|² so no square root
//     is involved) and squared magnitude via AbsSq.
//
// Precision is set once per value at construction and is carried by every
// derived value; there is no package-level default. Real square roots use
// (*big.Float).Sqrt at the value's precision.
//
// See mobius and rep for the consumers of this substrate.
package apcx
