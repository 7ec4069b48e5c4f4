// Package mobius implements 2×2 complex matrix algebra for unit-determinant
// matrices at arbitrary precision.
//
// The mobius package provides:
//
//   - Matrix, an immutable value type of four apcx.Complex entries
//     [[A, B], [C, D]]; every operation returns a fresh value, so equational
//     reasoning (associativity, identity laws) holds without aliasing
//     concerns.
//   - Det, Trace, Mul, Inverse, Identity and Product (the left fold used to
//     evaluate words).
//   - DominantEigenpair: the eigenvalue of larger magnitude of a
//     unit-determinant matrix, with its eigenvector read off a rank-deficient
//     row of M − λI, and IsEigenvector, a numerical self-check whose
//     tolerance is configurable via functional options.
//
// The package models exactly the 2×2 case; it is deliberately not a general
// linear-algebra library. Matrices produced by rep's generator constructor
// and closed under Mul/Inverse have determinant 1 modulo rounding at the
// configured precision, which is what DominantEigenpair relies on
// (λ² − tλ + 1 = 0).
package mobius
