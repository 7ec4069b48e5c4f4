// Package xrat provides exact extended rationals: big.Rat values extended
// with a single symbolic Infinity.
//
// The xrat package provides:
//
//   - Extended, a tagged variant {Finite(big.Rat), Infinity}. Infinity is a
//     real tag, never a zero-denominator sentinel inside a rational.
//   - A total order (Cmp) in which Infinity is the unique maximum, decided
//     by explicit case analysis — no numeric coercion anywhere.
//   - The Farey mediant (Mediant), the single operation the Stern-Brocot
//     tree walk in rep is built on. Infinity contributes numerator 1 and
//     denominator 0 to a mediant, so Mediant(n/d, ∞) = (n+1)/d.
//
// Every operation is exact; the package never touches floating point.
package xrat
