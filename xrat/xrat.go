// SPDX-License-Identifier: MIT
// Package xrat: the Extended value type, its total order and the Farey
// mediant. Extended is immutable: internal big.Rat/big.Int storage is
// copied on the way in and on the way out.

package xrat

import "math/big"

// Extended is an exact rational extended with a symbolic Infinity
// (conceptually 1/0). The zero value is Finite 0/1 and is usable as-is.
//
// Extended is a value type; all operations return fresh values.
type Extended struct {
	fin *big.Rat // nil ⇔ the value is Infinity or the zero value (0/1)
	inf bool
}

// Inf returns the Infinity value, the unique maximum of the order.
func Inf() Extended { return Extended{inf: true} }

// Zero returns 0/1.
func Zero() Extended { return Extended{fin: new(big.Rat)} }

// One returns 1/1.
func One() Extended { return Extended{fin: big.NewRat(1, 1)} }

// FromInts builds p/q from two unsigned integers. q = 0 denotes Infinity,
// matching the CLI convention for selecting the tree root's right child.
func FromInts(p, q uint64) Extended {
	if q == 0 {
		return Inf()
	}

	var r big.Rat
	r.SetFrac(new(big.Int).SetUint64(p), new(big.Int).SetUint64(q))

	return Extended{fin: &r}
}

// FromRat wraps a finite rational. The input is copied, never aliased.
func FromRat(r *big.Rat) Extended {
	return Extended{fin: new(big.Rat).Set(r)}
}

// IsInf reports whether the value is Infinity.
func (x Extended) IsInf() bool { return x.inf }

// rat returns the finite payload, treating the zero value as 0/1.
// Callers must have excluded Infinity.
func (x Extended) rat() *big.Rat {
	if x.fin == nil {
		return new(big.Rat)
	}

	return x.fin
}

// Num returns a copy of the numerator in lowest terms; Infinity reports 1.
func (x Extended) Num() *big.Int {
	if x.inf {
		return big.NewInt(1)
	}

	return new(big.Int).Set(x.rat().Num())
}

// Denom returns a copy of the denominator in lowest terms; Infinity
// reports 0.
func (x Extended) Denom() *big.Int {
	if x.inf {
		return new(big.Int)
	}

	return new(big.Int).Set(x.rat().Denom())
}

// Cmp totally orders Extended values, returning −1, 0 or +1. The order is
// decided by case analysis over the variant: Infinity is the unique
// maximum; finite values compare as exact rationals.
func (x Extended) Cmp(y Extended) int {
	switch {
	case x.inf && y.inf:
		return 0
	case x.inf:
		return 1
	case y.inf:
		return -1
	default:
		return x.rat().Cmp(y.rat())
	}
}

// Equal reports structural equality: both Infinity, or equal rationals.
func (x Extended) Equal(y Extended) bool { return x.Cmp(y) == 0 }

// Mediant returns the Farey mediant of x and y:
//
//	(n1 + n2) / (d1 + d2)
//
// with Infinity contributing 1/0. A zero denominator sum yields Infinity
// (only reachable when both operands are Infinity). For finite x < y the
// mediant lies strictly between them; that betweenness is what makes the
// Stern-Brocot walk in rep a binary search.
func (x Extended) Mediant(y Extended) Extended {
	var (
		num = new(big.Int).Add(x.Num(), y.Num())
		den = new(big.Int).Add(x.Denom(), y.Denom())
	)
	if den.Sign() == 0 {
		return Inf()
	}

	var r big.Rat

	return Extended{fin: r.SetFrac(num, den)}
}

// String renders the value as "p/q", or "inf" for Infinity.
func (x Extended) String() string {
	if x.inf {
		return "inf"
	}

	return x.rat().RatString()
}
