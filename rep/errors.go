// SPDX-License-Identifier: MIT
// Package rep: sentinel error set.
// All user-triggered failure modes surface as these sentinels, matched via
// errors.Is. Evaluation of an empty word additionally surfaces
// mobius.ErrEmptyProduct from the matrix layer.

package rep

import "errors"

var (
	// ErrDegenerateParameter is the domain error for z = ±1 (or any z whose
	// z² − 1 rounds to exactly zero): the generator entries require the
	// reciprocal of sqrt(z² − 1). Fatal, never retried.
	ErrDegenerateParameter = errors.New("rep: z² − 1 vanishes, generators undefined")

	// ErrBadSymbol rejects word input containing characters outside
	// {a, b, A, B} at the input boundary.
	ErrBadSymbol = errors.New("rep: word may contain only 'a', 'b', 'A', 'B'")

	// ErrNegativeLength rejects a negative random-word length.
	ErrNegativeLength = errors.New("rep: random word length must be non-negative")

	// ErrTargetOutOfRange rejects Stern-Brocot targets outside the tree:
	// the tree enumerates the positive rationals (plus Infinity), so a
	// non-positive target would never terminate the search.
	ErrTargetOutOfRange = errors.New("rep: rational target must be positive or Infinity")
)
