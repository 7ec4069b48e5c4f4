// SPDX-License-Identifier: MIT
// Package mobius: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels and tests check them via errors.Is. No operation
// panics on user-triggered conditions; panics are reserved for programmer
// errors in option constructors.

package mobius

import "errors"

var (
	// ErrSingular is returned by Inverse when the determinant is exactly
	// zero at the configured precision. Unreachable for matrices built by
	// rep's generator constructor and their products.
	ErrSingular = errors.New("mobius: singular matrix")

	// ErrEmptyProduct is returned by Product for an empty sequence. The
	// fold has no seed; callers evaluating words must reject zero-length
	// input or accept the identity themselves, explicitly.
	ErrEmptyProduct = errors.New("mobius: product of empty sequence")

	// ErrEigenvectorDegenerate signals that both candidate eigenvector rows
	// of M − λI vanished numerically, so no meaningful eigenvector exists
	// at this precision. Callers should raise the precision.
	ErrEigenvectorDegenerate = errors.New("mobius: eigenvector degenerate at this precision")

	// ErrZeroLeadingEntry is returned by IsEigenvector when the first
	// component of the candidate vector is zero; the observed-eigenvalue
	// ratio (Mv)ₓ/x is then undefined.
	ErrZeroLeadingEntry = errors.New("mobius: eigenvector has zero leading entry")
)
