// SPDX-License-Identifier: MIT

// Package mobius: functional configuration for the numeric self-check.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithEpsilon with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package mobius

import "math"

// DefaultEpsilon is the absolute tolerance of the IsEigenvector self-check:
// |λ_obs·y − (Mv)_y| must stay below it. The value is a fixed diagnostic
// threshold, not a function of precision; raise the precision rather than
// the tolerance when the check fails.
const DefaultEpsilon = 1e-6

// panic message for WithEpsilon (no magic strings).
const panicEpsilonInvalid = "mobius: WithEpsilon: eps must be finite, positive"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept ...Option and resolve them via gatherOptions.
type Options struct {
	eps float64 // > 0; DefaultEpsilon
}

// WithEpsilon sets the absolute tolerance used by IsEigenvector.
//
// Inputs:
//   - eps: positive finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins). This is the canonical internal resolution point.
//
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
