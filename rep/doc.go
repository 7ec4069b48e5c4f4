// Package rep builds the two-generator matrix representation from a complex
// parameter and evaluates free-group words in it.
//
// The rep package provides:
//
//   - NewRep: constructs the generator matrices A = ρ_a(z), B = ρ_b(z) and
//     their inverses once, at a caller-fixed bit precision; they are reused
//     immutably for every subsequent evaluation.
//   - Word evaluation: an explicit symbol sequence over {a, b, A, B}, a
//     uniformly random sequence of a given length, or a positive rational
//     target located in the Stern-Brocot tree.
//   - SternBrocot: an exact binary search over the extended-rational line
//     that accumulates the word's matrix product directly, never
//     materializing the symbol sequence and never comparing through
//     floating point.
//   - Analyze: trace, dominant eigenpair and the eigenvector self-check,
//     bundled into a Result for reporting.
//
// The parameter domain excludes z = ±1: there z² − 1 vanishes and the
// generator entries would divide by zero, so NewRep fails with
// ErrDegenerateParameter instead of propagating a sentinel value.
package rep
