// Package sl2word computes matrix representatives of words in the free
// group on two generators, inside a two-generator family of unit-determinant
// 2×2 complex matrices parameterized by a single complex value z.
//
// What is sl2word?
//
//	A small arbitrary-precision toolkit for studying group elements through
//	their matrix images:
//		• apcx/   — arbitrary-precision complex numbers on math/big
//		• xrat/   — exact extended rationals with a symbolic Infinity
//		• mobius/ — 2×2 complex matrix algebra: product, inverse, eigenpair
//		• rep/    — the representation itself: generators from z, word
//		            evaluation, and an exact Stern-Brocot word locator
//		• cmd/sl2word — command-line driver
//
// Given z, the two generator matrices A = ρ_a(z) and B = ρ_b(z) (and their
// inverses) are built once at a caller-chosen bit precision. A word over
// {a, b, A, B} then evaluates to the ordered product of its symbols'
// matrices, and its trace and dominant eigenpair describe the group element.
// Alternatively a positive rational p/q selects a word by its position in
// the Stern-Brocot tree; the locator walks the tree with exact big-rational
// mediants and never touches floating point.
//
// All rational bookkeeping is exact; all complex arithmetic is rounded at
// the configured precision. A built-in eigenvector self-check reports when
// that precision was insufficient.
//
//	go get github.com/ogaral/sl2word
package sl2word
