// SPDX-License-Identifier: MIT
// Package rep: word symbols and their textual form.

package rep

// Symbol is one letter of the free-group alphabet: a generator or the
// inverse of one.
type Symbol byte

const (
	// SymA is the generator a.
	SymA Symbol = 'a'
	// SymB is the generator b.
	SymB Symbol = 'b'
	// SymAInv is the inverse a⁻¹, written 'A'.
	SymAInv Symbol = 'A'
	// SymBInv is the inverse b⁻¹, written 'B'.
	SymBInv Symbol = 'B'
)

// Word is a finite ordered sequence of symbols. It evaluates to the matrix
// product of its symbols' matrices, leftmost symbol applied first.
type Word []Symbol

// ParseWord validates and converts a string over {a, b, A, B}.
// Any other character yields ErrBadSymbol; validation happens here, at the
// input boundary, so evaluation never sees a malformed symbol.
//
// Complexity: O(len(s)).
func ParseWord(s string) (Word, error) {
	w := make(Word, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case 'a', 'b', 'A', 'B':
			w[i] = Symbol(c)
		default:
			return nil, ErrBadSymbol
		}
	}

	return w, nil
}

// String renders the word as its letter sequence.
func (w Word) String() string {
	buf := make([]byte, len(w))
	for i, s := range w {
		buf[i] = byte(s)
	}

	return string(buf)
}
