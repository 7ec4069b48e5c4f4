// SPDX-License-Identifier: MIT
// Package apcx: textual rendering of Complex values.

package apcx

import (
	"fmt"
	"math"
)

// minDigits is the floor applied by DigitsForPrec so that even tiny
// precisions render something legible.
const minDigits = 3

// DigitsForPrec derives a significant-digit count from a bit precision:
// ⌊prec·log10(2)⌋, floored at minDigits. A 64-bit value prints ~19 digits,
// a 256-bit value ~77.
func DigitsForPrec(prec uint) int {
	d := int(math.Floor(float64(prec) * math.Log10(2)))
	if d < minDigits {
		d = minDigits
	}

	return d
}

// Text renders z as "(re im)" with the given number of significant digits
// in 'g' format.
func (z Complex) Text(digits int) string {
	if digits < 1 {
		digits = 1
	}

	return fmt.Sprintf("(%s %s)", z.re.Text('g', digits), z.im.Text('g', digits))
}

// String renders z with a digit count derived from its precision.
func (z Complex) String() string {
	return z.Text(DigitsForPrec(z.prec))
}
