package mobius_test

import (
	"fmt"

	"github.com/ogaral/sl2word/apcx"
	"github.com/ogaral/sl2word/mobius"
)

// ExampleProduct evaluates a two-letter word of shears: the exponents add.
func ExampleProduct() {
	const prec = 64
	shear := mobius.New(
		apcx.One(prec), apcx.One(prec),
		apcx.Zero(prec), apcx.One(prec),
	)

	m, err := mobius.Product([]mobius.Matrix{shear, shear})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(m.Text(5))
	// Output:
	// [(1 0) (2 0); (0 0) (1 0)]
}

// ExampleMatrix_DominantEigenpair extracts the larger eigenvalue of a
// diagonal unit-determinant matrix; the preferred rank-deficient row
// vanishes here, so the fallback row supplies the eigenvector.
func ExampleMatrix_DominantEigenpair() {
	const prec = 64
	m := mobius.New(
		apcx.New(prec, 2, 0), apcx.Zero(prec),
		apcx.Zero(prec), apcx.New(prec, 0.5, 0),
	)

	ep, err := m.DominantEigenpair()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ep.Value.Text(5))
	fmt.Println(ep.Vector[0].Text(5), ep.Vector[1].Text(5))
	// Output:
	// (2 0)
	// (1.5 0) (0 0)
}
