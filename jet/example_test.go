package jet_test

import (
	"fmt"

	"github.com/verigrad/verigrad/jet"
)

// ExampleVariable demonstrates the canonical forward-mode pass: seed one
// jet per independent input with its basis tangent, run the formula once,
// and read the full analytic gradient off the result.
//
// Scenario:
//
//	Track two variables x=3 and y=4 and compute z = x·y + eˣ.
//	Expected: value = 12 + e³, gradient = (y + e³, x).
func ExampleVariable() {
	x := jet.Variable[float64](2, 3, 0)
	y := jet.Variable[float64](2, 4, 1)

	z := x.Mul(y).Add(x.Exp())

	fmt.Printf("value  = %.4f\n", z.Value())
	fmt.Printf("dz/dx  = %.4f\n", z.Deriv(0))
	fmt.Printf("dz/dy  = %.4f\n", z.Deriv(1))
	// Output:
	// value  = 32.0855
	// dz/dx  = 24.0855
	// dz/dy  = 3.0000
}

// ExampleMax demonstrates that max selects the whole dual number of the
// larger-valued operand — its gradient travels with it.
func ExampleMax() {
	f := jet.Variable[float64](2, 3, 0) // (3, (1, 0))
	g := jet.Variable[float64](2, 5, 1) // (5, (0, 1))

	m := jet.Max[float64](f, g)

	fmt.Println(m)
	// Output:
	// [5, (0, 1)]
}

// ExampleJet_Sqrt demonstrates the single-variable scenario: z = √x at x=4.
func ExampleJet_Sqrt() {
	x := jet.Variable[float64](1, 4, 0)

	z := x.Sqrt()

	fmt.Printf("value = %g, dz/dx = %g\n", z.Value(), z.Deriv(0))
	// Output:
	// value = 2, dz/dx = 0.25
}

// ExampleNumber demonstrates the write-once property: one generic formula,
// evaluated on plain scalars for the value and on jets for the gradient.
func ExampleNumber() {
	// formula below is f(a, b) = a·b + √b, written once against the bound.
	valueOnly := formula[float64](jet.S(2.0), jet.S(9.0))
	withGrad := formula[float64](
		jet.Variable[float64](2, 2, 0),
		jet.Variable[float64](2, 9, 1),
	)

	fmt.Printf("scalar value = %g\n", valueOnly.Value())
	fmt.Printf("jet value    = %g\n", withGrad.Value())
	fmt.Printf("gradient     = (%g, %g)\n", withGrad.Deriv(0), withGrad.Deriv(1))
	// Output:
	// scalar value = 21
	// jet value    = 21
	// gradient     = (9, 2.1666666666666665)
}

// formula is the shared source for ExampleNumber: f(a, b) = a·b + √b.
func formula[T jet.Float, N jet.Number[N, T]](a, b N) N {
	return a.Mul(b).Add(jet.Sqrt[T](b))
}
