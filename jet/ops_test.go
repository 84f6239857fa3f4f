package jet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verigrad/verigrad/jet"
)

// twoVars builds the canonical two-variable fixture:
// x = (3, (1, 0)) and y = (4, (0, 1)).
func twoVars() (jet.Jet[float64], jet.Jet[float64]) {
	return jet.Variable[float64](2, 3, 0), jet.Variable[float64](2, 4, 1)
}

// TestAdd_Linearity verifies value(f+g) = value(f)+value(g) and
// gradient(f+g) = gradient(f)+gradient(g), componentwise.
func TestAdd_Linearity(t *testing.T) {
	x, y := twoVars()

	z := x.Add(y)
	assert.Equal(t, 7.0, z.Value(), "values add")
	assert.Equal(t, 1.0, z.Deriv(0), "∂z/∂x")
	assert.Equal(t, 1.0, z.Deriv(1), "∂z/∂y")
}

// TestSub_Linearity verifies subtraction mirrors addition componentwise.
func TestSub_Linearity(t *testing.T) {
	x, y := twoVars()

	z := x.Sub(y)
	assert.Equal(t, -1.0, z.Value(), "values subtract")
	assert.Equal(t, 1.0, z.Deriv(0), "∂z/∂x")
	assert.Equal(t, -1.0, z.Deriv(1), "∂z/∂y")
}

// TestMul_ProductRule verifies gradient(f*g) = x·gy + y·gx.
func TestMul_ProductRule(t *testing.T) {
	x, y := twoVars()

	z := x.Mul(y)
	assert.Equal(t, 12.0, z.Value(), "3·4")
	assert.Equal(t, 4.0, z.Deriv(0), "∂(xy)/∂x = y")
	assert.Equal(t, 3.0, z.Deriv(1), "∂(xy)/∂y = x")
}

// TestDiv_QuotientRule verifies gradient(f/g) = gx/y − x·gy/y².
func TestDiv_QuotientRule(t *testing.T) {
	x, y := twoVars()

	z := x.Div(y)
	assert.InDelta(t, 0.75, z.Value(), approxEqual, "3/4")
	assert.InDelta(t, 0.25, z.Deriv(0), approxEqual, "∂(x/y)/∂x = 1/y")
	assert.InDelta(t, -3.0/16.0, z.Deriv(1), approxEqual, "∂(x/y)/∂y = −x/y²")
}

// TestNeg_Involutive verifies negate(negate(f)) == f in value and gradient.
func TestNeg_Involutive(t *testing.T) {
	x, y := twoVars()
	f := x.Mul(y).Add(x) // arbitrary composite

	g := f.Neg()
	assert.Equal(t, -f.Value(), g.Value(), "value negated")
	assert.Equal(t, -f.Deriv(0), g.Deriv(0), "gradient negated")

	h := g.Neg()
	assert.Equal(t, f.Value(), h.Value(), "double negation restores value")
	assert.Equal(t, f.Deriv(0), h.Deriv(0), "double negation restores gradient 0")
	assert.Equal(t, f.Deriv(1), h.Deriv(1), "double negation restores gradient 1")
}

// TestScalarOps_GradientInvariance verifies adding/subtracting a scalar
// never changes the gradient, and the remaining scalar forms follow the
// §4.3-style table.
func TestScalarOps_GradientInvariance(t *testing.T) {
	x, _ := twoVars() // (3, (1, 0))

	type scalarCase struct {
		name      string
		got       jet.Jet[float64]
		wantVal   float64
		wantGrad0 float64
		wantGrad1 float64
	}
	cases := []scalarCase{
		{"AddScalar", x.AddScalar(2), 5, 1, 0},
		{"SubScalar", x.SubScalar(2), 1, 1, 0},
		{"SubFromScalar", x.SubFromScalar(10), 7, -1, 0},
		{"MulScalar", x.MulScalar(2), 6, 2, 0},
		{"DivScalar", x.DivScalar(2), 1.5, 0.5, 0},
		{"ScalarDiv", x.ScalarDiv(9), 3, -1, 0}, // 9/3, −9·1/3²
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.wantVal, tc.got.Value(), approxEqual, "value")
			assert.InDelta(t, tc.wantGrad0, tc.got.Deriv(0), approxEqual, "gradient 0")
			assert.InDelta(t, tc.wantGrad1, tc.got.Deriv(1), approxEqual, "gradient 1")
		})
	}
}

// TestAssignOps verify the compound forms replace self with the binary
// result and return the receiver for chaining.
func TestAssignOps(t *testing.T) {
	x, y := twoVars()

	acc := x.Clone()
	got := acc.AddAssign(y)
	require.Same(t, &acc, got, "AddAssign returns the receiver")
	assert.Equal(t, 7.0, acc.Value(), "accumulated value")
	assert.Equal(t, 1.0, acc.Deriv(1), "accumulated gradient")

	acc = x.Clone()
	acc.MulAssign(y).AddScalarAssign(1).DivScalarAssign(2)
	// ((3·4)+1)/2 = 6.5; gradient ((4,3))/2 = (2, 1.5)
	assert.Equal(t, 6.5, acc.Value(), "chained compound assignment value")
	assert.Equal(t, 2.0, acc.Deriv(0), "chained compound assignment gradient 0")
	assert.Equal(t, 1.5, acc.Deriv(1), "chained compound assignment gradient 1")

	acc = x.Clone()
	acc.SubAssign(y)
	assert.Equal(t, -1.0, acc.Value(), "SubAssign value")

	acc = x.Clone()
	acc.DivAssign(y)
	assert.InDelta(t, 0.75, acc.Value(), approxEqual, "DivAssign value")

	acc = x.Clone()
	acc.SubScalarAssign(1).MulScalarAssign(3)
	assert.Equal(t, 6.0, acc.Value(), "scalar compound chain value")
	assert.Equal(t, 3.0, acc.Deriv(0), "scalar compound chain gradient")
}

// TestComparisons_ValueOnly verifies comparisons look at the value and
// ignore the gradient entirely.
func TestComparisons_ValueOnly(t *testing.T) {
	a := jet.Variable[float64](2, 5, 0) // (5, (1, 0))
	b := jet.Variable[float64](2, 5, 1) // (5, (0, 1)) — same value, different gradient
	c := jet.Constant[float64](2, 7)

	assert.True(t, a.Equal(b), "equal values with different gradients compare equal")
	assert.False(t, a.NotEqual(b), "NotEqual mirrors Equal")
	assert.True(t, a.Less(c), "5 < 7")
	assert.True(t, a.LessEqual(b), "5 <= 5")
	assert.True(t, c.Greater(a), "7 > 5")
	assert.True(t, a.GreaterEqual(b), "5 >= 5")
	assert.False(t, a.Greater(b), "5 > 5 is false")
}

// TestComparisons_ShapeFault verifies every comparison (Greater included)
// refuses mismatched dimensionalities with a fault.
func TestComparisons_ShapeFault(t *testing.T) {
	a := jet.Constant[float64](2, 1)
	b := jet.Constant[float64](3, 1)

	cases := map[string]func(){
		"Equal":        func() { a.Equal(b) },
		"NotEqual":     func() { a.NotEqual(b) },
		"Less":         func() { a.Less(b) },
		"LessEqual":    func() { a.LessEqual(b) },
		"Greater":      func() { a.Greater(b) },
		"GreaterEqual": func() { a.GreaterEqual(b) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			requireFault(t, jet.ErrShapeMismatch, fn)
		})
	}
}

// TestArithmetic_ShapeFault verifies binary arithmetic on jets of different
// tracked-variable counts is a fatal fault, never truncation or padding.
func TestArithmetic_ShapeFault(t *testing.T) {
	a := jet.Constant[float64](2, 1)
	b := jet.Constant[float64](3, 1)

	cases := map[string]func(){
		"Add": func() { a.Add(b) },
		"Sub": func() { a.Sub(b) },
		"Mul": func() { a.Mul(b) },
		"Div": func() { a.Div(b) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			requireFault(t, jet.ErrShapeMismatch, fn)
		})
	}
}

// TestFault_Diagnostic verifies the fault message names the expected and
// actual lengths — the diagnostic the fail-fast policy promises.
func TestFault_Diagnostic(t *testing.T) {
	a := jet.Constant[float64](2, 1)
	b := jet.Constant[float64](3, 1)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a fault panic")
		fault, ok := r.(*jet.Fault)
		require.True(t, ok, "panic payload must be *jet.Fault")
		assert.Equal(t, "Jet.Add", fault.Op, "fault names the operation")
		assert.Equal(t, 2, fault.Expect, "fault names the expected length")
		assert.Equal(t, 3, fault.Actual, "fault names the actual length")
		assert.ErrorContains(t, fault, "expect 2, actual 3", "message carries both lengths")
	}()
	a.Add(b)
}
