// Package jet: the Number bound and the plain Scalar implementation.
//
// Go has no operator overloading, so the "same formula runs on a plain
// scalar or on a dual number" property is expressed as a generic method
// bound instead: write the formula once against Number, instantiate it with
// Scalar[T] for ordinary evaluation and with Jet[T] for value-plus-gradient
// evaluation. That single source is the whole point — it lets any formula be
// gradient-checked without a separate hand-written derivative.

package jet

import "math"

// Number is the numeric capability required of a differentiable formula:
// field arithmetic, scalar mixing, value-only comparisons, and the
// elementary functions exp/log/sqrt. N is the implementing type itself
// (a recursive bound), T its underlying scalar.
//
// Implemented by both Jet[T] and Scalar[T]:
//
//	func energy[T jet.Float, N jet.Number[N, T]](x, y N) N {
//	    return x.Mul(y).Add(x.Exp())
//	}
//
//	v := energy[float64, jet.Scalar[float64]](...)  // plain value
//	d := energy[float64, jet.Jet[float64]](...)     // value + gradient
type Number[N any, T Float] interface {
	Add(N) N
	Sub(N) N
	Mul(N) N
	Div(N) N
	Neg() N

	AddScalar(T) N
	SubScalar(T) N
	SubFromScalar(T) N
	MulScalar(T) N
	DivScalar(T) N
	ScalarDiv(T) N

	Exp() N
	Log() N
	Sqrt() N

	Equal(N) bool
	NotEqual(N) bool
	Less(N) bool
	LessEqual(N) bool
	Greater(N) bool
	GreaterEqual(N) bool

	// Value is the explicit accessor for the underlying scalar; there is no
	// implicit conversion anywhere in the package.
	Value() T
}

// Scalar adapts a plain floating-point value to the Number bound. It tracks
// no derivatives — it exists so the same generic formula can be evaluated
// cheaply without gradient bookkeeping (e.g. for finite differences).
type Scalar[T Float] struct {
	v T
}

// S wraps a plain value as a Scalar.
func S[T Float](v T) Scalar[T] {
	return Scalar[T]{v: v}
}

// Value returns the wrapped value.
func (s Scalar[T]) Value() T { return s.v }

// Neg returns -s.
func (s Scalar[T]) Neg() Scalar[T] { return Scalar[T]{v: -s.v} }

// Add returns s + g.
func (s Scalar[T]) Add(g Scalar[T]) Scalar[T] { return Scalar[T]{v: s.v + g.v} }

// Sub returns s - g.
func (s Scalar[T]) Sub(g Scalar[T]) Scalar[T] { return Scalar[T]{v: s.v - g.v} }

// Mul returns s * g.
func (s Scalar[T]) Mul(g Scalar[T]) Scalar[T] { return Scalar[T]{v: s.v * g.v} }

// Div returns s / g.
func (s Scalar[T]) Div(g Scalar[T]) Scalar[T] { return Scalar[T]{v: s.v / g.v} }

// AddScalar returns s + c.
func (s Scalar[T]) AddScalar(c T) Scalar[T] { return Scalar[T]{v: s.v + c} }

// SubScalar returns s - c.
func (s Scalar[T]) SubScalar(c T) Scalar[T] { return Scalar[T]{v: s.v - c} }

// SubFromScalar returns c - s.
func (s Scalar[T]) SubFromScalar(c T) Scalar[T] { return Scalar[T]{v: c - s.v} }

// MulScalar returns s * c.
func (s Scalar[T]) MulScalar(c T) Scalar[T] { return Scalar[T]{v: s.v * c} }

// DivScalar returns s / c.
func (s Scalar[T]) DivScalar(c T) Scalar[T] { return Scalar[T]{v: s.v / c} }

// ScalarDiv returns c / s.
func (s Scalar[T]) ScalarDiv(c T) Scalar[T] { return Scalar[T]{v: c / s.v} }

// Exp returns e^s.
func (s Scalar[T]) Exp() Scalar[T] { return Scalar[T]{v: T(math.Exp(float64(s.v)))} }

// Log returns ln(s). Undefined for s <= 0.
func (s Scalar[T]) Log() Scalar[T] { return Scalar[T]{v: T(math.Log(float64(s.v)))} }

// Sqrt returns √s. Undefined for s < 0.
func (s Scalar[T]) Sqrt() Scalar[T] { return Scalar[T]{v: T(math.Sqrt(float64(s.v)))} }

// Equal reports s == g.
func (s Scalar[T]) Equal(g Scalar[T]) bool { return s.v == g.v }

// NotEqual reports s != g.
func (s Scalar[T]) NotEqual(g Scalar[T]) bool { return s.v != g.v }

// Less reports s < g.
func (s Scalar[T]) Less(g Scalar[T]) bool { return s.v < g.v }

// LessEqual reports s <= g.
func (s Scalar[T]) LessEqual(g Scalar[T]) bool { return s.v <= g.v }

// Greater reports s > g.
func (s Scalar[T]) Greater(g Scalar[T]) bool { return s.v > g.v }

// GreaterEqual reports s >= g.
func (s Scalar[T]) GreaterEqual(g Scalar[T]) bool { return s.v >= g.v }

// Compile-time checks: both implementations satisfy the bound.
var (
	_ Number[Jet[float64], float64]    = Jet[float64]{}
	_ Number[Jet[float32], float32]    = Jet[float32]{}
	_ Number[Scalar[float64], float64] = Scalar[float64]{}
)
