// Package jet: the Jet dual number — construction, accessors, mutation.
//
// A Jet holds a scalar value and a Tangent of length dim, where dim is the
// number of independent variables being tracked. The gradient length is an
// invariant for the jet's entire lifetime: every jet participating in one
// computation must share it, enforced transitively by the Tangent shape
// checks. The idea follows ceres-solver's Jet type.

package jet

import "fmt"

// Jet is a dual number: a value paired with the gradient of that value with
// respect to a fixed set of independent variables. Jets are plain values —
// copy freely; operations never mutate their operands except the explicit
// Set/Assign family. A direct struct copy shares the tangent buffer with its
// source, which is harmless under the pure operations but not under the
// mutating ones: Clone before applying Set/Assign/…Assign to a copy.
type Jet[T Float] struct {
	val  T
	grad Tangent[T]
}

// Constant returns a jet tracking dim variables whose value is val and whose
// gradient is all zero — the derivative of a constant with respect to every
// variable is 0. Panics with a *Fault if dim < 0. Complexity: O(dim).
func Constant[T Float](dim int, val T) Jet[T] {
	return Jet[T]{val: val, grad: NewTangent[T](dim)}
}

// Variable returns a jet for the i-th independent variable: value val,
// gradient the i-th standard basis vector (∂xᵢ/∂xᵢ = 1). Each independent
// input gets a distinct i in [0, dim). Panics with a *Fault if dim < 0 or
// i is out of range. Complexity: O(dim).
func Variable[T Float](dim int, val T, i int) Jet[T] {
	return VariableDeriv(dim, val, i, 1)
}

// VariableDeriv is Variable with an explicit seed derivative: the gradient
// is the i-th basis vector scaled by deriv. Useful for chaining through an
// outer computation with a known incoming derivative.
func VariableDeriv[T Float](dim int, val T, i int, deriv T) Jet[T] {
	g := NewTangent[T](dim)
	g.SetAt(i, deriv)

	return Jet[T]{val: val, grad: g}
}

// Set re-initializes the jet as the i-th independent variable with value
// val and unit derivative, discarding any previously accumulated gradient.
// The destructive reset is intentional: it lets one instance be reused
// across gradient-check trials. Returns the receiver for chaining.
// Panics with a *Fault if i is out of range.
func (j *Jet[T]) Set(val T, i int) *Jet[T] {
	return j.SetDeriv(val, i, 1)
}

// SetDeriv is Set with an explicit seed derivative.
func (j *Jet[T]) SetDeriv(val T, i int, deriv T) *Jet[T] {
	j.grad.checkIndex("Jet.SetDeriv", i)
	j.val = val
	for k := range j.grad.v {
		j.grad.v[k] = 0
	}
	j.grad.v[i] = deriv

	return j
}

// Assign overwrites the jet with a constant: value val, gradient all zero.
// Returns the receiver for chaining.
func (j *Jet[T]) Assign(val T) *Jet[T] {
	j.val = val
	for k := range j.grad.v {
		j.grad.v[k] = 0
	}

	return j
}

// Value returns the scalar value. This is the explicit accessor standing in
// for an implicit scalar conversion. Complexity: O(1).
func (j Jet[T]) Value() T {
	return j.val
}

// Dim returns the tracked dimensionality (gradient length). Complexity: O(1).
func (j Jet[T]) Dim() int {
	return j.grad.Len()
}

// Gradient returns a copy of the tangent vector, preserving the
// exclusive-ownership invariant. Complexity: O(dim).
func (j Jet[T]) Gradient() Tangent[T] {
	return j.grad.Clone()
}

// Deriv returns the single gradient component ∂value/∂xᵢ.
// Panics with a *Fault if i is out of range. Complexity: O(1).
func (j Jet[T]) Deriv(i int) T {
	return j.grad.At(i)
}

// SameShape reports whether j and other track the same number of variables.
// Complexity: O(1).
func (j Jet[T]) SameShape(other Jet[T]) bool {
	return j.grad.SameShape(other.grad)
}

// checkShape panics with a *Fault unless j and other share dimensionality.
func (j Jet[T]) checkShape(op string, other Jet[T]) {
	if !j.grad.SameShape(other.grad) {
		fault(op, ErrShapeMismatch, j.grad.Len(), other.grad.Len())
	}
}

// Clone returns a deep copy whose tangent buffer is independent of the
// receiver's. Required before mutating a copied jet. Complexity: O(dim).
func (j Jet[T]) Clone() Jet[T] {
	return Jet[T]{val: j.val, grad: j.grad.Clone()}
}

// String implements fmt.Stringer for diagnostics in the form
// "[value, (g0, g1, ..., gn-1)]". Not a stability-bearing format.
func (j Jet[T]) String() string {
	return fmt.Sprintf("[%g, %s]", float64(j.val), j.grad.String())
}
