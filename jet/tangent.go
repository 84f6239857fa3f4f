// Package jet: Tangent, the fixed-length gradient buffer carried by a Jet.
//
// Design notes:
//   - Value semantics: every operation returns a freshly allocated Tangent;
//     operands are never mutated except through SetAt. Each Jet exclusively
//     owns its Tangent — no aliasing between instances.
//   - Fail-fast: binary elementwise operations require equal lengths and
//     panic with a *Fault otherwise (see errors.go). Scaling by a scalar has
//     no shape constraint.
//   - Deterministic: fixed 0..n-1 loop order, no hidden allocations beyond
//     the output buffer. All operations are O(n) time, O(n) space.

package jet

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Float constrains the scalar element type of tangents and jets.
type Float interface {
	constraints.Float
}

// Tangent is an ordered, fixed-length vector of gradient components.
// The length is set at construction and never changes; two tangents
// participating in a binary operation must have equal length.
type Tangent[T Float] struct {
	v []T // backing components, length fixed at construction
}

// NewTangent returns a zero-filled tangent of length n.
// Panics with a *Fault wrapping ErrBadLength if n < 0.
// Complexity: O(n).
func NewTangent[T Float](n int) Tangent[T] {
	if n < 0 {
		fault("NewTangent", ErrBadLength, 0, n)
	}

	return Tangent[T]{v: make([]T, n)}
}

// Len returns the number of components. Complexity: O(1).
func (t Tangent[T]) Len() int {
	return len(t.v)
}

// checkIndex panics with a *Fault unless 0 <= i < Len.
func (t Tangent[T]) checkIndex(op string, i int) {
	if i < 0 || i >= len(t.v) {
		fault(op, ErrIndexOutOfRange, len(t.v), i)
	}
}

// At returns component i. Out-of-range access panics with a *Fault
// wrapping ErrIndexOutOfRange — no silent clamping. Complexity: O(1).
func (t Tangent[T]) At(i int) T {
	t.checkIndex("Tangent.At", i)

	return t.v[i]
}

// SetAt assigns component i in place. Out-of-range access panics with a
// *Fault wrapping ErrIndexOutOfRange. Complexity: O(1).
func (t Tangent[T]) SetAt(i int, val T) {
	t.checkIndex("Tangent.SetAt", i)
	t.v[i] = val
}

// SameShape reports whether t and other have equal length. Complexity: O(1).
func (t Tangent[T]) SameShape(other Tangent[T]) bool {
	return len(t.v) == len(other.v)
}

// checkShape panics with a *Fault unless t and other have equal length.
func (t Tangent[T]) checkShape(op string, other Tangent[T]) {
	if len(t.v) != len(other.v) {
		fault(op, ErrShapeMismatch, len(t.v), len(other.v))
	}
}

// Add returns the elementwise sum t + other.
// Requires SameShape(other); panics with a *Fault otherwise.
// Complexity: O(n).
func (t Tangent[T]) Add(other Tangent[T]) Tangent[T] {
	t.checkShape("Tangent.Add", other)

	out := make([]T, len(t.v))
	for i := range t.v {
		out[i] = t.v[i] + other.v[i]
	}

	return Tangent[T]{v: out}
}

// Sub returns the elementwise difference t - other.
// Requires SameShape(other); panics with a *Fault otherwise.
// Complexity: O(n).
func (t Tangent[T]) Sub(other Tangent[T]) Tangent[T] {
	t.checkShape("Tangent.Sub", other)

	out := make([]T, len(t.v))
	for i := range t.v {
		out[i] = t.v[i] - other.v[i]
	}

	return Tangent[T]{v: out}
}

// Neg returns the elementwise negation -t. Complexity: O(n).
func (t Tangent[T]) Neg() Tangent[T] {
	out := make([]T, len(t.v))
	for i := range t.v {
		out[i] = -t.v[i]
	}

	return Tangent[T]{v: out}
}

// Scale returns the elementwise product t * s. No shape constraint.
// Complexity: O(n).
func (t Tangent[T]) Scale(s T) Tangent[T] {
	out := make([]T, len(t.v))
	for i := range t.v {
		out[i] = t.v[i] * s
	}

	return Tangent[T]{v: out}
}

// Div returns the elementwise quotient t / s. No shape constraint; a zero
// divisor propagates IEEE ±Inf/NaN per the package fault policy.
// Complexity: O(n).
func (t Tangent[T]) Div(s T) Tangent[T] {
	out := make([]T, len(t.v))
	for i := range t.v {
		out[i] = t.v[i] / s
	}

	return Tangent[T]{v: out}
}

// Clone returns a deep copy of t. Complexity: O(n).
func (t Tangent[T]) Clone() Tangent[T] {
	out := make([]T, len(t.v))
	copy(out, t.v)

	return Tangent[T]{v: out}
}

// Components returns a copy of the underlying components, preserving the
// exclusive-ownership invariant. Complexity: O(n).
func (t Tangent[T]) Components() []T {
	out := make([]T, len(t.v))
	copy(out, t.v)

	return out
}

// String implements fmt.Stringer for diagnostics: "(g0, g1, ..., gn-1)".
// Not a stability-bearing format. Complexity: O(n).
func (t Tangent[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range t.v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%g", float64(c)))
	}
	sb.WriteByte(')')

	return sb.String()
}
