// Package jet: the arithmetic and comparison algebra.
//
// Derivative rules, where f=(x, gx) and g=(y, gy):
//
//	-f      = (-x,      -gx)                      linearity
//	f + g   = (x+y,     gx+gy)                    linearity
//	f - g   = (x-y,     gx-gy)                    linearity
//	f * g   = (x·y,     x·gy + y·gx)              product rule
//	f / g   = (x/y,     gx/y − x·gy/y²)           quotient rule
//	f + s   = (x+s,     gx)                       constants have zero derivative
//	s - f   = (s−x,     -gx)
//	f * s   = (x·s,     gx·s)
//	f / s   = (x/s,     gx/s)
//	s / f   = (s/x,     −s·gx/x²)                 quotient rule, constant numerator
//
// Every jet–jet operation (comparisons included) requires equal
// dimensionality and panics with a *Fault otherwise. Comparisons consider
// the VALUE ONLY; gradients are ignored. Compound assignment is defined as
// "replace self with the binary operation applied to self and the operand"
// — full recomputation, no in-place shortcut.

package jet

// Neg returns the negation (-value, -gradient). Complexity: O(dim).
func (j Jet[T]) Neg() Jet[T] {
	return Jet[T]{val: -j.val, grad: j.grad.Neg()}
}

// Add returns j + g by linearity. Panics with a *Fault on dimension
// mismatch. Complexity: O(dim).
func (j Jet[T]) Add(g Jet[T]) Jet[T] {
	j.checkShape("Jet.Add", g)

	return Jet[T]{val: j.val + g.val, grad: j.grad.Add(g.grad)}
}

// Sub returns j - g by linearity. Panics with a *Fault on dimension
// mismatch. Complexity: O(dim).
func (j Jet[T]) Sub(g Jet[T]) Jet[T] {
	j.checkShape("Jet.Sub", g)

	return Jet[T]{val: j.val - g.val, grad: j.grad.Sub(g.grad)}
}

// Mul returns j * g by the product rule: (x·y, x·gy + y·gx).
// Panics with a *Fault on dimension mismatch. Complexity: O(dim).
func (j Jet[T]) Mul(g Jet[T]) Jet[T] {
	j.checkShape("Jet.Mul", g)

	return Jet[T]{
		val:  j.val * g.val,
		grad: g.grad.Scale(j.val).Add(j.grad.Scale(g.val)),
	}
}

// Div returns j / g by the quotient rule: (x/y, gx/y − x·gy/y²).
// Division by a zero-valued jet propagates IEEE ±Inf/NaN unguarded.
// Panics with a *Fault on dimension mismatch. Complexity: O(dim).
func (j Jet[T]) Div(g Jet[T]) Jet[T] {
	j.checkShape("Jet.Div", g)

	return Jet[T]{
		val:  j.val / g.val,
		grad: j.grad.Div(g.val).Sub(g.grad.Scale(j.val / (g.val * g.val))),
	}
}

// AddScalar returns j + s: the value shifts, the gradient is unchanged.
// Complexity: O(dim) for the defensive gradient copy.
func (j Jet[T]) AddScalar(s T) Jet[T] {
	out := j.Clone()
	out.val += s

	return out
}

// SubScalar returns j - s: the value shifts, the gradient is unchanged.
func (j Jet[T]) SubScalar(s T) Jet[T] {
	out := j.Clone()
	out.val -= s

	return out
}

// SubFromScalar returns s - j: (s−x, -gradient).
func (j Jet[T]) SubFromScalar(s T) Jet[T] {
	return Jet[T]{val: s - j.val, grad: j.grad.Neg()}
}

// MulScalar returns j * s: (x·s, gradient·s).
func (j Jet[T]) MulScalar(s T) Jet[T] {
	return Jet[T]{val: j.val * s, grad: j.grad.Scale(s)}
}

// DivScalar returns j / s: (x/s, gradient/s).
func (j Jet[T]) DivScalar(s T) Jet[T] {
	return Jet[T]{val: j.val / s, grad: j.grad.Div(s)}
}

// ScalarDiv returns s / j by the quotient rule with a constant numerator:
// (s/x, −s·gradient/x²).
func (j Jet[T]) ScalarDiv(s T) Jet[T] {
	return Jet[T]{val: s / j.val, grad: j.grad.Scale(-s / (j.val * j.val))}
}

// ---------------------------------------------------------------------------
// Compound assignment: self = self op operand. Each returns the receiver so
// assignments chain reliably.
// ---------------------------------------------------------------------------

// AddAssign sets j = j + g and returns j.
func (j *Jet[T]) AddAssign(g Jet[T]) *Jet[T] { *j = j.Add(g); return j }

// SubAssign sets j = j - g and returns j.
func (j *Jet[T]) SubAssign(g Jet[T]) *Jet[T] { *j = j.Sub(g); return j }

// MulAssign sets j = j * g and returns j.
func (j *Jet[T]) MulAssign(g Jet[T]) *Jet[T] { *j = j.Mul(g); return j }

// DivAssign sets j = j / g and returns j.
func (j *Jet[T]) DivAssign(g Jet[T]) *Jet[T] { *j = j.Div(g); return j }

// AddScalarAssign sets j = j + s and returns j.
func (j *Jet[T]) AddScalarAssign(s T) *Jet[T] { *j = j.AddScalar(s); return j }

// SubScalarAssign sets j = j - s and returns j.
func (j *Jet[T]) SubScalarAssign(s T) *Jet[T] { *j = j.SubScalar(s); return j }

// MulScalarAssign sets j = j * s and returns j.
func (j *Jet[T]) MulScalarAssign(s T) *Jet[T] { *j = j.MulScalar(s); return j }

// DivScalarAssign sets j = j / s and returns j.
func (j *Jet[T]) DivScalarAssign(s T) *Jet[T] { *j = j.DivScalar(s); return j }

// ---------------------------------------------------------------------------
// Comparisons: value only, gradients ignored. Equal dimensionality is a
// precondition of ALL six forms — two jets tracking different variable sets
// are incomparable by construction.
// ---------------------------------------------------------------------------

// Equal reports j.Value() == g.Value(). Gradients are ignored: two jets with
// equal value but different gradients compare equal.
func (j Jet[T]) Equal(g Jet[T]) bool {
	j.checkShape("Jet.Equal", g)

	return j.val == g.val
}

// NotEqual reports j.Value() != g.Value().
func (j Jet[T]) NotEqual(g Jet[T]) bool {
	j.checkShape("Jet.NotEqual", g)

	return j.val != g.val
}

// Less reports j.Value() < g.Value().
func (j Jet[T]) Less(g Jet[T]) bool {
	j.checkShape("Jet.Less", g)

	return j.val < g.val
}

// LessEqual reports j.Value() <= g.Value().
func (j Jet[T]) LessEqual(g Jet[T]) bool {
	j.checkShape("Jet.LessEqual", g)

	return j.val <= g.val
}

// Greater reports j.Value() > g.Value().
func (j Jet[T]) Greater(g Jet[T]) bool {
	j.checkShape("Jet.Greater", g)

	return j.val > g.val
}

// GreaterEqual reports j.Value() >= g.Value().
func (j Jet[T]) GreaterEqual(g Jet[T]) bool {
	j.checkShape("Jet.GreaterEqual", g)

	return j.val >= g.val
}
