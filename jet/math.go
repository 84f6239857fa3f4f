// Package jet: elementary functions — exp, log, sqrt, max.
//
// Chain rules, where f=(x, gx):
//
//	exp(f)  = (eˣ,    eˣ·gx)            d/dx eˣ   = eˣ
//	log(f)  = (ln x,  gx/x)             d/dx ln x = 1/x
//	sqrt(f) = (√x,    gx/(2√x))         d/dx √x   = 1/(2√x)
//
// Domain errors are not guarded: log of a non-positive value and sqrt of a
// negative value produce IEEE NaN/-Inf in both fields. This library checks
// gradients of already-validated numeric ranges; guarding here would mask
// the very values a caller needs to see.

package jet

import "math"

// Exp returns (eˣ, eˣ·gradient). Complexity: O(dim).
func (j Jet[T]) Exp() Jet[T] {
	s := T(math.Exp(float64(j.val)))

	return Jet[T]{val: s, grad: j.grad.Scale(s)}
}

// Log returns (ln x, gradient/x). Undefined for x <= 0 — the caller's
// responsibility. Complexity: O(dim).
func (j Jet[T]) Log() Jet[T] {
	return Jet[T]{val: T(math.Log(float64(j.val))), grad: j.grad.Div(j.val)}
}

// Sqrt returns (√x, gradient/(2√x)). Undefined for x < 0 — the caller's
// responsibility. Complexity: O(dim).
func (j Jet[T]) Sqrt() Jet[T] {
	r := T(math.Sqrt(float64(j.val)))

	return Jet[T]{val: r, grad: j.grad.Div(2 * r)}
}

// Max returns the operand with the larger value, BY VALUE: the whole dual
// number (value and gradient) of whichever side wins. At a tie the left
// operand f is returned — max is non-differentiable there and a policy is
// required; taking the left side keeps the choice deterministic.
// Works on any Number, so the same call site serves scalars and jets.
func Max[T Float, N Number[N, T]](f, g N) N {
	if f.Less(g) {
		return g
	}

	return f
}

// Exp applies the exponential through the Number bound, letting generic
// formulas read like math: Exp(x) rather than x.Exp().
func Exp[T Float, N Number[N, T]](f N) N { return f.Exp() }

// Log applies the natural logarithm through the Number bound.
func Log[T Float, N Number[N, T]](f N) N { return f.Log() }

// Sqrt applies the square root through the Number bound.
func Sqrt[T Float, N Number[N, T]](f N) N { return f.Sqrt() }
