// Package gradcheck: function aliases, options, and the comparison report.

package gradcheck

import "github.com/verigrad/verigrad/jet"

// JetFunc is a formula instantiated for jets: it receives one jet per
// independent input and returns the result jet carrying the full gradient.
type JetFunc[T jet.Float] func(xs []jet.Jet[T]) jet.Jet[T]

// ScalarFunc is the same formula instantiated for plain scalars, used for
// finite-difference reference gradients.
type ScalarFunc[T jet.Float] func(xs []jet.Scalar[T]) jet.Scalar[T]

// Default numeric policy.
const (
	// DefaultTolerance is the maximum relative error accepted between the
	// analytic and the reference gradient. Forward-mode gradients are exact
	// up to rounding, but references (backprop, finite differences) are not;
	// 1e-4 comfortably separates "same derivation" from "wrong derivation".
	DefaultTolerance = 1e-4

	// DefaultStep is the central-difference step h in (f(x+h)−f(x−h))/2h.
	// Chosen near cbrt(eps)·scale, the classic bias/noise trade-off point.
	DefaultStep = 1e-6
)

// Options configures a gradient check.
//
// Fields:
//   - Tolerance — maximum accepted relative error per component.
//   - Step      — finite-difference step (CheckNumerical/Numerical only).
//
// A nil *Options means DefaultOptions().
type Options struct {
	Tolerance float64
	Step      float64
}

// DefaultOptions returns the documented default policy.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance, Step: DefaultStep}
}

// Report is the outcome of one comparison. It is returned alongside
// ErrGradientMismatch so a failing check still exposes every number a
// diagnosis needs.
type Report[T jet.Float] struct {
	// Value is the formula's value at the evaluation point.
	Value T

	// Analytic is the forward-mode gradient.
	Analytic []T

	// Reference is the gradient it was compared against.
	Reference []T

	// RelErr holds the per-component relative error
	// |a−r| / max(|a|, |r|, 1).
	RelErr []float64

	// MaxRelErr is the worst component's relative error; ArgMax its index.
	MaxRelErr float64
	ArgMax    int
}
