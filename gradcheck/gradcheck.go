// Package gradcheck: gradient evaluation and comparison.

package gradcheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/verigrad/verigrad/jet"
)

var (
	// ErrNoInputs indicates an empty evaluation point.
	ErrNoInputs = errors.New("gradcheck: no inputs")

	// ErrNilFunc indicates a nil formula was supplied.
	ErrNilFunc = errors.New("gradcheck: function is nil")

	// ErrDimensionMismatch indicates the analytic and reference gradients
	// have different lengths. Unlike the jet package's shape fault, this is
	// user data (a reference computed elsewhere), so it is returned.
	ErrDimensionMismatch = errors.New("gradcheck: gradient length mismatch")

	// ErrBadStep indicates a non-positive or non-finite difference step.
	ErrBadStep = errors.New("gradcheck: step must be positive and finite")

	// ErrBadTolerance indicates a non-positive or non-finite tolerance.
	ErrBadTolerance = errors.New("gradcheck: tolerance must be positive and finite")

	// ErrGradientMismatch indicates at least one component's relative error
	// exceeded the tolerance. The accompanying Report has the details.
	ErrGradientMismatch = errors.New("gradcheck: gradient mismatch")
)

// gatherOptions applies defaults and validates the numeric policy.
func gatherOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Tolerance <= 0 || math.IsInf(o.Tolerance, 0) || math.IsNaN(o.Tolerance) {
		return o, ErrBadTolerance
	}
	if o.Step <= 0 || math.IsInf(o.Step, 0) || math.IsNaN(o.Step) {
		return o, ErrBadStep
	}

	return o, nil
}

// Gradient evaluates f once on jets seeded with the standard basis and
// returns the value plus the full analytic gradient: xs[i] becomes the i-th
// independent variable, so grad[i] = ∂f/∂xs[i].
// Complexity: one formula evaluation with O(len(xs)) per arithmetic op.
func Gradient[T jet.Float](f JetFunc[T], xs []T) (value T, grad []T, err error) {
	if f == nil {
		return 0, nil, ErrNilFunc
	}
	if len(xs) == 0 {
		return 0, nil, ErrNoInputs
	}

	dim := len(xs)
	args := make([]jet.Jet[T], dim)
	for i, x := range xs {
		args[i] = jet.Variable(dim, x, i)
	}

	out := f(args)
	return out.Value(), out.Gradient().Components(), nil
}

// Numerical estimates the gradient of f at xs by central differences with
// the given step: grad[i] ≈ (f(..xᵢ+h..) − f(..xᵢ−h..)) / 2h.
// Complexity: 2·len(xs) scalar evaluations.
func Numerical[T jet.Float](f ScalarFunc[T], xs []T, step T) ([]T, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if len(xs) == 0 {
		return nil, ErrNoInputs
	}
	if !(step > 0) || math.IsInf(float64(step), 0) {
		return nil, ErrBadStep
	}

	args := make([]jet.Scalar[T], len(xs))
	for i, x := range xs {
		args[i] = jet.S(x)
	}

	grad := make([]T, len(xs))
	for i := range xs {
		args[i] = jet.S(xs[i] + step)
		hi := f(args).Value()

		args[i] = jet.S(xs[i] - step)
		lo := f(args).Value()

		args[i] = jet.S(xs[i]) // restore before the next component
		grad[i] = (hi - lo) / (2 * step)
	}

	return grad, nil
}

// relErr is the symmetric relative error |a−r| / max(|a|, |r|, 1). The
// 1-floor keeps near-zero gradients comparable on an absolute scale.
func relErr[T jet.Float](a, r T) float64 {
	af := math.Abs(float64(a))
	rf := math.Abs(float64(r))
	scale := math.Max(math.Max(af, rf), 1)

	return math.Abs(float64(a)-float64(r)) / scale
}

// Compare builds a Report from an analytic gradient and a reference of the
// same length and applies the tolerance.
// Returns (report, nil) on success and (report, ErrGradientMismatch) when
// the worst component exceeds the tolerance; the report is present either
// way. Length disagreement is ErrDimensionMismatch.
func Compare[T jet.Float](analytic, reference []T, opts *Options) (*Report[T], error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(analytic) == 0 {
		return nil, ErrNoInputs
	}
	if len(analytic) != len(reference) {
		return nil, fmt.Errorf("analytic %d vs reference %d: %w",
			len(analytic), len(reference), ErrDimensionMismatch)
	}

	rep := &Report[T]{
		Analytic:  append([]T(nil), analytic...),
		Reference: append([]T(nil), reference...),
		RelErr:    make([]float64, len(analytic)),
	}
	for i := range analytic {
		e := relErr(analytic[i], reference[i])
		rep.RelErr[i] = e
		if e > rep.MaxRelErr {
			rep.MaxRelErr = e
			rep.ArgMax = i
		}
	}

	if rep.MaxRelErr > o.Tolerance {
		return rep, fmt.Errorf("component %d: relative error %.3g exceeds %.3g: %w",
			rep.ArgMax, rep.MaxRelErr, o.Tolerance, ErrGradientMismatch)
	}

	return rep, nil
}

// Check computes the analytic gradient of f at xs and compares it against
// a caller-supplied reference gradient (e.g. from a backward pass).
func Check[T jet.Float](f JetFunc[T], xs, reference []T, opts *Options) (*Report[T], error) {
	value, analytic, err := Gradient(f, xs)
	if err != nil {
		return nil, err
	}

	rep, err := Compare(analytic, reference, opts)
	if rep != nil {
		rep.Value = value
	}

	return rep, err
}

// CheckNumerical computes the analytic gradient of fj at xs and compares
// it against a central finite-difference estimate of fs — the two
// instantiations of one generic formula.
func CheckNumerical[T jet.Float](fj JetFunc[T], fs ScalarFunc[T], xs []T, opts *Options) (*Report[T], error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	value, analytic, err := Gradient(fj, xs)
	if err != nil {
		return nil, err
	}

	numerical, err := Numerical(fs, xs, T(o.Step))
	if err != nil {
		return nil, err
	}

	rep, err := Compare(analytic, numerical, &o)
	if rep != nil {
		rep.Value = value
	}

	return rep, err
}
