// Package gradcheck verifies gradients: it evaluates a formula once on jets
// to obtain the exact analytic gradient and compares it against a reference
// — a caller-supplied gradient (e.g. from a hand-written backward pass) or
// a central finite-difference estimate.
//
// Workflow:
//
//  1. Write the formula once against the jet.Number bound:
//
//     func loss[T jet.Float, N jet.Number[N, T]](xs []N) N { ... }
//
//  2. Instantiate it for jets and, if finite differences are wanted, for
//     plain scalars:
//
//     fj := loss[float64, jet.Jet[float64]]
//     fs := loss[float64, jet.Scalar[float64]]
//
//  3. Check:
//
//     rep, err := gradcheck.Check(fj, xs, backpropGrad, nil)
//     rep, err := gradcheck.CheckNumerical(fj, fs, xs, nil)
//
// A Report carries the analytic gradient, the reference, per-component
// relative errors, and the worst offender; ErrGradientMismatch is returned
// when the worst relative error exceeds the tolerance.
//
// Errors here are user-facing data errors (mismatched reference lengths,
// bad options) and are returned, not panicked; only a formula that itself
// miswires jet dimensionalities triggers the jet package's fault panics.
package gradcheck
