// Package jet implements forward-mode automatic differentiation with
// dual numbers.
//
// A Jet pairs one scalar value with a Tangent vector holding ∂value/∂xᵢ
// for a fixed set of independent variables. Every arithmetic operation
// and elementary function propagates both fields through the chain rule,
// so ordinary scalar code evaluated on jets produces the exact analytic
// gradient in a single forward pass. The primary use is cross-checking
// hand-derived or back-propagated gradients in numeric code.
//
// Construction:
//
//	c := jet.Constant[float64](2, 5)     // value 5, gradient (0, 0)
//	x := jet.Variable[float64](2, 3, 0)  // value 3, gradient (1, 0)
//	y := jet.Variable[float64](2, 4, 1)  // value 4, gradient (0, 1)
//
// Propagation:
//
//	z := x.Mul(y).Add(x.Exp())           // z = x·y + eˣ
//	z.Value()                            // 12 + e³
//	z.Deriv(0), z.Deriv(1)               // 4 + e³, 3
//
// Write-once genericity:
//
//	The Number bound abstracts the algebra (+, −, ×, ÷, comparisons,
//	exp/log/sqrt) so the same formula source runs on plain scalars
//	(Scalar[T]) or on jets (Jet[T]):
//
//	    func energy[T jet.Float, N jet.Number[N, T]](xs []N) N { ... }
//
//	Instantiate with Scalar[float64] for plain evaluation, Jet[float64]
//	for value-plus-gradient evaluation. See package gradcheck.
//
// Fault policy:
//
//	Combining jets or tangents of unequal dimensionality is a programmer
//	error in how the computation was built, never a recoverable data
//	error. All such violations panic immediately with a *Fault wrapping
//	ErrShapeMismatch and naming the expected vs. actual lengths; the same
//	holds for out-of-range indices (ErrIndexOutOfRange). Domain errors of
//	the elementary functions (log x≤0, sqrt x<0, division by zero) are
//	intentionally unguarded: IEEE NaN/Inf propagate and remain the
//	caller's responsibility.
//
// Concurrency:
//
//	Jets are plain values with no internal synchronization. Do not share
//	one instance across goroutines; give each goroutine its own jets.
package jet
