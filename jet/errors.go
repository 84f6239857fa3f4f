// Package jet: sentinel error set and the Fault panic payload.
// Shape and index violations are programmer errors (a miswired computation
// graph), so they PANIC with a *Fault rather than return an error. Tests and
// defensive callers match the underlying sentinel via errors.Is after
// recovering the *Fault.

package jet

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates two tangent vectors (or the jets holding
	// them) of unequal length were combined in a binary operation.
	ErrShapeMismatch = errors.New("jet: tangent shape mismatch")

	// ErrIndexOutOfRange indicates a component index outside [0, Len).
	ErrIndexOutOfRange = errors.New("jet: index out of range")

	// ErrBadLength indicates a negative length was requested at construction.
	ErrBadLength = errors.New("jet: length must be >= 0")
)

// Fault is the panic payload for shape and index violations. It names the
// operation and carries the expected vs. actual quantity so the diagnostic
// is actionable without a debugger.
//
// For ErrShapeMismatch, Expect and Actual are the two operand lengths.
// For ErrIndexOutOfRange, Expect is the valid length and Actual the index.
// For ErrBadLength, Actual is the requested length.
type Fault struct {
	Op     string // operation that detected the violation, e.g. "Jet.Add"
	Err    error  // one of the package sentinels
	Expect int
	Actual int
}

// Error renders the diagnostic, e.g.
// "Jet.Add: jet: tangent shape mismatch (expect 3, actual 2)".
func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %v (expect %d, actual %d)", f.Op, f.Err, f.Expect, f.Actual)
}

// Unwrap exposes the sentinel so errors.Is works on a recovered Fault.
func (f *Fault) Unwrap() error { return f.Err }

// fault panics with a *Fault. All shape/index checks funnel through here.
func fault(op string, err error, expect, actual int) {
	panic(&Fault{Op: op, Err: err, Expect: expect, Actual: actual})
}
