// Package tensor provides a flat-backed n-dimensional array used to hold
// gradient-check trial inputs (activations, weights).
//
// The tensor package provides:
//
//   - Array[T]: a row-major, generically typed n-d container with linear
//     and multi-dimensional indexing and O(1) element access.
//   - Strict, error-returning bounds checks on the public indexers —
//     out-of-range access is reported, never clamped.
//
// Arrays are deliberately dumb storage: no broadcasting, no views, no
// arithmetic. The differentiation algebra lives in package jet; package rng
// fills arrays with random trial data.
package tensor
