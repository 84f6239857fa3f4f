// Package tensor: Array, a row-major n-dimensional container storing
// elements in a flat slice for performance and cache friendliness.
// Public indexers return errors (user-facing data path); panics are not
// used anywhere in this package.

package tensor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verigrad/verigrad/jet"
)

var (
	// ErrInvalidDimensions indicates a requested dimension is non-positive
	// or the dimension list is empty.
	ErrInvalidDimensions = errors.New("tensor: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates an index is outside its valid range.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrRankMismatch indicates a multi-index with the wrong number of
	// coordinates for the array's rank.
	ErrRankMismatch = errors.New("tensor: rank mismatch")
)

// arrayErrorf wraps an underlying sentinel with Array method context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// Array is a row-major n-dimensional array of floating-point values.
// dims holds the extent of each axis; data holds the product of all
// extents in row-major order.
type Array[T jet.Float] struct {
	dims []int
	data []T
}

// New creates an array with the given axis extents, zero-filled.
// Stage 1 (Validate): require at least one extent, all > 0.
// Stage 2 (Prepare): compute total size and allocate the flat buffer.
// Stage 3 (Finalize): return the Array or ErrInvalidDimensions.
// Complexity: O(size) time and memory.
func New[T jet.Float](dims ...int) (*Array[T], error) {
	if len(dims) == 0 {
		return nil, arrayErrorf("New", ErrInvalidDimensions)
	}
	total := 1
	for _, d := range dims {
		if d <= 0 {
			return nil, arrayErrorf("New", ErrInvalidDimensions)
		}
		total *= d
	}

	owned := make([]int, len(dims))
	copy(owned, dims)

	return &Array[T]{dims: owned, data: make([]T, total)}, nil
}

// Size returns the total number of elements. Complexity: O(1).
func (a *Array[T]) Size() int {
	return len(a.data)
}

// Rank returns the number of axes. Complexity: O(1).
func (a *Array[T]) Rank() int {
	return len(a.dims)
}

// Dims returns a copy of the axis extents. Complexity: O(rank).
func (a *Array[T]) Dims() []int {
	out := make([]int, len(a.dims))
	copy(out, a.dims)

	return out
}

// At retrieves the element at linear index i.
// Complexity: O(1).
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T
		return zero, arrayErrorf("At", ErrIndexOutOfBounds)
	}

	return a.data[i], nil
}

// Set assigns value v at linear index i.
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= len(a.data) {
		return arrayErrorf("Set", ErrIndexOutOfBounds)
	}
	a.data[i] = v

	return nil
}

// Offset converts a multi-dimensional index to the linear offset.
// Stage 1 (Validate): coordinate count must equal the rank; each coordinate
// must lie inside its axis extent.
// Stage 2 (Execute): accumulate the row-major offset.
// Complexity: O(rank).
func (a *Array[T]) Offset(indices ...int) (int, error) {
	if len(indices) != len(a.dims) {
		return 0, arrayErrorf("Offset", ErrRankMismatch)
	}
	off := 0
	for axis, idx := range indices {
		if idx < 0 || idx >= a.dims[axis] {
			return 0, arrayErrorf("Offset", ErrIndexOutOfBounds)
		}
		off = off*a.dims[axis] + idx
	}

	return off, nil
}

// AtIndex retrieves the element at a multi-dimensional index.
// Complexity: O(rank).
func (a *Array[T]) AtIndex(indices ...int) (T, error) {
	off, err := a.Offset(indices...)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[off], nil
}

// SetIndex assigns value v at a multi-dimensional index.
// Complexity: O(rank).
func (a *Array[T]) SetIndex(v T, indices ...int) error {
	off, err := a.Offset(indices...)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// Data exposes the flat backing slice for bulk fills (see package rng).
// The caller mutates the array through it; the slice is NOT a copy.
func (a *Array[T]) Data() []T {
	return a.data
}

// Clone returns a deep copy of the array. Complexity: O(size).
func (a *Array[T]) Clone() *Array[T] {
	dims := make([]int, len(a.dims))
	copy(dims, a.dims)
	data := make([]T, len(a.data))
	copy(data, a.data)

	return &Array[T]{dims: dims, data: data}
}

// String implements fmt.Stringer for debugging: "3x2[1, 2, 3, 4, 5, 6]".
// Not a stability-bearing format. Complexity: O(size).
func (a *Array[T]) String() string {
	var sb strings.Builder
	for i, d := range a.dims {
		if i > 0 {
			sb.WriteByte('x')
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteByte('[')
	for i, v := range a.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", float64(v))
	}
	sb.WriteByte(']')

	return sb.String()
}
