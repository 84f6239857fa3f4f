// Package rng: seeded source and distribution fills over tensor arrays.

package rng

import (
	"errors"
	"math/rand"

	"github.com/verigrad/verigrad/jet"
	"github.com/verigrad/verigrad/tensor"
)

var (
	// ErrNilArray indicates a nil *tensor.Array was passed to a fill.
	ErrNilArray = errors.New("rng: array is nil")

	// ErrBadStdDev indicates a negative standard deviation.
	ErrBadStdDev = errors.New("rng: stddev must be >= 0")

	// ErrBadInterval indicates low >= high for a uniform fill.
	ErrBadInterval = errors.New("rng: low must be < high")

	// ErrBadProbability indicates a Bernoulli probability outside [0, 1].
	ErrBadProbability = errors.New("rng: probability must be in [0, 1]")
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// Source is a deterministic random stream. The zero value is not usable;
// construct with New.
type Source struct {
	r *rand.Rand
}

// New returns a deterministic Source.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed
// verbatim. Complexity: O(1).
func New(seed int64) *Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return &Source{r: rand.New(rand.NewSource(seed))}
}

// pkgSource is the shared default stream behind the package-level helpers.
// Not goroutine-safe, like everything else here.
var pkgSource = New(0)

// SetSeed re-seeds the package-level default stream. Subsequent fills that
// pass a nil *Source draw from this stream.
func SetSeed(seed int64) {
	pkgSource = New(seed)
}

// pick resolves a possibly-nil source to the package default.
func pick(s *Source) *Source {
	if s == nil {
		return pkgSource
	}

	return s
}

// Gaussian fills arr in place with N(mean, stddev²) samples drawn from s
// (nil s ⇒ the package default stream).
// Complexity: O(size).
func Gaussian[T jet.Float](s *Source, arr *tensor.Array[T], mean, stddev T) error {
	if arr == nil {
		return ErrNilArray
	}
	if stddev < 0 {
		return ErrBadStdDev
	}

	r := pick(s).r
	data := arr.Data()
	for i := range data {
		data[i] = T(r.NormFloat64())*stddev + mean
	}

	return nil
}

// Uniform fills arr in place with samples uniform on [low, high) drawn
// from s (nil s ⇒ the package default stream).
// Complexity: O(size).
func Uniform[T jet.Float](s *Source, arr *tensor.Array[T], low, high T) error {
	if arr == nil {
		return ErrNilArray
	}
	if low >= high {
		return ErrBadInterval
	}

	r := pick(s).r
	span := high - low
	data := arr.Data()
	for i := range data {
		data[i] = T(r.Float64())*span + low
	}

	return nil
}

// Bernoulli fills arr in place with 1 (probability p) or 0 samples drawn
// from s (nil s ⇒ the package default stream). The resulting sample has
// mean p and variance p(1−p).
// Complexity: O(size).
func Bernoulli[T jet.Float](s *Source, arr *tensor.Array[T], p float64) error {
	if arr == nil {
		return ErrNilArray
	}
	if p < 0 || p > 1 {
		return ErrBadProbability
	}

	r := pick(s).r
	data := arr.Data()
	for i := range data {
		if r.Float64() < p {
			data[i] = 1
		} else {
			data[i] = 0
		}
	}

	return nil
}
