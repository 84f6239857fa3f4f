// Package verigrad is an in-memory toolkit for verifying gradients with
// forward-mode automatic differentiation — write a numeric formula once,
// evaluate it on dual numbers, and read off its exact analytic gradient.
//
// 🚀 What is verigrad?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Jets: dual numbers carrying a value plus a full tangent vector
//		• A complete operator algebra: +, −, ×, ÷, comparisons, exp/log/sqrt/max
//		• A generic Number bound so one formula runs on scalars or jets
//		• Gradient checking: analytic vs. supplied vs. finite-difference gradients
//		• Peripheral helpers: n-d arrays and deterministic random fills for trials
//
// ✨ Why choose verigrad?
//
//   - Exact gradients – forward-mode propagation, not finite-difference noise
//   - Fail-fast safety – dimensionality mismatches abort immediately with a
//     typed fault naming expected vs. actual lengths
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – seeded randomness, no time-based sources anywhere
//
// Under the hood, everything is organized under four subpackages:
//
//	jet/       — Tangent vectors, Jet dual numbers, the Number generic bound
//	gradcheck/ — analytic vs. reference gradient comparison with tolerances
//	tensor/    — flat-backed n-dimensional arrays used for trial inputs
//	rng/       — seeded Gaussian/Uniform/Bernoulli fills for those arrays
//
// Quick taste:
//
//	x := jet.Variable[float64](2, 3, 0) // track ∂/∂x
//	y := jet.Variable[float64](2, 4, 1) // track ∂/∂y
//	z := x.Mul(y).Add(x.Exp())          // z = x·y + eˣ
//	// z.Value()  == 12 + e³
//	// z.Deriv(0) == 4 + e³, z.Deriv(1) == 3
//
// Dive into the package docs and examples for gradient-check recipes.
//
//	go get github.com/verigrad/verigrad/jet
package verigrad
