// Package rng provides deterministic random fills for gradient-check trial
// inputs.
//
// Goals:
//   - Determinism: same seed ⇒ identical fills across platforms; no
//     time-based sources hidden anywhere.
//   - Encapsulation: a single Source factory; package-level helpers mirror
//     the common "set a global seed once, then fill" workflow.
//   - Safety: invalid parameters return sentinel errors; no panics, no logs.
//
// The only contract that matters to callers is statistical: Gaussian fills
// match the requested mean/stddev, Uniform fills match the [low, high)
// moments, Bernoulli fills have mean p and variance p(1−p). Trials drawn
// from these fills feed the jet/gradcheck packages.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *Source across
//     goroutines; create one per worker with distinct seeds.
package rng
