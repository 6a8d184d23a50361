// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w at the call site.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewStrategies indicates that a numeric size parameter (rows, cols,
// vars, constraints, n) is smaller than the allowed minimum for the requested
// generator.
// Usage: if errors.Is(err, ErrTooFewStrategies) { /* report invalid size */ }.
var ErrTooFewStrategies = errors.New("builder: parameter too small")

// ErrInvalidRange indicates that the configured coefficient range cannot
// serve the requested generator (e.g. RandomLP requires a strictly positive
// lower bound so the instance stays bounded and feasible).
// Usage: if errors.Is(err, ErrInvalidRange) { /* adjust WithRange */ }.
var ErrInvalidRange = errors.New("builder: coefficient range unusable")

// ErrNeedRandSource indicates that a stochastic generator requires a non-nil
// *rand.Rand in the resolved config (WithRand or WithSeed must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")
