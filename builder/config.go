// SPDX-License-Identifier: MIT
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng   = nil                  (stochastic generators fail fast without one)
//   • range = unset                (each generator resolves its own default:
//                                   games use [-1, 1), LPs use [0.5, 5))

package builder

import (
	"math"
	"math/rand"
)

// config aggregates all knobs used by generators.
// It is passed by value to generators (immutable to callers).
type config struct {
	// RNG for stochastic draws; nil means "no randomness available".
	rng *rand.Rand

	// Coefficient range [lo, hi); meaningful only when rangeSet is true,
	// otherwise each generator falls back to its documented default.
	lo, hi   float64
	rangeSet bool
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultGameLo = -1.0 // payoff entries resemble a [-1,1] zero-sum scale
	defaultGameHi = 1.0
	defaultLPLo   = 0.5 // strictly positive keeps random LPs bounded
	defaultLPHi   = 5.0
)

// Option represents a functional option for configuring generators.
type Option func(*config)

// newConfig constructs a config with deterministic defaults and applies all
// options in order; last-wins semantics.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:      nil,   // no RNG unless explicitly set
		rangeSet: false, // generator-specific defaults apply
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange overrides the coefficient range [lo, hi) for stochastic draws.
// Panics when lo/hi are non-finite or lo >= hi (programmer error).
// Note: RandomLP additionally requires lo > 0 and reports ErrInvalidRange
// at call time, since a non-positive bound can make the instance unbounded.
func WithRange(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		panic("builder: WithRange: need finite lo < hi")
	}

	return func(c *config) {
		c.lo = lo
		c.hi = hi
		c.rangeSet = true
	}
}

// rangeOr resolves the effective [lo, hi) pair: the explicit WithRange values
// when set, the supplied generator defaults otherwise.
func (c config) rangeOr(defLo, defHi float64) (lo, hi float64) {
	if c.rangeSet {
		return c.lo, c.hi
	}

	return defLo, defHi
}
