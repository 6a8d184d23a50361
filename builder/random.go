// SPDX-License-Identifier: MIT
//
// random.go — stochastic generators for payoff matrices, LP instances, and
// mixed strategies.
//
// Contract:
//   - All generators require a non-nil RNG (WithRand/WithSeed), else
//     ErrNeedRandSource.
//   - Size parameters must be ≥ 1, else ErrTooFewStrategies.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Fixed draw order for a given seed: RandomGame fills row-major;
//     RandomLP draws c, then a row-major, then b; RandomStrategy draws
//     weights in index order. Identical seeds yield identical instances.

package builder

import (
	"fmt"
	"math"
)

// File-local constants (stable method tags and domains).
const (
	methodRandomGame     = "RandomGame"
	methodRandomLP       = "RandomLP"
	methodRandomStrategy = "RandomStrategy"
	minMatrixDim         = 1
	minStrategyLen       = 1
)

// RandomGame returns a rows×cols payoff matrix with entries drawn uniformly
// from [lo, hi). The default range is [-1, 1), matching a normalized zero-sum
// payoff scale; override with WithRange.
//
// Errors:
//   - ErrTooFewStrategies when rows < 1 or cols < 1.
//   - ErrNeedRandSource when no RNG is configured.
//
// Complexity: O(rows·cols).
func RandomGame(rows, cols int, opts ...Option) ([][]float64, error) {
	// 1) Validate parameters early (fail fast, zero side-effects).
	if rows < minMatrixDim || cols < minMatrixDim {
		return nil, fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
			methodRandomGame, rows, cols, minMatrixDim, ErrTooFewStrategies)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomGame, ErrNeedRandSource)
	}

	// 2) Resolve the effective range and fill row-major.
	lo, hi := cfg.rangeOr(defaultGameLo, defaultGameHi)
	out := make([][]float64, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			out[i][j] = lo + (hi-lo)*cfg.rng.Float64()
		}
	}

	return out, nil
}

// RandomLP returns a random bounded-feasible LP instance for
// simplex.Maximize: objective c (length vars), constraint matrix a
// (constraints×vars), and right-hand side b (length constraints).
//
// Construction keeps the instance well-posed by design:
//   - every coefficient of c and a lies in [lo, hi) with lo > 0, so the
//     feasible region {x ≥ 0, a·x ≤ b} is bounded (each x_j ≤ max(b)/lo);
//   - every b_i lies in [hi, hi·(vars+1)), strictly positive, so x = 0 is
//     always feasible.
//
// The default range is [0.5, 5); an explicit WithRange must keep lo > 0.
//
// Errors:
//   - ErrTooFewStrategies when vars < 1 or constraints < 1.
//   - ErrInvalidRange when the configured range has lo <= 0.
//   - ErrNeedRandSource when no RNG is configured.
//
// Complexity: O(constraints·vars).
func RandomLP(vars, constraints int, opts ...Option) (c []float64, a [][]float64, b []float64, err error) {
	// 1) Validate parameters early.
	if vars < minMatrixDim || constraints < minMatrixDim {
		return nil, nil, nil, fmt.Errorf("%s: vars=%d constraints=%d < min=%d: %w",
			methodRandomLP, vars, constraints, minMatrixDim, ErrTooFewStrategies)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodRandomLP, ErrNeedRandSource)
	}
	lo, hi := cfg.rangeOr(defaultLPLo, defaultLPHi)
	if lo <= 0 {
		return nil, nil, nil, fmt.Errorf("%s: lo=%g must be > 0: %w",
			methodRandomLP, lo, ErrInvalidRange)
	}

	// 2) Objective coefficients first (fixed draw order).
	c = make([]float64, vars)
	var i, j int
	for j = 0; j < vars; j++ {
		c[j] = lo + (hi-lo)*cfg.rng.Float64()
	}

	// 3) Constraint matrix row-major.
	a = make([][]float64, constraints)
	for i = 0; i < constraints; i++ {
		a[i] = make([]float64, vars)
		for j = 0; j < vars; j++ {
			a[i][j] = lo + (hi-lo)*cfg.rng.Float64()
		}
	}

	// 4) Right-hand side last: b_i in [hi, hi·(vars+1)).
	b = make([]float64, constraints)
	for i = 0; i < constraints; i++ {
		b[i] = hi * (1 + cfg.rng.Float64()*float64(vars))
	}

	return c, a, b, nil
}

// RandomStrategy returns a probability vector of length n drawn uniformly
// from the simplex (Dirichlet(1,...,1)): exponential weights normalized to
// sum 1. Entries are non-negative and sum to 1 exactly up to rounding.
//
// Errors:
//   - ErrTooFewStrategies when n < 1.
//   - ErrNeedRandSource when no RNG is configured.
//
// Complexity: O(n).
func RandomStrategy(n int, opts ...Option) ([]float64, error) {
	// 1) Validate parameters early.
	if n < minStrategyLen {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomStrategy, n, minStrategyLen, ErrTooFewStrategies)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomStrategy, ErrNeedRandSource)
	}

	// 2) Exponential weights; Float64 is in [0,1), so the argument of Log
	//    stays in (0,1] and every weight is finite and non-negative.
	w := make([]float64, n)
	sum := 0.0
	var i int
	for i = 0; i < n; i++ {
		w[i] = -math.Log(1 - cfg.rng.Float64())
		sum += w[i]
	}
	if sum == 0 {
		// All draws hit exactly zero (possible only for pathological RNGs):
		// fall back to the uniform distribution rather than divide by zero.
		for i = 0; i < n; i++ {
			w[i] = 1
		}
		sum = float64(n)
	}

	// 3) Normalize onto the simplex.
	for i = 0; i < n; i++ {
		w[i] /= sum
	}

	return w, nil
}
