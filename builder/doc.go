// SPDX-License-Identifier: MIT

// Package builder provides deterministic instance generators for the solver
// packages: canonical zero-sum games with known equilibria, random payoff
// matrices, random bounded-feasible linear programs, and random mixed
// strategies. It centralizes RNG policy and coefficient-range configuration so
// tests, benchmarks, and examples stay reproducible and DRY.
//
// The package offers the following key components:
//
//   - Canonical games (closed-form equilibria, no RNG):
//     – MatchingPennies:   [[1,-1],[-1,1]], value 0, both mixes (0.5, 0.5).
//     – RockPaperScissors: 3×3 cyclic game, value 0, both mixes uniform.
//     – Diagonal:          diag(d) payoffs; for all-positive d the equilibrium
//     is p_i ∝ 1/d_i with value 1/Σ(1/d_i).
//   - Stochastic generators (require an RNG via WithRand or WithSeed):
//     – RandomGame:     rows×cols payoff matrix, entries uniform in [lo, hi).
//     – RandomLP:       bounded-feasible maximize instance (c, a, b) with
//     strictly positive coefficients, so x = 0 is feasible
//     and the optimum is finite.
//     – RandomStrategy: probability vector drawn uniformly from the simplex.
//   - Configuration:
//     – WithRand(r):      explicit *rand.Rand (panics on nil).
//     – WithSeed(s):      convenience seeded RNG for reproducible fixtures.
//     – WithRange(lo,hi): coefficient range override (panics on lo ≥ hi or
//     non-finite bounds).
//
// Guarantees:
//
//   - Deterministic outcomes for a fixed seed: all fill orders are fixed
//     (row-major, c before a before b).
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; runtime validation returns sentinel errors only.
//   - Fresh allocations on every call: callers may mutate results freely.
//
// Errors:
//
//   - ErrTooFewStrategies: a size parameter (rows, cols, vars, n) below 1.
//   - ErrInvalidRange:     a coefficient range unusable for the constructor
//     (e.g. RandomLP with a non-positive lower bound).
//   - ErrNeedRandSource:   a stochastic constructor invoked without an RNG.
package builder
