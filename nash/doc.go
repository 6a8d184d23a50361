// Package nash finds and verifies Nash equilibria of two-player zero-sum
// matrix games.
//
// Find wraps zerosum.Solve into an Equilibrium value with defensive
// accessors: callers can hand the result around without exposing the
// underlying strategy slices to mutation.
//
// IsEpsilonNash verifies a strategy pair independently of how it was
// produced. The pair is an ε-equilibrium when no pure row deviation gains
// more than ε over the pair's expected payoff and no pure column deviation
// saves more than ε below it. Mixed deviations need no separate check: a
// mixture of pure deviations can never beat the best pure one. An exact
// equilibrium passes with any ε ≥ 0.
//
// Errors: validation failures surface the zerosum sentinels (ErrEmptyMatrix,
// ErrInconsistentRows, ErrStrategyLength) wrapped with package context;
// solver failures from Find propagate the simplex sentinels the same way.
package nash
