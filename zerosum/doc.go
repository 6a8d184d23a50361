// Package zerosum solves two-player zero-sum matrix games: equilibrium
// mixed strategies for both players plus the game value, by reduction to
// linear programming.
//
// The payoff matrix is given from the row player's perspective: entry
// a[i][j] is what the column player pays the row player when row i meets
// column j. The row player maximizes, the column player minimizes.
//
// What:
//
//   - Solve computes Solution{RowStrategy, ColStrategy, Value} for any
//     rectangular payoff matrix, mixed or pure.
//   - ExpectedPayoff evaluates the bilinear payoff p·A·q of an arbitrary
//     strategy pair.
//
// How:
//
//  1. Positivity shift: add max(0, 1−min entry) to every payoff so the
//     derived LP has well-posed ≤ 1 constraints. The shift is a solving
//     device only and never leaks into the reported value.
//  2. Column player's LP: maximize Σz subject to A′·z ≤ 1 via
//     simplex.Maximize; normalizing z yields the column strategy.
//  3. Row player's strategy: from the LP's active columns. One active
//     column → pure best response; several → the indifference system
//     (equal payoff across active columns, weights summing to 1), solved
//     by Gaussian elimination (matrix.SolveLinear).
//  4. Game value: min_j Σ_i p_i·a[i][j] over the unshifted matrix, the
//     payoff the row strategy guarantees against any column response.
//
// Complexity:
//
//   - One Simplex solve on an m×(n+m) tableau plus one elimination over at
//     most n equations in m unknowns; memory O(m·n).
//
// Options:
//
//   - WithMaxIterations(n): pivot budget forwarded to the inner Simplex.
//   - WithVerbose(): trace the shift, the inner pivots, the active columns
//     and the value via fmt.Printf.
//
// Errors:
//
//   - ErrEmptyMatrix, ErrInconsistentRows: malformed payoff matrix.
//   - ErrInfeasible: the LP solution supports no usable mixed strategy.
//   - ErrStrategyLength: strategy length mismatch in ExpectedPayoff.
//   - simplex.ErrMaxIterations and matrix sentinels (ErrNaNInf, ErrSingular)
//     propagate wrapped, so errors.Is sees through them.
//
// See simplex for the LP engine, nash for the equilibrium wrapper, and
// penalty for an applied model built on this package.
package zerosum
