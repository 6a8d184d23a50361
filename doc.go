// Package minimax is your in-memory toolkit for linear programming and
// two-player zero-sum games: from a dense Simplex solver to equilibrium
// strategies, Nash verification and penalty-kick analytics.
//
// 🚀 What is minimax?
//
//	A compact, deterministic library that brings together:
//		• Simplex: maximize c·x subject to a·x ≤ b, x ≥ 0 on a dense tableau
//		• Zero-sum games: equilibrium mixed strategies and the game value
//		• Nash: epsilon-equilibrium verification for candidate strategy pairs
//		• Penalty: the classic kicker-vs-goalkeeper game on empirical data,
//		  with sensitivity sweeps over the success-rate matrix
//		• Builders: canonical games and seeded random instances for tests
//
// ✨ Why choose minimax?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed pivot rules, seeded generators, no hidden state
//   - Typed failures – sentinel errors for every rejection, errors.Is-ready
//   - Verifiable – every solve can be cross-checked with nash.IsEpsilonNash
//
// Under the hood, everything is organized under six subpackages:
//
//	simplex/ — primal Simplex method over a dense (m+1)×(n+m+1) tableau
//	zerosum/ — game → LP reduction, indifference system, equilibrium value
//	nash/    — equilibrium container and epsilon-Nash deviation checks
//	penalty/ — labeled payoff matrices, direction taxonomy, sensitivity
//	matrix/  — dense storage, algebra helpers, Gaussian elimination
//	builder/ — matching pennies, RPS, diagonal and seeded random instances
//
// Quick matrix example:
//
//	         Heads   Tails
//	Heads     +1      -1
//	Tails     -1      +1
//
//	matching pennies: both players mix 50/50 and the game is worth 0.
//
// Dive into examples/ for runnable scenarios: production planning with the
// Simplex trace, the matching-pennies equilibrium, and the Palacios-Huerta
// penalty-kick study.
//
//	go get github.com/katalvlaran/minimax
package minimax
