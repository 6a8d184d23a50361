// Package penalty models the penalty kick as a two-player zero-sum game
// between kicker and goalkeeper.
//
// The model follows the classic game-theoretic treatment of penalty kicks
// (Palacios-Huerta, 2003): each side commits to one of three directions,
// Left, Center or Right, and a success-rate matrix gives the probability of
// a goal for every kick/dive pairing. Mapping each probability p onto the
// payoff 2p−1 (goal +1, save −1) turns the duel into a zero-sum game whose
// equilibrium yields the optimal mixtures for both sides; the game value v
// maps back to the equilibrium scoring probability (v+1)/2.
//
// What:
//
//   - Direction: the three-way strategy space shared by both players.
//   - PayoffMatrix: labeled success-rate storage with the 2p−1 payoff
//     mapping and an aligned display grid.
//   - Kick: the 3x3 analyzer. New takes custom data, Default loads the
//     empirical Palacios-Huerta rates, Analyze finds the equilibrium, and
//     ExpectedGoalProbability prices arbitrary strategy pairs.
//   - Sensitivity: perturb one success rate (or sweep all nine), re-solve,
//     and rank the cells by how hard the equilibrium moves.
//
// Errors:
//
//   - ErrDimensionMismatch: empty, ragged, or non-3x3 input where the
//     three-direction game requires it.
//   - ErrLabelMismatch: label counts that do not match the matrix shape.
//   - ErrInvalidProbability: a success rate outside [0, 1].
//   - ErrBadDirection, ErrOutOfRange: index lookups outside the grid.
//   - Solver failures propagate the zerosum/simplex sentinels wrapped with
//     package context.
//
// The solving itself lives in zerosum; this package owns the football
// vocabulary on top of it.
package penalty
