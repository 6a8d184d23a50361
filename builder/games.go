// SPDX-License-Identifier: MIT
//
// games.go — canonical zero-sum games with known closed-form equilibria.
//
// Contract:
//   - Every call returns a fresh allocation; callers may mutate results.
//   - No RNG involved; outputs are constants of game theory folklore.
//   - Matrices are row-major from the maximizing (row) player's perspective.
//
// Complexity: O(n²) time and space per constructor (n = side length).

package builder

import "fmt"

// File-local method tags for error context.
const (
	methodDiagonal = "Diagonal"
	minDiagonal    = 1
)

// MatchingPennies returns the classic 2×2 game [[1,-1],[-1,1]].
// Equilibrium: both players mix (0.5, 0.5); game value 0.
func MatchingPennies() [][]float64 {
	return [][]float64{
		{1, -1},
		{-1, 1},
	}
}

// RockPaperScissors returns the cyclic 3×3 game where each pure strategy
// beats one opponent move and loses to another.
// Equilibrium: both players mix uniformly (1/3 each); game value 0.
func RockPaperScissors() [][]float64 {
	return [][]float64{
		{0, -1, 1},
		{1, 0, -1},
		{-1, 1, 0},
	}
}

// Diagonal returns the n×n game with d on the diagonal and 0 elsewhere.
// For all-positive d the equilibrium is known in closed form: both players
// play p_i = (1/d_i) / Σ_k(1/d_k) and the game value is 1 / Σ_k(1/d_k),
// which makes this family a sharp fixture for solver tests.
//
// Errors:
//   - ErrTooFewStrategies when len(d) < 1.
func Diagonal(d []float64) ([][]float64, error) {
	if len(d) < minDiagonal {
		return nil, fmt.Errorf("%s: len(d)=%d < min=%d: %w",
			methodDiagonal, len(d), minDiagonal, ErrTooFewStrategies)
	}

	n := len(d)
	out := make([][]float64, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n) // zero-filled row
		out[i][i] = d[i]
	}

	return out, nil
}
