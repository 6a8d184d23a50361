// Package builder_test contains unit tests for the public generators:
// canonical games, random payoff matrices, random LP instances, and random
// mixed strategies.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimax/builder"
)

// TestMatchingPennies verifies the fixed payoff layout and that every call
// returns a fresh allocation.
func TestMatchingPennies(t *testing.T) {
	g := builder.MatchingPennies()
	require.Equal(t, [][]float64{{1, -1}, {-1, 1}}, g)

	g[0][0] = 99 // mutate the first copy
	require.Equal(t, 1.0, builder.MatchingPennies()[0][0], "calls must not share storage")
}

// TestRockPaperScissors verifies the cyclic 3×3 layout: zero diagonal,
// antisymmetric wins and losses.
func TestRockPaperScissors(t *testing.T) {
	g := builder.RockPaperScissors()
	require.Equal(t, [][]float64{{0, -1, 1}, {1, 0, -1}, {-1, 1, 0}}, g)

	// Zero-sum antisymmetry: g[i][j] == -g[j][i].
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, g[i][j], -g[j][i], "cell (%d,%d)", i, j)
		}
	}
}

// TestDiagonal verifies placement of diagonal values and the size guard.
func TestDiagonal(t *testing.T) {
	g, err := builder.Diagonal([]float64{2, 4})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}, {0, 4}}, g)

	_, err = builder.Diagonal(nil) // empty diagonal
	require.ErrorIs(t, err, builder.ErrTooFewStrategies)
}

// TestRandomGame_ShapeAndRange checks dimensions, the default [-1,1) range,
// and seed-for-seed determinism.
func TestRandomGame_ShapeAndRange(t *testing.T) {
	g, err := builder.RandomGame(3, 4, builder.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, g, 3)
	for _, row := range g {
		require.Len(t, row, 4)
		for _, v := range row {
			require.GreaterOrEqual(t, v, -1.0) // default range lower bound
			require.Less(t, v, 1.0)            // default range upper bound (exclusive)
		}
	}

	// Same seed, same matrix.
	again, err := builder.RandomGame(3, 4, builder.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, g, again)
}

// TestRandomGame_CustomRange verifies WithRange drives the entry bounds.
func TestRandomGame_CustomRange(t *testing.T) {
	g, err := builder.RandomGame(2, 2, builder.WithSeed(3), builder.WithRange(10, 11))
	require.NoError(t, err)
	for _, row := range g {
		for _, v := range row {
			require.GreaterOrEqual(t, v, 10.0)
			require.Less(t, v, 11.0)
		}
	}
}

// TestRandomGame_Validation covers size and RNG guards.
func TestRandomGame_Validation(t *testing.T) {
	_, err := builder.RandomGame(0, 2, builder.WithSeed(1)) // zero rows
	require.ErrorIs(t, err, builder.ErrTooFewStrategies)

	_, err = builder.RandomGame(2, 2) // no RNG configured
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestRandomLP_WellPosed checks shapes and the bounded-feasible construction:
// strictly positive coefficients and right-hand sides at least hi.
func TestRandomLP_WellPosed(t *testing.T) {
	c, a, b, err := builder.RandomLP(3, 2, builder.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, c, 3)
	require.Len(t, a, 2)
	require.Len(t, b, 2)

	for _, v := range c {
		require.Greater(t, v, 0.0) // objective strictly positive
	}
	for _, row := range a {
		require.Len(t, row, 3)
		for _, v := range row {
			require.Greater(t, v, 0.0) // coefficients strictly positive
		}
	}
	for _, v := range b {
		require.GreaterOrEqual(t, v, 5.0) // b_i >= hi keeps x=0 well inside
	}

	// Same seed, same instance (c, a, and b all reproduce).
	c2, a2, b2, err := builder.RandomLP(3, 2, builder.WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, c, c2)
	require.Equal(t, a, a2)
	require.Equal(t, b, b2)
}

// TestRandomLP_Validation covers the size, RNG, and positive-range guards.
func TestRandomLP_Validation(t *testing.T) {
	_, _, _, err := builder.RandomLP(0, 1, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewStrategies)

	_, _, _, err = builder.RandomLP(2, 2)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	// A range reaching below zero can make instances unbounded; rejected.
	_, _, _, err = builder.RandomLP(2, 2, builder.WithSeed(1), builder.WithRange(-1, 1))
	require.ErrorIs(t, err, builder.ErrInvalidRange)
}

// TestRandomStrategy_Simplex verifies the result is a probability vector:
// non-negative entries summing to 1.
func TestRandomStrategy_Simplex(t *testing.T) {
	p, err := builder.RandomStrategy(5, builder.WithSeed(4))
	require.NoError(t, err)
	require.Len(t, p, 5)

	sum := 0.0
	for _, v := range p {
		require.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	require.InDelta(t, 1.0, sum, 1e-12)
}

// TestRandomStrategy_Validation covers the size and RNG guards.
func TestRandomStrategy_Validation(t *testing.T) {
	_, err := builder.RandomStrategy(0, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooFewStrategies)

	_, err = builder.RandomStrategy(3)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}
