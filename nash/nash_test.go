// Package nash_test contains unit tests for equilibrium finding and
// ε-equilibrium verification.
package nash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimax/builder"
	"github.com/katalvlaran/minimax/nash"
	"github.com/katalvlaran/minimax/simplex"
	"github.com/katalvlaran/minimax/zerosum"
)

// TestFind_MatchingPennies solves the canonical mixing game through the
// wrapper and reads the result through the accessors.
func TestFind_MatchingPennies(t *testing.T) {
	eq, err := nash.Find(builder.MatchingPennies())
	require.NoError(t, err)

	require.InDelta(t, 0.5, eq.RowStrategy()[0], 1e-12)
	require.InDelta(t, 0.5, eq.RowStrategy()[1], 1e-12)
	require.InDelta(t, 0.5, eq.ColStrategy()[0], 1e-9)
	require.InDelta(t, 0.5, eq.ColStrategy()[1], 1e-9)
	require.InDelta(t, 0.0, eq.Value(), 1e-12)
}

// TestEquilibrium_AccessorsCopy verifies mutating an accessor result does
// not leak back into the equilibrium.
func TestEquilibrium_AccessorsCopy(t *testing.T) {
	eq, err := nash.Find(builder.MatchingPennies())
	require.NoError(t, err)

	leaked := eq.RowStrategy()
	leaked[0] = 99

	require.InDelta(t, 0.5, eq.RowStrategy()[0], 1e-12)

	leaked = eq.ColStrategy()
	leaked[1] = -7

	require.InDelta(t, 0.5, eq.ColStrategy()[1], 1e-9)
}

// TestFind_PropagatesErrors verifies validation and solver sentinels survive
// the wrapping.
func TestFind_PropagatesErrors(t *testing.T) {
	_, err := nash.Find(nil)
	require.ErrorIs(t, err, zerosum.ErrEmptyMatrix)

	_, err = nash.Find(builder.MatchingPennies(), zerosum.WithMaxIterations(1))
	require.ErrorIs(t, err, simplex.ErrMaxIterations)
}

// TestIsEpsilonNash_AcceptsEquilibrium verifies the fair-coin pair passes
// the check on matching pennies with a tight tolerance.
func TestIsEpsilonNash_AcceptsEquilibrium(t *testing.T) {
	ok, err := nash.IsEpsilonNash(builder.MatchingPennies(),
		[]float64{0.5, 0.5}, []float64{0.5, 0.5}, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestIsEpsilonNash_RejectsExploitablePairs covers both deviation
// directions on matching pennies.
func TestIsEpsilonNash_RejectsExploitablePairs(t *testing.T) {
	payoff := builder.MatchingPennies()

	// Row player sits on a mismatch: switching rows would gain 2.
	ok, err := nash.IsEpsilonNash(payoff, []float64{1, 0}, []float64{0, 1}, 0.01)
	require.NoError(t, err)
	require.False(t, ok)

	// Column player matches voluntarily: switching columns would save 2.
	ok, err = nash.IsEpsilonNash(payoff, []float64{0, 1}, []float64{0, 1}, 0.01)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIsEpsilonNash_EpsilonSlack verifies eps is a real slack: a slightly
// lopsided row mixture is exploitable for 0.2, so it fails at eps=0.1 and
// passes at eps=0.25.
func TestIsEpsilonNash_EpsilonSlack(t *testing.T) {
	payoff := builder.MatchingPennies()
	row := []float64{0.6, 0.4}
	col := []float64{0.5, 0.5}

	ok, err := nash.IsEpsilonNash(payoff, row, col, 0.1)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = nash.IsEpsilonNash(payoff, row, col, 0.25)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestIsEpsilonNash_ValidationErrors covers malformed input.
func TestIsEpsilonNash_ValidationErrors(t *testing.T) {
	_, err := nash.IsEpsilonNash(nil, []float64{1}, []float64{1}, 0.01)
	require.ErrorIs(t, err, zerosum.ErrEmptyMatrix)

	payoff := builder.MatchingPennies()

	_, err = nash.IsEpsilonNash(payoff, []float64{1}, []float64{0.5, 0.5}, 0.01)
	require.ErrorIs(t, err, zerosum.ErrStrategyLength)

	_, err = nash.IsEpsilonNash(payoff, []float64{0.5, 0.5}, []float64{1, 0, 0}, 0.01)
	require.ErrorIs(t, err, zerosum.ErrStrategyLength)
}

// TestIsEpsilonNash_SolvedGamesPass verifies solver output self-checks:
// solved equilibria of known and generated two-row games pass at eps=0.01.
func TestIsEpsilonNash_SolvedGamesPass(t *testing.T) {
	games := [][][]float64{
		builder.MatchingPennies(),
		builder.RockPaperScissors(),
		{{2, -1}, {-1, 1}},
	}
	diag, err := builder.Diagonal([]float64{1, 2, 4})
	require.NoError(t, err)
	games = append(games, diag)

	for seed := int64(1); seed <= 4; seed++ {
		g, err := builder.RandomGame(2, 3, builder.WithSeed(seed))
		require.NoError(t, err)
		games = append(games, g)
	}

	for gi, payoff := range games {
		sol, err := zerosum.Solve(payoff)
		require.NoError(t, err, "game %d", gi)

		ok, err := nash.IsEpsilonNash(payoff, sol.RowStrategy, sol.ColStrategy, 0.01)
		require.NoError(t, err, "game %d", gi)
		require.True(t, ok, "game %d", gi)
	}
}
