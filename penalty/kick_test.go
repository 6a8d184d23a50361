package penalty_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimax/nash"
	"github.com/katalvlaran/minimax/penalty"
	"github.com/katalvlaran/minimax/simplex"
	"github.com/katalvlaran/minimax/zerosum"
)

// weightsOf flattens a DirectionWeight slice back into a plain strategy
// vector, indexed by direction.
func weightsOf(ws []penalty.DirectionWeight) []float64 {
	out := make([]float64, len(ws))
	for i, w := range ws {
		out[i] = w.Weight
	}

	return out
}

// TestDirection_RoundTrip covers the enum surface: ordering, names, index
// mapping, and the rejection of out-of-range indices.
func TestDirection_RoundTrip(t *testing.T) {
	require.Equal(t, []penalty.Direction{penalty.Left, penalty.Center, penalty.Right},
		penalty.Directions())

	require.Equal(t, "Left", penalty.Left.String())
	require.Equal(t, "Center", penalty.Center.String())
	require.Equal(t, "Right", penalty.Right.String())
	require.Equal(t, "Direction(7)", penalty.Direction(7).String())

	for i, d := range penalty.Directions() {
		require.Equal(t, i, d.Index())
		got, err := penalty.DirectionFromIndex(i)
		require.NoError(t, err)
		require.Equal(t, d, got)
	}

	_, err := penalty.DirectionFromIndex(-1)
	require.ErrorIs(t, err, penalty.ErrBadDirection)
	_, err = penalty.DirectionFromIndex(3)
	require.ErrorIs(t, err, penalty.ErrBadDirection)
}

// TestNew_Validation checks that the analyzer insists on a 3x3 grid of
// probabilities.
func TestNew_Validation(t *testing.T) {
	_, err := penalty.New(nil)
	require.ErrorIs(t, err, penalty.ErrDimensionMismatch)

	_, err = penalty.New([][]float64{
		{0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
	})
	require.ErrorIs(t, err, penalty.ErrDimensionMismatch)

	_, err = penalty.New([][]float64{
		{0.5, 0.5, 0.5},
		{0.5, 0.5},
		{0.5, 0.5, 0.5},
	})
	require.ErrorIs(t, err, penalty.ErrDimensionMismatch)

	_, err = penalty.New([][]float64{
		{0.5, 0.5, 0.5},
		{0.5, 1.2, 0.5},
		{0.5, 0.5, 0.5},
	})
	require.ErrorIs(t, err, penalty.ErrInvalidProbability)
}

// TestNew_FootballLabels verifies the analyzer wires the direction
// vocabulary into the matrix labels.
func TestNew_FootballLabels(t *testing.T) {
	k, err := penalty.New([][]float64{
		{0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
	})
	require.NoError(t, err)

	pm := k.PayoffMatrix()
	require.Equal(t, []string{"Kick Left", "Kick Center", "Kick Right"}, pm.RowLabels())
	require.Equal(t, []string{"GK Left", "GK Center", "GK Right"}, pm.ColLabels())
	require.Contains(t, pm.String(), "Kick Center")
	require.Contains(t, pm.String(), "GK Right")
}

// TestDefault_Analyze solves the Palacios-Huerta data and checks the
// equilibrium against the closed-form solution of its indifference
// system: kicker (429/1258, 174/629, 13/34), goalkeeper
// (1679/3774, 455/3774, 820/1887), scoring probability 35599/62900
// mapped through (v+1)/2.
func TestDefault_Analyze(t *testing.T) {
	a, err := penalty.Default().Analyze()
	require.NoError(t, err)

	wantKicker := []float64{0.3410174880763116, 0.2766295707472178, 0.38235294117647056}
	wantGK := []float64{0.44488606253312135, 0.12056173820879704, 0.4345521992580816}

	require.Len(t, a.Kicker, 3)
	require.Len(t, a.Goalkeeper, 3)
	for i, d := range penalty.Directions() {
		require.Equal(t, d, a.Kicker[i].Direction)
		require.Equal(t, d, a.Goalkeeper[i].Direction)
		require.InDelta(t, wantKicker[i], a.Kicker[i].Weight, 1e-6)
		require.InDelta(t, wantGK[i], a.Goalkeeper[i].Weight, 1e-6)
	}
	require.InDelta(t, 0.7829809220985692, a.GoalProbability, 1e-6)
	require.NotNil(t, a.Payoff)
}

// TestAnalyze_EquilibriumIsEpsilonNash cross-checks the analysis with the
// equilibrium verifier: neither player may gain more than a hair by
// deviating from the reported mixtures.
func TestAnalyze_EquilibriumIsEpsilonNash(t *testing.T) {
	k := penalty.Default()
	a, err := k.Analyze()
	require.NoError(t, err)

	ok, err := nash.IsEpsilonNash(
		k.PayoffMatrix().ExpectedPayoffs(),
		weightsOf(a.Kicker),
		weightsOf(a.Goalkeeper),
		1e-6,
	)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestAnalyze_ForwardsOptions starves the underlying solver of pivots and
// expects its sentinel to surface through the wrapping. A full-support 3x3
// game needs at least three pivots, so a budget of one always trips.
func TestAnalyze_ForwardsOptions(t *testing.T) {
	_, err := penalty.Default().Analyze(zerosum.WithMaxIterations(1))
	require.ErrorIs(t, err, simplex.ErrMaxIterations)
}

// TestAnalysis_StrategyStrings pins the percentage format and the
// sub-0.1% filter on a hand-built analysis.
func TestAnalysis_StrategyStrings(t *testing.T) {
	a := &penalty.Analysis{
		Kicker: []penalty.DirectionWeight{
			{Direction: penalty.Left, Weight: 0.625},
			{Direction: penalty.Center, Weight: 0.001}, // at the cutoff, dropped
			{Direction: penalty.Right, Weight: 0.374},
		},
		Goalkeeper: []penalty.DirectionWeight{
			{Direction: penalty.Left, Weight: 1.0},
			{Direction: penalty.Center, Weight: 0.0},
			{Direction: penalty.Right, Weight: 0.0},
		},
	}

	require.Equal(t, "Left: 62.5%, Right: 37.4%", a.KickerString())
	require.Equal(t, "Left: 100.0%", a.GoalkeeperString())
}

// TestExpectedGoalProbability prices fixed strategy pairs on the raw
// success rates: a pure pairing reads the cell directly, a mixture
// averages, and mismatched lengths surface the zerosum sentinel.
func TestExpectedGoalProbability(t *testing.T) {
	k := penalty.Default()

	p, err := k.ExpectedGoalProbability(
		[]float64{1, 0, 0},
		[]float64{1, 0, 0},
	)
	require.NoError(t, err)
	require.Equal(t, 0.58, p) // cell (Left, Left), read exactly

	p, err = k.ExpectedGoalProbability(
		[]float64{0.5, 0.5, 0},
		[]float64{0.5, 0.5, 0},
	)
	require.NoError(t, err)
	require.InDelta(t, 0.695, p, 1e-12) // (0.58+0.93+0.83+0.44)/4

	_, err = k.ExpectedGoalProbability([]float64{1, 0}, []float64{1, 0, 0})
	require.ErrorIs(t, err, zerosum.ErrStrategyLength)
}

// TestDefault_Data spot-checks the empirical matrix: the weakest cell is
// kicking into the keeper's dive down the middle, the strongest is a
// center kick against a committed keeper.
func TestDefault_Data(t *testing.T) {
	values := penalty.Default().PayoffMatrix().Values()
	require.Equal(t, 0.44, values[1][1])
	require.Equal(t, 0.95, values[0][2])
	require.Equal(t, 0.58, values[0][0])
}
