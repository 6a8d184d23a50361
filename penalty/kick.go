// penalty/kick.go
// The 3x3 penalty-kick analyzer. A Kick wraps a labeled success-rate
// matrix, maps it onto zero-sum payoffs, and hands the game to
// zerosum.Solve; the resulting mixtures come back in Direction terms with
// the game value translated into a scoring probability.

package penalty

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/minimax/zerosum"
)

// kickDim is the strategy-space size of a penalty kick: one row and one
// column per Direction.
const kickDim = 3

// weightDisplayEps suppresses negligible weights in strategy strings.
const weightDisplayEps = 0.001

// Kick analyzes a penalty kick as a zero-sum game between kicker and
// goalkeeper.
type Kick struct {
	payoff *PayoffMatrix
}

// New builds an analyzer from a 3x3 success-rate matrix: rows are the
// kicker's directions, columns the goalkeeper's, both in Left, Center,
// Right order. Entries are scoring probabilities in [0, 1]. Wrong shapes
// yield ErrDimensionMismatch, out-of-range entries ErrInvalidProbability.
func New(successRates [][]float64) (*Kick, error) {
	// 1) The direction vocabulary fixes the shape.
	rows, cols, err := checkRect(successRates)
	if err != nil {
		return nil, err
	}
	if rows != kickDim || cols != kickDim {
		return nil, fmt.Errorf("penalty: %dx%d success rates, want %dx%d: %w",
			rows, cols, kickDim, kickDim, ErrDimensionMismatch)
	}
	if err = checkProbabilities(successRates); err != nil {
		return nil, err
	}

	// 2) Label the grid with the football vocabulary.
	pm, err := NewPayoffMatrix(successRates,
		[]string{"Kick Left", "Kick Center", "Kick Right"},
		[]string{"GK Left", "GK Center", "GK Right"})
	if err != nil {
		return nil, err
	}

	return &Kick{payoff: pm}, nil
}

// Default returns an analyzer loaded with the empirical success rates from
// Palacios-Huerta, "Professionals Play Minimax" (2003): rows are kick
// directions, columns goalkeeper dives, entries the observed scoring
// probability.
func Default() *Kick {
	k, err := New([][]float64{
		{0.58, 0.93, 0.95},
		{0.83, 0.44, 0.83},
		{0.93, 0.90, 0.60},
	})
	if err != nil {
		panic(err) // static data, validated shape
	}

	return k
}

// PayoffMatrix returns the labeled success-rate matrix behind the analyzer.
func (k *Kick) PayoffMatrix() *PayoffMatrix {
	return k.payoff
}

// Analyze maps the success rates onto kicker payoffs 2p-1, solves the
// zero-sum game, and reports the equilibrium in Direction terms. The game
// value v recovers the equilibrium scoring probability as (v+1)/2.
// Options are forwarded to zerosum.Solve.
func (k *Kick) Analyze(opts ...zerosum.Option) (*Analysis, error) {
	sol, err := zerosum.Solve(k.payoff.ExpectedPayoffs(), opts...)
	if err != nil {
		return nil, fmt.Errorf("penalty: %w", err)
	}

	return &Analysis{
		Kicker:          directionWeights(sol.RowStrategy),
		Goalkeeper:      directionWeights(sol.ColStrategy),
		GoalProbability: (sol.Value + 1) / 2,
		Payoff:          k.payoff,
	}, nil
}

// ExpectedGoalProbability prices an arbitrary strategy pair on the raw
// success rates: kick and dive are probability vectors over the three
// directions, and the result is the chance of a goal when both mixtures
// are played. Length mismatches yield zerosum.ErrStrategyLength.
func (k *Kick) ExpectedGoalProbability(kick, dive []float64) (float64, error) {
	p, err := zerosum.ExpectedPayoff(k.payoff.values, kick, dive)
	if err != nil {
		return 0, fmt.Errorf("penalty: %w", err)
	}

	return p, nil
}

// Analysis is a solved penalty-kick scenario.
type Analysis struct {
	Kicker          []DirectionWeight // equilibrium kick mixture
	Goalkeeper      []DirectionWeight // equilibrium dive mixture
	GoalProbability float64           // scoring probability at equilibrium
	Payoff          *PayoffMatrix     // matrix the analysis ran on
}

// DirectionWeight pairs a direction with its probability weight.
type DirectionWeight struct {
	Direction Direction
	Weight    float64
}

// KickerString formats the kicker's mixture as percentages, skipping
// weights below 0.1%: "Left: 34.1%, Center: 27.7%, Right: 38.2%".
func (a *Analysis) KickerString() string {
	return formatWeights(a.Kicker)
}

// GoalkeeperString formats the goalkeeper's mixture the same way.
func (a *Analysis) GoalkeeperString() string {
	return formatWeights(a.Goalkeeper)
}

// directionWeights zips a strategy vector with the direction enum.
func directionWeights(weights []float64) []DirectionWeight {
	out := make([]DirectionWeight, len(weights))
	for i, w := range weights {
		out[i] = DirectionWeight{Direction: Direction(i), Weight: w}
	}

	return out
}

// formatWeights renders the played part of a mixture as "Name: NN.N%"
// fragments joined by ", ".
func formatWeights(ws []DirectionWeight) string {
	parts := make([]string, 0, len(ws))
	for _, w := range ws {
		if w.Weight > weightDisplayEps {
			parts = append(parts, fmt.Sprintf("%s: %.1f%%", w.Direction, w.Weight*100))
		}
	}

	return strings.Join(parts, ", ")
}
