package nash

import (
	"fmt"

	"github.com/katalvlaran/minimax/zerosum"
)

// Equilibrium is a solved game position: both equilibrium strategies and the
// game value. Construct it with Find; the zero value is not meaningful.
type Equilibrium struct {
	row   []float64
	col   []float64
	value float64
}

// RowStrategy returns a copy of the row player's equilibrium mixture.
func (e *Equilibrium) RowStrategy() []float64 {
	cp := make([]float64, len(e.row))
	copy(cp, e.row)

	return cp
}

// ColStrategy returns a copy of the column player's equilibrium mixture.
func (e *Equilibrium) ColStrategy() []float64 {
	cp := make([]float64, len(e.col))
	copy(cp, e.col)

	return cp
}

// Value returns the game value from the row player's perspective.
func (e *Equilibrium) Value() float64 { return e.value }

// Find computes the equilibrium of the given payoff matrix. Options are
// forwarded to zerosum.Solve (WithMaxIterations, WithVerbose).
//
// Returns a wrapped zerosum or simplex sentinel on failure.
func Find(payoff [][]float64, opts ...zerosum.Option) (*Equilibrium, error) {
	sol, err := zerosum.Solve(payoff, opts...)
	if err != nil {
		return nil, fmt.Errorf("nash: %w", err)
	}

	return &Equilibrium{row: sol.RowStrategy, col: sol.ColStrategy, value: sol.Value}, nil
}

// IsEpsilonNash reports whether the strategy pair (row, col) is an
// ε-equilibrium of the payoff matrix: no pure row deviation may gain more
// than eps over the pair's expected payoff, and no pure column deviation may
// fall more than eps below it (the column player minimizes).
//
// eps is the caller's slack; 0 demands an exact equilibrium up to float
// arithmetic. Malformed input yields a wrapped zerosum sentinel
// (ErrEmptyMatrix, ErrInconsistentRows, ErrStrategyLength), never a panic.
func IsEpsilonNash(payoff [][]float64, row, col []float64, eps float64) (bool, error) {
	// Validates shape and strategy lengths along the way, so the deviation
	// scans below may index freely.
	current, err := zerosum.ExpectedPayoff(payoff, row, col)
	if err != nil {
		return false, fmt.Errorf("nash: %w", err)
	}

	// Pure row deviations against the fixed column mixture.
	for i := range payoff {
		var dev float64
		for j, qj := range col {
			dev += qj * payoff[i][j]
		}
		if dev > current+eps {
			return false, nil
		}
	}

	// Pure column deviations against the fixed row mixture.
	for j := range payoff[0] {
		var dev float64
		for i, pi := range row {
			dev += pi * payoff[i][j]
		}
		if dev < current-eps {
			return false, nil
		}
	}

	return true, nil
}
