// penalty/sensitivity.go
// Equilibrium stability under data noise. Success rates come from finite
// samples of real matches, so the interesting question is how far the
// optimal mixtures move when one rate shifts: perturb a cell, re-solve,
// diff the equilibria, and rank the cells by total strategy movement.

package penalty

import (
	"fmt"
	"math"
	"sort"
)

// Sensitivity sweeps success-rate perturbations around a base matrix.
type Sensitivity struct {
	base [][]float64
}

// NewSensitivity builds an analyzer around a base 3x3 success-rate matrix,
// validated the same way as New.
func NewSensitivity(successRates [][]float64) (*Sensitivity, error) {
	if _, err := New(successRates); err != nil {
		return nil, err
	}

	return &Sensitivity{base: copyRows(successRates)}, nil
}

// DefaultSensitivity builds an analyzer around the Palacios-Huerta data.
func DefaultSensitivity() *Sensitivity {
	return &Sensitivity{base: Default().payoff.Values()}
}

// SensitivityResult reports how one perturbed cell moved the equilibrium.
// The change slices are indexed by Direction and hold perturbed minus base
// weights.
type SensitivityResult struct {
	Row, Col              int       // perturbed cell, direction indices
	Parameter             string    // human-readable cell name
	OriginalValue         float64   // success rate before the change
	NewValue              float64   // success rate after the clamped change
	KickerChange          []float64 // kicker weight deltas per direction
	GoalkeeperChange      []float64 // goalkeeper weight deltas per direction
	GoalProbabilityChange float64   // equilibrium scoring probability delta
}

// SingleChange perturbs one success rate by delta, clamps it back into
// [0, 1], re-solves the game, and reports the equilibrium movement against
// the unperturbed base. Cell indices outside the grid yield ErrOutOfRange.
func (s *Sensitivity) SingleChange(row, col int, delta float64) (*SensitivityResult, error) {
	if row < 0 || row >= kickDim || col < 0 || col >= kickDim {
		return nil, fmt.Errorf("penalty: cell (%d,%d): %w", row, col, ErrOutOfRange)
	}

	// 1) Equilibrium of the untouched data.
	base, err := analyzeRates(s.base)
	if err != nil {
		return nil, err
	}

	// 2) Perturb the one cell, keeping it a probability.
	modified := copyRows(s.base)
	original := modified[row][col]
	modified[row][col] = clamp01(original + delta)

	// 3) Re-solve and diff.
	perturbed, err := analyzeRates(modified)
	if err != nil {
		return nil, err
	}

	return &SensitivityResult{
		Row:                   row,
		Col:                   col,
		Parameter:             fmt.Sprintf("Success rate [%d,%d]", row, col),
		OriginalValue:         original,
		NewValue:              modified[row][col],
		KickerChange:          weightDeltas(base.Kicker, perturbed.Kicker),
		GoalkeeperChange:      weightDeltas(base.Goalkeeper, perturbed.Goalkeeper),
		GoalProbabilityChange: perturbed.GoalProbability - base.GoalProbability,
	}, nil
}

// FullAnalysis perturbs every cell by the same delta and collects the nine
// results in row-major order.
func (s *Sensitivity) FullAnalysis(delta float64) ([]SensitivityResult, error) {
	results := make([]SensitivityResult, 0, kickDim*kickDim)
	var row, col int
	for row = 0; row < kickDim; row++ {
		for col = 0; col < kickDim; col++ {
			res, err := s.SingleChange(row, col, delta)
			if err != nil {
				return nil, err
			}
			results = append(results, *res)
		}
	}

	return results, nil
}

// CriticalParameter ranks one cell by how much total strategy mass its
// perturbation moved.
type CriticalParameter struct {
	Row, Col    int
	TotalChange float64 // summed absolute weight deltas across both players
}

// CriticalParameters runs FullAnalysis and ranks the cells by total
// absolute strategy change, most influential first. Ties keep row-major
// order.
func (s *Sensitivity) CriticalParameters(delta float64) ([]CriticalParameter, error) {
	results, err := s.FullAnalysis(delta)
	if err != nil {
		return nil, err
	}

	critical := make([]CriticalParameter, len(results))
	for i, res := range results {
		var total float64
		for _, d := range res.KickerChange {
			total += math.Abs(d)
		}
		for _, d := range res.GoalkeeperChange {
			total += math.Abs(d)
		}
		critical[i] = CriticalParameter{Row: res.Row, Col: res.Col, TotalChange: total}
	}

	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].TotalChange > critical[j].TotalChange
	})

	return critical, nil
}

// analyzeRates solves one success-rate matrix end to end.
func analyzeRates(rates [][]float64) (*Analysis, error) {
	k, err := New(rates)
	if err != nil {
		return nil, err
	}

	return k.Analyze()
}

// weightDeltas subtracts base weights from perturbed ones, per direction.
func weightDeltas(base, perturbed []DirectionWeight) []float64 {
	out := make([]float64, len(base))
	for i := range base {
		out[i] = perturbed[i].Weight - base[i].Weight
	}

	return out
}

// clamp01 pins v into the probability range.
func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
