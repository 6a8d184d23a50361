// Package zerosum reduces matrix-game equilibrium computation to one linear
// program plus one linear system.
//
// The reduction works on a shifted copy of the payoff matrix whose entries
// are all ≥ 1: maximizing Σz subject to A′·z ≤ 1 yields the column player's
// mixture after normalization, and its active columns determine the row
// player's mixture through the indifference principle (against an optimal
// mixture, every column the opponent actually plays pays the same). The
// reported game value is always priced on the caller's unshifted matrix.

package zerosum

import (
	"fmt"

	"github.com/katalvlaran/minimax/matrix"
	"github.com/katalvlaran/minimax/simplex"
)

// Solve computes equilibrium mixed strategies and the game value for a
// two-player zero-sum game. The payoff matrix is from the row player's
// perspective: the row player maximizes a[i][j], the column player minimizes
// it. It accepts functional options to customize behavior
// (WithMaxIterations, WithVerbose).
//
// Returns:
//
//   - Solution{RowStrategy, ColStrategy, Value} on success; both strategies
//     are freshly allocated and sum to 1.
//   - err: ErrEmptyMatrix, ErrInconsistentRows, ErrInfeasible, or a wrapped
//     failure of the inner Simplex solve or linear-system solve.
//
// Complexity:
//
//   - Time:  one Simplex solve over an m×(n+m) tableau, plus one Gaussian
//     elimination over at most n equations in m unknowns.
//   - Space: O(m·n).
func Solve(payoff [][]float64, opts ...Option) (Solution, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate the payoff matrix and load it into dense storage.
	a, err := validatePayoff(payoff)
	if err != nil {
		return Solution{}, err
	}

	// 3) Initialize the runner on the validated matrix.
	r := &runner{opt: cfg, a: a, m: a.Rows(), n: a.Cols()}

	// 4) Shift every payoff into strictly positive territory.
	r.applyShift()

	// 5) Solve the column player's LP and normalize its solution.
	if err = r.solveColumnLP(); err != nil {
		return Solution{}, err
	}

	// 6) Derive the row player's strategy from the active columns.
	if err = r.deriveRowStrategy(); err != nil {
		return Solution{}, err
	}

	// 7) Price the row strategy against the unshifted matrix.
	if err = r.computeValue(); err != nil {
		return Solution{}, err
	}

	return Solution{RowStrategy: r.row, ColStrategy: r.col, Value: r.value}, nil
}

// ExpectedPayoff returns the bilinear payoff Σ_i Σ_j row_i·col_j·a[i][j] of
// an arbitrary strategy pair, from the row player's perspective. Strategies
// are taken as given: weights are not checked for non-negativity or unit sum.
//
// Returns ErrEmptyMatrix / ErrInconsistentRows for a malformed matrix and
// ErrStrategyLength when a strategy's length does not match its dimension.
func ExpectedPayoff(payoff [][]float64, row, col []float64) (float64, error) {
	a, err := validatePayoff(payoff)
	if err != nil {
		return 0, err
	}
	if len(row) != a.Rows() {
		return 0, fmt.Errorf("zerosum: row strategy has %d weights, want %d: %w",
			len(row), a.Rows(), ErrStrategyLength)
	}
	if len(col) != a.Cols() {
		return 0, fmt.Errorf("zerosum: column strategy has %d weights, want %d: %w",
			len(col), a.Cols(), ErrStrategyLength)
	}

	v, err := a.Bilinear(row, col)
	if err != nil {
		return 0, fmt.Errorf("zerosum: %w", err)
	}

	return v, nil
}

// validatePayoff rejects empty or ragged payoff matrices, then loads the rows
// into dense storage (which also applies the NaN/Inf scan).
func validatePayoff(payoff [][]float64) (*matrix.Dense, error) {
	rows := len(payoff)
	if rows == 0 {
		return nil, fmt.Errorf("zerosum: payoff has no rows: %w", ErrEmptyMatrix)
	}
	cols := len(payoff[0])
	if cols == 0 {
		return nil, fmt.Errorf("zerosum: payoff has no columns: %w", ErrEmptyMatrix)
	}
	var i int
	for i = 1; i < rows; i++ {
		if len(payoff[i]) != cols {
			return nil, fmt.Errorf("zerosum: payoff row %d has %d columns, want %d: %w",
				i, len(payoff[i]), cols, ErrInconsistentRows)
		}
	}

	d, err := matrix.FromRows(payoff)
	if err != nil {
		return nil, fmt.Errorf("zerosum: %w", err)
	}

	return d, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	opt    Options       // Configuration (pivot budget, tracing).
	a      *matrix.Dense // Original payoffs; prices the final value.
	sh     [][]float64   // Shifted payoffs; feeds the LP and the indifference system.
	m, n   int           // Payoff dimensions: m rows, n columns.
	shift  float64       // Positivity shift max(0, 1−min entry).
	z      []float64     // Raw column LP solution.
	col    []float64     // Normalized column strategy.
	row    []float64     // Row strategy.
	active []int         // Columns with z_j > ActiveEps.
	value  float64       // Game value on the unshifted matrix.
}

// applyShift adds max(0, 1−min entry) to every payoff. Entries end up ≥ 1,
// which keeps the column LP's ≤ 1 constraints binding for every z ≥ 0.
func (r *runner) applyShift() {
	r.shift = 0
	if minEntry := r.a.Min(); minEntry < 1 {
		r.shift = 1 - minEntry
	}
	r.sh = r.a.AddScalar(r.shift).ToRows()

	if r.opt.Verbose {
		fmt.Printf("ZeroSum: shift=%g\n", r.shift)
	}
}

// solveColumnLP solves maximize Σz subject to sh·z ≤ 1, z ≥ 0. The optimum
// Σz is the reciprocal of the shifted game value; dividing z by it yields
// the column player's mixed strategy.
func (r *runner) solveColumnLP() error {
	ones := make([]float64, r.n)
	var j int
	for j = 0; j < r.n; j++ {
		ones[j] = 1
	}
	rhs := make([]float64, r.m)
	var i int
	for i = 0; i < r.m; i++ {
		rhs[i] = 1
	}

	sopts := []simplex.Option{simplex.WithMaxIterations(r.opt.MaxIterations)}
	if r.opt.Verbose {
		sopts = append(sopts, simplex.WithVerbose())
	}

	sol, err := simplex.Maximize(ones, r.sh, rhs, sopts...)
	if err != nil {
		return fmt.Errorf("zerosum: column player LP: %w", err)
	}

	var sum float64
	for _, zj := range sol.X {
		sum += zj
	}
	if sum < renormEps {
		return fmt.Errorf("zerosum: column LP mass %g: %w", sum, ErrInfeasible)
	}

	r.z = sol.X
	r.col = make([]float64, r.n)
	for j = 0; j < r.n; j++ {
		r.col[j] = sol.X[j] / sum
	}

	return nil
}

// deriveRowStrategy collects the active columns of the raw LP solution and
// branches: one active column means the column player is effectively pure
// and the row player answers with a pure best response; several mean the row
// player must make the column player indifferent across all of them.
func (r *runner) deriveRowStrategy() error {
	var j int
	for j = 0; j < r.n; j++ {
		if r.z[j] > ActiveEps {
			r.active = append(r.active, j)
		}
	}

	if r.opt.Verbose {
		fmt.Printf("ZeroSum: active columns=%v\n", r.active)
	}

	switch len(r.active) {
	case 0:
		return fmt.Errorf("zerosum: no active column above %g: %w", ActiveEps, ErrInfeasible)
	case 1:
		r.row = r.pureBestResponse(r.active[0])
		return nil
	default:
		return r.solveIndifference()
	}
}

// pureBestResponse returns the unit vector on the row maximizing the payoff
// against column j, first occurrence under a strict-greater scan.
func (r *runner) pureBestResponse(j int) []float64 {
	best := 0
	var i int
	for i = 1; i < r.m; i++ {
		if r.sh[i][j] > r.sh[best][j] {
			best = i
		}
	}

	p := make([]float64, r.m)
	p[best] = 1

	return p
}

// solveIndifference builds and solves the indifference system: for the first
// active column j0 and every other active column jk, the row mixture p must
// pay both the same, Σ_i (sh[i][j0]−sh[i][jk])·p_i = 0, and p must sum to 1.
// Shift terms cancel inside the differences, so the shifted entries are safe
// to use here. Small negative weights from elimination noise are clamped to
// zero before renormalizing.
func (r *runner) solveIndifference() error {
	j0 := r.active[0]
	eqs := make([][]float64, 0, len(r.active))
	var i int
	for _, jk := range r.active[1:] {
		diff := make([]float64, r.m)
		for i = 0; i < r.m; i++ {
			diff[i] = r.sh[i][j0] - r.sh[i][jk]
		}
		eqs = append(eqs, diff)
	}

	norm := make([]float64, r.m)
	for i = 0; i < r.m; i++ {
		norm[i] = 1
	}
	eqs = append(eqs, norm)

	rhs := make([]float64, len(eqs))
	rhs[len(rhs)-1] = 1

	sys, err := matrix.FromRows(eqs)
	if err != nil {
		return fmt.Errorf("zerosum: indifference system: %w", err)
	}
	p, err := matrix.SolveLinear(sys, rhs)
	if err != nil {
		return fmt.Errorf("zerosum: indifference system: %w", err)
	}

	var sum float64
	for i = 0; i < r.m; i++ {
		if p[i] < 0 {
			p[i] = 0 // elimination noise, never a real weight
		}
		sum += p[i]
	}
	if sum < renormEps {
		return fmt.Errorf("zerosum: row strategy mass %g: %w", sum, ErrInfeasible)
	}
	for i = 0; i < r.m; i++ {
		p[i] /= sum
	}

	r.row = p

	return nil
}

// computeValue prices the row strategy on the unshifted matrix: the game
// value is the minimum over columns of Σ_i p_i·a[i][j], the payoff the row
// strategy guarantees against any pure column response.
func (r *runner) computeValue() error {
	against, err := r.a.VecMat(r.row)
	if err != nil {
		return fmt.Errorf("zerosum: %w", err)
	}

	v := against[0]
	var j int
	for j = 1; j < r.n; j++ {
		if against[j] < v {
			v = against[j]
		}
	}
	r.value = v

	if r.opt.Verbose {
		fmt.Printf("ZeroSum: value=%g\n", r.value)
	}

	return nil
}
