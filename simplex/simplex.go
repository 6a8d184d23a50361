// Package simplex implements the primal Simplex method on a dense tableau.
//
// The tableau has (m+1) rows by (n+m+1) columns for n variables and m
// constraints: original-variable columns first, then one slack column per
// constraint (identity block), then the right-hand-side column. The last row
// carries the negated objective and, after solving, the optimal value in its
// right-hand-side cell.
//
// Notes on implementation choices:
//
//   - The tableau is a flat row-major []float64 (offset row*cols + col);
//     each solve owns its buffer exclusively and discards it on return.
//   - The entering rule compares against exact zero: any negative objective
//     coefficient, however small, keeps the loop pivoting until the cap.
//   - The ratio test admits zero ratios, so degenerate pivots are performed
//     rather than skipped.

package simplex

import (
	"fmt"
	"math"
)

// Maximize solves the linear program
//
//	maximize   c·x
//	subject to a·x ≤ b, x ≥ 0
//
// using the primal Simplex method. It accepts functional options to customize
// behavior (WithMaxIterations, WithVerbose).
//
// Returns:
//
//   - Solution{Value, X, Iterations} on success, where X assigns the n
//     original variables (slack values are not reported).
//   - err: ErrInvalidDimensions, ErrUnbounded, or ErrMaxIterations.
//
// Preconditions and validation (in order):
//  1. len(c) ≥ 1 and len(a) ≥ 1 (ErrInvalidDimensions).
//  2. len(b) == len(a) (ErrInvalidDimensions).
//  3. Every row of a has length len(c) (ErrInvalidDimensions).
//  4. Entries of b are non-negative by caller contract; this is not enforced
//     here, and a negative b yields an infeasible initial basis rather than
//     an error.
//
// Complexity:
//
//   - Time:  O(iterations · m·(n+m)), iterations ≤ MaxIterations.
//   - Space: O(m·(n+m)) for the tableau.
func Maximize(c []float64, a [][]float64, b []float64, opts ...Option) (Solution, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate shapes: at least one variable and one constraint.
	n, m := len(c), len(a)
	if n == 0 || m == 0 {
		return Solution{}, fmt.Errorf("simplex: %d variables, %d constraints: %w", n, m, ErrInvalidDimensions)
	}

	// 3) Validate the right-hand side covers every constraint.
	if len(b) != m {
		return Solution{}, fmt.Errorf("simplex: len(b)=%d, want %d: %w", len(b), m, ErrInvalidDimensions)
	}

	// 4) Validate the constraint matrix is rectangular with n columns.
	var i int
	for i = 0; i < m; i++ {
		if len(a[i]) != n {
			return Solution{}, fmt.Errorf("simplex: constraint %d has %d coefficients, want %d: %w",
				i, len(a[i]), n, ErrInvalidDimensions)
		}
	}

	// 5) Initialize the runner and build the tableau.
	r := &runner{
		opt:  cfg,
		n:    n,
		m:    m,
		cols: n + m + 1,
	}
	r.init(c, a, b)

	// 6) Run the pivot loop to optimality (or a typed failure).
	if err := r.process(); err != nil {
		return Solution{}, err
	}

	// 7) Read the optimum off the final tableau.
	return r.extract(), nil
}

// runner holds the mutable state for a single Simplex execution.
type runner struct {
	opt  Options   // Configuration (pivot budget, tracing).
	n    int       // Number of original variables.
	m    int       // Number of constraints (= number of slack variables).
	cols int       // Tableau width: n + m + 1 (variables, slacks, RHS).
	tab  []float64 // Flat row-major tableau of (m+1) rows by cols columns.
	iter int       // Pivots performed so far.
}

// init fills the tableau: constraint rows [a_i | e_i | b_i], then the
// objective row [-c | 0 | 0].
func (r *runner) init(c []float64, a [][]float64, b []float64) {
	r.tab = make([]float64, (r.m+1)*r.cols)

	// 1) Constraint rows: original coefficients, slack identity, RHS.
	var i, base int
	for i = 0; i < r.m; i++ {
		base = i * r.cols
		copy(r.tab[base:base+r.n], a[i])
		r.tab[base+r.n+i] = 1       // slack variable for constraint i
		r.tab[base+r.cols-1] = b[i] // right-hand side
	}

	// 2) Objective row: negated coefficients so that pivoting drives the
	//    bottom-right cell toward the maximum.
	objBase := r.m * r.cols
	var j int
	for j = 0; j < r.n; j++ {
		r.tab[objBase+j] = -c[j]
	}
}

// process is the core pivot loop. Each pass first checks optimality, then
// selects the entering column and leaving row and pivots. The loop is bounded
// by the configured budget; running out of budget without the optimality
// check succeeding yields ErrMaxIterations.
func (r *runner) process() error {
	var col, row int
	for r.iter = 0; r.iter < r.opt.MaxIterations; r.iter++ {
		// 1) Entering column: most negative objective coefficient.
		col = r.enteringColumn()
		if col < 0 {
			return nil // no negative coefficient: tableau is optimal
		}

		// 2) Leaving row: minimum-ratio test. No candidate means the
		//    objective can grow along this column forever.
		row = r.leavingRow(col)
		if row < 0 {
			return fmt.Errorf("simplex: no positive entry in column %d: %w", col, ErrUnbounded)
		}

		if r.opt.Verbose {
			fmt.Printf("Simplex: iter %d: pivot col=%d row=%d val=%g\n",
				r.iter+1, col, row, r.tab[row*r.cols+col])
		}

		// 3) Pivot: normalize the pivot row, eliminate the column elsewhere.
		r.pivot(row, col)
	}

	return fmt.Errorf("simplex: not optimal after %d pivots: %w", r.opt.MaxIterations, ErrMaxIterations)
}

// enteringColumn returns the index of the most negative objective-row
// coefficient (RHS excluded), ties broken by first occurrence, or -1 when no
// coefficient is negative (optimality).
func (r *runner) enteringColumn() int {
	objBase := r.m * r.cols
	minVal := 0.0 // strictly-below-zero requirement
	minCol := -1
	var j int
	for j = 0; j < r.cols-1; j++ {
		if r.tab[objBase+j] < minVal {
			minVal = r.tab[objBase+j]
			minCol = j
		}
	}

	return minCol
}

// leavingRow runs the minimum-ratio test on the given column: among
// constraint rows whose pivot-column entry exceeds PivotEps, pick the one
// minimizing RHS/entry (zero ratios included, so degenerate pivots happen),
// ties broken by first occurrence. Returns -1 when no row qualifies.
func (r *runner) leavingRow(col int) int {
	rhs := r.cols - 1
	minRatio := math.Inf(1)
	minRow := -1
	var i int
	var coeff, ratio float64
	for i = 0; i < r.m; i++ {
		coeff = r.tab[i*r.cols+col]
		if coeff > PivotEps {
			ratio = r.tab[i*r.cols+rhs] / coeff
			if ratio >= 0 && ratio < minRatio {
				minRatio = ratio
				minRow = i
			}
		}
	}

	return minRow
}

// pivot makes (row, col) a unit pivot: divides the pivot row by the pivot
// element, then subtracts multiples of it from every other row (objective row
// included) so the pivot column becomes a unit column.
func (r *runner) pivot(row, col int) {
	pivotVal := r.tab[row*r.cols+col]
	base := row * r.cols

	// 1) Normalize the pivot row.
	var j int
	for j = 0; j < r.cols; j++ {
		r.tab[base+j] /= pivotVal
	}

	// 2) Eliminate the pivot column from every other row.
	var i, rowBase int
	var factor float64
	for i = 0; i <= r.m; i++ {
		if i == row {
			continue
		}
		rowBase = i * r.cols
		factor = r.tab[rowBase+col]
		if factor == 0 {
			continue // column already clear in this row
		}
		for j = 0; j < r.cols; j++ {
			r.tab[rowBase+j] -= factor * r.tab[base+j]
		}
	}
}

// extract reads the optimum off the final tableau. A variable column is basic
// when exactly one entry sits within BasicEps of 1 and all others within
// BasicEps of 0; its value is that row's RHS (constraint rows only). All other
// variables are zero. The optimal objective value is the bottom-right cell.
func (r *runner) extract() Solution {
	rhs := r.cols - 1
	x := make([]float64, r.n)

	var j, i, basicRow int
	var v float64
	var isBasic bool
	for j = 0; j < r.n; j++ {
		basicRow = -1
		isBasic = true
		// Scan the whole column, objective row included: a stray entry there
		// disqualifies the column just like one in a constraint row.
		for i = 0; i <= r.m; i++ {
			v = r.tab[i*r.cols+j]
			if math.Abs(v-1) < BasicEps {
				if basicRow >= 0 {
					isBasic = false // second unit entry: not a unit column
					break
				}
				basicRow = i
			} else if math.Abs(v) > BasicEps {
				isBasic = false
				break
			}
		}
		if isBasic && basicRow >= 0 && basicRow < r.m {
			x[j] = r.tab[basicRow*r.cols+rhs]
		}
	}

	return Solution{
		Value:      r.tab[r.m*r.cols+rhs],
		X:          x,
		Iterations: r.iter,
	}
}
