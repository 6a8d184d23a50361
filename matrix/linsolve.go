// SPDX-License-Identifier: MIT
// Package matrix: dense linear-system solver (Gaussian elimination).
// This file implements SolveLinear for general rectangular systems A·x = b.
// The solver backs the indifference-equation step of the equilibrium pipeline,
// where the system is typically small, possibly over- or under-determined.
//
// Method:
//   - Forward elimination with partial pivoting (max |entry| in each column).
//   - Columns whose best pivot magnitude is <= pivotEps become free; their
//     unknowns are fixed at 0 (minimal-support convention).
//   - A leftover row with near-zero coefficients but |rhs| > pivotEps proves
//     inconsistency: ErrSingular.
//   - Back-substitution over the recorded pivot columns in reverse order.
//
// Determinism:
//   - Fixed loop orders, first-occurrence tie handling in pivot search,
//     no randomness. Identical inputs yield identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// SolveLinear solves A·x = b for a general (possibly non-square) dense system.
// MAIN DESCRIPTION:
//   - Gaussian elimination with partial pivoting on the augmented matrix [A|b].
//   - Under-determined systems are resolved by assigning 0 to free unknowns;
//     over-determined systems succeed only when consistent.
//
// Implementation:
//   - Stage 1: validate len(b) == Rows; else ErrDimensionMismatch.
//   - Stage 2: build the augmented working copy (operands stay untouched).
//   - Stage 3: for each column, select the max-|entry| pivot among remaining
//     rows; skip the column as free when that magnitude is <= pivotEps,
//     otherwise swap, eliminate below, and record the pivot column.
//   - Stage 4: scan leftover rows; |rhs| > pivotEps means 0 = nonzero, so the
//     system is inconsistent (ErrSingular).
//   - Stage 5: back-substitute pivot unknowns in reverse pivot order.
//
// Behavior highlights:
//   - Partial pivoting bounds every elimination factor by 1 in magnitude,
//     keeping the sweep numerically stable for the small systems at hand.
//   - Free unknowns are exactly 0 in the result, never garbage.
//
// Inputs:
//   - a: coefficient matrix (r×c), not mutated.
//   - b: right-hand side of length r, not mutated.
//   - opts: WithPivotEps to override the singularity threshold.
//
// Returns:
//   - []float64 of length c: one solution of A·x = b.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != a.Rows().
//   - ErrSingular when elimination exposes an inconsistent row.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c) for the augmented copy.
func SolveLinear(a *Dense, b []float64, opts ...Option) ([]float64, error) {
	// 1) Shape contract: one rhs entry per equation.
	if len(b) != a.r {
		return nil, matrixErrorf(opSolve, fmt.Errorf("len(b)=%d, want %d: %w", len(b), a.r, ErrDimensionMismatch))
	}
	cfg := gatherOptions(opts...)
	eps := cfg.pivotEps

	// 2) Augmented working copy [A|b], row-major with width c+1.
	rows, cols := a.r, a.c
	width := cols + 1
	aug := make([]float64, rows*width)
	var i int
	for i = 0; i < rows; i++ {
		copy(aug[i*width:i*width+cols], a.data[i*cols:(i+1)*cols])
		aug[i*width+cols] = b[i]
	}

	// 3) Forward elimination with partial pivoting.
	pivotCols := make([]int, 0, cols) // column index of each pivot row, in order
	pivotRow := 0
	var col, r, best, j int
	var bestAbs, curAbs, pd, f float64
	for col = 0; col < cols && pivotRow < rows; col++ {
		// 3a) Pivot search: max |entry| among rows not yet consumed.
		best = pivotRow
		bestAbs = math.Abs(aug[pivotRow*width+col])
		for r = pivotRow + 1; r < rows; r++ {
			if curAbs = math.Abs(aug[r*width+col]); curAbs > bestAbs {
				best, bestAbs = r, curAbs
			}
		}
		if bestAbs <= eps {
			continue // free column: every candidate is numerically zero
		}
		// 3b) Row swap to bring the pivot into position.
		if best != pivotRow {
			for j = col; j < width; j++ {
				aug[pivotRow*width+j], aug[best*width+j] = aug[best*width+j], aug[pivotRow*width+j]
			}
		}
		// 3c) Eliminate the column below the pivot.
		pd = aug[pivotRow*width+col]
		for r = pivotRow + 1; r < rows; r++ {
			f = aug[r*width+col] / pd
			if f == 0 {
				continue // already clear
			}
			for j = col + 1; j < width; j++ {
				aug[r*width+j] -= f * aug[pivotRow*width+j]
			}
			aug[r*width+col] = 0 // exact zero, no residual round-off
		}
		pivotCols = append(pivotCols, col)
		pivotRow++
	}

	// 4) Consistency: leftover rows are all-zero on the left; a nonzero rhs
	//    there means the equations contradict each other.
	for r = pivotRow; r < rows; r++ {
		if math.Abs(aug[r*width+cols]) > eps {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
	}

	// 5) Back-substitution in reverse pivot order; free unknowns stay 0.
	x := make([]float64, cols)
	var k, base int
	var sum float64
	for k = len(pivotCols) - 1; k >= 0; k-- {
		col = pivotCols[k]
		base = k * width // pivot k lives in row k after the sweep
		sum = aug[base+cols]
		for j = col + 1; j < cols; j++ {
			sum -= aug[base+j] * x[j]
		}
		x[col] = sum / aug[base+col]
	}

	return x, nil
}
