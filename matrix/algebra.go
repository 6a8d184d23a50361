// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels used by the solver pipeline.
// All kernels perform strict fail-fast validation, allocate fresh results,
// never mutate their operands, and use fixed loop orders for determinism.
//
// Purpose:
//   - AddScalar: positivity shift for zero-sum payoff matrices.
//   - MatVec / VecMat: expected payoffs against pure strategies.
//   - Bilinear: expected payoff for a mixed-strategy pair.
//   - Min: smallest entry, the input to the shift computation.
//
// Notes:
//   - Kernels operate on the flat data slice directly (in-package fast path).
//   - Errors are wrapped via matrixErrorf with op* tags; sentinels survive
//     errors.Is through the wrapping.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMatVec   = "MatVec"
	opVecMat   = "VecMat"
	opBilinear = "Bilinear"
	opSolve    = "SolveLinear"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil; keeps a stable "Op: underlying" shape for
// uniform reporting.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AddScalar returns a new matrix with s added to every entry.
// MAIN DESCRIPTION:
//   - Uniform shift kernel; the zero-sum solver uses it to make payoffs strictly positive.
//
// Implementation:
//   - Stage 1: clone the receiver (preserves shape and numeric policy).
//   - Stage 2: single flat loop 0..r*c-1 adding s.
//
// Behavior highlights:
//   - Receiver is never mutated; result is independent.
//
// Inputs:
//   - s: shift added to every entry (finite by caller contract).
//
// Returns:
//   - *Dense: fresh shifted matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) AddScalar(s float64) *Dense {
	res := m.Clone()
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] += s
	}

	return res
}

// Min returns the smallest entry of the matrix.
// Construction forbids empty matrices, so the minimum always exists.
// Complexity: O(r*c).
func (m *Dense) Min() float64 {
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v < best {
			best = v
		}
	}

	return best
}

// MatVec computes the product A·x for a column vector x.
// MAIN DESCRIPTION:
//   - Row-wise dot products; entry i of the result is the expected payoff of
//     pure row i against the mixed column strategy x.
//
// Implementation:
//   - Stage 1: validate len(x) == Cols; else ErrDimensionMismatch.
//   - Stage 2: fixed i→j loops accumulating row dot products.
//
// Inputs:
//   - x: vector of length Cols.
//
// Returns:
//   - []float64 of length Rows.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with opMatVec).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func (m *Dense) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, want %d: %w", len(x), m.c, ErrDimensionMismatch))
	}

	out := make([]float64, m.r)
	var i, j, base int
	var sum float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sum = 0
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// VecMat computes the product pᵀ·A for a row vector p.
// Entry j of the result is the expected payoff of the mixed row strategy p
// against pure column j; its minimum over j is the guaranteed game value.
//
// Errors:
//   - ErrDimensionMismatch when len(p) != Rows (wrapped with opVecMat).
//
// Complexity: O(r*c).
func (m *Dense) VecMat(p []float64) ([]float64, error) {
	if len(p) != m.r {
		return nil, matrixErrorf(opVecMat, fmt.Errorf("len(p)=%d, want %d: %w", len(p), m.r, ErrDimensionMismatch))
	}

	out := make([]float64, m.c)
	var i, j, base int
	var pi float64
	for i = 0; i < m.r; i++ { // accumulate row-by-row to keep flat access linear
		base = i * m.c
		pi = p[i]
		if pi == 0 {
			continue // zero weight contributes nothing
		}
		for j = 0; j < m.c; j++ {
			out[j] += pi * m.data[base+j]
		}
	}

	return out, nil
}

// Bilinear computes the form pᵀ·A·q, the expected payoff when the row player
// mixes with p and the column player mixes with q.
//
// Errors:
//   - ErrDimensionMismatch when len(p) != Rows or len(q) != Cols
//     (wrapped with opBilinear).
//
// Complexity: O(r*c).
func (m *Dense) Bilinear(p, q []float64) (float64, error) {
	if len(p) != m.r {
		return 0, matrixErrorf(opBilinear, fmt.Errorf("len(p)=%d, want %d: %w", len(p), m.r, ErrDimensionMismatch))
	}
	if len(q) != m.c {
		return 0, matrixErrorf(opBilinear, fmt.Errorf("len(q)=%d, want %d: %w", len(q), m.c, ErrDimensionMismatch))
	}

	var total float64
	var i, j, base int
	var pi, rowSum float64
	for i = 0; i < m.r; i++ {
		pi = p[i]
		if pi == 0 {
			continue // zero weight contributes nothing
		}
		base = i * m.c
		rowSum = 0
		for j = 0; j < m.c; j++ {
			rowSum += m.data[base+j] * q[j]
		}
		total += pi * rowSum
	}

	return total, nil
}
