// Package matrix_test: unit tests for the linear-algebra kernels
// (AddScalar, Min, MatVec, VecMat, Bilinear).
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimax/matrix"
)

// mustFromRows builds a Dense or fails the test immediately.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestAddScalar_ShiftsEveryEntry verifies the uniform shift and that the
// receiver stays untouched.
func TestAddScalar_ShiftsEveryEntry(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, -1}, {-1, 1}})

	shifted := m.AddScalar(2)
	require.Equal(t, [][]float64{{3, 1}, {1, 3}}, shifted.ToRows()) // every entry +2
	require.Equal(t, [][]float64{{1, -1}, {-1, 1}}, m.ToRows())     // receiver unchanged
}

// TestMin_FindsSmallestEntry checks the minimum over all entries.
func TestMin_FindsSmallestEntry(t *testing.T) {
	require.Equal(t, -2.0, mustFromRows(t, [][]float64{{3, -1, 2}, {-2, 4, 1}}).Min())
	require.Equal(t, 5.0, mustFromRows(t, [][]float64{{5}}).Min()) // single entry
}

// TestMatVec_Product verifies A·x row by row.
func TestMatVec_Product(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	out, err := m.MatVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, out) // plain row sums

	out, err = m.MatVec([]float64{0.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 3.5}, out) // averaged columns
}

// TestMatVec_DimensionMismatch ensures the length contract is enforced.
func TestMatVec_DimensionMismatch(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.MatVec([]float64{1, 2, 3}) // three entries against two columns
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestVecMat_Product verifies pᵀ·A column by column.
func TestVecMat_Product(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	out, err := m.VecMat([]float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, out) // picks out row 0

	out, err = m.VecMat([]float64{0.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, out) // averaged rows
}

// TestVecMat_DimensionMismatch ensures the length contract is enforced.
func TestVecMat_DimensionMismatch(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.VecMat([]float64{1}) // one entry against two rows
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestBilinear_ExpectedPayoff verifies pᵀ·A·q for mixed weights.
func TestBilinear_ExpectedPayoff(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	got, err := m.Bilinear([]float64{0.5, 0.5}, []float64{0.5, 0.5})
	require.NoError(t, err)
	require.Equal(t, 2.5, got) // plain average of all four entries

	got, err = m.Bilinear([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	require.Equal(t, 2.0, got) // pure (row 0, col 1) picks a single cell
}

// TestBilinear_DimensionMismatch checks both operand length contracts.
func TestBilinear_DimensionMismatch(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := m.Bilinear([]float64{1}, []float64{0.5, 0.5}) // p too short
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = m.Bilinear([]float64{0.5, 0.5}, []float64{1, 0, 0}) // q too long
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
