// SPDX-License-Identifier: MIT
// Package matrix: gonum interop.
// Conversions between Dense and gonum's mat types. Dense keeps error-returning
// accessors at its public surface, so it cannot implement gonum's panicking
// mat.Matrix directly; interop goes through explicit copy conversions instead.
// The solver uses these to cross-check results against gonum's LP machinery.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Gonum materializes the matrix as a gonum *mat.Dense.
// The backing slice is a fresh copy; mutating the result never affects the
// receiver. Complexity: O(r*c).
func (m *Dense) Gonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// FromGonum builds a Dense from any gonum mat.Matrix, copying entry by entry.
// The numeric policy applies as in FromRows: under the default configuration
// NaN/±Inf entries are rejected with ErrNaNInf.
//
// Errors:
//   - ErrEmptyMatrix when src has a zero dimension.
//   - ErrNaNInf under the finite-only policy.
//
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	rows, cols := src.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyMatrix
	}

	cfg := gatherOptions(opts...)
	m := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: cfg.validateNaNInf,
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ { // copy row-major, fixed i→j order
		for j = 0; j < cols; j++ {
			v = src.At(i, j)
			if cfg.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("FromGonum(%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}
