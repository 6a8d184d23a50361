// penalty/payoff.go
// Labeled success-rate storage for the penalty game. A PayoffMatrix keeps
// scoring probabilities next to the strategy names and knows how to map
// them onto zero-sum payoffs (goal +1, save -1) via p -> 2p-1.

package penalty

import (
	"fmt"
	"math"
	"strings"
)

// displayWidth is the column width of the String grid.
const displayWidth = 12

// PayoffMatrix is a labeled success-rate matrix: rows are the kicker's
// strategies, columns the goalkeeper's, entries the probability of a goal.
type PayoffMatrix struct {
	values    [][]float64
	rowLabels []string
	colLabels []string
}

// NewPayoffMatrix builds a labeled matrix from raw values. The values must
// form a non-empty rectangle (ErrDimensionMismatch) and the label counts
// must match the shape (ErrLabelMismatch). All inputs are copied.
func NewPayoffMatrix(values [][]float64, rowLabels, colLabels []string) (*PayoffMatrix, error) {
	// 1) Shape first, labels second.
	rows, cols, err := checkRect(values)
	if err != nil {
		return nil, err
	}
	if len(rowLabels) != rows || len(colLabels) != cols {
		return nil, fmt.Errorf("penalty: %d row / %d column labels for a %dx%d matrix: %w",
			len(rowLabels), len(colLabels), rows, cols, ErrLabelMismatch)
	}

	// 2) Deep-copy so later caller mutations cannot reach inside.
	return &PayoffMatrix{
		values:    copyRows(values),
		rowLabels: append([]string(nil), rowLabels...),
		colLabels: append([]string(nil), colLabels...),
	}, nil
}

// FromSuccessRates builds a matrix of scoring probabilities with generated
// labels ("Row 0", "Col 1", ...). Every entry must lie in [0, 1]; anything
// else, NaN included, yields ErrInvalidProbability.
func FromSuccessRates(values [][]float64) (*PayoffMatrix, error) {
	rows, cols, err := checkRect(values)
	if err != nil {
		return nil, err
	}
	if err = checkProbabilities(values); err != nil {
		return nil, err
	}

	rowLabels := make([]string, rows)
	for i := range rowLabels {
		rowLabels[i] = fmt.Sprintf("Row %d", i)
	}
	colLabels := make([]string, cols)
	for j := range colLabels {
		colLabels[j] = fmt.Sprintf("Col %d", j)
	}

	return &PayoffMatrix{values: copyRows(values), rowLabels: rowLabels, colLabels: colLabels}, nil
}

// Rows returns the number of kicker strategies.
func (pm *PayoffMatrix) Rows() int {
	return len(pm.values)
}

// Cols returns the number of goalkeeper strategies.
func (pm *PayoffMatrix) Cols() int {
	return len(pm.values[0])
}

// Values returns a deep copy of the success rates.
func (pm *PayoffMatrix) Values() [][]float64 {
	return copyRows(pm.values)
}

// RowLabels returns a copy of the row (kicker) labels.
func (pm *PayoffMatrix) RowLabels() []string {
	return append([]string(nil), pm.rowLabels...)
}

// ColLabels returns a copy of the column (goalkeeper) labels.
func (pm *PayoffMatrix) ColLabels() []string {
	return append([]string(nil), pm.colLabels...)
}

// ExpectedPayoffs maps every success rate p onto the kicker payoff 2p-1,
// so that a certain goal scores +1 and a certain save -1. The result is
// a fresh matrix ready for zerosum.Solve.
func (pm *PayoffMatrix) ExpectedPayoffs() [][]float64 {
	out := make([][]float64, len(pm.values))
	for i, row := range pm.values {
		out[i] = make([]float64, len(row))
		for j, p := range row {
			out[i][j] = 2*p - 1
		}
	}

	return out
}

// String renders the matrix as a right-aligned grid: a header line of
// column labels, then one line per row with its label and the rates to
// three decimals.
func (pm *PayoffMatrix) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%*s", displayWidth, "")
	for _, label := range pm.colLabels {
		fmt.Fprintf(&b, "%*s", displayWidth, label)
	}
	b.WriteByte('\n')

	for i, row := range pm.values {
		fmt.Fprintf(&b, "%*s", displayWidth, pm.rowLabels[i])
		for _, v := range row {
			fmt.Fprintf(&b, "%*.3f", displayWidth, v)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// checkRect verifies values form a non-empty rectangle and reports its
// shape. Violations yield ErrDimensionMismatch with row context.
func checkRect(values [][]float64) (rows, cols int, err error) {
	rows = len(values)
	if rows == 0 {
		return 0, 0, fmt.Errorf("penalty: no rows: %w", ErrDimensionMismatch)
	}
	cols = len(values[0])
	if cols == 0 {
		return 0, 0, fmt.Errorf("penalty: no columns: %w", ErrDimensionMismatch)
	}
	var i int
	for i = 1; i < rows; i++ {
		if len(values[i]) != cols {
			return 0, 0, fmt.Errorf("penalty: row %d has %d entries, want %d: %w",
				i, len(values[i]), cols, ErrDimensionMismatch)
		}
	}

	return rows, cols, nil
}

// checkProbabilities verifies every entry is a real number in [0, 1].
func checkProbabilities(values [][]float64) error {
	for i, row := range values {
		for j, v := range row {
			if math.IsNaN(v) || v < 0 || v > 1 {
				return fmt.Errorf("penalty: success rate %g at (%d,%d): %w",
					v, i, j, ErrInvalidProbability)
			}
		}
	}

	return nil
}

// copyRows deep-copies a rectangular float64 grid.
func copyRows(values [][]float64) [][]float64 {
	out := make([][]float64, len(values))
	for i, row := range values {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
