// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine panics on user-triggered error conditions; panics
// are reserved for invalid option constructor arguments (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are never wrapped at definition site;
// call sites attach context with fmt.Errorf("ctx: %w", ErrX) so callers still
// match via errors.Is.

var (
	// ErrEmptyMatrix is returned when a matrix has no rows, no columns, or a
	// constructor receives non-positive dimensions.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrInconsistentRows is returned by FromRows when the input rows have
	// unequal lengths (the matrix must be rectangular).
	ErrInconsistentRows = errors.New("matrix: rows have unequal length")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec where len(x) != Cols, or SolveLinear where len(b) != Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned by SolveLinear when elimination leaves an
	// inconsistent row (0 = nonzero beyond the pivot threshold), i.e. the
	// system has no solution under the configured tolerance.
	ErrSingular = errors.New("matrix: singular or inconsistent system")
)
