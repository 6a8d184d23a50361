// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric foundation for the minimax
// solvers: row-major float64 storage with safe accessors, the small
// linear-algebra kernel set the game-theory pipeline needs, and a Gaussian
// elimination routine for (possibly rectangular) linear systems.
//
// What:
//
//   - Dense wraps a flat row-major []float64 buffer with the explicit index
//     formula i*cols + j; At/Set return errors instead of panicking.
//   - FromRows ingests a [][]float64 payoff matrix with strict shape
//     validation (non-empty, rectangular) and an optional finite-value scan.
//   - Kernels: AddScalar, MatVec, VecMat, Bilinear, Min — fresh-result,
//     operands never mutated, fixed loop orders for determinism.
//   - SolveLinear performs Gaussian elimination with partial pivoting and
//     free-variable zeroing, the backbone of the equilibrium indifference
//     solve in package zerosum.
//   - Gonum/FromGonum convert to and from gonum's mat.Dense for
//     cross-validation against an independent implementation.
//
// Why:
//
//   - Payoff matrices: validated ingestion and shift/product kernels.
//   - Indifference systems: rectangular solves with a typed singularity error.
//   - Oracle testing: hand off matrices to gonum without aliasing.
//
// Complexity:
//
//   - NewDense/FromRows/Clone: O(r·c); At/Set: O(1).
//   - MatVec/VecMat/Bilinear/AddScalar/Min: O(r·c).
//   - SolveLinear: O(rows·cols·min(rows,cols)).
//
// Options:
//
//   - WithPivotEps(eps): singularity threshold for SolveLinear pivots.
//   - WithValidateNaNInf / WithNoValidateNaNInf: finite-value policy for
//     ingestion and Set.
//
// Errors:
//
//   - ErrEmptyMatrix: no rows, no columns, or non-positive dimensions.
//   - ErrInconsistentRows: rows of unequal length during ingestion.
//   - ErrOutOfRange: an index outside valid bounds.
//   - ErrDimensionMismatch: incompatible operand dimensions.
//   - ErrNaNInf: NaN or ±Inf where finite values are required.
//   - ErrSingular: elimination exposed an inconsistent row (no solution).
package matrix
