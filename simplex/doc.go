// Package simplex solves linear programs in the inequality form
// maximize c·x subject to A·x ≤ b, x ≥ 0 with the primal Simplex method.
//
// What:
//
//   - Maximize builds a dense tableau (constraint rows, slack identity block,
//     right-hand-side column, negated objective row) and pivots it to
//     optimality.
//   - Entering column: most negative objective coefficient, leftmost on ties.
//   - Leaving row: minimum-ratio test over strictly positive pivot-column
//     entries, first occurrence on ties; degenerate zero-ratio pivots are
//     accepted.
//   - Solution reports the optimal value, the assignment to the original
//     variables, and the number of pivots performed.
//
// Why:
//
//   - Zero-sum games: package zerosum reduces equilibrium computation to one
//     LP of this exact shape.
//   - Resource allocation: production mix, diet, transport toy models.
//
// Complexity:
//
//   - One pivot: O(m·(n+m)) for m constraints and n variables.
//   - Worst case exponential in theory; the iteration cap (default 1000)
//     turns cycling or slow convergence into a typed error instead of a hang.
//
// Options:
//
//   - WithMaxIterations(n): pivot budget before ErrMaxIterations (default 1000).
//   - WithVerbose(): print one line per pivot via fmt.Printf.
//
// Errors:
//
//   - ErrInvalidDimensions: empty input, ragged constraint rows, or a
//     right-hand side whose length differs from the constraint count.
//   - ErrUnbounded: an entering column with no positive entry (the objective
//     can grow without limit).
//   - ErrMaxIterations: the pivot budget ran out before optimality.
//
// The entering/leaving rules are the textbook ones, not anti-cycling rules
// (no Bland's rule); the iteration cap is the safety valve against cycling.
package simplex
