package penalty

import "errors"

// Sentinel errors returned by the penalty analyzers. Callers should match
// them with errors.Is; returned errors carry cell or shape context around
// these sentinels.
var (
	// ErrDimensionMismatch indicates an empty or ragged matrix, or one whose
	// shape does not fit the three-direction game.
	ErrDimensionMismatch = errors.New("penalty: matrix dimensions mismatch")

	// ErrLabelMismatch indicates label counts that do not match the matrix shape.
	ErrLabelMismatch = errors.New("penalty: label count does not match matrix")

	// ErrInvalidProbability indicates a success rate outside [0, 1].
	ErrInvalidProbability = errors.New("penalty: success rate outside [0,1]")

	// ErrBadDirection indicates a direction index outside the Left..Right range.
	ErrBadDirection = errors.New("penalty: no such direction")

	// ErrOutOfRange indicates a cell index outside the matrix.
	ErrOutOfRange = errors.New("penalty: cell index out of range")
)
