package zerosum

import (
	"errors"

	"github.com/katalvlaran/minimax/simplex"
)

// Sentinel errors returned by the game solver.
var (
	// ErrEmptyMatrix indicates a payoff matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("zerosum: payoff matrix must have at least one row and one column")

	// ErrInconsistentRows indicates payoff rows of differing lengths.
	ErrInconsistentRows = errors.New("zerosum: payoff matrix rows must share one length")

	// ErrStrategyLength indicates a strategy vector whose length does not
	// match the corresponding payoff dimension.
	ErrStrategyLength = errors.New("zerosum: strategy length does not match payoff matrix")

	// ErrInfeasible indicates the column player's LP solution supports no
	// usable mixed strategy (no active column, or the clamped row strategy
	// summed to zero).
	ErrInfeasible = errors.New("zerosum: no feasible mixed strategy")

	// ErrBadMaxIterations indicates WithMaxIterations was given a
	// non-positive pivot budget.
	ErrBadMaxIterations = errors.New("zerosum: MaxIterations must be positive")
)

// ActiveEps is the support threshold on the raw (pre-normalization) column
// LP solution: column j is active, and therefore part of the column
// player's mixture, when z_j > ActiveEps.
const ActiveEps = 1e-9

// renormEps guards the renormalization steps: a weight vector whose sum
// falls below it carries no usable probability mass.
const renormEps = 1e-10

// Solution is the result of a successful Solve call.
//
// RowStrategy – maximizer's mixed strategy over rows, sums to 1.
// ColStrategy – minimizer's mixed strategy over columns, sums to 1.
// Value       – game value from the row player's perspective: the expected
// payoff both optimal strategies guarantee.
type Solution struct {
	RowStrategy []float64
	ColStrategy []float64
	Value       float64
}

// Options configures the behavior of Solve.
//
// MaxIterations – pivot budget of the inner Simplex solve.
// Verbose       – if true, trace the solve stages via fmt.Printf.
type Options struct {
	MaxIterations int  // Pivot budget forwarded to simplex.Maximize
	Verbose       bool // Whether to trace solve stages to stdout
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithMaxIterations sets the pivot budget of the inner Simplex solve.
// Must pass a positive value; zero or negative cause a panic, as a
// non-positive budget would make every solve fail.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithVerbose enables stage tracing: the positivity shift, the inner
// Simplex pivots, the active column set, and the final value.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
// Use this as the starting point for functional-options overrides.
//
// Defaults:
//   - MaxIterations: simplex.DefaultMaxIterations (1000).
//   - Verbose:       false (no tracing).
func DefaultOptions() Options {
	return Options{
		MaxIterations: simplex.DefaultMaxIterations,
		Verbose:       false,
	}
}
