package simplex

import "errors"

// Sentinel errors returned by the Simplex solver.
var (
	// ErrInvalidDimensions indicates malformed input: no variables, no
	// constraints, a ragged constraint matrix, or len(b) != len(a).
	ErrInvalidDimensions = errors.New("simplex: invalid dimensions")

	// ErrUnbounded indicates the feasible region allows the objective to grow
	// without limit: the entering column has no strictly positive entry.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrMaxIterations indicates the pivot budget was exhausted before the
	// tableau reached optimality (possible cycling or a too-small cap).
	ErrMaxIterations = errors.New("simplex: maximum iterations exceeded")

	// ErrBadMaxIterations indicates WithMaxIterations was given a
	// non-positive pivot budget.
	ErrBadMaxIterations = errors.New("simplex: MaxIterations must be positive")
)

// Numeric tolerances of the pivot loop. Absolute epsilons, chosen for
// well-scaled inputs (payoff matrices shifted into small positive ranges).
const (
	// DefaultMaxIterations is the pivot budget used when WithMaxIterations
	// is not supplied. It bounds against cycling, which the plain entering
	// and leaving rules do not otherwise exclude.
	DefaultMaxIterations = 1000

	// PivotEps is the strict positivity threshold of the minimum-ratio test:
	// only rows whose pivot-column entry exceeds it may leave the basis.
	PivotEps = 1e-10

	// BasicEps is the tolerance of basic-column detection during solution
	// extraction: a column is basic when exactly one entry is within BasicEps
	// of 1 and every other entry is within BasicEps of 0.
	BasicEps = 1e-10
)

// Solution is the result of a successful Maximize call.
//
// Value      – optimal objective value c·x.
// X          – optimal assignment to the n original variables (slacks omitted).
// Iterations – number of pivots performed before optimality.
type Solution struct {
	Value      float64
	X          []float64
	Iterations int
}

// Options configures the behavior of the Simplex solver.
//
// MaxIterations – pivot budget; exceeding it yields ErrMaxIterations.
// Verbose       – if true, print one diagnostic line per pivot via fmt.Printf.
type Options struct {
	MaxIterations int  // Maximum number of pivots before giving up
	Verbose       bool // Whether to trace pivots to stdout
}

// Option represents a functional option for configuring Maximize.
type Option func(*Options)

// WithMaxIterations sets the pivot budget.
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

// WithVerbose enables per-pivot tracing (entering column, leaving row,
// pivot element) printed via fmt.Printf.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
// Use this as the starting point for functional-options overrides.
//
// Defaults:
//   - MaxIterations: DefaultMaxIterations (1000).
//   - Verbose:       false (no tracing).
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Verbose:       false,
	}
}
