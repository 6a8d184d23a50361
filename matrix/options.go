// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotEps is the magnitude below which a pivot candidate is
	// treated as zero during Gaussian elimination. Columns whose best pivot
	// falls under this threshold become free variables (assigned 0).
	DefaultPivotEps = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion (FromRows) and Set. On by default: payoff matrices and
	// linear systems require finite entries to be meaningful.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotEpsInvalid = "matrix: WithPivotEps: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	pivotEps       float64 // >= 0; DefaultPivotEps
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithPivotEps sets the singularity threshold used by SolveLinear.
// A pivot candidate with |value| <= eps is treated as zero; the corresponding
// unknown becomes free. Panics on NaN, ±Inf, or negative eps.
func WithPivotEps(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotEpsInvalid)
	}

	return func(o *Options) { o.pivotEps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default):
// FromRows rejects NaN/±Inf entries and Set rejects NaN/±Inf values with
// ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation. Use only in
// controlled ingestion where non-finite placeholders are sanitized later.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Option resolution ----------

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotEps:       DefaultPivotEps,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
