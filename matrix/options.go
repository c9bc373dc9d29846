// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of
// factorization and structural checks. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by symmetry checks.
	DefaultEpsilon = 1e-9

	// DefaultPivotTolerance is the relative tolerance under which an LU or
	// Cholesky pivot counts as zero: |pivot_i| <= tol * max_j|A_ij|.
	DefaultPivotTolerance = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotInvalid   = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps      float64 // symmetry tolerance, >= 0
	pivotTol float64 // relative zero-pivot tolerance, >= 0
}

// WithEpsilon sets the absolute tolerance used by symmetry checks.
// Panics with a stable message when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the relative zero-pivot tolerance for LU, Solve
// and Cholesky. A tolerance of 0 restores exact-zero detection.
// Panics with a stable message when tol is negative or non-finite.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions applies setters in order over the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:      DefaultEpsilon,
		pivotTol: DefaultPivotTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
