// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX); callers
// still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> NaN/Inf -> structural (symmetry, definiteness, singularity).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a data
	// slice whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a (near-)zero pivot is encountered during
	// LU factorization or inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned when a Cholesky factorization meets a
	// non-positive leading minor.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrTooFewRows signals that a sample statistic needs more observations
	// (covariance and correlation require at least two rows).
	ErrTooFewRows = errors.New("matrix: too few rows for sample statistic")

	// ErrInvalidWeight signals a negative, NaN or ±Inf observation weight.
	ErrInvalidWeight = errors.New("matrix: invalid observation weight")

	// ErrZeroWeights signals that observation weights sum to zero, leaving
	// weighted means and covariances undefined.
	ErrZeroWeights = errors.New("matrix: observation weights sum to zero")
)
