// Package matrix provides fixed-shape dense matrices and the small set of
// linear-algebra and statistics kernels the dropout simulation is built on.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix whose shape is validated at
//     construction and whose accessors return errors instead of panicking.
//   - Kernels: Mul, Transpose, Scale, MatVec, LU, Solve and
//     Cholesky. LU-based routines report ErrSingular on a (near-)zero
//     pivot; Cholesky reports ErrNotPositiveDefinite.
//   - Column statistics: means, centering, sample covariance, Pearson
//     correlation, their observation-weighted variants, and the
//     covariance→correlation rescaling ρ = D^-1/2 Σ D^-1/2.
//
// All loops run in a fixed order, so identical inputs give bit-identical
// outputs. Errors are package sentinels (ErrDimensionMismatch, ErrSingular,
// ...) wrapped with an operation tag; match them with errors.Is.
//
// Matrices here are small (N×2 data, 2×2 moments), so everything favors
// clarity and determinism over blocking or BLAS.
package matrix
