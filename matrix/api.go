// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (n×n identity).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ToDense returns m itself when it already is a *Dense, otherwise a
// materialized copy. Treat the result as read-only.
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return asDense(m)
}

// ---------- Element-wise ----------

// Map returns a new matrix with f applied to every element.
// Errors: ErrNilMatrix, ErrNaNInf when f yields a non-finite value.
func Map(m Matrix, f func(v float64) float64) (*Dense, error) { return ewMap(m, f) }

// ---------- Statistics ----------

// CenterColumns subtracts per-column means (returns centered copy and means).
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// Covariance returns the sample covariance (Xcᵀ Xc)/(r-1) and the column means.
func Covariance(X Matrix) (*Dense, []float64, error) { return covariance(X) }

// Correlation returns the Pearson correlation matrix, column means and sample stds.
func Correlation(X Matrix) (*Dense, []float64, []float64, error) { return correlation(X) }

// WeightedCovariance returns the observation-weighted covariance and weighted means.
func WeightedCovariance(X Matrix, w []float64) (*Dense, []float64, error) {
	return weightedCovariance(X, w)
}

// WeightedCorrelation returns the observation-weighted correlation matrix.
func WeightedCorrelation(X Matrix, w []float64) (*Dense, error) { return weightedCorrelation(X, w) }

// CovarianceToCorrelation rescales a covariance matrix to unit diagonal.
func CovarianceToCorrelation(S Matrix, opts ...Option) (*Dense, error) {
	return covarianceToCorrelation(S, opts...)
}
