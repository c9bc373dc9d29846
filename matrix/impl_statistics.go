// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide column statistics (means, centering, covariance, Pearson correlation),
//     their observation-weighted analogues, and the covariance→correlation rescaling
//     ρ = D^-1/2 Σ D^-1/2, as deterministic compositions over Mul/Transpose/Scale
//     and the ew* micro-kernels.
//
// Exposed API (facades in api.go):
//   - ColumnMeans(X)                -> means
//   - CenterColumns(X)              -> (Xc, means)
//   - Covariance(X)                 -> (Cov, means)            // (Xcᵀ Xc)/(r-1)
//   - Correlation(X)                -> (Corr, means, stds)     // Pearson, Bessel-corrected
//   - WeightedCovariance(X, w)      -> (Cov, means)            // Σ w_i x̃_i x̃_iᵀ / Σ w
//   - WeightedCorrelation(X, w)     -> Corr
//   - CovarianceToCorrelation(S)    -> ρ
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Sample statistics need r>=2 (ErrTooFewRows).

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnMeans         = "ColumnMeans"
	opCenterColumns       = "CenterColumns"
	opCovariance          = "Covariance"
	opCorrelation         = "Correlation"
	opWeightedCovariance  = "WeightedCovariance"
	opWeightedCorrelation = "WeightedCorrelation"
	opCovToCorr           = "CovarianceToCorrelation"
)

// columnMeans returns Σ_i X[i,j] / r for every column j.
// Complexity: O(r*c).
func columnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	means := make([]float64, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(d.r)
	for j = 0; j < d.c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element.
// Returns the centered copy and the means used.
// Complexity: O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows (r<2).
//
// Complexity:
//   - Time O(r*c^2), Space O(c^2).
func covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrTooFewRows)
	}
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(X.Rows()-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov.(*Dense), means, nil
}

// correlation computes Pearson correlation of columns via z-scoring:
// Corr = (Zᵀ Z)/(r-1), Z = (X − mean) * diag(1/std), std Bessel-corrected.
//
// Behavior highlights:
//   - Degenerate std==0 → that column/row of Corr is zero (diagonal included).
//   - Non-degenerate diagonal entries are exactly 1; off-diagonals are clamped
//     to [-1, 1] to absorb rounding.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows (r<2).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c).
func correlation(X Matrix) (*Dense, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrTooFewRows)
	}
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	// std[j] = sqrt( Σ_i Xc[i,j]^2 / (r-1) ).
	stds := make([]float64, c)
	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = Xc.data[base+j]
			stds[j] += v * v
		}
	}
	inv := 1.0 / float64(r-1)
	invStd := make([]float64, c)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] * inv)
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}

	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Zt, err := Transpose(Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Mul(Zt, Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Cm, err := Scale(G, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Corr := Cm.(*Dense)
	normalizeCorrelation(Corr, stds)

	return Corr, means, stds, nil
}

// normalizeCorrelation pins non-degenerate diagonal entries to 1 and clamps
// off-diagonals to [-1, 1]. sd[j]==0 marks a degenerate column.
func normalizeCorrelation(C *Dense, sd []float64) {
	n := C.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if sd[i] == 0 || sd[j] == 0 {
				C.data[i*n+j] = 0
				continue
			}
			if i == j {
				C.data[i*n+j] = 1
				continue
			}
			C.data[i*n+j] = math.Max(-1, math.Min(1, C.data[i*n+j]))
		}
	}
}

// validateWeights checks len(w)==r, every w_i finite and >= 0, Σw > 0.
// Returns Σw.
func validateWeights(w []float64, r int) (float64, error) {
	if err := ValidateVecLen(w, r); err != nil {
		return 0, err
	}
	var sum float64
	for _, wi := range w {
		if isNonFinite(wi) || wi < 0 {
			return 0, ErrInvalidWeight
		}
		sum += wi
	}
	if sum <= 0 {
		return 0, ErrZeroWeights
	}

	return sum, nil
}

// weightedCovariance computes the observation-weighted covariance of columns,
// Cov_jk = Σ_i w_i (X_ij − m_j)(X_ik − m_k) / Σ_i w_i with weighted means
// m_j = Σ_i w_i X_ij / Σ_i w_i.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(w) != r), ErrInvalidWeight, ErrZeroWeights.
//
// Notes:
//   - Frequency-style normalization (Σw, no Bessel term): the correlation derived
//     from it does not depend on the normalization, and equal weights reproduce
//     the unweighted Pearson correlation.
//
// Complexity:
//   - Time O(r*c^2), Space O(c^2).
func weightedCovariance(X Matrix, w []float64) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opWeightedCovariance, err)
	}
	sumW, err := validateWeights(w, X.Rows())
	if err != nil {
		return nil, nil, matrixErrorf(opWeightedCovariance, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opWeightedCovariance, err)
	}
	r, c := d.r, d.c

	means := make([]float64, c)
	var i, j, k, base int
	for i = 0; i < r; i++ {
		if w[i] == 0 {
			continue
		}
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += w[i] * d.data[base+j]
		}
	}
	for j = 0; j < c; j++ {
		means[j] /= sumW
	}

	Cov, err := NewDense(c, c)
	if err != nil {
		return nil, nil, matrixErrorf(opWeightedCovariance, err)
	}
	var dj float64
	for i = 0; i < r; i++ {
		if w[i] == 0 {
			continue
		}
		base = i * c
		for j = 0; j < c; j++ {
			dj = w[i] * (d.data[base+j] - means[j])
			for k = j; k < c; k++ {
				Cov.data[j*c+k] += dj * (d.data[base+k] - means[k])
			}
		}
	}
	for j = 0; j < c; j++ {
		for k = j; k < c; k++ {
			Cov.data[j*c+k] /= sumW
			Cov.data[k*c+j] = Cov.data[j*c+k]
		}
	}

	return Cov, means, nil
}

// weightedCorrelation rescales the weighted covariance to a correlation matrix.
// Degenerate weighted variance → zero row/column, as in correlation.
func weightedCorrelation(X Matrix, w []float64) (*Dense, error) {
	Cov, _, err := weightedCovariance(X, w)
	if err != nil {
		return nil, matrixErrorf(opWeightedCorrelation, err)
	}
	n := Cov.r
	sd := make([]float64, n)
	for j := 0; j < n; j++ {
		sd[j] = math.Sqrt(Cov.data[j*n+j])
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if sd[i] > 0 && sd[j] > 0 {
				Cov.data[i*n+j] /= sd[i] * sd[j]
			}
		}
	}
	normalizeCorrelation(Cov, sd)

	return Cov, nil
}

// covarianceToCorrelation computes ρ = D^-1/2 Σ D^-1/2 with D = diag(Σ),
// i.e. ρ_ij = Σ_ij / sqrt(Σ_ii Σ_jj).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (DefaultEpsilon),
//     ErrNotPositiveDefinite (a diagonal entry <= 0).
//
// Behavior highlights:
//   - Diagonal is exactly 1; the input is never mutated.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func covarianceToCorrelation(S Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(S, o.eps); err != nil {
		return nil, matrixErrorf(opCovToCorr, err)
	}
	d, err := asDense(S)
	if err != nil {
		return nil, matrixErrorf(opCovToCorr, err)
	}
	n := d.r
	invSd := make([]float64, n)
	for j := 0; j < n; j++ {
		v := d.data[j*n+j]
		if !(v > 0) {
			return nil, matrixErrorf(opCovToCorr, ErrNotPositiveDefinite)
		}
		invSd[j] = 1.0 / math.Sqrt(v)
	}
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCovToCorr, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				out.data[i*n+j] = 1
				continue
			}
			out.data[i*n+j] = d.data[i*n+j] * invSd[i] * invSd[j]
		}
	}

	return out, nil
}
