// SPDX-License-Identifier: MIT

package estimate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/dropcorr/matrix"
)

// Pearson returns the sample correlation of x and y.
//
// Two passes: means first, then centered cross-products, so large offsets
// (the experiment's means are 5 and 12) do not cost precision. The result is
// clamped to [-1, 1].
//
// Errors: ErrLengthMismatch, ErrTooFewObservations, matrix.ErrNaNInf,
// ErrDegenerate.
// Complexity: O(n).
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, estimateErrorf(opPearson, ErrLengthMismatch)
	}
	n := len(x)
	if n < 2 {
		return 0, estimateErrorf(opPearson, ErrTooFewObservations)
	}
	if err := checkFinite(x, y); err != nil {
		return 0, estimateErrorf(opPearson, err)
	}
	mx := floats.Sum(x) / float64(n)
	my := floats.Sum(y) / float64(n)

	var sxx, syy, sxy, dx, dy float64
	for i := 0; i < n; i++ {
		dx, dy = x[i]-mx, y[i]-my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, estimateErrorf(opPearson, ErrDegenerate)
	}

	return clampUnit(sxy / math.Sqrt(sxx*syy)), nil
}

// WeightedPearson returns the observation-weighted correlation of x and y:
// weighted means, then weighted centered cross-products. Zero-weight
// observations contribute nothing.
//
// Errors: ErrLengthMismatch, ErrBadWeight, ErrZeroWeights,
// ErrTooFewObservations, matrix.ErrNaNInf, ErrDegenerate.
// Complexity: O(n).
func WeightedPearson(x, y, w []float64) (float64, error) {
	if len(x) != len(y) || len(x) != len(w) {
		return 0, estimateErrorf(opWeightedPearson, ErrLengthMismatch)
	}
	sw, err := checkWeights(w)
	if err != nil {
		return 0, estimateErrorf(opWeightedPearson, err)
	}
	if err = checkFinite(x, y); err != nil {
		return 0, estimateErrorf(opWeightedPearson, err)
	}
	mx := floats.Dot(w, x) / sw
	my := floats.Dot(w, y) / sw

	var sxx, syy, sxy, dx, dy float64
	for i, wi := range w {
		if wi == 0 {
			continue
		}
		dx, dy = x[i]-mx, y[i]-my
		sxx += wi * dx * dx
		syy += wi * dy * dy
		sxy += wi * dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, estimateErrorf(opWeightedPearson, ErrDegenerate)
	}

	return clampUnit(sxy / math.Sqrt(sxx*syy)), nil
}

// CorrelationMatrix returns the Pearson correlation matrix of the columns
// of z (unit diagonal, symmetric).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, ErrTooFewObservations,
// ErrDegenerate (a constant column).
func CorrelationMatrix(z matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateFinite(z); err != nil {
		return nil, estimateErrorf(opCorrelation, err)
	}
	c, _, sd, err := matrix.Correlation(z)
	if err != nil {
		return nil, estimateErrorf(opCorrelation, translate(err))
	}
	for _, s := range sd {
		if s == 0 {
			return nil, estimateErrorf(opCorrelation, ErrDegenerate)
		}
	}

	return c, nil
}

// WeightedCorrelationMatrix returns the observation-weighted correlation
// matrix of the columns of z. Weights follow WeightedPearson: at least two
// must be positive.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf, ErrLengthMismatch,
// ErrBadWeight, ErrZeroWeights, ErrTooFewObservations, ErrDegenerate.
func WeightedCorrelationMatrix(z matrix.Matrix, w []float64) (*matrix.Dense, error) {
	if err := matrix.ValidateFinite(z); err != nil {
		return nil, estimateErrorf(opWeightedCorr, err)
	}
	if len(w) != z.Rows() {
		return nil, estimateErrorf(opWeightedCorr, ErrLengthMismatch)
	}
	if _, err := checkWeights(w); err != nil {
		return nil, estimateErrorf(opWeightedCorr, err)
	}
	c, err := matrix.WeightedCorrelation(z, w)
	if err != nil {
		return nil, estimateErrorf(opWeightedCorr, translate(err))
	}
	// A zero weighted variance leaves a zero on the diagonal.
	var d float64
	for j := 0; j < c.Rows(); j++ {
		if d, _ = c.At(j, j); d == 0 {
			return nil, estimateErrorf(opWeightedCorr, ErrDegenerate)
		}
	}

	return c, nil
}

// checkWeights validates w and returns its sum. At least two observations
// must carry positive weight.
func checkWeights(w []float64) (float64, error) {
	var positive int
	for _, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, ErrBadWeight
		}
		if v > 0 {
			positive++
		}
	}
	if positive == 0 {
		return 0, ErrZeroWeights
	}
	if positive < 2 {
		return 0, ErrTooFewObservations
	}

	return floats.Sum(w), nil
}

// checkFinite reports matrix.ErrNaNInf for any NaN or ±Inf in the inputs.
func checkFinite(vs ...[]float64) error {
	for _, v := range vs {
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return matrix.ErrNaNInf
			}
		}
	}

	return nil
}

func clampUnit(r float64) float64 {
	return math.Max(-1, math.Min(1, r))
}
