// SPDX-License-Identifier: MIT

package estimate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dropcorr/matrix"
)

var (
	// ErrSingular is returned when XᵗX (or XᵗWX) cannot be inverted, e.g. when
	// every observation with positive weight shares one x value.
	ErrSingular = errors.New("estimate: singular design matrix")

	// ErrLengthMismatch is returned when x, y and w differ in length.
	ErrLengthMismatch = errors.New("estimate: length mismatch")

	// ErrTooFewObservations is returned when fewer than two observations
	// (with positive weight, for weighted estimators) are available.
	ErrTooFewObservations = errors.New("estimate: too few observations")

	// ErrZeroWeights is returned when every weight is zero.
	ErrZeroWeights = errors.New("estimate: all weights are zero")

	// ErrBadWeight is returned for a negative, NaN or ±Inf weight.
	ErrBadWeight = errors.New("estimate: weight must be finite and >= 0")

	// ErrDegenerate is returned when a variable has zero variance, leaving
	// the correlation undefined.
	ErrDegenerate = errors.New("estimate: zero variance")
)

const (
	opPearson         = "Pearson"
	opWeightedPearson = "WeightedPearson"
	opCorrelation     = "CorrelationMatrix"
	opWeightedCorr    = "WeightedCorrelationMatrix"
	opOLS             = "OLS"
	opWLS             = "WLS"
	opCompleteCases   = "CompleteCases"
)

func estimateErrorf(op string, err error) error {
	return fmt.Errorf("estimate.%s: %w", op, err)
}

// translate maps matrix-level sentinels onto this package's sentinels while
// keeping the original cause in the chain.
func translate(err error) error {
	switch {
	case errors.Is(err, matrix.ErrSingular):
		return fmt.Errorf("%w: %w", ErrSingular, err)
	case errors.Is(err, matrix.ErrTooFewRows):
		return fmt.Errorf("%w: %w", ErrTooFewObservations, err)
	case errors.Is(err, matrix.ErrZeroWeights):
		return fmt.Errorf("%w: %w", ErrZeroWeights, err)
	case errors.Is(err, matrix.ErrInvalidWeight):
		return fmt.Errorf("%w: %w", ErrBadWeight, err)
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return fmt.Errorf("%w: %w", ErrLengthMismatch, err)
	default:
		return err
	}
}
