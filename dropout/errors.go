// SPDX-License-Identifier: MIT

package dropout

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLogistic indicates a non-finite midpoint or a scale that is not
	// strictly positive and finite.
	ErrBadLogistic = errors.New("dropout: logistic scale must be > 0 and parameters finite")

	// ErrBadProbability indicates a dropout probability outside [0, 1].
	ErrBadProbability = errors.New("dropout: probability outside [0, 1]")

	// ErrBadIndicator indicates an indicator entry other than 0 or 1.
	ErrBadIndicator = errors.New("dropout: indicator must be 0 or 1")

	// ErrBadBetaParams indicates non-positive or non-finite Beta shape parameters.
	ErrBadBetaParams = errors.New("dropout: beta parameters must be > 0 and finite")

	// ErrNonFiniteWeight indicates a weight draw that came out NaN or ±Inf.
	ErrNonFiniteWeight = errors.New("dropout: non-finite weight draw")
)

const (
	opProbabilities = "Probabilities"
	opIndicators    = "Indicators"
	opApply         = "Apply"
	opInject        = "Inject"
	opRowWeights    = "RowWeights"
	opRates         = "Rates"
	opCompleteRows  = "CompleteRows"
)

func dropoutErrorf(op string, err error) error {
	return fmt.Errorf("dropout.%s: %w", op, err)
}
