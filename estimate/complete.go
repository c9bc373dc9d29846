// SPDX-License-Identifier: MIT

package estimate

import (
	"github.com/katalvlaran/dropcorr/dropout"
	"github.com/katalvlaran/dropcorr/matrix"
)

// CompleteCases returns the rows of z whose indicators are all 1, in their
// original order. This is the "kept-only" view of dropped data.
//
// Errors: matrix.ErrNilMatrix, ErrLengthMismatch (shape differs),
// dropout.ErrBadIndicator, ErrTooFewObservations (fewer than two rows kept).
func CompleteCases(z, ind matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateBinarySameShape(z, ind); err != nil {
		return nil, estimateErrorf(opCompleteCases, translate(err))
	}
	rows, err := dropout.CompleteRows(ind)
	if err != nil {
		return nil, estimateErrorf(opCompleteCases, err)
	}
	if len(rows) < 2 {
		return nil, estimateErrorf(opCompleteCases, ErrTooFewObservations)
	}
	zd, err := matrix.ToDense(z)
	if err != nil {
		return nil, estimateErrorf(opCompleteCases, err)
	}
	out, err := zd.SelectRows(rows)
	if err != nil {
		return nil, estimateErrorf(opCompleteCases, err)
	}

	return out, nil
}
