// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dropcorr/matrix"
)

func TestMap_AppliesAndRejectsNonFinite(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{-1, 2, -3, 4})
	abs, err := matrix.Map(hide{X}, math.Abs)
	require.NoError(t, err)
	sliceClose(t, abs.RawData(), []float64{1, 2, 3, 4}, 0, 0)

	_, err = matrix.Map(X, math.Log) // log of a negative
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Map(nil, math.Abs)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
