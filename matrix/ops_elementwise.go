// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) to avoid
//     duplicating tight loops across higher-level ops (statistics, masking).
//   - Keep all loops deterministic and cache-friendly on the flat Dense buffer.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c).
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	if len(colMeans) != d.c {
		return nil, matrixErrorf("broadcastSubCols", ErrDimensionMismatch)
	}
	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out.data[base+j] = d.data[base+j] - colMeans[j]
		}
	}

	return out, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c).
func ewScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	if len(scale) != d.c {
		return nil, matrixErrorf("scaleCols", ErrDimensionMismatch)
	}
	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out.data[base+j] = d.data[base+j] * scale[j]
		}
	}

	return out, nil
}

// ewMap returns a new Dense with out[i,j] = f(X[i,j]).
// The numeric policy is enforced on the result.
// Time: O(r*c). Space: O(r*c).
func ewMap(X Matrix, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("map", err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf("map", err)
	}
	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf("map", err)
	}
	var nv float64
	for k, v := range d.data {
		nv = f(v)
		if isNonFinite(nv) {
			return nil, matrixErrorf("map", denseErrorf(ctxApply, k/d.c, k%d.c, ErrNaNInf))
		}
		out.data[k] = nv
	}

	return out, nil
}
