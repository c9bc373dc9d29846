// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, scalar scaling, the matrix-vector
// product and the LU / Cholesky factorizations used by the
// least-squares estimators. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel returns a freshly allocated *Dense; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other implementations are
//     materialized once through At (asDense) and then share the same loops.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opCholesky  = "Cholesky"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a materialized copy
// read through At in fixed i→j order.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// rowMaxAbs returns max_j |A_ij| for row i of an n-column row-major buffer.
// Pivots are judged against their own row so that rows of very different
// magnitude (Σw next to Σw·x²) do not mask each other.
func rowMaxAbs(data []float64, n, i int) float64 {
	var m float64
	for _, v := range data[i*n : (i+1)*n] {
		if a := math.Abs(v); a > m {
			m = a
		}
	}

	return m
}

// Mul computes the matrix product a × b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed i→k→j loop order; zero a[i,k] skipped.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, k int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowR+j] += av * db.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha*m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range d.data {
		res.data[k] = alpha * v
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var i, j, base int
	var sum float64
	for i = 0; i < d.r; i++ {
		sum = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			sum += d.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//   - Stage 3: Reject pivots with |U[i,i]| <= pivotTol * max_j|A[i,j]| as ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (also for the all-zero matrix).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - No pivoting keeps results bit-for-bit reproducible. The normal-equation
//     matrices factored here (XᵗWX) are symmetric positive semi-definite, for
//     which Doolittle without pivoting is stable whenever it succeeds.
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// Row i of U.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}
		pivot = U.data[i*n+i]
		if math.Abs(pivot) <= o.pivotTol*rowMaxAbs(a.data, n, i) {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// Column i of L.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// luSolveInto solves L*U*x = b for one right-hand side using forward then
// backward substitution; y and x are caller-provided scratch of length n.
func luSolveInto(L, U *Dense, b, y, x []float64) {
	n := L.r
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += L.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += U.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / U.data[i*n+i]
	}
}

// Solve returns x with A*x = b via LU.
// Errors: as LU, plus ErrDimensionMismatch when len(b) != n.
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	Lm, Um, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := m.Rows()
	y := make([]float64, n)
	x := make([]float64, n)
	luSolveInto(Lm.(*Dense), Um.(*Dense), b, y, x)

	return x, nil
}

// Cholesky computes the lower-triangular L with A = L*Lᵀ.
//
// Implementation:
//   - Stage 1: Validate non-nil, square.
//   - Stage 2: Column-by-column Cholesky–Banachiewicz; a diagonal term
//     d <= pivotTol * max_k|A[j,k]| fails with ErrNotPositiveDefinite.
//
// Notes:
//   - Symmetry is NOT checked here (only the lower triangle is read);
//     use ValidatePositiveDefinite for the full contract.
//
// Complexity:
//   - Time O(n^3/3), Space O(n^2).
func Cholesky(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	o := gatherOptions(opts...)
	a, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := a.r
	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	var i, j, k int
	var sum, d float64
	for j = 0; j < n; j++ {
		sum = ZeroSum
		for k = 0; k < j; k++ {
			sum += L.data[j*n+k] * L.data[j*n+k]
		}
		d = a.data[j*n+j] - sum
		if d <= o.pivotTol*rowMaxAbs(a.data, n, j) || math.IsNaN(d) {
			return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		L.data[j*n+j] = math.Sqrt(d)
		for i = j + 1; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < j; k++ {
				sum += L.data[i*n+k] * L.data[j*n+k]
			}
			L.data[i*n+j] = (a.data[i*n+j] - sum) / L.data[j*n+j]
		}
	}

	return L, nil
}
