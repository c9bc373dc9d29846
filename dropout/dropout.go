// SPDX-License-Identifier: MIT

package dropout

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/dropcorr/matrix"
	"github.com/katalvlaran/dropcorr/rng"
)

// Result bundles the three matrices produced by one injection pass.
// All share the shape of the input.
type Result struct {
	Prob      *matrix.Dense // P_ij = f(|Z_ij|)
	Indicator *matrix.Dense // 1 = kept, 0 = dropped
	Dropped   *matrix.Dense // Z_ij when kept, 0 otherwise
}

// Probabilities returns P with P_ij = f(|Z_ij|) for the configured curve.
//
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c).
func Probabilities(z matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	p, err := matrix.Map(z, o.curve.Prob)
	if err != nil {
		return nil, dropoutErrorf(opProbabilities, err)
	}

	return p, nil
}

// Indicators draws one keep flag per cell, Bernoulli(1 − P_ij), reading src
// in row-major order. A nil src means the rng default stream.
//
// Errors: matrix.ErrNilMatrix, ErrBadProbability.
// Complexity: O(r*c).
func Indicators(prob matrix.Matrix, src rand.Source) (*matrix.Dense, error) {
	p, err := matrix.ToDense(prob)
	if err != nil {
		return nil, dropoutErrorf(opIndicators, err)
	}
	if src == nil {
		src = rng.NewSource(0)
	}
	pd := p.RawData()
	ind := make([]float64, len(pd))
	for k, v := range pd {
		if !(v >= 0 && v <= 1) {
			return nil, dropoutErrorf(opIndicators, ErrBadProbability)
		}
		ind[k] = distuv.Bernoulli{P: 1 - v, Src: src}.Rand()
	}
	out, err := matrix.NewDenseFrom(p.Rows(), p.Cols(), ind)
	if err != nil {
		return nil, dropoutErrorf(opIndicators, err)
	}

	return out, nil
}

// Apply returns Zdrop: Z_ij where ind_ij = 1 and 0 where ind_ij = 0.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrBadIndicator.
func Apply(z, ind matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateBinarySameShape(z, ind); err != nil {
		return nil, dropoutErrorf(opApply, err)
	}
	keep, err := matrix.ToDense(ind)
	if err != nil {
		return nil, dropoutErrorf(opApply, err)
	}
	flags := keep.RawData()
	if err = checkIndicators(flags); err != nil {
		return nil, dropoutErrorf(opApply, err)
	}
	zd, err := matrix.ToDense(z)
	if err != nil {
		return nil, dropoutErrorf(opApply, err)
	}
	out := zd.Clone().(*matrix.Dense)
	c := out.Cols()
	err = out.Apply(func(i, j int, v float64) float64 {
		if flags[i*c+j] == 0 {
			return 0
		}
		return v
	})
	if err != nil {
		return nil, dropoutErrorf(opApply, err)
	}

	return out, nil
}

// Inject runs the full dropout pass on z: probabilities, Bernoulli keep
// indicators drawn from src in row-major order, and the zero-filled matrix.
//
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*c).
func Inject(z matrix.Matrix, src rand.Source, opts ...Option) (*Result, error) {
	p, err := Probabilities(z, opts...)
	if err != nil {
		return nil, dropoutErrorf(opInject, err)
	}
	ind, err := Indicators(p, src)
	if err != nil {
		return nil, dropoutErrorf(opInject, err)
	}
	dropped, err := Apply(z, ind)
	if err != nil {
		return nil, dropoutErrorf(opInject, err)
	}

	return &Result{Prob: p, Indicator: ind, Dropped: dropped}, nil
}

// RowWeights returns w with w_i = (Π_j ind_ij) · B_i, B_i ~ Beta(alpha, beta).
// One Beta value is drawn for every row, dropped or not, so the stream
// position after row i never depends on the indicators.
//
// Errors: matrix.ErrNilMatrix, ErrBadIndicator, ErrBadBetaParams,
// ErrNonFiniteWeight.
// Complexity: O(r*c).
func RowWeights(ind matrix.Matrix, src rand.Source, alpha, beta float64) ([]float64, error) {
	if !validShape(alpha) || !validShape(beta) {
		return nil, dropoutErrorf(opRowWeights, ErrBadBetaParams)
	}
	keep, err := matrix.ToDense(ind)
	if err != nil {
		return nil, dropoutErrorf(opRowWeights, err)
	}
	flags := keep.RawData()
	if err = checkIndicators(flags); err != nil {
		return nil, dropoutErrorf(opRowWeights, err)
	}
	if src == nil {
		src = rng.NewSource(0)
	}
	dist := distuv.Beta{Alpha: alpha, Beta: beta, Src: src}
	r, c := keep.Rows(), keep.Cols()
	w := make([]float64, r)
	var i, j int
	var prod, b float64
	for i = 0; i < r; i++ {
		prod = 1
		for j = 0; j < c; j++ {
			prod *= flags[i*c+j]
		}
		b = dist.Rand()
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, dropoutErrorf(opRowWeights, ErrNonFiniteWeight)
		}
		w[i] = prod * b
	}

	return w, nil
}

// Rates returns the per-column dropout fraction (share of zero indicators).
//
// Errors: matrix.ErrNilMatrix, ErrBadIndicator.
func Rates(ind matrix.Matrix) ([]float64, error) {
	keep, err := matrix.ToDense(ind)
	if err != nil {
		return nil, dropoutErrorf(opRates, err)
	}
	flags := keep.RawData()
	if err = checkIndicators(flags); err != nil {
		return nil, dropoutErrorf(opRates, err)
	}
	r := keep.Rows()
	rates := make([]float64, keep.Cols())
	keep.Do(func(_, j int, v float64) bool {
		if v == 0 {
			rates[j]++
		}
		return true
	})
	for j := range rates {
		rates[j] /= float64(r)
	}

	return rates, nil
}

// CompleteRows returns the indices of rows whose indicators are all 1.
//
// Errors: matrix.ErrNilMatrix, ErrBadIndicator.
func CompleteRows(ind matrix.Matrix) ([]int, error) {
	keep, err := matrix.ToDense(ind)
	if err != nil {
		return nil, dropoutErrorf(opCompleteRows, err)
	}
	flags := keep.RawData()
	if err = checkIndicators(flags); err != nil {
		return nil, dropoutErrorf(opCompleteRows, err)
	}
	r, c := keep.Rows(), keep.Cols()
	rows := make([]int, 0, r)
	var i, j int
	var complete bool
	for i = 0; i < r; i++ {
		complete = true
		for j = 0; j < c; j++ {
			if flags[i*c+j] == 0 {
				complete = false
				break
			}
		}
		if complete {
			rows = append(rows, i)
		}
	}

	return rows, nil
}

func checkIndicators(flags []float64) error {
	for _, f := range flags {
		if f != 0 && f != 1 {
			return ErrBadIndicator
		}
	}

	return nil
}

func validShape(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
