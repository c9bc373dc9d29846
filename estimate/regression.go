// SPDX-License-Identifier: MIT

package estimate

import (
	"github.com/katalvlaran/dropcorr/matrix"
)

// Fit is a fitted line y = Intercept + Slope·x.
type Fit struct {
	Intercept float64
	Slope     float64
	// RSquared is the (weighted) coefficient of determination; 1 when y is
	// constant over the observations used.
	RSquared float64
	// N counts the observations that carried weight.
	N int
}

// Predict returns Intercept + Slope·x.
func (f Fit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// OLS fits y on [1, x] by ordinary least squares, β = (XᵗX)⁻¹Xᵗy.
//
// Errors: ErrLengthMismatch, ErrTooFewObservations, ErrSingular
// (x constant), matrix.ErrNaNInf.
func OLS(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, estimateErrorf(opOLS, ErrLengthMismatch)
	}
	if len(x) < 2 {
		return Fit{}, estimateErrorf(opOLS, ErrTooFewObservations)
	}
	f, err := normalEquations(x, y, nil)
	if err != nil {
		return Fit{}, estimateErrorf(opOLS, err)
	}

	return f, nil
}

// WLS fits y on [1, x] by weighted least squares, β = (XᵗWX)⁻¹XᵗWy with
// W = diag(w). Zero-weight observations are ignored.
//
// Errors: ErrLengthMismatch, ErrBadWeight, ErrZeroWeights,
// ErrTooFewObservations, ErrSingular, matrix.ErrNaNInf.
func WLS(x, y, w []float64) (Fit, error) {
	if len(x) != len(y) || len(x) != len(w) {
		return Fit{}, estimateErrorf(opWLS, ErrLengthMismatch)
	}
	if _, err := checkWeights(w); err != nil {
		return Fit{}, estimateErrorf(opWLS, err)
	}
	f, err := normalEquations(x, y, w)
	if err != nil {
		return Fit{}, estimateErrorf(opWLS, err)
	}

	return f, nil
}

// normalEquations solves (XᵗWX)β = XᵗWy for the centred design
// X = [1, x − x̄_w]. The two columns are W-orthogonal, so the system stays
// well conditioned however far x sits from zero; the intercept is recovered
// as β₀ − β₁·x̄_w. w == nil means unit weights.
func normalEquations(x, y, w []float64) (Fit, error) {
	n := len(x)
	if err := checkFinite(x, y); err != nil {
		return Fit{}, err
	}
	var sw, xbar, wi float64
	used := 0
	for i := 0; i < n; i++ {
		wi = weightAt(w, i)
		if wi > 0 {
			used++
		}
		sw += wi
		xbar += wi * x[i]
	}
	xbar /= sw

	design := make([]float64, 2*n)   // rows [1, x_i − x̄]
	weighted := make([]float64, 2*n) // rows w_i·[1, x_i − x̄]
	var xc float64
	for i := 0; i < n; i++ {
		wi = weightAt(w, i)
		xc = x[i] - xbar
		design[2*i], design[2*i+1] = 1, xc
		weighted[2*i], weighted[2*i+1] = wi, wi*xc
	}

	X, err := matrix.NewDenseFrom(n, 2, design)
	if err != nil {
		return Fit{}, err
	}
	WX, err := matrix.NewDenseFrom(n, 2, weighted)
	if err != nil {
		return Fit{}, err
	}
	XtW, err := matrix.Transpose(WX)
	if err != nil {
		return Fit{}, err
	}
	XtWX, err := matrix.Mul(XtW, X)
	if err != nil {
		return Fit{}, err
	}
	XtWy, err := matrix.MatVec(XtW, y)
	if err != nil {
		return Fit{}, translate(err)
	}
	beta, err := matrix.Solve(XtWX, XtWy)
	if err != nil {
		return Fit{}, translate(err)
	}

	f := Fit{Intercept: beta[0] - beta[1]*xbar, Slope: beta[1], N: used}
	f.RSquared = rSquared(x, y, w, f)

	return f, nil
}

func weightAt(w []float64, i int) float64 {
	if w == nil {
		return 1
	}

	return w[i]
}

// rSquared returns 1 − SS_res/SS_tot with optional weights. A constant
// response (SS_tot = 0) is fitted exactly by the intercept and reports 1.
func rSquared(x, y, w []float64, f Fit) float64 {
	var sw, my, wi float64
	for i := range y {
		wi = weightAt(w, i)
		sw += wi
		my += wi * y[i]
	}
	my /= sw

	var res, tot, d float64
	for i := range y {
		wi = weightAt(w, i)
		d = y[i] - f.Predict(x[i])
		res += wi * d * d
		d = y[i] - my
		tot += wi * d * d
	}
	if tot == 0 {
		return 1
	}

	return 1 - res/tot
}
