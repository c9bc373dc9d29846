// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dropcorr/matrix"
)

const epsTight = 1e-12

// ------------------------------
// Means / centering
// ------------------------------

func TestCenterColumns_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	Yf, meansF, err := matrix.CenterColumns(X)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	if err != nil {
		t.Fatalf("slow: %v", err)
	}

	want := []float64{5.5, 11, 16.5}
	sliceClose(t, meansF, want, 0, 0)
	sliceClose(t, meansS, want, 0, 0)
	CompareClose(t, Yf, Ys, 0, 0)

	// Column averages of Y ≈ 0.
	var i, j int
	var sum float64
	for j = 0; j < 3; j++ {
		sum = 0.0
		for i = 0; i < 2; i++ {
			sum += MustAt(t, Yf, i, j)
		}
		if math.Abs(sum/2) > epsTight {
			t.Fatalf("col %d not centered: avg=%g", j, sum/2)
		}
	}
}

// ------------------------------
// Covariance / Correlation
// ------------------------------

func TestCovariance_MatchesGonum(t *testing.T) {
	t.Parallel()

	X := randomDense(t, 50, 3, 7)
	got, _, err := matrix.Covariance(X)
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}

	var ref mat.SymDense
	stat.CovarianceMatrix(&ref, mat.NewDense(50, 3, X.RawData()), nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if d := math.Abs(MustAt(t, got, i, j) - ref.At(i, j)); d > epsTight {
				t.Fatalf("Cov[%d,%d]=%g, gonum %g", i, j, MustAt(t, got, i, j), ref.At(i, j))
			}
		}
	}
}

func TestCorrelation_MatchesGonumAndUnitDiagonal(t *testing.T) {
	t.Parallel()

	X := randomDense(t, 40, 2, 11)
	C, means, stds, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if len(means) != 2 || len(stds) != 2 {
		t.Fatalf("means/stds length: %d/%d", len(means), len(stds))
	}

	x, _ := X.Col(0)
	y, _ := X.Col(1)
	want := stat.Correlation(x, y, nil)
	if d := math.Abs(MustAt(t, C, 0, 1) - want); d > epsTight {
		t.Fatalf("Corr[0,1]=%g, gonum %g", MustAt(t, C, 0, 1), want)
	}
	if MustAt(t, C, 0, 0) != 1 || MustAt(t, C, 1, 1) != 1 {
		t.Fatalf("diagonal must be exactly 1: %v", C)
	}
	if MustAt(t, C, 0, 1) != MustAt(t, C, 1, 0) {
		t.Fatalf("correlation must be symmetric: %v", C)
	}
}

func TestCorrelation_DegenerateColumnZeroed(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{1, 5, 2, 5, 3, 5})
	C, _, stds, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if stds[1] != 0 {
		t.Fatalf("std of constant column = %g", stds[1])
	}
	if MustAt(t, C, 1, 1) != 0 || MustAt(t, C, 0, 1) != 0 {
		t.Fatalf("degenerate column must be zeroed: %v", C)
	}
	if MustAt(t, C, 0, 0) != 1 {
		t.Fatalf("non-degenerate diagonal must be 1: %v", C)
	}
}

func TestCovariance_TooFewRows(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 1, 2, []float64{1, 2})
	if _, _, err := matrix.Covariance(X); !errors.Is(err, matrix.ErrTooFewRows) {
		t.Fatalf("Covariance: want ErrTooFewRows, got %v", err)
	}
	if _, _, _, err := matrix.Correlation(X); !errors.Is(err, matrix.ErrTooFewRows) {
		t.Fatalf("Correlation: want ErrTooFewRows, got %v", err)
	}
}

// ------------------------------
// Weighted statistics
// ------------------------------

func TestWeightedCorrelation_EqualWeightsMatchPearson(t *testing.T) {
	t.Parallel()

	X := randomDense(t, 64, 2, 3)
	C, _, _, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	for _, w0 := range []float64{1, 0.25, 7} {
		w := make([]float64, 64)
		for i := range w {
			w[i] = w0
		}
		W, err := matrix.WeightedCorrelation(X, w)
		if err != nil {
			t.Fatalf("WeightedCorrelation(w=%g): %v", w0, err)
		}
		CompareClose(t, W, C, 0, epsTight)
	}
}

func TestWeightedCorrelation_MatchesGonum(t *testing.T) {
	t.Parallel()

	X := randomDense(t, 30, 2, 5)
	w := make([]float64, 30)
	for i := range w {
		w[i] = float64(i%4) * 0.5 // includes zero weights
	}
	W, err := matrix.WeightedCorrelation(X, w)
	if err != nil {
		t.Fatalf("WeightedCorrelation: %v", err)
	}
	x, _ := X.Col(0)
	y, _ := X.Col(1)
	want := stat.Correlation(x, y, w)
	if d := math.Abs(MustAt(t, W, 0, 1) - want); d > 1e-10 {
		t.Fatalf("weighted corr %g, gonum %g", MustAt(t, W, 0, 1), want)
	}
}

func TestWeightedCovariance_Errors(t *testing.T) {
	t.Parallel()

	X := randomDense(t, 4, 2, 1)
	cases := []struct {
		name string
		w    []float64
		want error
	}{
		{"short", []float64{1, 1}, matrix.ErrDimensionMismatch},
		{"negative", []float64{1, -1, 1, 1}, matrix.ErrInvalidWeight},
		{"nan", []float64{1, math.NaN(), 1, 1}, matrix.ErrInvalidWeight},
		{"all zero", []float64{0, 0, 0, 0}, matrix.ErrZeroWeights},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := matrix.WeightedCovariance(X, tc.w); !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

// ------------------------------
// Covariance → correlation
// ------------------------------

func TestCovarianceToCorrelation_Default(t *testing.T) {
	t.Parallel()

	S := NewFilledDense(t, 2, 2, []float64{1, 3.6, 3.6, 16})
	R, err := matrix.CovarianceToCorrelation(S)
	if err != nil {
		t.Fatalf("CovarianceToCorrelation: %v", err)
	}
	if MustAt(t, R, 0, 0) != 1 || MustAt(t, R, 1, 1) != 1 {
		t.Fatalf("diagonal must be 1: %v", R)
	}
	if d := math.Abs(MustAt(t, R, 0, 1) - 0.9); d > epsTight {
		t.Fatalf("rho_12=%g, want 0.9", MustAt(t, R, 0, 1))
	}
	// Input untouched.
	if MustAt(t, S, 1, 1) != 16 {
		t.Fatal("input mutated")
	}
}

func TestCovarianceToCorrelation_Errors(t *testing.T) {
	t.Parallel()

	if _, err := matrix.CovarianceToCorrelation(NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})); !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("asymmetric: want ErrAsymmetry, got %v", err)
	}
	if _, err := matrix.CovarianceToCorrelation(NewFilledDense(t, 2, 2, []float64{0, 0, 0, 1})); !errors.Is(err, matrix.ErrNotPositiveDefinite) {
		t.Fatalf("zero variance: want ErrNotPositiveDefinite, got %v", err)
	}
	if _, err := matrix.CovarianceToCorrelation(MustDense(t, 2, 3)); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("non-square: want ErrNonSquare, got %v", err)
	}
}
