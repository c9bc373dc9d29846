// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the kernels on the estimator
// hot path, using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dropcorr/matrix"
)

// benchRows are the sample sizes to benchmark (N×2 data, as in the experiment).
var benchRows = []int{1000, 10000, 100000}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkD *matrix.Dense
)

func benchData(b *testing.B, r, c int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for k := range data {
		data[k] = rng.NormFloat64()
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkCorrelation(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			X := benchData(b, n, 2, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, _, _, err := matrix.Correlation(X)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = C
			}
		})
	}
}

func BenchmarkWeightedCorrelation(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			X := benchData(b, n, 2, 4242)
			w := make([]float64, n)
			for k := range w {
				w[k] = float64(k%3) + 0.5
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.WeightedCorrelation(X, w)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = C
			}
		})
	}
}

// BenchmarkNormalEquations times XᵗX, Xᵗ1 and the 2×2 solve.
func BenchmarkNormalEquations(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			X := benchData(b, n, 2, 7)
			ones := make([]float64, n)
			for k := range ones {
				ones[k] = 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Xt, err := matrix.Transpose(X)
				if err != nil {
					b.Fatal(err)
				}
				XtX, err := matrix.Mul(Xt, X)
				if err != nil {
					b.Fatal(err)
				}
				rhs, err := matrix.MatVec(Xt, ones)
				if err != nil {
					b.Fatal(err)
				}
				beta, err := matrix.Solve(XtX, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = beta
			}
		})
	}
}
