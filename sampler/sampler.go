// SPDX-License-Identifier: MIT

// Package sampler draws N×d expression matrices from a multivariate normal
// population.
//
// Sampling goes through gonum's distmv.Normal: Σ is Cholesky-factored once
// (Σ = L·Lᵀ) and each row is μ + L·e with e a vector of independent standard
// normals. All randomness comes from the caller's rand.Source; a nil source
// means the rng package's default stream, never the global generator.
//
// Rows are drawn in order 0..N-1, so the same seed yields a bit-identical
// matrix, and a prefix of a longer draw equals a shorter draw.
package sampler

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/katalvlaran/dropcorr/matrix"
	"github.com/katalvlaran/dropcorr/population"
	"github.com/katalvlaran/dropcorr/rng"
)

var (
	// ErrBadCount is returned when the requested sample count is not positive.
	ErrBadCount = errors.New("sampler: sample count must be > 0")

	// ErrNotPositiveDefinite is returned when the Cholesky step rejects Σ.
	ErrNotPositiveDefinite = errors.New("sampler: covariance is not positive definite")

	// ErrNilPopulation is returned when no population is supplied.
	ErrNilPopulation = errors.New("sampler: nil population")
)

func samplerErrorf(op string, err error) error {
	return fmt.Errorf("sampler.%s: %w", op, err)
}

// Sampler draws rows from one population with one source.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	dim    int
	normal *distmv.Normal
}

// New prepares a sampler for p reading from src.
func New(p *population.Population, src rand.Source) (*Sampler, error) {
	if p == nil {
		return nil, samplerErrorf("New", ErrNilPopulation)
	}
	if src == nil {
		src = rng.NewSource(0)
	}
	normal, ok := distmv.NewNormal(p.Mean(), symmetric(p.Covariance()), src)
	if !ok {
		return nil, samplerErrorf("New", ErrNotPositiveDefinite)
	}

	return &Sampler{dim: p.Dim(), normal: normal}, nil
}

// Draw returns the next n rows as an n×d matrix.
func (s *Sampler) Draw(n int) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, samplerErrorf("Draw", ErrBadCount)
	}
	data := make([]float64, n*s.dim)
	for i := 0; i < n; i++ {
		s.normal.Rand(data[i*s.dim : (i+1)*s.dim])
	}
	z, err := matrix.NewDenseFrom(n, s.dim, data)
	if err != nil {
		return nil, samplerErrorf("Draw", err)
	}

	return z, nil
}

// Sample draws n rows from p using src. It is shorthand for New then Draw.
//
// Errors: ErrNilPopulation, ErrBadCount, ErrNotPositiveDefinite.
func Sample(p *population.Population, n int, src rand.Source) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, samplerErrorf("Sample", ErrBadCount)
	}
	s, err := New(p, src)
	if err != nil {
		return nil, err
	}

	return s.Draw(n)
}

// symmetric copies a square Dense into a gonum SymDense (upper triangle used).
func symmetric(sigma *matrix.Dense) *mat.SymDense {
	n := sigma.Rows()

	return mat.NewSymDense(n, sigma.RawData())
}
