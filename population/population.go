// SPDX-License-Identifier: MIT

package population

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dropcorr/matrix"
)

// Fixed constants of the experiment: two genes with variances 1 and 16,
// covariance 3.6 (so ρ = 3.6 / (1·4) = 0.9) and means 5 and 12.
const (
	DefaultVar1  = 1.0
	DefaultVar2  = 16.0
	DefaultCov   = 3.6
	DefaultMean1 = 5.0
	DefaultMean2 = 12.0
)

var (
	// ErrNotPositiveDefinite is returned when Σ fails the Cholesky check.
	// The matrix-level cause (matrix.ErrNotPositiveDefinite) stays in the chain.
	ErrNotPositiveDefinite = errors.New("population: covariance is not positive definite")

	// ErrMeanLength is returned when len(mean) differs from the dimension of Σ.
	ErrMeanLength = errors.New("population: mean length does not match covariance")

	// ErrNonFiniteMean is returned when a mean component is NaN or ±Inf.
	ErrNonFiniteMean = errors.New("population: mean must be finite")
)

const (
	opNewCovariance = "NewCovariance"
	opNew           = "New"
)

func populationErrorf(op string, err error) error {
	return fmt.Errorf("population.%s: %w", op, err)
}

// Population is an immutable multivariate normal population: its mean μ,
// covariance Σ and the derived correlation ρ = D^-1/2 Σ D^-1/2.
type Population struct {
	mean  []float64
	sigma *matrix.Dense
	rho   *matrix.Dense
}

// NewCovariance builds the 2×2 covariance [[var1, cov], [cov, var2]] and
// checks it is positive definite.
func NewCovariance(var1, var2, cov float64) (*matrix.Dense, error) {
	sigma, err := matrix.NewDenseFrom(2, 2, []float64{var1, cov, cov, var2})
	if err != nil {
		return nil, populationErrorf(opNewCovariance, err)
	}
	if err = checkPositiveDefinite(sigma); err != nil {
		return nil, populationErrorf(opNewCovariance, err)
	}

	return sigma, nil
}

// New validates mean and sigma and derives the correlation matrix.
// Both inputs are copied; later changes by the caller do not leak in.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrMeanLength,
// ErrNonFiniteMean, matrix.ErrAsymmetry, ErrNotPositiveDefinite.
func New(mean []float64, sigma *matrix.Dense) (*Population, error) {
	if err := matrix.ValidateSquareNonNil(sigma); err != nil {
		return nil, populationErrorf(opNew, err)
	}
	if len(mean) != sigma.Rows() {
		return nil, populationErrorf(opNew, ErrMeanLength)
	}
	for _, m := range mean {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, populationErrorf(opNew, ErrNonFiniteMean)
		}
	}
	if err := checkPositiveDefinite(sigma); err != nil {
		return nil, populationErrorf(opNew, err)
	}
	rho, err := matrix.CovarianceToCorrelation(sigma)
	if err != nil {
		return nil, populationErrorf(opNew, err)
	}

	return &Population{
		mean:  append([]float64(nil), mean...),
		sigma: sigma.Clone().(*matrix.Dense),
		rho:   rho,
	}, nil
}

// checkPositiveDefinite passes symmetry errors through and tags a failed
// Cholesky with ErrNotPositiveDefinite while keeping the matrix cause.
func checkPositiveDefinite(sigma *matrix.Dense) error {
	err := matrix.ValidatePositiveDefinite(sigma)
	if err == nil {
		return nil
	}
	if errors.Is(err, matrix.ErrNotPositiveDefinite) {
		return fmt.Errorf("%w: %w", ErrNotPositiveDefinite, err)
	}

	return err
}

// MustNew is like New but panics on error. Intended for fixed constants.
func MustNew(mean []float64, sigma *matrix.Dense) *Population {
	p, err := New(mean, sigma)
	if err != nil {
		panic(err)
	}

	return p
}

// Default returns the fixed population: μ = (5, 12), Σ = [[1, 3.6], [3.6, 16]].
func Default() *Population {
	sigma, err := NewCovariance(DefaultVar1, DefaultVar2, DefaultCov)
	if err != nil {
		panic(err)
	}

	return MustNew([]float64{DefaultMean1, DefaultMean2}, sigma)
}

// Dim returns the number of variables.
func (p *Population) Dim() int { return len(p.mean) }

// Mean returns a copy of μ.
func (p *Population) Mean() []float64 { return append([]float64(nil), p.mean...) }

// Covariance returns a copy of Σ.
func (p *Population) Covariance() *matrix.Dense { return p.sigma.Clone().(*matrix.Dense) }

// Correlation returns a copy of ρ.
func (p *Population) Correlation() *matrix.Dense { return p.rho.Clone().(*matrix.Dense) }

// OffDiagonal returns ρ_12, the population correlation between the first two
// variables. Single-variable populations report 1.
func (p *Population) OffDiagonal() float64 {
	if p.Dim() < 2 {
		return 1
	}
	v, _ := p.rho.At(0, 1)

	return v
}
