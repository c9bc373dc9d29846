// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dropcorr/dropout"
	"github.com/katalvlaran/dropcorr/population"
)

// DefaultSamples is the number of rows drawn per run.
const DefaultSamples = 1000

// Config holds every parameter of one run. The zero Seed selects
// rng.DefaultSeed.
type Config struct {
	Seed    uint64 `mapstructure:"seed" yaml:"seed"`
	Samples int    `mapstructure:"samples" yaml:"samples"`

	// Population: Σ = [[Var1, Cov], [Cov, Var2]], μ = (Mean1, Mean2).
	Var1  float64 `mapstructure:"var1" yaml:"var1"`
	Var2  float64 `mapstructure:"var2" yaml:"var2"`
	Cov   float64 `mapstructure:"cov" yaml:"cov"`
	Mean1 float64 `mapstructure:"mean1" yaml:"mean1"`
	Mean2 float64 `mapstructure:"mean2" yaml:"mean2"`

	// Dropout curve.
	Midpoint float64 `mapstructure:"midpoint" yaml:"midpoint"`
	Scale    float64 `mapstructure:"scale" yaml:"scale"`

	// Row-weight multiplier Beta(WeightAlpha, WeightBeta).
	WeightAlpha float64 `mapstructure:"weight_alpha" yaml:"weight_alpha"`
	WeightBeta  float64 `mapstructure:"weight_beta" yaml:"weight_beta"`
}

// DefaultConfig returns the fixed experiment: N = 1000, Σ = [[1, 3.6], [3.6, 16]],
// μ = (5, 12), logistic midpoint 3 and scale 0.5, weights Beta(1, 0.1).
func DefaultConfig() Config {
	return Config{
		Samples:     DefaultSamples,
		Var1:        population.DefaultVar1,
		Var2:        population.DefaultVar2,
		Cov:         population.DefaultCov,
		Mean1:       population.DefaultMean1,
		Mean2:       population.DefaultMean2,
		Midpoint:    dropout.DefaultMidpoint,
		Scale:       dropout.DefaultScale,
		WeightAlpha: dropout.DefaultWeightAlpha,
		WeightBeta:  dropout.DefaultWeightBeta,
	}
}

// Logistic returns the dropout curve described by c.
func (c Config) Logistic() dropout.Logistic {
	return dropout.Logistic{Midpoint: c.Midpoint, Scale: c.Scale}
}

// Validate checks the scalar parameters. Positive definiteness of Σ is
// left to population.New.
func (c Config) Validate() error {
	if c.Samples < 2 {
		return fmt.Errorf("%w: samples = %d, need at least 2", ErrInvalidConfig, c.Samples)
	}
	finite := []struct {
		name string
		v    float64
	}{
		{"var1", c.Var1}, {"var2", c.Var2}, {"cov", c.Cov},
		{"mean1", c.Mean1}, {"mean2", c.Mean2},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if err := c.Logistic().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !(c.WeightAlpha > 0) || !(c.WeightBeta > 0) ||
		math.IsInf(c.WeightAlpha, 0) || math.IsInf(c.WeightBeta, 0) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, dropout.ErrBadBetaParams)
	}

	return nil
}
