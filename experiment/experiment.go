// SPDX-License-Identifier: MIT

package experiment

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/dropcorr/dropout"
	"github.com/katalvlaran/dropcorr/estimate"
	"github.com/katalvlaran/dropcorr/matrix"
	"github.com/katalvlaran/dropcorr/population"
	"github.com/katalvlaran/dropcorr/rng"
	"github.com/katalvlaran/dropcorr/sampler"
)

// Correlations are the x–y correlation estimates of one run.
type Correlations struct {
	Clean        float64 // Pearson on Z
	Dropped      float64 // Pearson on Zdrop
	CompleteCase float64 // Pearson on the rows of Z kept in both columns
	Weighted     float64 // WeightedPearson on Zdrop with w
}

// Fits are the regressions of column 2 on column 1.
type Fits struct {
	Clean    estimate.Fit // OLS on Z
	Dropped  estimate.Fit // OLS on Zdrop
	Weighted estimate.Fit // WLS on Zdrop with w
}

// Result is everything one run produced. Matrices are owned by the Result.
type Result struct {
	Config     Config // as run, Seed resolved
	Population *population.Population

	Z         *matrix.Dense // N×2 clean draws
	Prob      *matrix.Dense // f(|Z|)
	Indicator *matrix.Dense // 1 kept, 0 dropped
	Dropped   *matrix.Dense // Z with dropped cells zeroed
	Weights   []float64     // per-row weights

	// DropoutRates holds the dropped fraction per column.
	DropoutRates []float64
	// CompleteRows counts the rows kept in every column.
	CompleteRows int
	// SampleCorrelation is the full correlation matrix of Z.
	SampleCorrelation *matrix.Dense

	Correlations Correlations
	Fits         Fits
}

// Run executes the pipeline for cfg. A nil logger discards stage logs.
//
// Errors: ErrInvalidConfig, population.ErrNotPositiveDefinite,
// estimate.ErrSingular, estimate.ErrZeroWeights,
// estimate.ErrTooFewObservations, estimate.ErrDegenerate. Each is wrapped
// with the failing stage.
func Run(cfg Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, experimentErrorf(stageConfig, err)
	}
	streams := rng.NewSet(cfg.Seed)
	cfg.Seed = streams.Seed
	log := logger.With(zap.Uint64("seed", cfg.Seed))

	res := &Result{Config: cfg}
	var err error

	sigma, err := population.NewCovariance(cfg.Var1, cfg.Var2, cfg.Cov)
	if err != nil {
		return nil, experimentErrorf(stagePop, err)
	}
	if res.Population, err = population.New([]float64{cfg.Mean1, cfg.Mean2}, sigma); err != nil {
		return nil, experimentErrorf(stagePop, err)
	}
	log.Debug("population ready", zap.Float64("rho", res.Population.OffDiagonal()))

	if res.Z, err = sampler.Sample(res.Population, cfg.Samples, streams.Sampler); err != nil {
		return nil, experimentErrorf(stageSample, err)
	}
	if res.SampleCorrelation, err = estimate.CorrelationMatrix(res.Z); err != nil {
		return nil, experimentErrorf(stageSample, err)
	}
	log.Debug("sampled", zap.Int("rows", res.Z.Rows()))

	inj, err := dropout.Inject(res.Z, streams.Dropout, dropout.WithLogistic(cfg.Logistic()))
	if err != nil {
		return nil, experimentErrorf(stageDropout, err)
	}
	res.Prob, res.Indicator, res.Dropped = inj.Prob, inj.Indicator, inj.Dropped
	if res.DropoutRates, err = dropout.Rates(res.Indicator); err != nil {
		return nil, experimentErrorf(stageDropout, err)
	}
	log.Debug("dropout injected", zap.Float64s("rates", res.DropoutRates))

	if res.Weights, err = dropout.RowWeights(res.Indicator, streams.Weights, cfg.WeightAlpha, cfg.WeightBeta); err != nil {
		return nil, experimentErrorf(stageWeights, err)
	}

	x, y := columns(res.Z)
	if res.Correlations.Clean, err = estimate.Pearson(x, y); err != nil {
		return nil, experimentErrorf(stageClean, err)
	}
	if res.Fits.Clean, err = estimate.OLS(x, y); err != nil {
		return nil, experimentErrorf(stageClean, err)
	}

	xd, yd := columns(res.Dropped)
	if res.Correlations.Dropped, err = estimate.Pearson(xd, yd); err != nil {
		return nil, experimentErrorf(stageDropped, err)
	}
	if res.Fits.Dropped, err = estimate.OLS(xd, yd); err != nil {
		return nil, experimentErrorf(stageDropped, err)
	}

	kept, err := estimate.CompleteCases(res.Z, res.Indicator)
	if err != nil {
		return nil, experimentErrorf(stageKept, err)
	}
	res.CompleteRows = kept.Rows()
	xk, yk := columns(kept)
	if res.Correlations.CompleteCase, err = estimate.Pearson(xk, yk); err != nil {
		return nil, experimentErrorf(stageKept, err)
	}

	if res.Correlations.Weighted, err = estimate.WeightedPearson(xd, yd, res.Weights); err != nil {
		return nil, experimentErrorf(stageWeight, err)
	}
	if res.Fits.Weighted, err = estimate.WLS(xd, yd, res.Weights); err != nil {
		return nil, experimentErrorf(stageWeight, err)
	}

	log.Info("run complete",
		zap.Int("samples", cfg.Samples),
		zap.Int("complete_rows", res.CompleteRows),
		zap.Float64("r_clean", res.Correlations.Clean),
		zap.Float64("r_dropped", res.Correlations.Dropped),
		zap.Float64("r_complete", res.Correlations.CompleteCase),
		zap.Float64("r_weighted", res.Correlations.Weighted),
	)

	return res, nil
}

// columns splits an N×2 matrix. Shapes are guaranteed by the caller.
func columns(m *matrix.Dense) ([]float64, []float64) {
	x, _ := m.Col(0)
	y, _ := m.Col(1)

	return x, y
}
