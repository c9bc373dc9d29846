// SPDX-License-Identifier: MIT

package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dropcorr/estimate"
	"github.com/katalvlaran/dropcorr/experiment"
	"github.com/katalvlaran/dropcorr/matrix"
)

// Summary is the machine-readable form of a run.
type Summary struct {
	Config       experiment.Config `yaml:"config"`
	Covariance   [][]float64       `yaml:"covariance"`
	Correlation  [][]float64       `yaml:"correlation"`
	DropoutRates []float64         `yaml:"dropout_rates,flow"`
	CompleteRows int               `yaml:"complete_rows"`
	Correlations CorrelationBlock  `yaml:"correlations"`
	Fits         map[string]FitRow `yaml:"fits"`
}

// CorrelationBlock mirrors experiment.Correlations.
type CorrelationBlock struct {
	Population   float64 `yaml:"population"`
	Clean        float64 `yaml:"clean"`
	Dropped      float64 `yaml:"dropped"`
	CompleteCase float64 `yaml:"complete_case"`
	Weighted     float64 `yaml:"weighted"`
}

// FitRow is one fitted line.
type FitRow struct {
	Intercept float64 `yaml:"intercept"`
	Slope     float64 `yaml:"slope"`
	RSquared  float64 `yaml:"r_squared"`
	N         int     `yaml:"n"`
}

// Summarize collects the scalar outputs of res.
func Summarize(res *experiment.Result) (*Summary, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	c := res.Correlations

	return &Summary{
		Config:       res.Config,
		Covariance:   rows(res.Population.Covariance()),
		Correlation:  rows(res.Population.Correlation()),
		DropoutRates: append([]float64(nil), res.DropoutRates...),
		CompleteRows: res.CompleteRows,
		Correlations: CorrelationBlock{
			Population:   res.Population.OffDiagonal(),
			Clean:        c.Clean,
			Dropped:      c.Dropped,
			CompleteCase: c.CompleteCase,
			Weighted:     c.Weighted,
		},
		Fits: map[string]FitRow{
			"ols_clean":    fitRow(res.Fits.Clean),
			"ols_dropped":  fitRow(res.Fits.Dropped),
			"wls_weighted": fitRow(res.Fits.Weighted),
		},
	}, nil
}

// WriteYAML encodes the Summary of res to w.
func WriteYAML(w io.Writer, res *experiment.Result) error {
	s, err := Summarize(res)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(s); err != nil {
		return err
	}

	return enc.Close()
}

func fitRow(f estimate.Fit) FitRow {
	return FitRow{Intercept: f.Intercept, Slope: f.Slope, RSquared: f.RSquared, N: f.N}
}

func rows(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i], _ = m.Row(i)
	}

	return out
}
