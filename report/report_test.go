// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dropcorr/experiment"
	"github.com/katalvlaran/dropcorr/report"
)

func result(t *testing.T) *experiment.Result {
	t.Helper()
	cfg := experiment.DefaultConfig()
	cfg.Seed = 11
	res, err := experiment.Run(cfg, nil)
	require.NoError(t, err)

	return res
}

func TestRenderTables(t *testing.T) {
	t.Parallel()
	res := result(t)
	var buf bytes.Buffer
	require.NoError(t, report.RenderTables(&buf, res, report.WithTitle("seed 11: ")))

	out := buf.String()
	for _, title := range []string{"POPULATION", "DATA (first 5 rows)", "DROPOUT", "CORRELATION", "REGRESSION y ~ x"} {
		assert.Contains(t, out, "seed 11: "+title)
	}
	assert.Contains(t, out, "3.6")
	assert.Contains(t, out, "0.9000")
	assert.Contains(t, out, "WLS")
	assert.Contains(t, out, "complete cases")
}

func TestRenderTables_NoHead(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, report.RenderTables(&buf, result(t), report.WithHeadRows(0)))
	assert.NotContains(t, buf.String(), "DATA (first")

	assert.ErrorIs(t, report.RenderTables(&buf, nil), report.ErrNilResult)
	assert.PanicsWithValue(t, "report: WithHeadRows: n must be >= 0", func() { report.WithHeadRows(-1) })
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	res := result(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, res))
	assert.True(t, strings.HasPrefix(buf.String(), "config:\n  seed: 11\n"), buf.String())

	var got report.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, res.Config, got.Config)
	assert.Equal(t, [][]float64{{1, 3.6}, {3.6, 16}}, got.Covariance)
	assert.InDelta(t, 0.9, got.Correlations.Population, 1e-15)
	assert.Equal(t, res.Correlations.Weighted, got.Correlations.Weighted)
	assert.Equal(t, res.Fits.Weighted.N, got.Fits["wls_weighted"].N)
	assert.Equal(t, res.Fits.Clean.Slope, got.Fits["ols_clean"].Slope)
	assert.Equal(t, res.CompleteRows, got.CompleteRows)

	assert.ErrorIs(t, report.WriteYAML(&buf, nil), report.ErrNilResult)
}
