// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/dropcorr/estimate"
	"github.com/katalvlaran/dropcorr/experiment"
	"github.com/katalvlaran/dropcorr/matrix"
)

// ErrNilResult is returned when there is nothing to report.
var ErrNilResult = errors.New("report: nil result")

var columnNames = []string{"x", "y"}

// RenderTables writes the population, data head, dropout, correlation and
// regression tables of res to w.
func RenderTables(w io.Writer, res *experiment.Result, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	o := gatherOptions(opts...)

	sigma := res.Population.Covariance()
	rho := res.Population.Correlation()
	render(w, o.title+"POPULATION", matrixTable(
		table.Row{"", "Σ x", "Σ y", "ρ x", "ρ y"}, sigma, rho))

	if o.headRows > 0 {
		render(w, o.title+"DATA (first "+strconv.Itoa(min(o.headRows, res.Z.Rows()))+" rows)",
			headTable(res, o.headRows))
	}

	t := newTable(table.Row{"Column", "Dropout rate"})
	for j, rate := range res.DropoutRates {
		t.AppendRow(table.Row{columnNames[j], fmt.Sprintf("%.4f", rate)})
	}
	t.AppendFooter(table.Row{"complete rows", fmt.Sprintf("%d / %d", res.CompleteRows, res.Z.Rows())})
	render(w, o.title+"DROPOUT", t)

	t = newTable(table.Row{"Estimator", "Data", "r"})
	c := res.Correlations
	t.AppendRows([]table.Row{
		{"population", "ρ", fmt.Sprintf("%.4f", res.Population.OffDiagonal())},
		{"Pearson", "Z", fmt.Sprintf("%.4f", c.Clean)},
		{"Pearson", "Zdrop", fmt.Sprintf("%.4f", c.Dropped)},
		{"Pearson", "complete cases", fmt.Sprintf("%.4f", c.CompleteCase)},
		{"weighted", "Zdrop, w", fmt.Sprintf("%.4f", c.Weighted)},
	})
	render(w, o.title+"CORRELATION", t)

	t = newTable(table.Row{"Model", "Data", "Intercept", "Slope", "R²", "N"})
	for _, f := range []struct {
		model, data string
		fit         estimate.Fit
	}{
		{"OLS", "Z", res.Fits.Clean},
		{"OLS", "Zdrop", res.Fits.Dropped},
		{"WLS", "Zdrop, w", res.Fits.Weighted},
	} {
		t.AppendRow(table.Row{f.model, f.data,
			fmt.Sprintf("%.4f", f.fit.Intercept),
			fmt.Sprintf("%.4f", f.fit.Slope),
			fmt.Sprintf("%.4f", f.fit.RSquared),
			f.fit.N})
	}
	render(w, o.title+"REGRESSION y ~ x", t)

	return nil
}

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(header)
	t.SetStyle(table.StyleLight)
	configs := make([]table.ColumnConfig, len(header))
	for i := range header {
		configs[i] = table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignCenter}
		if i > 0 {
			configs[i].Align = text.AlignRight
		}
	}
	t.SetColumnConfigs(configs)

	return t
}

func render(w io.Writer, title string, t table.Writer) {
	t.SetTitle("%s", title)
	t.SetOutputMirror(w)
	t.Render()
}

// matrixTable lays the 2×2 matrices side by side, one row per variable.
func matrixTable(header table.Row, ms ...*matrix.Dense) table.Writer {
	t := newTable(header)
	for i := 0; i < ms[0].Rows(); i++ {
		row := table.Row{columnNames[i]}
		for _, m := range ms {
			vals, _ := m.Row(i)
			for _, v := range vals {
				row = append(row, strconv.FormatFloat(v, 'g', 6, 64))
			}
		}
		t.AppendRow(row)
	}

	return t
}

func headTable(res *experiment.Result, n int) table.Writer {
	t := newTable(table.Row{"#", "Z x", "Z y", "P x", "P y", "Zind x", "Zind y", "Zdrop x", "Zdrop y", "w"})
	n = min(n, res.Z.Rows())
	for i := 0; i < n; i++ {
		row := table.Row{i}
		for _, m := range []*matrix.Dense{res.Z, res.Prob, res.Indicator, res.Dropped} {
			vals, _ := m.Row(i)
			for _, v := range vals {
				row = append(row, fmt.Sprintf("%.4f", v))
			}
		}
		t.AppendRow(append(row, fmt.Sprintf("%.4f", res.Weights[i])))
	}

	return t
}
