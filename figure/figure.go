// SPDX-License-Identifier: MIT

// Package figure draws the scatter plots and fitted regression lines of a
// run with gonum/plot.
package figure

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg and tiff canvases
	_ "gonum.org/v1/plot/vg/vgsvg" // svg canvas

	"github.com/katalvlaran/dropcorr/estimate"
	"github.com/katalvlaran/dropcorr/experiment"
)

// Default canvas size.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// File names written by SaveAll.
const (
	CleanFile   = "clean.png"
	DroppedFile = "dropped.png"
)

var (
	// ErrLengthMismatch indicates x and y of different lengths.
	ErrLengthMismatch = errors.New("figure: x and y lengths differ")

	// ErrNilResult indicates a nil experiment result.
	ErrNilResult = errors.New("figure: nil result")
)

// Line is a fitted line drawn over a scatter.
type Line struct {
	Label string
	Fit   estimate.Fit
}

// Scatter plots the points (x[i], y[i]) and one line per fit. Lines
// span the visible x range.
func Scatter(title string, x, y []float64, lines ...Line) (*plot.Plot, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Legend.Top = true
	p.Legend.Left = true

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("figure: scatter: %w", err)
	}
	s.GlyphStyle.Color = color.RGBA{R: 80, G: 80, B: 80, A: 160}
	s.GlyphStyle.Radius = vg.Points(1.5)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	for i, l := range lines {
		fit := l.Fit
		f := plotter.NewFunction(fit.Predict)
		f.Color = plotutil.Color(i)
		f.Width = vg.Points(2)
		f.Dashes = plotutil.Dashes(i)
		p.Add(f)
		p.Legend.Add(fmt.Sprintf("%s: y = %.2f + %.2f x", l.Label, fit.Intercept, fit.Slope), f)
	}

	return p, nil
}

// Clean plots Z with its OLS line.
func Clean(res *experiment.Result) (*plot.Plot, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	x, _ := res.Z.Col(0)
	y, _ := res.Z.Col(1)

	return Scatter(fmt.Sprintf("Clean sample, r = %.3f", res.Correlations.Clean), x, y,
		Line{Label: "OLS", Fit: res.Fits.Clean})
}

// Dropped plots Zdrop with the naive OLS and the weighted WLS lines.
func Dropped(res *experiment.Result) (*plot.Plot, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	x, _ := res.Dropped.Col(0)
	y, _ := res.Dropped.Col(1)

	return Scatter(fmt.Sprintf("After dropout, r = %.3f, weighted r = %.3f",
		res.Correlations.Dropped, res.Correlations.Weighted), x, y,
		Line{Label: "OLS", Fit: res.Fits.Dropped},
		Line{Label: "WLS", Fit: res.Fits.Weighted})
}

// Write renders p in the given format ("png", "svg", "pdf", ...) to w.
func Write(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, format)
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// SaveAll writes CleanFile and DroppedFile into dir and returns their paths.
func SaveAll(dir string, res *experiment.Result) ([]string, error) {
	builders := []struct {
		name  string
		build func(*experiment.Result) (*plot.Plot, error)
	}{
		{CleanFile, Clean},
		{DroppedFile, Dropped},
	}
	paths := make([]string, 0, len(builders))
	for _, b := range builders {
		p, err := b.build(res)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, b.name)
		if err = p.Save(DefaultWidth, DefaultHeight, path); err != nil {
			return paths, fmt.Errorf("figure: save %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
