// SPDX-License-Identifier: MIT

package estimate_test

import (
	"errors"
	"math"
	"testing"

	cv "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dropcorr/estimate"
	"github.com/katalvlaran/dropcorr/matrix"
	"github.com/katalvlaran/dropcorr/population"
	"github.com/katalvlaran/dropcorr/rng"
	"github.com/katalvlaran/dropcorr/sampler"
)

const tol = 1e-12

// nanAt reports NaN at one cell and defers everything else to Dense.
type nanAt struct {
	*matrix.Dense
	i, j int
}

func (m nanAt) At(i, j int) (float64, error) {
	if i == m.i && j == m.j {
		return math.NaN(), nil
	}
	return m.Dense.At(i, j)
}

// columns draws n rows of the default population and splits them.
func columns(t *testing.T, n int, seed uint64) (*matrix.Dense, []float64, []float64) {
	t.Helper()
	z, err := sampler.Sample(population.Default(), n, rng.NewSource(seed))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	x, _ := z.Col(0)
	y, _ := z.Col(1)

	return z, x, y
}

// shouldWrap is a goconvey assertion for errors.Is.
func shouldWrap(actual interface{}, expected ...interface{}) string {
	err, _ := actual.(error)
	target, _ := expected[0].(error)
	if errors.Is(err, target) {
		return ""
	}

	return "expected error wrapping <" + target.Error() + ">, got <" + errString(err) + ">"
}

func errString(err error) string {
	if err == nil {
		return "nil"
	}

	return err.Error()
}

func TestPearson(t *testing.T) {
	_, x, y := columns(t, 1000, 42)

	cv.Convey("Given 1000 draws from the default population", t, func() {
		r, err := estimate.Pearson(x, y)
		cv.So(err, cv.ShouldBeNil)

		cv.Convey("Pearson should agree with gonum stat.Correlation", func() {
			cv.So(r, cv.ShouldAlmostEqual, stat.Correlation(x, y, nil), tol)
		})
		cv.Convey("and sit near the population value 0.9", func() {
			cv.So(r, cv.ShouldAlmostEqual, 0.9, 0.03)
		})
		cv.Convey("and be symmetric in its arguments", func() {
			r2, _ := estimate.Pearson(y, x)
			cv.So(r2, cv.ShouldEqual, r)
		})
	})

	cv.Convey("Given perfectly linear data, Pearson should be exactly ±1", t, func() {
		xs := []float64{1, 2, 3, 4}
		up, err := estimate.Pearson(xs, []float64{3, 5, 7, 9})
		cv.So(err, cv.ShouldBeNil)
		cv.So(up, cv.ShouldAlmostEqual, 1, tol)
		cv.So(up, cv.ShouldBeLessThanOrEqualTo, 1)
		down, _ := estimate.Pearson(xs, []float64{-1, -2, -3, -4})
		cv.So(down, cv.ShouldAlmostEqual, -1, tol)
		cv.So(down, cv.ShouldBeGreaterThanOrEqualTo, -1)
	})

	cv.Convey("Pearson should reject bad input", t, func() {
		_, err := estimate.Pearson([]float64{1, 2}, []float64{1})
		cv.So(err, shouldWrap, estimate.ErrLengthMismatch)
		_, err = estimate.Pearson([]float64{1}, []float64{1})
		cv.So(err, shouldWrap, estimate.ErrTooFewObservations)
		_, err = estimate.Pearson([]float64{2, 2, 2}, []float64{1, 2, 3})
		cv.So(err, shouldWrap, estimate.ErrDegenerate)
		_, err = estimate.Pearson([]float64{1, math.NaN(), 3}, []float64{1, 2, 3})
		cv.So(err, shouldWrap, matrix.ErrNaNInf)
		_, err = estimate.Pearson([]float64{1, 2, 3}, []float64{1, math.Inf(-1), 3})
		cv.So(err, shouldWrap, matrix.ErrNaNInf)
	})
}

func TestWeightedPearson(t *testing.T) {
	_, x, y := columns(t, 500, 7)

	cv.Convey("Given all-equal weights", t, func() {
		r, _ := estimate.Pearson(x, y)
		for _, c := range []float64{1, 0.3, 12} {
			w := make([]float64, len(x))
			for i := range w {
				w[i] = c
			}
			rw, err := estimate.WeightedPearson(x, y, w)
			cv.So(err, cv.ShouldBeNil)
			cv.So(rw, cv.ShouldAlmostEqual, r, tol)
		}
	})

	cv.Convey("Given uneven weights with zeros", t, func() {
		w := make([]float64, len(x))
		for i := range w {
			w[i] = float64(i % 5)
		}
		rw, err := estimate.WeightedPearson(x, y, w)
		cv.So(err, cv.ShouldBeNil)

		cv.Convey("it should agree with gonum's weighted correlation", func() {
			cv.So(rw, cv.ShouldAlmostEqual, stat.Correlation(x, y, w), 1e-10)
		})
		cv.Convey("and zero-weight rows should not matter", func() {
			x2 := append([]float64(nil), x...)
			for i := range x2 {
				if w[i] == 0 {
					x2[i] = 1e6
				}
			}
			rw2, _ := estimate.WeightedPearson(x2, y, w)
			cv.So(rw2, cv.ShouldAlmostEqual, rw, 1e-10)
		})
	})

	cv.Convey("WeightedPearson should reject degenerate weights", t, func() {
		xs, ys := []float64{1, 2, 3}, []float64{2, 4, 7}
		_, err := estimate.WeightedPearson(xs, ys, []float64{0, 0, 0})
		cv.So(err, shouldWrap, estimate.ErrZeroWeights)
		_, err = estimate.WeightedPearson(xs, ys, []float64{1, -1, 1})
		cv.So(err, shouldWrap, estimate.ErrBadWeight)
		_, err = estimate.WeightedPearson(xs, ys, []float64{1, math.NaN(), 1})
		cv.So(err, shouldWrap, estimate.ErrBadWeight)
		_, err = estimate.WeightedPearson(xs, ys, []float64{0, 1, 0})
		cv.So(err, shouldWrap, estimate.ErrTooFewObservations)
		_, err = estimate.WeightedPearson(xs, ys, []float64{1, 1})
		cv.So(err, shouldWrap, estimate.ErrLengthMismatch)
		_, err = estimate.WeightedPearson([]float64{1, math.NaN(), 3}, ys, []float64{1, 1, 1})
		cv.So(err, shouldWrap, matrix.ErrNaNInf)
	})
}

func TestCorrelationMatrices(t *testing.T) {
	z, x, y := columns(t, 300, 3)

	cv.Convey("CorrelationMatrix should carry Pearson off the diagonal", t, func() {
		c, err := estimate.CorrelationMatrix(z)
		cv.So(err, cv.ShouldBeNil)
		r, _ := estimate.Pearson(x, y)
		v, _ := c.At(0, 1)
		cv.So(v, cv.ShouldAlmostEqual, r, tol)
		d, _ := c.At(1, 1)
		cv.So(d, cv.ShouldEqual, 1)
	})

	cv.Convey("WeightedCorrelationMatrix should carry WeightedPearson", t, func() {
		w := make([]float64, len(x))
		for i := range w {
			w[i] = 1 + float64(i%3)
		}
		c, err := estimate.WeightedCorrelationMatrix(z, w)
		cv.So(err, cv.ShouldBeNil)
		r, _ := estimate.WeightedPearson(x, y, w)
		v, _ := c.At(1, 0)
		cv.So(v, cv.ShouldAlmostEqual, r, 1e-10)
	})

	cv.Convey("Matrix estimators should surface estimate sentinels", t, func() {
		one, _ := matrix.NewDenseFrom(1, 2, []float64{1, 2})
		_, err := estimate.CorrelationMatrix(one)
		cv.So(err, shouldWrap, estimate.ErrTooFewObservations)

		_, err = estimate.WeightedCorrelationMatrix(z, make([]float64, z.Rows()))
		cv.So(err, shouldWrap, estimate.ErrZeroWeights)
		_, err = estimate.WeightedCorrelationMatrix(z, []float64{1})
		cv.So(err, shouldWrap, estimate.ErrLengthMismatch)
	})

	cv.Convey("Matrix estimators should agree with Pearson on degenerate input", t, func() {
		flat, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {2, 3}, {2, 2}, {2, 5}})
		_, err := estimate.CorrelationMatrix(flat)
		cv.So(err, shouldWrap, estimate.ErrDegenerate)
		_, err = estimate.WeightedCorrelationMatrix(flat, []float64{1, 1, 1, 1})
		cv.So(err, shouldWrap, estimate.ErrDegenerate)

		varied, _ := matrix.NewDenseFromRows([][]float64{{1, 1}, {2, 3}, {4, 2}, {3, 5}})
		_, err = estimate.WeightedCorrelationMatrix(varied, []float64{0, 1, 0, 0})
		cv.So(err, shouldWrap, estimate.ErrTooFewObservations)
		_, err = estimate.WeightedCorrelationMatrix(varied, []float64{1, -1, 1, 1})
		cv.So(err, shouldWrap, estimate.ErrBadWeight)

		// Two weighted rows that differ in both columns are enough.
		c, err := estimate.WeightedCorrelationMatrix(varied, []float64{1, 0, 1, 0})
		cv.So(err, cv.ShouldBeNil)
		d, _ := c.At(0, 0)
		cv.So(d, cv.ShouldEqual, 1)
	})

	cv.Convey("Matrix estimators should reject non-finite cells", t, func() {
		base, _ := matrix.NewDenseFromRows([][]float64{{1, 1}, {2, 3}, {4, 2}, {3, 5}})
		z := nanAt{Dense: base, i: 2, j: 1}
		_, err := estimate.CorrelationMatrix(z)
		cv.So(err, shouldWrap, matrix.ErrNaNInf)
		_, err = estimate.WeightedCorrelationMatrix(z, []float64{1, 1, 1, 1})
		cv.So(err, shouldWrap, matrix.ErrNaNInf)
	})
}
