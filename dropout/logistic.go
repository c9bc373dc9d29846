// SPDX-License-Identifier: MIT

package dropout

import "math"

// Default logistic parameters: half of all readings are lost at |x| = 3 and
// the transition is about two units wide.
const (
	DefaultMidpoint = 3.0
	DefaultScale    = 0.5
)

// Logistic is the dropout-probability curve
//
//	f(x) = 1 − 1/(1 + exp(−(|x| − Midpoint)/Scale))
//
// Small magnitudes are likely to drop out, large ones are likely kept.
type Logistic struct {
	Midpoint float64
	Scale    float64
}

// DefaultLogistic returns Logistic{Midpoint: 3, Scale: 0.5}.
func DefaultLogistic() Logistic {
	return Logistic{Midpoint: DefaultMidpoint, Scale: DefaultScale}
}

// Validate reports ErrBadLogistic for a non-finite midpoint or a scale that
// is not strictly positive and finite.
func (l Logistic) Validate() error {
	if math.IsNaN(l.Midpoint) || math.IsInf(l.Midpoint, 0) {
		return ErrBadLogistic
	}
	if !(l.Scale > 0) || math.IsInf(l.Scale, 0) {
		return ErrBadLogistic
	}

	return nil
}

// Prob returns f(x). It is even in x and strictly decreasing in |x|,
// with f(Midpoint) = 0.5.
//
// 1 − 1/(1+e^−t) is rewritten as 1/(1+e^t) and evaluated on the branch where
// the exponent is non-positive, so large |x| underflows towards 0 instead of
// cancelling, and nothing overflows to NaN.
func (l Logistic) Prob(x float64) float64 {
	t := (math.Abs(x) - l.Midpoint) / l.Scale
	if t >= 0 {
		e := math.Exp(-t)
		return e / (1 + e)
	}

	return 1 / (1 + math.Exp(t))
}
