// SPDX-License-Identifier: MIT

package dropout

// Default Beta shape for the row-weight multiplier: Beta(1, 0.1) has mean
// 1/1.1 and piles most of its mass just below 1.
const (
	DefaultWeightAlpha = 1.0
	DefaultWeightBeta  = 0.1
)

const panicLogisticInvalid = "dropout: WithLogistic: scale must be > 0 and parameters finite"

// Option configures Probabilities and Inject.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
type Options struct {
	curve Logistic
}

// WithLogistic replaces the default dropout curve.
// Panics with a stable message when l fails Validate.
func WithLogistic(l Logistic) Option {
	if err := l.Validate(); err != nil {
		panic(panicLogisticInvalid)
	}

	return func(o *Options) { o.curve = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{curve: DefaultLogistic()}
	for _, set := range user {
		set(&o)
	}

	return o
}
