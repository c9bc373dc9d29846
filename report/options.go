// SPDX-License-Identifier: MIT

package report

// DefaultHeadRows is how many leading rows of Z, P, Zind and Zdrop are printed.
const DefaultHeadRows = 5

const panicHeadRowsNegative = "report: WithHeadRows: n must be >= 0"

// Option configures RenderTables.
type Option func(*Options)

// Options holds the effective rendering configuration.
type Options struct {
	headRows int
	title    string
}

// WithHeadRows sets the number of data rows shown; 0 hides the data table.
// Panics if n < 0.
func WithHeadRows(n int) Option {
	if n < 0 {
		panic(panicHeadRowsNegative)
	}

	return func(o *Options) { o.headRows = n }
}

// WithTitle prefixes every table title.
func WithTitle(s string) Option {
	return func(o *Options) { o.title = s }
}

func gatherOptions(user ...Option) Options {
	o := Options{headRows: DefaultHeadRows}
	for _, set := range user {
		set(&o)
	}

	return o
}
