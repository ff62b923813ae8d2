package harness

import "github.com/Edouard127/ciede2000/lab"

const (
	DefaultTolerance     = 1e-10
	DefaultMaxMismatches = 10
)

// Progress is called after each record with the number of records handled so far.
type Progress func(records int)

type options struct {
	weights       lab.Weights
	tolerance     float64
	maxMismatches int
	progress      Progress
}

type Option func(*options)

func defaultOptions() options {
	return options{
		weights:       lab.DefaultWeights,
		tolerance:     DefaultTolerance,
		maxMismatches: DefaultMaxMismatches,
		progress:      func(int) {},
	}
}

// WithWeights sets the parametric factors used to compute distances.
func WithWeights(w lab.Weights) Option {
	return func(o *options) {
		o.weights = w
	}
}

// WithTolerance sets the largest accepted absolute difference.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		o.tolerance = tolerance
	}
}

// WithMaxMismatches sets how many mismatches stop a comparison.
func WithMaxMismatches(n int) Option {
	return func(o *options) {
		o.maxMismatches = n
	}
}

func WithProgress(p Progress) Option {
	return func(o *options) {
		if p != nil {
			o.progress = p
		}
	}
}
