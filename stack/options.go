// SPDX-License-Identifier: MIT

package stack

const panicCapacityNegative = "stack: WithCapacity: n must be >= 0"

// Option mutates construction options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	capacity int
}

// WithCapacity reserves room for n items. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityNegative)
	}

	return func(o *Options) { o.capacity = n }
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
