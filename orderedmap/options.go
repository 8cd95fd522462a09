// SPDX-License-Identifier: MIT

// Package orderedmap: functional construction options.
//
// Option / Options follow the usual functional-options shape: Options is
// unexported-field state resolved by gatherOptions; WithX constructors panic
// only on nonsensical values (programmer error).

package orderedmap

// DefaultCapacity is the initial capacity reserved by New when no
// WithCapacity option is given.
const DefaultCapacity = 0

const panicCapacityNegative = "orderedmap: WithCapacity: n must be >= 0"

// Option mutates construction options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	capacity int // >= 0; DefaultCapacity
}

// WithCapacity pre-sizes both internal views for n entries.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityNegative)
	}

	return func(o *Options) { o.capacity = n }
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{capacity: DefaultCapacity}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
