// SPDX-License-Identifier: MIT
package domino

import "runtime"

// Options tunes Aggregate.
type Options struct {
	// Workers bounds how many regions are extracted at once.
	Workers int
}

// DefaultOptions returns Options with Workers = GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// Option configures Options.
type Option func(*Options)

// WithWorkers sets the concurrency bound. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("domino: WithWorkers(n < 1)")
	}
	return func(o *Options) {
		o.Workers = n
	}
}
