// SPDX-License-Identifier: MIT
// Package: necromap/automaton
//
// options.go — functional options for Generator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless input; generation itself
//     never panics.
//   • Determinism is explicit: WithSeed or WithRand.

package automaton

import (
	"math/rand"
)

// Option customizes a Generator before it is built.
// Complexity: applying N options costs O(N).
type Option func(*config)

// WithSeed makes generation reproducible: equal seeds give equal layouts.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects an explicit random source. Panics on nil.
// The Generator takes ownership; *rand.Rand is not safe for concurrent use.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("automaton: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWorkers spreads neighbour counting over n goroutines. Passes still
// run one after another. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("automaton: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}
