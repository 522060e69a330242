// SPDX-License-Identifier: MIT
// Package: necromap/cavemap
//
// options.go — functional options for Generate.

package cavemap

import "github.com/katalvlaran/necromap/automaton"

// Option customizes Generate.
type Option func(*settings)

type settings struct {
	seed    *int64
	genOpts []automaton.Option
}

// WithSeed makes Generate reproducible and records the seed on the Map.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.seed = &seed
		s.genOpts = append(s.genOpts, automaton.WithSeed(seed))
	}
}

// WithWorkers spreads neighbour counting over n goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	opt := automaton.WithWorkers(n)
	return func(s *settings) {
		s.genOpts = append(s.genOpts, opt)
	}
}

func newSettings(opts ...Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
