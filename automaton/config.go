// SPDX-License-Identifier: MIT
// Package: necromap/automaton
//
// config.go — resolved Generator settings.
//
// Defaults:
//   • rng     = fresh time-seeded source per Generator (never shared)
//   • workers = 1 (sequential neighbour counting)

package automaton

import (
	"math/rand"
	"time"
)

const defaultWorkers = 1

type config struct {
	rng     *rand.Rand
	workers int
}

// newConfig applies options in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{workers: defaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
