// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior when asked for: a fixed seed reproduces FillRand exactly.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package linalg

import (
	"math/rand"

	"github.com/gomlx/exceptions"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRandSourceNil = "linalg: WithRandSource: rng must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly; last write wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rng *rand.Rand // nil ⇒ time-seeded source per FillRand call
}

// WithRandSource makes FillRand draw from rng.
// Panics if rng is nil (programmer error); omit the option for a clock seed.
func WithRandSource(rng *rand.Rand) Option {
	if rng == nil {
		exceptions.Panicf(panicRandSourceNil)
	}

	return func(o *Options) { o.rng = rng }
}

// WithSeed makes FillRand reproducible by seeding a private source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// gatherOptions folds opts over the defaults (nil entries are skipped).
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
