// SPDX-License-Identifier: MIT
// Package: magcell/magnetism
//
// options.go — functional options for the Enumerator.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil RNG, attempt budget < 1). Enumeration itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through enumConfig.

package magnetism

import (
	"log/slog"
	"math/rand"
)

// DefaultMaxAttempts is the attempt budget used when WithMaxAttempts is not given.
const DefaultMaxAttempts = 100

// enumConfig aggregates all Enumerator knobs. Passed by value.
type enumConfig struct {
	// rng drives sign draws; nil means "not configured" (ErrNeedRandSource).
	rng *rand.Rand
	// maxAttempts bounds the total number of candidate draws per call.
	maxAttempts int
	// logger receives debug records about rejections and budget exhaustion.
	logger *slog.Logger
}

// Option customizes an Enumerator.
type Option func(*enumConfig)

func newEnumConfig(opts ...Option) enumConfig {
	cfg := enumConfig{
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed. Use it in tests and
// reproducible runs to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *enumConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
// The Enumerator draws from r without locking; do not share r across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("magnetism: WithRand(nil)")
	}
	return func(c *enumConfig) {
		c.rng = r
	}
}

// WithMaxAttempts sets the attempt budget (>= 1). Panics otherwise.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("magnetism: WithMaxAttempts(n<1)")
	}
	return func(c *enumConfig) {
		c.maxAttempts = n
	}
}

// WithLogger routes debug and info records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("magnetism: WithLogger(nil)")
	}
	return func(c *enumConfig) {
		c.logger = l
	}
}
