package coordination

import (
	"log/slog"
	"math"
)

// DefaultTolerance requires signatures to be identical.
const DefaultTolerance = 0.0

// classifierConfig aggregates Classifier knobs. Passed by value.
type classifierConfig struct {
	tolerance float64
	workers   int
	logger    *slog.Logger
}

// Option customizes a Classifier. Constructors panic on meaningless values.
type Option func(*classifierConfig)

func newClassifierConfig(opts ...Option) classifierConfig {
	cfg := classifierConfig{
		tolerance: DefaultTolerance,
		workers:   1,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTolerance sets the Euclidean signature tolerance (finite, >= 0).
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("coordination: WithTolerance(tol<0 or non-finite)")
	}
	return func(c *classifierConfig) {
		c.tolerance = tol
	}
}

// WithWorkers computes signatures on up to n goroutines (n >= 1).
// The NeighborFinder must then be safe for concurrent use.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("coordination: WithWorkers(n<1)")
	}
	return func(c *classifierConfig) {
		c.workers = n
	}
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("coordination: WithLogger(nil)")
	}
	return func(c *classifierConfig) {
		c.logger = l
	}
}
