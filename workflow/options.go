package workflow

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/magcell/coordination"
	"github.com/katalvlaran/magcell/supercell"
)

type runnerConfig struct {
	logger   *slog.Logger
	finder   coordination.NeighborFinder
	rescaler *supercell.Rescaler
	rng      *rand.Rand
	runID    string
}

// Option customises a Runner.
type Option func(*runnerConfig)

// WithLogger sets the run logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("workflow: WithLogger(nil)")
	}
	return func(c *runnerConfig) { c.logger = l }
}

// WithNeighborFinder replaces the cutoff finder built from
// classification.cutoff. Panics on nil.
func WithNeighborFinder(f coordination.NeighborFinder) Option {
	if f == nil {
		panic("workflow: WithNeighborFinder(nil)")
	}
	return func(c *runnerConfig) { c.finder = f }
}

// WithRescaler replaces the default supercell step table. Panics on nil.
func WithRescaler(r *supercell.Rescaler) Option {
	if r == nil {
		panic("workflow: WithRescaler(nil)")
	}
	return func(c *runnerConfig) { c.rescaler = r }
}

// WithRand injects the enumerator's random source, overriding
// magnetization.seed. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("workflow: WithRand(nil)")
	}
	return func(c *runnerConfig) { c.rng = r }
}

// WithRunID fixes the run id instead of generating one.
func WithRunID(id string) Option {
	return func(c *runnerConfig) { c.runID = id }
}
