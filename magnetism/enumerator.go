// SPDX-License-Identifier: MIT
// Package: magcell/magnetism
//
// enumerator.go — bounded random search for antiferromagnetic sign flips.
//
// Contract:
//   • Every accepted candidate differs from the ferromagnetic vector and from
//     every other accepted candidate (element-wise).
//   • At most maxCount candidates are returned.
//   • At most maxAttempts draws are made per call; each draw, accepted or
//     rejected, consumes one attempt.
//   • Running out of attempts is a valid, shorter result, never an error.
//
// Determinism:
//   • Sites are drawn in index order from the injected RNG, one Intn(2) each.

package magnetism

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/magcell/structure"
)

// Enumerator produces magnetic variants. It holds no per-call state; the RNG
// advances across calls, so a fresh Enumerator with the same seed reproduces
// the same sequence of calls.
type Enumerator struct {
	cfg enumConfig
}

// NewEnumerator returns an Enumerator configured by opts.
// Without WithSeed or WithRand, AFM enumeration fails with ErrNeedRandSource.
func NewEnumerator(opts ...Option) *Enumerator {
	return &Enumerator{cfg: newEnumConfig(opts...)}
}

// MaxAttempts returns the configured attempt budget.
func (e *Enumerator) MaxAttempts() int {
	return e.cfg.maxAttempts
}

// Enumeration is the outcome of one Antiferromagnetic call.
type Enumeration struct {
	// Configs are the accepted moment vectors in acceptance order.
	Configs []structure.MomentVector
	// Attempts is the number of draws consumed (accepted + rejected).
	Attempts int
	// Exhausted reports the budget ran out before maxCount was reached.
	Exhausted bool
}

// Antiferromagnetic draws up to maxCount distinct sign-flipped variants of
// ferro. ferro is not modified.
//
// Steps:
//  1. Validate: maxCount >= 0, ferro has a nonzero entry, RNG present.
//  2. While accepted < maxCount and attempts < maxAttempts:
//     draw s_i ∈ {−1,+1} per site, candidate c_i = s_i·ferro_i;
//     reject if c == ferro or c equals an accepted candidate, else accept.
//  3. Return accepted candidates with the attempt count.
//
// Complexity: O(maxAttempts · (n + maxCount·n)) time, O(maxCount·n) memory.
func (e *Enumerator) Antiferromagnetic(ferro structure.MomentVector, maxCount int) (Enumeration, error) {
	// 1. Validate inputs in priority order.
	if maxCount < 0 {
		return Enumeration{}, fmt.Errorf("%s: count=%d: %w", methodAntiferromagnetic, maxCount, ErrNegativeCount)
	}
	if ferro.IsZero() {
		return Enumeration{}, fmt.Errorf("%s: %w", methodAntiferromagnetic, ErrNonMagnetic)
	}
	if e.cfg.rng == nil {
		return Enumeration{}, fmt.Errorf("%s: %w", methodAntiferromagnetic, ErrNeedRandSource)
	}

	// 2. Bounded search with an explicit attempt counter.
	var (
		rng      = e.cfg.rng
		accepted = make([]structure.MomentVector, 0, maxCount)
		attempts int
	)
	for len(accepted) < maxCount && attempts < e.cfg.maxAttempts {
		attempts++
		candidate := make(structure.MomentVector, len(ferro))
		for i, m := range ferro {
			if rng.Intn(2) == 0 {
				m = -m
			}
			if m == 0 {
				m = 0 // drop the sign of -0
			}
			candidate[i] = m
		}

		if candidate.Equal(ferro) || slices.ContainsFunc(accepted, candidate.Equal) {
			continue
		}
		accepted = append(accepted, candidate)
	}

	res := Enumeration{
		Configs:   accepted,
		Attempts:  attempts,
		Exhausted: len(accepted) < maxCount,
	}
	if res.Exhausted {
		e.cfg.logger.Debug("antiferromagnetic search budget exhausted",
			slog.Int("requested", maxCount),
			slog.Int("found", len(accepted)),
			slog.Int("attempts", attempts))
	}

	// 3. Done.
	return res, nil
}
