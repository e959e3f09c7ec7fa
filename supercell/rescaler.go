// SPDX-License-Identifier: MIT
// Package: magcell/supercell
//
// rescaler.go — factor selection and rescaling.
//
// Contract:
//   • Factor is a pure function of the site count.
//   • Tables are immutable after NewRescaler; the caller's slice is copied.
//   • Rescale returns a new structure; the input is untouched.

package supercell

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/magcell/structure"
)

var (
	// ErrBadTable indicates steps that are unsorted, non-positive or carry a factor < 1.
	ErrBadTable = errors.New("supercell: invalid step table")
)

// Factor is a replication count per lattice axis.
type Factor [3]int

// Identity returns the factor that replicates nothing.
func Identity() Factor {
	return Factor{1, 1, 1}
}

// String renders the factor as "nx×ny×nz".
func (f Factor) String() string {
	return fmt.Sprintf("%d×%d×%d", f[0], f[1], f[2])
}

// Images returns nx·ny·nz.
func (f Factor) Images() int {
	return f[0] * f[1] * f[2]
}

// Step maps every site count ≤ MaxSites (and above the previous step) to Factor.
type Step struct {
	MaxSites int
	Factor   Factor
}

// DefaultSteps returns a copy of the default step table.
func DefaultSteps() []Step {
	return []Step{
		{MaxSites: 2, Factor: Factor{4, 4, 4}},
		{MaxSites: 4, Factor: Factor{3, 3, 3}},
		{MaxSites: 7, Factor: Factor{3, 3, 2}},
		{MaxSites: 10, Factor: Factor{3, 2, 2}},
		{MaxSites: 16, Factor: Factor{2, 2, 2}},
		{MaxSites: 32, Factor: Factor{2, 2, 1}},
		{MaxSites: 64, Factor: Factor{2, 1, 1}},
	}
}

// Rescaler selects and applies replication factors.
type Rescaler struct {
	steps []Step
}

// NewRescaler validates steps (strictly increasing MaxSites > 0, factors ≥ 1)
// and returns a Rescaler. Site counts above the last step map to Identity().
func NewRescaler(steps []Step) (*Rescaler, error) {
	for i, st := range steps {
		if st.MaxSites < 1 || (i > 0 && st.MaxSites <= steps[i-1].MaxSites) {
			return nil, fmt.Errorf("step %d: max_sites=%d: %w", i, st.MaxSites, ErrBadTable)
		}
		for _, n := range st.Factor {
			if n < 1 {
				return nil, fmt.Errorf("step %d: factor %v: %w", i, st.Factor, ErrBadTable)
			}
		}
	}

	return &Rescaler{steps: slices.Clone(steps)}, nil
}

// Default returns a Rescaler over DefaultSteps.
func Default() *Rescaler {
	return &Rescaler{steps: DefaultSteps()}
}

// Factor returns the replication factor for a structure of n sites.
func (r *Rescaler) Factor(n int) Factor {
	for _, st := range r.steps {
		if n <= st.MaxSites {
			return st.Factor
		}
	}

	return Identity()
}

// Rescale replicates s by Factor(s.Len()) and returns the new structure and
// the factor used.
func (r *Rescaler) Rescale(s *structure.Structure) (*structure.Structure, Factor, error) {
	if s == nil {
		return nil, Factor{}, fmt.Errorf("Rescale: %w", structure.ErrNilStructure)
	}
	f := r.Factor(s.Len())
	out, err := s.Supercell(f[0], f[1], f[2])
	if err != nil {
		return nil, Factor{}, fmt.Errorf("Rescale: %w", err)
	}

	return out, f, nil
}
