// SPDX-License-Identifier: MIT
// Package: magcell/structure
//
// structure.go — the immutable Structure value and its copy-and-modify API.
//
// Contract:
//   • New deep-copies its input; later edits to the caller's slice are invisible.
//   • Accessors return copies; there is no way to mutate a built Structure.
//   • Transformations return a fresh *Structure and leave the receiver intact.

package structure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Structure is an ordered sequence of Sites plus the periodic Lattice.
// Site count and species composition are fixed at construction.
type Structure struct {
	lattice Lattice
	sites   []Site
}

// New validates and deep-copies sites into a new Structure.
//
// Errors:
//   - ErrNaNInf       : non-finite lattice entry, coordinate or moment.
//   - ErrEmptyElement : a site species has an empty element symbol.
//
// Complexity: O(n) time and memory.
func New(lattice Lattice, sites []Site) (*Structure, error) {
	if !lattice.finite() {
		return nil, fmt.Errorf("%s: lattice: %w", methodNew, ErrNaNInf)
	}

	owned := make([]Site, len(sites))
	for i, site := range sites {
		if site.Species.Element == "" {
			return nil, fmt.Errorf("%s: site %d: %w", methodNew, i, ErrEmptyElement)
		}
		if !finite3(site.Coords) || math.IsNaN(site.Magmom) || math.IsInf(site.Magmom, 0) {
			return nil, fmt.Errorf("%s: site %d: %w", methodNew, i, ErrNaNInf)
		}
		owned[i] = site.clone()
	}

	return &Structure{lattice: lattice, sites: owned}, nil
}

// Len returns the number of sites. A nil Structure has zero sites.
func (s *Structure) Len() int {
	if s == nil {
		return 0
	}

	return len(s.sites)
}

// Lattice returns the lattice (a value copy).
func (s *Structure) Lattice() Lattice {
	if s == nil {
		return Lattice{}
	}

	return s.lattice
}

// Site returns a copy of site i.
func (s *Structure) Site(i int) (Site, error) {
	if i < 0 || i >= s.Len() {
		return Site{}, fmt.Errorf("%s: index %d not in [0,%d): %w", methodSite, i, s.Len(), ErrSiteIndex)
	}

	return s.sites[i].clone(), nil
}

// Sites returns copies of all sites in order.
func (s *Structure) Sites() []Site {
	out := make([]Site, s.Len())
	for i := range out {
		out[i] = s.sites[i].clone()
	}

	return out
}

// Species returns the species of every site in order.
func (s *Structure) Species() []Species {
	out := make([]Species, s.Len())
	for i := range out {
		out[i] = s.sites[i].Species
	}

	return out
}

// UniqueSpecies returns the distinct species present, in Compare order.
func (s *Structure) UniqueSpecies() []Species {
	return UniqueSpecies(s.Species())
}

// Moments returns the per-site magnetic moments in order.
func (s *Structure) Moments() MomentVector {
	out := make(MomentVector, s.Len())
	for i := range out {
		out[i] = s.sites[i].Magmom
	}

	return out
}

// Clone returns a deep copy of s.
func (s *Structure) Clone() *Structure {
	if s == nil {
		return nil
	}

	return &Structure{lattice: s.lattice, sites: s.Sites()}
}

// WithMoments returns a copy of s with every site moment replaced by m[i].
// Negative zero is normalised to +0 so that printed moments never read "-0".
//
// Errors: ErrNilStructure, ErrLengthMismatch, ErrNaNInf.
func (s *Structure) WithMoments(m MomentVector) (*Structure, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", methodWithMoments, ErrNilStructure)
	}
	if len(m) != len(s.sites) {
		return nil, fmt.Errorf("%s: got %d moments for %d sites: %w",
			methodWithMoments, len(m), len(s.sites), ErrLengthMismatch)
	}

	out := s.Clone()
	for i, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: moment %d: %w", methodWithMoments, i, ErrNaNInf)
		}
		if v == 0 {
			v = 0
		}
		out.sites[i].Magmom = v
	}

	return out, nil
}

// WithSpecies returns a copy of s with site species replaced by species[i],
// e.g. after oxidation states have been assigned by an external guesser.
//
// Errors: ErrNilStructure, ErrLengthMismatch, ErrEmptyElement.
func (s *Structure) WithSpecies(species []Species) (*Structure, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", methodWithSpecies, ErrNilStructure)
	}
	if len(species) != len(s.sites) {
		return nil, fmt.Errorf("%s: got %d species for %d sites: %w",
			methodWithSpecies, len(species), len(s.sites), ErrLengthMismatch)
	}

	out := s.Clone()
	for i, sp := range species {
		if sp.Element == "" {
			return nil, fmt.Errorf("%s: site %d: %w", methodWithSpecies, i, ErrEmptyElement)
		}
		out.sites[i].Species = sp
	}

	return out, nil
}

// Formula lists per-element site counts in order of first appearance,
// e.g. "Fe2 O3". Oxidation states are ignored.
func (s *Structure) Formula() string {
	var (
		order  []string
		counts = make(map[string]int)
	)
	for i := 0; i < s.Len(); i++ {
		el := s.sites[i].Species.Element
		if counts[el] == 0 {
			order = append(order, el)
		}
		counts[el]++
	}

	parts := make([]string, len(order))
	for i, el := range order {
		parts[i] = el + strconv.Itoa(counts[el])
	}

	return strings.Join(parts, " ")
}
