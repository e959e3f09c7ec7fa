package structure

import (
	"cmp"
	"slices"
	"strconv"
)

// Species identifies a chemical element, optionally with an assigned
// oxidation state. The zero value is invalid (empty Element).
//
// Species is a comparable value type: two species are equal iff element,
// presence of an oxidation state and the oxidation state itself all match.
type Species struct {
	// Element is the element symbol, e.g. "Fe".
	Element string

	// Oxidation is the formal oxidation state; meaningful only when HasOxidation.
	Oxidation int

	// HasOxidation reports whether Oxidation has been assigned.
	HasOxidation bool
}

// NewSpecies returns a Species for element without an oxidation state.
func NewSpecies(element string) Species {
	return Species{Element: element}
}

// WithOxidation returns a copy of s carrying oxidation state ox.
func (s Species) WithOxidation(ox int) Species {
	s.Oxidation = ox
	s.HasOxidation = true

	return s
}

// String renders the species: "Fe" without oxidation, "Fe3+", "O2-", "Na+"
// with one. A zero oxidation state renders as "Fe0+".
func (s Species) String() string {
	if !s.HasOxidation {
		return s.Element
	}
	sign := "+"
	mag := s.Oxidation
	if mag < 0 {
		sign = "-"
		mag = -mag
	}
	if mag == 1 {
		return s.Element + sign
	}

	return s.Element + strconv.Itoa(mag) + sign
}

// Compare orders species by element symbol, then species without an
// oxidation state before those with one, then by oxidation state.
// Returns -1, 0 or +1.
func (s Species) Compare(o Species) int {
	if c := cmp.Compare(s.Element, o.Element); c != 0 {
		return c
	}
	if s.HasOxidation != o.HasOxidation {
		if !s.HasOxidation {
			return -1
		}
		return 1
	}

	return cmp.Compare(s.Oxidation, o.Oxidation)
}

// UniqueSpecies returns the distinct species of list in ascending Compare order.
// The input slice is not modified.
func UniqueSpecies(list []Species) []Species {
	out := slices.Clone(list)
	slices.SortFunc(out, Species.Compare)

	return slices.Compact(out)
}
