package structure

import (
	"maps"
	"math"
	"slices"
)

// Site is one position of a Structure.
type Site struct {
	// Species occupying the site.
	Species Species

	// Coords are fractional coordinates with respect to the lattice.
	Coords [3]float64

	// Magmom is the scalar (collinear) magnetic moment in μB.
	Magmom float64

	// Properties holds optional extra per-site scalars. Deep-copied on every
	// structure transformation.
	Properties map[string]float64
}

// clone returns a copy of s that shares no memory with it.
func (s Site) clone() Site {
	if s.Properties != nil {
		s.Properties = maps.Clone(s.Properties)
	}

	return s
}

// MomentVector is an ordered sequence of per-site moments.
type MomentVector []float64

// Equal reports element-wise equality. Vectors of different length are unequal.
func (m MomentVector) Equal(o MomentVector) bool {
	return slices.Equal(m, o)
}

// IsZero reports whether every moment is exactly zero (non-magnetic).
// An empty vector is zero.
func (m MomentVector) IsZero() bool {
	for _, v := range m {
		if v != 0 {
			return false
		}
	}

	return true
}

// Abs returns a new vector of absolute values (the ferromagnetic alignment).
func (m MomentVector) Abs() MomentVector {
	out := make(MomentVector, len(m))
	for i, v := range m {
		out[i] = math.Abs(v)
	}

	return out
}

// Clone returns an independent copy of m.
func (m MomentVector) Clone() MomentVector {
	return slices.Clone(m)
}
