package structure

import "math"

// Lattice holds the three lattice vectors a, b, c as rows (Å).
// The core treats it as opaque metadata: it is copied through every
// transformation and only read by Cartesian and Supercell.
type Lattice [3][3]float64

// Cubic returns a cubic lattice with edge length a.
func Cubic(a float64) Lattice {
	return Lattice{{a, 0, 0}, {0, a, 0}, {0, 0, a}}
}

// Cartesian converts fractional coordinates to Cartesian ones:
// r = f0·a + f1·b + f2·c.
func (l Lattice) Cartesian(frac [3]float64) [3]float64 {
	var r [3]float64
	for axis := 0; axis < 3; axis++ {
		for k := 0; k < 3; k++ {
			r[k] += frac[axis] * l[axis][k]
		}
	}

	return r
}

// Scale returns the lattice with vector i multiplied by factor[i].
func (l Lattice) Scale(factor [3]int) Lattice {
	for axis := 0; axis < 3; axis++ {
		for k := 0; k < 3; k++ {
			l[axis][k] *= float64(factor[axis])
		}
	}

	return l
}

// finite reports whether every entry is neither NaN nor ±Inf.
func (l Lattice) finite() bool {
	for _, row := range l {
		if !finite3(row) {
			return false
		}
	}

	return true
}

func finite3(v [3]float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
