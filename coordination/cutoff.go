package coordination

import (
	"fmt"
	"math"

	"github.com/katalvlaran/magcell/structure"
)

// coincident is the distance (Å) below which an image is the site itself.
const coincident = 1e-8

// CutoffFinder reports every site image within Cutoff Å of site i, searching
// the home cell and its 26 neighbouring cells. Cutoff should therefore not
// exceed the shortest lattice vector. Each image contributes Weight(d), or 1
// when Weight is nil, so signatures become per-species coordination numbers.
//
// CutoffFinder is stateless and safe for concurrent use.
type CutoffFinder struct {
	Cutoff float64
	Weight func(d float64) float64
}

// NewCutoffFinder returns a unit-weight finder with the given radius.
func NewCutoffFinder(cutoff float64) (*CutoffFinder, error) {
	if !(cutoff > 0) || math.IsInf(cutoff, 0) {
		return nil, fmt.Errorf("cutoff=%g: %w", cutoff, ErrBadCutoff)
	}

	return &CutoffFinder{Cutoff: cutoff}, nil
}

// Neighbors implements NeighborFinder.
func (f *CutoffFinder) Neighbors(s *structure.Structure, i int) ([]Neighbor, error) {
	home, err := s.Site(i)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNeighbors, err)
	}

	var (
		lattice = s.Lattice()
		sites   = s.Sites()
		out     []Neighbor
	)
	for j, other := range sites {
		for a := -1; a <= 1; a++ {
			for b := -1; b <= 1; b++ {
				for c := -1; c <= 1; c++ {
					shift := [3]float64{float64(a), float64(b), float64(c)}
					var df [3]float64
					for k := 0; k < 3; k++ {
						df[k] = other.Coords[k] + shift[k] - home.Coords[k]
					}
					r := lattice.Cartesian(df)
					d := math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
					if d < coincident || d > f.Cutoff {
						continue
					}
					w := 1.0
					if f.Weight != nil {
						w = f.Weight(d)
					}
					out = append(out, Neighbor{Index: j, Weight: w})
				}
			}
		}
	}

	return out, nil
}
