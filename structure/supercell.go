package structure

import "fmt"

// Supercell returns s periodically replicated nx×ny×nz times along its
// lattice vectors. Lattice vectors are scaled by the factors and fractional
// coordinates are remapped into the enlarged cell.
//
// Site order: for each original site i (ascending), its images in
// (x, y, z) lexicographic order. Image 0 of site i therefore sits at index
// i·nx·ny·nz, which keeps the original site addressable after replication.
//
// Errors: ErrNilStructure, ErrBadFactor.
//
// Complexity: O(n·nx·ny·nz) time and memory.
func (s *Structure) Supercell(nx, ny, nz int) (*Structure, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", methodSupercell, ErrNilStructure)
	}
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("%s: factor (%d,%d,%d): %w", methodSupercell, nx, ny, nz, ErrBadFactor)
	}

	factor := [3]int{nx, ny, nz}
	images := nx * ny * nz
	sites := make([]Site, 0, len(s.sites)*images)
	for _, site := range s.sites {
		for x := 0; x < nx; x++ {
			for y := 0; y < ny; y++ {
				for z := 0; z < nz; z++ {
					img := site.clone()
					shift := [3]int{x, y, z}
					for axis := 0; axis < 3; axis++ {
						img.Coords[axis] = (site.Coords[axis] + float64(shift[axis])) / float64(factor[axis])
					}
					sites = append(sites, img)
				}
			}
		}
	}

	return &Structure{lattice: s.lattice.Scale(factor), sites: sites}, nil
}
