// SPDX-License-Identifier: MIT
// Package: magcell/coordination
//
// signature.go — per-site weighted coordination signatures.
//
// Contract:
//   • Columns are the structure's distinct species in Compare order.
//   • Row i is Σ weight over the neighbours of i, accumulated per neighbour species.
//   • Rows are independent; with workers > 1 they are computed concurrently,
//     each goroutine writing only its own row, so the result is identical.

package coordination

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/magcell/structure"
)

// Neighbor is one bonded neighbour of a site with its contribution weight.
type Neighbor struct {
	// Index of the neighbouring site in the same structure.
	Index int
	// Weight is the bond contribution (e.g. a bond-strength fraction, or 1).
	Weight float64
}

// NeighborFinder supplies the neighbours of site i. Periodic images of the
// same site are reported with the same Index.
type NeighborFinder interface {
	Neighbors(s *structure.Structure, i int) ([]Neighbor, error)
}

// NeighborFinderFunc adapts a plain function to NeighborFinder.
type NeighborFinderFunc func(s *structure.Structure, i int) ([]Neighbor, error)

// Neighbors calls f(s, i).
func (f NeighborFinderFunc) Neighbors(s *structure.Structure, i int) ([]Neighbor, error) {
	return f(s, i)
}

// Signatures is the signature matrix of a structure.
type Signatures struct {
	// Species labels the columns.
	Species []structure.Species
	// Rows holds one vector per site, len(Species) wide.
	Rows [][]float64
}

// Distance returns the Euclidean distance between the signatures of sites i and j.
func (sg Signatures) Distance(i, j int) float64 {
	var sum float64
	for k := range sg.Species {
		d := sg.Rows[i][k] - sg.Rows[j][k]
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Signatures computes the signature of every site of s.
//
// Errors: structure.ErrNilStructure, ErrNeighborIndex, ErrBadWeight, or any
// error returned by the finder (wrapped with the site index).
func (c *Classifier) Signatures(s *structure.Structure) (Signatures, error) {
	if s == nil {
		return Signatures{}, fmt.Errorf("%s: %w", methodSignatures, structure.ErrNilStructure)
	}

	// 1. Column index per distinct species.
	species := s.Species()
	columns := structure.UniqueSpecies(species)
	col := make(map[structure.Species]int, len(columns))
	for k, sp := range columns {
		col[sp] = k
	}

	rows := make([][]float64, s.Len())
	row := func(i int) error {
		nbrs, err := c.finder.Neighbors(s, i)
		if err != nil {
			return fmt.Errorf("%s: site %d: %w", methodSignatures, i, err)
		}
		v := make([]float64, len(columns))
		for _, nb := range nbrs {
			if nb.Index < 0 || nb.Index >= len(species) {
				return fmt.Errorf("%s: site %d: neighbor %d: %w", methodSignatures, i, nb.Index, ErrNeighborIndex)
			}
			if math.IsNaN(nb.Weight) || math.IsInf(nb.Weight, 0) {
				return fmt.Errorf("%s: site %d: neighbor %d: %w", methodSignatures, i, nb.Index, ErrBadWeight)
			}
			v[col[species[nb.Index]]] += nb.Weight
		}
		rows[i] = v

		return nil
	}

	// 2. Fill rows, sequentially or on a bounded worker group.
	if c.cfg.workers <= 1 {
		for i := range rows {
			if err := row(i); err != nil {
				return Signatures{}, err
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(c.cfg.workers)
		for i := range rows {
			g.Go(func() error { return row(i) })
		}
		if err := g.Wait(); err != nil {
			return Signatures{}, err
		}
	}

	return Signatures{Species: columns, Rows: rows}, nil
}
