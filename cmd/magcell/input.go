package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magcell/structure"
)

var errBadDocument = errors.New("structure document: invalid")

// structuresDoc is the on-disk batch of input structures.
//
//	structures:
//	  - cubic: 5.64                      # or lattice: [[a1], [a2], [a3]]
//	    sites:
//	      - {species: Fe, oxidation: 3, coords: [0, 0, 0], magmom: 4}
type structuresDoc struct {
	Structures []structureDoc `yaml:"structures"`
}

type structureDoc struct {
	Lattice [][]float64 `yaml:"lattice"`
	Cubic   float64     `yaml:"cubic"`
	Sites   []siteDoc   `yaml:"sites"`
}

type siteDoc struct {
	Species    string             `yaml:"species"`
	Oxidation  *int               `yaml:"oxidation"`
	Coords     []float64          `yaml:"coords"`
	Magmom     float64            `yaml:"magmom"`
	Properties map[string]float64 `yaml:"properties"`
}

func loadStructures(path string) ([]*structure.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open structures: %w", err)
	}
	defer f.Close()

	list, err := decodeStructures(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

func decodeStructures(r io.Reader) ([]*structure.Structure, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc structuresDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no structures: %w", errBadDocument)
		}
		return nil, fmt.Errorf("decode structures: %w", err)
	}
	if len(doc.Structures) == 0 {
		return nil, fmt.Errorf("no structures: %w", errBadDocument)
	}

	out := make([]*structure.Structure, 0, len(doc.Structures))
	for n, sd := range doc.Structures {
		s, err := sd.build()
		if err != nil {
			return nil, fmt.Errorf("structure %d: %w", n+1, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (d structureDoc) build() (*structure.Structure, error) {
	lattice, err := d.lattice()
	if err != nil {
		return nil, err
	}
	sites := make([]structure.Site, len(d.Sites))
	for i, sd := range d.Sites {
		if len(sd.Coords) != 3 {
			return nil, fmt.Errorf("site %d: coords need 3 values, got %d: %w", i+1, len(sd.Coords), errBadDocument)
		}
		sp := structure.NewSpecies(sd.Species)
		if sd.Oxidation != nil {
			sp = sp.WithOxidation(*sd.Oxidation)
		}
		sites[i] = structure.Site{
			Species:    sp,
			Coords:     [3]float64{sd.Coords[0], sd.Coords[1], sd.Coords[2]},
			Magmom:     sd.Magmom,
			Properties: sd.Properties,
		}
	}
	return structure.New(lattice, sites)
}

func (d structureDoc) lattice() (structure.Lattice, error) {
	switch {
	case d.Cubic != 0 && d.Lattice != nil:
		return structure.Lattice{}, fmt.Errorf("set either cubic or lattice: %w", errBadDocument)
	case d.Cubic < 0:
		return structure.Lattice{}, fmt.Errorf("cubic must be > 0: %w", errBadDocument)
	case d.Cubic > 0:
		return structure.Cubic(d.Cubic), nil
	}

	var l structure.Lattice
	if len(d.Lattice) != 3 {
		return l, fmt.Errorf("lattice needs 3 vectors, got %d: %w", len(d.Lattice), errBadDocument)
	}
	for i, row := range d.Lattice {
		if len(row) != 3 {
			return l, fmt.Errorf("lattice vector %d needs 3 values: %w", i+1, errBadDocument)
		}
		copy(l[i][:], row)
	}
	return l, nil
}
