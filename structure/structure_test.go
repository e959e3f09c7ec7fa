package structure_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/magcell/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rockSalt returns a two-site NaCl-like primitive cell used across tests.
func rockSalt(t *testing.T) *structure.Structure {
	t.Helper()
	s, err := structure.New(structure.Cubic(4), []structure.Site{
		{Species: structure.NewSpecies("Na"), Coords: [3]float64{0, 0, 0}, Magmom: 1},
		{Species: structure.NewSpecies("Cl"), Coords: [3]float64{0.5, 0.5, 0.5}, Magmom: -1,
			Properties: map[string]float64{"charge": -1}},
	})
	require.NoError(t, err)

	return s
}

// TestNew_Validation covers the constructor error classes.
func TestNew_Validation(t *testing.T) {
	_, err := structure.New(structure.Cubic(1), []structure.Site{{Coords: [3]float64{0, 0, 0}}})
	assert.ErrorIs(t, err, structure.ErrEmptyElement)

	_, err = structure.New(structure.Cubic(1), []structure.Site{
		{Species: structure.NewSpecies("Fe"), Coords: [3]float64{math.NaN(), 0, 0}},
	})
	assert.ErrorIs(t, err, structure.ErrNaNInf)

	_, err = structure.New(structure.Cubic(1), []structure.Site{
		{Species: structure.NewSpecies("Fe"), Magmom: math.Inf(1)},
	})
	assert.ErrorIs(t, err, structure.ErrNaNInf)

	_, err = structure.New(structure.Lattice{{math.Inf(-1)}}, nil)
	assert.ErrorIs(t, err, structure.ErrNaNInf)

	empty, err := structure.New(structure.Cubic(1), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

// TestNew_CopiesInput verifies the caller cannot mutate a built structure.
func TestNew_CopiesInput(t *testing.T) {
	props := map[string]float64{"q": 2}
	sites := []structure.Site{{Species: structure.NewSpecies("Fe"), Magmom: 3, Properties: props}}
	s, err := structure.New(structure.Cubic(2), sites)
	require.NoError(t, err)

	sites[0].Magmom = 99
	props["q"] = 7

	site, err := s.Site(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, site.Magmom)
	assert.Equal(t, 2.0, site.Properties["q"])

	site.Properties["q"] = 11
	again, _ := s.Site(0)
	assert.Equal(t, 2.0, again.Properties["q"], "accessor must return a copy")
}

func TestSite_OutOfRange(t *testing.T) {
	s := rockSalt(t)
	_, err := s.Site(2)
	assert.ErrorIs(t, err, structure.ErrSiteIndex)
	_, err = s.Site(-1)
	assert.ErrorIs(t, err, structure.ErrSiteIndex)
}

// TestWithMoments checks copy semantics, length validation and -0 normalisation.
func TestWithMoments(t *testing.T) {
	s := rockSalt(t)

	out, err := s.WithMoments(structure.MomentVector{-2, math.Copysign(0, -1)})
	require.NoError(t, err)
	assert.Equal(t, structure.MomentVector{1, -1}, s.Moments(), "receiver untouched")
	assert.Equal(t, structure.MomentVector{-2, 0}, out.Moments())
	assert.False(t, math.Signbit(out.Moments()[1]), "negative zero normalised")

	_, err = s.WithMoments(structure.MomentVector{1})
	assert.ErrorIs(t, err, structure.ErrLengthMismatch)

	_, err = s.WithMoments(structure.MomentVector{1, math.NaN()})
	assert.ErrorIs(t, err, structure.ErrNaNInf)

	var nilS *structure.Structure
	_, err = nilS.WithMoments(nil)
	assert.ErrorIs(t, err, structure.ErrNilStructure)
}

func TestWithSpecies(t *testing.T) {
	s := rockSalt(t)
	out, err := s.WithSpecies([]structure.Species{
		structure.NewSpecies("Na").WithOxidation(1),
		structure.NewSpecies("Cl").WithOxidation(-1),
	})
	require.NoError(t, err)
	assert.Equal(t, "Na+", out.Species()[0].String())
	assert.Equal(t, "Cl-", out.Species()[1].String())
	assert.Equal(t, "Na", s.Species()[0].String())

	_, err = s.WithSpecies([]structure.Species{{}, {}})
	assert.ErrorIs(t, err, structure.ErrEmptyElement)
	_, err = s.WithSpecies(nil)
	assert.ErrorIs(t, err, structure.ErrLengthMismatch)
}

func TestFormula(t *testing.T) {
	s, err := structure.New(structure.Cubic(5), []structure.Site{
		{Species: structure.NewSpecies("Fe")},
		{Species: structure.NewSpecies("O")},
		{Species: structure.NewSpecies("Fe").WithOxidation(3)},
		{Species: structure.NewSpecies("O")},
		{Species: structure.NewSpecies("O")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Fe2 O3", s.Formula())
}

// TestSupercell verifies site order, coordinate remapping and lattice scaling.
func TestSupercell(t *testing.T) {
	s := rockSalt(t)

	big, err := s.Supercell(2, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 4, big.Len())
	assert.Equal(t, structure.Lattice{{8, 0, 0}, {0, 4, 0}, {0, 0, 4}}, big.Lattice())

	sites := big.Sites()
	assert.Equal(t, [3]float64{0, 0, 0}, sites[0].Coords)
	assert.Equal(t, [3]float64{0.5, 0, 0}, sites[1].Coords)
	assert.Equal(t, [3]float64{0.25, 0.5, 0.5}, sites[2].Coords)
	assert.Equal(t, [3]float64{0.75, 0.5, 0.5}, sites[3].Coords)
	assert.Equal(t, "Cl", sites[3].Species.Element)
	assert.Equal(t, -1.0, sites[3].Properties["charge"])
	assert.Equal(t, 2, s.Len(), "receiver untouched")

	_, err = s.Supercell(0, 1, 1)
	assert.ErrorIs(t, err, structure.ErrBadFactor)
}

func TestLattice_Cartesian(t *testing.T) {
	l := structure.Lattice{{2, 0, 0}, {1, 2, 0}, {0, 0, 3}}
	assert.Equal(t, [3]float64{1.5, 1, 1.5}, l.Cartesian([3]float64{0.5, 0.5, 0.5}))
}
