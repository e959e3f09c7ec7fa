package supercell_test

import (
	"testing"

	"github.com/katalvlaran/magcell/structure"
	"github.com/katalvlaran/magcell/supercell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFactor_Boundaries covers each inclusive upper bound and the step after it.
func TestFactor_Boundaries(t *testing.T) {
	r := supercell.Default()
	cases := []struct {
		n    int
		want supercell.Factor
	}{
		{1, supercell.Factor{4, 4, 4}},
		{2, supercell.Factor{4, 4, 4}},
		{3, supercell.Factor{3, 3, 3}},
		{4, supercell.Factor{3, 3, 3}},
		{7, supercell.Factor{3, 3, 2}},
		{8, supercell.Factor{3, 2, 2}},
		{10, supercell.Factor{3, 2, 2}},
		{16, supercell.Factor{2, 2, 2}},
		{32, supercell.Factor{2, 2, 1}},
		{64, supercell.Factor{2, 1, 1}},
		{65, supercell.Identity()},
		{1000, supercell.Identity()},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, r.Factor(tc.n), "n=%d", tc.n)
	}
}

func TestFactor_Monotone(t *testing.T) {
	r := supercell.Default()
	prev := r.Factor(1).Images()
	for n := 2; n <= 80; n++ {
		cur := r.Factor(n).Images()
		assert.LessOrEqual(t, cur, prev, "n=%d", n)
		prev = cur
	}
}

func TestRescale(t *testing.T) {
	s, err := structure.New(structure.Cubic(3), []structure.Site{
		{Species: structure.NewSpecies("Fe"), Magmom: 4},
		{Species: structure.NewSpecies("O"), Coords: [3]float64{0.5, 0.5, 0.5}},
		{Species: structure.NewSpecies("O"), Coords: [3]float64{0.5, 0, 0}},
	})
	require.NoError(t, err)

	out, f, err := supercell.Default().Rescale(s)
	require.NoError(t, err)
	assert.Equal(t, supercell.Factor{3, 3, 3}, f)
	assert.Equal(t, "3×3×3", f.String())
	assert.Equal(t, 81, out.Len())
	assert.Equal(t, 9.0, out.Lattice()[0][0])
	assert.Equal(t, 3, s.Len())

	_, _, err = supercell.Default().Rescale(nil)
	assert.ErrorIs(t, err, structure.ErrNilStructure)
}

func TestNewRescaler_Validation(t *testing.T) {
	_, err := supercell.NewRescaler([]supercell.Step{{MaxSites: 4, Factor: supercell.Factor{2, 2, 2}}, {MaxSites: 4}})
	assert.ErrorIs(t, err, supercell.ErrBadTable)

	_, err = supercell.NewRescaler([]supercell.Step{{MaxSites: 4, Factor: supercell.Factor{0, 1, 1}}})
	assert.ErrorIs(t, err, supercell.ErrBadTable)

	steps := []supercell.Step{{MaxSites: 1, Factor: supercell.Factor{5, 5, 5}}}
	r, err := supercell.NewRescaler(steps)
	require.NoError(t, err)
	steps[0].Factor = supercell.Factor{9, 9, 9}
	assert.Equal(t, supercell.Factor{5, 5, 5}, r.Factor(1), "table copied")
	assert.Equal(t, supercell.Identity(), r.Factor(2))

	empty, err := supercell.NewRescaler(nil)
	require.NoError(t, err)
	assert.Equal(t, supercell.Identity(), empty.Factor(1))
}
