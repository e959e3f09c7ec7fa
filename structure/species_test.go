package structure_test

import (
	"testing"

	"github.com/katalvlaran/magcell/structure"
	"github.com/stretchr/testify/assert"
)

func TestSpecies_String(t *testing.T) {
	cases := []struct {
		sp   structure.Species
		want string
	}{
		{structure.NewSpecies("Fe"), "Fe"},
		{structure.NewSpecies("Fe").WithOxidation(3), "Fe3+"},
		{structure.NewSpecies("O").WithOxidation(-2), "O2-"},
		{structure.NewSpecies("Na").WithOxidation(1), "Na+"},
		{structure.NewSpecies("Cl").WithOxidation(-1), "Cl-"},
		{structure.NewSpecies("Ar").WithOxidation(0), "Ar0+"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.sp.String())
	}
}

// TestUniqueSpecies checks ordering and deduplication, including oxidation.
func TestUniqueSpecies(t *testing.T) {
	fe2 := structure.NewSpecies("Fe").WithOxidation(2)
	fe3 := structure.NewSpecies("Fe").WithOxidation(3)
	fe := structure.NewSpecies("Fe")
	o := structure.NewSpecies("O")

	in := []structure.Species{o, fe3, fe2, fe, o, fe3}
	got := structure.UniqueSpecies(in)

	assert.Equal(t, []structure.Species{fe, fe2, fe3, o}, got)
	assert.Equal(t, o, in[0], "input not reordered")
	assert.Equal(t, 0, fe3.Compare(structure.NewSpecies("Fe").WithOxidation(3)))
	assert.True(t, fe2 != fe3)
}

func TestMomentVector(t *testing.T) {
	m := structure.MomentVector{-2, 0, 3}
	assert.Equal(t, structure.MomentVector{2, 0, 3}, m.Abs())
	assert.True(t, m.Equal(structure.MomentVector{-2, 0, 3}))
	assert.False(t, m.Equal(structure.MomentVector{-2, 0}))
	assert.False(t, m.IsZero())
	assert.True(t, structure.MomentVector{0, 0}.IsZero())

	c := m.Clone()
	c[0] = 5
	assert.Equal(t, -2.0, m[0])
}
