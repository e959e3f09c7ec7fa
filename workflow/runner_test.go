package workflow_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magcell/config"
	"github.com/katalvlaran/magcell/coordination"
	"github.com/katalvlaran/magcell/magnetism"
	"github.com/katalvlaran/magcell/structure"
	"github.com/katalvlaran/magcell/supercell"
	"github.com/katalvlaran/magcell/workflow"
)

func ironChain(t *testing.T) *structure.Structure {
	t.Helper()
	fe := structure.NewSpecies("Fe")
	s, err := structure.New(structure.Cubic(8), []structure.Site{
		{Species: fe, Coords: [3]float64{0, 0, 0}, Magmom: 2},
		{Species: fe, Coords: [3]float64{0.25, 0, 0}, Magmom: -2},
		{Species: fe, Coords: [3]float64{0.5, 0, 0}, Magmom: 2},
		{Species: fe, Coords: [3]float64{0.75, 0, 0}, Magmom: 2},
	})
	require.NoError(t, err)

	return s
}

func rockSalt(t *testing.T) *structure.Structure {
	t.Helper()
	na := structure.NewSpecies("Na")
	cl := structure.NewSpecies("Cl")
	s, err := structure.New(structure.Cubic(5.64), []structure.Site{
		{Species: na, Coords: [3]float64{0, 0, 0}},
		{Species: na, Coords: [3]float64{0.5, 0.5, 0}},
		{Species: na, Coords: [3]float64{0.5, 0, 0.5}},
		{Species: na, Coords: [3]float64{0, 0.5, 0.5}},
		{Species: cl, Coords: [3]float64{0.5, 0, 0}},
		{Species: cl, Coords: [3]float64{0, 0.5, 0}},
		{Species: cl, Coords: [3]float64{0, 0, 0.5}},
		{Species: cl, Coords: [3]float64{0.5, 0.5, 0.5}},
	})
	require.NoError(t, err)

	return s
}

func seeded(scheme string) *config.Config {
	cfg := config.Default()
	cfg.Magnetization.Scheme = scheme
	cfg.Magnetization.Seed = 42

	return &cfg
}

func TestNew_Errors(t *testing.T) {
	_, err := workflow.New(nil)
	assert.ErrorIs(t, err, workflow.ErrNilConfig)

	cfg := seeded("ferri")
	_, err = workflow.New(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, magnetism.ErrUnsupportedScheme)
}

func TestRun_Bulk(t *testing.T) {
	r, err := workflow.New(seeded("FM+AFM"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), r.Seed())

	res, err := r.Run(context.Background(), []*structure.Structure{ironChain(t)})
	require.NoError(t, err)
	require.Len(t, res.Structures, 1)

	sr := res.Structures[0]
	assert.Equal(t, "Structure 1 (Fe4)", sr.Label)
	require.NotEmpty(t, sr.Variants)
	require.LessOrEqual(t, len(sr.Variants), 4)
	assert.Equal(t, magnetism.LabelFM, sr.Variants[0].Label)

	fm := sr.Variants[0].Structure.Moments()
	assert.Equal(t, structure.MomentVector{2, 2, 2, 2}, fm)
	for i, v := range sr.Variants {
		assert.Nil(t, v.Sites)
		if i == 0 {
			continue
		}
		assert.Equal(t, magnetism.AFMLabel(i), v.Label)
		assert.False(t, v.Structure.Moments().Equal(fm))
	}

	m := res.Variants()
	assert.Len(t, m["Structure 1 (Fe4)"], len(sr.Variants))
	assert.Equal(t, len(sr.Variants), res.VariantCount())
}

func TestRun_Deterministic(t *testing.T) {
	run := func() []structure.MomentVector {
		r, err := workflow.New(seeded("AFM"))
		require.NoError(t, err)
		res, err := r.Run(context.Background(), []*structure.Structure{ironChain(t)})
		require.NoError(t, err)
		var out []structure.MomentVector
		for _, v := range res.Structures[0].Variants {
			out = append(out, v.Structure.Moments())
		}

		return out
	}
	assert.Equal(t, run(), run())
}

func TestRun_Defect(t *testing.T) {
	cfg := seeded("AFM")
	cfg.Calculation.Type = config.CalculationDefect
	cfg.Calculation.Defect = "Li"

	r, err := workflow.New(cfg)
	require.NoError(t, err)

	res, err := r.Run(context.Background(), []*structure.Structure{ironChain(t), rockSalt(t)})
	require.NoError(t, err)
	require.Len(t, res.Structures, 2)
	assert.Equal(t, "Li", res.Defect)

	// Non-magnetic rock salt falls back to FM.
	nacl := res.Structures[1]
	assert.Equal(t, "Structure 2 (Na4 Cl4)", nacl.Label)
	require.Len(t, nacl.Variants, 1)
	assert.Equal(t, magnetism.LabelFM, nacl.Variants[0].Label)

	sites := nacl.Variants[0].Sites
	require.NotNil(t, sites)
	assert.Equal(t, supercell.Factor{3, 2, 2}, sites.Factor)
	assert.Equal(t, 96, sites.Supercell.Len())
	assert.Equal(t, []string{"Na_site_1", "Cl_site_1"}, sites.Sites.Keys())

	for _, v := range res.Structures[0].Variants {
		require.NotNil(t, v.Sites)
		assert.Equal(t, supercell.Factor{3, 3, 3}, v.Sites.Factor)
	}
}

func TestRun_ChemicalInconsistencyAborts(t *testing.T) {
	cfg := seeded("FM")
	cfg.Calculation.Type = config.CalculationDefect
	cfg.Calculation.Defect = "Li"

	blind := coordination.NeighborFinderFunc(func(*structure.Structure, int) ([]coordination.Neighbor, error) {
		return nil, nil
	})
	r, err := workflow.New(cfg, workflow.WithNeighborFinder(blind))
	require.NoError(t, err)

	res, err := r.Run(context.Background(), []*structure.Structure{rockSalt(t)})
	assert.Nil(t, res)
	require.ErrorIs(t, err, coordination.ErrChemicalInconsistency)

	var ce *coordination.ChemicalInconsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Len(t, ce.Species, 2)
}

func TestRun_InputErrors(t *testing.T) {
	r, err := workflow.New(seeded("FM"))
	require.NoError(t, err)

	_, err = r.Run(context.Background(), nil)
	assert.ErrorIs(t, err, workflow.ErrNoStructures)

	_, err = r.Run(context.Background(), []*structure.Structure{nil})
	assert.ErrorIs(t, err, structure.ErrNilStructure)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, []*structure.Structure{ironChain(t)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_LogsRunID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r, err := workflow.New(seeded("preserve"), workflow.WithLogger(log), workflow.WithRunID("run-1"))
	require.NoError(t, err)
	assert.Equal(t, "run-1", r.RunID())

	res, err := r.Run(context.Background(), []*structure.Structure{ironChain(t)})
	require.NoError(t, err)
	assert.Equal(t, "run-1", res.RunID)
	assert.Equal(t, []string{magnetism.LabelPreserve}, []string{res.Structures[0].Variants[0].Label})
	assert.Contains(t, buf.String(), `"run_id":"run-1"`)
	assert.Contains(t, buf.String(), `"msg":"workflow finished"`)
}

func TestNew_GeneratesRunID(t *testing.T) {
	a, err := workflow.New(seeded("FM"))
	require.NoError(t, err)
	b, err := workflow.New(seeded("FM"))
	require.NoError(t, err)
	assert.NotEmpty(t, a.RunID())
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestClassify_CustomRescalerAndRand(t *testing.T) {
	identity, err := supercell.NewRescaler(nil)
	require.NoError(t, err)

	r, err := workflow.New(seeded("AFM"),
		workflow.WithRescaler(identity),
		workflow.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	assert.Zero(t, r.Seed())

	m, err := r.Classify(rockSalt(t))
	require.NoError(t, err)
	assert.Equal(t, supercell.Identity(), m.Factor)
	assert.Equal(t, 8, m.Supercell.Len())
	require.Len(t, m.Sites, 2)
	assert.Equal(t, []int{0, 1, 2, 3}, m.Sites[0].Members)
	assert.Equal(t, 4, m.Sites[1].Index)
}
