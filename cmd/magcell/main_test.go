package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magcell/config"
	"github.com/katalvlaran/magcell/tags"
)

const fixture = "testdata/structures.yaml"

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEnumerate_Table(t *testing.T) {
	out, stderr, err := runCLI(t, "enumerate", fixture,
		"--set", "magnetization.scheme=FM+AFM",
		"--set", "magnetization.seed=7")
	require.NoError(t, err)

	assert.Contains(t, out, "Structure 1 (Fe4)")
	assert.Contains(t, out, "Structure 2 (Na4 Cl4)")
	assert.Contains(t, out, "4 4 4 4")
	assert.Contains(t, out, "AFM1")
	assert.Contains(t, out, "variants from 2 structures")
	assert.Contains(t, stderr, `"msg":"workflow started"`)
}

func TestEnumerate_JSONDefect(t *testing.T) {
	out, _, err := runCLI(t, "enumerate", fixture, "--json",
		"--set", "magnetization.seed=7",
		"--set", "calculation.type=defect",
		"--set", "calculation.defect=Li",
		"--log-level", "error")
	require.NoError(t, err)

	var view resultView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, config.CalculationDefect, view.Calculation)
	assert.Equal(t, "Li", view.Defect)
	require.Len(t, view.Structures, 2)

	fe := view.Structures[0]
	require.Len(t, fe.Variants, 1)
	assert.Equal(t, []float64{4, 4, 4, 4}, fe.Variants[0].Moments)
	require.NotNil(t, fe.Variants[0].Sites)
	assert.Equal(t, "3×3×3", fe.Variants[0].Sites.Factor)
	assert.Equal(t, 108, fe.Variants[0].Sites.SupercellSites)
	require.Len(t, fe.Variants[0].Sites.Environments, 1)
	assert.Equal(t, "Fe3+_site_1", fe.Variants[0].Sites.Environments[0].Key)
	assert.Len(t, fe.Variants[0].Sites.Environments[0].Members, 108)
}

func TestClassify(t *testing.T) {
	out, _, err := runCLI(t, "classify", fixture)
	require.NoError(t, err)
	for _, want := range []string{"Fe3+_site_1", "Na_site_1", "Cl_site_1", "3×2×2", "3×3×3"} {
		assert.Contains(t, out, want)
	}
}

func TestClassify_ChemicalInconsistency(t *testing.T) {
	// A cutoff below every bond length leaves all signatures empty.
	_, _, err := runCLI(t, "classify", fixture, "--set", "classification.cutoff=0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Structure 2 (Na4 Cl4)")
}

func TestConfigShow(t *testing.T) {
	path := writeFile(t, "magcell.toml", "[magnetization]\nscheme = \"AFM\"\nmax_antiferro = 2\n")

	out, _, err := runCLI(t, "config", "show", "-c", path, "--set", "classification.workers=4")
	require.NoError(t, err)
	assert.Contains(t, out, "scheme: AFM")
	assert.Contains(t, out, "max_antiferro: 2")
	assert.Contains(t, out, "workers: 4")

	out, _, err = runCLI(t, "config", "show", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[magnetization]")
}

func TestConfigKeys(t *testing.T) {
	out, _, err := runCLI(t, "config", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "magnetization.scheme")
	assert.Contains(t, out, "preserve, FM, AFM, FM+AFM")
	assert.Contains(t, out, ">= 0")
}

func TestConfigKeys_ExtraCatalog(t *testing.T) {
	path := writeFile(t, "tags.yaml", "MAGMOM: list\nENCUT: {kind: float, min: positive}\nALGO: [Fast, Normal]\n")

	out, _, err := runCLI(t, "config", "keys", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MAGMOM")
	assert.Contains(t, out, tags.List().Kind.String())
	assert.Contains(t, out, "Fast, Normal")
	assert.Contains(t, out, "magnetization.scheme")

	out, _, err = runCLI(t, "config", "parse", "MAGMOM", "4 -4 4", "--catalog", path)
	require.NoError(t, err)
	assert.Equal(t, "MAGMOM (list): [4 -4 4]\n", out)

	out, _, err = runCLI(t, "config", "parse", "classification.workers", "8")
	require.NoError(t, err)
	assert.Equal(t, "classification.workers (int): 8\n", out)

	_, _, err = runCLI(t, "config", "parse", "ENCUT", "0", "--catalog", path)
	assert.ErrorIs(t, err, tags.ErrConstraint)

	dup := writeFile(t, "dup.yaml", "log.level: string\n")
	_, _, err = runCLI(t, "config", "keys", "--catalog", dup)
	assert.ErrorIs(t, err, tags.ErrDuplicateTag)

	bad := writeFile(t, "bad.yaml", "NPAR: complex\n")
	_, _, err = runCLI(t, "config", "keys", "--catalog", bad)
	assert.ErrorIs(t, err, tags.ErrUnknownKind)
}

func TestCLI_Errors(t *testing.T) {
	_, _, err := runCLI(t, "config", "show", "--set", "magnetization.scheme=ferri")
	assert.ErrorIs(t, err, tags.ErrNotAllowed)

	_, _, err = runCLI(t, "enumerate")
	assert.Error(t, err)

	_, _, err = runCLI(t, "enumerate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, "bad.yaml", "structures:\n  - cubic: 4\n    sites:\n      - {species: Fe, coords: [0, 0]}\n")
	_, _, err = runCLI(t, "enumerate", bad)
	assert.ErrorIs(t, err, errBadDocument)
}

func TestDecodeStructures(t *testing.T) {
	_, err := decodeStructures(strings.NewReader(""))
	assert.ErrorIs(t, err, errBadDocument)

	_, err = decodeStructures(strings.NewReader("structures:\n  - cubic: 4\n    lattice: [[1,0,0],[0,1,0],[0,0,1]]\n"))
	assert.ErrorIs(t, err, errBadDocument)

	_, err = decodeStructures(strings.NewReader("structure: []\n"))
	assert.Error(t, err)

	list, err := decodeStructures(strings.NewReader(
		"structures:\n  - lattice: [[3,0,0],[0,3,0],[0,0,4]]\n    sites:\n      - {species: O, oxidation: -2, coords: [0.5, 0.5, 0.5], properties: {charge: -2}}\n"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	site, err := list[0].Site(0)
	require.NoError(t, err)
	assert.Equal(t, "O2-", site.Species.String())
	assert.Equal(t, -2.0, site.Properties["charge"])
	assert.Equal(t, 4.0, list[0].Lattice()[2][2])
}
