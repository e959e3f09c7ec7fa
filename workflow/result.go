package workflow

import (
	"strconv"

	"github.com/katalvlaran/magcell/coordination"
	"github.com/katalvlaran/magcell/structure"
	"github.com/katalvlaran/magcell/supercell"
)

// StructureLabel renders the label of the n-th input structure (1-based).
func StructureLabel(n int, s *structure.Structure) string {
	return "Structure " + strconv.Itoa(n) + " (" + s.Formula() + ")"
}

// SiteMap is the classification of one rescaled structure.
type SiteMap struct {
	Factor    supercell.Factor
	Supercell *structure.Structure
	Sites     coordination.Classification
}

// VariantResult is one magnetic variant. Sites is nil for bulk calculations.
type VariantResult struct {
	Label     string
	Structure *structure.Structure
	Sites     *SiteMap
}

// StructureResult groups the variants of one input structure.
type StructureResult struct {
	Label    string
	Formula  string
	Variants []VariantResult
}

// Result is the output of a Runner.Run call.
type Result struct {
	RunID       string
	Calculation string
	Defect      string
	Structures  []StructureResult
}

// VariantCount returns the total number of variants over all structures.
func (r *Result) VariantCount() int {
	n := 0
	for _, s := range r.Structures {
		n += len(s.Variants)
	}

	return n
}

// Variants returns structure label → variant label → structure.
func (r *Result) Variants() map[string]map[string]*structure.Structure {
	out := make(map[string]map[string]*structure.Structure, len(r.Structures))
	for _, s := range r.Structures {
		m := make(map[string]*structure.Structure, len(s.Variants))
		for _, v := range s.Variants {
			m[v.Label] = v.Structure
		}
		out[s.Label] = m
	}

	return out
}
