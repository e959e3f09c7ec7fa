package magnetism

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/magcell/structure"
)

// Variant labels.
const (
	LabelPreserve = "preserve"
	LabelFM       = "FM"
	labelAFMBase  = "AFM"
)

// AFMLabel returns the label of the k-th accepted antiferromagnetic variant (1-based).
func AFMLabel(k int) string {
	return labelAFMBase + strconv.Itoa(k)
}

// Variant is one labelled magnetic configuration of a structure.
type Variant struct {
	Label     string
	Structure *structure.Structure
}

// Variants is an ordered list of variants: preserve or FM first, then AFM1, AFM2, ...
type Variants []Variant

// Labels returns the variant labels in order.
func (v Variants) Labels() []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = x.Label
	}

	return out
}

// Map returns label → structure.
func (v Variants) Map() map[string]*structure.Structure {
	out := make(map[string]*structure.Structure, len(v))
	for _, x := range v {
		out[x.Label] = x.Structure
	}

	return out
}

// Ferromagnetic returns a copy of s with every moment replaced by its
// absolute value, aligning all spins.
func Ferromagnetic(s *structure.Structure) (*structure.Structure, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", methodFerromagnetic, structure.ErrNilStructure)
	}

	return s.WithMoments(s.Moments().Abs())
}

// Magnetize produces the variants scheme asks for:
//
//	preserve → [preserve]             (the input as-is, copied)
//	FM       → [FM]
//	AFM      → [AFM1 .. AFMk]          or [FM] when s is not magnetic
//	FM+AFM   → [FM, AFM1 .. AFMk]      or [FM] when s is not magnetic
//
// k ≤ maxAFM; fewer when the attempt budget runs out.
func (e *Enumerator) Magnetize(s *structure.Structure, scheme Scheme, maxAFM int) (Variants, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", methodMagnetize, structure.ErrNilStructure)
	}

	switch scheme {
	case SchemePreserve:
		return Variants{{Label: LabelPreserve, Structure: s.Clone()}}, nil
	case SchemeFM, SchemeAFM, SchemeFMAFM:
	default:
		return nil, fmt.Errorf("%s: %v: %w", methodMagnetize, scheme, ErrUnsupportedScheme)
	}

	ferro, err := Ferromagnetic(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMagnetize, err)
	}
	fm := Variant{Label: LabelFM, Structure: ferro}
	if scheme == SchemeFM {
		return Variants{fm}, nil
	}

	// Non-magnetic structures have no AFM variants; fall back to FM.
	moments := ferro.Moments()
	if moments.IsZero() {
		e.cfg.logger.Info("structure is not magnetic; using ferromagnetic variant",
			slog.String("formula", s.Formula()))
		return Variants{fm}, nil
	}

	enum, err := e.Antiferromagnetic(moments, maxAFM)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodMagnetize, err)
	}

	var out Variants
	if scheme == SchemeFMAFM {
		out = append(out, fm)
	}
	for k, cfg := range enum.Configs {
		afm, err := ferro.WithMoments(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", methodMagnetize, AFMLabel(k+1), err)
		}
		out = append(out, Variant{Label: AFMLabel(k + 1), Structure: afm})
	}

	return out, nil
}
