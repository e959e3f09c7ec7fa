// Package magnetism enumerates collinear magnetic configurations of a
// structure: the ferromagnetic reference and a bounded set of distinct
// antiferromagnetic sign-flip variants.
//
// 🚀 What is a sign-flip enumeration?
//
//	Starting from the ferromagnetic moments |m_i|, each candidate draws an
//	independent sign s_i ∈ {−1,+1} per site and multiplies it in. Candidates
//	equal to the ferromagnetic vector or to an already accepted candidate are
//	rejected. Exhaustive enumeration is 2^n; the random search is bounded by
//	an attempt budget instead and may return fewer configurations than asked.
//
// ⚙️ Usage:
//
//	e := magnetism.NewEnumerator(magnetism.WithSeed(42), magnetism.WithMaxAttempts(100))
//	variants, err := e.Magnetize(s, magnetism.SchemeFMAFM, 3)
//	// variants: FM, AFM1, AFM2, AFM3 (fewer AFM if the budget ran out)
//
// Determinism:
//
//   - The RNG is injected (WithSeed / WithRand); identical seeds and inputs
//     give identical output sequences.
//   - Labels are assigned in acceptance order: AFM1, AFM2, ...
//
// Errors:
//
//   - ErrNonMagnetic:       every moment is zero; no AFM variant can exist.
//   - ErrNegativeCount:     requested count < 0.
//   - ErrNeedRandSource:    no RNG configured.
//   - ErrUnsupportedScheme: unknown magnetization scheme name.
package magnetism
