// Package coordination classifies the sites of a structure by local
// coordination environment and reduces every equivalence class to a single
// representative site.
//
// What:
//
//   - Signature: for site i, Σ weight(i→j) over neighbours j, accumulated per
//     distinct species of j. One column per species present in the structure.
//   - Clustering: two sites are indistinguishable when the Euclidean distance
//     of their signatures is ≤ tolerance. Clusters are the connected
//     components (transitive closure) of that relation, built with a
//     disjoint-set union; iteration order never changes the partition.
//   - Validation: a cluster holding more than one species is a
//     *ChemicalInconsistencyError. The whole call fails; nothing partial is
//     returned and the tolerance is never tightened automatically.
//   - Reduction: each cluster yields one Representative keyed
//     "{species}_site_{ordinal}", ordinal counting 1,2,... per species in
//     cluster-discovery order (clusters ordered by their lowest site index).
//
// Neighbours come from a NeighborFinder. Production callers inject their own
// bond-strength analysis; CutoffFinder is a plain periodic-radius reference.
//
// Complexity:
//
//   - Signatures: O(Σ|N(i)|) plus the finder's cost; optionally parallel.
//   - Clustering: O(n²·k) distance checks (k = species count), α(n) unions.
//
// Errors:
//
//   - ErrChemicalInconsistency: matched by errors.Is on *ChemicalInconsistencyError.
//   - ErrNilFinder:             NewClassifier without a finder.
//   - ErrNeighborIndex:         finder returned an index outside the structure.
//   - ErrBadWeight:             finder returned a NaN or ±Inf weight.
//   - ErrBadCutoff:             CutoffFinder radius not > 0.
package coordination
