// Package supercell chooses how many times to replicate a structure along
// its three lattice axes before site-specific analysis, and applies it.
//
// The policy is a monotone step table keyed by site count: small cells get
// larger, more isotropic replication; beyond the last step nothing is
// replicated. The default table:
//
//	sites ≤ 2  → 4×4×4        sites ≤ 16 → 2×2×2
//	sites ≤ 4  → 3×3×3        sites ≤ 32 → 2×2×1
//	sites ≤ 7  → 3×3×2        sites ≤ 64 → 2×1×1
//	sites ≤ 10 → 3×2×2        otherwise  → 1×1×1
//
// Replication itself is structure.Structure.Supercell.
package supercell
