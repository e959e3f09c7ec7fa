// Package structure is the in-memory model of an atomic structure: an ordered
// list of sites, each owning a chemical Species, fractional coordinates, a
// scalar magnetic moment and optional extra properties, plus the periodic
// Lattice that carries them.
//
// What:
//
//   - Species: element symbol with an optional oxidation state. Comparable,
//     totally ordered (Compare) so it can key maps and be deduplicated.
//   - Site: one position in a structure. Index within the structure is its
//     identity for enumeration purposes.
//   - MomentVector: one scalar moment per site; equality is element-wise.
//   - Structure: immutable once built. Every transformation (WithMoments,
//     WithSpecies, Supercell) returns a new owned *Structure and never
//     touches the receiver.
//
// Why:
//
//   - Magnetic enumeration and coordination classification both work on
//     copies; nobody mutates a structure another caller still references.
//
// Complexity:
//
//   - New, Clone, WithMoments, WithSpecies: O(n) time and memory.
//   - Supercell(nx,ny,nz):                 O(n·nx·ny·nz).
//
// Errors:
//
//   - ErrNilStructure: nil *Structure where one is required.
//   - ErrEmptyElement: a Species without an element symbol.
//   - ErrNaNInf: NaN or ±Inf coordinate, lattice entry or moment.
//   - ErrSiteIndex: site index out of range.
//   - ErrLengthMismatch: per-site vector length differs from site count.
//   - ErrBadFactor: supercell replication factor < 1.
package structure
