// Package magcell turns crystal structures into the magnetic and
// site-resolved variants an electronic-structure workflow runs on.
//
// 🚀 What is magcell?
//
//	A small, deterministic-when-seeded toolkit that brings together:
//		• Structure model: species (with oxidation states), sites, lattice, supercells
//		• Magnetism: ferromagnetic alignment and bounded random AFM enumeration
//		• Coordination: per-species signatures, union-find clustering, one site per environment
//		• Supercells: a fixed step table choosing the replication factor by size
//		• Workflow: config-driven batch runs with run ids and structured logs
//
// Under the hood, everything is organized under these subpackages:
//
//	structure/    — Species, Site, Lattice, Structure, MomentVector
//	magnetism/    — Enumerator, Scheme, Magnetize (preserve, FM, AFM, FM+AFM)
//	coordination/ — Classifier, NeighborFinder, CutoffFinder
//	supercell/    — Rescaler and its step table
//	tags/         — tagged value kinds for configuration keys
//	config/       — defaults, YAML/TOML loading, validation, --set overrides
//	logging/      — slog construction
//	workflow/     — Runner tying everything together
//	cmd/magcell/  — the CLI
//
// Quick ASCII example (two Fe sites, moments 3 and 3):
//
//	FM   ↑ ↑
//	AFM1 ↑ ↓
//	AFM2 ↓ ↑
//	AFM3 ↓ ↓
//
//	go install github.com/katalvlaran/magcell/cmd/magcell@latest
package magcell
