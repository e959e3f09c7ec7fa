// Package tags describes configuration values by kind and parses raw text
// into typed values.
//
// A Spec is a closed variant: Int, Float, Bool, String, List or Choice.
// Catalogs are written in YAML where each entry's shape decides its kind:
//
//	NPAR: int                 # scalar → kind name
//	EDIFF: float
//	LWAVE: bool
//	MAGMOM: list
//	IOPT: [0, 1, 2, 3, 4, 7]  # sequence → choice of allowed values
//	ENCUT: {kind: float, min: positive}
//
// No runtime type inspection is needed: the YAML node kind (scalar,
// sequence, mapping) selects the variant.
package tags
