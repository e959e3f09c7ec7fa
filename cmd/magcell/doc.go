// Command magcell expands crystal structures into magnetic variants and
// reduces them to symmetry-distinct sites.
//
//	magcell enumerate structures.yaml            magnetic variants per structure
//	magcell classify structures.yaml             representative sites per structure
//	magcell config show                          effective configuration
//	magcell config keys [--catalog tags.yaml]    overridable keys and their kinds
//	magcell config parse <key> <value>           typed value of one key
//
// Configuration comes from --config (YAML or TOML), then every --set
// key=value in order, then --log-level.
package main
