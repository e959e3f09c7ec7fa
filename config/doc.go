// Package config loads the workflow configuration: the magnetization
// policy, the calculation type, classification tolerances and logging.
//
// Files are YAML (.yml, .yaml) or TOML (.toml). Loading applies defaults,
// then the file, then normalisation and validation; an unknown magnetization
// scheme fails here, before any structure is processed. Command-line
// overrides ("magnetization.scheme=AFM") go through the same tags catalog
// that describes every option's kind.
package config
