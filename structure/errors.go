// SPDX-License-Identifier: MIT
// Package: magcell/structure
//
// errors.go — sentinel errors for the structure package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method, index, lengths) is attached with fmt.Errorf("...: %w").
//   • Constructors and transformations never panic on user input.

package structure

import "errors"

var (
	// ErrNilStructure indicates a nil *Structure was passed where a value is required.
	ErrNilStructure = errors.New("structure: structure is nil")

	// ErrEmptyElement indicates a Species has an empty element symbol.
	ErrEmptyElement = errors.New("structure: species element is empty")

	// ErrNaNInf indicates a NaN or ±Inf coordinate, lattice entry or moment.
	ErrNaNInf = errors.New("structure: NaN or Inf encountered")

	// ErrSiteIndex indicates a site index outside [0, Len()).
	ErrSiteIndex = errors.New("structure: site index out of range")

	// ErrLengthMismatch indicates a per-site vector whose length differs from Len().
	ErrLengthMismatch = errors.New("structure: length does not match site count")

	// ErrBadFactor indicates a supercell replication factor smaller than 1.
	ErrBadFactor = errors.New("structure: replication factor must be >= 1")
)

// method tags used to prefix wrapped errors.
const (
	methodNew         = "New"
	methodWithMoments = "WithMoments"
	methodWithSpecies = "WithSpecies"
	methodSupercell   = "Supercell"
	methodSite        = "Site"
)
