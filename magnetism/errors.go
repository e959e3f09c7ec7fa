// SPDX-License-Identifier: MIT
// Package: magcell/magnetism
//
// errors.go — sentinel errors for the magnetism package.
//
// Exhausting the attempt budget is NOT an error: Antiferromagnetic returns a
// shorter Enumeration with Exhausted=true.

package magnetism

import "errors"

var (
	// ErrNonMagnetic indicates all moments are zero; callers route such
	// structures to the ferromagnetic (or preserve) branch instead.
	ErrNonMagnetic = errors.New("magnetism: structure is not magnetic")

	// ErrNegativeCount indicates a requested configuration count below zero.
	ErrNegativeCount = errors.New("magnetism: count must be >= 0")

	// ErrNeedRandSource indicates the enumerator was built without an RNG.
	ErrNeedRandSource = errors.New("magnetism: rng is required")

	// ErrUnsupportedScheme indicates an unknown magnetization scheme.
	ErrUnsupportedScheme = errors.New("magnetism: unsupported scheme")
)

const (
	methodAntiferromagnetic = "Antiferromagnetic"
	methodMagnetize         = "Magnetize"
	methodFerromagnetic     = "Ferromagnetic"
	methodParseScheme       = "ParseScheme"
)
