// SPDX-License-Identifier: MIT
// Package: magcell/coordination
//
// errors.go — sentinel errors and the typed chemical-inconsistency fault.

package coordination

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/magcell/structure"
)

var (
	// ErrChemicalInconsistency indicates a cluster of indistinguishable
	// environments spans more than one species. Fatal for the call.
	ErrChemicalInconsistency = errors.New("coordination: chemical inconsistency")

	// ErrNilFinder indicates a Classifier was requested without a NeighborFinder.
	ErrNilFinder = errors.New("coordination: neighbor finder is nil")

	// ErrNeighborIndex indicates a neighbour index outside [0, Len()).
	ErrNeighborIndex = errors.New("coordination: neighbor index out of range")

	// ErrBadWeight indicates a NaN or ±Inf neighbour weight.
	ErrBadWeight = errors.New("coordination: neighbor weight is NaN or Inf")

	// ErrBadCutoff indicates a non-positive or non-finite cutoff radius.
	ErrBadCutoff = errors.New("coordination: cutoff must be a finite value > 0")
)

const (
	methodSignatures = "Signatures"
	methodClusters   = "Clusters"
	methodClassify   = "Classify"
	methodNeighbors  = "Neighbors"
)

// ChemicalInconsistencyError reports the offending cluster: its member sites
// and the distinct species found among them. It unwraps to
// ErrChemicalInconsistency.
type ChemicalInconsistencyError struct {
	// Sites are the cluster members, ascending.
	Sites []int
	// Species are the distinct species among Sites, in Compare order.
	Species []structure.Species
	// Tolerance is the signature tolerance that merged them.
	Tolerance float64
}

// Error describes the cluster so that an operator can pick a tighter tolerance.
func (e *ChemicalInconsistencyError) Error() string {
	return fmt.Sprintf("%v: environments of sites %v are equal within tolerance %g but species %v differ",
		ErrChemicalInconsistency, e.Sites, e.Tolerance, e.Species)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ChemicalInconsistencyError) Unwrap() error {
	return ErrChemicalInconsistency
}
