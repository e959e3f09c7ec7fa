// SPDX-License-Identifier: MIT
// Package: magcell/coordination
//
// classifier.go — transitive-closure clustering, chemical validation and
// reduction to one representative per environment.

package coordination

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/katalvlaran/magcell/structure"
)

// Classifier partitions sites by coordination environment. It keeps no
// per-call state and may be reused.
type Classifier struct {
	finder NeighborFinder
	cfg    classifierConfig
}

// NewClassifier returns a Classifier using finder for neighbour lists.
func NewClassifier(finder NeighborFinder, opts ...Option) (*Classifier, error) {
	if finder == nil {
		return nil, ErrNilFinder
	}

	return &Classifier{finder: finder, cfg: newClassifierConfig(opts...)}, nil
}

// Tolerance returns the configured signature tolerance.
func (c *Classifier) Tolerance() float64 {
	return c.cfg.tolerance
}

// Cluster is one equivalence class of sites.
type Cluster struct {
	// Species shared by every member (validated).
	Species structure.Species
	// Sites are the member indices, ascending.
	Sites []int
}

// Representative is the reduced entry of one Cluster.
type Representative struct {
	// Key is "{species}_site_{ordinal}".
	Key string
	// Species of the cluster.
	Species structure.Species
	// Index is the lowest site index of the cluster.
	Index int
	// Members lists every site of the cluster, ascending.
	Members []int
}

// Classification is the ordered result of Classify, one entry per cluster in
// discovery order.
type Classification []Representative

// Map returns key → representative.
func (cl Classification) Map() map[string]Representative {
	out := make(map[string]Representative, len(cl))
	for _, r := range cl {
		out[r.Key] = r
	}

	return out
}

// Keys returns the keys in discovery order.
func (cl Classification) Keys() []string {
	out := make([]string, len(cl))
	for i, r := range cl {
		out[i] = r.Key
	}

	return out
}

// Clusters groups the sites of s into validated equivalence clusters.
//
// Steps:
//  1. Compute signatures.
//  2. For every pair i<j with Distance(i,j) ≤ tolerance, union(i,j).
//  3. Read the components ordered by lowest member.
//  4. Reject any component spanning more than one species.
//
// Errors: everything Signatures returns, plus *ChemicalInconsistencyError.
func (c *Classifier) Clusters(s *structure.Structure) ([]Cluster, error) {
	// 1. Signatures.
	sig, err := c.Signatures(s)
	if err != nil {
		return nil, err
	}

	// 2. Union every indistinguishable pair; the relation need not be
	//    transitive, the components are its closure.
	n := len(sig.Rows)
	ds := newDisjointSet(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sig.Distance(i, j) <= c.cfg.tolerance {
				ds.union(i, j)
			}
		}
	}

	// 3-4. Components in discovery order, validated.
	species := s.Species()
	groups := ds.groups()
	clusters := make([]Cluster, 0, len(groups))
	for _, g := range groups {
		members := make([]structure.Species, len(g))
		for k, idx := range g {
			members[k] = species[idx]
		}
		distinct := structure.UniqueSpecies(members)
		if len(distinct) > 1 {
			return nil, fmt.Errorf("%s: %w", methodClusters, &ChemicalInconsistencyError{
				Sites:     g,
				Species:   distinct,
				Tolerance: c.cfg.tolerance,
			})
		}
		clusters = append(clusters, Cluster{Species: distinct[0], Sites: g})
	}

	c.cfg.logger.Debug("classified coordination environments",
		slog.Int("sites", n),
		slog.Int("clusters", len(clusters)),
		slog.Float64("tolerance", c.cfg.tolerance))

	return clusters, nil
}

// Classify reduces s to one representative site per coordination environment.
// On any error no partial classification is returned.
func (c *Classifier) Classify(s *structure.Structure) (Classification, error) {
	clusters, err := c.Clusters(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodClassify, err)
	}

	ordinal := make(map[structure.Species]int)
	out := make(Classification, 0, len(clusters))
	for _, cl := range clusters {
		ordinal[cl.Species]++
		out = append(out, Representative{
			Key:     SiteKey(cl.Species, ordinal[cl.Species]),
			Species: cl.Species,
			Index:   cl.Sites[0],
			Members: cl.Sites,
		})
	}

	return out, nil
}

// SiteKey renders the classification key "{species}_site_{ordinal}".
func SiteKey(sp structure.Species, ordinal int) string {
	return sp.String() + "_site_" + strconv.Itoa(ordinal)
}
