// Package seed implements the six seed-selection heuristics of spec
// section 4.D (lexical, inwards_order, inwards_updating,
// inwards_alt_updating, exclusion_order, exclusion_updating): given a
// nearest-neighbor digraph, each produces a set of seeds with pairwise
// disjoint closed out-neighborhoods, plus the per-point cluster label
// array that assignment implies.
package seed

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/ids"
)

// SeedResult is the dynamically grown list of seed point indices of spec
// section 3: it grows by cap + cap/8 + 1024, capped at CMAX, rather than
// relying on Go's built-in append growth policy, so the capacity ceiling
// from the data model is enforced explicitly instead of implicitly.
type SeedResult struct {
	Points []ids.PointIndex
}

// Len returns the number of seeds collected so far.
func (s *SeedResult) Len() int { return len(s.Points) }

// append adds v to the seed list, growing the backing array under the
// spec's growth formula when full. Returns TooLargeProblem if the list
// has already reached CMAX capacity.
func (s *SeedResult) append(v ids.PointIndex) *cerr.Error {
	if len(s.Points) == cap(s.Points) {
		if cap(s.Points) >= ids.CMAX {
			return cerr.New(cerr.TooLargeProblem, errors.New("seed: seed count would exceed CMAX"))
		}
		newCap := cap(s.Points) + cap(s.Points)/8 + 1024
		if newCap > ids.CMAX {
			newCap = ids.CMAX
		}
		grown := make([]ids.PointIndex, len(s.Points), newCap)
		copy(grown, s.Points)
		s.Points = grown
	}
	s.Points = append(s.Points, v)
	return nil
}
