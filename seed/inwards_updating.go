package seed

import (
	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/digraph"
	"github.com/katalvlaran/nngcluster/ids"
	"github.com/katalvlaran/nngcluster/sortindex"
)

// inwardsUpdating builds the inwards-count sort with live decrement and
// scans sorted_vertices left to right, the cursor being the current scan
// position p. After a successful trySeed(v), every candidate b reachable
// through an out-neighbor a of v loses one potential seed-making in-arc
// (a is now claimed), so its position is promoted toward the cursor.
func inwardsUpdating(g *digraph.Digraph) (*SeedResult, []ids.ClusterLabel, *cerr.Error) {
	si, err := sortindex.Build(g, true, false)
	if err != nil {
		return nil, nil, err
	}
	st := newState(g)

	for p := 0; p < si.Len(); p++ {
		v := si.VertexAt(p)
		ok, tErr := st.trySeed(v)
		if tErr != nil {
			return nil, nil, tErr
		}
		if !ok {
			continue
		}
		if dErr := promoteCandidates(g, si, st, g.Out(v), p); dErr != nil {
			return nil, nil, dErr
		}
	}
	return st.seeds, st.labels, nil
}

// promoteCandidates decrements every still-candidate b reachable as
// out(a) for a in froms, where a candidate is unmarked, strictly after
// the cursor in sorted_vertices, and has a non-empty out-neighborhood.
func promoteCandidates(g *digraph.Digraph, si *sortindex.SortIndex, st *state, froms []ids.PointIndex, cursor int) *cerr.Error {
	for _, a := range froms {
		for _, b := range g.Out(a) {
			if st.marks[b] {
				continue
			}
			if si.PositionOf(b) <= cursor {
				continue
			}
			if g.OutDegree(b) == 0 {
				continue
			}
			if si.CountOf(b) <= 0 {
				continue
			}
			if dErr := si.Decrement(b, cursor); dErr != nil {
				return dErr
			}
		}
	}
	return nil
}
