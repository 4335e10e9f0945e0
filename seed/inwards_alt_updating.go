package seed

import (
	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/digraph"
	"github.com/katalvlaran/nngcluster/ids"
	"github.com/katalvlaran/nngcluster/sortindex"
)

// inwardsAltUpdating is inwardsUpdating with two changes (spec section
// 4.D): the promotion pass also fires when v is examined and skipped
// because some out-neighbor is already marked (but v itself is not), and
// on the accept path expansion through a given out-neighbor a additionally
// requires cursor < vertex_index[a] - a has not yet been passed by the
// scan.
func inwardsAltUpdating(g *digraph.Digraph) (*SeedResult, []ids.ClusterLabel, *cerr.Error) {
	si, err := sortindex.Build(g, true, false)
	if err != nil {
		return nil, nil, err
	}
	st := newState(g)

	for p := 0; p < si.Len(); p++ {
		v := si.VertexAt(p)
		wasMarked := st.marks[v]
		ok, tErr := st.trySeed(v)
		if tErr != nil {
			return nil, nil, tErr
		}
		switch {
		case ok:
			froms := make([]ids.PointIndex, 0, len(g.Out(v)))
			for _, a := range g.Out(v) {
				if p < si.PositionOf(a) {
					froms = append(froms, a)
				}
			}
			if dErr := promoteCandidates(g, si, st, froms, p); dErr != nil {
				return nil, nil, dErr
			}
		case !wasMarked:
			if dErr := promoteCandidates(g, si, st, g.Out(v), p); dErr != nil {
				return nil, nil, dErr
			}
		}
	}
	return st.seeds, st.labels, nil
}
