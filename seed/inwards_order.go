package seed

import (
	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/digraph"
	"github.com/katalvlaran/nngcluster/ids"
	"github.com/katalvlaran/nngcluster/sortindex"
)

// inwardsOrder builds the inwards-count sort without live decrement and
// scans sorted_vertices once, trying each vertex as a seed in ascending
// in-degree order.
func inwardsOrder(g *digraph.Digraph) (*SeedResult, []ids.ClusterLabel, *cerr.Error) {
	si, err := sortindex.Build(g, false, false)
	if err != nil {
		return nil, nil, err
	}
	st := newState(g)
	for i := 0; i < si.Len(); i++ {
		if _, tErr := st.trySeed(si.VertexAt(i)); tErr != nil {
			return nil, nil, tErr
		}
	}
	return st.seeds, st.labels, nil
}
