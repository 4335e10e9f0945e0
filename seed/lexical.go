package seed

import (
	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/digraph"
	"github.com/katalvlaran/nngcluster/ids"
)

// lexical scans v = 0..n in index order, trying each as a seed. The
// result is a deterministic function of the input (spec section 8).
func lexical(g *digraph.Digraph) (*SeedResult, []ids.ClusterLabel, *cerr.Error) {
	st := newState(g)
	for v := 0; v < g.Vertices(); v++ {
		if _, err := st.trySeed(v); err != nil {
			return nil, nil, err
		}
	}
	return st.seeds, st.labels, nil
}
