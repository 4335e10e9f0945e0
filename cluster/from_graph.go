package cluster

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/digraph"
	"github.com/katalvlaran/nngcluster/seed"
)

// NNGClusteringFromGraph runs a seed-finding heuristic directly over an
// already-built nearest-neighbor digraph g, per spec section 4.D/4.F:
// every accepted seed becomes a cluster, and its out-neighbors become
// that cluster's members; a vertex never accepted as a seed and never
// claimed by one stays at ids.CNA.
func NNGClusteringFromGraph(g *digraph.Digraph, method SeedMethod) (*Clustering, *cerr.Error) {
	if g == nil {
		return nil, cerr.New(cerr.InvalidInput, errors.New("cluster.NNGClusteringFromGraph: digraph must be non-nil"))
	}

	seeds, labels, sErr := seed.Find(method, g)
	if sErr != nil {
		return nil, sErr
	}

	return &Clustering{
		n:              g.Vertices(),
		numClusters:    seeds.Len(),
		label:          labels,
		externalLabels: false,
	}, nil
}
