package seed

import (
	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/digraph"
	"github.com/katalvlaran/nngcluster/ids"
	"github.com/katalvlaran/nngcluster/sortindex"
)

// buildExclusionGraph constructs X = (g ∪ (g·gᵀ, force_loops=true)) −
// tails_excluded, per spec section 4.D: g·gᵀ (with force_loops) makes
// v's row reach every vertex that shares a neighbor with v in g,
// modelling "these two cannot both be seeds". tails_excluded drops the
// rows of vertices that are already disqualified from being seeds
// because they have empty out(v) in g - without it, the gᵀ term would
// reintroduce arcs out of those rows (via force_loops pre-seeding with
// predecessors) and corrupt X's in-degree ordering. Per DESIGN.md open
// question 4, the filter is skipped entirely (nil tailsToKeep) when no
// vertex is excluded.
func buildExclusionGraph(g *digraph.Digraph) (*digraph.Digraph, *cerr.Error) {
	gt, err := digraph.Transpose(g)
	if err != nil {
		return nil, err
	}
	prod, err := digraph.AdjacencyProduct(g, gt, true, false)
	if err != nil {
		return nil, err
	}

	n := g.Vertices()
	anyExcluded := false
	for v := 0; v < n; v++ {
		if g.OutDegree(v) == 0 {
			anyExcluded = true
			break
		}
	}

	var tailsToKeep []bool
	if anyExcluded {
		tailsToKeep = make([]bool, n)
		for v := 0; v < n; v++ {
			tailsToKeep[v] = g.OutDegree(v) > 0
		}
	}
	return digraph.UnionAndDelete([]*digraph.Digraph{g, prod}, tailsToKeep)
}

// exclusionOrder scans X's inwards-count sort (frozen, no live decrement)
// and accepts v as a seed whenever not_excluded[v] still holds and v has
// a non-empty out-neighborhood in g; acceptance excludes v and every
// X-neighbor of v in a single pass.
func exclusionOrder(g *digraph.Digraph) (*SeedResult, []ids.ClusterLabel, *cerr.Error) {
	xg, err := buildExclusionGraph(g)
	if err != nil {
		return nil, nil, err
	}
	si, err := sortindex.Build(xg, false, false)
	if err != nil {
		return nil, nil, err
	}

	n := xg.Vertices()
	notExcluded := make([]bool, n)
	for i := range notExcluded {
		notExcluded[i] = true
	}
	labels := make([]ids.ClusterLabel, n)
	for i := range labels {
		labels[i] = ids.CNA
	}
	seeds := &SeedResult{}
	var next ids.ClusterLabel

	for p := 0; p < si.Len(); p++ {
		v := si.VertexAt(p)
		if !notExcluded[v] || g.OutDegree(v) == 0 {
			continue
		}

		if lErr := acceptExclusionSeed(g, seeds, labels, &next, v); lErr != nil {
			return nil, nil, lErr
		}
		notExcluded[v] = false
		for _, x := range xg.Out(v) {
			notExcluded[x] = false
		}
	}
	return seeds, labels, nil
}

// exclusionUpdating is exclusionOrder with live decrement: once v is
// accepted, the still-not-excluded neighbors of v in X are compacted into
// the front of v's own row (a scratch-reuse safe because that row is
// never revisited) and excluded, then every still-not-excluded neighbor
// of those just-excluded vertices is promoted, since it has lost one
// potential exclusion in-arc.
func exclusionUpdating(g *digraph.Digraph) (*SeedResult, []ids.ClusterLabel, *cerr.Error) {
	xg, err := buildExclusionGraph(g)
	if err != nil {
		return nil, nil, err
	}
	si, err := sortindex.Build(xg, true, false)
	if err != nil {
		return nil, nil, err
	}

	n := xg.Vertices()
	notExcluded := make([]bool, n)
	for i := range notExcluded {
		notExcluded[i] = true
	}
	labels := make([]ids.ClusterLabel, n)
	for i := range labels {
		labels[i] = ids.CNA
	}
	seeds := &SeedResult{}
	var next ids.ClusterLabel

	head := xg.HeadMut()
	tailPtr := xg.TailPtr()

	for p := 0; p < si.Len(); p++ {
		v := si.VertexAt(p)
		if !notExcluded[v] || g.OutDegree(v) == 0 {
			continue
		}

		if lErr := acceptExclusionSeed(g, seeds, labels, &next, v); lErr != nil {
			return nil, nil, lErr
		}
		notExcluded[v] = false

		start, end := tailPtr[v], tailPtr[v+1]
		k := 0
		for i := start; i < end; i++ {
			x := head[i]
			if notExcluded[x] {
				head[start+k] = x
				notExcluded[x] = false
				k++
			}
		}

		for i := 0; i < k; i++ {
			y := head[start+i]
			for _, w := range xg.Out(y) {
				if !notExcluded[w] {
					continue
				}
				if si.CountOf(w) <= 0 {
					continue
				}
				if dErr := si.Decrement(w, p); dErr != nil {
					return nil, nil, dErr
				}
			}
		}
	}
	return seeds, labels, nil
}

// acceptExclusionSeed records v as a seed and labels v's closed
// neighborhood in g (the exclusion graph only decides which vertices
// may be seeds; cluster membership is always read from g).
func acceptExclusionSeed(g *digraph.Digraph, seeds *SeedResult, labels []ids.ClusterLabel, next *ids.ClusterLabel, v ids.PointIndex) *cerr.Error {
	label := *next
	if aErr := seeds.append(v); aErr != nil {
		return aErr
	}
	for _, x := range g.Out(v) {
		labels[x] = label
	}
	labels[v] = label
	*next++
	return nil
}
