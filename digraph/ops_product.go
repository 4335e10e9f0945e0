package digraph

import "github.com/katalvlaran/nngcluster/cerr"

// AdjacencyProduct returns a*b: row v of the result is the de-duplicated
// union, over a in A.Out(v), of B.Out(a), skipping a == v when either
// forceLoops or ignoreLoops is set. When forceLoops is set, row v is
// additionally pre-seeded with B.Out(v) itself before processing
// A.Out(v). forceLoops and ignoreLoops are mutually exclusive.
//
// AdjacencyProduct(g, identity, ignoreLoops=false, forceLoops=false) ==
// g (spec section 8).
func AdjacencyProduct(a, b *Digraph, forceLoops, ignoreLoops bool) (*Digraph, *cerr.Error) {
	if a == nil || b == nil {
		return nil, errInvalid("digraph.AdjacencyProduct: inputs must be non-nil")
	}
	if a.n != b.n {
		return nil, errInvalid("digraph.AdjacencyProduct: inputs must share the same vertex count")
	}
	if forceLoops && ignoreLoops {
		return nil, errInvalid("digraph.AdjacencyProduct: forceLoops and ignoreLoops are mutually exclusive")
	}

	n := a.n
	upperBound := 0
	for v := 0; v < n; v++ {
		if forceLoops {
			upperBound += b.OutDegree(v)
		}
		for _, av := range a.Out(v) {
			upperBound += b.OutDegree(av)
		}
	}

	emitRow := func(v int, markers []int, emit func(int)) {
		if forceLoops {
			for _, x := range b.Out(v) {
				if markers[x] != v {
					markers[x] = v
					emit(x)
				}
			}
		}
		for _, av := range a.Out(v) {
			if (forceLoops || ignoreLoops) && av == v {
				continue
			}
			for _, x := range b.Out(av) {
				if markers[x] != v {
					markers[x] = v
					emit(x)
				}
			}
		}
	}

	return buildFromRows(n, upperBound, emitRow)
}

// Identity returns the n-vertex digraph where every vertex has a single
// self-loop out(v) = {v}; the multiplicative identity for
// AdjacencyProduct when ignoreLoops and forceLoops are both false.
func Identity(n int) (*Digraph, *cerr.Error) {
	if n < 0 {
		return nil, errInvalid("digraph.Identity: n must be non-negative")
	}
	g, err := Init(n, n)
	if err != nil {
		return nil, err
	}
	for v := 0; v < n; v++ {
		g.tailPtr[v] = v
		g.head[v] = v
	}
	g.tailPtr[n] = n
	return g, nil
}
