package digraph

import "github.com/katalvlaran/nngcluster/cerr"

// Transpose returns the reverse digraph: an arc u->v in g becomes v->u
// in the result. Built by counting sort (bump the destination's
// out-degree for every arc, prefix-sum, then scatter) rather than the
// generic row-marker protocol, since reversal needs no de-duplication
// and the exact output arc count (g.Arcs()) is known up front - there is
// no upper-bound-then-shrink step to perform.
//
// Transpose(Transpose(g)) == g up to within-row permutation (spec
// section 8).
func Transpose(g *Digraph) (*Digraph, *cerr.Error) {
	if g == nil {
		return nil, errInvalid("digraph.Transpose: input must be non-nil")
	}

	n := g.n
	m := g.Arcs()
	out, err := Init(n, m)
	if err != nil {
		return nil, err
	}

	// Pass 1: count in-degrees of g (== out-degrees of the transpose).
	for _, x := range g.head[:m] {
		out.tailPtr[x+1]++
	}
	// Pass 2: prefix-sum into a tail-pointer array.
	for v := 0; v < n; v++ {
		out.tailPtr[v+1] += out.tailPtr[v]
	}
	// Pass 3: scatter, consuming a write cursor per destination row.
	cursor, cErr := makeInts(n)
	if cErr != nil {
		Free(out)
		return nil, errNoMemory("digraph.Transpose: cursor allocation failed")
	}
	copy(cursor, out.tailPtr[:n])
	for v := 0; v < n; v++ {
		for _, x := range g.Out(v) {
			out.head[cursor[x]] = v
			cursor[x]++
		}
	}

	return out, nil
}
