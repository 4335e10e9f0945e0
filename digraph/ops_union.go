package digraph

import "github.com/katalvlaran/nngcluster/cerr"

// Union returns the row-wise union of dgs: out(v) in the result is the
// de-duplicated concatenation of dgs[i].Out(v) over all i, in input
// order. All inputs must share the same vertex count.
//
// Union(g) == g; Union is commutative and associative up to within-row
// permutation (spec section 8).
func Union(dgs ...*Digraph) (*Digraph, *cerr.Error) {
	return unionAndDelete(dgs, nil)
}

// UnionAndDelete is Union, except rows whose tailsToKeep[v] is false
// emit no arcs (tailPtr still advances monotonically, the row is just
// empty). tailsToKeep == nil means "keep every row" - callers must pass
// nil rather than an all-true slice when no vertex is excluded, per the
// reference-bug note in spec section 9 (DESIGN.md open question 4):
// passing an all-true filter through is logically equivalent, but this
// makes "no filter" an explicit, cheaper fast path instead of a
// per-row branch that always takes the same side.
func UnionAndDelete(dgs []*Digraph, tailsToKeep []bool) (*Digraph, *cerr.Error) {
	return unionAndDelete(dgs, tailsToKeep)
}

func unionAndDelete(dgs []*Digraph, tailsToKeep []bool) (*Digraph, *cerr.Error) {
	if len(dgs) == 0 {
		return nil, errInvalid("digraph.Union: at least one input digraph is required")
	}
	n := dgs[0].n
	upperBound := 0
	for _, dg := range dgs {
		if dg.n != n {
			return nil, errInvalid("digraph.Union: all inputs must share the same vertex count")
		}
		upperBound += dg.Arcs()
	}
	if tailsToKeep != nil && len(tailsToKeep) != n {
		return nil, errInvalid("digraph.UnionAndDelete: tailsToKeep length must equal vertex count")
	}

	emitRow := func(v int, markers []int, emit func(int)) {
		if tailsToKeep != nil && !tailsToKeep[v] {
			return
		}
		for _, dg := range dgs {
			for _, x := range dg.Out(v) {
				if markers[x] != v {
					markers[x] = v
					emit(x)
				}
			}
		}
	}

	return buildFromRows(n, upperBound, emitRow)
}
