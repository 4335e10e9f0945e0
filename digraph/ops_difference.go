package digraph

import "github.com/katalvlaran/nngcluster/cerr"

// Difference returns minuendDg \ subtrahendDg: for each v, the first at
// most maxOutDegree entries of minuendDg.Out(v) that do not also appear
// in subtrahendDg.Out(v).
//
// The result's vertex count is minuendDg's, resolving the reference
// ambiguity noted in spec section 9 (DESIGN.md open question 3) in
// favor of the minuend.
//
// Difference(g, empty) == g truncated to maxOutDegree; Difference(g, g)
// == empty (spec section 8).
func Difference(minuendDg, subtrahendDg *Digraph, maxOutDegree int) (*Digraph, *cerr.Error) {
	if minuendDg == nil || subtrahendDg == nil {
		return nil, errInvalid("digraph.Difference: inputs must be non-nil")
	}
	if minuendDg.n != subtrahendDg.n {
		return nil, errInvalid("digraph.Difference: inputs must share the same vertex count")
	}
	if maxOutDegree < 0 {
		return nil, errInvalid("digraph.Difference: maxOutDegree must be non-negative")
	}

	n := minuendDg.n
	// minuendDg.Arcs() is already a safe upper bound: the per-row cap of
	// maxOutDegree can only ever shrink the output relative to the
	// minuend, never grow it, and multiplying maxOutDegree*n risks
	// overflow when maxOutDegree is a caller-supplied "no cap" sentinel.
	upperBound := minuendDg.Arcs()

	emitRow := func(v int, markers []int, emit func(int)) {
		for _, x := range subtrahendDg.Out(v) {
			markers[x] = v
		}
		emitted := 0
		for _, x := range minuendDg.Out(v) {
			if emitted >= maxOutDegree {
				break
			}
			if markers[x] != v {
				emit(x)
				emitted++
			}
		}
	}

	return buildFromRows(n, upperBound, emitRow)
}
