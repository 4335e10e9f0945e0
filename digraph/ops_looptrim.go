package digraph

import "github.com/katalvlaran/nngcluster/cerr"

// DeleteLoops removes self-arcs from g in place: it compacts Head
// left-to-right, shifting TailPtr downward, and shrinks the arc buffer
// to the new exact count. Unlike the other operators, this never grows
// the arc count, so there is no upper-bound-then-shrink step - only the
// final shrink.
func DeleteLoops(g *Digraph) *cerr.Error {
	if g == nil {
		return errInvalid("digraph.DeleteLoops: input must be non-nil")
	}

	write := 0
	newTailPtr := make([]int, g.n+1)
	for v := 0; v < g.n; v++ {
		newTailPtr[v] = write
		for _, x := range g.Out(v) {
			if x == v {
				continue
			}
			g.head[write] = x
			write++
		}
	}
	newTailPtr[g.n] = write
	g.tailPtr = newTailPtr

	return ChangeArcStorage(g, write)
}
