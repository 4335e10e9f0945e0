package digraph

import "github.com/katalvlaran/nngcluster/cerr"

// rowEmitter processes row v of some algebra operator, calling emit(x)
// once per output arc of row v, in order, marking markers[x] = v itself
// before emitting so a row never emits the same destination twice. The
// row-marker operators (union, union-and-delete, difference, adjacency
// product) are expressed as one of these, which is what lets
// buildFromRows implement their shared two-pass "count then write,
// shrink" protocol of spec section 4.A exactly once; Transpose and
// DeleteLoops do not use it.
type rowEmitter func(v int, markers []int, emit func(x int))

// buildFromRows allocates a Digraph with n vertices and runs emitRow over
// every row. upperBound must be a valid (possibly loose) upper bound on
// the total arc count; if allocating it fails, buildFromRows falls back
// to a count-only dry run (no Head writes) to find the exact count and
// retries once. The result is always shrunk to its exact arc count.
func buildFromRows(n, upperBound int, emitRow rowEmitter) (*Digraph, *cerr.Error) {
	g, err := Init(n, upperBound)
	if err != nil {
		exact, cErr := countRows(n, emitRow)
		if cErr != nil {
			return nil, cErr
		}
		g, err = Init(n, exact)
		if err != nil {
			return nil, err
		}
	}

	markers, mErr := newRowMarkers(n)
	if mErr != nil {
		Free(g)
		return nil, mErr
	}

	count := 0
	for v := 0; v < n; v++ {
		g.tailPtr[v] = count
		emitRow(v, markers, func(x int) {
			g.head[count] = x
			count++
		})
	}
	g.tailPtr[n] = count

	if serr := ChangeArcStorage(g, count); serr != nil {
		Free(g)
		return nil, serr
	}
	return g, nil
}

// countRows runs emitRow over every row without any backing Digraph,
// counting how many arcs would be emitted. This is the "second pass"
// of spec section 4.A's shrink protocol: the exact-count dry run used
// only when the optimistic upper-bound allocation failed.
func countRows(n int, emitRow rowEmitter) (int, *cerr.Error) {
	markers, mErr := newRowMarkers(n)
	if mErr != nil {
		return 0, mErr
	}
	total := 0
	for v := 0; v < n; v++ {
		emitRow(v, markers, func(int) { total++ })
	}
	return total, nil
}
