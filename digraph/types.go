// Package digraph implements the compact CSR directed-graph container and
// its algebra (union, union-and-delete, difference, transpose, adjacency
// product, loop deletion) that the seed-selection algorithms run over.
//
// A Digraph owns exactly two buffers: TailPtr (length Vertices()+1) and
// Head (length MaxArcs(), of which the first Arcs() entries are in use).
// The row-marker operators (union, union-and-delete, difference, adjacency
// product) follow the same two-pass protocol: compute an upper bound on
// output arcs, allocate, write, then shrink to the exact count - see
// build.go. Transpose allocates the exact count directly, and DeleteLoops
// compacts in place and then shrinks.
package digraph

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/ids"
)

// PNA is the sentinel used inside row-marker scratch arrays; re-exported
// here for convenience since digraph is where row markers are built.
const PNA = ids.PNA

// AMAX bounds the arc-buffer capacity of any Digraph.
const AMAX = ids.AMAX

// Digraph is a CSR directed graph: TailPtr[v]..TailPtr[v+1] indexes the
// out-neighbors of v in Head. A "null" Digraph (n=0, maxArcs=0, no
// allocations) is the zero value.
type Digraph struct {
	n       int   // vertex count
	maxArcs int   // capacity of head
	tailPtr []int // length n+1, monotone non-decreasing
	head    []int // length maxArcs; entries [0, tailPtr[n]) in use
}

// Vertices returns the vertex count n.
func (g *Digraph) Vertices() int { return g.n }

// MaxArcs returns the capacity of the arc buffer.
func (g *Digraph) MaxArcs() int { return g.maxArcs }

// Arcs returns the number of arcs currently stored (tailPtr[n]).
func (g *Digraph) Arcs() int {
	if g.n == 0 {
		return 0
	}
	return g.tailPtr[g.n]
}

// TailPtr exposes the raw tail-pointer array for read access by other
// packages (sortindex, seed) that need to scan rows without a method-call
// per arc. The only writes through it are filling in a freshly Init'd
// digraph (as the CLI's edge-list loader and the test fixtures do).
func (g *Digraph) TailPtr() []int { return g.tailPtr }

// Head exposes the raw concatenated adjacency buffer for read access.
// Writes go through HeadMut instead.
func (g *Digraph) Head() []int { return g.head }

// HeadMut exposes the adjacency buffer for two narrow cases: filling in a
// freshly Init'd digraph (the CLI's edge-list loader and the test
// fixtures), and in-place scratch reuse (the exclusion-updating seed
// finder overwrites a row it will never revisit again). Not for general
// mutation.
func (g *Digraph) HeadMut() []int { return g.head }

// Out returns the out-neighbor slice of v (a view into Head, not a copy).
func (g *Digraph) Out(v int) []int {
	return g.head[g.tailPtr[v]:g.tailPtr[v+1]]
}

// OutDegree returns len(Out(v)).
func (g *Digraph) OutDegree(v int) int {
	return g.tailPtr[v+1] - g.tailPtr[v]
}

// IsInitialized reports whether g has an allocated TailPtr (true for
// anything produced by Init/Empty; false only for the zero value).
func (g *Digraph) IsInitialized() bool {
	return g.tailPtr != nil
}

// IsValid checks the structural invariants of spec section 3: monotone
// TailPtr, TailPtr[n] <= maxArcs, and every Head entry in [0, n).
func (g *Digraph) IsValid() bool {
	if g.n == 0 {
		return g.maxArcs == 0 && len(g.head) == 0
	}
	if len(g.tailPtr) != g.n+1 {
		return false
	}
	for v := 0; v < g.n; v++ {
		if g.tailPtr[v+1] < g.tailPtr[v] {
			return false
		}
	}
	if g.tailPtr[g.n] > g.maxArcs {
		return false
	}
	for _, x := range g.head[:g.tailPtr[g.n]] {
		if x < 0 || x >= g.n {
			return false
		}
	}
	return true
}

// IsEmpty reports whether g has zero arcs (every row empty).
func (g *Digraph) IsEmpty() bool {
	return g.Arcs() == 0
}

// IsBalanced reports whether every vertex has out-degree exactly k.
func (g *Digraph) IsBalanced(k int) bool {
	for v := 0; v < g.n; v++ {
		if g.OutDegree(v) != k {
			return false
		}
	}
	return true
}

// newRowMarkers allocates a scratch array of length n filled with PNA,
// the shared trick used by every algebra operator to de-duplicate a row
// in O(deg) without a hash: writing rowMarkers[x] = v both marks x as
// "seen in row v" and self-overwrites whatever the previous row wrote.
func newRowMarkers(n int) (markers []int, outErr *cerr.Error) {
	defer func() {
		if r := recover(); r != nil {
			markers = nil
			outErr = errNoMemory("row_markers allocation failed")
		}
	}()
	markers = make([]int, n)
	for i := range markers {
		markers[i] = PNA
	}
	return markers, nil
}

func errNoMemory(context string) *cerr.Error {
	return cerr.New(cerr.NoMemory, errors.New(context))
}

func errTooLarge(context string) *cerr.Error {
	return cerr.New(cerr.TooLargeDigraph, errors.New(context))
}

func errInvalid(context string) *cerr.Error {
	return cerr.New(cerr.InvalidInput, errors.New(context))
}
