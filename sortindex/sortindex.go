// Package sortindex implements the inwards-count bucket-sorted
// permutation of spec section 4.C: a counting sort of vertices by
// current in-degree, supporting an O(1) amortised decrement-and-reposition
// of a single vertex under a moving cursor.
//
// This is deliberately not a container/heap priority queue (the shape
// the teacher reaches for in prim_kruskal): a binary heap does not give
// O(1) "move this one key down by exactly one and keep everything else
// in place relative to an in-progress left-to-right scan" - which is
// exactly what the inwards-updating seed finder needs.
package sortindex

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/digraph"
)

// SortIndex is the four-parallel-array structure of spec section 3.
type SortIndex struct {
	n              int
	inwardsCount   []int // len n; nil once frozen (makeIndices == false)
	sortedVertices []int // len n, permutation of [0,n)
	vertexIndex    []int // len n; sortedVertices[vertexIndex[v]] == v
	bucketIndex    []int // len maxK+2; bucketIndex[k] == first slot of bucket k; nil once frozen
	maxK           int
	stable         bool
}

// Build computes the inwards-count sort of g: a permutation of g's
// vertices in non-decreasing in-degree order. When makeIndices is
// false, the sort is frozen (Decrement becomes unavailable) and the
// mutable bookkeeping arrays are dropped, matching spec section 4.C
// step 4. When stable is true, Decrement re-sorts the two buckets it
// touches by point ID, making scan order a deterministic function of
// the input.
func Build(g *digraph.Digraph, makeIndices, stable bool) (*SortIndex, *cerr.Error) {
	if g == nil {
		return nil, cerr.New(cerr.InvalidInput, errors.New("sortindex.Build: digraph must be non-nil"))
	}
	n := g.Vertices()

	inwardsCount := make([]int, n)
	for _, x := range g.Head()[:g.Arcs()] {
		inwardsCount[x]++
	}

	maxK := 0
	for _, c := range inwardsCount {
		if c > maxK {
			maxK = c
		}
	}

	// Counting sort: bucketIndex[k] starts as a count of vertices with
	// in-degree k, then is turned into a prefix-sum of bucket starts.
	bucketIndex := make([]int, maxK+2)
	for _, c := range inwardsCount {
		bucketIndex[c+1]++
	}
	for k := 0; k <= maxK; k++ {
		bucketIndex[k+1] += bucketIndex[k]
	}

	sortedVertices := make([]int, n)
	vertexIndex := make([]int, n)
	cursor := append([]int(nil), bucketIndex[:maxK+1]...)
	for v := 0; v < n; v++ {
		k := inwardsCount[v]
		pos := cursor[k]
		sortedVertices[pos] = v
		vertexIndex[v] = pos
		cursor[k]++
	}

	si := &SortIndex{
		n:              n,
		sortedVertices: sortedVertices,
		vertexIndex:    vertexIndex,
		maxK:           maxK,
		stable:         stable,
	}
	if makeIndices {
		si.inwardsCount = inwardsCount
		si.bucketIndex = bucketIndex
	}
	return si, nil
}

// Len returns the vertex count.
func (si *SortIndex) Len() int { return si.n }

// VertexAt returns the vertex at position i of the sorted permutation.
func (si *SortIndex) VertexAt(i int) int { return si.sortedVertices[i] }

// PositionOf returns the current position of v within the sorted
// permutation.
func (si *SortIndex) PositionOf(v int) int { return si.vertexIndex[v] }

// Frozen reports whether Decrement is unavailable (makeIndices was false).
func (si *SortIndex) Frozen() bool { return si.inwardsCount == nil }

// CountOf returns v's current inwards count, or -1 if the index is frozen.
func (si *SortIndex) CountOf(v int) int {
	if si.Frozen() {
		return -1
	}
	return si.inwardsCount[v]
}

// Decrement moves v from bucket k = CountOf(v) to bucket k-1, preserving
// the four SortIndex invariants, per spec section 4.C. cursor is the
// current scan position of the caller's left-to-right traversal of
// sortedVertices: any bucket-start at or before cursor has already been
// visited and must not be disturbed, so Decrement retargets the
// destination slot to cursor+1 when that would otherwise happen.
//
// Decrement fails with InvalidInput if the index is frozen or v already
// has inwards count zero.
func (si *SortIndex) Decrement(v, cursor int) *cerr.Error {
	if si.Frozen() {
		return cerr.New(cerr.InvalidInput, errors.New("sortindex.Decrement: index is frozen"))
	}
	k := si.inwardsCount[v]
	if k <= 0 {
		return cerr.New(cerr.InvalidInput, errors.New("sortindex.Decrement: vertex already has zero inwards count"))
	}

	from := si.vertexIndex[v]
	to := si.bucketIndex[k]
	if to <= cursor {
		to = cursor + 1
		si.bucketIndex[k-1] = to
	}

	u := si.sortedVertices[to]
	si.sortedVertices[from], si.sortedVertices[to] = u, v
	si.vertexIndex[u] = from
	si.vertexIndex[v] = to
	si.bucketIndex[k]++
	si.inwardsCount[v] = k - 1

	if si.stable {
		si.resortBucket(k - 1)
		si.resortBucket(k)
	}
	return nil
}

// bucketEnd returns the exclusive end of bucket k.
func (si *SortIndex) bucketEnd(k int) int {
	if k+1 <= si.maxK {
		return si.bucketIndex[k+1]
	}
	return si.n
}

// resortBucket re-sorts the [bucketIndex[k], bucketEnd(k)) range of
// sortedVertices by point ID, keeping vertexIndex consistent. Only used
// in stable mode; buckets are small in practice (bounded by how many
// vertices share an in-degree), so a plain sort is adequate here.
func (si *SortIndex) resortBucket(k int) {
	if k < 0 {
		return
	}
	lo := si.bucketIndex[k]
	hi := si.bucketEnd(k)
	if hi-lo < 2 {
		return
	}
	seg := si.sortedVertices[lo:hi]
	sort.Ints(seg)
	for i := lo; i < hi; i++ {
		si.vertexIndex[si.sortedVertices[i]] = i
	}
}
