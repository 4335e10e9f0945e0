package digraph

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/nngcluster/cerr"
)

// Init allocates a Digraph with n vertices and arc-buffer capacity
// maxArcs. TailPtr is allocated (zero-filled, since Go slices always
// are) with length n+1; Head is allocated with length maxArcs iff
// maxArcs > 0, otherwise left absent (nil), matching the "head is present
// iff m_cap > 0" invariant of spec section 3.
//
// Init returns TooLargeDigraph if maxArcs > AMAX, NoMemory if allocation
// fails, and InvalidInput if n < 0 or maxArcs < 0.
func Init(n, maxArcs int) (*Digraph, *cerr.Error) {
	if n < 0 || maxArcs < 0 {
		return nil, errInvalid("digraph.Init: n and maxArcs must be non-negative")
	}
	if maxArcs > AMAX {
		return nil, errTooLarge("digraph.Init: maxArcs exceeds AMAX")
	}

	tailPtr, err := makeInts(n + 1)
	if err != nil {
		return nil, errNoMemory("digraph.Init: tail_ptr allocation failed")
	}
	var head []int
	if maxArcs > 0 {
		head, err = makeInts(maxArcs)
		if err != nil {
			return nil, errNoMemory("digraph.Init: head allocation failed")
		}
	}

	return &Digraph{n: n, maxArcs: maxArcs, tailPtr: tailPtr, head: head}, nil
}

// Empty is Init with the additional (in Go, automatic) guarantee that
// TailPtr is zero-filled: the returned Digraph has n vertices and zero
// arcs, immediately valid and balanced-with-degree-zero.
func Empty(n, maxArcs int) (*Digraph, *cerr.Error) {
	return Init(n, maxArcs)
}

// ChangeArcStorage resizes g's Head buffer to newCap, leaving TailPtr
// untouched. newCap == 0 frees Head (sets it absent). Returns
// TooLargeDigraph if newCap > AMAX.
func ChangeArcStorage(g *Digraph, newCap int) *cerr.Error {
	if newCap < 0 {
		return errInvalid("digraph.ChangeArcStorage: newCap must be non-negative")
	}
	if newCap > AMAX {
		return errTooLarge("digraph.ChangeArcStorage: newCap exceeds AMAX")
	}
	if newCap == 0 {
		g.head = nil
		g.maxArcs = 0
		return nil
	}

	resized, err := makeInts(newCap)
	if err != nil {
		return errNoMemory("digraph.ChangeArcStorage: head reallocation failed")
	}
	copy(resized, g.head)
	g.head = resized
	g.maxArcs = newCap
	return nil
}

// Free releases g's buffers and resets it to the null digraph. Free is
// idempotent; a nil g (or an already-null one) is a no-op.
func Free(g *Digraph) {
	if g == nil {
		return
	}
	g.n = 0
	g.maxArcs = 0
	g.tailPtr = nil
	g.head = nil
}

// makeInts allocates a []int of length n, converting any panic (e.g. the
// runtime's "makeslice: len out of range" on an implausible size) into a
// plain error so callers can translate it to cerr.NoMemory.
func makeInts(n int) (out []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = errors.Errorf("allocation panic: %v", r)
		}
	}()
	return make([]int, n), nil
}
