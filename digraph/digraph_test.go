package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nngcluster/digraph"
)

// fromRows builds a Digraph from a literal adjacency list, for small
// hand-worked fixtures - the teacher's own test style for small worked
// examples (see gridgraph's table-driven tests) rather than a generator
// package.
func fromRows(rows [][]int) *digraph.Digraph {
	total := 0
	for _, r := range rows {
		total += len(r)
	}
	g, err := digraph.Init(len(rows), total)
	if err != nil {
		panic(err)
	}
	head := g.HeadMut()
	count := 0
	tp := g.TailPtr()
	for v, r := range rows {
		tp[v] = count
		for _, x := range r {
			head[count] = x
			count++
		}
	}
	tp[len(rows)] = count
	return g
}

func rowsOf(g *digraph.Digraph) [][]int {
	out := make([][]int, g.Vertices())
	for v := 0; v < g.Vertices(); v++ {
		row := append([]int(nil), g.Out(v)...)
		out[v] = row
	}
	return out
}

func TestInit_ZeroArcsIsValidAndEmpty(t *testing.T) {
	g, err := digraph.Init(3, 5)
	require.Nil(t, err)
	require.True(t, g.IsValid())
	require.True(t, g.IsEmpty())
	require.Equal(t, 3, g.Vertices())
}

func TestInit_TooLargeDigraph(t *testing.T) {
	_, err := digraph.Init(3, digraph.AMAX+1)
	require.NotNil(t, err)
}

func TestFree_Idempotent(t *testing.T) {
	g, err := digraph.Init(2, 2)
	require.Nil(t, err)
	digraph.Free(g)
	digraph.Free(g)
	require.Equal(t, 0, g.Vertices())
}

func TestChangeArcStorage_ShrinkToZeroFreesHead(t *testing.T) {
	g, err := digraph.Init(2, 4)
	require.Nil(t, err)
	cErr := digraph.ChangeArcStorage(g, 0)
	require.Nil(t, cErr)
	require.Equal(t, 0, g.MaxArcs())
}

func TestTranspose(t *testing.T) {
	// transpose of [{1,2},{},{0}] == [{2},{0},{0}]  (spec scenario 4)
	g := fromRows([][]int{{1, 2}, {}, {0}})
	tr, err := digraph.Transpose(g)
	require.Nil(t, err)
	require.Equal(t, [][]int{{2}, {0}, {0}}, rowsOf(tr))
}

func TestTranspose_Involution(t *testing.T) {
	g := fromRows([][]int{{1, 2}, {2}, {0, 1}})
	tr, err := digraph.Transpose(g)
	require.Nil(t, err)
	trtr, err := digraph.Transpose(tr)
	require.Nil(t, err)
	for v := 0; v < g.Vertices(); v++ {
		require.ElementsMatch(t, g.Out(v), trtr.Out(v))
	}
}

func TestUnion_Identity(t *testing.T) {
	g := fromRows([][]int{{1}, {0}, {}})
	u, err := digraph.Union(g)
	require.Nil(t, err)
	for v := 0; v < g.Vertices(); v++ {
		require.ElementsMatch(t, g.Out(v), u.Out(v))
	}
}

func TestUnion_Commutative(t *testing.T) {
	a := fromRows([][]int{{1}, {}, {0}})
	b := fromRows([][]int{{2}, {0}, {}})
	ab, err := digraph.Union(a, b)
	require.Nil(t, err)
	ba, err := digraph.Union(b, a)
	require.Nil(t, err)
	for v := 0; v < a.Vertices(); v++ {
		require.ElementsMatch(t, ab.Out(v), ba.Out(v))
	}
}

func TestUnionAndDelete_DropsExcludedRows(t *testing.T) {
	a := fromRows([][]int{{1}, {2}, {0}})
	keep := []bool{true, false, true}
	u, err := digraph.UnionAndDelete([]*digraph.Digraph{a}, keep)
	require.Nil(t, err)
	require.Equal(t, []int{1}, u.Out(0))
	require.Empty(t, u.Out(1))
	require.Equal(t, []int{0}, u.Out(2))
}

func TestDifference_WithEmptyIsIdentityTruncated(t *testing.T) {
	g := fromRows([][]int{{1, 2}, {0}, {}})
	empty := fromRows([][]int{{}, {}, {}})
	d, err := digraph.Difference(g, empty, 10)
	require.Nil(t, err)
	require.Equal(t, rowsOf(g), rowsOf(d))

	// truncation to maxOutDegree=1
	d1, err := digraph.Difference(g, empty, 1)
	require.Nil(t, err)
	require.Equal(t, []int{1}, d1.Out(0))
}

func TestDifference_WithSelfIsEmpty(t *testing.T) {
	g := fromRows([][]int{{1, 2}, {0}, {}})
	d, err := digraph.Difference(g, g, 10)
	require.Nil(t, err)
	require.True(t, d.IsEmpty())
}

func TestAdjacencyProduct_WithIdentityIgnoreLoopsIsEmpty(t *testing.T) {
	// adjacency_product(identity-with-loops, g, ignore_loops=true) == empty
	g := fromRows([][]int{{1}, {2}, {0}})
	id, err := digraph.Identity(3)
	require.Nil(t, err)
	p, err := digraph.AdjacencyProduct(id, g, false, true)
	require.Nil(t, err)
	require.True(t, p.IsEmpty())
}

func TestAdjacencyProduct_WithIdentityNoFlagsIsG(t *testing.T) {
	g := fromRows([][]int{{1}, {2}, {0, 1}})
	id, err := digraph.Identity(3)
	require.Nil(t, err)
	p, err := digraph.AdjacencyProduct(g, id, false, false)
	require.Nil(t, err)
	require.Equal(t, rowsOf(g), rowsOf(p))
}

func TestAdjacencyProduct_MutuallyExclusiveFlags(t *testing.T) {
	g := fromRows([][]int{{0}})
	_, err := digraph.AdjacencyProduct(g, g, true, true)
	require.NotNil(t, err)
}

func TestDeleteLoops(t *testing.T) {
	g := fromRows([][]int{{0, 1}, {1, 0}})
	err := digraph.DeleteLoops(g)
	require.Nil(t, err)
	require.Equal(t, []int{1}, g.Out(0))
	require.Equal(t, []int{0}, g.Out(1))
}

func TestIsValid_EveryHeadEntryInRange(t *testing.T) {
	g := fromRows([][]int{{1, 2}, {0}, {1}})
	require.True(t, g.IsValid())
}

func TestIsBalanced(t *testing.T) {
	g := fromRows([][]int{{1, 2}, {0, 2}, {0, 1}})
	require.True(t, g.IsBalanced(2))
	require.False(t, g.IsBalanced(1))
}
