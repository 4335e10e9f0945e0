package seed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nngcluster/digraph"
	"github.com/katalvlaran/nngcluster/ids"
	"github.com/katalvlaran/nngcluster/seed"
)

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
	tp := g.TailPtr()
	count := 0
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

// TestLexical_Scenario1 is spec section 8 end-to-end scenario 1.
func TestLexical_Scenario1(t *testing.T) {
	g := fromRows([][]int{{1}, {0}, {3}, {2}, {5}, {4}})
	seeds, labels, err := seed.Find(seed.Lexical, g)
	require.Nil(t, err)
	require.Equal(t, []ids.PointIndex{0, 2, 4}, seeds.Points)
	require.Equal(t, []ids.ClusterLabel{0, 0, 1, 1, 2, 2}, labels)
}

// TestLexical_Scenario2 is spec section 8 end-to-end scenario 2.
func TestLexical_Scenario2(t *testing.T) {
	g := fromRows([][]int{{1, 2}, {0, 2}, {0, 1}, {4, 5}, {3, 5}, {3, 4}})
	seeds, labels, err := seed.Find(seed.Lexical, g)
	require.Nil(t, err)
	require.Equal(t, []ids.PointIndex{0, 3}, seeds.Points)
	require.Equal(t, []ids.ClusterLabel{0, 0, 0, 1, 1, 1}, labels)
}

// TestLexical_DirectedCycle exercises the try_seed routine against a
// single 4-cycle NNG (out-degree 1 everywhere). Applying try_seed
// literally (as defined in spec section 4.D: v qualifies whenever it and
// every one of its out-neighbors are still unmarked) greedily claims two
// disjoint pairs: {0,1} then {2,3} - 1 and 3 never get a chance to be
// examined as candidates in their own right because they are consumed as
// someone else's out-neighbor first. Both closed neighborhoods are
// pairwise disjoint and every point ends up labelled, which is a stronger
// result than leaving any point unassigned.
func TestLexical_DirectedCycle(t *testing.T) {
	g := fromRows([][]int{{1}, {2}, {3}, {0}})
	seeds, labels, err := seed.Find(seed.Lexical, g)
	require.Nil(t, err)
	require.Equal(t, []ids.PointIndex{0, 2}, seeds.Points)
	require.Equal(t, []ids.ClusterLabel{0, 0, 1, 1}, labels)
}

func TestInwardsOrder_MatchesLexicalOnSymmetricIndegree(t *testing.T) {
	// Every vertex here has in-degree 1, so the inwards-count sort leaves
	// vertices in their original index order and the two heuristics agree.
	g := fromRows([][]int{{1}, {0}, {3}, {2}, {5}, {4}})
	seeds, labels, err := seed.Find(seed.InwardsOrder, g)
	require.Nil(t, err)
	require.Equal(t, []ids.PointIndex{0, 2, 4}, seeds.Points)
	require.Equal(t, []ids.ClusterLabel{0, 0, 1, 1, 2, 2}, labels)
}

func requireDisjointClosedNeighborhoods(t *testing.T, g *digraph.Digraph, seeds []ids.PointIndex) {
	t.Helper()
	seen := map[int]bool{}
	for _, v := range seeds {
		require.NotEmpty(t, g.Out(v), "seed %d must have a non-empty out-neighborhood", v)
		closed := append([]int{v}, g.Out(v)...)
		for _, x := range closed {
			require.False(t, seen[x], "vertex %d claimed by more than one seed", x)
			seen[x] = true
		}
	}
}

func TestInwardsUpdating_SeedsAreDisjointAndNonEmpty(t *testing.T) {
	g := fromRows([][]int{{1, 2}, {0, 2}, {0, 1}, {4, 5}, {3, 5}, {3, 4}})
	seeds, _, err := seed.Find(seed.InwardsUpdating, g)
	require.Nil(t, err)
	requireDisjointClosedNeighborhoods(t, g, seeds.Points)
}

func TestInwardsAltUpdating_SeedsAreDisjointAndNonEmpty(t *testing.T) {
	g := fromRows([][]int{{1, 2}, {0, 2}, {0, 1}, {4, 5}, {3, 5}, {3, 4}})
	seeds, _, err := seed.Find(seed.InwardsAltUpdating, g)
	require.Nil(t, err)
	requireDisjointClosedNeighborhoods(t, g, seeds.Points)
}

// TestExclusionOrder_TwoIndependentPairs is a hand-traced fixture: two
// mutually-pointing pairs {0,1} and {2,3}. The exclusion graph X ends up
// with every vertex at in-degree 2 (symmetric), so the inwards-count sort
// leaves sorted_vertices in index order and both pairs are found in turn.
func TestExclusionOrder_TwoIndependentPairs(t *testing.T) {
	g := fromRows([][]int{{1}, {0}, {3}, {2}})
	seeds, labels, err := seed.Find(seed.ExclusionOrder, g)
	require.Nil(t, err)
	require.Equal(t, []ids.PointIndex{0, 2}, seeds.Points)
	require.Equal(t, []ids.ClusterLabel{0, 0, 1, 1}, labels)
}

func TestExclusionUpdating_TwoIndependentPairs(t *testing.T) {
	g := fromRows([][]int{{1}, {0}, {3}, {2}})
	seeds, labels, err := seed.Find(seed.ExclusionUpdating, g)
	require.Nil(t, err)
	require.Equal(t, []ids.PointIndex{0, 2}, seeds.Points)
	require.Equal(t, []ids.ClusterLabel{0, 0, 1, 1}, labels)
}

func TestFind_UnknownMethod(t *testing.T) {
	g := fromRows([][]int{{1}, {0}})
	_, _, err := seed.Find(seed.Method(99), g)
	require.NotNil(t, err)
}

func TestFind_NilDigraph(t *testing.T) {
	_, _, err := seed.Find(seed.Lexical, nil)
	require.NotNil(t, err)
}
