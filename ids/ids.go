// Package ids defines the narrow integer identifier types shared by every
// layer of the clustering engine: digraph vertices/arcs, and the cluster
// labels the seed finder and batch clusterer ultimately produce.
//
// Keeping these in one tiny, dependency-free package (rather than
// re-declaring `int` everywhere) is what lets digraph, sortindex, seed,
// batch, oracle and cluster all agree on PNA/CNA sentinels without an
// import cycle: digraph never needs to know about ClusterLabel, but seed
// and batch both do, and neither imports the other.
package ids

// PointIndex identifies a data point (a digraph vertex). Valid values are
// in [0, PMAX); PNA marks "no point".
type PointIndex = int

// ArcIndex indexes the concatenated adjacency buffer of a Digraph. Valid
// values are in [0, AMAX].
type ArcIndex = int

// ClusterLabel identifies a cluster. Valid values are in [0, CMAX); CNA
// marks "unassigned".
type ClusterLabel = int

const (
	// PNA is the sentinel PointIndex meaning "none".
	PNA PointIndex = -1

	// CNA is the sentinel ClusterLabel meaning "unassigned".
	CNA ClusterLabel = -1
)

// PMAX, AMAX and CMAX bound PointIndex, ArcIndex and ClusterLabel
// respectively. They are chosen as math.MaxInt32 rather than the full
// range of `int` so that arithmetic such as `count+1` or doubling a
// capacity stays within `int` range on 64-bit platforms, while still
// giving a generous ceiling. On 32-bit platforms they equal the maximum
// `int`, so that headroom is not there.
const (
	PMAX = 1<<31 - 1
	AMAX = 1<<31 - 1
	CMAX = 1<<31 - 1
)
