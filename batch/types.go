// Package batch implements the batched NNG clusterer of spec section
// 4.E: it streams candidate points through a search oracle, assigning
// seeds and preliminary members, without ever materializing the full
// nearest-neighbor digraph that package seed operates on.
package batch

import "github.com/katalvlaran/nngcluster/ids"

// UnassignedMethod selects what happens to a candidate whose k nearest
// neighbors are not all free when it is examined.
type UnassignedMethod int

const (
	// Ignore leaves the candidate labelled ids.CNA unless a later seed
	// claims it as a core member.
	Ignore UnassignedMethod = iota
	// AnyNeighbor tentatively labels the candidate with the cluster of
	// its first already-assigned neighbor; a later seed may overwrite
	// the label if it claims the candidate as a core member.
	AnyNeighbor
)

// ClusteringSurface is the external clustering object of spec section 6,
// narrowed to what NNGClusteringBatches needs. It is defined here (not
// imported from package cluster) so that cluster can depend on batch
// without batch depending back on cluster: *cluster.Clustering satisfies
// this interface structurally.
//
// Label must already be allocated to length NumDataPoints() by the
// caller (package cluster owns that allocation decision); its contents
// on entry are ignored and overwritten with ids.CNA.
type ClusteringSurface interface {
	NumDataPoints() int
	NumClusters() int
	SetNumClusters(int)
	Label() []ids.ClusterLabel
}
