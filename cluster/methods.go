package cluster

import (
	"github.com/katalvlaran/nngcluster/batch"
	"github.com/katalvlaran/nngcluster/seed"
)

// SeedMethod selects the seed-finding heuristic for NNGClusteringFromGraph;
// it is exactly package seed's Method, re-exported so callers never need to
// import package seed directly.
type SeedMethod = seed.Method

// Seed-finding heuristics; see package seed for their algorithms.
const (
	Lexical            = seed.Lexical
	InwardsOrder       = seed.InwardsOrder
	InwardsUpdating    = seed.InwardsUpdating
	InwardsAltUpdating = seed.InwardsAltUpdating
	ExclusionOrder     = seed.ExclusionOrder
	ExclusionUpdating  = seed.ExclusionUpdating
)

// UnassignedMethod selects how NNGClusteringBatches handles a candidate
// whose neighbors are not all free; it is exactly package batch's
// UnassignedMethod, re-exported so callers never need to import package
// batch directly.
type UnassignedMethod = batch.UnassignedMethod

// Disposition of an unassignable candidate in the batched clusterer.
const (
	Ignore      = batch.Ignore
	AnyNeighbor = batch.AnyNeighbor
)
