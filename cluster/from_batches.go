package cluster

import (
	"context"

	"github.com/katalvlaran/nngcluster/batch"
	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/ids"
	"github.com/katalvlaran/nngcluster/oracle"
)

// NNGClusteringBatches is the thin wrapper of spec section 6 over
// batch.NNGClusteringBatches: it owns the Clustering allocation contract
// (label nil -> internally allocated, tracked via ExternalLabels) and
// hands the resulting *Clustering to batch.NNGClusteringBatches through
// the batch.ClusteringSurface interface it satisfies structurally.
func NNGClusteringBatches(
	ctx context.Context,
	n int,
	label []ids.ClusterLabel,
	oc oracle.Oracle,
	k int,
	u UnassignedMethod,
	radius float64,
	radiusSet bool,
	primaryPoints []ids.PointIndex,
	batchSize int,
) (*Clustering, *cerr.Error) {
	c, err := NewClustering(n, label)
	if err != nil {
		return nil, err
	}

	if bErr := batch.NNGClusteringBatches(ctx, c, oc, k, u, radius, radiusSet, primaryPoints, batchSize); bErr != nil {
		return nil, bErr
	}
	return c, nil
}
