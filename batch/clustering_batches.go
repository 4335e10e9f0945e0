package batch

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/ids"
	"github.com/katalvlaran/nngcluster/oracle"
)

// NNGClusteringBatches implements spec section 4.E: it streams candidate
// points through oc in batches of up to batchSize, forming a seed (and
// claiming all k of its neighbors) whenever a candidate's neighbors are
// all still free, and otherwise either tentatively labelling the
// candidate (unassignedMethod == AnyNeighbor) or leaving it at ids.CNA
// (unassignedMethod == Ignore). Neither disposition marks the candidate
// assigned: both stay eligible to be claimed as a core member by a seed
// formed later in the walk, which overwrites any tentative label.
//
// clustering.Label() must already be allocated to clustering.NumDataPoints();
// its contents on entry are overwritten with ids.CNA. clustering.NumClusters()
// must be zero on entry - NNGClusteringBatches never refines an existing
// clustering.
//
// primaryPoints, when non-nil, restricts candidate selection to that set;
// every other point is only ever reachable as a neighbor. batchSize <= 0
// means "as large as possible" (a single batch covering every point).
//
// oc.Search never returns a candidate among its own neighbors: both
// BruteForce and KDTree exclude the query point from its own result row,
// so the self-loop case spec section 4.E flags for the digraph-based path
// (package seed) cannot arise here.
func NNGClusteringBatches(
	ctx context.Context,
	clustering ClusteringSurface,
	oc oracle.Oracle,
	k int,
	u UnassignedMethod,
	radius float64,
	radiusSet bool,
	primaryPoints []ids.PointIndex,
	batchSize int,
) *cerr.Error {
	n := clustering.NumDataPoints()
	switch {
	case k < 2:
		return cerr.New(cerr.InvalidInput, errors.New("batch.NNGClusteringBatches: k must be >= 2"))
	case n < k:
		return cerr.New(cerr.InvalidInput, errors.New("batch.NNGClusteringBatches: num_data_points must be >= k"))
	case u != Ignore && u != AnyNeighbor:
		return cerr.New(cerr.InvalidInput, errors.Errorf("batch.NNGClusteringBatches: unknown unassigned method %d", int(u)))
	case radiusSet && radius <= 0:
		return cerr.New(cerr.InvalidInput, errors.New("batch.NNGClusteringBatches: radius must be positive when set"))
	case primaryPoints != nil && len(primaryPoints) == 0:
		return cerr.New(cerr.InvalidInput, errors.New("batch.NNGClusteringBatches: primaryPoints must be non-empty when non-nil"))
	case clustering.NumClusters() != 0:
		return cerr.New(cerr.InvalidInput, errors.New("batch.NNGClusteringBatches: clustering must start with zero clusters"))
	}

	labels := clustering.Label()
	if len(labels) != n {
		return cerr.New(cerr.InvalidInput, errors.New("batch.NNGClusteringBatches: clustering.Label() length must equal NumDataPoints()"))
	}
	for i := range labels {
		labels[i] = ids.CNA
	}

	if batchSize <= 0 {
		batchSize = n
	}

	var primaryMask []bool
	if primaryPoints != nil {
		primaryMask = make([]bool, n)
		for _, p := range primaryPoints {
			if p < 0 || p >= n {
				return cerr.New(cerr.InvalidInput, errors.Errorf("batch.NNGClusteringBatches: primary point %d out of range", p))
			}
			primaryMask[p] = true
		}
	}

	assigned := make([]bool, n)
	batchIndices := make([]ids.PointIndex, 0, batchSize)

	anySearchRan := false
	anySeedFormed := false

	cur := 0
	for cur < n {
		batchIndices = batchIndices[:0]
		for cur < n && len(batchIndices) < batchSize {
			v := cur
			cur++
			if assigned[v] {
				continue
			}
			if primaryMask != nil && !primaryMask[v] {
				continue
			}
			batchIndices = append(batchIndices, v)
		}
		if len(batchIndices) == 0 {
			break
		}

		anySearchRan = true
		_, neighbors, sErr := oc.Search(ctx, batchIndices, k, radius, radiusSet)
		if sErr != nil {
			if ce, ok := sErr.(*cerr.Error); ok {
				return ce
			}
			return cerr.New(cerr.DistSearchError, sErr)
		}

		for i, v := range batchIndices {
			if assigned[v] {
				continue // claimed as a neighbor earlier in this same batch
			}
			row := neighbors[i*k : (i+1)*k]
			if rowFailed(row) {
				continue // search could not find k neighbors within radius; retry never happens, point stays unassigned
			}

			allFree := true
			for _, nb := range row {
				if assigned[nb] {
					allFree = false
					break
				}
			}

			switch {
			case allFree:
				if clustering.NumClusters() >= ids.CMAX {
					return cerr.New(cerr.TooLargeProblem, errors.New("batch.NNGClusteringBatches: cluster count reached CMAX"))
				}
				label := clustering.NumClusters()
				for _, nb := range row {
					assigned[nb] = true
					labels[nb] = label
				}
				assigned[v] = true
				labels[v] = label
				clustering.SetNumClusters(label + 1)
				anySeedFormed = true
			case u == AnyNeighbor:
				// Tentative only: v is labelled but left unassigned, so a
				// later seed may still claim it as a core member and
				// overwrite this label (spec section 4.E step 6).
				for _, nb := range row {
					if assigned[nb] {
						labels[v] = labels[nb]
						break
					}
				}
			default: // Ignore
				// v keeps its initial ids.CNA label and stays unassigned,
				// so a later seed may still claim it; nothing to do.
			}
		}
	}

	if !anySeedFormed {
		if !anySearchRan {
			return cerr.New(cerr.NoSolution, errors.New("batch.NNGClusteringBatches: no candidate was ever searched"))
		}
		return cerr.New(cerr.NoSolution, errors.New("batch.NNGClusteringBatches: no seed ever formed"))
	}
	return nil
}

func rowFailed(row []ids.PointIndex) bool {
	for _, x := range row {
		if x == ids.PNA {
			return true
		}
	}
	return false
}
