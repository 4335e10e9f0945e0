// Package oracle implements the search-oracle collaborator of spec
// section 6: concrete nearest-neighbor search over a point set, behind
// the abstract interface the batch clusterer consumes. The graph-based
// path (package seed) reads a prebuilt digraph and does not use an oracle.
package oracle

import "context"

// DistanceFunc computes a distance (or any monotone proxy for it, such
// as squared Euclidean distance) between two points of equal
// dimensionality. A radius passed to Search must be expressed in the
// same units the configured DistanceFunc returns.
type DistanceFunc func(a, b []float64) float64

// SquaredEuclidean is the default DistanceFunc: squared Euclidean
// distance, avoiding a sqrt per comparison since only relative order
// matters for nearest-neighbor ranking.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Oracle is the search oracle of spec section 6. Search treats queries
// as consumed-on-call: it never mutates or retains the slice past the
// call, so callers (in particular batch.NNGClusteringBatches, per spec
// section 9's batch_indices note) may reuse or overwrite it immediately
// upon return.
//
// out always has length len(queries)*k: row i (out[i*k:(i+1)*k]) holds
// the k nearest neighbors of queries[i] in ascending distance when the
// search for query i succeeded, or k consecutive ids.PNA sentinels when
// it did not (fewer than k neighbors within radius, when radiusSet).
// numOK counts the rows that succeeded.
type Oracle interface {
	Search(ctx context.Context, queries []int, k int, radius float64, radiusSet bool) (numOK int, out []int, err error)
	Close() error
}
