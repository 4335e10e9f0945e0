// Package cluster is the facade of spec section 6: it owns the
// Clustering result type and its allocation contract, and wires the
// graph-based seed finder (package seed) and the batched oracle-driven
// clusterer (package batch) behind two entry points.
package cluster

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/ids"
)

// Clustering is the result of a clustering run: NumClusters labels over
// NumDataPoints points, with ids.CNA marking a point left unassigned.
//
// *Clustering satisfies batch.ClusteringSurface structurally, so it can
// be passed directly to batch.NNGClusteringBatches.
type Clustering struct {
	n              int
	numClusters    int
	label          []ids.ClusterLabel
	externalLabels bool
}

// NewClustering allocates a Clustering over n data points. If label is
// nil, a fresh ids.CNA-filled slice is allocated and owned internally;
// otherwise label is adopted as-is (it must have length n) and the
// caller retains ownership - ExternalLabels reports which happened.
func NewClustering(n int, label []ids.ClusterLabel) (*Clustering, *cerr.Error) {
	if n < 0 {
		return nil, cerr.New(cerr.InvalidInput, errors.New("cluster.NewClustering: n must be non-negative"))
	}
	if label == nil {
		label = make([]ids.ClusterLabel, n)
		for i := range label {
			label[i] = ids.CNA
		}
		return &Clustering{n: n, label: label, externalLabels: false}, nil
	}
	if len(label) != n {
		return nil, cerr.New(cerr.InvalidInput, errors.New("cluster.NewClustering: label length must equal n"))
	}
	return &Clustering{n: n, label: label, externalLabels: true}, nil
}

// NumDataPoints returns the number of points in the clustering.
func (c *Clustering) NumDataPoints() int { return c.n }

// NumClusters returns the number of distinct clusters formed so far.
func (c *Clustering) NumClusters() int { return c.numClusters }

// SetNumClusters overwrites the cluster count. Exposed so package batch
// (which cannot import package cluster) can advance it through the
// batch.ClusteringSurface interface; not for general use.
func (c *Clustering) SetNumClusters(n int) { c.numClusters = n }

// Label returns the per-point cluster labels. The returned slice is the
// clustering's own backing array: mutating it mutates the clustering.
func (c *Clustering) Label() []ids.ClusterLabel { return c.label }

// ExternalLabels reports whether Label's backing array was supplied by
// the caller (true) or allocated internally by NewClustering (false).
func (c *Clustering) ExternalLabels() bool { return c.externalLabels }
