// Package nngcluster groups points into size-constrained clusters built
// from a nearest-neighbor relation: each cluster is a seed point plus
// its nearest neighbors (its k nearest in the batched clusterer, its
// out-neighbors in the graph-based one), chosen so that no two clusters'
// closed neighborhoods overlap.
//
// The engine is organized under several subpackages:
//
//	ids/       — shared sentinel/bound constants (PointIndex, ClusterLabel, ...)
//	cerr/      — the error-kind carrier every fallible operation returns
//	digraph/   — the packed CSR directed-graph container and its algebra
//	sortindex/ — the bucket-sorted priority index the "updating" seed heuristics use
//	seed/      — the six seed-selection heuristics over a nearest-neighbor digraph
//	oracle/    — brute-force and k-d tree nearest-neighbor search over a point set
//	batch/     — the batched, oracle-driven clusterer that never materializes a digraph
//	cluster/   — the facade tying seed/batch to a single Clustering result type
//	cmd/nngcluster/ — the CLI front end
package nngcluster
