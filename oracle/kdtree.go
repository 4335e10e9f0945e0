package oracle

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/ids"
)

// indexedPoint is a kdtree.Comparable carrying its original point index,
// since gonum's own kdtree.Point loses that association once points are
// reordered during tree construction.
type indexedPoint struct {
	idx int
	vec []float64
}

func (p *indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.vec[d] - c.(*indexedPoint).vec[d]
}

func (p *indexedPoint) Dims() int { return len(p.vec) }

func (p *indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(*indexedPoint)
	var sum float64
	for i, v := range p.vec {
		d := v - q.vec[i]
		sum += d * d
	}
	return sum
}

// indexedPoints adapts a slice of *indexedPoint to kdtree.Interface.
// Pivot partitions by a full sort on dimension d rather than a
// quickselect: simpler to get right than reimplementing gonum's
// internal median-of-medians, and tree construction here is a one-shot
// warm-up cost, not a hot path.
type indexedPoints []*indexedPoint

func (p indexedPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p indexedPoints) Len() int                      { return len(p) }

func (p indexedPoints) Pivot(d kdtree.Dim) int {
	sort.Slice(p, func(i, j int) bool { return p[i].vec[d] < p[j].vec[d] })
	return len(p) / 2
}

func (p indexedPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// KDTree wraps gonum.org/v1/gonum/spatial/kdtree for sub-linear nearest
// neighbor search on Euclidean point sets, grounded on the teacher's
// converterts package doc comment, which already earmarked gonum as an
// intended external collaborator.
//
// KDTree always measures distance via squared Euclidean (the point
// wrapper's Distance method), so a radius passed to Search is in
// squared-Euclidean units. The dist field is stored but never consulted.
type KDTree struct {
	points []*indexedPoint
	tree   *kdtree.Tree
	dist   DistanceFunc
}

// NewKDTree builds a KDTree oracle over points. dist is accepted for
// symmetry with NewBruteForce (a nil dist defaults to SquaredEuclidean)
// but has no effect: searches always use squared Euclidean distance.
func NewKDTree(points [][]float64, dist DistanceFunc) (*KDTree, *cerr.Error) {
	if len(points) == 0 {
		return nil, cerr.New(cerr.InvalidInput, errors.New("oracle.NewKDTree: points must be non-empty"))
	}
	if dist == nil {
		dist = SquaredEuclidean
	}

	wrapped := make(indexedPoints, len(points))
	owned := make([]*indexedPoint, len(points))
	for i, p := range points {
		ip := &indexedPoint{idx: i, vec: p}
		wrapped[i] = ip
		owned[i] = ip
	}

	tree := kdtree.New(wrapped, true)
	return &KDTree{points: owned, tree: tree, dist: dist}, nil
}

// Search implements Oracle.
func (kd *KDTree) Search(ctx context.Context, queries []int, k int, radius float64, radiusSet bool) (int, []int, error) {
	if k <= 0 {
		return 0, nil, cerr.New(cerr.InvalidInput, errors.New("oracle.KDTree.Search: k must be positive"))
	}

	out := make([]int, len(queries)*k)
	for i := range out {
		out[i] = ids.PNA
	}

	numOK := 0
	for qi, q := range queries {
		select {
		case <-ctx.Done():
			return numOK, out, ctx.Err()
		default:
		}
		if q < 0 || q >= len(kd.points) {
			return numOK, out, cerr.New(cerr.InvalidInput, errors.Errorf("oracle.KDTree.Search: query index %d out of range", q))
		}

		keeper := kdtree.NewNKeeper(k + 1) // +1: the query point itself is always its own nearest match
		kd.tree.NearestSet(keeper, kd.points[q])

		hits := make([]kdtree.ComparableDist, 0, len(keeper.Heap))
		for _, h := range keeper.Heap {
			if h.Comparable.(*indexedPoint).idx == q {
				continue
			}
			if radiusSet && h.Dist > radius {
				continue
			}
			hits = append(hits, h)
		}
		if len(hits) < k {
			continue
		}
		sort.Slice(hits, func(a, b int) bool {
			if hits[a].Dist != hits[b].Dist {
				return hits[a].Dist < hits[b].Dist
			}
			return hits[a].Comparable.(*indexedPoint).idx < hits[b].Comparable.(*indexedPoint).idx
		})
		for i := 0; i < k; i++ {
			out[qi*k+i] = hits[i].Comparable.(*indexedPoint).idx
		}
		numOK++
	}
	return numOK, out, nil
}

// Close implements Oracle; KDTree owns no external resources beyond
// Go-managed memory.
func (kd *KDTree) Close() error { return nil }
