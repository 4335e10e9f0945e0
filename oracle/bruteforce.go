package oracle

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/ids"
)

// BruteForce is the exact O(n) per-query oracle, grounded on the
// teacher's dtw package's DistanceFunc-shaped callback plumbing: every
// query is scored against the entire point set, with no index
// structure. Used as the default oracle and as the correctness
// reference for KDTree in tests.
type BruteForce struct {
	points [][]float64
	dist   DistanceFunc
}

// NewBruteForce constructs a BruteForce oracle over points. A nil dist
// defaults to SquaredEuclidean.
func NewBruteForce(points [][]float64, dist DistanceFunc) (*BruteForce, *cerr.Error) {
	if len(points) == 0 {
		return nil, cerr.New(cerr.InvalidInput, errors.New("oracle.NewBruteForce: points must be non-empty"))
	}
	if dist == nil {
		dist = SquaredEuclidean
	}
	return &BruteForce{points: points, dist: dist}, nil
}

type candidate struct {
	idx  int
	dist float64
}

// Search implements Oracle.
func (b *BruteForce) Search(ctx context.Context, queries []int, k int, radius float64, radiusSet bool) (int, []int, error) {
	if k <= 0 {
		return 0, nil, cerr.New(cerr.InvalidInput, errors.New("oracle.BruteForce.Search: k must be positive"))
	}

	out := make([]int, len(queries)*k)
	for i := range out {
		out[i] = ids.PNA
	}

	numOK := 0
	cands := make([]candidate, 0, len(b.points))
	for qi, q := range queries {
		select {
		case <-ctx.Done():
			return numOK, out, ctx.Err()
		default:
		}
		if q < 0 || q >= len(b.points) {
			return numOK, out, cerr.New(cerr.InvalidInput, errors.Errorf("oracle.BruteForce.Search: query index %d out of range", q))
		}

		cands = cands[:0]
		qp := b.points[q]
		for j, p := range b.points {
			if j == q {
				continue
			}
			d := b.dist(qp, p)
			if radiusSet && d > radius {
				continue
			}
			cands = append(cands, candidate{idx: j, dist: d})
		}
		if len(cands) < k {
			continue
		}
		sort.Slice(cands, func(x, y int) bool {
			if cands[x].dist != cands[y].dist {
				return cands[x].dist < cands[y].dist
			}
			return cands[x].idx < cands[y].idx
		})
		for i := 0; i < k; i++ {
			out[qi*k+i] = cands[i].idx
		}
		numOK++
	}
	return numOK, out, nil
}

// Close implements Oracle; BruteForce owns no resources.
func (b *BruteForce) Close() error { return nil }
