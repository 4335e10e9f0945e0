package seed

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/nngcluster/cerr"
	"github.com/katalvlaran/nngcluster/digraph"
	"github.com/katalvlaran/nngcluster/ids"
)

// state is the shared scan state of spec section 4.D: marks[v] records
// that v already belongs to some seed's closed neighborhood, labels is
// the per-point cluster assignment being built, and seeds accumulates the
// chosen seed list.
type state struct {
	g      *digraph.Digraph
	marks  []bool
	labels []ids.ClusterLabel
	seeds  *SeedResult
	next   ids.ClusterLabel
}

func newState(g *digraph.Digraph) *state {
	n := g.Vertices()
	labels := make([]ids.ClusterLabel, n)
	for i := range labels {
		labels[i] = ids.CNA
	}
	return &state{g: g, marks: make([]bool, n), labels: labels, seeds: &SeedResult{}}
}

// trySeed implements the common try_seed(v) routine: v is a seed iff it
// is unmarked, has a non-empty out-neighborhood, and every out-neighbor
// is itself unmarked. On success, every out-neighbor is marked first and
// v is marked last, so a self-loop in out(v) does not block its own
// acceptance.
func (s *state) trySeed(v ids.PointIndex) (bool, *cerr.Error) {
	if s.marks[v] {
		return false, nil
	}
	out := s.g.Out(v)
	if len(out) == 0 {
		return false, nil
	}
	for _, x := range out {
		if s.marks[x] {
			return false, nil
		}
	}

	label := s.next
	if aErr := s.seeds.append(v); aErr != nil {
		return false, aErr
	}
	for _, x := range out {
		s.marks[x] = true
		s.labels[x] = label
	}
	s.marks[v] = true
	s.labels[v] = label
	s.next++
	return true, nil
}

// Find dispatches to the heuristic named by method, returning the seed
// list and the resulting cluster label array.
func Find(method Method, g *digraph.Digraph) (*SeedResult, []ids.ClusterLabel, *cerr.Error) {
	if g == nil {
		return nil, nil, cerr.New(cerr.InvalidInput, errors.New("seed.Find: digraph must be non-nil"))
	}
	switch method {
	case Lexical:
		return lexical(g)
	case InwardsOrder:
		return inwardsOrder(g)
	case InwardsUpdating:
		return inwardsUpdating(g)
	case InwardsAltUpdating:
		return inwardsAltUpdating(g)
	case ExclusionOrder:
		return exclusionOrder(g)
	case ExclusionUpdating:
		return exclusionUpdating(g)
	default:
		return nil, nil, cerr.New(cerr.InvalidInput, errors.Errorf("seed.Find: unknown method %d", int(method)))
	}
}
