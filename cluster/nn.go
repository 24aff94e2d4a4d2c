package cluster

import (
	"context"

	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/internal/parallel"
	"github.com/tsawler/pdflayout/kdtree"
)

// Config parameterises a nearest-neighbour clustering run over elements of
// type T. Distance, MaxDistance, PivotPoint and CandidatePoint are
// required; the filters and the rest are optional.
type Config[T any] struct {
	// Distance measures two points; it is also used for k-d tree pruning.
	Distance kdtree.DistanceFunc

	// MaxDistance bounds how far apart two elements may be and still end
	// up linked. Evaluated per candidate pair.
	MaxDistance func(pivot, candidate T) float64

	// PivotPoint maps an element to the point it queries from.
	PivotPoint func(T) geometry.Point

	// CandidatePoint maps an element to the point it is indexed under.
	CandidatePoint func(T) geometry.Point

	// FilterPivot skips elements that should not look for a neighbour at
	// all. Nil accepts every element.
	FilterPivot func(T) bool

	// FilterFinal accepts or rejects a candidate pairing. Nil accepts
	// every pair.
	FilterFinal func(pivot, candidate T) bool

	// K is how many nearest candidates are considered per element; the
	// first acceptable one wins. Values below 1 mean 1.
	K int

	// Workers is the parallelism degree for edge construction: 0 uses
	// GOMAXPROCS, negative runs unbounded.
	Workers int
}

// NearestNeighbours clusters elements by linking each one to its nearest
// acceptable neighbour and grouping the resulting undirected graph into
// connected components.
//
// Edge construction runs in parallel across elements; the edges array has
// one writer per index so the workers never contend. The k-d tree over the
// candidate points is immutable and shared read-only by all workers. A
// cancelled ctx leaves the remaining elements edgeless but still returns a
// complete partition of the input.
func NearestNeighbours[T any](ctx context.Context, elements []T, cfg Config[T]) [][]T {
	if len(elements) == 0 {
		return nil
	}

	k := cfg.K
	if k < 1 {
		k = 1
	}

	tree := kdtree.New(elements, cfg.CandidatePoint)

	edges := newEdges(len(elements))
	parallel.Map(ctx, len(elements), cfg.Workers, func(i int) {
		edges[i] = chooseNeighbour(tree, elements, i, k, cfg)
	})

	return groupElements(elements, GroupByEdges(edges))
}

// chooseNeighbour returns the index element i links to, or -1.
func chooseNeighbour[T any](tree *kdtree.Tree[T], elements []T, i, k int, cfg Config[T]) int {
	pivot := elements[i]
	if cfg.FilterPivot != nil && !cfg.FilterPivot(pivot) {
		return -1
	}

	// k+1 because the element itself is indexed too and comes back as its
	// own nearest candidate.
	results := tree.KNearest(cfg.PivotPoint(pivot), k+1, cfg.Distance)
	considered := 0
	for _, r := range results {
		if r.Index == i {
			continue
		}
		if considered++; considered > k {
			break
		}
		if cfg.FilterFinal != nil && !cfg.FilterFinal(pivot, r.Item) {
			continue
		}
		if r.Distance >= cfg.MaxDistance(pivot, r.Item) {
			continue
		}
		return r.Index
	}
	return -1
}

// LineConfig parameterises the line-segment clustering variant, which
// scans candidates linearly instead of through a k-d tree (a segment has
// no single index point that preserves segment distances).
type LineConfig[T any] struct {
	// Distance measures two line segments.
	Distance func(a, b geometry.LineSegment) float64

	// Segment maps an element to its line segment.
	Segment func(T) geometry.LineSegment

	// MaxDistance bounds how far apart two elements may be and still end
	// up linked.
	MaxDistance func(pivot, candidate T) float64

	// FilterPivot and FilterFinal behave as in Config.
	FilterPivot func(T) bool
	FilterFinal func(pivot, candidate T) bool

	// Workers is the parallelism degree for edge construction.
	Workers int
}

// NearestNeighboursLines clusters line-carrying elements the same way
// NearestNeighbours clusters point-carrying ones, with a linear scan in
// place of the spatial index.
func NearestNeighboursLines[T any](ctx context.Context, elements []T, cfg LineConfig[T]) [][]T {
	if len(elements) == 0 {
		return nil
	}

	edges := newEdges(len(elements))
	parallel.Map(ctx, len(elements), cfg.Workers, func(i int) {
		edges[i] = chooseLineNeighbour(elements, i, cfg)
	})

	return groupElements(elements, GroupByEdges(edges))
}

func chooseLineNeighbour[T any](elements []T, i int, cfg LineConfig[T]) int {
	pivot := elements[i]
	if cfg.FilterPivot != nil && !cfg.FilterPivot(pivot) {
		return -1
	}
	pivotSeg := cfg.Segment(pivot)

	best, bestDist := -1, 0.0
	for j, candidate := range elements {
		if j == i {
			continue
		}
		if cfg.FilterFinal != nil && !cfg.FilterFinal(pivot, candidate) {
			continue
		}
		d := cfg.Distance(pivotSeg, cfg.Segment(candidate))
		if d >= cfg.MaxDistance(pivot, candidate) {
			continue
		}
		if best == -1 || d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// newEdges returns an edge array pre-filled with -1 so that elements the
// parallel map never reaches (cancelled ctx) stay unlinked rather than
// collapsing into element 0's component.
func newEdges(n int) []int {
	edges := make([]int, n)
	for i := range edges {
		edges[i] = -1
	}
	return edges
}

func groupElements[T any](elements []T, groups [][]int) [][]T {
	out := make([][]T, len(groups))
	for g, indices := range groups {
		members := make([]T, len(indices))
		for m, idx := range indices {
			members[m] = elements[idx]
		}
		out[g] = members
	}
	return out
}
