package tables

import (
	"sort"

	"github.com/tsawler/pdflayout/cluster"
	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/metric"
)

// rulingPair identifies the horizontal and vertical ruling meeting at a
// crossing, by index into the merged ruling slice.
type rulingPair struct {
	h, v int
}

// buildIntersections intersects every horizontal ruling with every
// vertical one. Keys are exact points (rulings are snapped, so crossings
// at the same spot compare equal); multiple crossings at one point
// overwrite each other.
func buildIntersections(rulings []Ruling) map[geometry.Point]rulingPair {
	m := make(map[geometry.Point]rulingPair)
	for hi, h := range rulings {
		if h.Vertical {
			continue
		}
		for vi, v := range rulings {
			if !v.Vertical {
				continue
			}
			if p, ok := h.Segment.Intersect(v.Segment); ok {
				m[p] = rulingPair{h: hi, v: vi}
			}
		}
	}
	return m
}

// findCellRectangles runs the rectangular-cell discovery over an
// intersection map. Crossings are visited top-to-bottom then
// left-to-right; each one is tried as a cell's top-left corner against the
// crossings below it on the same vertical ruling and right of it on the
// same horizontal ruling. A cell is emitted when the opposite corner
// exists and all four edges run along shared rulings; each crossing
// contributes at most one cell.
func findCellRectangles(intersections map[geometry.Point]rulingPair) []geometry.Rectangle {
	points := make([]geometry.Point, 0, len(intersections))
	for p := range intersections {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y > points[j].Y
		}
		return points[i].X < points[j].X
	})

	var cells []geometry.Rectangle
	for i, c := range points {
		cPair := intersections[c]

		// Candidate corners later in the scan order: below on the same
		// vertical ruling, right on the same horizontal ruling. The scan
		// order leaves both nearest-first.
		var below, right []geometry.Point
		for _, p := range points[i+1:] {
			pair := intersections[p]
			if pair.v == cPair.v && p.Y < c.Y {
				below = append(below, p)
			}
			if pair.h == cPair.h && p.X > c.X {
				right = append(right, p)
			}
		}

		if cell, ok := cellAt(c, below, right, intersections); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

func cellAt(c geometry.Point, below, right []geometry.Point, intersections map[geometry.Point]rulingPair) (geometry.Rectangle, bool) {
	for _, bp := range below {
		for _, rp := range right {
			opposite := geometry.Point{X: rp.X, Y: bp.Y}
			oppPair, ok := intersections[opposite]
			if !ok {
				continue
			}
			// All four edges must run along shared rulings: left edge on
			// c's vertical, top edge on c's horizontal, bottom and right
			// edges on the rulings through the opposite corner.
			if oppPair.h != intersections[bp].h || oppPair.v != intersections[rp].v {
				continue
			}
			return geometry.NewAxisAlignedRectangle(c.X, bp.Y, rp.X, c.Y), true
		}
	}
	return geometry.Rectangle{}, false
}

// groupCells partitions cells into candidate tables: two cells share a
// table when any pair of their corners lies within threshold of each
// other.
func groupCells(cells []geometry.Rectangle, threshold float64) [][]geometry.Rectangle {
	edges := make([]int, len(cells))
	for i := range edges {
		edges[i] = -1
		for j := range cells {
			if j != i && cornersTouch(cells[i], cells[j], threshold) {
				edges[i] = j
				break
			}
		}
	}
	return groupRectangles(cells, cluster.GroupByEdges(edges))
}

func cornersTouch(a, b geometry.Rectangle, threshold float64) bool {
	for _, ca := range a.Corners() {
		for _, cb := range b.Corners() {
			if metric.Euclidean(ca, cb) <= threshold {
				return true
			}
		}
	}
	return false
}

func groupRectangles(cells []geometry.Rectangle, groups [][]int) [][]geometry.Rectangle {
	out := make([][]geometry.Rectangle, len(groups))
	for g, indices := range groups {
		members := make([]geometry.Rectangle, len(indices))
		for m, idx := range indices {
			members[m] = cells[idx]
		}
		out[g] = members
	}
	return out
}
