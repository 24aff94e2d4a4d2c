package clip

import (
	"github.com/tsawler/pdflayout/geometry"
)

// vertex is one node of a Greiner–Hormann vertex list. The two lists (one
// per polygon) are stored as slices and addressed by index; neighbour is
// the index of the twin vertex in the other polygon's list, or -1 for an
// original (non-intersection) vertex. The lists are logically circular.
type vertex struct {
	point     geometry.Point
	intersect bool
	entry     bool
	alpha     float32
	neighbour int
	processed bool
	fake      bool
}

// ring is a polygon boundary. An open ring is auto-closed by a fake edge
// from its last point back to its first; intersections found on a fake edge
// are carried through labeling and traversal but never emitted.
type ring struct {
	pts    []geometry.Point
	closed bool
}

// crossing is one subject-edge/clip-edge intersection, recorded before the
// twin vertices are placed into their lists.
type crossing struct {
	point          geometry.Point
	sEdge, cEdge   int
	sAlpha, cAlpha float64
	fake           bool
	sPos, cPos     int
}

// GreinerHormann clips the closed subject polygon against the closed
// clipping polygon under the given filling rule and returns the resulting
// rings. When the polygons do not cross, the result is whichever polygon
// is contained in the other, or nothing.
func GreinerHormann(clipping, subject []geometry.Point, rule geometry.FillingRule) [][]geometry.Point {
	if len(clipping) < 3 || len(subject) < 3 {
		return nil
	}
	return greinerHormann(ring{pts: clipping, closed: true}, ring{pts: subject, closed: true}, rule)
}

func greinerHormann(clipRing, subjRing ring, rule geometry.FillingRule) [][]geometry.Point {
	crossings := findCrossings(subjRing, clipRing)

	hasReal := false
	for _, c := range crossings {
		if !c.fake {
			hasReal = true
			break
		}
	}
	if !hasReal {
		if contained(subjRing.pts, clipRing.pts, rule) {
			return [][]geometry.Point{append([]geometry.Point(nil), subjRing.pts...)}
		}
		if contained(clipRing.pts, subjRing.pts, rule) {
			return [][]geometry.Point{append([]geometry.Point(nil), clipRing.pts...)}
		}
		return nil
	}

	subj := buildList(subjRing, crossings, true)
	clp := buildList(clipRing, crossings, false)
	for i := range crossings {
		subj[crossings[i].sPos].neighbour = crossings[i].cPos
		clp[crossings[i].cPos].neighbour = crossings[i].sPos
	}

	label(subj, clipRing.pts, rule)
	label(clp, subjRing.pts, rule)

	return traverse([2][]vertex{subj, clp})
}

// contained reports whether the inner ring lies inside the outer ring,
// classifying by the first inner vertex that does not sit exactly on the
// outer boundary. A ring whose every vertex lies on the boundary counts as
// contained.
func contained(inner, outer []geometry.Point, rule geometry.FillingRule) bool {
	for _, p := range inner {
		if onBoundary(p, outer) {
			continue
		}
		return Inside(p, outer, rule)
	}
	return true
}

func onBoundary(p geometry.Point, polygon []geometry.Point) bool {
	for i := range polygon {
		seg := geometry.NewLineSegment(polygon[i], polygon[(i+1)%len(polygon)])
		if seg.Contains(p) {
			return true
		}
	}
	return false
}

// findCrossings intersects every subject edge with every clip edge,
// keeping only proper transversal crossings: each edge's endpoints must lie
// strictly on opposite sides of the other edge's line. Tangential touches
// (a vertex resting on the other polygon's boundary) are not crossings and
// fall through to the containment special cases, which keeps the
// entry/exit alternation consistent. The crossing's alpha along an edge is
// its normalized squared distance from the edge start, which orders
// multiple insertions on the same edge.
func findCrossings(subjRing, clipRing ring) []crossing {
	var crossings []crossing
	for si := range subjRing.pts {
		sSeg, sFake := edge(subjRing, si)
		if sFake && sSeg.Length() < geometry.Epsilon {
			continue
		}
		for ci := range clipRing.pts {
			cSeg, cFake := edge(clipRing, ci)
			if cFake && cSeg.Length() < geometry.Epsilon {
				continue
			}
			if !properCrossing(sSeg, cSeg) {
				continue
			}
			p, ok := sSeg.Intersect(cSeg)
			if !ok {
				continue
			}
			crossings = append(crossings, crossing{
				point:  p,
				sEdge:  si,
				cEdge:  ci,
				sAlpha: alphaAlong(sSeg, p),
				cAlpha: alphaAlong(cSeg, p),
				fake:   sFake || cFake,
			})
		}
	}
	return crossings
}

// properCrossing reports whether a and b cross transversally: the
// endpoints of each segment lie strictly on opposite sides of the other
// segment's supporting line.
func properCrossing(a, b geometry.LineSegment) bool {
	s1 := isLeft(b.P1, b.P2, a.P1)
	s2 := isLeft(b.P1, b.P2, a.P2)
	s3 := isLeft(a.P1, a.P2, b.P1)
	s4 := isLeft(a.P1, a.P2, b.P2)
	opposite := func(u, v float64) bool {
		return (u > geometry.Epsilon && v < -geometry.Epsilon) ||
			(u < -geometry.Epsilon && v > geometry.Epsilon)
	}
	return opposite(s1, s2) && opposite(s3, s4)
}

// edge returns the i-th edge of r and whether it is the fake closing edge
// of an open ring.
func edge(r ring, i int) (geometry.LineSegment, bool) {
	next := (i + 1) % len(r.pts)
	fake := !r.closed && next == 0
	return geometry.NewLineSegment(r.pts[i], r.pts[next]), fake
}

func alphaAlong(seg geometry.LineSegment, p geometry.Point) float64 {
	total := seg.Vector().Dot(seg.Vector())
	if total == 0 {
		return 0
	}
	d := p.Sub(seg.P1)
	return d.Dot(d) / total
}

// buildList lays out one polygon's vertex list: each original vertex
// followed by the crossings on its outgoing edge in ascending alpha order,
// recording each crossing's final list position as it is placed.
func buildList(r ring, crossings []crossing, subjectSide bool) []vertex {
	list := make([]vertex, 0, len(r.pts)+len(crossings))
	for i := range r.pts {
		list = append(list, vertex{point: r.pts[i], neighbour: -1})

		var onEdge []int
		for ci := range crossings {
			e := crossings[ci].cEdge
			if subjectSide {
				e = crossings[ci].sEdge
			}
			if e == i {
				onEdge = append(onEdge, ci)
			}
		}
		alphaOf := func(ci int) float64 {
			if subjectSide {
				return crossings[ci].sAlpha
			}
			return crossings[ci].cAlpha
		}
		for a := 0; a < len(onEdge); a++ {
			for b := a + 1; b < len(onEdge); b++ {
				if alphaOf(onEdge[b]) < alphaOf(onEdge[a]) {
					onEdge[a], onEdge[b] = onEdge[b], onEdge[a]
				}
			}
		}

		for _, ci := range onEdge {
			list = append(list, vertex{
				point:     crossings[ci].point,
				intersect: true,
				alpha:     float32(alphaOf(ci)),
				neighbour: -1,
				fake:      crossings[ci].fake,
			})
			if subjectSide {
				crossings[ci].sPos = len(list) - 1
			} else {
				crossings[ci].cPos = len(list) - 1
			}
		}
	}
	return list
}

// label walks one vertex list and alternates entry/exit flags on its
// intersections, starting from whether the list's first vertex lies inside
// the other polygon under the filling rule.
func label(list []vertex, other []geometry.Point, rule geometry.FillingRule) {
	entry := !Inside(list[0].point, other, rule)
	for i := range list {
		if list[i].intersect {
			list[i].entry = entry
			entry = !entry
		}
	}
}

// traverse assembles output rings. Starting at an unprocessed non-fake
// intersection, it emits vertices walking forward from entries and backward
// from exits, jumping to the twin vertex in the other list at every
// intersection, until it returns to a processed vertex.
func traverse(lists [2][]vertex) [][]geometry.Point {
	var results [][]geometry.Point

	for {
		start := -1
		for i := range lists[0] {
			v := &lists[0][i]
			if v.intersect && !v.processed && !v.fake {
				start = i
				break
			}
		}
		if start == -1 {
			break
		}

		var out []geometry.Point
		cl, ci := 0, start
		for {
			v := &lists[cl][ci]
			v.processed = true
			if v.neighbour >= 0 {
				lists[1-cl][v.neighbour].processed = true
			}
			if !v.fake {
				out = append(out, v.point)
			}

			forward := v.entry
			for {
				if forward {
					ci = (ci + 1) % len(lists[cl])
				} else {
					ci = (ci - 1 + len(lists[cl])) % len(lists[cl])
				}
				w := &lists[cl][ci]
				if w.intersect {
					break
				}
				if !w.fake {
					out = append(out, w.point)
				}
			}

			if lists[cl][ci].processed {
				break
			}
			next := lists[cl][ci].neighbour
			cl = 1 - cl
			ci = next
		}

		if len(out) >= 3 {
			results = append(results, out)
		}
	}
	return results
}
