package clip

import "github.com/tsawler/pdflayout/geometry"

// SutherlandHodgman clips the subject polygon against a convex clipping
// polygon given in counter-clockwise order. The subject is walked once per
// clipping edge: vertices on the inner half-plane are kept, and the
// edge-crossing point is emitted whenever the inside/outside status flips
// between consecutive vertices.
//
// The clipping polygon must be convex; for general polygons use
// GreinerHormann.
func SutherlandHodgman(clipping, subject []geometry.Point) []geometry.Point {
	if len(clipping) < 3 || len(subject) == 0 {
		return nil
	}

	output := subject
	for i := range clipping {
		if len(output) == 0 {
			return nil
		}
		edgeA := clipping[i]
		edgeB := clipping[(i+1)%len(clipping)]

		input := output
		output = nil
		prev := input[len(input)-1]
		prevInside := isLeft(edgeA, edgeB, prev) >= 0
		for _, curr := range input {
			currInside := isLeft(edgeA, edgeB, curr) >= 0
			if currInside != prevInside {
				if p, ok := lineCrossing(edgeA, edgeB, prev, curr); ok {
					output = append(output, p)
				}
			}
			if currInside {
				output = append(output, curr)
			}
			prev = curr
			prevInside = currInside
		}
	}
	return output
}

// lineCrossing returns the point where the infinite line through a-b meets
// the segment p-q.
func lineCrossing(a, b, p, q geometry.Point) (geometry.Point, bool) {
	dir := b.Sub(a)
	seg := q.Sub(p)
	denom := dir.Cross(seg)
	if denom == 0 {
		return geometry.Point{}, false
	}
	t := dir.Cross(p.Sub(a)) / -denom
	return p.Add(seg.Scale(t)), true
}
