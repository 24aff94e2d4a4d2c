package clip

import "github.com/tsawler/pdflayout/geometry"

// isLeft reports the side of the infinite line a->b the point p falls on:
// positive left, negative right, zero collinear.
func isLeft(a, b, p geometry.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// WindingCount returns the signed number of times polygon winds around p,
// counting signed crossings of the horizontal ray running from p towards
// positive X.
func WindingCount(p geometry.Point, polygon []geometry.Point) int {
	wn := 0
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%len(polygon)]
		if a.Y <= p.Y {
			if b.Y > p.Y && isLeft(a, b, p) > 0 {
				wn++
			}
		} else {
			if b.Y <= p.Y && isLeft(a, b, p) < 0 {
				wn--
			}
		}
	}
	return wn
}

// crossingCount returns the unsigned number of polygon edges crossed by the
// horizontal ray running from p towards positive X.
func crossingCount(p geometry.Point, polygon []geometry.Point) int {
	n := 0
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%len(polygon)]
		if (a.Y <= p.Y) != (b.Y <= p.Y) {
			// Edge straddles the horizontal through p; find the crossing X.
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if x > p.X {
				n++
			}
		}
	}
	return n
}

// Inside reports whether p lies inside polygon under the given filling
// rule: even-odd uses crossing parity, non-zero-winding uses a non-zero
// winding count.
func Inside(p geometry.Point, polygon []geometry.Point, rule geometry.FillingRule) bool {
	if rule == geometry.EvenOdd {
		return crossingCount(p, polygon)%2 == 1
	}
	return WindingCount(p, polygon) != 0
}
