package geometry

import "math"

// LineSegment is an ordered pair of points.
type LineSegment struct {
	P1, P2 Point
}

// NewLineSegment constructs a LineSegment.
func NewLineSegment(p1, p2 Point) LineSegment {
	return LineSegment{P1: p1, P2: p2}
}

// IsVertical reports whether the segment's endpoints share an X coordinate.
func (l LineSegment) IsVertical() bool {
	return math.Abs(l.P1.X-l.P2.X) < Epsilon
}

// IsHorizontal reports whether the segment's endpoints share a Y coordinate.
func (l LineSegment) IsHorizontal() bool {
	return math.Abs(l.P1.Y-l.P2.Y) < Epsilon
}

// Length returns the Euclidean length of the segment.
func (l LineSegment) Length() float64 {
	return l.P2.Sub(l.P1).Norm()
}

// Vector returns the displacement vector from P1 to P2.
func (l LineSegment) Vector() Point {
	return l.P2.Sub(l.P1)
}

// slopeIntercept returns (slope, intercept) for the infinite line through l.
// Vertical segments report slope = NaN and intercept = the shared X value.
func (l LineSegment) slopeIntercept() (slope, intercept float64) {
	if l.IsVertical() {
		return math.NaN(), l.P1.X
	}
	slope = (l.P2.Y - l.P1.Y) / (l.P2.X - l.P1.X)
	intercept = l.P1.Y - slope*l.P1.X
	return slope, intercept
}

// ParallelTo reports whether l and other are parallel (including both being
// vertical).
func (l LineSegment) ParallelTo(other LineSegment) bool {
	if l.IsVertical() && other.IsVertical() {
		return true
	}
	if l.IsVertical() != other.IsVertical() {
		return false
	}
	s1, _ := l.slopeIntercept()
	s2, _ := other.slopeIntercept()
	return math.Abs(s1-s2) < Epsilon
}

// ccwSign returns the sign of the cross product (b-a) x (c-a); positive
// means a,b,c turn counter-clockwise.
func ccwSign(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Intersects reports whether l and other cross, using the four-CCW-sign
// test. Touching at an endpoint counts as intersecting.
func (l LineSegment) Intersects(other LineSegment) bool {
	d1 := ccwSign(other.P1, other.P2, l.P1)
	d2 := ccwSign(other.P1, other.P2, l.P2)
	d3 := ccwSign(l.P1, l.P2, other.P1)
	d4 := ccwSign(l.P1, l.P2, other.P2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(other.P1, other.P2, l.P1) {
		return true
	}
	if d2 == 0 && onSegment(other.P1, other.P2, l.P2) {
		return true
	}
	if d3 == 0 && onSegment(l.P1, l.P2, other.P1) {
		return true
	}
	if d4 == 0 && onSegment(l.P1, l.P2, other.P2) {
		return true
	}
	return false
}

// onSegment reports whether p, known to be collinear with a-b, lies within
// the bounding box of segment a-b.
func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X)-Epsilon <= p.X && p.X <= math.Max(a.X, b.X)+Epsilon &&
		math.Min(a.Y, b.Y)-Epsilon <= p.Y && p.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// Contains reports whether p lies on the segment l (collinear and within
// its bounding box).
func (l LineSegment) Contains(p Point) bool {
	cross := ccwSign(l.P1, l.P2, p)
	return math.Abs(cross) < Epsilon && onSegment(l.P1, l.P2, p)
}

// Intersect returns the point where the infinite lines through l and other
// cross, or false if the segments are parallel (no unique crossing) or the
// crossing point falls outside either segment. The crossing point of the two
// infinite lines is computed from slope/intercept, with a dedicated branch
// for vertical segments.
func (l LineSegment) Intersect(other LineSegment) (Point, bool) {
	if l.ParallelTo(other) {
		return Point{}, false
	}

	var pt Point
	switch {
	case l.IsVertical():
		s2, i2 := other.slopeIntercept()
		x := l.P1.X
		y := s2*x + i2
		pt = Point{X: x, Y: y}
	case other.IsVertical():
		s1, i1 := l.slopeIntercept()
		x := other.P1.X
		y := s1*x + i1
		pt = Point{X: x, Y: y}
	default:
		s1, i1 := l.slopeIntercept()
		s2, i2 := other.slopeIntercept()
		x := (i2 - i1) / (s1 - s2)
		y := s1*x + i1
		pt = Point{X: x, Y: y}
	}

	if !onSegment(l.P1, l.P2, pt) || !onSegment(other.P1, other.P2, pt) {
		return Point{}, false
	}
	return pt, true
}

// Extend returns a new segment extended by amount at both endpoints, along
// the segment's own direction. Used to close small gaps between rulings
// that should meet but fall just short due to rendering tolerance.
func (l LineSegment) Extend(amount float64) LineSegment {
	v := l.Vector()
	n := v.Norm()
	if n < Epsilon {
		return l
	}
	unit := v.Scale(1 / n)
	return LineSegment{
		P1: l.P1.Sub(unit.Scale(amount)),
		P2: l.P2.Add(unit.Scale(amount)),
	}
}
