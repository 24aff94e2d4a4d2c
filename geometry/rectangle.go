package geometry

import (
	"fmt"
	"math"
)

// Rectangle is a (possibly rotated) quadrilateral described by its four
// corners. It is immutable once constructed.
type Rectangle struct {
	BottomLeft  Point
	BottomRight Point
	TopLeft     Point
	TopRight    Point
}

// NewRectangle builds a Rectangle from explicit corners. Callers are
// responsible for passing corners that actually form a rectangle; this
// constructor performs no validation (it is a data carrier, like the rest of
// this package).
func NewRectangle(bottomLeft, bottomRight, topLeft, topRight Point) Rectangle {
	return Rectangle{BottomLeft: bottomLeft, BottomRight: bottomRight, TopLeft: topLeft, TopRight: topRight}
}

// NewAxisAlignedRectangle builds an axis-aligned Rectangle from its bounds.
func NewAxisAlignedRectangle(left, bottom, right, top float64) Rectangle {
	return Rectangle{
		BottomLeft:  Point{X: left, Y: bottom},
		BottomRight: Point{X: right, Y: bottom},
		TopLeft:     Point{X: left, Y: top},
		TopRight:    Point{X: right, Y: top},
	}
}

// Width returns the length of the bottom edge.
func (r Rectangle) Width() float64 {
	return r.BottomRight.Sub(r.BottomLeft).Norm()
}

// Height returns the length of the left edge.
func (r Rectangle) Height() float64 {
	return r.TopLeft.Sub(r.BottomLeft).Norm()
}

// Rotation returns the rectangle's rotation in radians: the angle of the
// bottom edge (BottomLeft to BottomRight) measured from the positive X axis.
func (r Rectangle) Rotation() float64 {
	v := r.BottomRight.Sub(r.BottomLeft)
	return math.Atan2(v.Y, v.X)
}

// IsAxisAligned reports whether the rectangle's rotation is zero or pi
// (bottom edge pointing towards negative X) within Epsilon.
func (r Rectangle) IsAxisAligned() bool {
	rot := r.Rotation()
	return math.Abs(rot) < Epsilon || math.Abs(math.Abs(rot)-math.Pi) < Epsilon
}

// Area returns the rectangle's area (always >= 0).
func (r Rectangle) Area() float64 {
	return r.Width() * r.Height()
}

// Left returns the minimum X coordinate among the rectangle's corners.
func (r Rectangle) Left() float64 { return r.Normalise().BottomLeft.X }

// Right returns the maximum X coordinate among the rectangle's corners.
func (r Rectangle) Right() float64 { return r.Normalise().BottomRight.X }

// Bottom returns the minimum Y coordinate among the rectangle's corners.
func (r Rectangle) Bottom() float64 { return r.Normalise().BottomLeft.Y }

// Top returns the maximum Y coordinate among the rectangle's corners.
func (r Rectangle) Top() float64 { return r.Normalise().TopLeft.Y }

// Centroid returns the average of the four corners.
func (r Rectangle) Centroid() Point {
	return Point{
		X: (r.BottomLeft.X + r.BottomRight.X + r.TopLeft.X + r.TopRight.X) / 4,
		Y: (r.BottomLeft.Y + r.BottomRight.Y + r.TopLeft.Y + r.TopRight.Y) / 4,
	}
}

// Corners returns the four corners in CCW order starting at BottomLeft.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{r.BottomLeft, r.BottomRight, r.TopRight, r.TopLeft}
}

// Normalise returns the smallest axis-aligned rectangle containing all four
// corners of r. For an already axis-aligned rectangle this is r itself
// (modulo corner relabeling).
func (r Rectangle) Normalise() Rectangle {
	corners := r.Corners()
	minX, maxX := corners[0].X, corners[0].X
	minY, maxY := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		maxX = math.Max(maxX, c.X)
		minY = math.Min(minY, c.Y)
		maxY = math.Max(maxY, c.Y)
	}
	return NewAxisAlignedRectangle(minX, minY, maxX, maxY)
}

// ContainsPoint reports whether p lies within r. For axis-aligned
// rectangles this compares coordinates directly; for rotated rectangles it
// uses the sum-of-triangle-areas test: p is inside iff the sum of the areas
// of the four triangles formed by p and each edge equals the rectangle's
// own area within Epsilon. includeBorder controls whether points exactly on
// an edge count as contained.
func (r Rectangle) ContainsPoint(p Point, includeBorder bool) bool {
	if r.IsAxisAligned() {
		aabb := r.Normalise()
		if includeBorder {
			return p.X >= aabb.BottomLeft.X && p.X <= aabb.BottomRight.X &&
				p.Y >= aabb.BottomLeft.Y && p.Y <= aabb.TopLeft.Y
		}
		return p.X > aabb.BottomLeft.X && p.X < aabb.BottomRight.X &&
			p.Y > aabb.BottomLeft.Y && p.Y < aabb.TopLeft.Y
	}

	corners := r.Corners()
	area := r.Area()
	sum := 0.0
	minTriangle := math.Inf(1)
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		t := triangleArea(p, a, b)
		sum += t
		if t < minTriangle {
			minTriangle = t
		}
	}

	onEdge := minTriangle < Epsilon
	if onEdge {
		return includeBorder
	}
	return math.Abs(sum-area) < Epsilon
}

func triangleArea(a, b, c Point) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(b.Y-a.Y)*(c.X-a.X)) / 2
}

// Contains reports whether r fully contains other (every corner of other is
// inside r, borders included).
func (r Rectangle) Contains(other Rectangle) bool {
	for _, c := range other.Corners() {
		if !r.ContainsPoint(c, true) {
			return false
		}
	}
	return true
}

// Intersects reports whether r and other overlap. Axis-aligned rectangles
// use interval overlap; rotated rectangles first check their axis-aligned
// envelopes, then corner containment in both directions, then all edge-pair
// crossings.
func (r Rectangle) Intersects(other Rectangle) bool {
	if r.IsAxisAligned() && other.IsAxisAligned() {
		a, b := r.Normalise(), other.Normalise()
		return a.BottomLeft.X <= b.BottomRight.X && a.BottomRight.X >= b.BottomLeft.X &&
			a.BottomLeft.Y <= b.TopLeft.Y && a.TopLeft.Y >= b.BottomLeft.Y
	}

	if !r.Normalise().Intersects(other.Normalise()) {
		return false
	}

	for _, c := range r.Corners() {
		if other.ContainsPoint(c, true) {
			return true
		}
	}
	for _, c := range other.Corners() {
		if r.ContainsPoint(c, true) {
			return true
		}
	}

	rc := r.Corners()
	oc := other.Corners()
	for i := 0; i < 4; i++ {
		e1 := LineSegment{P1: rc[i], P2: rc[(i+1)%4]}
		for j := 0; j < 4; j++ {
			e2 := LineSegment{P1: oc[j], P2: oc[(j+1)%4]}
			if e1.Intersects(e2) {
				return true
			}
		}
	}
	return false
}

// Intersect returns the intersection rectangle of r and other, or false if
// they do not overlap. Only axis-aligned intersection is supported — it
// returns the axis-aligned overlap of the two rectangles' bounds, which is
// exact when both inputs are axis-aligned and a conservative envelope
// overlap otherwise.
func (r Rectangle) Intersect(other Rectangle) (Rectangle, bool) {
	a, b := r.Normalise(), other.Normalise()
	left := math.Max(a.BottomLeft.X, b.BottomLeft.X)
	right := math.Min(a.BottomRight.X, b.BottomRight.X)
	bottom := math.Max(a.BottomLeft.Y, b.BottomLeft.Y)
	top := math.Min(a.TopLeft.Y, b.TopLeft.Y)
	if left > right || bottom > top {
		return Rectangle{}, false
	}
	return NewAxisAlignedRectangle(left, bottom, right, top), true
}

// String implements fmt.Stringer for debugging.
func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle{BL:%v BR:%v TL:%v TR:%v}", r.BottomLeft, r.BottomRight, r.TopLeft, r.TopRight)
}
