package bezier

import (
	"math"

	"github.com/tsawler/pdflayout/geometry"
)

// paramEpsilon widens the valid parameter interval [0,1] slightly so that
// intersections landing exactly on a curve endpoint survive floating-point
// noise in the root finder.
const paramEpsilon = 1e-7

// Curve is a cubic Bézier curve defined by its start point, two control
// points, and end point.
type Curve struct {
	Start    geometry.Point
	Control1 geometry.Point
	Control2 geometry.Point
	End      geometry.Point
}

// PointAt evaluates the curve at parameter t in [0, 1].
func (c Curve) PointAt(t float64) geometry.Point {
	u := 1 - t
	return c.Start.Scale(u * u * u).
		Add(c.Control1.Scale(3 * u * u * t)).
		Add(c.Control2.Scale(3 * u * t * t)).
		Add(c.End.Scale(t * t * t))
}

// Split subdivides the curve at parameter tau using De Casteljau's scheme
// and returns the two halves. Concatenating the halves reproduces the
// original curve.
func (c Curve) Split(tau float64) (Curve, Curve) {
	lerp := func(a, b geometry.Point) geometry.Point {
		return a.Add(b.Sub(a).Scale(tau))
	}

	p01 := lerp(c.Start, c.Control1)
	p12 := lerp(c.Control1, c.Control2)
	p23 := lerp(c.Control2, c.End)
	p012 := lerp(p01, p12)
	p123 := lerp(p12, p23)
	p0123 := lerp(p012, p123)

	left := Curve{Start: c.Start, Control1: p01, Control2: p012, End: p0123}
	right := Curve{Start: p0123, Control1: p123, Control2: p23, End: c.End}
	return left, right
}

// BoundingRectangle returns the axis-aligned envelope of the curve's four
// defining points. The true curve never escapes its control polygon, so
// this is a conservative bound.
func (c Curve) BoundingRectangle() geometry.Rectangle {
	minX := math.Min(math.Min(c.Start.X, c.Control1.X), math.Min(c.Control2.X, c.End.X))
	maxX := math.Max(math.Max(c.Start.X, c.Control1.X), math.Max(c.Control2.X, c.End.X))
	minY := math.Min(math.Min(c.Start.Y, c.Control1.Y), math.Min(c.Control2.Y, c.End.Y))
	maxY := math.Max(math.Max(c.Start.Y, c.Control1.Y), math.Max(c.Control2.Y, c.End.Y))
	return geometry.NewAxisAlignedRectangle(minX, minY, maxX, maxY)
}

// polynomial returns the power-basis coefficients of one coordinate of the
// curve: coord(t) = a·t³ + b·t² + c·t + d.
func polynomial(p0, p1, p2, p3 float64) (a, b, c, d float64) {
	a = -p0 + 3*p1 - 3*p2 + p3
	b = 3*p0 - 6*p1 + 3*p2
	c = -3*p0 + 3*p1
	d = p0
	return a, b, c, d
}

// IntersectSegment returns the points where the curve crosses the line
// segment seg.
//
// The segment's infinite line is written implicitly as Ax + By + C = 0 and
// the curve's parametric coordinates substituted in, yielding a cubic in t
// whose real roots in [0, 1] are candidate crossings. Candidates are kept
// only if they fall on the segment itself, not merely its supporting line.
// An axis-aligned envelope pre-filter skips curves that cannot touch the
// segment at all.
func (c Curve) IntersectSegment(seg geometry.LineSegment) []geometry.Point {
	segBounds := geometry.NewAxisAlignedRectangle(
		math.Min(seg.P1.X, seg.P2.X), math.Min(seg.P1.Y, seg.P2.Y),
		math.Max(seg.P1.X, seg.P2.X), math.Max(seg.P1.Y, seg.P2.Y),
	)
	if !c.BoundingRectangle().Intersects(segBounds) {
		return nil
	}

	// Implicit line through the segment.
	la := seg.P2.Y - seg.P1.Y
	lb := seg.P1.X - seg.P2.X
	lc := -(la*seg.P1.X + lb*seg.P1.Y)

	xa, xb, xc, xd := polynomial(c.Start.X, c.Control1.X, c.Control2.X, c.End.X)
	ya, yb, yc, yd := polynomial(c.Start.Y, c.Control1.Y, c.Control2.Y, c.End.Y)

	roots := SolveCubic(
		la*xa+lb*ya,
		la*xb+lb*yb,
		la*xc+lb*yc,
		la*xd+lb*yd+lc,
	)

	var points []geometry.Point
	for _, t := range roots {
		if t < -paramEpsilon || t > 1+paramEpsilon {
			continue
		}
		p := c.PointAt(math.Max(0, math.Min(1, t)))
		if seg.Contains(p) {
			points = append(points, p)
		}
	}
	return points
}
