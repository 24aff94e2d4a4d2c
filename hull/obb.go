package hull

import (
	"fmt"
	"math"

	"github.com/tsawler/pdflayout/geometry"
)

// OrientedBoundingBox returns a bounding rectangle aligned with the
// dominant direction of points, found by fitting a least-squares line
// through them: all points are rotated by the negated fitted angle, the
// axis-aligned bounding box is taken, and the box is rotated back.
//
// Requires at least two points. For collinear points the result is a
// zero-area rectangle along the fitted line.
func OrientedBoundingBox(points []geometry.Point) (geometry.Rectangle, error) {
	if len(points) < 2 {
		return geometry.Rectangle{}, fmt.Errorf("%w: OrientedBoundingBox requires at least 2 points, got %d", ErrInvalidArgument, len(points))
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / float64(len(points))
	meanY := sumY / float64(len(points))

	var num, den float64
	for _, p := range points {
		num += (p.X - meanX) * (p.Y - meanY)
		den += (p.X - meanX) * (p.X - meanX)
	}

	var angle float64
	if den < geometry.Epsilon {
		// All points share an X coordinate: the fitted line is vertical.
		angle = math.Pi / 2
	} else {
		angle = math.Atan(num / den)
	}

	toAxis := geometry.RotateMatrix(-angle)
	rotated := make([]geometry.Point, len(points))
	for i, p := range points {
		rotated[i] = toAxis.Transform(p)
	}

	minX, maxX := rotated[0].X, rotated[0].X
	minY, maxY := rotated[0].Y, rotated[0].Y
	for _, p := range rotated[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	back := geometry.RotateMatrix(angle)
	return back.TransformRectangle(geometry.NewAxisAlignedRectangle(minX, minY, maxX, maxY)), nil
}
