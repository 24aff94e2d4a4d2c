package geometry

import "math"

// Epsilon is the default tolerance used for rotation and containment
// comparisons throughout this package.
const Epsilon = 1e-5

// Point is an immutable 2-D point in page space.
type Point struct {
	X, Y float64
}

// NewPoint constructs a Point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector difference p-other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns p scaled by a scalar factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Dot returns the dot product of p and other, treating both as vectors.
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross returns the 2-D cross product (scalar) of p and other.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Norm returns the Euclidean length of p treated as a vector from the origin.
func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Equal reports whether p and other are equal within Epsilon.
func (p Point) Equal(other Point) bool {
	return math.Abs(p.X-other.X) < Epsilon && math.Abs(p.Y-other.Y) < Epsilon
}
