package metric

import (
	"math"

	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/model"
)

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b geometry.Point) float64 {
	return a.Sub(b).Norm()
}

// WeightedEuclidean returns the Euclidean distance between a and b after
// scaling the X and Y axes independently, useful when horizontal and
// vertical spacing carry different significance (e.g. text-line clustering,
// where vertical gaps matter more than horizontal ones).
func WeightedEuclidean(a, b geometry.Point, weightX, weightY float64) float64 {
	dx := (a.X - b.X) * weightX
	dy := (a.Y - b.Y) * weightY
	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b geometry.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// HorizontalProjection returns the horizontal distance between a and b,
// ignoring their Y coordinates.
func HorizontalProjection(a, b geometry.Point) float64 {
	return math.Abs(a.X - b.X)
}

// VerticalProjection returns the vertical distance between a and b,
// ignoring their X coordinates.
func VerticalProjection(a, b geometry.Point) float64 {
	return math.Abs(a.Y - b.Y)
}

// SignedAngleRadians returns the signed angle, in radians, of the vector
// from origin to p relative to the positive X axis.
func SignedAngleRadians(origin, p geometry.Point) float64 {
	v := p.Sub(origin)
	return math.Atan2(v.Y, v.X)
}

// SignedAngleDegrees is SignedAngleRadians converted to degrees.
func SignedAngleDegrees(origin, p geometry.Point) float64 {
	return SignedAngleRadians(origin, p) * 180 / math.Pi
}

// ColorEuclidean returns the Euclidean distance between two colors' RGB
// components.
func ColorEuclidean(a, b model.Color) float64 {
	r1, g1, b1 := a.ToRGBValues()
	r2, g2, b2 := b.ToRGBValues()
	dr, dg, db := r1-r2, g1-g2, b1-b2
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ColorCIEDE2000 returns the CIEDE2000 perceptual color difference between
// a and b, the standard refinement of CIE76 Lab distance that corrects for
// its well-known hue and lightness non-uniformities.
func ColorCIEDE2000(a, b model.Color) float64 {
	l1, a1, b1 := a.ToLabValues()
	l2, a2, b2 := b.ToLabValues()

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	cBar := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(math.Pow(cBar, 7)/(math.Pow(cBar, 7)+math.Pow(25, 7))))
	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)

	h1p := hueAngle(a1p, b1)
	h2p := hueAngle(a2p, b2)

	deltaLp := l2 - l1
	deltaCp := c2p - c1p

	deltahp := h2p - h1p
	switch {
	case c1p*c2p == 0:
		deltahp = 0
	case math.Abs(deltahp) > 180:
		if h2p <= h1p {
			deltahp += 360
		} else {
			deltahp -= 360
		}
	}
	deltaHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(radians(deltahp)/2)

	lBarp := (l1 + l2) / 2
	cBarp := (c1p + c2p) / 2

	var hBarp float64
	switch {
	case c1p*c2p == 0:
		hBarp = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBarp = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBarp = (h1p + h2p + 360) / 2
	default:
		hBarp = (h1p + h2p - 360) / 2
	}

	t := 1 - 0.17*math.Cos(radians(hBarp-30)) +
		0.24*math.Cos(radians(2*hBarp)) +
		0.32*math.Cos(radians(3*hBarp+6)) -
		0.20*math.Cos(radians(4*hBarp-63))

	deltaTheta := 30 * math.Exp(-math.Pow((hBarp-275)/25, 2))
	rc := 2 * math.Sqrt(math.Pow(cBarp, 7)/(math.Pow(cBarp, 7)+math.Pow(25, 7)))
	sl := 1 + (0.015*math.Pow(lBarp-50, 2))/math.Sqrt(20+math.Pow(lBarp-50, 2))
	sc := 1 + 0.045*cBarp
	sh := 1 + 0.015*cBarp*t
	rt := -math.Sin(radians(2*deltaTheta)) * rc

	const kl, kc, kh = 1, 1, 1

	termL := deltaLp / (kl * sl)
	termC := deltaCp / (kc * sc)
	termH := deltaHp / (kh * sh)

	return math.Sqrt(termL*termL + termC*termC + termH*termH + rt*termC*termH)
}

func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
