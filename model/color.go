package model

import "math"

// Color is the collaborator interface for a PDF color value. Its
// ToRGBValues/ToLabValues conversions back the color distance functions in
// package metric.
type Color interface {
	// ToRGBValues returns the color's device-RGB components in [0,1].
	ToRGBValues() (r, g, b float64)
	// ToLabValues returns the color's CIE L*a*b* components.
	ToLabValues() (l, a, b float64)
}

// RGBColor is a concrete Color backed by device-RGB components, sufficient
// for tests and for callers that have no ICC-aware color management.
type RGBColor struct {
	R, G, B float64
}

// ToRGBValues implements Color.
func (c RGBColor) ToRGBValues() (r, g, b float64) { return c.R, c.G, c.B }

// ToLabValues implements Color by converting sRGB to CIE L*a*b* via the
// standard D65 sRGB -> XYZ -> Lab pipeline.
func (c RGBColor) ToLabValues() (l, a, b float64) {
	lin := func(v float64) float64 {
		if v <= 0.04045 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	rl, gl, bl := lin(c.R), lin(c.G), lin(c.B)

	x := rl*0.4124564 + gl*0.3575761 + bl*0.1804375
	y := rl*0.2126729 + gl*0.7151522 + bl*0.0721750
	z := rl*0.0193339 + gl*0.1191920 + bl*0.9503041

	const xn, yn, zn = 0.95047, 1.0, 1.08883
	fx := labF(x / xn)
	fy := labF(y / yn)
	fz := labF(z / zn)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}
