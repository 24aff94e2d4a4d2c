package hull

import (
	"fmt"
	"math"

	"github.com/tsawler/pdflayout/geometry"
)

// MinimumAreaRectangle returns the smallest-area rectangle (not necessarily
// axis-aligned) enclosing points.
//
// Rotating-calipers over the convex hull: for each hull edge, every hull
// vertex is projected onto the edge parametrically (t = (Pj-Pk)·v / |v|²),
// tracking the parameter range [tMin, tMax] and the farthest signed
// perpendicular distance sMax. One side of the candidate rectangle lies
// along the edge; the minimum-area candidate over all edges wins.
func MinimumAreaRectangle(points []geometry.Point) (geometry.Rectangle, error) {
	if len(points) == 0 {
		return geometry.Rectangle{}, fmt.Errorf("%w: MinimumAreaRectangle requires at least one point", ErrInvalidArgument)
	}

	hull, err := GrahamScan(points)
	if err != nil {
		return geometry.Rectangle{}, err
	}

	switch len(hull) {
	case 1:
		p := hull[0]
		return geometry.NewRectangle(p, p, p, p), nil
	case 2:
		return geometry.NewRectangle(hull[0], hull[1], hull[0], hull[1]), nil
	}

	bestArea := math.Inf(1)
	var best geometry.Rectangle
	for k := 0; k < len(hull); k++ {
		pk := hull[k]
		v := hull[(k+1)%len(hull)].Sub(pk)
		vLen2 := v.Dot(v)
		if vLen2 < geometry.Epsilon {
			continue
		}

		tMin, tMax := math.Inf(1), math.Inf(-1)
		sMax := 0.0
		for _, pj := range hull {
			d := pj.Sub(pk)
			t := d.Dot(v) / vLen2
			tMin = math.Min(tMin, t)
			tMax = math.Max(tMax, t)
			// Signed perpendicular distance, in units of |v|.
			s := v.Cross(d) / vLen2
			if math.Abs(s) > math.Abs(sMax) {
				sMax = s
			}
		}

		area := vLen2 * (tMax - tMin) * math.Abs(sMax)
		if area < bestArea {
			bestArea = area
			base1 := pk.Add(v.Scale(tMin))
			base2 := pk.Add(v.Scale(tMax))
			// Perpendicular offset to the far side, counter-clockwise from v.
			off := geometry.Point{X: -v.Y, Y: v.X}.Scale(sMax)
			best = geometry.NewRectangle(base1, base2, base1.Add(off), base2.Add(off))
		}
	}

	if math.IsInf(bestArea, 1) {
		// All hull edges degenerate; collapse to the 2-point case.
		return geometry.NewRectangle(hull[0], hull[1], hull[0], hull[1]), nil
	}
	return best, nil
}
