package hull

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tsawler/pdflayout/geometry"
)

// ErrInvalidArgument is the sentinel wrapped by hull functions that reject
// their input (empty or undersized point sets).
var ErrInvalidArgument = errors.New("hull: invalid argument")

// GrahamScan returns the convex hull of points in counter-clockwise order.
//
// The scan sorts points by (y, x), takes the lowest point as pivot, groups
// the rest by polar angle around the pivot modulo pi, keeps only the point
// farthest from the pivot within each angle group, and walks the sorted
// sequence maintaining a stack that pops on any non-counter-clockwise turn.
// The modulo-pi collapse of opposite directions is safe only because the
// pivot is the minimum-y point, so no remaining point lies below it.
//
// Degenerate inputs: an empty slice is an error; one or two points are
// returned as-is (after de-duplication).
func GrahamScan(points []geometry.Point) ([]geometry.Point, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: GrahamScan requires at least one point", ErrInvalidArgument)
	}

	pts := dedupe(points)
	if len(pts) <= 2 {
		return pts, nil
	}

	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	pivot := pts[0]

	// One survivor per polar-angle group: the farthest from the pivot.
	farthest := make(map[float64]geometry.Point)
	var angles []float64
	for _, p := range pts[1:] {
		v := p.Sub(pivot)
		angle := math.Mod(math.Atan2(v.Y, v.X)+math.Pi, math.Pi)
		best, ok := farthest[angle]
		if !ok {
			farthest[angle] = p
			angles = append(angles, angle)
			continue
		}
		if v.Norm() > best.Sub(pivot).Norm() {
			farthest[angle] = p
		}
	}
	sort.Float64s(angles)

	candidates := make([]geometry.Point, 0, len(angles)+1)
	candidates = append(candidates, pivot)
	for _, a := range angles {
		candidates = append(candidates, farthest[a])
	}
	if len(candidates) <= 2 {
		return candidates, nil
	}

	stack := candidates[:2:2]
	for _, p := range candidates[2:] {
		for len(stack) >= 2 && !ccw(stack[len(stack)-2], stack[len(stack)-1], p) {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, p)
	}
	return stack, nil
}

// ccw is the strict counter-clockwise turn predicate.
func ccw(p1, p2, p3 geometry.Point) bool {
	return (p2.X-p1.X)*(p3.Y-p1.Y) > (p2.Y-p1.Y)*(p3.X-p1.X)
}

func dedupe(points []geometry.Point) []geometry.Point {
	seen := make(map[geometry.Point]struct{}, len(points))
	out := make([]geometry.Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
