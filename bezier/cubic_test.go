package bezier

import (
	"math"
	"sort"
	"testing"

	"github.com/tsawler/pdflayout/geometry"
)

func pt(x, y float64) geometry.Point {
	return geometry.Point{X: x, Y: y}
}

func TestSolveCubic_ThreeRoots(t *testing.T) {
	// x³ - 6x² + 11x - 6 = (x-1)(x-2)(x-3)
	roots := SolveCubic(1, -6, 11, -6)
	if len(roots) != 3 {
		t.Fatalf("SolveCubic() returned %d roots, want 3: %v", len(roots), roots)
	}
	sort.Float64s(roots)
	want := []float64{1, 2, 3}
	for i, r := range roots {
		if math.Abs(r-want[i]) > 1e-9 {
			t.Errorf("root[%d] = %v, want %v", i, r, want[i])
		}
	}
}

func TestSolveCubic_OneRealRoot(t *testing.T) {
	// x³ + x + 1 has a single real root near -0.6823.
	roots := SolveCubic(1, 0, 1, 1)
	if len(roots) != 1 {
		t.Fatalf("SolveCubic() returned %d roots, want 1: %v", len(roots), roots)
	}
	if math.Abs(roots[0]+0.6823278038280193) > 1e-9 {
		t.Errorf("root = %v, want ~-0.6823", roots[0])
	}
}

func TestSolveCubic_DoubleRoot(t *testing.T) {
	// (x-1)²(x+2) = x³ - 3x + 2
	roots := SolveCubic(1, 0, -3, 2)
	sort.Float64s(roots)
	if len(roots) < 2 {
		t.Fatalf("SolveCubic() returned %d roots, want at least 2: %v", len(roots), roots)
	}
	if math.Abs(roots[0]+2) > 1e-6 {
		t.Errorf("smallest root = %v, want -2", roots[0])
	}
	if math.Abs(roots[len(roots)-1]-1) > 1e-6 {
		t.Errorf("largest root = %v, want 1", roots[len(roots)-1])
	}
}

func TestSolveCubic_QuadraticFallback(t *testing.T) {
	// a = 0: x² - 5x + 6 = (x-2)(x-3)
	roots := SolveCubic(0, 1, -5, 6)
	sort.Float64s(roots)
	if len(roots) != 2 {
		t.Fatalf("SolveCubic() returned %d roots, want 2: %v", len(roots), roots)
	}
	if math.Abs(roots[0]-2) > 1e-9 || math.Abs(roots[1]-3) > 1e-9 {
		t.Errorf("roots = %v, want [2 3]", roots)
	}
}

func TestSolveCubic_QuadraticNoRealRoots(t *testing.T) {
	// x² + 1 = 0
	if roots := SolveCubic(0, 1, 0, 1); len(roots) != 0 {
		t.Errorf("SolveCubic() = %v, want no roots", roots)
	}
}

func TestSolveCubic_LinearFallback(t *testing.T) {
	// 2x + 8 = 0
	roots := SolveCubic(0, 0, 2, 8)
	if len(roots) != 1 || math.Abs(roots[0]+4) > 1e-9 {
		t.Errorf("SolveCubic() = %v, want [-4]", roots)
	}
}

func TestSolveCubic_ResidualBound(t *testing.T) {
	cases := [][4]float64{
		{1, -6, 11, -6},
		{2, 3, -11, -6},
		{1, 0, 1, 1},
		{-3, 7, 2, -9},
		{0.5, -4.25, 1.125, 8},
		{10, -1, -1, 0.01},
	}
	for _, cs := range cases {
		a, b, c, d := cs[0], cs[1], cs[2], cs[3]
		norm := math.Abs(a) + math.Abs(b) + math.Abs(c) + math.Abs(d)
		for _, r := range SolveCubic(a, b, c, d) {
			residual := math.Abs(a*r*r*r + b*r*r + c*r + d)
			if residual > 1e-6*norm {
				t.Errorf("SolveCubic(%v, %v, %v, %v): root %v has residual %v", a, b, c, d, r, residual)
			}
		}
	}
}

func TestCurveSplit_Reconstructs(t *testing.T) {
	curve := Curve{
		Start:    pt(0, 0),
		Control1: pt(1, 3),
		Control2: pt(4, 3),
		End:      pt(5, 0),
	}

	for _, tau := range []float64{0.25, 0.5, 0.75} {
		left, right := curve.Split(tau)

		for _, sample := range []float64{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1} {
			want := curve.PointAt(sample)
			var got geometry.Point
			if sample <= tau {
				got = left.PointAt(sample / tau)
			} else {
				got = right.PointAt((sample - tau) / (1 - tau))
			}
			if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
				t.Errorf("tau=%v sample=%v: split curves give %v, want %v", tau, sample, got, want)
			}
		}
	}
}

func TestCurveSplit_SharedPoint(t *testing.T) {
	curve := Curve{Start: pt(0, 0), Control1: pt(2, 4), Control2: pt(6, 4), End: pt(8, 0)}
	left, right := curve.Split(0.5)
	if !left.End.Equal(right.Start) {
		t.Errorf("left.End = %v, right.Start = %v, want equal", left.End, right.Start)
	}
	if !left.Start.Equal(curve.Start) || !right.End.Equal(curve.End) {
		t.Errorf("split does not preserve curve endpoints")
	}
}
