package hull

import (
	"errors"
	"math"
	"testing"

	"github.com/tsawler/pdflayout/geometry"
)

func pt(x, y float64) geometry.Point {
	return geometry.Point{X: x, Y: y}
}

func TestGrahamScan_Square(t *testing.T) {
	points := []geometry.Point{pt(0, 0), pt(4, 0), pt(4, 3), pt(0, 3), pt(2, 1)}

	hull, err := GrahamScan(points)
	if err != nil {
		t.Fatalf("GrahamScan() error = %v", err)
	}

	want := map[geometry.Point]bool{
		pt(0, 0): true, pt(4, 0): true, pt(4, 3): true, pt(0, 3): true,
	}
	if len(hull) != len(want) {
		t.Fatalf("GrahamScan() returned %d points, want %d: %v", len(hull), len(want), hull)
	}
	for _, p := range hull {
		if !want[p] {
			t.Errorf("GrahamScan() contains unexpected point %v", p)
		}
	}
}

func TestGrahamScan_PermutationInvariant(t *testing.T) {
	a := []geometry.Point{pt(0, 0), pt(4, 0), pt(4, 3), pt(0, 3), pt(2, 1), pt(1, 2)}
	b := []geometry.Point{pt(1, 2), pt(4, 3), pt(2, 1), pt(0, 3), pt(0, 0), pt(4, 0)}

	hullA, err := GrahamScan(a)
	if err != nil {
		t.Fatalf("GrahamScan(a) error = %v", err)
	}
	hullB, err := GrahamScan(b)
	if err != nil {
		t.Fatalf("GrahamScan(b) error = %v", err)
	}

	if len(hullA) != len(hullB) {
		t.Fatalf("hull sizes differ: %d vs %d", len(hullA), len(hullB))
	}
	setB := make(map[geometry.Point]bool)
	for _, p := range hullB {
		setB[p] = true
	}
	for _, p := range hullA {
		if !setB[p] {
			t.Errorf("point %v in hull(a) but not in hull(b)", p)
		}
	}
}

func TestGrahamScan_Degenerate(t *testing.T) {
	if _, err := GrahamScan(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("GrahamScan(nil) error = %v, want ErrInvalidArgument", err)
	}

	single, err := GrahamScan([]geometry.Point{pt(1, 2)})
	if err != nil || len(single) != 1 || single[0] != pt(1, 2) {
		t.Errorf("GrahamScan(single) = %v, %v", single, err)
	}

	two, err := GrahamScan([]geometry.Point{pt(1, 2), pt(3, 4)})
	if err != nil || len(two) != 2 {
		t.Errorf("GrahamScan(two) = %v, %v", two, err)
	}
}

func TestGrahamScan_Duplicates(t *testing.T) {
	points := []geometry.Point{pt(0, 0), pt(0, 0), pt(1, 0), pt(1, 0), pt(0, 1), pt(1, 1), pt(1, 1)}

	hull, err := GrahamScan(points)
	if err != nil {
		t.Fatalf("GrahamScan() error = %v", err)
	}
	seen := make(map[geometry.Point]bool)
	for _, p := range hull {
		if seen[p] {
			t.Errorf("duplicate point %v in hull output", p)
		}
		seen[p] = true
	}
	if len(hull) != 4 {
		t.Errorf("hull has %d points, want 4: %v", len(hull), hull)
	}
}

func TestGrahamScan_IsConvex(t *testing.T) {
	points := []geometry.Point{
		pt(0, 0), pt(5, 1), pt(6, 4), pt(3, 6), pt(-1, 4),
		pt(2, 2), pt(3, 3), pt(1, 1), pt(4, 2),
	}

	hull, err := GrahamScan(points)
	if err != nil {
		t.Fatalf("GrahamScan() error = %v", err)
	}
	if len(hull) < 3 {
		t.Fatalf("hull collapsed: %v", hull)
	}
	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		c := hull[(i+2)%len(hull)]
		if !ccw(a, b, c) {
			t.Errorf("hull is not strictly convex at %v, %v, %v", a, b, c)
		}
	}
}

func TestMinimumAreaRectangle_Square(t *testing.T) {
	points := []geometry.Point{pt(0, 0), pt(4, 0), pt(4, 3), pt(0, 3), pt(2, 1)}

	mbr, err := MinimumAreaRectangle(points)
	if err != nil {
		t.Fatalf("MinimumAreaRectangle() error = %v", err)
	}
	if area := mbr.Area(); math.Abs(area-12) > 1e-9 {
		t.Errorf("Area() = %v, want 12", area)
	}
}

func TestMinimumAreaRectangle_BeatsAABB(t *testing.T) {
	// A thin diagonal strip: the AABB is near-square, the MBR is thin.
	points := []geometry.Point{pt(0, 0), pt(10, 10), pt(1, 0), pt(11, 10)}

	mbr, err := MinimumAreaRectangle(points)
	if err != nil {
		t.Fatalf("MinimumAreaRectangle() error = %v", err)
	}

	aabbArea := 11.0 * 10.0
	if mbr.Area() > aabbArea+1e-9 {
		t.Errorf("MBR area %v exceeds AABB area %v", mbr.Area(), aabbArea)
	}
}

func TestMinimumAreaRectangle_Collinear(t *testing.T) {
	points := []geometry.Point{pt(1, 1), pt(2, 2), pt(3, 3), pt(4, 4)}

	mbr, err := MinimumAreaRectangle(points)
	if err != nil {
		t.Fatalf("MinimumAreaRectangle() error = %v", err)
	}
	if width := mbr.Width(); math.Abs(width-3*math.Sqrt2) > 1e-9 {
		t.Errorf("Width() = %v, want %v", width, 3*math.Sqrt2)
	}
}

func TestOrientedBoundingBox_Line(t *testing.T) {
	points := []geometry.Point{pt(1, 1), pt(2, 2), pt(3, 3), pt(4, 4)}

	obb, err := OrientedBoundingBox(points)
	if err != nil {
		t.Fatalf("OrientedBoundingBox() error = %v", err)
	}
	if area := obb.Area(); area > 1e-9 {
		t.Errorf("Area() = %v, want 0 for collinear points", area)
	}
}

func TestOrientedBoundingBox_ContainsPoints(t *testing.T) {
	points := []geometry.Point{
		pt(0, 0), pt(4, 1), pt(8, 2), pt(1, 1.2), pt(5, 2.3), pt(7, 2.6),
	}

	obb, err := OrientedBoundingBox(points)
	if err != nil {
		t.Fatalf("OrientedBoundingBox() error = %v", err)
	}
	for _, p := range points {
		if !obb.ContainsPoint(p, true) {
			t.Errorf("OBB %v does not contain input point %v", obb, p)
		}
	}
}

func TestOrientedBoundingBox_TooFewPoints(t *testing.T) {
	if _, err := OrientedBoundingBox([]geometry.Point{pt(1, 1)}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("OrientedBoundingBox(1 point) error = %v, want ErrInvalidArgument", err)
	}
}

func TestOrientedBoundingBox_VerticalLine(t *testing.T) {
	points := []geometry.Point{pt(2, 0), pt(2, 5), pt(2, 3)}

	obb, err := OrientedBoundingBox(points)
	if err != nil {
		t.Fatalf("OrientedBoundingBox() error = %v", err)
	}
	if area := obb.Area(); area > 1e-9 {
		t.Errorf("Area() = %v, want 0 for a vertical line", area)
	}
	if h := obb.Height(); math.Abs(h-5) > 1e-6 && math.Abs(obb.Width()-5) > 1e-6 {
		t.Errorf("OBB extent = %v x %v, want one side of length 5", obb.Width(), h)
	}
}
