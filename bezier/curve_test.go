package bezier

import (
	"math"
	"testing"

	"github.com/tsawler/pdflayout/geometry"
)

func TestIntersectSegment_HorizontalChord(t *testing.T) {
	// An arch from (0,0) to (4,0) peaking near y=1.5; a horizontal chord at
	// y=1 crosses it twice.
	curve := Curve{Start: pt(0, 0), Control1: pt(1, 2), Control2: pt(3, 2), End: pt(4, 0)}
	seg := geometry.NewLineSegment(pt(-1, 1), pt(5, 1))

	points := curve.IntersectSegment(seg)
	if len(points) != 2 {
		t.Fatalf("IntersectSegment() returned %d points, want 2: %v", len(points), points)
	}
	for _, p := range points {
		if math.Abs(p.Y-1) > 1e-6 {
			t.Errorf("intersection %v not on the line y=1", p)
		}
	}
}

func TestIntersectSegment_MissesShortSegment(t *testing.T) {
	// Same arch, but the chord stops before reaching the curve: its
	// supporting line still crosses, the segment does not.
	curve := Curve{Start: pt(0, 0), Control1: pt(1, 2), Control2: pt(3, 2), End: pt(4, 0)}
	seg := geometry.NewLineSegment(pt(-3, 1), pt(-1, 1))

	if points := curve.IntersectSegment(seg); len(points) != 0 {
		t.Errorf("IntersectSegment() = %v, want none (segment too short)", points)
	}
}

func TestIntersectSegment_BoundingBoxPreFilter(t *testing.T) {
	curve := Curve{Start: pt(0, 0), Control1: pt(1, 2), Control2: pt(3, 2), End: pt(4, 0)}
	seg := geometry.NewLineSegment(pt(10, 10), pt(20, 10))

	if points := curve.IntersectSegment(seg); points != nil {
		t.Errorf("IntersectSegment() = %v, want nil for a far-away segment", points)
	}
}

func TestIntersectSegment_Endpoint(t *testing.T) {
	// A segment ending exactly at the curve's start point.
	curve := Curve{Start: pt(0, 0), Control1: pt(1, 2), Control2: pt(3, 2), End: pt(4, 0)}
	seg := geometry.NewLineSegment(pt(-2, -2), pt(2, 2))

	points := curve.IntersectSegment(seg)
	found := false
	for _, p := range points {
		if p.Equal(pt(0, 0)) {
			found = true
		}
	}
	if !found {
		t.Errorf("IntersectSegment() = %v, want to include the curve start (0,0)", points)
	}
}

func TestPointAt_Endpoints(t *testing.T) {
	curve := Curve{Start: pt(1, 1), Control1: pt(2, 5), Control2: pt(6, 5), End: pt(7, 1)}
	if p := curve.PointAt(0); !p.Equal(curve.Start) {
		t.Errorf("PointAt(0) = %v, want %v", p, curve.Start)
	}
	if p := curve.PointAt(1); !p.Equal(curve.End) {
		t.Errorf("PointAt(1) = %v, want %v", p, curve.End)
	}
}
