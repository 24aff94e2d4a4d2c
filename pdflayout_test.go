package pdflayout

import (
	"math"
	"testing"

	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/model"
)

func TestGetTableCandidates_EndToEnd(t *testing.T) {
	page := model.NewPage(geometry.NewAxisAlignedRectangle(0, 0, 612, 792))
	line := func(x1, y1, x2, y2 float64) {
		p := geometry.NewPath()
		p.MoveTo(x1, y1)
		p.LineTo(x2, y2)
		page.ExperimentalAccess.Paths = append(page.ExperimentalAccess.Paths, model.NewPdfPath(p))
	}
	// A 2x2 grid near the top of the page.
	for _, y := range []float64{700, 720, 740} {
		line(100, y, 300, y)
	}
	for _, x := range []float64{100, 200, 300} {
		line(x, 700, x, 740)
	}

	candidates, warnings, err := GetTableCandidates(page)
	if err != nil {
		t.Fatalf("GetTableCandidates() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	if len(candidates) != 1 {
		t.Fatalf("GetTableCandidates() returned %d candidates, want 1", len(candidates))
	}
	if len(candidates[0]) != 4 {
		t.Errorf("candidate has %d cells, want 4", len(candidates[0]))
	}
}

func TestFacade_HullAndMBR(t *testing.T) {
	points := []geometry.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}, {X: 2, Y: 1},
	}

	hullPoints := Must(GrahamScan(points))
	if len(hullPoints) != 4 {
		t.Errorf("GrahamScan() returned %d points, want 4", len(hullPoints))
	}

	mbr := Must(MinimumAreaRectangle(points))
	if math.Abs(mbr.Area()-12) > 1e-9 {
		t.Errorf("MBR area = %v, want 12", mbr.Area())
	}

	obb := Must(OrientedBoundingBox(points))
	for _, p := range points {
		if !obb.ContainsPoint(p, true) {
			t.Errorf("OBB does not contain %v", p)
		}
	}
}

func TestFacade_Clip(t *testing.T) {
	clipping := geometry.NewPath()
	clipping.Rectangle(0, 0, 10, 10)
	clipping.IsClipping = true

	subject := geometry.NewPath()
	subject.Rectangle(5, 5, 10, 10)

	clipped, err := Clip(clipping, subject)
	if err != nil {
		t.Fatalf("Clip() error = %v", err)
	}
	if len(clipped) != 1 {
		t.Fatalf("Clip() returned %d paths, want 1", len(clipped))
	}
}
