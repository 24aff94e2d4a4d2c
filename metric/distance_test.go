package metric

import (
	"math"
	"testing"

	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/model"
)

func TestEuclidean(t *testing.T) {
	d := Euclidean(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 3, Y: 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Euclidean() = %v, want 5", d)
	}
}

func TestManhattan(t *testing.T) {
	d := Manhattan(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 3, Y: 4})
	if d != 7 {
		t.Errorf("Manhattan() = %v, want 7", d)
	}
}

func TestColorEuclideanIdentical(t *testing.T) {
	c := model.RGBColor{R: 0.2, G: 0.4, B: 0.6}
	if d := ColorEuclidean(c, c); d != 0 {
		t.Errorf("ColorEuclidean(c,c) = %v, want 0", d)
	}
}

func TestColorCIEDE2000Identical(t *testing.T) {
	c := model.RGBColor{R: 0.2, G: 0.4, B: 0.6}
	if d := ColorCIEDE2000(c, c); math.Abs(d) > 1e-6 {
		t.Errorf("ColorCIEDE2000(c,c) = %v, want ~0", d)
	}
}

func TestColorCIEDE2000BlackWhiteLarge(t *testing.T) {
	black := model.RGBColor{R: 0, G: 0, B: 0}
	white := model.RGBColor{R: 1, G: 1, B: 1}
	if d := ColorCIEDE2000(black, white); d < 50 {
		t.Errorf("ColorCIEDE2000(black,white) = %v, want a large difference", d)
	}
}

func TestFindIndexNearest(t *testing.T) {
	pts := []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 0}}
	got := FindIndexNearest(pts, 0, Euclidean)
	if got != 1 {
		t.Errorf("FindIndexNearest() = %d, want 1", got)
	}
}

func TestFindIndexNearestSingleElement(t *testing.T) {
	pts := []geometry.Point{{X: 0, Y: 0}}
	if got := FindIndexNearest(pts, 0, Euclidean); got != -1 {
		t.Errorf("FindIndexNearest() = %d, want -1", got)
	}
}
