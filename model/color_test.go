package model

import "testing"

func TestRGBColorToLabValuesWhite(t *testing.T) {
	white := RGBColor{R: 1, G: 1, B: 1}
	l, a, b := white.ToLabValues()

	if l < 99 || l > 101 {
		t.Errorf("L for white = %v, want ~100", l)
	}
	if a < -1 || a > 1 || b < -1 || b > 1 {
		t.Errorf("a,b for white = (%v,%v), want ~(0,0)", a, b)
	}
}

func TestRGBColorToRGBValues(t *testing.T) {
	c := RGBColor{R: 0.5, G: 0.25, B: 0.75}
	r, g, b := c.ToRGBValues()
	if r != 0.5 || g != 0.25 || b != 0.75 {
		t.Errorf("ToRGBValues() = (%v,%v,%v), want (0.5,0.25,0.75)", r, g, b)
	}
}
