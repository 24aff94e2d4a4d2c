package tables

import (
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/pdflayout/cluster"
	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/model"
)

// Ruling is a strictly vertical or horizontal line segment extracted from
// a page's drawn paths, a candidate table border.
type Ruling struct {
	Segment  geometry.LineSegment
	Vertical bool
}

// Axis returns the ruling's fixed coordinate: X for a vertical ruling, Y
// for a horizontal one.
func (r Ruling) Axis() float64 {
	if r.Vertical {
		return r.Segment.P1.X
	}
	return r.Segment.P1.Y
}

// span returns the ruling's varying coordinate range, low to high.
func (r Ruling) span() (lo, hi float64) {
	if r.Vertical {
		lo, hi = r.Segment.P1.Y, r.Segment.P2.Y
	} else {
		lo, hi = r.Segment.P1.X, r.Segment.P2.X
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// modeGlyphSize returns the most frequent letter width and height on the
// page, skipping whitespace letters. Sizes are bucketed to a tenth of a
// point before counting.
func modeGlyphSize(letters []model.Letter) (width, height float64) {
	widthCounts := make(map[float64]int)
	heightCounts := make(map[float64]int)
	for _, l := range letters {
		if strings.TrimSpace(l.Value) == "" {
			continue
		}
		widthCounts[bucket(l.GlyphRectangle.Width())]++
		heightCounts[bucket(l.GlyphRectangle.Height())]++
	}
	return modeOf(widthCounts), modeOf(heightCounts)
}

func bucket(v float64) float64 {
	return math.Round(v*10) / 10
}

func modeOf(counts map[float64]int) float64 {
	best, bestCount := 0.0, 0
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best, bestCount = v, n
		}
	}
	return best
}

// extractRulings pulls ruling candidates out of a page's drawn paths:
// strictly vertical/horizontal line commands, plus the centerlines of
// filled bars thinner than thinBarScale times the mode glyph size.
// Clipping paths and paths containing Bézier curves are skipped. Each
// ruling is extended by extension at both ends and exact duplicates are
// dropped.
func extractRulings(page *model.Page, cfg Config) []Ruling {
	modeW, modeH := modeGlyphSize(page.Letters)

	var rulings []Ruling
	for _, path := range page.ExperimentalAccess.Paths {
		if path.Path == nil || path.IsClipping || path.ContainsBezier() {
			continue
		}

		if path.IsDrawnAsRectangle() {
			if bounds, ok := path.GetBoundingRectangle(); ok {
				if centers := thinBarCenterlines(bounds, modeW, modeH, cfg.ThinBarScale); centers != nil {
					rulings = append(rulings, centers...)
				} else {
					// A full-size rectangle contributes its four borders;
					// walking the commands instead would lose the closing
					// edge, which is a Close, not a Line.
					rulings = append(rulings, rectangleBorders(bounds)...)
				}
				continue
			}
		}

		for _, cmd := range path.Commands {
			if cmd.Kind != geometry.CommandLine {
				continue
			}
			if r, ok := asRuling(geometry.NewLineSegment(cmd.From, cmd.To)); ok {
				rulings = append(rulings, r)
			}
		}
	}

	extended := make([]Ruling, 0, len(rulings))
	seen := make(map[Ruling]struct{}, len(rulings))
	for _, r := range rulings {
		r.Segment = r.Segment.Extend(cfg.ExtensionLength)
		r = snap(r)
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		extended = append(extended, r)
	}
	return extended
}

// thinBarCenterlines reduces a thin filled rectangle to its centerline(s):
// a short rectangle yields its horizontal centerline, a narrow one its
// vertical centerline. Returns nil when the rectangle is thick both ways.
func thinBarCenterlines(bounds geometry.Rectangle, modeW, modeH, scale float64) []Ruling {
	var out []Ruling
	if modeH > 0 && bounds.Height() < scale*modeH {
		y := (bounds.Bottom() + bounds.Top()) / 2
		out = append(out, Ruling{
			Segment: geometry.NewLineSegment(geometry.Point{X: bounds.Left(), Y: y}, geometry.Point{X: bounds.Right(), Y: y}),
		})
	}
	if modeW > 0 && bounds.Width() < scale*modeW {
		x := (bounds.Left() + bounds.Right()) / 2
		out = append(out, Ruling{
			Segment:  geometry.NewLineSegment(geometry.Point{X: x, Y: bounds.Bottom()}, geometry.Point{X: x, Y: bounds.Top()}),
			Vertical: true,
		})
	}
	return out
}

// rectangleBorders returns the four border rulings of an axis-aligned
// rectangle.
func rectangleBorders(bounds geometry.Rectangle) []Ruling {
	b := bounds.Normalise()
	return []Ruling{
		{Segment: geometry.NewLineSegment(b.BottomLeft, b.BottomRight)},
		{Segment: geometry.NewLineSegment(b.TopLeft, b.TopRight)},
		{Segment: geometry.NewLineSegment(b.BottomLeft, b.TopLeft), Vertical: true},
		{Segment: geometry.NewLineSegment(b.BottomRight, b.TopRight), Vertical: true},
	}
}

// asRuling classifies a segment as a ruling if it is strictly vertical or
// horizontal and not a point.
func asRuling(seg geometry.LineSegment) (Ruling, bool) {
	switch {
	case seg.Length() < geometry.Epsilon:
		return Ruling{}, false
	case seg.IsVertical():
		return Ruling{Segment: seg, Vertical: true}, true
	case seg.IsHorizontal():
		return Ruling{Segment: seg}, true
	}
	return Ruling{}, false
}

// snap forces a ruling's fixed coordinate to be exactly shared by both
// endpoints, so that later intersection points compare exactly.
func snap(r Ruling) Ruling {
	if r.Vertical {
		x := (r.Segment.P1.X + r.Segment.P2.X) / 2
		r.Segment.P1.X = x
		r.Segment.P2.X = x
	} else {
		y := (r.Segment.P1.Y + r.Segment.P2.Y) / 2
		r.Segment.P1.Y = y
		r.Segment.P2.Y = y
	}
	return r
}

// mergeRulings collapses collinear rulings that overlap or touch into the
// segment spanning their union. Mergeable neighbours are linked in an edge
// array and grouped by connected components; each group collapses to one
// segment via the min/max of the varying coordinate.
func mergeRulings(rulings []Ruling, tolerance float64) []Ruling {
	edges := make([]int, len(rulings))
	for i := range edges {
		edges[i] = -1
		for j := range rulings {
			if j != i && mergeable(rulings[i], rulings[j], tolerance) {
				edges[i] = j
				break
			}
		}
	}

	var merged []Ruling
	for _, group := range cluster.GroupByEdges(edges) {
		m := collapse(rulings, group)
		for _, idx := range group {
			if m.Segment.Length() < rulings[idx].Segment.Length()-geometry.Epsilon {
				invariant(false, "mergeRulings: merged segment %v shorter than input %v", m.Segment, rulings[idx].Segment)
			}
		}
		merged = append(merged, m)
	}
	return merged
}

func mergeable(a, b Ruling, tolerance float64) bool {
	if a.Vertical != b.Vertical {
		return false
	}
	if math.Abs(a.Axis()-b.Axis()) > tolerance {
		return false
	}
	aLo, aHi := a.span()
	bLo, bHi := b.span()
	return aLo <= bHi && bLo <= aHi
}

func collapse(rulings []Ruling, group []int) Ruling {
	first := rulings[group[0]]
	lo, hi := first.span()
	axisSum := first.Axis()
	for _, idx := range group[1:] {
		gLo, gHi := rulings[idx].span()
		lo = math.Min(lo, gLo)
		hi = math.Max(hi, gHi)
		axisSum += rulings[idx].Axis()
	}
	axis := axisSum / float64(len(group))

	if first.Vertical {
		return Ruling{
			Segment:  geometry.NewLineSegment(geometry.Point{X: axis, Y: lo}, geometry.Point{X: axis, Y: hi}),
			Vertical: true,
		}
	}
	return Ruling{
		Segment: geometry.NewLineSegment(geometry.Point{X: lo, Y: axis}, geometry.Point{X: hi, Y: axis}),
	}
}

// invariant panics when cond is false. It guards conditions that are
// structurally impossible on already-validated geometry; tripping one is a
// bug, not bad input.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
