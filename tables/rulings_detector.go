package tables

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/model"
)

// ErrInvalidArgument is the sentinel wrapped by detector entry points that
// reject their input.
var ErrInvalidArgument = errors.New("tables: invalid argument")

// RulingsDetector recovers tables from closed rectangular grids formed by
// a page's drawn ruling lines.
type RulingsDetector struct {
	config Config
}

// NewRulingsDetector creates a ruling-based table detector with default
// configuration.
func NewRulingsDetector() *RulingsDetector {
	return &RulingsDetector{config: DefaultConfig()}
}

// Name returns the detector's identifier ("rulings").
func (d *RulingsDetector) Name() string {
	return "rulings"
}

// Configure sets the detector configuration.
func (d *RulingsDetector) Configure(config Config) error {
	d.config = config
	return nil
}

// Detect runs the ruling pipeline on a page: extract rulings, merge
// collinear ones, build the crossing map, discover rectangular cells, and
// group touching cells into candidate tables. A page without rulings
// yields no tables and a warning, not an error.
func (d *RulingsDetector) Detect(page *model.Page) ([]*model.Table, []Warning, error) {
	if page == nil {
		return nil, nil, fmt.Errorf("%w: Detect requires a page", ErrInvalidArgument)
	}

	var warnings []Warning
	warn := func(format string, args ...any) {
		warnings = append(warnings, Warning{Detector: d.Name(), Message: fmt.Sprintf(format, args...)})
	}

	rulings := extractRulings(page, d.config)
	if len(rulings) == 0 {
		warn("no rulings found on page")
		return nil, warnings, nil
	}

	merged := mergeRulings(rulings, d.config.AlignmentTolerance)

	intersections := buildIntersections(merged)
	if len(intersections) == 0 {
		warn("%d rulings produced no crossings", len(merged))
		return nil, warnings, nil
	}

	cells := findCellRectangles(intersections)
	if len(cells) == 0 {
		warn("%d ruling crossings formed no closed cell", len(intersections))
		return nil, warnings, nil
	}

	var found []*model.Table
	for _, group := range groupCells(cells, d.config.CornerDistanceThreshold) {
		if len(group) < d.config.MinCells {
			continue
		}
		found = append(found, buildTable(group, page.Letters, d.config.AlignmentTolerance))
	}
	return found, warnings, nil
}

// TableCandidates returns each candidate table on the page as the list of
// its cell rectangles, the geometric output of the detection pipeline
// without row organization or text assignment.
func TableCandidates(page *model.Page) ([][]geometry.Rectangle, []Warning, error) {
	d := NewRulingsDetector()
	found, warnings, err := d.Detect(page)
	if err != nil {
		return nil, warnings, err
	}
	candidates := make([][]geometry.Rectangle, 0, len(found))
	for _, t := range found {
		candidates = append(candidates, t.CellRectangles())
	}
	return candidates, warnings, nil
}

// buildTable organizes a group of cell rectangles into a model.Table:
// cells are bucketed into rows by their top coordinate, sorted left to
// right within a row, and filled with the text of the letters they
// contain.
func buildTable(cells []geometry.Rectangle, letters []model.Letter, tolerance float64) *model.Table {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Top() != cells[j].Top() {
			return cells[i].Top() > cells[j].Top()
		}
		return cells[i].Left() < cells[j].Left()
	})

	var rows [][]model.Cell
	var currentTop float64
	for i, c := range cells {
		cell := model.Cell{Bounds: c, Text: cellText(c, letters)}
		if i == 0 || currentTop-c.Top() > tolerance {
			rows = append(rows, []model.Cell{cell})
			currentTop = c.Top()
		} else {
			rows[len(rows)-1] = append(rows[len(rows)-1], cell)
		}
	}

	bounds := cells[0]
	for _, c := range cells[1:] {
		bounds = geometry.NewAxisAlignedRectangle(
			minf(bounds.Left(), c.Left()),
			minf(bounds.Bottom(), c.Bottom()),
			maxf(bounds.Right(), c.Right()),
			maxf(bounds.Top(), c.Top()),
		)
	}

	return &model.Table{Rows: rows, Bounds: bounds}
}

// cellText collects the letters whose glyph centroid falls inside the
// cell, top-to-bottom then left-to-right.
func cellText(cell geometry.Rectangle, letters []model.Letter) string {
	var inside []model.Letter
	for _, l := range letters {
		if cell.ContainsPoint(l.GlyphRectangle.Centroid(), true) {
			inside = append(inside, l)
		}
	}
	sort.SliceStable(inside, func(i, j int) bool {
		yi := inside[i].GlyphRectangle.Centroid().Y
		yj := inside[j].GlyphRectangle.Centroid().Y
		if yi != yj {
			return yi > yj
		}
		return inside[i].GlyphRectangle.Centroid().X < inside[j].GlyphRectangle.Centroid().X
	})

	var sb strings.Builder
	for _, l := range inside {
		sb.WriteString(l.Value)
	}
	return sb.String()
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
