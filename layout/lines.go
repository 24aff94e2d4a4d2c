package layout

import (
	"context"
	"sort"
	"strings"

	"github.com/tsawler/pdflayout/cluster"
	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/metric"
)

// Line is a horizontal run of words sharing a baseline region.
type Line struct {
	Words  []Word
	Bounds geometry.Rectangle
	Text   string
}

// LineConfig controls word-into-line grouping.
type LineConfig struct {
	// MaxGapScale bounds the horizontal gap between neighbouring words on
	// one line, as a multiple of the taller word.
	MaxGapScale float64

	// VerticalWeight stretches the vertical axis of the distance measure,
	// so that a word one glyph-height above costs far more than one a
	// glyph-height to the right.
	VerticalWeight float64

	// Workers is the parallelism degree for nearest-neighbour edge
	// construction.
	Workers int
}

// DefaultLineConfig returns default line grouping configuration.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		MaxGapScale:    2.0,
		VerticalWeight: 5.0,
		Workers:        0,
	}
}

// Lines groups words into lines. Words link rightward like letters do in
// Words, but under a vertically-weighted distance so that near-baseline
// neighbours win over closer words on other lines.
func Lines(ctx context.Context, words []Word, cfg LineConfig) []Line {
	distance := func(a, b geometry.Point) float64 {
		return metric.WeightedEuclidean(a, b, 1, cfg.VerticalWeight)
	}

	groups := cluster.NearestNeighbours(ctx, words, cluster.Config[Word]{
		Distance: distance,
		MaxDistance: func(a, b Word) float64 {
			taller := a.Bounds.Height()
			if b.Bounds.Height() > taller {
				taller = b.Bounds.Height()
			}
			return cfg.MaxGapScale * taller
		},
		PivotPoint: func(w Word) geometry.Point {
			return geometry.Point{X: w.Bounds.Right(), Y: (w.Bounds.Bottom() + w.Bounds.Top()) / 2}
		},
		CandidatePoint: func(w Word) geometry.Point {
			return geometry.Point{X: w.Bounds.Left(), Y: (w.Bounds.Bottom() + w.Bounds.Top()) / 2}
		},
		FilterFinal: func(a, b Word) bool {
			return a.Bounds.Bottom() <= b.Bounds.Top() && b.Bounds.Bottom() <= a.Bounds.Top()
		},
		Workers: cfg.Workers,
	})

	lines := make([]Line, 0, len(groups))
	for _, g := range groups {
		lines = append(lines, newLine(g))
	}
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Bounds.Top() != lines[j].Bounds.Top() {
			return lines[i].Bounds.Top() > lines[j].Bounds.Top()
		}
		return lines[i].Bounds.Left() < lines[j].Bounds.Left()
	})
	return lines
}

func newLine(words []Word) Line {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Bounds.Left() < words[j].Bounds.Left()
	})

	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return Line{
		Words:  words,
		Bounds: boundsOf(words, func(w Word) geometry.Rectangle { return w.Bounds }),
		Text:   strings.Join(texts, " "),
	}
}
