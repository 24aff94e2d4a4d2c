package layout

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/tsawler/pdflayout/cluster"
	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/metric"
	"github.com/tsawler/pdflayout/model"
)

// Word is a run of letters grouped by glyph proximity.
type Word struct {
	Letters []model.Letter
	Bounds  geometry.Rectangle
	Text    string
}

// WordConfig controls letter-into-word grouping.
type WordConfig struct {
	// MaxGapScale bounds the horizontal gap between two letters of one
	// word, as a multiple of the wider glyph.
	MaxGapScale float64

	// Workers is the parallelism degree for nearest-neighbour edge
	// construction: 0 uses GOMAXPROCS, negative runs unbounded.
	Workers int
}

// DefaultWordConfig returns default word grouping configuration.
func DefaultWordConfig() WordConfig {
	return WordConfig{
		MaxGapScale: 0.6,
		Workers:     0,
	}
}

// Words groups letters into words. Each letter looks rightward from the
// middle of its glyph's right edge to the nearest left edge of another
// glyph; letters link when the gap stays below MaxGapScale times the wider
// glyph and the two glyphs overlap vertically.
func Words(ctx context.Context, letters []model.Letter, cfg WordConfig) []Word {
	groups := cluster.NearestNeighbours(ctx, letters, cluster.Config[model.Letter]{
		Distance: metric.Euclidean,
		MaxDistance: func(a, b model.Letter) float64 {
			wider := math.Max(a.GlyphRectangle.Width(), b.GlyphRectangle.Width())
			if wider == 0 {
				wider = math.Max(a.GlyphRectangle.Height(), b.GlyphRectangle.Height())
			}
			return cfg.MaxGapScale * wider
		},
		PivotPoint: func(l model.Letter) geometry.Point {
			r := l.GlyphRectangle.Normalise()
			return geometry.Point{X: r.Right(), Y: (r.Bottom() + r.Top()) / 2}
		},
		CandidatePoint: func(l model.Letter) geometry.Point {
			r := l.GlyphRectangle.Normalise()
			return geometry.Point{X: r.Left(), Y: (r.Bottom() + r.Top()) / 2}
		},
		FilterFinal: overlapsVertically,
		Workers:     cfg.Workers,
	})

	words := make([]Word, 0, len(groups))
	for _, g := range groups {
		words = append(words, newWord(g))
	}
	sortByReadingOrder(words)
	return words
}

func overlapsVertically(a, b model.Letter) bool {
	ra := a.GlyphRectangle.Normalise()
	rb := b.GlyphRectangle.Normalise()
	return ra.Bottom() <= rb.Top() && rb.Bottom() <= ra.Top()
}

func newWord(letters []model.Letter) Word {
	sort.SliceStable(letters, func(i, j int) bool {
		return letters[i].GlyphRectangle.Left() < letters[j].GlyphRectangle.Left()
	})

	var sb strings.Builder
	for _, l := range letters {
		sb.WriteString(l.Value)
	}
	return Word{
		Letters: letters,
		Bounds:  boundsOf(letters, func(l model.Letter) geometry.Rectangle { return l.GlyphRectangle }),
		Text:    sb.String(),
	}
}

// boundsOf returns the axis-aligned union of the element bounds.
func boundsOf[T any](elements []T, bounds func(T) geometry.Rectangle) geometry.Rectangle {
	first := bounds(elements[0]).Normalise()
	left, right := first.Left(), first.Right()
	bottom, top := first.Bottom(), first.Top()
	for _, el := range elements[1:] {
		r := bounds(el).Normalise()
		left = math.Min(left, r.Left())
		right = math.Max(right, r.Right())
		bottom = math.Min(bottom, r.Bottom())
		top = math.Max(top, r.Top())
	}
	return geometry.NewAxisAlignedRectangle(left, bottom, right, top)
}

// sortByReadingOrder orders words top-to-bottom, then left-to-right.
func sortByReadingOrder(words []Word) {
	sort.SliceStable(words, func(i, j int) bool {
		if words[i].Bounds.Top() != words[j].Bounds.Top() {
			return words[i].Bounds.Top() > words[j].Bounds.Top()
		}
		return words[i].Bounds.Left() < words[j].Bounds.Left()
	})
}
