package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/pdflayout/cluster"
	"github.com/tsawler/pdflayout/geometry"
)

// Block is a group of lines forming one visual region of the page.
type Block struct {
	Lines  []Line
	Bounds geometry.Rectangle
	Text   string
}

// BlockConfig controls line-into-block grouping.
type BlockConfig struct {
	// LineSpacingScale pads each line's bounds above and below by this
	// multiple of the line's own height; two lines share a block when
	// their padded bounds touch.
	LineSpacingScale float64
}

// DefaultBlockConfig returns default block grouping configuration.
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		LineSpacingScale: 1.0,
	}
}

// Blocks groups lines into blocks by coalescing their bounds: each line's
// rectangle is padded vertically by LineSpacingScale times its height, and
// lines whose padded rectangles touch merge transitively into one block.
func Blocks(lines []Line, cfg BlockConfig) []Block {
	groups := cluster.IntersectAxisAligned(lines, func(l Line) geometry.Rectangle {
		pad := cfg.LineSpacingScale * l.Bounds.Height()
		return geometry.NewAxisAlignedRectangle(
			l.Bounds.Left(), l.Bounds.Bottom()-pad,
			l.Bounds.Right(), l.Bounds.Top()+pad,
		)
	}, 0)

	blocks := make([]Block, 0, len(groups))
	for _, g := range groups {
		blocks = append(blocks, newBlock(g))
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].Bounds.Top() != blocks[j].Bounds.Top() {
			return blocks[i].Bounds.Top() > blocks[j].Bounds.Top()
		}
		return blocks[i].Bounds.Left() < blocks[j].Bounds.Left()
	})
	return blocks
}

func newBlock(lines []Line) Block {
	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Bounds.Top() != lines[j].Bounds.Top() {
			return lines[i].Bounds.Top() > lines[j].Bounds.Top()
		}
		return lines[i].Bounds.Left() < lines[j].Bounds.Left()
	})

	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return Block{
		Lines:  lines,
		Bounds: boundsOf(lines, func(l Line) geometry.Rectangle { return l.Bounds }),
		Text:   strings.Join(texts, "\n"),
	}
}
