package layout

import (
	"context"
	"testing"

	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/model"
)

// letterRow lays out the characters of s as 10x10 glyphs starting at
// (x, y), with gap points between consecutive glyphs.
func letterRow(s string, x, y, gap float64) []model.Letter {
	letters := make([]model.Letter, 0, len(s))
	for i, r := range s {
		left := x + float64(i)*(10+gap)
		letters = append(letters, model.Letter{
			Value:          string(r),
			GlyphRectangle: geometry.NewAxisAlignedRectangle(left, y, left+10, y+10),
		})
	}
	return letters
}

func TestWords_SplitsOnWideGap(t *testing.T) {
	letters := append(letterRow("cat", 0, 0, 1), letterRow("dog", 60, 0, 1)...)

	words := Words(context.Background(), letters, DefaultWordConfig())
	if len(words) != 2 {
		t.Fatalf("Words() returned %d words, want 2: %+v", len(words), words)
	}
	if words[0].Text != "cat" || words[1].Text != "dog" {
		t.Errorf("Words() = %q, %q; want \"cat\", \"dog\"", words[0].Text, words[1].Text)
	}
}

func TestWords_KeepsLinesApart(t *testing.T) {
	letters := append(letterRow("up", 0, 100, 1), letterRow("dn", 0, 0, 1)...)

	words := Words(context.Background(), letters, DefaultWordConfig())
	if len(words) != 2 {
		t.Fatalf("Words() returned %d words, want 2: %+v", len(words), words)
	}
	// Reading order: the higher word first.
	if words[0].Text != "up" || words[1].Text != "dn" {
		t.Errorf("Words() = %q, %q; want \"up\", \"dn\"", words[0].Text, words[1].Text)
	}
}

func TestWords_Empty(t *testing.T) {
	if words := Words(context.Background(), nil, DefaultWordConfig()); len(words) != 0 {
		t.Errorf("Words(nil) = %v, want none", words)
	}
}

func TestLines_JoinsWordsOnBaseline(t *testing.T) {
	letters := append(letterRow("to", 0, 0, 1), letterRow("be", 40, 0, 1)...)
	letters = append(letters, letterRow("or", 0, 50, 1)...)

	words := Words(context.Background(), letters, DefaultWordConfig())
	if len(words) != 3 {
		t.Fatalf("Words() returned %d words, want 3", len(words))
	}

	lines := Lines(context.Background(), words, DefaultLineConfig())
	if len(lines) != 2 {
		t.Fatalf("Lines() returned %d lines, want 2: %+v", len(lines), lines)
	}
	if lines[0].Text != "or" {
		t.Errorf("top line text = %q, want \"or\"", lines[0].Text)
	}
	if lines[1].Text != "to be" {
		t.Errorf("bottom line text = %q, want \"to be\"", lines[1].Text)
	}
}

func TestBlocks_SeparatesParagraphs(t *testing.T) {
	// Two tight line pairs far apart vertically.
	var letters []model.Letter
	letters = append(letters, letterRow("aa", 0, 112, 1)...)
	letters = append(letters, letterRow("bb", 0, 100, 1)...)
	letters = append(letters, letterRow("cc", 0, 12, 1)...)
	letters = append(letters, letterRow("dd", 0, 0, 1)...)

	words := Words(context.Background(), letters, DefaultWordConfig())
	lines := Lines(context.Background(), words, DefaultLineConfig())
	if len(lines) != 4 {
		t.Fatalf("Lines() returned %d lines, want 4", len(lines))
	}

	blocks := Blocks(lines, DefaultBlockConfig())
	if len(blocks) != 2 {
		t.Fatalf("Blocks() returned %d blocks, want 2: %+v", len(blocks), blocks)
	}
	if blocks[0].Text != "aa\nbb" {
		t.Errorf("top block text = %q, want \"aa\\nbb\"", blocks[0].Text)
	}
	if blocks[1].Text != "cc\ndd" {
		t.Errorf("bottom block text = %q, want \"cc\\ndd\"", blocks[1].Text)
	}
}

func TestBlocks_BoundsCoverLines(t *testing.T) {
	letters := append(letterRow("xy", 0, 12, 1), letterRow("zw", 0, 0, 1)...)
	words := Words(context.Background(), letters, DefaultWordConfig())
	lines := Lines(context.Background(), words, DefaultLineConfig())

	blocks := Blocks(lines, DefaultBlockConfig())
	if len(blocks) != 1 {
		t.Fatalf("Blocks() returned %d blocks, want 1", len(blocks))
	}
	for _, l := range blocks[0].Lines {
		if !blocks[0].Bounds.Contains(l.Bounds) {
			t.Errorf("block bounds %v do not contain line bounds %v", blocks[0].Bounds, l.Bounds)
		}
	}
}
