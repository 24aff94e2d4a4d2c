// Package layout groups a page's letters into words, lines, and blocks by
// geometric proximity alone: letters cluster into words by glyph gaps,
// words into lines by baseline proximity, and lines into blocks by
// coalescing their bounds. No semantic classification is attempted.
package layout
