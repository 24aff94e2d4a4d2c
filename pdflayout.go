// Package pdflayout is the document layout analysis core of a PDF
// content-extraction pipeline: given a page's already-decoded letters and
// drawn paths, it reconstructs geometric structure — convex hulls and
// bounding rectangles, polygon clipping, nearest-neighbour clustering of
// text into words/lines/blocks, and ruling-based table detection.
//
// Basic usage, given a model.Page from a parser:
//
//	candidates, warnings, err := pdflayout.GetTableCandidates(page)
//	if err != nil {
//	    // handle error
//	}
//	for _, cells := range candidates {
//	    // one rectangle per recovered table cell
//	}
//
// The subpackages expose the individual engines: geometry (primitives),
// metric (distances), hull, bezier, clip, kdtree, cluster, layout, and
// tables.
package pdflayout

import (
	"context"

	"github.com/tsawler/pdflayout/clip"
	"github.com/tsawler/pdflayout/cluster"
	"github.com/tsawler/pdflayout/geometry"
	"github.com/tsawler/pdflayout/hull"
	"github.com/tsawler/pdflayout/model"
	"github.com/tsawler/pdflayout/tables"
)

// GetTableCandidates recovers candidate tables from a page's ruling lines
// and returns one list of cell rectangles per candidate, along with any
// non-fatal warnings from the detection pipeline.
func GetTableCandidates(page *model.Page) ([][]geometry.Rectangle, []tables.Warning, error) {
	return tables.TableCandidates(page)
}

// Clip clips the subject path against the clipping path, returning the
// surviving regions as closed paths.
func Clip(clipping, subject *geometry.Path) ([]*geometry.Path, error) {
	return clip.Clip(clipping, subject)
}

// GrahamScan returns the convex hull of points in counter-clockwise order.
func GrahamScan(points []geometry.Point) ([]geometry.Point, error) {
	return hull.GrahamScan(points)
}

// MinimumAreaRectangle returns the smallest-area enclosing rectangle of
// points, not necessarily axis-aligned.
func MinimumAreaRectangle(points []geometry.Point) (geometry.Rectangle, error) {
	return hull.MinimumAreaRectangle(points)
}

// OrientedBoundingBox returns a bounding rectangle aligned with the
// dominant direction of points.
func OrientedBoundingBox(points []geometry.Point) (geometry.Rectangle, error) {
	return hull.OrientedBoundingBox(points)
}

// NearestNeighbours clusters elements by nearest-neighbour linking and
// returns the connected groups.
func NearestNeighbours[T any](ctx context.Context, elements []T, cfg cluster.Config[T]) [][]T {
	return cluster.NearestNeighbours(ctx, elements, cfg)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	hull := pdflayout.Must(pdflayout.GrahamScan(points))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
