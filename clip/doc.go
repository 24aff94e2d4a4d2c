// Package clip implements polygon clipping: Sutherland–Hodgman for convex
// clip regions and Greiner–Hormann for general polygons under either the
// even-odd or the non-zero-winding filling rule, plus a path-level Clip
// operation that flattens Bézier curves and dispatches whole drawn paths.
package clip
