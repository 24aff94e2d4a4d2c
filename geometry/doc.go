// Package geometry provides the geometric primitives shared by the rest of
// the layout core: points, axis-aligned and rotated rectangles, line
// segments, affine transformation matrices, and drawn paths.
//
// Types here are immutable once constructed; callers are expected to supply
// finite coordinates — constructors do not defensively check for NaN or Inf.
package geometry
