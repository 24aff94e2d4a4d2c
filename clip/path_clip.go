package clip

import (
	"errors"
	"fmt"

	"github.com/tsawler/pdflayout/bezier"
	"github.com/tsawler/pdflayout/geometry"
)

// ErrInvalidArgument is the sentinel wrapped by Clip when its path
// arguments are missing, empty, or mis-flagged.
var ErrInvalidArgument = errors.New("clip: invalid argument")

// bezierFlattenSteps is the number of line segments a cubic Bézier command
// is flattened into before clipping.
const bezierFlattenSteps = 16

// Clip clips the subject path against the clipping path and returns the
// surviving regions, one path per output ring.
//
// The clipping path must carry its IsClipping flag; its filling rule picks
// the insideness test. Bézier commands in either path are flattened into
// polylines first. Open subject subpaths are auto-closed by a fake edge:
// synthetic intersections on that edge steer the traversal but are never
// emitted, so the output follows the drawn polyline. Subpaths that flatten
// to fewer than three distinct points clip to nothing.
func Clip(clipping, subject *geometry.Path) ([]*geometry.Path, error) {
	if clipping == nil || subject == nil {
		return nil, fmt.Errorf("%w: Clip requires both a clipping and a subject path", ErrInvalidArgument)
	}
	if !clipping.IsClipping {
		return nil, fmt.Errorf("%w: Clip clipping path does not have its clipping flag set", ErrInvalidArgument)
	}

	clipRings := flattenRings(clipping)
	if len(clipRings) == 0 {
		return nil, fmt.Errorf("%w: Clip clipping path has no drawable subpath", ErrInvalidArgument)
	}
	// The first subpath is the clip boundary; clipping paths with holes are
	// resolved by the filling rule during insideness tests, not by ring
	// bookkeeping.
	clipRing := clipRings[0]
	clipRing.closed = true

	rule := clipping.FillingRule

	var out []*geometry.Path
	for _, subjRing := range flattenRings(subject) {
		if len(subjRing.pts) < 3 {
			continue
		}
		for _, resultRing := range greinerHormann(clipRing, subjRing, rule) {
			p := subject.CloneEmpty()
			p.MoveTo(resultRing[0].X, resultRing[0].Y)
			for _, pt := range resultRing[1:] {
				p.LineTo(pt.X, pt.Y)
			}
			p.ClosePath()
			out = append(out, p)
		}
	}
	return out, nil
}

// flattenRings converts a path's subpaths into point rings, sampling each
// Bézier command into bezierFlattenSteps straight segments.
func flattenRings(path *geometry.Path) []ring {
	var rings []ring
	var current []geometry.Point
	closed := false

	flush := func() {
		// Drop a duplicated closing point so rings never self-repeat.
		if len(current) > 1 && current[0].Equal(current[len(current)-1]) {
			current = current[:len(current)-1]
			closed = true
		}
		if len(current) > 0 {
			rings = append(rings, ring{pts: current, closed: closed})
		}
		current = nil
		closed = false
	}

	appendPoint := func(p geometry.Point) {
		if len(current) > 0 && current[len(current)-1].Equal(p) {
			return
		}
		current = append(current, p)
	}

	for _, cmd := range path.Commands {
		switch cmd.Kind {
		case geometry.CommandMove:
			flush()
			appendPoint(cmd.Point)
		case geometry.CommandLine:
			if len(current) == 0 {
				appendPoint(cmd.From)
			}
			appendPoint(cmd.To)
		case geometry.CommandBezier:
			if len(current) == 0 {
				appendPoint(cmd.Start)
			}
			curve := bezier.Curve{Start: cmd.Start, Control1: cmd.Control1, Control2: cmd.Control2, End: cmd.End}
			for s := 1; s <= bezierFlattenSteps; s++ {
				appendPoint(curve.PointAt(float64(s) / bezierFlattenSteps))
			}
		case geometry.CommandClose:
			closed = true
			flush()
		}
	}
	flush()
	return rings
}
