package geometry

import "math"

// FillingRule selects how a filled path resolves self-overlap.
type FillingRule int

const (
	// EvenOdd fills regions crossed an odd number of times by a ray from
	// the query point.
	EvenOdd FillingRule = iota
	// NonZeroWinding fills regions whose signed winding number is nonzero.
	NonZeroWinding
)

// CommandKind identifies the tagged variant of a PathCommand.
type CommandKind int

const (
	// CommandMove starts a new subpath at a point.
	CommandMove CommandKind = iota
	// CommandLine draws a straight segment between two points.
	CommandLine
	// CommandBezier draws a cubic Bézier curve.
	CommandBezier
	// CommandClose closes the current subpath back to its start.
	CommandClose
)

// PathCommand is one element of a Path's command sequence. Only the fields
// relevant to Kind are populated:
//
//   - CommandMove: Point
//   - CommandLine: From, To
//   - CommandBezier: Start, Control1, Control2, End
//   - CommandClose: (none)
type PathCommand struct {
	Kind CommandKind

	Point Point // CommandMove

	From, To Point // CommandLine

	Start, Control1, Control2, End Point // CommandBezier
}

// Move returns a CommandMove command.
func Move(p Point) PathCommand { return PathCommand{Kind: CommandMove, Point: p} }

// Line returns a CommandLine command.
func Line(from, to Point) PathCommand { return PathCommand{Kind: CommandLine, From: from, To: to} }

// Bezier returns a CommandBezier command.
func Bezier(start, c1, c2, end Point) PathCommand {
	return PathCommand{Kind: CommandBezier, Start: start, Control1: c1, Control2: c2, End: end}
}

// Close returns a CommandClose command.
func Close() PathCommand { return PathCommand{Kind: CommandClose} }

// Path is an ordered, immutable-once-built sequence of draw commands,
// assembled through the MoveTo/LineTo/CurveTo/ClosePath operators a
// content-stream interpreter would call.
type Path struct {
	Commands []PathCommand

	IsClipping  bool
	IsFilled    bool
	FillingRule FillingRule

	current      Point
	subpathStart Point
	hasCurrent   bool

	// isRectangleMemo caches IsDrawnAsRectangle, which is derivable
	// structurally from the command list.
	isRectangleMemo    bool
	isRectangleMemoSet bool
}

// NewPath returns an empty Path.
func NewPath() *Path {
	return &Path{Commands: make([]PathCommand, 0, 4)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Point{X: x, Y: y}
	p.Commands = append(p.Commands, Move(pt))
	p.current = pt
	p.subpathStart = pt
	p.hasCurrent = true
	p.invalidateMemo()
}

// LineTo appends a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	if !p.hasCurrent {
		p.MoveTo(x, y)
		return
	}
	pt := Point{X: x, Y: y}
	p.Commands = append(p.Commands, Line(p.current, pt))
	p.current = pt
	p.invalidateMemo()
}

// CurveTo appends a cubic Bézier curve from the current point through the
// two control points to (x3, y3).
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !p.hasCurrent {
		p.MoveTo(x1, y1)
	}
	end := Point{X: x3, Y: y3}
	p.Commands = append(p.Commands, Bezier(p.current, Point{X: x1, Y: y1}, Point{X: x2, Y: y2}, end))
	p.current = end
	p.invalidateMemo()
}

// ClosePath closes the current subpath back to its start.
func (p *Path) ClosePath() {
	if !p.hasCurrent {
		return
	}
	p.Commands = append(p.Commands, Close())
	p.current = p.subpathStart
	p.invalidateMemo()
}

// Rectangle appends a closed axis-aligned rectangle subpath.
func (p *Path) Rectangle(x, y, width, height float64) {
	p.MoveTo(x, y)
	p.LineTo(x+width, y)
	p.LineTo(x+width, y+height)
	p.LineTo(x, y+height)
	p.ClosePath()
}

// CloneEmpty returns a new Path with the same flags (IsClipping, IsFilled,
// FillingRule) but no commands.
func (p *Path) CloneEmpty() *Path {
	return &Path{IsClipping: p.IsClipping, IsFilled: p.IsFilled, FillingRule: p.FillingRule, Commands: make([]PathCommand, 0)}
}

// IsClosed reports whether the path's last command closes the current
// subpath, or whether the current point coincides with the last subpath's
// start.
func (p *Path) IsClosed() bool {
	if len(p.Commands) == 0 {
		return false
	}
	last := p.Commands[len(p.Commands)-1]
	if last.Kind == CommandClose {
		return true
	}
	return p.hasCurrent && p.current.Equal(p.subpathStart)
}

func (p *Path) invalidateMemo() {
	p.isRectangleMemoSet = false
}

// IsDrawnAsRectangle reports whether the path is a single closed subpath of
// four axis-aligned sides: a Move followed by three Lines and a Close, or by
// four Lines that return to the start. A second Move or any Bézier command
// rules it out. The result is memoised until the path is mutated again.
func (p *Path) IsDrawnAsRectangle() bool {
	if p.isRectangleMemoSet {
		return p.isRectangleMemo
	}
	result := computeIsDrawnAsRectangle(p.Commands)
	p.isRectangleMemo = result
	p.isRectangleMemoSet = true
	return result
}

func computeIsDrawnAsRectangle(commands []PathCommand) bool {
	var corners []Point
	closed := false
	for _, cmd := range commands {
		switch cmd.Kind {
		case CommandMove:
			if len(corners) == 0 {
				corners = append(corners, cmd.Point)
			} else {
				return false
			}
		case CommandLine:
			corners = append(corners, cmd.To)
		case CommandBezier:
			return false
		case CommandClose:
			// closing back to start doesn't add a corner
			closed = true
		}
	}

	if len(corners) == 5 && corners[0].Equal(corners[4]) {
		corners = corners[:4]
		closed = true
	}
	if len(corners) != 4 || !closed {
		return false
	}

	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		horizontal := math.Abs(a.Y-b.Y) < Epsilon
		vertical := math.Abs(a.X-b.X) < Epsilon
		if !horizontal && !vertical {
			return false
		}
	}
	return true
}

// GetBoundingRectangle returns the axis-aligned bounding rectangle of all
// points visited by the path's commands, or false if the path is empty.
// Bézier control points are included in the envelope, which is a
// conservative (but cheap) bound rather than the curve's tight bbox.
func (p *Path) GetBoundingRectangle() (Rectangle, bool) {
	var pts []Point
	for _, cmd := range p.Commands {
		switch cmd.Kind {
		case CommandMove:
			pts = append(pts, cmd.Point)
		case CommandLine:
			pts = append(pts, cmd.From, cmd.To)
		case CommandBezier:
			pts = append(pts, cmd.Start, cmd.Control1, cmd.Control2, cmd.End)
		}
	}
	if len(pts) == 0 {
		return Rectangle{}, false
	}
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, pt := range pts[1:] {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
	}
	return NewAxisAlignedRectangle(minX, minY, maxX, maxY), true
}

// ContainsBezier reports whether any command in the path is a cubic Bézier
// curve. Used by table-ruling extraction, which must skip curved paths.
func (p *Path) ContainsBezier() bool {
	for _, cmd := range p.Commands {
		if cmd.Kind == CommandBezier {
			return true
		}
	}
	return false
}
