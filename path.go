package unsvg

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrDegeneratePath is returned when a path cannot be built from its coordinates.
var ErrDegeneratePath = errors.New("degenerate path")

// PathCmd is a path command.
type PathCmd int

// Path commands.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	CloseCmd
)

// Path is a sequence of straight path segments. Each subpath starts with MoveTo and may end with Close.
type Path struct {
	cmds []PathCmd
	d    []float64 // x,y per command, the start point for Close
}

// Empty returns true if the path has no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Len returns the number of commands.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Copy returns a copy of the path.
func (p *Path) Copy() *Path {
	q := &Path{}
	q.cmds = append(q.cmds, p.cmds...)
	q.d = append(q.d, p.d...)
	return q
}

// Equals returns true if both paths have identical commands and coordinates.
func (p *Path) Equals(q *Path) bool {
	if len(p.cmds) != len(q.cmds) {
		return false
	}
	for i := range p.cmds {
		if p.cmds[i] != q.cmds[i] {
			return false
		}
	}
	for i := range p.d {
		if p.d[i] != q.d[i] {
			return false
		}
	}
	return true
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
}

// LineTo adds a straight segment to (x,y), it starts a subpath at (0,0) when the path is empty.
func (p *Path) LineTo(x, y float64) {
	if len(p.cmds) == 0 {
		p.MoveTo(0.0, 0.0)
	}
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.cmds) == 0 || p.cmds[len(p.cmds)-1] == CloseCmd {
		return
	}
	x0, y0 := p.StartPos()
	p.cmds = append(p.cmds, CloseCmd)
	p.d = append(p.d, x0, y0)
}

// StartPos returns the start point of the current subpath.
func (p *Path) StartPos() (float64, float64) {
	for i := len(p.cmds) - 1; 0 <= i; i-- {
		if p.cmds[i] == MoveToCmd {
			return p.d[2*i], p.d[2*i+1]
		}
	}
	return 0.0, 0.0
}

// Pos returns the current position.
func (p *Path) Pos() (float64, float64) {
	if len(p.d) < 2 {
		return 0.0, 0.0
	}
	return p.d[len(p.d)-2], p.d[len(p.d)-1]
}

// Iterate calls fn for every command with its end point.
func (p *Path) Iterate(fn func(cmd PathCmd, x, y float64)) {
	for i, cmd := range p.cmds {
		fn(cmd, p.d[2*i], p.d[2*i+1])
	}
}

// Finite returns true if all coordinates are finite.
func (p *Path) Finite() bool {
	for _, f := range p.d {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box as minimum and maximum points.
func (p *Path) Bounds() (Point, Point) {
	if len(p.d) == 0 {
		return Point{}, Point{}
	}
	lo, hi := Point{math.Inf(1), math.Inf(1)}, Point{math.Inf(-1), math.Inf(-1)}
	for i := 0; i < len(p.d); i += 2 {
		lo.X = math.Min(lo.X, p.d[i])
		lo.Y = math.Min(lo.Y, p.d[i+1])
		hi.X = math.Max(hi.X, p.d[i])
		hi.Y = math.Max(hi.Y, p.d[i+1])
	}
	return lo, hi
}

// ToSVG returns the path in SVG path data notation.
func (p *Path) ToSVG() string {
	sb := strings.Builder{}
	for i, cmd := range p.cmds {
		x, y := p.d[2*i], p.d[2*i+1]
		switch cmd {
		case MoveToCmd:
			sb.WriteString("M" + FormatFloat(x) + " " + FormatFloat(y))
		case LineToCmd:
			sb.WriteString("L" + FormatFloat(x) + " " + FormatFloat(y))
		case CloseCmd:
			sb.WriteString("z")
		}
	}
	return sb.String()
}

func (p *Path) String() string {
	return p.ToSVG()
}

////////////////////////////////////////////////////////////////

// Rectangle returns a closed rectangle of width w and height h with its top-left corner at the origin.
func Rectangle(w, h float64) *Path {
	p := &Path{}
	p.MoveTo(0.0, 0.0)
	p.LineTo(w, 0.0)
	p.LineTo(w, h)
	p.LineTo(0.0, h)
	p.Close()
	return p
}

// LinePath returns an open path with one straight segment. It fails for non-finite coordinates.
func LinePath(start, end Point) (*Path, error) {
	if !start.Finite() || !end.Finite() {
		return nil, fmt.Errorf("line from %v to %v: %w", start, end, ErrDegeneratePath)
	}
	p := &Path{}
	p.MoveTo(start.X, start.Y)
	p.LineTo(end.X, end.Y)
	return p, nil
}

////////////////////////////////////////////////////////////////

// FormatFloat formats f as the shortest decimal that parses back to the same value, without an exponent.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
