package unsvg

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())

	p.MoveTo(5, 2)
	test.That(t, !p.Empty())
	test.T(t, p.Len(), 1)
}

func TestPathCommands(t *testing.T) {
	p := &Path{}
	p.LineTo(5.0, 0.0)
	test.String(t, p.ToSVG(), "M0 0L5 0")

	p.LineTo(5.0, 10.0)
	p.Close()
	p.Close()
	test.String(t, p.ToSVG(), "M0 0L5 0L5 10z")
	test.T(t, p.Len(), 4)

	x, y := p.Pos()
	test.T(t, x, 0.0)
	test.T(t, y, 0.0)

	p.MoveTo(2.5, -1.25)
	p.LineTo(0.00390625, 3.0)
	x, y = p.StartPos()
	test.T(t, x, 2.5)
	test.T(t, y, -1.25)
	test.String(t, p.String(), "M0 0L5 0L5 10zM2.5 -1.25L0.00390625 3")
}

func TestPathEquals(t *testing.T) {
	a, _ := LinePath(Point{5.0, 0.0}, Point{5.0, 10.0})
	b, _ := LinePath(Point{5.0, 0.0}, Point{5.0, 9.0})
	test.That(t, a.Equals(a.Copy()))
	test.That(t, !a.Equals(b))
	test.That(t, !a.Equals(&Path{}))

	c := a.Copy()
	c.LineTo(0.0, 0.0)
	test.That(t, !a.Equals(c))
	test.T(t, a.Len(), 2)
}

func TestPathIterate(t *testing.T) {
	var cmds []PathCmd
	var coords []float64
	Rectangle(4.0, 3.0).Iterate(func(cmd PathCmd, x, y float64) {
		cmds = append(cmds, cmd)
		coords = append(coords, x, y)
	})
	test.T(t, cmds, []PathCmd{MoveToCmd, LineToCmd, LineToCmd, LineToCmd, CloseCmd})
	test.T(t, coords, []float64{0, 0, 4, 0, 4, 3, 0, 3, 0, 0})
}

func TestPathBounds(t *testing.T) {
	lo, hi := (&Path{}).Bounds()
	test.T(t, lo, Point{})
	test.T(t, hi, Point{})

	p, _ := LinePath(Point{10.0, -5.0}, Point{-2.0, 7.5})
	lo, hi = p.Bounds()
	test.T(t, lo, Point{-2.0, -5.0})
	test.T(t, hi, Point{10.0, 7.5})
}

func TestRectangle(t *testing.T) {
	test.String(t, Rectangle(200.0, 100.0).ToSVG(), "M0 0L200 0L200 100L0 100z")
}

func TestLinePath(t *testing.T) {
	p, err := LinePath(Point{10.0, 10.0}, Point{96.6015625, 60.0})
	test.Error(t, err)
	test.String(t, p.ToSVG(), "M10 10L96.6015625 60")
	test.That(t, p.Finite())

	// zero-length lines are valid
	_, err = LinePath(Point{1.0, 1.0}, Point{1.0, 1.0})
	test.Error(t, err)

	_, err = LinePath(Point{math.NaN(), 0.0}, Point{1.0, 1.0})
	test.That(t, errors.Is(err, ErrDegeneratePath))
	_, err = LinePath(Point{0.0, 0.0}, Point{math.Inf(1), 1.0})
	test.That(t, errors.Is(err, ErrDegeneratePath))
}

func TestFormatFloat(t *testing.T) {
	test.String(t, FormatFloat(0.0), "0")
	test.String(t, FormatFloat(-3.5), "-3.5")
	test.String(t, FormatFloat(12345.00390625), "12345.00390625")
	test.String(t, FormatFloat(1e21), "1000000000000000000000")
}
