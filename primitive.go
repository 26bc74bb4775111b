package unsvg

// DefaultStrokeWidth is the stroke width of lines, it is never varied.
const DefaultStrokeWidth = 1.0

// Paint is a solid color or no paint at all.
type Paint struct {
	Color Color
	None  bool
}

// NoPaint paints nothing.
var NoPaint = Paint{None: true}

// Solid returns a paint of color c.
func Solid(c Color) Paint {
	return Paint{Color: c}
}

// Style is the fill and stroke style of a path.
type Style struct {
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
}

// HasFill returns true if the path is filled.
func (style Style) HasFill() bool {
	return !style.Fill.None
}

// HasStroke returns true if the path is stroked.
func (style Style) HasStroke() bool {
	return !style.Stroke.None && 0.0 < style.StrokeWidth
}

// Primitive is a drawable element of an image.
type Primitive interface {
	Path() *Path
	Style() Style
}

// Background fills the whole image.
type Background struct {
	Width, Height float64
	Fill          Color
}

// Path returns the rectangle covering the image.
func (bg Background) Path() *Path {
	return Rectangle(bg.Width, bg.Height)
}

// Style returns a fill-only style.
func (bg Background) Style() Style {
	return Style{
		Fill:   Solid(bg.Fill),
		Stroke: NoPaint,
	}
}

// Line is a straight stroked line segment.
type Line struct {
	Start, End Point
	Color      Color
}

// Path returns the segment from Start to End. Lines are only created from finite points.
func (l Line) Path() *Path {
	p := &Path{}
	p.MoveTo(l.Start.X, l.Start.Y)
	p.LineTo(l.End.X, l.End.Y)
	return p
}

// Style returns a stroke-only style.
func (l Line) Style() Style {
	return Style{
		Fill:        NoPaint,
		Stroke:      Solid(l.Color),
		StrokeWidth: DefaultStrokeWidth,
	}
}
