package svg

import (
	"errors"
	"fmt"
	"io"
	"math"
	stdStrconv "strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
	"github.com/tdewolff/unsvg"
)

// ErrUnsupported is returned when a document uses elements or attributes that an image cannot hold.
var ErrUnsupported = errors.New("unsupported SVG")

type svgParser struct {
	z          *parse.Input
	img        *unsvg.Image
	background bool
	err        error
}

// Parse reads an SVG document back into an image. It accepts documents as written by this package: a root element with integer dimensions, a black background covering the whole image, followed by single-segment stroked lines.
func Parse(r io.Reader) (*unsvg.Image, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	svg := svgParser{
		z: z,
	}
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			} else if svg.err != nil {
				return nil, svg.err
			} else if svg.img == nil {
				return nil, fmt.Errorf("expected SVG tag")
			} else if !svg.background {
				return nil, fmt.Errorf("expected background")
			}
			return svg.img, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				attrs[string(l.Text())] = attrVal(l.AttrVal())
			}
			if tt == xml.ErrorToken {
				if l.Err() == io.EOF {
					return nil, io.ErrUnexpectedEOF
				}
				return nil, l.Err()
			}

			if svg.err == nil {
				svg.startTag(string(data[1:]), attrs)
			}
		}
	}
}

func attrVal(val []byte) string {
	if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
		val = val[1 : len(val)-1]
	}
	return strings.TrimSpace(string(val))
}

func (svg *svgParser) startTag(tag string, attrs map[string]string) {
	switch tag {
	case "svg":
		if svg.img != nil {
			svg.err = fmt.Errorf("%w: nested svg", ErrUnsupported)
			return
		}
		svg.parseRoot(attrs)
	case "path":
		if svg.img == nil {
			svg.err = parse.NewErrorLexer(svg.z, "path outside svg")
			return
		}
		svg.parsePath(attrs)
	case "title", "desc", "metadata":
	default:
		svg.err = fmt.Errorf("%w: element <%s>", ErrUnsupported, tag)
	}
}

func (svg *svgParser) parseRoot(attrs map[string]string) {
	var viewBox []float64
	if _, ok := attrs["viewBox"]; ok {
		var err error
		if viewBox, err = parseNumbers(attrs["viewBox"]); err != nil || len(viewBox) != 4 {
			svg.err = parse.NewErrorLexer(svg.z, "bad viewBox")
			return
		}
	}

	width, height := 0.0, 0.0
	if val, ok := attrs["width"]; ok {
		width = parseDimension(val)
	} else if viewBox != nil {
		width = viewBox[2]
	}
	if val, ok := attrs["height"]; ok {
		height = parseDimension(val)
	} else if viewBox != nil {
		height = viewBox[3]
	}
	if !validSize(width) || !validSize(height) {
		svg.err = parse.NewErrorLexer(svg.z, "bad dimensions %vx%v", attrs["width"], attrs["height"])
		return
	} else if viewBox != nil && (viewBox[0] != 0.0 || viewBox[1] != 0.0 || viewBox[2] != width || viewBox[3] != height) {
		svg.err = fmt.Errorf("%w: viewBox differs from dimensions", ErrUnsupported)
		return
	}
	svg.img = unsvg.New(uint32(width), uint32(height))
}

func (svg *svgParser) parsePath(attrs map[string]string) {
	p, err := parsePathData(attrs["d"])
	if err != nil {
		svg.err = err
		return
	}

	fill := unsvg.Solid(unsvg.Colors[unsvg.Black])
	if val, ok := attrs["fill"]; ok {
		if fill, err = parsePaint(val); err != nil {
			svg.err = err
			return
		}
	}
	stroke := unsvg.NoPaint
	if val, ok := attrs["stroke"]; ok {
		if stroke, err = parsePaint(val); err != nil {
			svg.err = err
			return
		}
	}
	if val, ok := attrs["stroke-width"]; ok && parseDimension(val) != unsvg.DefaultStrokeWidth {
		svg.err = fmt.Errorf("%w: stroke-width %v", ErrUnsupported, val)
		return
	}

	if !svg.background {
		width, height := svg.img.Dimensions()
		if !stroke.None || fill.None || fill.Color != unsvg.Colors[unsvg.Black] {
			svg.err = fmt.Errorf("%w: background must be black", ErrUnsupported)
		} else if !p.Equals(unsvg.Rectangle(float64(width), float64(height))) {
			svg.err = fmt.Errorf("%w: background must cover the image", ErrUnsupported)
		}
		svg.background = true
		return
	}

	if !fill.None || stroke.None {
		svg.err = fmt.Errorf("%w: filled path", ErrUnsupported)
		return
	}
	var cmds []unsvg.PathCmd
	var pts []unsvg.Point
	p.Iterate(func(cmd unsvg.PathCmd, x, y float64) {
		cmds = append(cmds, cmd)
		pts = append(pts, unsvg.Point{X: x, Y: y})
	})
	if len(cmds) != 2 || cmds[0] != unsvg.MoveToCmd || cmds[1] != unsvg.LineToCmd {
		svg.err = fmt.Errorf("%w: path %q is not a single line", ErrUnsupported, attrs["d"])
		return
	}
	if err := svg.img.DrawSegment(pts[0], pts[1], stroke.Color); err != nil {
		svg.err = err
	}
}

func validSize(f float64) bool {
	return 1.0 <= f && f <= math.MaxUint32 && f == math.Trunc(f)
}

// parseDimension parses a length in user units, optionally suffixed by px. It returns NaN on error.
func parseDimension(s string) float64 {
	b := []byte(strings.TrimSuffix(s, "px"))
	f, n := parseFloat(b)
	if n == 0 || n != len(b) {
		return math.NaN()
	}
	return f
}

// parsePaint parses none, a hexadecimal color or a CSS color keyword.
func parsePaint(s string) (unsvg.Paint, error) {
	if s == "none" {
		return unsvg.NoPaint, nil
	} else if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return unsvg.Paint{}, fmt.Errorf("bad paint %q: %w", s, err)
		}
		return unsvg.Solid(unsvg.RGB(c.RGB255())), nil
	}
	if c, ok := cssColors[strings.ToLower(s)]; ok {
		return unsvg.Solid(c), nil
	}
	return unsvg.Paint{}, fmt.Errorf("%w: paint %q", ErrUnsupported, s)
}

// parseFloat parses a number at the start of b and returns the number of bytes read, or zero on error. The result is exact also for long mantissas.
func parseFloat(b []byte) (float64, int) {
	f, n := strconv.ParseFloat(b)
	if n == 0 {
		return 0.0, 0
	}
	if g, err := stdStrconv.ParseFloat(string(b[:n]), 64); err == nil {
		f = g
	}
	return f, n
}

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r'
}

func skipSeparators(b []byte, i int) int {
	for i < len(b) && isSeparator(b[i]) {
		i++
	}
	return i
}

func parseNumbers(s string) ([]float64, error) {
	b := []byte(s)
	nums := []float64{}
	for i := skipSeparators(b, 0); i < len(b); i = skipSeparators(b, i) {
		f, n := parseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("bad number at %d in %q", i, s)
		}
		nums = append(nums, f)
		i += n
	}
	return nums, nil
}

// parsePathData parses path data consisting of (relative) moveto, lineto, horizontal and vertical lineto and closepath commands.
func parsePathData(d string) (*unsvg.Path, error) {
	b := []byte(d)
	p := &unsvg.Path{}
	cmd := byte(0)
	x, y := 0.0, 0.0
	num := func(i int) (float64, int, error) {
		i = skipSeparators(b, i)
		f, n := parseFloat(b[i:])
		if n == 0 {
			return 0.0, i, fmt.Errorf("bad path data at %d in %q", i, d)
		}
		return f, i + n, nil
	}

	var err error
	for i := skipSeparators(b, 0); i < len(b); i = skipSeparators(b, i) {
		if c := b[i]; 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' {
			cmd = c
			i++
			if cmd == 'Z' || cmd == 'z' {
				p.Close()
				x, y = p.Pos()
				continue
			}
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("bad path data at %d in %q", i, d)
		}

		switch cmd {
		case 'M', 'm', 'L', 'l':
			var x1, y1 float64
			if x1, i, err = num(i); err != nil {
				return nil, err
			} else if y1, i, err = num(i); err != nil {
				return nil, err
			}
			if cmd == 'm' || cmd == 'l' {
				x1 += x
				y1 += y
			}
			if cmd == 'M' || cmd == 'm' {
				// subsequent pairs are implicit lineto commands
				p.MoveTo(x1, y1)
				if cmd == 'M' {
					cmd = 'L'
				} else {
					cmd = 'l'
				}
			} else {
				p.LineTo(x1, y1)
			}
			x, y = x1, y1
		case 'H', 'h':
			var x1 float64
			if x1, i, err = num(i); err != nil {
				return nil, err
			}
			if cmd == 'h' {
				x1 += x
			}
			p.LineTo(x1, y)
			x = x1
		case 'V', 'v':
			var y1 float64
			if y1, i, err = num(i); err != nil {
				return nil, err
			}
			if cmd == 'v' {
				y1 += y
			}
			p.LineTo(x, y1)
			y = y1
		default:
			return nil, fmt.Errorf("%w: path command %c", ErrUnsupported, cmd)
		}
	}
	return p, nil
}
