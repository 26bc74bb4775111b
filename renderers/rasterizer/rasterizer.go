package rasterizer

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"github.com/tdewolff/unsvg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// MaxSize is the largest width or height in pixels, coordinates must fit in 26.6 fixed point.
const MaxSize = 1 << 24

// PNGWriter writes the image as a PNG file.
func PNGWriter() unsvg.Writer {
	return func(w io.Writer, img *unsvg.Image) error {
		return png.Encode(w, Draw(img))
	}
}

// JPGWriter writes the image as a JPG file.
func JPGWriter(opts *jpeg.Options) unsvg.Writer {
	return func(w io.Writer, img *unsvg.Image) error {
		return jpeg.Encode(w, Draw(img), opts)
	}
}

// GIFWriter writes the image as a GIF file.
func GIFWriter(opts *gif.Options) unsvg.Writer {
	return func(w io.Writer, img *unsvg.Image) error {
		return gif.Encode(w, Draw(img), opts)
	}
}

// TIFFWriter writes the image as a TIFF file.
func TIFFWriter(opts *tiff.Options) unsvg.Writer {
	return func(w io.Writer, img *unsvg.Image) error {
		return tiff.Encode(w, Draw(img), opts)
	}
}

// BMPWriter writes the image as a BMP file.
func BMPWriter() unsvg.Writer {
	return func(w io.Writer, img *unsvg.Image) error {
		return bmp.Encode(w, Draw(img))
	}
}

// Draw draws the image on a new raster image of exactly width by height pixels, one pixel per unit. It panics when a dimension exceeds MaxSize.
func Draw(img *unsvg.Image) *image.RGBA {
	width, height := img.Dimensions()
	if MaxSize < width || MaxSize < height {
		panic(fmt.Sprintf("rasterizer: image size %dx%d exceeds %d pixels", width, height, MaxSize))
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	img.Render(New(dst))
	return dst
}

// Rasterizer is a rasterizing renderer.
type Rasterizer struct {
	img    draw.Image
	dasher *rasterx.Dasher
}

// New returns a renderer that draws to a rasterized image. The origin maps to the top-left corner of the image bounds.
func New(img draw.Image) *Rasterizer {
	size := img.Bounds().Size()
	if MaxSize < size.X || MaxSize < size.Y {
		panic(fmt.Sprintf("rasterizer: image size %dx%d exceeds %d pixels", size.X, size.Y, MaxSize))
	}
	scanner := rasterx.NewScannerGV(size.X, size.Y, img, img.Bounds())
	return &Rasterizer{
		img:    img,
		dasher: rasterx.NewDasher(size.X, size.Y, scanner),
	}
}

// Size returns the size of the image in pixels.
func (r *Rasterizer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

// RenderPath renders a path to the image using a style. Paths with non-finite coordinates are skipped.
func (r *Rasterizer) RenderPath(path *unsvg.Path, style unsvg.Style) {
	if path.Empty() || !path.Finite() {
		return
	}
	if style.HasFill() {
		r.fill(path, style.Fill.Color)
	}
	if style.HasStroke() {
		r.stroke(path, style.Stroke.Color, style.StrokeWidth)
	}
}

// fill uses the non-zero winding rule, subpaths are closed implicitly.
func (r *Rasterizer) fill(path *unsvg.Path, c unsvg.Color) {
	bounds := r.img.Bounds()
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	open := false
	path.Iterate(func(cmd unsvg.PathCmd, x, y float64) {
		switch cmd {
		case unsvg.MoveToCmd:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(float32(x), float32(y))
			open = true
		case unsvg.LineToCmd:
			ras.LineTo(float32(x), float32(y))
		case unsvg.CloseCmd:
			ras.ClosePath()
			open = false
		}
	})
	if open {
		ras.ClosePath()
	}
	ras.Draw(r.img, bounds, image.NewUniform(c), image.Point{})
}

func (r *Rasterizer) stroke(path *unsvg.Path, c unsvg.Color, width float64) {
	// segments are clipped to the image grown by the stroke width
	pad := width + 1.0
	size := r.img.Bounds().Size()
	lo := unsvg.Point{X: -pad, Y: -pad}
	hi := unsvg.Point{X: float64(size.X) + pad, Y: float64(size.Y) + pad}

	d := r.dasher
	d.Clear()
	d.SetStroke(toFixed(width), 4*64, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.MiterClip, nil, 0)

	var prev, last unsvg.Point
	open, clipped := false, false
	path.Iterate(func(cmd unsvg.PathCmd, x, y float64) {
		p := unsvg.Point{X: x, Y: y}
		if cmd == unsvg.MoveToCmd {
			if open {
				d.Stop(false)
			}
			prev, open, clipped = p, false, false
			return
		}

		a, b, ok := clipLine(prev, p, lo, hi)
		if !ok || a != prev || b != p {
			clipped = true
		}
		if cmd == unsvg.CloseCmd && open && !clipped {
			d.Stop(true)
			open = false
		} else if ok {
			if open && a != last {
				d.Stop(false)
				open = false
			}
			if !open {
				d.Start(toFixedPoint(a))
				open = true
			}
			d.Line(toFixedPoint(b))
			last = b
		}
		prev = p
	})
	if open {
		d.Stop(false)
	}
	d.SetColor(c)
	d.Draw()
}

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64.0))
}

func toFixedPoint(p unsvg.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// clipLine clips the segment from a to b to the rectangle spanned by lo and hi using the Liang-Barsky algorithm.
func clipLine(a, b, lo, hi unsvg.Point) (unsvg.Point, unsvg.Point, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := b.X-a.X, b.Y-a.Y
	edges := [4][2]float64{
		{-dx, a.X - lo.X},
		{dx, hi.X - a.X},
		{-dy, a.Y - lo.Y},
		{dy, hi.Y - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0.0 {
			if q < 0.0 {
				return a, b, false // parallel and outside
			}
			continue
		}
		t := q / p
		if p < 0.0 {
			if t1 < t {
				return a, b, false
			} else if t0 < t {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			} else if t < t1 {
				t1 = t
			}
		}
	}

	ca, cb := a, b
	if 0.0 < t0 {
		ca = unsvg.Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1.0 {
		cb = unsvg.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}
	return ca, cb, true
}
