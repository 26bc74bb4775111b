// Package unsvg draws straight colored lines on a fixed-size canvas with a black background. Coordinates are snapped to a 1/256 grid so that exported documents are identical across platforms.
package unsvg

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Renderer is implemented by output formats to consume the primitives of an image.
type Renderer interface {
	Size() (float64, float64)
	RenderPath(path *Path, style Style)
}

// Writer writes an image to w in some output format.
type Writer func(w io.Writer, img *Image) error

// Image is a fixed-size drawing of a black background with straight colored lines on top. Its zero value is not usable, use New.
type Image struct {
	width, height uint32
	scene         []Primitive // scene[0] is always the background
}

// New returns an image of width by height units with a black background. It panics if either dimension is zero.
func New(width, height uint32) *Image {
	if width == 0 || height == 0 {
		panic(fmt.Sprintf("unsvg: invalid image size %dx%d", width, height))
	}
	bg := Background{
		Width:  float64(width),
		Height: float64(height),
		Fill:   Colors[Black],
	}
	return &Image{
		width:  width,
		height: height,
		scene:  []Primitive{bg},
	}
}

// Dimensions returns the width and height.
func (img *Image) Dimensions() (uint32, uint32) {
	return img.width, img.height
}

// Len returns the number of primitives including the background.
func (img *Image) Len() int {
	return len(img.scene)
}

// Primitives returns a copy of the primitives in render order.
func (img *Image) Primitives() []Primitive {
	return append([]Primitive{}, img.scene...)
}

// Copy returns a deep copy of the image.
func (img *Image) Copy() *Image {
	return &Image{
		width:  img.width,
		height: img.height,
		scene:  img.Primitives(),
	}
}

// DrawSimpleLine draws a line from (x,y) in the given compass direction and length, and returns its end point. See EndCoordinates. The image is left untouched on error.
func (img *Image) DrawSimpleLine(x, y float64, direction int, length float64, c Color) (float64, float64, error) {
	end, err := img.DrawLine(Point{x, y}, direction, length, c)
	if err != nil {
		return 0.0, 0.0, err
	}
	return end.X, end.Y, nil
}

// DrawLine draws a line from start in the given compass direction and length, and returns its end point so that lines can be chained.
func (img *Image) DrawLine(start Point, direction int, length float64, c Color) (Point, error) {
	start = start.Quantize()
	end := EndPoint(start, direction, length)
	if err := img.DrawSegment(start, end, c); err != nil {
		return Point{}, err
	}
	return end, nil
}

// DrawSegment draws a line between two points, which are quantized first.
func (img *Image) DrawSegment(start, end Point, c Color) error {
	start, end = start.Quantize(), end.Quantize()
	if _, err := LinePath(start, end); err != nil {
		return fmt.Errorf("could not draw line: %w", err)
	}
	img.scene = append(img.scene, Line{start, end, c})
	return nil
}

// Render renders all primitives in order.
func (img *Image) Render(r Renderer) {
	for _, prim := range img.scene {
		r.RenderPath(prim.Path(), prim.Style())
	}
}

// Write writes the image to w using the given writer.
func (img *Image) Write(w io.Writer, writer Writer) error {
	return writer(w, img)
}

// WriteFile writes the image to a file using the given writer. The file is only created when writing succeeded.
func (img *Image) WriteFile(filename string, writer Writer) error {
	buf := &bytes.Buffer{}
	if err := writer(buf, img); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err = buf.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
