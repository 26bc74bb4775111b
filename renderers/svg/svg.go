package svg

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"
	"github.com/tdewolff/minify/v2"
	minifyCSS "github.com/tdewolff/minify/v2/css"
	minifySVG "github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/unsvg"
)

type Options struct {
	Compression int
	Minify      bool
	Title       string
}

var DefaultOptions = Options{}

// Writer writes the image as an SVG document using the default options.
func Writer(w io.Writer, img *unsvg.Image) error {
	return WriterWithOptions(nil)(w, img)
}

// WriterWithOptions returns a writer that writes SVG documents using the given options.
func WriterWithOptions(opts *Options) unsvg.Writer {
	return func(w io.Writer, img *unsvg.Image) error {
		width, height := img.Dimensions()
		svg := New(w, width, height, opts)
		img.Render(svg)
		return svg.Close()
	}
}

// SVG is a scalable vector graphics renderer. Its output only depends on the rendered paths, rendering the same image twice gives identical bytes.
type SVG struct {
	w             io.Writer
	zw            *gzip.Writer
	bw            *bufio.Writer
	buf           *bytes.Buffer
	svg           *svgo.SVG
	width, height uint32
	opts          Options
}

// New returns a scalable vector graphics (SVG) renderer.
func New(w io.Writer, width, height uint32, opts *Options) *SVG {
	if opts == nil {
		opts = &DefaultOptions
	}

	r := &SVG{
		w:      w,
		width:  width,
		height: height,
		opts:   *opts,
	}
	if r.opts.Compression != 0 {
		if r.opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < r.opts.Compression {
			r.opts.Compression = -1
		}
		r.zw, _ = gzip.NewWriterLevel(w, r.opts.Compression)
		r.w = r.zw
	}

	// svgo ignores write errors, the buffered writer keeps the first one
	if r.opts.Minify {
		r.buf = &bytes.Buffer{}
		r.svg = svgo.New(r.buf)
	} else {
		r.bw = bufio.NewWriter(r.w)
		r.svg = svgo.New(r.bw)
	}

	viewBox := fmt.Sprintf("0 0 %d %d", width, height)
	r.svg.Start(int(width), int(height), attr("viewBox", viewBox))
	if r.opts.Title != "" {
		r.svg.Title(r.opts.Title)
	}
	return r
}

// Size returns the size of the image.
func (r *SVG) Size() (float64, float64) {
	return float64(r.width), float64(r.height)
}

// RenderPath renders a path to the document.
func (r *SVG) RenderPath(path *unsvg.Path, style unsvg.Style) {
	if path.Empty() {
		return
	}

	attrs := []string{}
	if style.HasFill() {
		attrs = append(attrs, attr("fill", style.Fill.Color.String()))
	} else {
		attrs = append(attrs, attr("fill", "none"))
	}
	if style.HasStroke() {
		attrs = append(attrs, attr("stroke", style.Stroke.Color.String()))
		if style.StrokeWidth != unsvg.DefaultStrokeWidth {
			attrs = append(attrs, attr("stroke-width", unsvg.FormatFloat(style.StrokeWidth)))
		}
	}
	r.svg.Path(path.ToSVG(), attrs...)
}

// Close finishes the document and flushes it to the underlying writer, which is not closed.
func (r *SVG) Close() error {
	r.svg.End()

	var err error
	if r.opts.Minify {
		m := minify.New()
		m.AddFunc("text/css", minifyCSS.Minify)
		m.AddFunc("image/svg+xml", minifySVG.Minify)
		err = m.Minify("image/svg+xml", r.w, r.buf)
	} else {
		err = r.bw.Flush()
	}
	if r.zw != nil {
		if errClose := r.zw.Close(); err == nil {
			err = errClose
		}
	}
	return err
}
