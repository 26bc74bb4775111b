package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"io"
	"path/filepath"
	"strings"

	"github.com/tdewolff/unsvg"
	"github.com/tdewolff/unsvg/renderers/rasterizer"
	"github.com/tdewolff/unsvg/renderers/svg"
	"golang.org/x/image/tiff"
)

func errorWriter(err error) unsvg.Writer {
	return func(_ io.Writer, _ *unsvg.Image) error {
		return err
	}
}

// SaveSVG writes the image as an SVG file.
func SaveSVG(img *unsvg.Image, filename string) error {
	return img.WriteFile(filename, SVG())
}

// SavePNG writes the image as a PNG file of exactly the image's dimensions in pixels.
func SavePNG(img *unsvg.Image, filename string) error {
	return img.WriteFile(filename, PNG())
}

// Write writes the image to a file, the format is chosen by the file extension. Options are passed to the writer of that format.
func Write(filename string, img *unsvg.Image, opts ...interface{}) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".svg", ".svgz":
		if ext == ".svgz" {
			opts = compressed(opts)
		}
		return img.WriteFile(filename, SVG(opts...))
	case ".png":
		return img.WriteFile(filename, PNG(opts...))
	case ".jpg", ".jpeg":
		return img.WriteFile(filename, JPG(opts...))
	case ".gif":
		return img.WriteFile(filename, GIF(opts...))
	case ".tif", ".tiff":
		return img.WriteFile(filename, TIFF(opts...))
	case ".bmp":
		return img.WriteFile(filename, BMP(opts...))
	case ".webp":
		return img.WriteFile(filename, WebP(opts...))
	case ".avif":
		return img.WriteFile(filename, AVIF(opts...))
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}
}

// compressed makes sure the SVG options enable compression, without modifying the caller's options.
func compressed(opts []interface{}) []interface{} {
	options := svg.DefaultOptions
	opts = append([]interface{}{}, opts...)
	for i := len(opts) - 1; 0 <= i; i-- {
		if o, ok := opts[i].(*svg.Options); ok {
			options = *o
			opts = append(opts[:i], opts[i+1:]...)
			break
		}
	}
	if options.Compression == 0 {
		options.Compression = -1
	}
	return append(opts, &options)
}

// SVG returns an SVG writer and accepts the following options: *svg.Options. The last one given is used.
func SVG(opts ...interface{}) unsvg.Writer {
	var options *svg.Options
	for _, opt := range opts {
		switch o := opt.(type) {
		case *svg.Options:
			options = o
		default:
			return errorWriter(fmt.Errorf("unknown SVG option: %T(%v)", opt, opt))
		}
	}
	return svg.WriterWithOptions(options)
}

// PNG returns a PNG writer, it accepts no options.
func PNG(opts ...interface{}) unsvg.Writer {
	if 0 < len(opts) {
		return errorWriter(fmt.Errorf("unknown PNG option: %T(%v)", opts[0], opts[0]))
	}
	return rasterizer.PNGWriter()
}

// JPG returns a JPEG writer and accepts the following options: *jpeg.Options.
func JPG(opts ...interface{}) unsvg.Writer {
	var options *jpeg.Options
	for _, opt := range opts {
		switch o := opt.(type) {
		case *jpeg.Options:
			options = o
		default:
			return errorWriter(fmt.Errorf("unknown JPG option: %T(%v)", opt, opt))
		}
	}
	return rasterizer.JPGWriter(options)
}

// GIF returns a GIF writer and accepts the following options: *gif.Options.
func GIF(opts ...interface{}) unsvg.Writer {
	var options *gif.Options
	for _, opt := range opts {
		switch o := opt.(type) {
		case *gif.Options:
			options = o
		default:
			return errorWriter(fmt.Errorf("unknown GIF option: %T(%v)", opt, opt))
		}
	}
	return rasterizer.GIFWriter(options)
}

// TIFF returns a TIFF writer and accepts the following options: *tiff.Options.
func TIFF(opts ...interface{}) unsvg.Writer {
	var options *tiff.Options
	for _, opt := range opts {
		switch o := opt.(type) {
		case *tiff.Options:
			options = o
		default:
			return errorWriter(fmt.Errorf("unknown TIFF option: %T(%v)", opt, opt))
		}
	}
	return rasterizer.TIFFWriter(options)
}

// BMP returns a BMP writer, it accepts no options.
func BMP(opts ...interface{}) unsvg.Writer {
	if 0 < len(opts) {
		return errorWriter(fmt.Errorf("unknown BMP option: %T(%v)", opts[0], opts[0]))
	}
	return rasterizer.BMPWriter()
}
