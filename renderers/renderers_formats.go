//go:build formats

package renderers

import (
	"fmt"
	"io"

	"github.com/Kagami/go-avif"
	webp "github.com/kolesa-team/go-webp/encoder"
	"github.com/tdewolff/unsvg"
	"github.com/tdewolff/unsvg/renderers/rasterizer"
)

// WebP returns a WebP writer that uses libwebp and accepts the following options: github.com/kolesa-team/go-webp/encoder.*Options
func WebP(opts ...interface{}) unsvg.Writer {
	var options *webp.Options
	for _, opt := range opts {
		switch o := opt.(type) {
		case *webp.Options:
			options = o
		default:
			return errorWriter(fmt.Errorf("unknown WebP option: %T(%v)", opt, opt))
		}
	}
	if options == nil {
		var err error
		if options, err = webp.NewLossyEncoderOptions(webp.PresetDefault, 75); err != nil {
			return errorWriter(err)
		}
	}
	return func(w io.Writer, img *unsvg.Image) error {
		enc, err := webp.NewEncoder(rasterizer.Draw(img), options)
		if err != nil {
			return err
		}
		return enc.Encode(w)
	}
}

// AVIF returns an AVIF writer that uses libaom and accepts the following options: github.com/Kagami/go-avif.*Options
func AVIF(opts ...interface{}) unsvg.Writer {
	var options *avif.Options
	for _, opt := range opts {
		switch o := opt.(type) {
		case *avif.Options:
			options = o
		default:
			return errorWriter(fmt.Errorf("unknown AVIF option: %T(%v)", opt, opt))
		}
	}
	return func(w io.Writer, img *unsvg.Image) error {
		return avif.Encode(w, rasterizer.Draw(img), options)
	}
}
