//go:build !formats

package renderers

import (
	"fmt"

	"github.com/tdewolff/unsvg"
)

// WebP returns a WebP writer that uses libwebp and accepts the following options: github.com/kolesa-team/go-webp/encoder.*Options
func WebP(opts ...interface{}) unsvg.Writer {
	return errorWriter(fmt.Errorf("unsupported WebP: CGO must be enabled"))
}

// AVIF returns an AVIF writer that uses libaom and accepts the following options: github.com/Kagami/go-avif.*Options
func AVIF(opts ...interface{}) unsvg.Writer {
	return errorWriter(fmt.Errorf("unsupported AVIF: CGO must be enabled"))
}
