package main

import (
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/unsvg"
	"github.com/tdewolff/unsvg/renderers"
	"github.com/tdewolff/unsvg/renderers/svg"
)

type Draw struct {
	Width   int     `short:"W" default:"200" desc:"Image width"`
	Height  int     `short:"H" default:"200" desc:"Image height"`
	X       float64 `short:"x" desc:"Start X coordinate"`
	Y       float64 `short:"y" desc:"Start Y coordinate"`
	Output  string  `short:"o" default:"out.svg" desc:"Output file, its extension selects the format"`
	Minify  bool    `desc:"Minify SVG output"`
	Title   string  `desc:"SVG document title"`
	Quiet   bool    `short:"q" desc:"Only log warnings and errors"`
	Verbose bool    `short:"v" desc:"Log every command"`
	Input   string  `index:"0" desc:"Script file, standard input when empty"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Draw line scripts to SVG or raster images")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	level := slog.LevelInfo
	if cmd.Quiet {
		level = slog.LevelWarn
	} else if cmd.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if cmd.Width <= 0 || math.MaxUint32 < int64(cmd.Width) || cmd.Height <= 0 || math.MaxUint32 < int64(cmd.Height) {
		logger.Error("width and height must be positive", "width", cmd.Width, "height", cmd.Height)
		return argp.ShowUsage
	} else if cmd.Output == "" {
		logger.Error("must specify output filename")
		return argp.ShowUsage
	}

	var r io.Reader = os.Stdin
	if cmd.Input != "" && cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	img := unsvg.New(uint32(cmd.Width), uint32(cmd.Height))
	turtle := NewTurtle(img, unsvg.Point{X: cmd.X, Y: cmd.Y}, logger.With("input", cmd.Input))
	if err := turtle.Run(r); err != nil {
		return err
	}

	opts := []interface{}{}
	if ext := strings.ToLower(filepath.Ext(cmd.Output)); (ext == ".svg" || ext == ".svgz") && (cmd.Minify || cmd.Title != "") {
		opts = append(opts, &svg.Options{Minify: cmd.Minify, Title: cmd.Title})
	}
	if err := renderers.Write(cmd.Output, img, opts...); err != nil {
		return err
	}
	logger.Info("written", "output", cmd.Output, "primitives", img.Len(), "end", turtle.Pos())
	return nil
}
