package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/test"
	"github.com/tdewolff/unsvg/renderers/svg"
)

func writeScript(t *testing.T, dir, script string) string {
	filename := filepath.Join(dir, "script.txt")
	test.Error(t, os.WriteFile(filename, []byte(script), 0644))
	return filename
}

func TestDrawRun(t *testing.T) {
	dir := t.TempDir()
	cmd := &Draw{
		Width:  200,
		Height: 100,
		X:      10.0,
		Y:      10.0,
		Output: filepath.Join(dir, "out.svg"),
		Title:  "triangle",
		Quiet:  true,
		Input:  writeScript(t, dir, "line 120 100 white\nline 240 100 white\nline 0 100 white\n"),
	}
	test.Error(t, cmd.Run())

	b, err := os.ReadFile(cmd.Output)
	test.Error(t, err)
	test.That(t, bytes.Contains(b, []byte("<title>triangle</title>")))
	img, err := svg.Parse(bytes.NewReader(b))
	test.Error(t, err)
	test.T(t, img.Len(), 4)
	w, h := img.Dimensions()
	test.T(t, w, uint32(200))
	test.T(t, h, uint32(100))

	// SVG options are ignored for raster output
	cmd.Output = filepath.Join(dir, "out.png")
	cmd.Minify = true
	test.Error(t, cmd.Run())

	f, err := os.Open(cmd.Output)
	test.Error(t, err)
	defer f.Close()
	dst, err := png.Decode(f)
	test.Error(t, err)
	test.T(t, dst.Bounds(), image.Rect(0, 0, 200, 100))
}

func TestDrawRunErrors(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "line 90 10 red\n")
	output := filepath.Join(dir, "out.svg")

	var tts = []struct {
		name string
		cmd  Draw
	}{
		{"zero width", Draw{Width: 0, Height: 10, Output: output, Input: script}},
		{"negative height", Draw{Width: 10, Height: -1, Output: output, Input: script}},
		{"no output", Draw{Width: 10, Height: 10, Input: script}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			tt.cmd.Quiet = true
			test.T(t, tt.cmd.Run(), argp.ShowUsage)
		})
	}

	cmd := Draw{Width: 10, Height: 10, Output: output, Quiet: true, Input: filepath.Join(dir, "missing.txt")}
	test.That(t, cmd.Run() != nil)

	cmd.Input = writeScript(t, dir, "line 90 10 red\nline 90 10 pink\n")
	test.That(t, cmd.Run() != nil)

	cmd.Input = script
	cmd.Output = filepath.Join(dir, "out.pdf")
	test.That(t, cmd.Run() != nil)

	for _, name := range []string{"out.svg", "out.pdf"} {
		_, err := os.Stat(filepath.Join(dir, name))
		test.That(t, os.IsNotExist(err), name)
	}
}
