package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tdewolff/unsvg"
)

// Turtle executes drawing commands on an image, starting each line where the previous one ended.
type Turtle struct {
	img    *unsvg.Image
	pos    unsvg.Point
	logger *slog.Logger
}

func NewTurtle(img *unsvg.Image, start unsvg.Point, logger *slog.Logger) *Turtle {
	if logger == nil {
		logger = slog.Default()
	}
	return &Turtle{
		img:    img,
		pos:    start.Quantize(),
		logger: logger,
	}
}

// Pos returns the current position.
func (t *Turtle) Pos() unsvg.Point {
	return t.pos
}

// Exec executes a single command:
//
//	line DIRECTION LENGTH COLOR
//	move X Y
//
// Empty lines and lines starting with # are ignored.
func (t *Turtle) Exec(s string) error {
	fields := strings.Fields(s)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "line":
		if len(args) != 3 {
			return fmt.Errorf("line: expected DIRECTION LENGTH COLOR")
		}
		direction, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("line: bad direction %q", args[0])
		}
		length, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("line: bad length %q", args[1])
		}
		c, err := unsvg.ParseColor(args[2])
		if err != nil {
			return fmt.Errorf("line: %w", err)
		}

		end, err := t.img.DrawLine(t.pos, direction, length, c)
		if err != nil {
			return fmt.Errorf("line: %w", err)
		}
		t.logger.Debug("line", "from", t.pos, "to", end, "direction", direction, "length", length, "color", c)
		t.pos = end
	case "move":
		if len(args) != 2 {
			return fmt.Errorf("move: expected X Y")
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("move: bad x %q", args[0])
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("move: bad y %q", args[1])
		}
		t.pos = unsvg.Point{X: x, Y: y}.Quantize()
		t.logger.Debug("move", "to", t.pos)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}

// Run executes all commands read from r and stops at the first error.
func (t *Turtle) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		if err := t.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	return scanner.Err()
}
