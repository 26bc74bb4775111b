package unsvg

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrIndexOutOfRange is returned when a palette index is outside [0,16).
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrColorNotFound is returned when a color or color name is not in the palette.
var ErrColorNotFound = errors.New("color not found")

// Color is an opaque RGB color. It implements color.Color.
type Color struct {
	R, G, B uint8
}

// RGB returns a color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// RGBA implements color.Color, the color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the CSS hexadecimal notation, e.g. #ff0000.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colors are the 16 colors of the Logo language, indexed by ColorName.
var Colors = [16]Color{
	{0, 0, 0},       // Black
	{0, 0, 255},     // Blue
	{0, 255, 255},   // Cyan
	{0, 255, 0},     // Green
	{255, 0, 0},     // Red
	{255, 0, 255},   // Magenta
	{255, 255, 0},   // Yellow
	{255, 255, 255}, // White
	{165, 42, 42},   // Brown
	{210, 180, 140}, // Tan
	{34, 139, 34},   // Forest
	{127, 255, 212}, // Aqua
	{250, 128, 114}, // Salmon
	{128, 0, 128},   // Purple
	{255, 165, 0},   // Orange
	{128, 128, 128}, // Grey
}

// ColorName is a symbolic index into Colors.
type ColorName uint8

// Palette entries.
const (
	Black ColorName = iota
	Blue
	Cyan
	Green
	Red
	Magenta
	Yellow
	White
	Brown
	Tan
	Forest
	Aqua
	Salmon
	Purple
	Orange
	Grey
)

var colorNames = [16]string{
	"Black", "Blue", "Cyan", "Green", "Red", "Magenta", "Yellow", "White",
	"Brown", "Tan", "Forest", "Aqua", "Salmon", "Purple", "Orange", "Grey",
}

// ColorNameFromIndex returns the palette entry at index i.
func ColorNameFromIndex(i int) (ColorName, error) {
	if i < 0 || len(Colors) <= i {
		return 0, fmt.Errorf("palette index %d: %w", i, ErrIndexOutOfRange)
	}
	return ColorName(i), nil
}

// ColorNameOf returns the palette entry that has exactly color c.
func ColorNameOf(c Color) (ColorName, error) {
	for i, col := range Colors {
		if col == c {
			return ColorName(i), nil
		}
	}
	return 0, fmt.Errorf("%v: %w", c, ErrColorNotFound)
}

// ParseColorName parses a palette name (case-insensitive) or a decimal palette index.
func ParseColorName(s string) (ColorName, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return ColorNameFromIndex(i)
	}
	for i, name := range colorNames {
		if strings.EqualFold(name, s) {
			return ColorName(i), nil
		}
	}
	if strings.EqualFold(s, "gray") {
		return Grey, nil
	}
	return 0, fmt.Errorf("%q: %w", s, ErrColorNotFound)
}

// ParseColor parses a palette name, a palette index, or a CSS hexadecimal color such as #f00 or #ff0000.
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("bad color %q: %w", s, err)
		}
		return RGB(c.RGB255()), nil
	}
	name, err := ParseColorName(s)
	if err != nil {
		return Color{}, err
	}
	return name.Color(), nil
}

// Nearest returns the palette entry that is perceptually closest to c, using the CIE L*a*b* distance. Semi-transparent colors are compared by their unpremultiplied color, fully transparent colors map to Black.
func Nearest(c color.Color) ColorName {
	if col, ok := c.(Color); ok {
		if name, err := ColorNameOf(col); err == nil {
			return name
		}
	}

	target, ok := colorful.MakeColor(c)
	if !ok {
		return Black
	}
	best, bestDist := Black, -1.0
	for i, col := range Colors {
		cf, _ := colorful.MakeColor(col)
		if dist := target.DistanceLab(cf); bestDist < 0.0 || dist < bestDist {
			best, bestDist = ColorName(i), dist
		}
	}
	return best
}

// Index returns the palette index.
func (name ColorName) Index() int {
	return int(name)
}

// Color returns the palette color, it panics for values outside the palette.
func (name ColorName) Color() Color {
	return Colors[name]
}

func (name ColorName) String() string {
	if int(name) < len(colorNames) {
		return colorNames[name]
	}
	return "ColorName(" + strconv.Itoa(int(name)) + ")"
}
