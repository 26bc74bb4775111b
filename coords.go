package unsvg

import (
	"math"
)

// Subdivisions is the number of grid steps per unit that coordinates are snapped to.
const Subdivisions = 256

// Quantize snaps v to the nearest multiple of 1/256. Coordinates pass through Quantize before and after any arithmetic so that results do not depend on platform floating-point behaviour. Quantize is idempotent.
func Quantize(v float64) float64 {
	q := math.Round(v*Subdivisions) / Subdivisions
	if q == 0.0 {
		return 0.0 // no negative zero
	}
	return q
}

// NormalizeDirection returns the direction in degrees within [0,360).
func NormalizeDirection(direction int) int {
	return ((direction % 360) + 360) % 360
}

// Point is a coordinate pair. Y grows downwards.
type Point struct {
	X, Y float64
}

// Quantize returns the point with both coordinates snapped to the 1/256 grid.
func (p Point) Quantize() Point {
	return Point{Quantize(p.X), Quantize(p.Y)}
}

// IsQuantized returns true if both coordinates lie on the 1/256 grid.
func (p Point) IsQuantized() bool {
	return Quantize(p.X) == p.X && Quantize(p.Y) == p.Y
}

// Finite returns true if neither coordinate is NaN or infinite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return "(" + FormatFloat(p.X) + "," + FormatFloat(p.Y) + ")"
}

// EndCoordinates returns where a line from (x,y) ends given its direction and length. Directions are compass directions: 0 points up (towards negative Y) and angles increase clockwise. A negative length walks the opposite way. Input and output are quantized.
func EndCoordinates(x, y float64, direction int, length float64) (float64, float64) {
	x = Quantize(x)
	y = Quantize(y)

	// rotate so that 0 degrees points right, as for sin and cos
	theta := float64(NormalizeDirection(direction)-90) * math.Pi / 180.0
	sin, cos := math.Sincos(theta)
	return Quantize(x + cos*length), Quantize(y + sin*length)
}

// EndPoint is EndCoordinates for a Point.
func EndPoint(start Point, direction int, length float64) Point {
	x, y := EndCoordinates(start.X, start.Y, direction, length)
	return Point{x, y}
}
