package unsvg

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestQuantize(t *testing.T) {
	test.T(t, Quantize(0.0), 0.0)
	test.T(t, Quantize(1.0), 1.0)
	test.T(t, Quantize(0.5), 0.5)
	test.T(t, Quantize(1.0/256.0), 1.0/256.0)
	test.T(t, Quantize(0.001), 0.0)
	test.T(t, Quantize(0.003), 1.0/256.0)
	test.T(t, Quantize(-0.003), -1.0/256.0)
	test.T(t, Quantize(10.1), 2586.0/256.0)
	test.That(t, !math.Signbit(Quantize(-0.001)), "negative zero")
	test.That(t, math.IsNaN(Quantize(math.NaN())))
	test.That(t, math.IsInf(Quantize(math.Inf(1)), 1))
}

func TestQuantizeIdempotent(t *testing.T) {
	var tts = []float64{0.0, 1e-9, 0.1, -0.1, 1.0 / 3.0, 123.456789, -98765.4321, 1e9 + 0.3, math.Pi}
	for _, tt := range tts {
		q := Quantize(tt)
		test.T(t, Quantize(q), q, tt)
		test.T(t, math.Mod(q*Subdivisions, 1.0), 0.0, tt)
	}
}

func TestNormalizeDirection(t *testing.T) {
	test.T(t, NormalizeDirection(0), 0)
	test.T(t, NormalizeDirection(359), 359)
	test.T(t, NormalizeDirection(360), 0)
	test.T(t, NormalizeDirection(-90), 270)
	test.T(t, NormalizeDirection(-360), 0)
	test.T(t, NormalizeDirection(725), 5)
	test.T(t, NormalizeDirection(-725), 355)

	for d := -400; d <= 400; d += 37 {
		for k := -3; k <= 3; k++ {
			test.T(t, NormalizeDirection(d+k*360), NormalizeDirection(d), d, k)
		}
		n := NormalizeDirection(d)
		test.That(t, 0 <= n && n < 360, d)
	}
}

func TestEndCoordinates(t *testing.T) {
	var tts = []struct {
		x, y      float64
		direction int
		length    float64
		ex, ey    float64
	}{
		{0.0, 0.0, 0, 100.0, 0.0, -100.0},
		{0.0, 0.0, 90, 100.0, 100.0, 0.0},
		{0.0, 0.0, 180, 100.0, 0.0, 100.0},
		{0.0, 0.0, 270, 100.0, -100.0, 0.0},
		{0.0, 0.0, 360, 100.0, 0.0, -100.0},
		{0.0, 0.0, -90, 100.0, -100.0, 0.0},
		{50.0, 50.0, 90, 25.0, 75.0, 50.0},
		{50.0, 50.0, 90, -25.0, 25.0, 50.0},
		{50.0, 50.0, 45, 0.0, 50.0, 50.0},
		{10.0, 10.0, 30, 20.0, 20.0, 10.0 - 4434.0/256.0},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprintf("%v,%v,%v,%v", tt.x, tt.y, tt.direction, tt.length), func(t *testing.T) {
			x, y := EndCoordinates(tt.x, tt.y, tt.direction, tt.length)
			test.T(t, x, tt.ex)
			test.T(t, y, tt.ey)
		})
	}
}

func TestEndCoordinatesQuantized(t *testing.T) {
	p := Point{0.1, 0.2}
	for _, d := range []int{17, 133, 251} {
		p = EndPoint(p, d, 33.3)
		test.That(t, p.IsQuantized(), p)
	}
	test.That(t, !Point{0.1, 0.0}.IsQuantized())
}

func TestEndCoordinatesRepeatable(t *testing.T) {
	for d := -360; d <= 720; d += 7 {
		for _, length := range []float64{0.0, 1.0, 33.3, -12.5, 1e6} {
			x0, y0 := EndCoordinates(10.3, -4.7, d, length)
			for i := 0; i < 3; i++ {
				x, y := EndCoordinates(10.3, -4.7, d, length)
				test.T(t, math.Float64bits(x), math.Float64bits(x0), d, length)
				test.T(t, math.Float64bits(y), math.Float64bits(y0), d, length)
			}
		}
	}
}

func TestPoint(t *testing.T) {
	test.String(t, Point{1.5, -2.0}.String(), "(1.5,-2)")
	test.String(t, Point{1.0 / 256.0, 0.0}.String(), "(0.00390625,0)")
	test.T(t, Point{0.001, 0.999}.Quantize(), Point{0.0, 1.0})
	test.That(t, Point{1.0, 2.0}.Finite())
	test.That(t, !Point{math.NaN(), 2.0}.Finite())
	test.That(t, !Point{1.0, math.Inf(-1)}.Finite())
}
