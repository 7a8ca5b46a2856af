package geom

import (
	"math"
)

// sqrt3Half is the height of an equilateral triangle with unit side
const sqrt3Half = 0.8660254037844386

// Triangle is a filled triangle given by three vertices
type Triangle struct {
	P1, P2, P3 Point
}

// BuildEquilateral returns an equilateral triangle with side length side
// The apex P1 sits at (x, y) with the base edge below it, so the triangle points up (-π/2)
func BuildEquilateral(x, y, side float64) Triangle {
	h := side * sqrt3Half
	return Triangle{
		P1: Point{x, y},
		P2: Point{x + side/2, y + h},
		P3: Point{x - side/2, y + h},
	}
}

// EquilateralAround returns an equilateral triangle centered on c with its apex pointing along angle
func EquilateralAround(c Point, side, angle float64) Triangle {
	t := BuildEquilateral(0, 0, side).CenterOn(c.X, c.Y)
	// Built pointing up; turn from -π/2 to the requested direction
	return t.RotateAround(c.X, c.Y, angle+math.Pi/2)
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.P1, t.P2, t.P3}
}

// Centroid returns the mean of the three vertices
func (t Triangle) Centroid() Point {
	return Point{
		X: (t.P1.X + t.P2.X + t.P3.X) / 3,
		Y: (t.P1.Y + t.P2.Y + t.P3.Y) / 3,
	}
}

// CenterOn moves the triangle so its centroid lands on (x, y), size and orientation kept
func (t Triangle) CenterOn(x, y float64) Triangle {
	c := t.Centroid()
	return t.Offset(x-c.X, y-c.Y)
}

func (t Triangle) Offset(dx, dy float64) Triangle {
	d := Point{dx, dy}
	return Triangle{t.P1.Add(d), t.P2.Add(d), t.P3.Add(d)}
}

// RotateAround rotates all vertices about (x, y) by a relative angle
func (t Triangle) RotateAround(x, y, angle float64) Triangle {
	pivot := Point{x, y}
	sin, cos := math.Sincos(angle)
	return Triangle{
		P1: t.P1.rotateAroundSinCos(pivot, sin, cos),
		P2: t.P2.rotateAroundSinCos(pivot, sin, cos),
		P3: t.P3.rotateAroundSinCos(pivot, sin, cos),
	}
}

// Side returns the length of edge P1-P2, the side length of an equilateral triangle
func (t Triangle) Side() float64 {
	return t.P1.Distance(t.P2)
}

// Bounds returns the axis-aligned bounding box as min and max corners
func (t Triangle) Bounds() (lo, hi Point) {
	lo = Point{
		X: math.Min(t.P1.X, math.Min(t.P2.X, t.P3.X)),
		Y: math.Min(t.P1.Y, math.Min(t.P2.Y, t.P3.Y)),
	}
	hi = Point{
		X: math.Max(t.P1.X, math.Max(t.P2.X, t.P3.X)),
		Y: math.Max(t.P1.Y, math.Max(t.P2.Y, t.P3.Y)),
	}
	return lo, hi
}

func (t Triangle) Finite() bool {
	return t.P1.Finite() && t.P2.Finite() && t.P3.Finite()
}
