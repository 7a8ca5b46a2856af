package geom

import (
	"math"
)

// Point is a float64 2D coordinate in screen space (y grows downward)
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Distance returns Euclidean distance to q
func (p Point) Distance(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// RotateAround rotates p about pivot by angle radians (relative)
// Positive angle turns clockwise on screen since y points down
func (p Point) RotateAround(pivot Point, angle float64) Point {
	return p.rotateAroundSinCos(pivot, math.Sin(angle), math.Cos(angle))
}

// rotateAroundSinCos shares one sin/cos pair across several points of a shape
func (p Point) rotateAroundSinCos(pivot Point, sin, cos float64) Point {
	tx := p.X - pivot.X
	ty := p.Y - pivot.Y
	return Point{
		X: tx*cos - ty*sin + pivot.X,
		Y: tx*sin + ty*cos + pivot.Y,
	}
}

// Equal reports whether both coordinates are within eps of q
func (p Point) Equal(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Finite reports whether both coordinates are neither NaN nor infinite
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
