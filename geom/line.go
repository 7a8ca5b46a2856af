package geom

import (
	"math"
)

// Line is a directed segment from A (start) to B (end)
type Line struct {
	A, B Point
}

// NewLine builds a segment from four coordinates
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{A: Point{x1, y1}, B: Point{x2, y2}}
}

// LineFrom builds a segment of the given length starting at origin along angle
func LineFrom(origin Point, angle, length float64) Line {
	return Line{
		A: origin,
		B: Point{
			X: origin.X + length*math.Cos(angle),
			Y: origin.Y + length*math.Sin(angle),
		},
	}
}

func (l Line) PointA() Point { return l.A }
func (l Line) PointB() Point { return l.B }

// Angle returns atan2 of the segment direction, in (-π, π]
// A zero-length segment returns 0
func (l Line) Angle() float64 {
	return math.Atan2(l.B.Y-l.A.Y, l.B.X-l.A.X)
}

func (l Line) Length() float64 {
	return l.A.Distance(l.B)
}

func (l Line) Midpoint() Point {
	return Point{(l.A.X + l.B.X) / 2, (l.A.Y + l.B.Y) / 2}
}

// RotateAround rotates both endpoints about (x, y) by a relative angle
func (l Line) RotateAround(x, y, angle float64) Line {
	pivot := Point{x, y}
	sin, cos := math.Sincos(angle)
	return Line{
		A: l.A.rotateAroundSinCos(pivot, sin, cos),
		B: l.B.rotateAroundSinCos(pivot, sin, cos),
	}
}

// Offset translates both endpoints by (dx, dy)
func (l Line) Offset(dx, dy float64) Line {
	d := Point{dx, dy}
	return Line{A: l.A.Add(d), B: l.B.Add(d)}
}

func (l Line) Finite() bool {
	return l.A.Finite() && l.B.Finite()
}
