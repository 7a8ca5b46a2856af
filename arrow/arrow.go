package arrow

import (
	"github.com/lixenwraith/vi-arrow/geom"
)

// Arrow is a shaft from base to head with a triangular head centered on head
// base, head and basePoint are caches of line and are only written by commit
type Arrow struct {
	target Target
	opts   Options

	line     geom.Line
	triangle geom.Triangle

	base      geom.Point
	head      geom.Point
	basePoint geom.Point

	// Last well-defined direction, survives a collapse to zero length
	angle float64
}

// New creates an arrow at base pointing along angle with the given length
// The head is sized at HeadRatio*length and oriented along the shaft
func New(target Target, base geom.Point, angle, length float64, opts ...Option) *Arrow {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	a := &Arrow{
		target: target,
		opts:   o,
		angle:  geom.WrapAngle(angle),
	}
	a.line = geom.LineFrom(base, angle, length)
	a.triangle = geom.EquilateralAround(a.line.B, length*o.HeadRatio, angle)
	a.commit()
	return a
}

// commit re-derives cached points from line and re-centers the head
// Every mutator ends here
func (a *Arrow) commit() {
	a.base = a.line.PointA()
	a.head = a.line.PointB()
	a.basePoint = a.base
	if a.base != a.head {
		a.angle = a.line.Angle()
	}
	a.triangle = a.triangle.CenterOn(a.head.X, a.head.Y)
}

// Length returns the distance between the cached base and head
func (a *Arrow) Length() float64 {
	return a.head.Distance(a.base)
}

// Angle returns the shaft direction; a zero-length arrow reports its last direction
func (a *Arrow) Angle() float64 {
	return a.angle
}

func (a *Arrow) Base() geom.Point        { return a.base }
func (a *Arrow) Head() geom.Point        { return a.head }
func (a *Arrow) Line() geom.Line         { return a.line }
func (a *Arrow) Triangle() geom.Triangle { return a.triangle }
func (a *Arrow) Options() Options        { return a.opts }
func (a *Arrow) SetTarget(target Target) { a.target = target }

// rotateLine turns the shaft about base; the head follows in position only
func (a *Arrow) rotateLine(angle float64) {
	a.line = a.line.RotateAround(a.base.X, a.base.Y, angle)
	// Overwritten by commit unless the shaft has zero length
	a.angle = geom.WrapAngle(a.angle + angle)
	a.commit()
}

// rotateTriangle turns the head about its own center
func (a *Arrow) rotateTriangle(angle float64) {
	a.triangle = a.triangle.RotateAround(a.head.X, a.head.Y, angle)
}

// Rotate turns the whole arrow about its base by a relative angle
func (a *Arrow) Rotate(angle float64) {
	a.rotateLine(angle)
	a.rotateTriangle(angle)
}

// SetAngle points the arrow along an absolute angle, keeping base and length
func (a *Arrow) SetAngle(angle float64) {
	a.Rotate(angle - a.Angle())
}

// SetLength moves the head to distance length along the current angle
// The head keeps its size unless ResizeHeadOnLengthChange is set
func (a *Arrow) SetLength(length float64) {
	angle := a.Angle()
	a.line = geom.LineFrom(a.base, angle, length)
	if a.opts.ResizeHeadOnLengthChange {
		a.triangle = geom.EquilateralAround(a.line.B, length*a.opts.HeadRatio, angle)
	}
	a.commit()
}

// MoveBaseTo translates the arrow so its base lands on (x, y)
func (a *Arrow) MoveBaseTo(x, y float64) {
	a.line = a.line.Offset(x-a.base.X, y-a.base.Y)
	a.commit()
}

// Offset translates the arrow by (dx, dy)
func (a *Arrow) Offset(dx, dy float64) {
	a.line = a.line.Offset(dx, dy)
	a.commit()
}

// Degenerate reports whether the arrow is too short to draw as shaft and head
func (a *Arrow) Degenerate() bool {
	return a.Length() < a.opts.MinVisibleLength
}

// Stroke draws the arrow onto its target
// A degenerate arrow draws a point marker at base instead of shaft and head
func (a *Arrow) Stroke() {
	if a.target == nil {
		return
	}
	if a.Degenerate() {
		a.target.FillPoint(a.basePoint, a.opts.MarkerRadius)
		return
	}
	a.target.StrokeLine(a.line)
	a.target.FillTriangle(a.triangle)
}
