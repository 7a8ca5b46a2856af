package render

import (
	"math"

	"github.com/lixenwraith/vi-arrow/arrow"
	"github.com/lixenwraith/vi-arrow/geom"
)

// DefaultAspectY compensates for terminal cells being about twice as tall as wide
const DefaultAspectY = 0.5

// Style sets runes and colors for each arrow part
// ShaftRune 0 picks a box-drawing rune from the shaft direction
type Style struct {
	ShaftRune   rune
	ShaftColor  RGB
	HeadRune    rune
	HeadColor   RGB
	MarkerRune  rune
	MarkerColor RGB
	Alpha       float64
}

// DefaultStyle returns the stock arrow style
func DefaultStyle() Style {
	return Style{
		ShaftRune:   0,
		ShaftColor:  RgbShaft,
		HeadRune:    '█',
		HeadColor:   RgbHead,
		MarkerRune:  '●',
		MarkerColor: RgbMarker,
		Alpha:       1.0,
	}
}

// Canvas draws arrows into a RenderBuffer
// World x maps 1:1 to columns, world y is multiplied by AspectY
type Canvas struct {
	buf     *RenderBuffer
	style   Style
	AspectY float64
}

var _ arrow.Target = (*Canvas)(nil)

// NewCanvas wraps buf with the given style
func NewCanvas(buf *RenderBuffer, style Style) *Canvas {
	return &Canvas{
		buf:     buf,
		style:   style,
		AspectY: DefaultAspectY,
	}
}

// WithStyle returns a canvas sharing the buffer but drawing with style
func (c *Canvas) WithStyle(style Style) *Canvas {
	return &Canvas{buf: c.buf, style: style, AspectY: c.AspectY}
}

func (c *Canvas) Buffer() *RenderBuffer { return c.buf }

func (c *Canvas) clip() Rect { return RectOf(c.buf.Width(), c.buf.Height()) }

// ToCell maps a world point into fractional cell coordinates
func (c *Canvas) ToCell(p geom.Point) geom.Point {
	return geom.Point{X: p.X, Y: p.Y * c.AspectY}
}

// FromCell maps cell coordinates back to world space
func (c *Canvas) FromCell(x, y float64) geom.Point {
	if c.AspectY == 0 {
		return geom.Point{X: x}
	}
	return geom.Point{X: x, Y: y / c.AspectY}
}

func (c *Canvas) put(x, y int, r rune, fg RGB, attrs Attr) {
	c.buf.Set(x, y, r, fg, RGBBlack, BlendAlphaFg, c.style.Alpha, attrs)
}

// StrokeLine draws the shaft
func (c *Canvas) StrokeLine(l geom.Line) {
	if !l.Finite() {
		return
	}
	a := c.ToCell(l.A)
	b := c.ToCell(l.B)
	r := c.style.ShaftRune
	if r == 0 {
		r = shaftRune(math.Atan2(b.Y-a.Y, b.X-a.X))
	}
	ClippedLine(a, b, c.clip(), func(x, y int) {
		c.put(x, y, r, c.style.ShaftColor, AttrNone)
	})
}

// FillTriangle draws the head
func (c *Canvas) FillTriangle(t geom.Triangle) {
	if !t.Finite() {
		return
	}
	FillTriangle(c.ToCell(t.P1), c.ToCell(t.P2), c.ToCell(t.P3), c.clip(), func(x, y int) {
		c.put(x, y, c.style.HeadRune, c.style.HeadColor, AttrBold)
	})
}

// FillPoint draws the degenerate marker; radius is in world units
func (c *Canvas) FillPoint(p geom.Point, radius float64) {
	if !p.Finite() || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return
	}
	cp := c.ToCell(p)
	FillEllipse(cp.X, cp.Y, radius, radius*c.AspectY, c.clip(), func(x, y int) {
		c.put(x, y, c.style.MarkerRune, c.style.MarkerColor, AttrNone)
	})
}

// shaftRune picks a box-drawing rune for a direction in cell space (y down)
func shaftRune(angle float64) rune {
	// Fold to [0, π): a line and its reverse share a rune
	if angle < 0 {
		angle += math.Pi
	}
	if angle >= math.Pi {
		angle -= math.Pi
	}
	switch {
	case angle < math.Pi/8 || angle >= 7*math.Pi/8:
		return '─'
	case angle < 3*math.Pi/8:
		return '╲'
	case angle < 5*math.Pi/8:
		return '│'
	default:
		return '╱'
	}
}
