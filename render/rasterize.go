package render

import (
	"math"

	"github.com/lixenwraith/vi-arrow/geom"
)

// PlotFunc receives each covered cell
type PlotFunc func(x, y int)

// Rect is a cell clip rectangle; Max is exclusive
type Rect struct {
	MinX, MinY, MaxX, MaxY int
}

// RectOf returns the clip rectangle of a width x height grid
func RectOf(width, height int) Rect {
	return Rect{MaxX: width, MaxY: height}
}

func (r Rect) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// span clamps the float interval [lo, hi] to the cell range [first, end) and floors it
// An empty result comes back as (1, 0)
func span(lo, hi float64, first, end int) (int, int) {
	lo = math.Max(math.Floor(lo), float64(first))
	hi = math.Min(math.Floor(hi), float64(end-1))
	if lo > hi {
		return 1, 0
	}
	return int(lo), int(hi)
}

// Line walks cells from (x0, y0) to (x1, y1) inclusive (Bresenham)
func Line(x0, y0, x1, y1 int, plot PlotFunc) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// ClipLine trims segment a-b to clip (Liang-Barsky)
// ok is false when the segment misses clip or has a non-finite coordinate
func ClipLine(a, b geom.Point, clip Rect) (geom.Point, geom.Point, bool) {
	if !a.Finite() || !b.Finite() || clip.Empty() {
		return a, b, false
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0
	bounds := [4][2]float64{
		{-dx, a.X - float64(clip.MinX)},
		{dx, float64(clip.MaxX) - a.X},
		{-dy, a.Y - float64(clip.MinY)},
		{dy, float64(clip.MaxY) - a.Y},
	}
	for _, pq := range bounds {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return geom.Point{X: a.X + t0*dx, Y: a.Y + t0*dy},
		geom.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}, true
}

// ClippedLine walks the cells of segment a-b that fall inside clip
func ClippedLine(a, b geom.Point, clip Rect, plot PlotFunc) {
	a, b, ok := ClipLine(a, b, clip)
	if !ok {
		return
	}
	// A clipped endpoint on the Max edge floors one cell outside
	Line(floor(a.X), floor(a.Y), floor(b.X), floor(b.Y), func(x, y int) {
		if clip.Contains(x, y) {
			plot(x, y)
		}
	})
}

// FillTriangle plots every cell of clip whose center lies inside the triangle, either winding
// A triangle smaller than one cell still plots the cell holding its centroid
func FillTriangle(p1, p2, p3 geom.Point, clip Rect, plot PlotFunc) {
	if !p1.Finite() || !p2.Finite() || !p3.Finite() || clip.Empty() {
		return
	}
	minX, maxX := span(math.Min(p1.X, math.Min(p2.X, p3.X)), math.Max(p1.X, math.Max(p2.X, p3.X)), clip.MinX, clip.MaxX)
	minY, maxY := span(math.Min(p1.Y, math.Min(p2.Y, p3.Y)), math.Max(p1.Y, math.Max(p2.Y, p3.Y)), clip.MinY, clip.MaxY)

	area := edge(p1, p2, p3)
	plotted := false
	if area != 0 {
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				c := geom.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
				w1 := edge(p2, p3, c)
				w2 := edge(p3, p1, c)
				w3 := edge(p1, p2, c)
				if (area > 0 && w1 >= 0 && w2 >= 0 && w3 >= 0) ||
					(area < 0 && w1 <= 0 && w2 <= 0 && w3 <= 0) {
					plot(x, y)
					plotted = true
				}
			}
		}
	}

	if !plotted {
		cx := floor((p1.X + p2.X + p3.X) / 3)
		cy := floor((p1.Y + p2.Y + p3.Y) / 3)
		if clip.Contains(cx, cy) {
			plot(cx, cy)
		}
	}
}

// edge is the signed parallelogram area of (a, b, c)
func edge(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// FillEllipse plots every cell of clip whose center lies inside the axis-aligned ellipse
// Degenerate or sub-cell ellipses plot the center cell
func FillEllipse(cx, cy, rx, ry float64, clip Rect, plot PlotFunc) {
	if !geom.Pt(cx, cy).Finite() || !geom.Pt(rx, ry).Finite() || clip.Empty() {
		return
	}

	plotted := false
	if rx > 0 && ry > 0 {
		minX, maxX := span(cx-rx, cx+rx, clip.MinX, clip.MaxX)
		minY, maxY := span(cy-ry, cy+ry, clip.MinY, clip.MaxY)
		for y := minY; y <= maxY; y++ {
			ny := (float64(y) + 0.5 - cy) / ry
			for x := minX; x <= maxX; x++ {
				nx := (float64(x) + 0.5 - cx) / rx
				if nx*nx+ny*ny <= 1 {
					plot(x, y)
					plotted = true
				}
			}
		}
	}
	if !plotted {
		x, y := floor(cx), floor(cy)
		if clip.Contains(x, y) {
			plot(x, y)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func floor(v float64) int {
	return int(math.Floor(v))
}
