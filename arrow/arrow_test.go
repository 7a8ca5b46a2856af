package arrow

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-arrow/geom"
)

const eps = 1e-9

// drawCall records one Target invocation
type drawCall struct {
	op     string
	line   geom.Line
	tri    geom.Triangle
	point  geom.Point
	radius float64
}

// recorder is a Target that keeps every call in order
type recorder struct {
	calls []drawCall
}

func (r *recorder) StrokeLine(l geom.Line) {
	r.calls = append(r.calls, drawCall{op: "line", line: l})
}

func (r *recorder) FillTriangle(t geom.Triangle) {
	r.calls = append(r.calls, drawCall{op: "triangle", tri: t})
}

func (r *recorder) FillPoint(p geom.Point, radius float64) {
	r.calls = append(r.calls, drawCall{op: "point", point: p, radius: radius})
}

func (r *recorder) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

func sameAngle(a, b float64) bool {
	return math.Abs(geom.AngleDelta(a, b)) < 1e-9
}

// assertConsistent checks the cached-state invariants after a mutation
func assertConsistent(t *testing.T, a *Arrow) {
	t.Helper()
	if a.Base() != a.Line().A {
		t.Errorf("Expected base %+v to equal line start %+v", a.Base(), a.Line().A)
	}
	if a.Head() != a.Line().B {
		t.Errorf("Expected head %+v to equal line end %+v", a.Head(), a.Line().B)
	}
	if a.basePoint != a.base {
		t.Errorf("Expected basePoint %+v to equal base %+v", a.basePoint, a.base)
	}
	if c := a.Triangle().Centroid(); !c.Equal(a.Head(), 1e-9) {
		t.Errorf("Expected head triangle centered on %+v, got %+v", a.Head(), c)
	}
}

func TestNewPointsAlongAngle(t *testing.T) {
	tests := []struct {
		name   string
		base   geom.Point
		angle  float64
		length float64
	}{
		{"East", geom.Pt(0, 0), 0, 10},
		{"Down", geom.Pt(5, 5), math.Pi / 2, 7},
		{"Up", geom.Pt(-3, 2), -math.Pi / 2, 12},
		{"Diagonal", geom.Pt(1, 1), 2.2, 3.5},
		{"Unwrapped input", geom.Pt(0, 0), 3 * math.Pi, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(nil, tt.base, tt.angle, tt.length)

			if math.Abs(a.Length()-tt.length) > eps {
				t.Errorf("Expected length %f, got %f", tt.length, a.Length())
			}
			if !sameAngle(a.Angle(), tt.angle) {
				t.Errorf("Expected angle %f, got %f", tt.angle, a.Angle())
			}
			if a.Base() != tt.base {
				t.Errorf("Expected base %+v, got %+v", tt.base, a.Base())
			}
			assertConsistent(t, a)
		})
	}
}

func TestNewEastScenario(t *testing.T) {
	a := New(nil, geom.Pt(0, 0), 0, 10)
	if !a.Head().Equal(geom.Pt(10, 0), eps) {
		t.Errorf("Expected head (10,0), got %+v", a.Head())
	}
	if math.Abs(a.Length()-10) > eps {
		t.Errorf("Expected length 10, got %f", a.Length())
	}
}

func TestNewHeadSizeAndOrientation(t *testing.T) {
	a := New(nil, geom.Pt(0, 0), 1.0, 9)
	tri := a.Triangle()

	if math.Abs(tri.Side()-3) > eps {
		t.Errorf("Expected head side 3 (length/3), got %f", tri.Side())
	}
	c := tri.Centroid()
	apexDir := math.Atan2(tri.P1.Y-c.Y, tri.P1.X-c.X)
	if !sameAngle(apexDir, 1.0) {
		t.Errorf("Expected apex along shaft (1.0), got %f", apexDir)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	a := New(nil, geom.Pt(4, -2), 0.3, 20)
	startAngle := a.Angle()
	startBase := a.Base()
	startTri := a.Triangle()

	a.Rotate(1.1)
	assertConsistent(t, a)
	if !sameAngle(a.Angle(), 1.4) {
		t.Errorf("Expected angle 1.4 after rotate, got %f", a.Angle())
	}

	a.Rotate(-1.1)
	assertConsistent(t, a)

	if !sameAngle(a.Angle(), startAngle) {
		t.Errorf("Expected angle %f restored, got %f", startAngle, a.Angle())
	}
	if !a.Base().Equal(startBase, eps) {
		t.Errorf("Expected base %+v unchanged, got %+v", startBase, a.Base())
	}
	if math.Abs(a.Length()-20) > 1e-9 {
		t.Errorf("Expected length 20 unchanged, got %f", a.Length())
	}
	for i, p := range a.Triangle().Points() {
		if !p.Equal(startTri.Points()[i], 1e-9) {
			t.Errorf("Head vertex %d drifted: %+v vs %+v", i, p, startTri.Points()[i])
		}
	}
}

func TestRotateKeepsHeadAligned(t *testing.T) {
	a := New(nil, geom.Pt(0, 0), 0, 30)
	for i := 0; i < 50; i++ {
		a.Rotate(0.37)
	}
	tri := a.Triangle()
	c := tri.Centroid()
	apexDir := math.Atan2(tri.P1.Y-c.Y, tri.P1.X-c.X)
	if !sameAngle(apexDir, a.Angle()) {
		t.Errorf("Head drifted from shaft: apex %f, shaft %f", apexDir, a.Angle())
	}
}

func TestSetAngleIdempotent(t *testing.T) {
	a := New(nil, geom.Pt(10, 10), 0, 15)

	a.SetAngle(-2.0)
	first := a.Angle()
	firstHead := a.Head()

	a.SetAngle(-2.0)
	assertConsistent(t, a)

	if !sameAngle(a.Angle(), first) || !sameAngle(first, -2.0) {
		t.Errorf("Expected angle -2.0 twice, got %f then %f", first, a.Angle())
	}
	if !a.Head().Equal(firstHead, 1e-9) {
		t.Errorf("Expected head %+v stable, got %+v", firstHead, a.Head())
	}
	if math.Abs(a.Length()-15) > 1e-9 {
		t.Errorf("Expected length 15, got %f", a.Length())
	}
}

func TestSetLength(t *testing.T) {
	a := New(nil, geom.Pt(2, 3), 0.8, 10)
	side := a.Triangle().Side()

	a.SetLength(25)
	assertConsistent(t, a)

	if math.Abs(a.Length()-25) > 1e-9 {
		t.Errorf("Expected length 25, got %f", a.Length())
	}
	if !sameAngle(a.Angle(), 0.8) {
		t.Errorf("Expected angle 0.8, got %f", a.Angle())
	}
	if a.Base() != geom.Pt(2, 3) {
		t.Errorf("Expected base (2,3), got %+v", a.Base())
	}
	if math.Abs(a.Triangle().Side()-side) > 1e-9 {
		t.Errorf("Expected head side %f kept, got %f", side, a.Triangle().Side())
	}
}

func TestSetLengthResizesHeadWhenEnabled(t *testing.T) {
	a := New(nil, geom.Pt(0, 0), -1.2, 9, WithResizeHeadOnLengthChange(true))

	a.SetLength(30)
	assertConsistent(t, a)

	if math.Abs(a.Triangle().Side()-10) > 1e-9 {
		t.Errorf("Expected head side 10, got %f", a.Triangle().Side())
	}
	tri := a.Triangle()
	c := tri.Centroid()
	if apexDir := math.Atan2(tri.P1.Y-c.Y, tri.P1.X-c.X); !sameAngle(apexDir, -1.2) {
		t.Errorf("Expected resized head along shaft, got %f", apexDir)
	}
}

func TestSetLengthZeroKeepsDirection(t *testing.T) {
	a := New(nil, geom.Pt(1, 1), 2.0, 10)

	a.SetLength(0)
	assertConsistent(t, a)
	if a.Length() != 0 {
		t.Errorf("Expected zero length, got %f", a.Length())
	}
	if !sameAngle(a.Angle(), 2.0) {
		t.Errorf("Expected direction 2.0 remembered, got %f", a.Angle())
	}

	// Rotation while collapsed still advances the direction
	a.Rotate(0.5)
	a.SetLength(4)
	if !sameAngle(a.Angle(), 2.5) {
		t.Errorf("Expected direction 2.5 after regrow, got %f", a.Angle())
	}
	if math.Abs(a.Length()-4) > 1e-9 {
		t.Errorf("Expected length 4, got %f", a.Length())
	}
}

func TestMoveBaseTo(t *testing.T) {
	a := New(nil, geom.Pt(0, 0), 0.4, 12)
	a.MoveBaseTo(-7.5, 33.25)
	assertConsistent(t, a)

	if a.Base() != geom.Pt(-7.5, 33.25) {
		t.Errorf("Expected base exactly (-7.5,33.25), got %+v", a.Base())
	}
	if math.Abs(a.Length()-12) > 1e-9 {
		t.Errorf("Expected length 12, got %f", a.Length())
	}
	if !sameAngle(a.Angle(), 0.4) {
		t.Errorf("Expected angle 0.4, got %f", a.Angle())
	}
}

func TestOffset(t *testing.T) {
	a := New(nil, geom.Pt(1, 2), -0.7, 8)
	base, head := a.Base(), a.Head()

	a.Offset(3, -4)
	assertConsistent(t, a)

	if !a.Base().Equal(base.Add(geom.Pt(3, -4)), eps) {
		t.Errorf("Expected base moved by (3,-4), got %+v", a.Base())
	}
	if !a.Head().Equal(head.Add(geom.Pt(3, -4)), eps) {
		t.Errorf("Expected head moved by (3,-4), got %+v", a.Head())
	}
}

func TestStrokeDrawsShaftThenHead(t *testing.T) {
	rec := &recorder{}
	a := New(rec, geom.Pt(0, 0), 0, 10)

	a.Stroke()

	ops := rec.ops()
	if len(ops) != 2 || ops[0] != "line" || ops[1] != "triangle" {
		t.Fatalf("Expected [line triangle], got %v", ops)
	}
	if rec.calls[0].line != a.Line() {
		t.Errorf("Expected shaft %+v, got %+v", a.Line(), rec.calls[0].line)
	}
	if rec.calls[1].tri != a.Triangle() {
		t.Errorf("Expected head %+v, got %+v", a.Triangle(), rec.calls[1].tri)
	}
}

func TestStrokeDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(rec *recorder) *Arrow
		base  geom.Point
	}{
		{
			name: "Short construction",
			setup: func(rec *recorder) *Arrow {
				return New(rec, geom.Pt(3, 4), 1, 0.5)
			},
			base: geom.Pt(3, 4),
		},
		{
			name: "Collapsed by SetLength",
			setup: func(rec *recorder) *Arrow {
				a := New(rec, geom.Pt(-2, 8), 0.2, 40)
				a.SetLength(0)
				return a
			},
			base: geom.Pt(-2, 8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			a := tt.setup(rec)

			if !a.Degenerate() {
				t.Fatal("Expected degenerate arrow")
			}
			a.Stroke()

			if len(rec.calls) != 1 || rec.calls[0].op != "point" {
				t.Fatalf("Expected a single point marker, got %v", rec.ops())
			}
			if rec.calls[0].point != tt.base {
				t.Errorf("Expected marker at %+v, got %+v", tt.base, rec.calls[0].point)
			}
			if rec.calls[0].radius != DefaultMarkerRadius {
				t.Errorf("Expected radius %f, got %f", DefaultMarkerRadius, rec.calls[0].radius)
			}
		})
	}
}

func TestStrokeOptions(t *testing.T) {
	rec := &recorder{}
	a := New(rec, geom.Pt(0, 0), 0, 3, WithMinVisibleLength(4), WithMarkerRadius(1.5))

	a.Stroke()
	if len(rec.calls) != 1 || rec.calls[0].radius != 1.5 {
		t.Fatalf("Expected marker radius 1.5 below threshold 4, got %+v", rec.calls)
	}
}

func TestWithOptionsReplacesBlock(t *testing.T) {
	o := Options{MarkerRadius: 2, MinVisibleLength: 0.1, HeadRatio: 0.5}
	a := New(nil, geom.Pt(0, 0), 0, 10, WithOptions(o))

	if a.Options() != o {
		t.Errorf("Expected options %+v, got %+v", o, a.Options())
	}
	if math.Abs(a.Triangle().Side()-5) > 1e-9 {
		t.Errorf("Expected head side 5, got %f", a.Triangle().Side())
	}
}

func TestStrokeNilTarget(t *testing.T) {
	a := New(nil, geom.Pt(0, 0), 0, 10)
	// Must not panic
	a.Stroke()

	rec := &recorder{}
	a.SetTarget(rec)
	a.Stroke()
	if len(rec.calls) != 2 {
		t.Errorf("Expected 2 calls after SetTarget, got %d", len(rec.calls))
	}
}
