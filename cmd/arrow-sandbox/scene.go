package main

import (
	"fmt"
	"math"

	"github.com/golang/glog"

	"github.com/lixenwraith/vi-arrow/arrow"
	"github.com/lixenwraith/vi-arrow/config"
	"github.com/lixenwraith/vi-arrow/geom"
	"github.com/lixenwraith/vi-arrow/render"
)

const (
	// sensorRange is the distance at which an obstacle starts to register
	sensorRange = 30.0
	// velocityGain is how quickly velocity chases the heading, per second
	velocityGain = 2.0
	// velocityScale maps speed onto velocity arrow length
	velocityScale = 0.6
)

// tint colors one arrow's parts
type tint struct {
	shaft, head, marker render.RGB
}

func solid(c render.RGB) tint { return tint{c, c, c} }

// surface hands out draw targets in a given tint
// Terminal and PNG outputs both implement it
type surface interface {
	target(t tint) arrow.Target
	label(p geom.Point, text string)
}

type action int

const (
	actionNone action = iota
	actionQuit
	actionRotateLeft
	actionRotateRight
	actionShorten
	actionLengthen
	actionMoveLeft
	actionMoveRight
	actionMoveUp
	actionMoveDown
	actionCollapse
	actionToggleResize
)

// obstacle orbits the scene center, bobbing radially
type obstacle struct {
	radius float64
	bob    float64
	speed  float64 // rad/s
	phase  float64
	pos    geom.Point
}

// indicator points from the ship toward one obstacle
type indicator struct {
	arrow     *arrow.Arrow
	closeness float64
}

type scene struct {
	cfg        *config.Config
	opts       arrow.Options
	style      render.Style
	width      float64
	height     float64
	elapsed    float64
	ship       *arrow.Arrow
	velocity   *arrow.Arrow
	vel        geom.Point
	obstacles  []obstacle
	fan        []indicator
	lastLength float64
}

func newScene(cfg *config.Config, width, height float64) (*scene, error) {
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	s := &scene{
		cfg:    cfg,
		opts:   cfg.ArrowOptions(),
		style:  style,
		width:  width,
		height: height,
	}

	center := s.center()
	s.ship = arrow.New(nil, center, cfg.Angle(), cfg.Arrow.Length, arrow.WithOptions(s.opts))
	s.lastLength = cfg.Arrow.Length

	vo := s.opts
	vo.ResizeHeadOnLengthChange = true
	s.velocity = arrow.New(nil, center, cfg.Angle(), 0, arrow.WithOptions(vo))

	// Obstacles spread evenly around the center on staggered orbits
	n := 5
	for i := 0; i < n; i++ {
		s.obstacles = append(s.obstacles, obstacle{
			radius: 12 + 4*float64(i),
			bob:    6,
			speed:  0.15 + 0.07*float64(i),
			phase:  2 * math.Pi * float64(i) / float64(n),
		})
		// Head scales with closeness
		s.fan = append(s.fan, indicator{
			arrow: arrow.New(nil, center, 0, cfg.Arrow.Length, arrow.WithOptions(vo)),
		})
	}

	s.update(0)
	return s, nil
}

func (s *scene) center() geom.Point {
	return geom.Pt(s.width/2, s.height/2)
}

// resize keeps the ship at the same relative position in the new extent
func (s *scene) resize(width, height float64) {
	if s.width > 0 && s.height > 0 {
		b := s.ship.Base()
		s.moveShip(b.X*width/s.width, b.Y*height/s.height)
	}
	s.width, s.height = width, height
}

func (s *scene) moveShip(x, y float64) {
	s.ship.MoveBaseTo(x, y)
	s.velocity.MoveBaseTo(x, y)
	for _, ind := range s.fan {
		ind.arrow.MoveBaseTo(x, y)
	}
}

// apply performs a key action; it reports false when the sandbox should exit
func (s *scene) apply(a action) bool {
	step := s.cfg.Sandbox.MoveStep
	b := s.ship.Base()

	switch a {
	case actionQuit:
		return false
	case actionRotateLeft:
		s.ship.Rotate(-s.cfg.RotateStep())
	case actionRotateRight:
		s.ship.Rotate(s.cfg.RotateStep())
	case actionShorten:
		s.ship.SetLength(math.Max(0, s.ship.Length()-s.cfg.Sandbox.LengthStep))
	case actionLengthen:
		s.ship.SetLength(s.ship.Length() + s.cfg.Sandbox.LengthStep)
	case actionMoveLeft:
		s.moveShip(b.X-step, b.Y)
	case actionMoveRight:
		s.moveShip(b.X+step, b.Y)
	case actionMoveUp:
		s.moveShip(b.X, b.Y-step)
	case actionMoveDown:
		s.moveShip(b.X, b.Y+step)
	case actionCollapse:
		if s.ship.Length() > 0 {
			s.lastLength = s.ship.Length()
			s.ship.SetLength(0)
		} else {
			s.ship.SetLength(s.lastLength)
		}
	case actionToggleResize:
		s.opts.ResizeHeadOnLengthChange = !s.opts.ResizeHeadOnLengthChange
		// Options are fixed at construction; rebuild in place
		// A collapsed ship is rebuilt at its restore length so the head keeps its size
		length := s.ship.Length()
		if length == 0 {
			s.ship = arrow.New(nil, b, s.ship.Angle(), s.lastLength, arrow.WithOptions(s.opts))
			s.ship.SetLength(0)
		} else {
			s.ship = arrow.New(nil, b, s.ship.Angle(), length, arrow.WithOptions(s.opts))
		}
		glog.V(1).Infof("resize head: %v", s.opts.ResizeHeadOnLengthChange)
	}
	return true
}

// update advances obstacles and the derived arrows by dt seconds
func (s *scene) update(dt float64) {
	s.elapsed += dt
	c := s.center()
	base := s.ship.Base()

	// Velocity chases heading*length, lagging behind rotation
	want := geom.LineFrom(geom.Point{}, s.ship.Angle(), s.ship.Length()).B
	k := math.Min(1, velocityGain*dt)
	s.vel = s.vel.Add(want.Sub(s.vel).Scale(k))
	speed := s.vel.Distance(geom.Point{})
	if speed > 0 {
		s.velocity.SetAngle(math.Atan2(s.vel.Y, s.vel.X))
	}
	s.velocity.SetLength(speed * velocityScale)

	maxLen := s.cfg.Arrow.Length
	for i := range s.obstacles {
		o := &s.obstacles[i]
		a := o.phase + o.speed*s.elapsed
		r := o.radius + o.bob*math.Sin(a*3)
		o.pos = geom.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))

		d := base.Distance(o.pos)
		ind := &s.fan[i]
		ind.closeness = closeness(d)
		if d > 0 {
			ind.arrow.SetAngle(math.Atan2(o.pos.Y-base.Y, o.pos.X-base.X))
		}
		ind.arrow.SetLength(maxLen * ind.closeness)
	}

	if glog.V(2) {
		glog.Infof("frame t=%.2f ship=%v len=%.2f", s.elapsed, base, s.ship.Length())
	}
}

// closeness maps distance onto [0, 1]; 1 = touching
func closeness(d float64) float64 {
	c := 1 - d/sensorRange
	return math.Max(0, math.Min(1, c))
}

// draw renders the whole scene onto out
func (s *scene) draw(out surface) {
	for i, ind := range s.fan {
		o := s.obstacles[i]
		out.target(solid(render.RgbSubdued)).FillPoint(o.pos, 1)

		// Out-of-range indicators would only pile markers on the ship
		if ind.arrow.Degenerate() {
			continue
		}
		ind.arrow.SetTarget(out.target(solid(render.ClosenessColor(ind.closeness))))
		ind.arrow.Stroke()
	}

	if !s.velocity.Degenerate() {
		s.velocity.SetTarget(out.target(solid(render.RgbVector)))
		s.velocity.Stroke()
	}

	s.ship.SetTarget(out.target(tint{s.style.ShaftColor, s.style.HeadColor, s.style.MarkerColor}))
	s.ship.Stroke()

	out.label(geom.Pt(1, 1), s.status())
}

func (s *scene) status() string {
	deg := geom.AngleToHeading(s.ship.Angle()) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	state := ""
	if s.ship.Degenerate() {
		state = " [point]"
	}
	return fmt.Sprintf("hdg %3.0f° len %4.1f resize:%v%s | h/l j/k arrows 0 r q",
		deg, s.ship.Length(), s.opts.ResizeHeadOnLengthChange, state)
}
