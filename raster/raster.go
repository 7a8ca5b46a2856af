// Package raster renders arrows into an RGBA image with anti-aliased fills
package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/vi-arrow/arrow"
	"github.com/lixenwraith/vi-arrow/geom"
)

// discSegments is the polygon resolution for FillPoint
const discSegments = 32

// Options configures a raster target
type Options struct {
	Width  int
	Height int
	// LineWidth is the shaft thickness in pixels. Default: 2
	LineWidth float64
	// Scale maps world units to pixels. Default: 1
	Scale float64

	Background  color.RGBA
	ShaftColor  color.RGBA
	HeadColor   color.RGBA
	MarkerColor color.RGBA
	LabelColor  color.RGBA
}

// DefaultOptions returns a 640x480 target on the dark theme
func DefaultOptions() Options {
	return Options{
		Width:       640,
		Height:      480,
		LineWidth:   2,
		Scale:       1,
		Background:  color.RGBA{R: 26, G: 27, B: 38, A: 255},
		ShaftColor:  color.RGBA{R: 122, G: 162, B: 247, A: 255},
		HeadColor:   color.RGBA{R: 255, G: 158, B: 100, A: 255},
		MarkerColor: color.RGBA{R: 247, G: 118, B: 142, A: 255},
		LabelColor:  color.RGBA{R: 192, G: 202, B: 245, A: 255},
	}
}

// Target draws arrow parts into an image
type Target struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	opts Options
}

var _ arrow.Target = (*Target)(nil)

// New allocates the image and fills it with the background color
func New(opts Options) *Target {
	if opts.Width <= 0 {
		opts.Width = 640
	}
	if opts.Height <= 0 {
		opts.Height = 480
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 2
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	t := &Target{
		img:  image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		z:    vector.NewRasterizer(opts.Width, opts.Height),
		opts: opts,
	}
	t.Clear(opts.Background)
	return t
}

func (t *Target) Image() *image.RGBA { return t.img }
func (t *Target) Options() Options   { return t.opts }

// WithColors returns a target sharing the image but drawing in the given colors
func (t *Target) WithColors(shaft, head, marker color.RGBA) *Target {
	o := t.opts
	o.ShaftColor = shaft
	o.HeadColor = head
	o.MarkerColor = marker
	return &Target{img: t.img, z: vector.NewRasterizer(o.Width, o.Height), opts: o}
}

// Clear fills the whole image with bg
func (t *Target) Clear(bg color.RGBA) {
	draw.Draw(t.img, t.img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
}

func (t *Target) px(p geom.Point) (float32, float32) {
	return float32(p.X * t.opts.Scale), float32(p.Y * t.opts.Scale)
}

// fill rasterizes the closed polygon pts in c
func (t *Target) fill(c color.RGBA, pts ...geom.Point) {
	if len(pts) < 3 {
		return
	}
	t.z.Reset(t.opts.Width, t.opts.Height)
	x, y := t.px(pts[0])
	t.z.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = t.px(p)
		t.z.LineTo(x, y)
	}
	t.z.ClosePath()
	t.z.Draw(t.img, t.img.Bounds(), &image.Uniform{c}, image.Point{})
}

// StrokeLine draws the shaft as a quad LineWidth pixels wide
func (t *Target) StrokeLine(l geom.Line) {
	length := l.Length()
	if length == 0 {
		return
	}
	// Half-width in world units so the pixel width ignores Scale
	hw := t.opts.LineWidth / 2 / t.opts.Scale
	nx := -(l.B.Y - l.A.Y) / length * hw
	ny := (l.B.X - l.A.X) / length * hw
	n := geom.Point{X: nx, Y: ny}
	t.fill(t.opts.ShaftColor, l.A.Add(n), l.B.Add(n), l.B.Sub(n), l.A.Sub(n))
}

// FillTriangle draws the head
func (t *Target) FillTriangle(tri geom.Triangle) {
	t.fill(t.opts.HeadColor, tri.P1, tri.P2, tri.P3)
}

// FillPoint draws the degenerate marker as a polygonal disc
func (t *Target) FillPoint(p geom.Point, radius float64) {
	if radius <= 0 {
		return
	}
	pts := make([]geom.Point, discSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / discSegments
		pts[i] = geom.Point{X: p.X + radius*math.Cos(a), Y: p.Y + radius*math.Sin(a)}
	}
	t.fill(t.opts.MarkerColor, pts...)
}

// Label draws text with its baseline starting at p
func (t *Target) Label(p geom.Point, text string) {
	x, y := t.px(p)
	d := &font.Drawer{
		Dst:  t.img,
		Src:  &image.Uniform{t.opts.LabelColor},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(text)
}

// EncodePNG writes the image as PNG
func (t *Target) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, t.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to path, creating parent directories
func (t *Target) SavePNG(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := t.EncodePNG(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
