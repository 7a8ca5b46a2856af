// arrow-sandbox is an interactive terminal playground for directional arrows
//
// Usage:
//
//	arrow-sandbox [-config arrow.toml] [-snapshot out.png] [-write-config path] [glog flags]
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"

	"github.com/lixenwraith/vi-arrow/arrow"
	"github.com/lixenwraith/vi-arrow/audio"
	"github.com/lixenwraith/vi-arrow/config"
	"github.com/lixenwraith/vi-arrow/geom"
	"github.com/lixenwraith/vi-arrow/raster"
	"github.com/lixenwraith/vi-arrow/render"
)

// snapshotScale is pixels per world unit in PNG output
const snapshotScale = 8.0

func main() {
	os.Exit(realMain())
}

func realMain() int {
	configPath := flag.String("config", "", "TOML config file (missing file uses defaults)")
	snapshotPath := flag.String("snapshot", "", "render the scene to this PNG and exit")
	writeConfig := flag.String("write-config", "", "write the effective config to this path and exit")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arrow-sandbox: %v\n", err)
		return 1
	}

	switch {
	case *writeConfig != "":
		err = config.Save(*writeConfig, cfg)
	case *snapshotPath != "":
		err = snapshot(cfg, *snapshotPath)
	default:
		err = run(cfg)
	}

	if err != nil {
		glog.Errorf("arrow-sandbox: %v", err)
		fmt.Fprintf(os.Stderr, "arrow-sandbox: %v\n", err)
		return 1
	}
	return 0
}

// snapshot draws one settled frame headlessly
func snapshot(cfg *config.Config, path string) error {
	opts, err := cfg.RasterOptions()
	if err != nil {
		return err
	}
	opts.Scale = snapshotScale

	img := raster.New(opts)
	sc, err := newScene(cfg, float64(opts.Width)/opts.Scale, float64(opts.Height)/opts.Scale)
	if err != nil {
		return err
	}
	// Let the velocity arrow catch up with the heading
	sc.update(1)
	sc.draw(pngSurface{img: img})

	if err := img.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	glog.Infof("snapshot written to %s", path)
	return nil
}

func run(cfg *config.Config) (err error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer func() {
		// Restore the terminal before reporting anything
		screen.Fini()
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	screen.HideCursor()

	w, h := screen.Size()
	sc, err := newScene(cfg, float64(w), float64(h)/cfg.Theme.AspectY)
	if err != nil {
		return err
	}
	buf := render.NewRenderBuffer(w, h)
	canvas := render.NewCanvas(buf, sc.style)
	canvas.AspectY = cfg.Theme.AspectY
	out := termSurface{canvas: canvas, style: sc.style}

	sm := audio.NewSoundManager()
	sm.SetGain(cfg.Sandbox.Gain)
	if cfg.Sandbox.Audio {
		if err := sm.Initialize(); err != nil {
			glog.Warningf("audio disabled: %v", err)
		}
	}
	defer sm.Cleanup()

	var watcher audio.Watcher
	watcher.Observe(sc.ship)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			events <- ev
			if ev == nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Sandbox.FPS))
	defer ticker.Stop()
	last := time.Now()
	glog.Infof("sandbox started %dx%d at %d fps", w, h, cfg.Sandbox.FPS)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case nil:
				return nil
			case *tcell.EventKey:
				a := actionFor(ev.Key(), ev.Rune())
				if !sc.apply(a) {
					return nil
				}
				if a == actionToggleResize {
					sm.PlayCue(audio.CueTick)
				}
			case *tcell.EventResize:
				w, h = screen.Size()
				buf.Resize(w, h)
				sc.resize(float64(w), float64(h)/canvas.AspectY)
				screen.Sync()
			}

		case now := <-ticker.C:
			sc.update(now.Sub(last).Seconds())
			last = now
			sm.PlayCue(watcher.Observe(sc.ship))

			buf.Clear()
			sc.draw(out)
			buf.FlushToScreen(screen)
		}
	}
}

// actionFor maps a key press onto a sandbox action
func actionFor(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyLeft:
		return actionMoveLeft
	case tcell.KeyRight:
		return actionMoveRight
	case tcell.KeyUp:
		return actionMoveUp
	case tcell.KeyDown:
		return actionMoveDown
	case tcell.KeyRune:
		switch r {
		case 'q':
			return actionQuit
		case 'h':
			return actionRotateLeft
		case 'l':
			return actionRotateRight
		case 'j':
			return actionShorten
		case 'k':
			return actionLengthen
		case '0':
			return actionCollapse
		case 'r':
			return actionToggleResize
		}
	}
	return actionNone
}

// termSurface draws into the terminal cell buffer
type termSurface struct {
	canvas *render.Canvas
	style  render.Style
}

func (t termSurface) target(c tint) arrow.Target {
	st := t.style
	st.ShaftColor, st.HeadColor, st.MarkerColor = c.shaft, c.head, c.marker
	return t.canvas.WithStyle(st)
}

func (t termSurface) label(p geom.Point, text string) {
	cp := t.canvas.ToCell(p)
	t.canvas.Buffer().SetString(int(cp.X), int(cp.Y), text, render.RgbForeground)
}

// pngSurface draws into a raster image
type pngSurface struct {
	img *raster.Target
}

func (p pngSurface) target(c tint) arrow.Target {
	return p.img.WithColors(c.shaft.RGBA(), c.head.RGBA(), c.marker.RGBA())
}

func (p pngSurface) label(pt geom.Point, text string) {
	// Label places the baseline; drop one text line so the glyphs stay inside
	p.img.Label(geom.Pt(pt.X, pt.Y+13/p.img.Options().Scale), text)
}
