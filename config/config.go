// Package config loads the arrow sandbox settings from TOML
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-arrow/arrow"
	"github.com/lixenwraith/vi-arrow/geom"
	"github.com/lixenwraith/vi-arrow/raster"
	"github.com/lixenwraith/vi-arrow/render"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// ArrowConfig is the [arrow] section
// AngleDeg follows screen atan2: 0 = right, 90 = down
type ArrowConfig struct {
	Length           float64 `toml:"length"`
	AngleDeg         float64 `toml:"angle_deg"`
	ResizeHead       bool    `toml:"resize_head"`
	MarkerRadius     float64 `toml:"marker_radius"`
	MinVisibleLength float64 `toml:"min_visible_length"`
	HeadRatio        float64 `toml:"head_ratio"`
}

// StyleConfig is the [style] section; colors are "#rrggbb"
type StyleConfig struct {
	ShaftColor  string  `toml:"shaft_color"`
	HeadColor   string  `toml:"head_color"`
	MarkerColor string  `toml:"marker_color"`
	AspectY     float64 `toml:"aspect_y"`
}

// SandboxConfig is the [sandbox] section
// Gain is cue volume in base-2 steps: 0 = unity, -1 = half
type SandboxConfig struct {
	FPS           int     `toml:"fps"`
	Audio         bool    `toml:"audio"`
	Gain          float64 `toml:"gain"`
	RotateStepDeg float64 `toml:"rotate_step_deg"`
	LengthStep    float64 `toml:"length_step"`
	MoveStep      float64 `toml:"move_step"`
}

// SnapshotConfig is the [snapshot] section used by headless PNG output
type SnapshotConfig struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	LineWidth  float64 `toml:"line_width"`
	Background string  `toml:"background"`
}

// Config is the whole file
type Config struct {
	Arrow    ArrowConfig    `toml:"arrow"`
	Theme    StyleConfig    `toml:"style"`
	Sandbox  SandboxConfig  `toml:"sandbox"`
	Snapshot SnapshotConfig `toml:"snapshot"`
}

// Default returns the built-in settings
func Default() *Config {
	ao := arrow.DefaultOptions()
	ro := raster.DefaultOptions()
	return &Config{
		Arrow: ArrowConfig{
			Length:           12,
			AngleDeg:         -90,
			ResizeHead:       ao.ResizeHeadOnLengthChange,
			MarkerRadius:     ao.MarkerRadius,
			MinVisibleLength: ao.MinVisibleLength,
			HeadRatio:        ao.HeadRatio,
		},
		Theme: StyleConfig{
			ShaftColor:  render.RgbShaft.Hex(),
			HeadColor:   render.RgbHead.Hex(),
			MarkerColor: render.RgbMarker.Hex(),
			AspectY:     render.DefaultAspectY,
		},
		Sandbox: SandboxConfig{
			FPS:           30,
			Audio:         true,
			Gain:          -1,
			RotateStepDeg: 15,
			LengthStep:    1,
			MoveStep:      1,
		},
		Snapshot: SnapshotConfig{
			Width:      ro.Width,
			Height:     ro.Height,
			LineWidth:  ro.LineWidth,
			Background: render.RgbBackground.Hex(),
		},
	}
}

// Load reads path over the defaults
// A missing file yields the defaults; unknown keys are an error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("config parse %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating parent directories
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("config encode: %w", err)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges and color syntax
func (c *Config) Validate() error {
	var bad []string

	nonNegative := map[string]float64{
		"arrow.length":             c.Arrow.Length,
		"arrow.marker_radius":      c.Arrow.MarkerRadius,
		"arrow.min_visible_length": c.Arrow.MinVisibleLength,
	}
	positive := map[string]float64{
		"arrow.head_ratio":    c.Arrow.HeadRatio,
		"style.aspect_y":      c.Theme.AspectY,
		"sandbox.length_step": c.Sandbox.LengthStep,
		"sandbox.move_step":   c.Sandbox.MoveStep,
		"snapshot.line_width": c.Snapshot.LineWidth,
	}
	anyFinite := map[string]float64{
		"arrow.angle_deg":         c.Arrow.AngleDeg,
		"sandbox.rotate_step_deg": c.Sandbox.RotateStepDeg,
		"sandbox.gain":            c.Sandbox.Gain,
	}

	// Comparisons are written so NaN fails them
	for name, v := range nonNegative {
		if !(v >= 0) || math.IsInf(v, 0) {
			bad = append(bad, name)
		}
	}
	for name, v := range positive {
		if !(v > 0) || math.IsInf(v, 0) {
			bad = append(bad, name)
		}
	}
	for name, v := range anyFinite {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = append(bad, name)
		}
	}

	for name, hex := range map[string]string{
		"style.shaft_color":   c.Theme.ShaftColor,
		"style.head_color":    c.Theme.HeadColor,
		"style.marker_color":  c.Theme.MarkerColor,
		"snapshot.background": c.Snapshot.Background,
	} {
		if _, err := render.ParseHex(hex); err != nil {
			bad = append(bad, name)
		}
	}

	if c.Sandbox.FPS < 1 || c.Sandbox.FPS > 240 {
		bad = append(bad, "sandbox.fps")
	}
	if c.Snapshot.Width <= 0 {
		bad = append(bad, "snapshot.width")
	}
	if c.Snapshot.Height <= 0 {
		bad = append(bad, "snapshot.height")
	}

	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(bad, ", "))
}

// ArrowOptions maps the [arrow] section onto arrow.Options
func (c *Config) ArrowOptions() arrow.Options {
	return arrow.Options{
		ResizeHeadOnLengthChange: c.Arrow.ResizeHead,
		MarkerRadius:             c.Arrow.MarkerRadius,
		MinVisibleLength:         c.Arrow.MinVisibleLength,
		HeadRatio:                c.Arrow.HeadRatio,
	}
}

// Angle returns the configured construction angle in radians
func (c *Config) Angle() float64 {
	return geom.WrapAngle(geom.Deg(c.Arrow.AngleDeg))
}

// RotateStep returns the sandbox rotation step in radians
func (c *Config) RotateStep() float64 {
	return geom.Deg(c.Sandbox.RotateStepDeg)
}

// Style builds the terminal arrow style from the [style] section
func (c *Config) Style() (render.Style, error) {
	s := render.DefaultStyle()

	var err error
	if s.ShaftColor, err = render.ParseHex(c.Theme.ShaftColor); err != nil {
		return s, fmt.Errorf("style.shaft_color: %w", err)
	}
	if s.HeadColor, err = render.ParseHex(c.Theme.HeadColor); err != nil {
		return s, fmt.Errorf("style.head_color: %w", err)
	}
	if s.MarkerColor, err = render.ParseHex(c.Theme.MarkerColor); err != nil {
		return s, fmt.Errorf("style.marker_color: %w", err)
	}
	return s, nil
}

// RasterOptions builds PNG snapshot options from [snapshot] and [style]
func (c *Config) RasterOptions() (raster.Options, error) {
	o := raster.DefaultOptions()
	o.Width = c.Snapshot.Width
	o.Height = c.Snapshot.Height
	o.LineWidth = c.Snapshot.LineWidth

	bg, err := render.ParseHex(c.Snapshot.Background)
	if err != nil {
		return o, fmt.Errorf("snapshot.background: %w", err)
	}
	s, err := c.Style()
	if err != nil {
		return o, err
	}

	o.Background = bg.RGBA()
	o.ShaftColor = s.ShaftColor.RGBA()
	o.HeadColor = s.HeadColor.RGBA()
	o.MarkerColor = s.MarkerColor.RGBA()
	return o, nil
}
