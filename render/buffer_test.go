package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRenderBufferSetModes(t *testing.T) {
	buf := NewRenderBuffer(4, 2)
	red := RGB{255, 0, 0}
	blue := RGB{0, 0, 255}

	buf.SetWithBg(1, 1, 'x', red, blue)
	cell, ok := buf.Get(1, 1)
	if !ok {
		t.Fatal("Expected cell in bounds")
	}
	if cell.Rune != 'x' || cell.Fg != red || cell.Bg != blue {
		t.Errorf("Unexpected cell %+v", cell)
	}
	if !buf.Touched(1, 1) {
		t.Error("Expected SetWithBg to mark cell touched")
	}

	// Half alpha over red foreground
	buf.Set(1, 1, 0, blue, RGB{}, BlendAlphaFg, 0.5, AttrNone)
	cell, _ = buf.Get(1, 1)
	if cell.Rune != 'x' {
		t.Errorf("Expected rune preserved with zero rune, got %q", cell.Rune)
	}
	if cell.Fg.R < 120 || cell.Fg.R > 130 || cell.Fg.B < 120 || cell.Fg.B > 130 {
		t.Errorf("Expected half blend of red and blue, got %+v", cell.Fg)
	}
	if cell.Bg != blue {
		t.Errorf("Expected background untouched by fg-only mode, got %+v", cell.Bg)
	}

	buf.Set(2, 0, 'a', RGB{200, 0, 0}, RGB{0, 200, 0}, BlendAlpha, 1, AttrNone)
	cell, _ = buf.Get(2, 0)
	if cell.Fg != (RGB{200, 0, 0}) || cell.Bg != (RGB{0, 200, 0}) || !buf.Touched(2, 0) {
		t.Errorf("Expected opaque alpha to set both channels, got %+v", cell)
	}

	buf.Set(0, 0, 'm', RGB{10, 200, 10}, RGB{90, 10, 10}, BlendMax, 1, AttrBold)
	cell, _ = buf.Get(0, 0)
	if cell.Bg != (RGB{90, 10, 10}) || cell.Attrs != AttrBold {
		t.Errorf("Unexpected max blended cell %+v", cell)
	}
}

func TestRenderBufferOutOfBounds(t *testing.T) {
	buf := NewRenderBuffer(3, 3)
	// None of these may panic
	buf.SetWithBg(-1, 0, 'a', RGB{}, RGB{})
	buf.SetFgOnly(3, 0, 'a', RGB{}, AttrNone)
	buf.SetBgOnly(0, 3, RGB{})
	buf.Set(10, 10, 'a', RGB{}, RGB{}, BlendReplace, 1, AttrNone)

	if _, ok := buf.Get(3, 3); ok {
		t.Error("Expected out of bounds Get to report false")
	}
}

func TestRenderBufferResizeClears(t *testing.T) {
	buf := NewRenderBuffer(2, 2)
	buf.SetWithBg(0, 0, 'a', RGB{1, 2, 3}, RGB{4, 5, 6})

	buf.Resize(5, 4)
	if buf.Width() != 5 || buf.Height() != 4 {
		t.Fatalf("Expected 5x4, got %dx%d", buf.Width(), buf.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			cell, _ := buf.Get(x, y)
			if cell != emptyCell || buf.Touched(x, y) {
				t.Fatalf("Expected cleared cell at (%d,%d), got %+v", x, y, cell)
			}
		}
	}

	buf.Resize(1, 1)
	if buf.Width() != 1 || buf.Height() != 1 {
		t.Errorf("Expected shrink to 1x1, got %dx%d", buf.Width(), buf.Height())
	}
}

func TestFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	buf := NewRenderBuffer(4, 2)
	buf.SetWithBg(0, 0, 'A', RGB{255, 255, 255}, RGB{0, 0, 255})
	buf.SetString(1, 1, "hi", RGB{0, 255, 0})
	buf.FlushToScreen(screen)

	r, _, st, _ := screen.GetContent(0, 0)
	if r != 'A' {
		t.Errorf("Expected 'A' at (0,0), got %q", r)
	}
	_, bg, _ := st.Decompose()
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("Expected blue background, got %v", bg)
	}

	r, _, st, _ = screen.GetContent(2, 1)
	if r != 'i' {
		t.Errorf("Expected 'i' at (2,1), got %q", r)
	}
	fg, bg, _ := st.Decompose()
	if fg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("Expected green foreground, got %v", fg)
	}
	if bg != RgbBackground.TCell() {
		t.Errorf("Expected default background on untouched cell, got %v", bg)
	}

	r, _, _, _ = screen.GetContent(3, 0)
	if r != ' ' {
		t.Errorf("Expected blank for empty cell, got %q", r)
	}
}
