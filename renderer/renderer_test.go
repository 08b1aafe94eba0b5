package renderer

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
	"github.com/pthm-cable/bubbles/systems"
)

type drawCall struct {
	x, y, w, h float32
	tint       color.RGBA
	opacity    float32
}

// recordingSurface captures draw calls instead of touching a window.
type recordingSurface struct {
	cleared []color.RGBA
	calls   []drawCall
}

func (s *recordingSurface) Clear(bg color.RGBA) {
	s.cleared = append(s.cleared, bg)
}

func (s *recordingSurface) DrawTintedSprite(_ *Sprite, x, y, w, h float32, tint color.RGBA, opacity float32) {
	s.calls = append(s.calls, drawCall{x, y, w, h, tint, opacity})
}

func (s *recordingSurface) Size() (int32, int32) { return 800, 600 }

func TestBubbleRendererDrawsEachBubble(t *testing.T) {
	bg := color.RGBA{10, 20, 30, 255}
	r := NewBubbleRenderer(&Sprite{Width: 64, Height: 64}, 1, 1, bg)

	bubbles := []components.Bubble{
		{Pos: r2.Vec{X: 100, Y: 200}, Radius: 40, Hue: 0, Opacity: 0.5},
		{Pos: r2.Vec{X: 300, Y: 50}, Radius: 10, Hue: 120, Opacity: 1},
	}

	s := &recordingSurface{}
	r.Draw(s, bubbles)

	if len(s.cleared) != 1 || s.cleared[0] != bg {
		t.Fatalf("cleared = %v, want one clear with %v", s.cleared, bg)
	}
	if len(s.calls) != len(bubbles) {
		t.Fatalf("draw calls = %d, want %d", len(s.calls), len(bubbles))
	}

	first := s.calls[0]
	if first.x != 60 || first.y != 160 || first.w != 80 || first.h != 80 {
		t.Errorf("first rect = (%v, %v, %v, %v), want (60, 160, 80, 80)", first.x, first.y, first.w, first.h)
	}
	if first.tint != systems.Tint(0, 1, 1) {
		t.Errorf("first tint = %v", first.tint)
	}
	if first.opacity != 0.5 {
		t.Errorf("first opacity = %v, want 0.5", first.opacity)
	}
	if s.calls[1].tint != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("second tint = %v, want green", s.calls[1].tint)
	}
}

func TestBubbleImageShape(t *testing.T) {
	const size = 64
	img := BubbleImage(size, SpriteStyle{Density: 0.35, Rim: 0.08})

	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		t.Fatalf("bounds = %v", b)
	}

	// Corners sit outside the circle.
	for _, p := range [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
		if a := img.RGBAAt(p[0], p[1]).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", p, a)
		}
	}

	// Rim is brighter than the middle.
	center := img.RGBAAt(size/2, size/2).A
	rim := img.RGBAAt(size-2, size/2).A
	if rim <= center {
		t.Errorf("rim alpha %d should exceed center alpha %d", rim, center)
	}
}

func TestBubbleImageClampsStyle(t *testing.T) {
	img := BubbleImage(16, SpriteStyle{Density: -3, Rim: 5})
	// A rim of the full radius covers the whole disc.
	c := img.RGBAAt(8, 8)
	if math.Abs(float64(c.A)-0.9*255) > 1 {
		t.Errorf("center alpha = %d, want about %d", c.A, int(0.9*255))
	}
}

func TestLoadSpriteMissingFile(t *testing.T) {
	_, err := LoadSprite(t.TempDir() + "/missing.png")
	if err == nil {
		t.Fatal("expected error for missing sprite")
	}
}
