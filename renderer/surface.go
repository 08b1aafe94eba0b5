// Package renderer draws bubbles. Drawing goes through the Surface
// interface so the frame logic can run against a window or a recorder.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface is the drawing boundary used by the bubble renderer.
type Surface interface {
	// Clear fills the whole surface with bg.
	Clear(bg color.RGBA)
	// DrawTintedSprite draws sprite scaled into the rectangle at (x, y) with
	// size (w, h), multiplied by tint, at the given opacity in [0, 1].
	DrawTintedSprite(sprite *Sprite, x, y, w, h float32, tint color.RGBA, opacity float32)
	// Size returns the current drawable size in pixels.
	Size() (width, height int32)
}

// RaylibSurface draws into the current raylib window.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type RaylibSurface struct{}

// NewRaylibSurface returns a surface backed by the raylib window.
func NewRaylibSurface() *RaylibSurface {
	return &RaylibSurface{}
}

// Clear implements Surface.
func (s *RaylibSurface) Clear(bg color.RGBA) {
	rl.ClearBackground(bg)
}

// DrawTintedSprite implements Surface.
func (s *RaylibSurface) DrawTintedSprite(sprite *Sprite, x, y, w, h float32, tint color.RGBA, opacity float32) {
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(sprite.Width), Height: float32(sprite.Height)}
	dst := rl.Rectangle{X: x, Y: y, Width: w, Height: h}
	rl.DrawTexturePro(sprite.Texture, src, dst, rl.Vector2{}, 0, rl.Fade(tint, opacity))
}

// Size implements Surface.
func (s *RaylibSurface) Size() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}
