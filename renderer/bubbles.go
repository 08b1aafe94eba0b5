package renderer

import (
	"image/color"

	"github.com/pthm-cable/bubbles/components"
	"github.com/pthm-cable/bubbles/systems"
)

// BubbleRenderer draws one tinted sprite per bubble.
type BubbleRenderer struct {
	sprite     *Sprite
	saturation float64
	value      float64
	background color.RGBA
}

// NewBubbleRenderer creates a renderer drawing sprite with HSV tints of the
// given saturation and value over background.
func NewBubbleRenderer(sprite *Sprite, saturation, value float64, background color.RGBA) *BubbleRenderer {
	return &BubbleRenderer{
		sprite:     sprite,
		saturation: saturation,
		value:      value,
		background: background,
	}
}

// Draw clears the surface and draws every bubble in store order, so later
// bubbles appear on top.
func (r *BubbleRenderer) Draw(s Surface, bubbles []components.Bubble) {
	s.Clear(r.background)
	for i := range bubbles {
		b := &bubbles[i]
		size := float32(b.Radius * 2)
		tint := systems.Tint(b.Hue, r.saturation, r.value)
		s.DrawTintedSprite(r.sprite,
			float32(b.Pos.X-b.Radius), float32(b.Pos.Y-b.Radius),
			size, size, tint, float32(b.Opacity))
	}
}
