package systems

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// WrapHue maps any angle in degrees into [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// Adding 360 to a tiny negative remainder can round up to exactly 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// Tint converts a hue phase plus saturation and value into an opaque RGBA tint.
func Tint(hue, saturation, value float64) color.RGBA {
	c := colorful.Hsv(WrapHue(hue), saturation, value).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ParseHex parses a "#rrggbb" color, falling back to black.
func ParseHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
