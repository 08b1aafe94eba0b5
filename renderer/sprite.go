package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrSpriteLoad is returned when a sprite file exists but raylib cannot decode it.
var ErrSpriteLoad = errors.New("sprite could not be loaded")

// Sprite is the texture drawn once per bubble.
type Sprite struct {
	Texture       rl.Texture2D
	Width, Height int32
}

// SpriteStyle shapes the procedural bubble sprite.
type SpriteStyle struct {
	Density float64 // Fraction of the radius that stays clear in the middle (0-1)
	Rim     float64 // Rim thickness as a fraction of the radius (0-1)
}

// LoadSprite loads an image file as a texture. It must be called after the
// window is created. There is no retry.
func LoadSprite(path string) (*Sprite, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sprite %q: %w", path, err)
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return nil, fmt.Errorf("sprite %q: %w", path, ErrSpriteLoad)
	}
	return &Sprite{Texture: tex, Width: tex.Width, Height: tex.Height}, nil
}

// GenerateSprite renders the procedural bubble into a texture.
// It must be called after the window is created.
func GenerateSprite(size int, style SpriteStyle) (*Sprite, error) {
	if size < 2 {
		return nil, fmt.Errorf("sprite size %d too small", size)
	}
	img := rl.NewImageFromImage(BubbleImage(size, style))
	defer rl.UnloadImage(img)

	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return nil, fmt.Errorf("generated sprite: %w", ErrSpriteLoad)
	}
	return &Sprite{Texture: tex, Width: tex.Width, Height: tex.Height}, nil
}

// Unload frees the texture.
func (s *Sprite) Unload() {
	if s.Texture.ID != 0 {
		rl.UnloadTexture(s.Texture)
		s.Texture = rl.Texture2D{}
	}
}

// BubbleImage draws a white soap bubble: a faint body that brightens toward
// a bright rim, plus a small highlight toward the top left. Pixels outside
// the circle are fully transparent. Tinting happens at draw time.
func BubbleImage(size int, style SpriteStyle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	radius := c

	density := clamp01(style.Density)
	rim := clamp01(style.Rim)
	rimStart := 1 - rim

	hx, hy := c-radius*0.4, c-radius*0.4
	hr := radius * 0.2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			d := math.Hypot(dx, dy) / radius
			if d > 1 {
				continue
			}

			// Body: clear inside density, ramping up toward the rim.
			var a float64
			if d > density {
				t := (d - density) / (1 - density + 1e-9)
				a = 0.35 * t * t
			}
			if d >= rimStart {
				a = 0.9
			}

			// Highlight.
			hd := math.Hypot(float64(x)+0.5-hx, float64(y)+0.5-hy) / hr
			if hd < 1 {
				a = math.Max(a, 0.8*(1-hd))
			}

			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: uint8(a*255 + 0.5)})
		}
	}
	return img
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
