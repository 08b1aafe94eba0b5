// Bubble sprite preview tool - interactive tuning of the procedural sprite.
//
// Usage: go run ./cmd/spritepreview
package main

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/bubbles/config"
	"github.com/pthm-cable/bubbles/renderer"
	"github.com/pthm-cable/bubbles/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// SpriteParams holds the values under tuning.
type SpriteParams struct {
	Size       float32
	Density    float32
	Rim        float32
	Hue        float32
	Saturation float32
	Value      float32
}

func defaultParams() SpriteParams {
	cfg := config.Cfg()
	return SpriteParams{
		Size:       float32(cfg.Sprite.Size),
		Density:    float32(cfg.Sprite.Density),
		Rim:        float32(cfg.Sprite.Rim),
		Hue:        0,
		Saturation: float32(cfg.Color.Saturation),
		Value:      float32(cfg.Color.Value),
	}
}

func main() {
	config.MustInit("")

	rl.InitWindow(windowWidth, windowHeight, "Bubble Sprite Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	background := systems.ParseHex(config.Cfg().Color.Background)

	var texture rl.Texture2D
	needsRegen := true
	cycling := false

	for !rl.WindowShouldClose() {
		if cycling {
			params.Hue = float32(systems.WrapHue(float64(params.Hue) + float64(config.Cfg().Color.HueRate)))
		}

		if needsRegen {
			if texture.ID != 0 {
				rl.UnloadTexture(texture)
			}
			texture = buildTexture(params)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Preview on the simulation background
		rl.DrawRectangle(10, 10, previewSize, previewSize, background)
		tint := systems.Tint(float64(params.Hue), float64(params.Saturation), float64(params.Value))
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(texture.Width), Height: float32(texture.Height)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			tint,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Texture: %dx%d  Tint: #%02x%02x%02x", texture.Width, texture.Height, tint.R, tint.G, tint.B),
			15, statsY, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Bubble Sprite", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		if v, changed := slider(&panelY, panelX, "Size (texture pixels)", "16", "512", params.Size, 16, 512, "%.0f"); changed {
			params.Size = float32(int(v))
			needsRegen = true
		}
		if v, changed := slider(&panelY, panelX, "Density (interior fill)", "0", "1", params.Density, 0, 1, "%.2f"); changed {
			params.Density = v
			needsRegen = true
		}
		if v, changed := slider(&panelY, panelX, "Rim (fraction of radius)", "0", "0.5", params.Rim, 0, 0.5, "%.3f"); changed {
			params.Rim = v
			needsRegen = true
		}

		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		if v, changed := slider(&panelY, panelX, "Hue", "0", "360", params.Hue, 0, 360, "%.0f"); changed {
			params.Hue = v
		}
		if v, changed := slider(&panelY, panelX, "Saturation", "0", "1", params.Saturation, 0, 1, "%.2f"); changed {
			params.Saturation = v
		}
		if v, changed := slider(&panelY, panelX, "Value", "0", "1", params.Value, 0, 1, "%.2f"); changed {
			params.Value = v
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(cycling, "Stop", "Cycle Hue")) {
			cycling = !cycling
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			needsRegen = true
		}
		panelY += 45

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(yamlText(params))
		}

		rl.EndDrawing()
	}

	if texture.ID != 0 {
		rl.UnloadTexture(texture)
	}
}

// slider draws a labelled slider and advances y past it.
func slider(y *float32, x float32, label, left, right string, value, lo, hi float32, format string) (float32, bool) {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		left, right,
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return next, next != value
}

func buildTexture(params SpriteParams) rl.Texture2D {
	img := renderer.BubbleImage(int(params.Size), renderer.SpriteStyle{
		Density: float64(params.Density),
		Rim:     float64(params.Rim),
	})
	rlImg := rl.NewImageFromImage(img)
	texture := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(texture, rl.FilterBilinear)
	return texture
}

func yamlLines(params SpriteParams) []string {
	return []string{
		"sprite:",
		fmt.Sprintf("  size: %d", int(params.Size)),
		fmt.Sprintf("  density: %.2f", params.Density),
		fmt.Sprintf("  rim: %.3f", params.Rim),
		"color:",
		fmt.Sprintf("  saturation: %.2f", params.Saturation),
		fmt.Sprintf("  value: %.2f", params.Value),
	}
}

func yamlText(params SpriteParams) string {
	return strings.Join(yamlLines(params), "\n")
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
