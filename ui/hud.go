package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Bubbles    int
	Capacity   int
	InGrace    int
	Tick       int32
	Speed      int
	FPS        int32
	Paused     bool
	Policy     string
	Boundary   string
	Gravity    bool
	GravityX   float64
	GravityY   float64
	GravityDir string
	FirstTint  rl.Color // Tint of the oldest bubble
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	visible  bool
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
		visible:  true,
	}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	if !h.visible {
		return
	}
	r := h.renderer
	const x, top, width = 10, 10, 240

	r.DrawPanel(x, top, width, 200)
	col := r.Column(x+r.Theme.Padding, top+r.Theme.Padding, width-r.Theme.Padding*2)

	col.Header(data.Title)
	col.Row("Bubbles", fmt.Sprintf("%d / %d (%d in grace)", data.Bubbles, data.Capacity, data.InGrace))
	col.Row("Tick", fmt.Sprintf("%d  x%d  %d fps", data.Tick, data.Speed, data.FPS))
	col.Row("Collisions", data.Policy)
	col.Row("Boundary", data.Boundary)

	if data.Gravity {
		col.Row("Gravity", data.GravityDir)
		col.Bar("  x", data.GravityX, 1)
		col.Bar("  y", data.GravityY, 1)
	} else {
		col.Row("Gravity", "off")
	}
	col.Swatch("Hue", data.FirstTint)

	if data.Paused {
		rl.DrawText("PAUSED", col.X, col.Y+4, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	if !h.visible {
		return
	}
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
