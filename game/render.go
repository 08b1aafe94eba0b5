package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bubbles/components"
	"github.com/pthm-cable/bubbles/renderer"
	"github.com/pthm-cable/bubbles/systems"
	"github.com/pthm-cable/bubbles/ui"
)

const controlsLegend = "[Space] pause  [G] gravity  [C] policy  [R] reset  [Up/Down] count  [</>] speed  [H] HUD  [Tab] panel"

// initRendering loads the sprite and builds the drawing stack. Sprite load
// failure is returned to the caller and nothing is drawn.
func (g *Game) initRendering(spritePath string) error {
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())

	path := g.cfg.Sprite.Path
	if spritePath != "" {
		path = spritePath
	}

	var err error
	if path != "" {
		g.sprite, err = renderer.LoadSprite(path)
	} else {
		g.sprite, err = renderer.GenerateSprite(g.cfg.Sprite.Size, renderer.SpriteStyle{
			Density: g.cfg.Sprite.Density,
			Rim:     g.cfg.Sprite.Rim,
		})
	}
	if err != nil {
		return fmt.Errorf("sprite: %w", err)
	}

	g.surface = renderer.NewRaylibSurface()
	g.bubbles = renderer.NewBubbleRenderer(g.sprite, g.cfg.Color.Saturation, g.cfg.Color.Value, systems.ParseHex(g.cfg.Color.Background))
	g.hud = ui.NewHUD()
	g.controls = ui.NewControlsPanel(260)
	return nil
}

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.bubbles.Draw(g.surface, g.sim.Bubbles())
	g.drawUI()

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// drawUI draws the HUD and the control panel, then applies panel actions.
func (g *Game) drawUI() {
	params := g.sim.Params()
	gravity := g.sim.Gravity()
	bubbles := g.sim.Bubbles()

	var tint rl.Color
	inGrace := 0
	for i := range bubbles {
		if !bubbles[i].CollisionEnabled {
			inGrace++
		}
	}
	if len(bubbles) > 0 {
		tint = systems.Tint(bubbles[0].Hue, g.cfg.Color.Saturation, g.cfg.Color.Value)
	}

	g.hud.Draw(ui.HUDData{
		Title:      g.cfg.Screen.Title,
		Bubbles:    len(bubbles),
		Capacity:   g.sim.Store().Cap(),
		InGrace:    inGrace,
		Tick:       g.sim.Tick(),
		Speed:      g.stepsPerUpdate,
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
		Policy:     params.Policy.String(),
		Boundary:   params.Boundary.String(),
		Gravity:    params.GravityEnabled,
		GravityX:   gravity.X,
		GravityY:   gravity.Y,
		GravityDir: gravity.DirectionName(),
		FirstTint:  tint,
	})
	g.hud.DrawControls(int32(g.screenHeight), controlsLegend)

	actions := g.controls.Draw(int32(g.screenWidth), ui.ControlState{
		Count:    len(bubbles),
		Capacity: g.sim.Store().Cap(),
		HueRate:  params.HueRate,
		Policy:   params.Policy.String(),
		Gravity:  params.GravityEnabled,
		Paused:   g.paused,
	})
	g.applyControls(actions)
}

// applyControls applies control panel actions between ticks.
func (g *Game) applyControls(a ui.ControlActions) {
	params := g.sim.Params()

	if a.Count != len(g.sim.Bubbles()) {
		g.sim.Resize(a.Count)
	}
	// Slider values round-trip through float32.
	if math.Abs(a.HueRate-params.HueRate) > 1e-4 {
		g.sim.SetHueRate(a.HueRate)
	}
	if a.CyclePolicy {
		g.cyclePolicy()
	}
	if a.ToggleGrav {
		g.sim.SetGravityEnabled(!params.GravityEnabled)
	}
	if a.Reset {
		g.sim.Reset()
	}
	if a.TogglePause {
		g.paused = !g.paused
	}
}

func (g *Game) cyclePolicy() components.CollisionPolicy {
	next := g.sim.Params().Policy.Next()
	g.sim.SetPolicy(next)
	return next
}
