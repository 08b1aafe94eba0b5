package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < maxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyG) {
		enabled := !g.sim.Params().GravityEnabled
		g.sim.SetGravityEnabled(enabled)
		slog.Info("gravity", "enabled", enabled)
	}
	if rl.IsKeyPressed(rl.KeyC) {
		slog.Info("collision policy", "policy", g.cyclePolicy().String())
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.sim.Reset()
	}

	// Count adjustment
	if rl.IsKeyPressed(rl.KeyUp) {
		g.sim.Resize(len(g.sim.Bubbles()) + 1)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		g.sim.Resize(len(g.sim.Bubbles()) - 1)
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.hud.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}
