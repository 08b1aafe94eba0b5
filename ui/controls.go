package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlState is the current value of every runtime control.
type ControlState struct {
	Count    int
	Capacity int
	HueRate  float64
	Policy   string
	Gravity  bool
	Paused   bool
}

// ControlActions reports what the user changed this frame.
type ControlActions struct {
	Count       int // New bubble count; equals ControlState.Count when unchanged
	HueRate     float64
	CyclePolicy bool
	ToggleGrav  bool
	Reset       bool
	TogglePause bool
}

// ControlsPanel renders the right-side raygui panel with runtime controls.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel anchored to the right edge and returns the actions
// taken. A hidden panel returns no actions.
func (c *ControlsPanel) Draw(screenWidth int32, state ControlState) ControlActions {
	actions := ControlActions{Count: state.Count, HueRate: state.HueRate}
	if !c.visible {
		return actions
	}

	r := c.renderer
	x := screenWidth - c.width - 10
	r.DrawPanel(x, 10, c.width, 220)

	px := float32(x + r.Theme.Padding)
	y := float32(10 + r.Theme.Padding)
	sliderW := float32(c.width - r.Theme.Padding*2 - 40)

	rl.DrawText("Controls", int32(px), int32(y), 16, rl.White)
	y += 24

	rl.DrawText("Bubbles", int32(px), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += 14
	count := gui.SliderBar(rl.Rectangle{X: px, Y: y, Width: sliderW, Height: 16}, "", "",
		float32(state.Count), 0, float32(state.Capacity))
	actions.Count = int(count + 0.5)
	rl.DrawText(fmt.Sprintf("%d", actions.Count), int32(px+sliderW+6), int32(y+2), r.Theme.FontSize, r.Theme.ValueColor)
	y += 24

	rl.DrawText("Hue rate (deg/tick)", int32(px), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += 14
	hue := gui.SliderBar(rl.Rectangle{X: px, Y: y, Width: sliderW, Height: 16}, "", "",
		float32(state.HueRate), 0, 5)
	actions.HueRate = float64(hue)
	rl.DrawText(fmt.Sprintf("%.2f", hue), int32(px+sliderW+6), int32(y+2), r.Theme.FontSize, r.Theme.ValueColor)
	y += 28

	btnW := float32(c.width-r.Theme.Padding*3) / 2
	if gui.Button(rl.Rectangle{X: px, Y: y, Width: btnW, Height: 26}, "Policy: "+state.Policy) {
		actions.CyclePolicy = true
	}
	if gui.Button(rl.Rectangle{X: px + btnW + float32(r.Theme.Padding), Y: y, Width: btnW, Height: 26}, toggleText(state.Gravity, "Gravity off", "Gravity on")) {
		actions.ToggleGrav = true
	}
	y += 34

	if gui.Button(rl.Rectangle{X: px, Y: y, Width: btnW, Height: 26}, "Reset") {
		actions.Reset = true
	}
	if gui.Button(rl.Rectangle{X: px + btnW + float32(r.Theme.Padding), Y: y, Width: btnW, Height: 26}, toggleText(state.Paused, "Resume", "Pause")) {
		actions.TogglePause = true
	}

	return actions
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
