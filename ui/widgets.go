package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws themed UI primitives.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// Column lays out label rows top to bottom inside a panel.
type Column struct {
	r     *Renderer
	X, Y  int32
	Width int32
}

// Column starts a column at (x, y) with the given content width.
func (r *Renderer) Column(x, y, width int32) *Column {
	return &Column{r: r, X: x, Y: y, Width: width}
}

// Header draws a section title.
func (c *Column) Header(title string) {
	t := c.r.Theme
	rl.DrawText(title, c.X, c.Y, t.HeaderFontSize, t.SectionHeader)
	c.Y += t.LineHeight
}

func (c *Column) label(text string) {
	t := c.r.Theme
	rl.DrawText(text+":", c.X, c.Y, t.FontSize, t.LabelColor)
}

// Row draws a label and its value on one line.
func (c *Column) Row(label, value string) {
	t := c.r.Theme
	c.label(label)
	rl.DrawText(value, c.X+t.LabelWidth, c.Y, t.FontSize, t.ValueColor)
	c.Y += t.LineHeight
}

// Bar draws a bar centered at zero for values in [-limit, limit].
func (c *Column) Bar(label string, value, limit float64) {
	t := c.r.Theme
	c.label(label)

	barX := c.X + t.LabelWidth
	barW := c.Width - t.LabelWidth - 50
	top := c.Y + 2
	rl.DrawRectangle(barX, top, barW, t.BarHeight, t.BarBg)

	mid := barX + barW/2
	rl.DrawLine(mid, top, mid, top+t.BarHeight, t.PanelBorder)

	offset, w := barFill(value, limit, barW/2)
	fill := t.BarFillPositive
	if value < 0 {
		fill = t.BarFillNegative
	}
	rl.DrawRectangle(mid+offset, top, w, t.BarHeight, fill)
	rl.DrawText(fmt.Sprintf("%+.2f", value), barX+barW+5, c.Y, t.FontSize, t.ValueColor)

	c.Y += t.LineHeight + 2
}

// Swatch draws a small filled square in the value column.
func (c *Column) Swatch(label string, color rl.Color) {
	t := c.r.Theme
	c.label(label)
	rl.DrawRectangle(c.X+t.LabelWidth, c.Y+1, 12, 12, color)
	c.Y += t.LineHeight
}

// barFill returns the fill rectangle of a centered bar relative to its
// midpoint: offset from the midpoint and width, for a half-width of half.
func barFill(value, limit float64, half int32) (offset, width int32) {
	if limit <= 0 || half <= 0 {
		return 0, 0
	}
	frac := math.Min(1, math.Abs(value/limit))
	width = int32(float64(half) * frac)
	if value < 0 {
		return -width, width
	}
	return 0, width
}
