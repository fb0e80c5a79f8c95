package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drawpad/systems"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Tick      int32
	Shapes    int
	Moving    int
	Falling   int
	TotalArea float64
	Zoom      float64
	FPS       int32
	Paused    bool
	HeldW     int // ticks W has been held, 0 when released
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	theme := h.renderer.Theme

	rl.DrawText(data.Title, 10, 10, 20, theme.TitleColor)

	rl.DrawText(
		fmt.Sprintf("Shapes: %d | Moving: %d | Falling: %d | Area: %.0f", data.Shapes, data.Moving, data.Falling, data.TotalArea),
		10, 35, 16, theme.LabelColor,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d | Zoom: %.2fx", data.Tick, data.FPS, data.Zoom),
		10, 55, 16, theme.LabelColor,
	)

	statusText := "Running"
	statusColor := theme.SectionHeader
	if data.Paused {
		statusText = "PAUSED"
		statusColor = theme.WarnColor
	}
	if data.HeldW > 0 {
		statusText += fmt.Sprintf(" | W held: %d", data.HeldW)
	}
	rl.DrawText(statusText, 10, 75, 16, statusColor)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, h.renderer.Theme.LabelColor)
}

// Controls is the legend for the pad's key bindings.
const Controls = "Space: pause | R: reset | Arrows: pan | +/-: zoom | W: hold counter | P: perf | Click: inspect"

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	SystemTimes map[string]time.Duration
	Total       time.Duration
	Registry    *systems.SystemRegistry
}

// PerfPanel renders the system performance panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders one row per registered system, in registration order.
func (p *PerfPanel) Draw(data PerfPanelData) {
	r := p.renderer
	ids := data.Registry.IDs()
	height := int32(len(ids)+2)*(r.Theme.LineHeight+2) + r.Theme.Padding*2

	r.DrawPanel(p.x, p.y, p.width, height)
	x := p.x + r.Theme.Padding
	y := r.DrawSectionHeader(x, p.y+r.Theme.Padding, "System Performance")
	y = r.DrawLabelValue(x, y, "Total", data.Total.Round(time.Microsecond).String())

	inner := p.width - r.Theme.Padding*2
	for _, id := range ids {
		var frac float32
		if data.Total > 0 {
			frac = float32(data.SystemTimes[id]) / float32(data.Total)
		}
		y = r.DrawBar(x, y, data.Registry.GetName(id), frac, inner)
	}
}
