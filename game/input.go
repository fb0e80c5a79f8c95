package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drawpad/input"
)

// handleInput processes keys the pad itself does not handle.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	down := g.keys.IsKeyDown(input.KeyP)
	if down && !g.perfWasDown {
		g.showPerf = !g.showPerf
	}
	g.perfWasDown = down

	g.camera.HandleInput(g.keys, g.cfg.Camera.PanSpeed, g.cfg.Camera.ZoomStep)
	g.inspector.HandleInput(g.pad, g.camera)
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	g.camera.Resize(float64(w), float64(h))
	g.perfPanel.SetPosition(int32(w)-230, 10)
	g.inspector.Resize(int32(w), int32(h))
}
