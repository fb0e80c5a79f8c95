package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drawpad/ui"
)

// Draw renders one frame and closes the perf tick opened by Update.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.background.Draw(g.camera)

	g.camera.Apply(g.canvas)
	g.pad.Draw(g.canvas)
	g.canvas.Pop()

	g.inspector.DrawSelectionHighlight(g.pad, g.camera)

	stats := g.pad.Stats()
	g.perfCollector.EndTick()
	g.perfCollector.RecordFrame()

	g.hud.Draw(ui.HUDData{
		Title:     g.cfg.Screen.Title,
		Tick:      g.pad.Tick(),
		Shapes:    stats.Shapes,
		Moving:    stats.Moving,
		Falling:   stats.Falling,
		TotalArea: stats.TotalArea,
		Zoom:      g.camera.Zoom,
		FPS:       rl.GetFPS(),
		Paused:    g.pad.Paused,
		HeldW:     g.heldW(),
	})
	g.hud.DrawControls(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), ui.Controls)

	if g.showPerf {
		perf := g.perfCollector.Stats()
		g.perfPanel.Draw(ui.PerfPanelData{
			SystemTimes: perf.PhaseAvg,
			Total:       perf.AvgTickDuration,
			Registry:    g.registry,
		})
	}

	g.inspector.Draw(g.pad)

	rl.EndDrawing()

	g.flushTelemetry(stats)
}

func (g *Game) heldW() int {
	if !g.hold.Held() {
		return 0
	}
	return g.hold.Count()
}
