package game

import "github.com/pthm-cable/drawpad/render"

// Update advances one tick in graphical mode. The perf tick it opens is
// closed by Draw.
func (g *Game) Update() {
	g.handleInput()

	g.perfCollector.StartTick()
	g.pad.Update(g.keys)
}

// UpdateHeadless advances one tick and draws into the recorder.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()
	g.pad.Update(g.keys)

	g.recorder.Reset()
	g.camera.Apply(g.recorder)
	g.pad.Draw(g.recorder)
	g.recorder.Pop()

	stats := g.pad.Stats()
	g.perfCollector.EndTick()

	g.flushTelemetry(stats)
}

// Recorder returns the headless drawing target, nil in graphical mode.
func (g *Game) Recorder() *render.Recorder {
	return g.recorder
}
