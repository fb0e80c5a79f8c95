package game

import (
	"log/slog"

	"github.com/pthm-cable/drawpad/systems"
	"github.com/pthm-cable/drawpad/telemetry"
)

// flushTelemetry records a frame row every telemetry.log_every ticks.
func (g *Game) flushTelemetry(scene systems.SceneStats) {
	every := int32(g.cfg.Telemetry.LogEvery)
	tick := g.pad.Tick()
	if tick < g.lastFlush {
		// pad was reset
		g.lastFlush = 0
	}
	if every <= 0 || tick == 0 || tick%every != 0 || tick == g.lastFlush {
		return
	}
	g.lastFlush = tick

	stats := telemetry.NewFrameStats(tick, g.cfg.Physics.DT, scene, g.pad.Paused)
	perfStats := g.perfCollector.Stats()

	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteFrame(stats); err != nil {
			slog.Error("failed to write frame stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, tick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
