// Package game wires the pad to a window or a headless loop: camera, HUD,
// perf collection and CSV output.
package game

import (
	"log/slog"

	"github.com/pthm-cable/drawpad/camera"
	"github.com/pthm-cable/drawpad/config"
	"github.com/pthm-cable/drawpad/input"
	"github.com/pthm-cable/drawpad/inspector"
	"github.com/pthm-cable/drawpad/pad"
	"github.com/pthm-cable/drawpad/render"
	"github.com/pthm-cable/drawpad/renderer"
	"github.com/pthm-cable/drawpad/systems"
	"github.com/pthm-cable/drawpad/telemetry"
	"github.com/pthm-cable/drawpad/ui"
)

// Options configures a run.
type Options struct {
	LogStats  bool   // log frame and perf stats via slog
	OutputDir string // directory for CSV logs and config snapshot (empty = disabled)
	Headless  bool   // no window; draw into a recorder
}

// Game owns the pad and everything around it.
type Game struct {
	cfg  *config.Config
	pad  *pad.Pad
	opts Options

	camera *camera.Camera
	keys   input.KeyState
	hold   input.HoldCounter

	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	registry      *systems.SystemRegistry

	// Headless drawing target
	recorder *render.Recorder

	// Graphics (nil when headless)
	canvas      *renderer.Canvas
	background  *renderer.BackgroundRenderer
	hud         *ui.HUD
	perfPanel   *ui.PerfPanel
	inspector   *inspector.Inspector
	showPerf    bool
	perfWasDown bool

	lastFlush int32
}

// NewGameWithOptions creates a game for the given config. The scene is
// populated from cfg.Scene when the pad starts, and again on every reset.
func NewGameWithOptions(cfg *config.Config, opts Options) (*Game, error) {
	g := &Game{
		cfg:           cfg,
		pad:           pad.New(pad.OptionsFromConfig(cfg)),
		opts:          opts,
		camera:        camera.New(float64(cfg.Screen.Width), float64(cfg.Screen.Height), cfg.Camera.MinZoom, cfg.Camera.MaxZoom),
		hold:          input.HoldCounter{Key: input.KeyW},
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		registry:      systems.NewSystemRegistry(),
	}
	g.pad.SetPerf(g.perfCollector)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}

	if opts.Headless {
		g.keys = input.None
		g.recorder = render.NewRecorder()
	} else {
		g.keys = renderer.Keyboard{}
		g.canvas = renderer.NewCanvas()
		g.background = renderer.NewBackgroundRenderer(cfg.Derived.Background, 50)
		g.hud = ui.NewHUD()
		g.perfPanel = ui.NewPerfPanel(int32(cfg.Screen.Width)-230, 10, 220)
		g.inspector = inspector.NewInspector(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	}

	g.pad.OnStart(func(p *pad.Pad) {
		p.FromConfig(cfg)
	})
	g.pad.OnUpdate(g.countHeldW)
	g.pad.Start()

	return g, nil
}

// Pad returns the driven pad.
func (g *Game) Pad() *pad.Pad {
	return g.pad
}

// Camera returns the view camera.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Tick returns the pad tick.
func (g *Game) Tick() int32 {
	return g.pad.Tick()
}

// SetKeys replaces the key source, e.g. to script a headless run.
func (g *Game) SetKeys(keys input.KeyState) {
	g.keys = keys
}

// countHeldW logs how long W has been held in total each time it is released.
func (g *Game) countHeldW(p *pad.Pad, keys input.KeyState) {
	if g.hold.Update(keys) {
		slog.Info("key held", "key", g.hold.Key.String(), "count", g.hold.Count(), "tick", p.Tick())
	}
}

// Unload flushes and closes output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
