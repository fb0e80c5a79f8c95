// Package config provides configuration loading and access for the drawing pad.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/shapes"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all pad configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Scene     []ShapeConfig   `yaml:"scene"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"` // hex, #rrggbb or #rrggbbaa
}

// PhysicsConfig holds integrator parameters.
type PhysicsConfig struct {
	DT      float64   `yaml:"dt"`      // seconds per tick
	Gravity geom.Vec2 `yaml:"gravity"` // acceleration applied to falling shapes
	Mass    float64   `yaml:"mass"`    // mass of newly created bodies
}

// CameraConfig holds viewport controls.
type CameraConfig struct {
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	PanSpeed float64 `yaml:"pan_speed"` // screen pixels per tick while an arrow key is held
	ZoomStep float64 `yaml:"zoom_step"` // zoom multiplier per tick while +/- is held
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"` // ticks averaged by the perf collector
	LogEvery   int `yaml:"log_every"`   // ticks between frame stats records (0 = never)
}

// ShapeConfig describes one shape of the initial scene.
type ShapeConfig struct {
	Kind     string  `yaml:"kind"`
	Color    string  `yaml:"color"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`

	Radius float64 `yaml:"radius"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Side   float64 `yaml:"side"`

	Velocity geom.Vec2 `yaml:"velocity"` // position change per tick
	Spin     float64   `yaml:"spin"`     // rotation change per tick (radians)
	Growth   float64   `yaml:"growth"`   // resize factor per tick (0 = no growth)
	Gravity  bool      `yaml:"gravity"`  // attach a physics body
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	TickDuration time.Duration
	Background   color.RGBA
	Shapes       []shapes.Spec // parallel to Scene
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived validates the loaded values and fills Derived.
func (c *Config) computeDerived() error {
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %g", c.Physics.DT)
	}
	c.Derived.TickDuration = time.Second / time.Duration(c.Screen.TargetFPS)

	bg, err := ParseColor(c.Screen.Background)
	if err != nil {
		return fmt.Errorf("screen.background: %w", err)
	}
	c.Derived.Background = bg

	c.Derived.Shapes = make([]shapes.Spec, len(c.Scene))
	for i, sc := range c.Scene {
		spec, err := sc.Spec()
		if err != nil {
			return fmt.Errorf("scene[%d]: %w", i, err)
		}
		c.Derived.Shapes[i] = spec
	}
	return nil
}

// Spec converts the entry to a shape spec.
func (sc ShapeConfig) Spec() (shapes.Spec, error) {
	kind, err := shapes.ParseKind(sc.Kind)
	if err != nil {
		return shapes.Spec{}, err
	}
	col := shapes.Black
	if sc.Color != "" {
		if col, err = ParseColor(sc.Color); err != nil {
			return shapes.Spec{}, fmt.Errorf("color: %w", err)
		}
	}
	return shapes.Spec{
		Kind:     kind,
		Color:    col,
		Position: geom.V(sc.X, sc.Y),
		Rotation: sc.Rotation,
		Radius:   sc.Radius,
		Width:    sc.Width,
		Height:   sc.Height,
		Side:     sc.Side,
	}, nil
}

// ParseColor parses #rrggbb or #rrggbbaa. Alpha defaults to opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
