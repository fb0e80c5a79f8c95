// Package pad drives a scene of shapes: it owns the ECS world, runs the
// per-tick systems and draws everything in insertion order.
package pad

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drawpad/components"
	"github.com/pthm-cable/drawpad/config"
	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/input"
	"github.com/pthm-cable/drawpad/physics"
	"github.com/pthm-cable/drawpad/render"
	"github.com/pthm-cable/drawpad/shapes"
	"github.com/pthm-cable/drawpad/systems"
	"github.com/pthm-cable/drawpad/telemetry"
)

// Options holds the integration parameters a pad runs with.
type Options struct {
	DT      float64   // seconds per tick
	Gravity geom.Vec2 // acceleration for falling shapes
	Mass    float64   // mass for bodies created by FromConfig
}

// DefaultOptions returns 60 Hz ticks with earth-like gravity.
func DefaultOptions() Options {
	return Options{
		DT:      physics.DefaultTimestep,
		Gravity: geom.V(0, 9.8),
		Mass:    physics.DefaultMass,
	}
}

// OptionsFromConfig reads the physics section of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		DT:      cfg.Physics.DT,
		Gravity: cfg.Physics.Gravity,
		Mass:    cfg.Physics.Mass,
	}
}

// StartFunc runs once when the pad starts and again after every reset.
type StartFunc func(p *Pad)

// UpdateFunc runs at the start of every tick, before the systems.
type UpdateFunc func(p *Pad, keys input.KeyState)

// Pad is the drawing surface and its frame driver. It is not safe for
// concurrent use; the driver goroutine owns it.
type Pad struct {
	world *ecs.World

	drawMap    *ecs.Map1[components.Drawable]
	motionMap  *ecs.Map[components.Motion]
	fallingMap *ecs.Map[components.Falling]
	allFilter  *ecs.Filter1[components.Drawable]

	motion  *systems.MotionSystem
	gravity *systems.GravitySystem
	draw    *systems.DrawSystem
	stats   *systems.StatsSystem

	opts      Options
	nextOrder uint64
	tick      int32
	started   bool

	// Paused skips the systems; hooks still run.
	Paused bool

	startHooks  []StartFunc
	updateHooks []UpdateFunc

	perf     *telemetry.PerfCollector
	keysDown map[input.Key]bool
}

// New creates an empty pad.
func New(opts Options) *Pad {
	world := ecs.NewWorld()

	return &Pad{
		world:      world,
		drawMap:    ecs.NewMap1[components.Drawable](world),
		motionMap:  ecs.NewMap[components.Motion](world),
		fallingMap: ecs.NewMap[components.Falling](world),
		allFilter:  ecs.NewFilter1[components.Drawable](world),
		motion:     systems.NewMotionSystem(world),
		gravity:    systems.NewGravitySystem(world, opts.Gravity, opts.DT),
		draw:       systems.NewDrawSystem(world),
		stats:      systems.NewStatsSystem(world),
		opts:       opts,
		keysDown:   make(map[input.Key]bool),
	}
}

// Option configures a shape as it is added.
type Option func(p *Pad, e ecs.Entity)

// WithMotion moves the shape every tick. A zero growth means no resizing.
func WithMotion(velocity geom.Vec2, spin, growth float64) Option {
	return func(p *Pad, e ecs.Entity) {
		p.motionMap.Add(e, &components.Motion{Velocity: velocity, Spin: spin, Growth: growth})
	}
}

// WithGravity attaches body to the shape. A nil body gets a fresh one.
func WithGravity(body *physics.Body) Option {
	return func(p *Pad, e ecs.Entity) {
		if body == nil {
			body = physics.NewBody()
		}
		p.fallingMap.Add(e, &components.Falling{Body: body})
	}
}

// Add puts s on the pad above every shape added before it.
func (p *Pad) Add(s shapes.Shape, opts ...Option) ecs.Entity {
	order := p.nextOrder
	p.nextOrder++

	e := p.drawMap.NewEntity(&components.Drawable{Shape: s, Order: order})
	for _, opt := range opts {
		opt(p, e)
	}

	slog.Debug("shape added", "kind", s.Kind().String(), "order", order, "position", s.Position().String())
	return e
}

// Remove takes the entity off the pad. It returns false if e is not on it.
func (p *Pad) Remove(e ecs.Entity) bool {
	if !p.world.Alive(e) {
		return false
	}
	p.world.RemoveEntity(e)
	slog.Debug("shape removed", "tick", p.tick)
	return true
}

// RemoveShape removes the first entity drawing s.
func (p *Pad) RemoveShape(s shapes.Shape) bool {
	var target ecs.Entity
	found := false

	query := p.allFilter.Query()
	for query.Next() {
		if !found && query.Get().Shape == s {
			target = query.Entity()
			found = true
		}
	}
	if !found {
		return false
	}
	return p.Remove(target)
}

// Clear removes every shape.
func (p *Pad) Clear() {
	// Collect first: entities cannot be removed during a query
	var entities []ecs.Entity
	query := p.allFilter.Query()
	for query.Next() {
		entities = append(entities, query.Entity())
	}
	for _, e := range entities {
		p.world.RemoveEntity(e)
	}
	p.nextOrder = 0
}

// Shapes returns the shapes in insertion order.
func (p *Pad) Shapes() []shapes.Shape {
	return p.draw.Shapes()
}

// Len returns the number of shapes on the pad.
func (p *Pad) Len() int {
	n := 0
	query := p.allFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Shape returns the shape drawn by e, or nil.
func (p *Pad) Shape(e ecs.Entity) shapes.Shape {
	if !p.world.Alive(e) {
		return nil
	}
	return p.drawMap.Get(e).Shape
}

// Bounds returns the world-space bounding box of a shape as drawn.
func Bounds(s shapes.Shape) (min, max geom.Vec2) {
	rec := render.NewRecorder()
	s.Draw(rec)
	if len(rec.Primitives) == 0 {
		return s.Position(), s.Position()
	}
	return rec.Primitives[0].Bounds()
}

// HitTest returns the topmost shape whose drawn bounding box contains pt.
func (p *Pad) HitTest(pt geom.Vec2) (ecs.Entity, bool) {
	var hit ecs.Entity
	var hitOrder uint64
	found := false

	query := p.allFilter.Query()
	for query.Next() {
		d := query.Get()
		if found && d.Order < hitOrder {
			continue
		}
		min, max := Bounds(d.Shape)
		if pt.X >= min.X && pt.X <= max.X && pt.Y >= min.Y && pt.Y <= max.Y {
			hit, hitOrder, found = query.Entity(), d.Order, true
		}
	}
	return hit, found
}

// Motion returns the motion attached to e, or nil.
func (p *Pad) Motion(e ecs.Entity) *components.Motion {
	if !p.world.Alive(e) || !p.motionMap.Has(e) {
		return nil
	}
	return p.motionMap.Get(e)
}

// Body returns the physics body attached to e, or nil.
func (p *Pad) Body(e ecs.Entity) *physics.Body {
	if !p.world.Alive(e) || !p.fallingMap.Has(e) {
		return nil
	}
	return p.fallingMap.Get(e).Body
}

// OnStart registers a hook run by Start and Reset.
func (p *Pad) OnStart(fn StartFunc) {
	p.startHooks = append(p.startHooks, fn)
}

// OnUpdate registers a hook run at the start of every tick.
func (p *Pad) OnUpdate(fn UpdateFunc) {
	p.updateHooks = append(p.updateHooks, fn)
}

// SetPerf attaches a collector that times each phase. The caller brackets
// a frame with StartTick and EndTick.
func (p *Pad) SetPerf(perf *telemetry.PerfCollector) {
	p.perf = perf
}

// Start runs the start hooks. Calling it again has no effect.
func (p *Pad) Start() {
	if p.started {
		return
	}
	p.started = true
	for _, fn := range p.startHooks {
		fn(p)
	}
	slog.Info("pad started", "shapes", p.Len())
}

// Reset clears the pad, rewinds the tick counter and reruns the start hooks.
func (p *Pad) Reset() {
	p.Clear()
	p.tick = 0
	for _, fn := range p.startHooks {
		fn(p)
	}
	slog.Info("pad reset", "shapes", p.Len())
}

// Update advances one tick: hooks, then motion, then gravity. Space toggles
// pause and R resets the pad.
func (p *Pad) Update(keys input.KeyState) {
	if keys == nil {
		keys = input.None
	}
	if p.pressed(keys, input.KeySpace) {
		p.Paused = !p.Paused
		slog.Info("pause toggled", "paused", p.Paused, "tick", p.tick)
	}
	if p.pressed(keys, input.KeyR) {
		p.Reset()
	}

	p.phase(systems.IDHooks)
	for _, fn := range p.updateHooks {
		fn(p, keys)
	}

	if p.Paused {
		return
	}

	p.phase(systems.IDMotion)
	p.motion.Update(p.world)

	p.phase(systems.IDGravity)
	p.gravity.Update(p.world)

	p.tick++
}

// pressed reports a key going down since the previous tick.
func (p *Pad) pressed(keys input.KeyState, k input.Key) bool {
	down := keys.IsKeyDown(k)
	was := p.keysDown[k]
	p.keysDown[k] = down
	return down && !was
}

func (p *Pad) phase(name string) {
	if p.perf != nil {
		p.perf.StartPhase(name)
	}
}

// Draw renders every shape onto c in insertion order and returns the count.
func (p *Pad) Draw(c render.Canvas) int {
	p.phase(systems.IDDraw)
	return p.draw.Draw(c)
}

// Tick returns the number of unpaused ticks since start or the last reset.
func (p *Pad) Tick() int32 {
	return p.tick
}

// Options returns the integration parameters.
func (p *Pad) Options() Options {
	return p.opts
}

// Stats summarizes the current scene.
func (p *Pad) Stats() systems.SceneStats {
	p.phase(systems.IDStats)
	return p.stats.Compute()
}

// FromConfig adds every shape of the configured scene.
func (p *Pad) FromConfig(cfg *config.Config) {
	for i, sc := range cfg.Scene {
		s := shapes.New(cfg.Derived.Shapes[i])

		var opts []Option
		m := components.Motion{Velocity: sc.Velocity, Spin: sc.Spin, Growth: sc.Growth}
		if !m.IsZero() {
			opts = append(opts, WithMotion(m.Velocity, m.Spin, m.Growth))
		}
		if sc.Gravity {
			body := physics.NewBody()
			body.Mass = p.opts.Mass
			opts = append(opts, WithGravity(body))
		}
		p.Add(s, opts...)
	}
}
