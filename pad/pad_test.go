package pad

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/pthm-cable/drawpad/config"
	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/input"
	"github.com/pthm-cable/drawpad/physics"
	"github.com/pthm-cable/drawpad/render"
	"github.com/pthm-cable/drawpad/shapes"
	"github.com/pthm-cable/drawpad/telemetry"
)

func TestAddRemove(t *testing.T) {
	p := New(DefaultOptions())
	a := shapes.NewCircle(shapes.Black, 1, geom.Zero)
	b := shapes.NewRectangle(shapes.Black, 2, 2, geom.Zero, 0)
	c := shapes.NewTriangle(shapes.Black, 3, geom.Zero, 0)

	p.Add(a)
	eb := p.Add(b, WithMotion(geom.V(1, 0), 0, 0))
	p.Add(c, WithGravity(nil))

	if p.Len() != 3 {
		t.Fatalf("expected 3 shapes, got %d", p.Len())
	}
	got := p.Shapes()
	if got[0] != shapes.Shape(a) || got[1] != shapes.Shape(b) || got[2] != shapes.Shape(c) {
		t.Error("expected shapes in insertion order")
	}

	if !p.Remove(eb) {
		t.Error("expected remove to succeed")
	}
	if p.Remove(eb) {
		t.Error("expected second remove to fail")
	}
	if p.Len() != 2 {
		t.Errorf("expected 2 shapes, got %d", p.Len())
	}

	if !p.RemoveShape(a) {
		t.Error("expected RemoveShape to find the circle")
	}
	if p.RemoveShape(a) {
		t.Error("expected RemoveShape to miss a removed shape")
	}
	if got := p.Shapes(); len(got) != 1 || got[0] != shapes.Shape(c) {
		t.Errorf("expected only the triangle left, got %v", got)
	}
}

func TestUpdateRunsHooksThenSystems(t *testing.T) {
	p := New(DefaultOptions())
	circle := shapes.NewCircle(shapes.Black, 1, geom.Zero)
	e := p.Add(circle, WithMotion(geom.V(2, 0), 0, 0))

	var seen []geom.Vec2
	p.OnUpdate(func(p *Pad, keys input.KeyState) {
		seen = append(seen, circle.Position())
	})

	p.Update(input.None)
	p.Update(input.None)

	if len(seen) != 2 || seen[0] != geom.Zero || seen[1] != geom.V(2, 0) {
		t.Errorf("expected hooks to see positions before motion, got %v", seen)
	}
	if circle.Position() != geom.V(4, 0) {
		t.Errorf("expected (4, 0), got %s", circle.Position())
	}
	if p.Tick() != 2 {
		t.Errorf("expected tick 2, got %d", p.Tick())
	}
	if m := p.Motion(e); m == nil || m.Velocity != geom.V(2, 0) {
		t.Errorf("expected motion attached, got %v", m)
	}
	if p.Body(e) != nil {
		t.Error("expected no body on a shape added without gravity")
	}
}

func TestGravity(t *testing.T) {
	p := New(DefaultOptions())
	circle := shapes.NewCircle(shapes.Black, 1, geom.Zero)
	e := p.Add(circle, WithGravity(physics.NewBody()))

	p.Update(input.None)
	p.Update(input.None)

	if !scalar.EqualWithinAbs(circle.Position().Y, 4.9, 1e-4) {
		t.Errorf("expected y 4.9, got %f", circle.Position().Y)
	}
	body := p.Body(e)
	if body == nil {
		t.Fatal("expected body")
	}
	if !scalar.EqualWithinAbs(body.Velocity.Y, 3.2667, 1e-4) {
		t.Errorf("expected velocity 3.2667, got %f", body.Velocity.Y)
	}
}

func TestGravityKeepsCallerBody(t *testing.T) {
	p := New(DefaultOptions())
	circle := shapes.NewCircle(shapes.Black, 1, geom.Zero)
	body := physics.NewBody()
	e := p.Add(circle, WithGravity(body))

	p.Update(nil)

	if p.Body(e) != body {
		t.Fatal("expected the pad to hold the body it was given")
	}
	if !body.Velocity.ApproxEqual(geom.V(0, 1.6333), 1e-4) {
		t.Errorf("expected velocity (0, 1.6333), got %s", body.Velocity)
	}

	// Changes through the caller's pointer reach the integrator.
	body.Reset()
	body.Mass = 0
	p.Update(nil)
	if !scalar.EqualWithinAbs(circle.Position().Y, 1.6333, 1e-4) {
		t.Errorf("expected shape to stay at y 1.6333 after reset with zero mass, got %f", circle.Position().Y)
	}
}

func TestPause(t *testing.T) {
	p := New(DefaultOptions())
	circle := shapes.NewCircle(shapes.Black, 1, geom.Zero)
	p.Add(circle, WithMotion(geom.V(1, 0), 0, 0))

	hooks := 0
	p.OnUpdate(func(*Pad, input.KeyState) { hooks++ })

	keys := input.NewKeys(input.KeySpace)
	p.Update(keys) // toggles on key down
	p.Update(keys) // held, no second toggle
	if !p.Paused {
		t.Fatal("expected pad paused")
	}
	if circle.Position() != geom.Zero || p.Tick() != 0 {
		t.Errorf("expected no motion while paused, got %s at tick %d", circle.Position(), p.Tick())
	}
	if hooks != 2 {
		t.Errorf("expected hooks to run while paused, got %d", hooks)
	}

	keys.Release(input.KeySpace)
	p.Update(keys)
	keys.Press(input.KeySpace)
	p.Update(keys)
	if p.Paused {
		t.Error("expected second press to unpause")
	}
	if circle.Position() != geom.V(1, 0) {
		t.Errorf("expected one tick of motion, got %s", circle.Position())
	}
}

func TestStartAndReset(t *testing.T) {
	p := New(DefaultOptions())
	starts := 0
	p.OnStart(func(p *Pad) {
		starts++
		p.Add(shapes.NewCircle(shapes.Black, 1, geom.Zero), WithMotion(geom.V(1, 0), 0, 0))
	})

	p.Start()
	p.Start()
	if starts != 1 || p.Len() != 1 {
		t.Fatalf("expected one start, got %d with %d shapes", starts, p.Len())
	}

	p.Update(input.None)
	p.Update(input.NewKeys(input.KeyR))
	if starts != 2 {
		t.Errorf("expected reset to rerun start hooks, got %d", starts)
	}
	if p.Len() != 1 {
		t.Errorf("expected scene rebuilt with 1 shape, got %d", p.Len())
	}
	// Reset happens before the systems, so the fresh shape moved once.
	if p.Tick() != 1 {
		t.Errorf("expected tick 1 after reset, got %d", p.Tick())
	}
	if pos := p.Shapes()[0].Position(); pos != geom.V(1, 0) {
		t.Errorf("expected fresh shape at (1, 0), got %s", pos)
	}
}

func TestDraw(t *testing.T) {
	p := New(DefaultOptions())
	p.Add(shapes.NewRectangle(shapes.Black, 10, 4, geom.V(10, 20), 0))
	p.Add(shapes.NewCircle(shapes.Black, 5, geom.V(0, 0)))

	rec := render.NewRecorder()
	if n := p.Draw(rec); n != 2 {
		t.Fatalf("expected 2 shapes drawn, got %d", n)
	}
	if rec.Primitives[0].Kind != render.PrimitiveRect || rec.Primitives[1].Kind != render.PrimitiveEllipse {
		t.Errorf("unexpected primitive order %s, %s", rec.Primitives[0].Kind, rec.Primitives[1].Kind)
	}
	min, max := rec.Primitives[0].Bounds()
	if !min.ApproxEqual(geom.V(10, 20), 1e-9) || !max.ApproxEqual(geom.V(20, 24), 1e-9) {
		t.Errorf("expected rect bounds (10,20)-(20,24), got %s-%s", min, max)
	}
}

func TestFromConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	p := New(OptionsFromConfig(cfg))
	p.FromConfig(cfg)

	if p.Len() != len(cfg.Scene) {
		t.Fatalf("expected %d shapes, got %d", len(cfg.Scene), p.Len())
	}
	stats := p.Stats()
	if stats.Falling != 1 {
		t.Errorf("expected 1 falling shape, got %d", stats.Falling)
	}
	if stats.Moving != 4 {
		t.Errorf("expected 4 moving shapes, got %d", stats.Moving)
	}

	first := p.Shapes()[0]
	p.Update(input.None)
	if first.Position() != geom.V(6, 5) {
		t.Errorf("expected red circle at (6, 5) after one tick, got %s", first.Position())
	}
}

func TestPerfPhases(t *testing.T) {
	p := New(DefaultOptions())
	perf := telemetry.NewPerfCollector(10)
	p.SetPerf(perf)

	perf.StartTick()
	p.Update(input.None)
	p.Draw(render.NewRecorder())
	p.Stats()
	perf.EndTick()

	stats := perf.Stats()
	for _, phase := range []string{telemetry.PhaseHooks, telemetry.PhaseMotion, telemetry.PhaseGravity, telemetry.PhaseDraw, telemetry.PhaseStats} {
		if _, ok := stats.PhaseAvg[phase]; !ok {
			t.Errorf("expected phase %s recorded", phase)
		}
	}
}

func TestHitTest(t *testing.T) {
	p := New(DefaultOptions())
	below := p.Add(shapes.NewRectangle(shapes.Black, 100, 100, geom.V(0, 0), 0))
	above := p.Add(shapes.NewCircle(shapes.Black, 10, geom.V(40, 40)))

	if e, ok := p.HitTest(geom.V(50, 50)); !ok || e != above {
		t.Error("expected the later shape to win where both overlap")
	}
	if e, ok := p.HitTest(geom.V(5, 5)); !ok || e != below {
		t.Error("expected the rectangle to be hit outside the circle")
	}
	if _, ok := p.HitTest(geom.V(500, 500)); ok {
		t.Error("expected a miss away from every shape")
	}
	if p.Shape(above) == nil {
		t.Error("expected shape for live entity")
	}
	p.Remove(above)
	if p.Shape(above) != nil {
		t.Error("expected nil shape for removed entity")
	}
}
