package systems

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drawpad/components"
	"github.com/pthm-cable/drawpad/render"
	"github.com/pthm-cable/drawpad/shapes"
)

// DrawSystem draws shapes in the order they were added. ECS iteration order
// follows archetypes, so the pass collects and sorts by Drawable.Order first.
type DrawSystem struct {
	filter ecs.Filter1[components.Drawable]
	buf    []components.Drawable
}

// NewDrawSystem creates a new draw system.
func NewDrawSystem(w *ecs.World) *DrawSystem {
	return &DrawSystem{
		filter: *ecs.NewFilter1[components.Drawable](w),
	}
}

// Collect returns every drawable sorted by insertion order. The slice is
// reused by the next call.
func (s *DrawSystem) Collect() []components.Drawable {
	s.buf = s.buf[:0]
	query := s.filter.Query()
	for query.Next() {
		s.buf = append(s.buf, *query.Get())
	}
	sort.Slice(s.buf, func(i, j int) bool { return s.buf[i].Order < s.buf[j].Order })
	return s.buf
}

// Shapes returns the shapes in insertion order.
func (s *DrawSystem) Shapes() []shapes.Shape {
	drawables := s.Collect()
	out := make([]shapes.Shape, len(drawables))
	for i, d := range drawables {
		out[i] = d.Shape
	}
	return out
}

// Draw renders every shape onto c. Later shapes paint over earlier ones.
func (s *DrawSystem) Draw(c render.Canvas) int {
	drawables := s.Collect()
	for _, d := range drawables {
		d.Shape.Draw(c)
	}
	return len(drawables)
}
