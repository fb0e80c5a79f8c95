// Package systems contains ECS systems for the pad scene.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drawpad/components"
	"github.com/pthm-cable/drawpad/shapes"
)

// MotionSystem applies per-tick velocity, spin and growth.
type MotionSystem struct {
	filter ecs.Filter2[components.Drawable, components.Motion]
}

// NewMotionSystem creates a new motion system.
func NewMotionSystem(w *ecs.World) *MotionSystem {
	return &MotionSystem{
		filter: *ecs.NewFilter2[components.Drawable, components.Motion](w),
	}
}

// Update advances every moving shape by one tick.
func (s *MotionSystem) Update(w *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		d, m := query.Get()
		Move(d.Shape, *m)
	}
}

// Move applies one tick of m to a shape. Spin only affects rotatable shapes.
func Move(s shapes.Shape, m components.Motion) {
	if m.Velocity.X != 0 || m.Velocity.Y != 0 {
		s.SetPosition(s.Position().Add(m.Velocity))
	}
	if m.Spin != 0 {
		if r, ok := s.(shapes.Rotatable); ok {
			r.SetRotation(r.Rotation() + m.Spin)
		}
	}
	if m.Growth != 0 {
		s.Resize(m.Growth)
	}
}
