package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drawpad/components"
	"github.com/pthm-cable/drawpad/geom"
)

// GravitySystem pulls falling shapes through their physics bodies.
type GravitySystem struct {
	filter  ecs.Filter2[components.Drawable, components.Falling]
	Gravity geom.Vec2
	DT      float64
}

// NewGravitySystem creates a gravity system with the given acceleration and
// timestep in seconds.
func NewGravitySystem(w *ecs.World, gravity geom.Vec2, dt float64) *GravitySystem {
	return &GravitySystem{
		filter:  *ecs.NewFilter2[components.Drawable, components.Falling](w),
		Gravity: gravity,
		DT:      dt,
	}
}

// Update integrates one tick for every falling shape.
func (s *GravitySystem) Update(w *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		d, f := query.Get()
		pos := f.Body.ApplyGravity(d.Shape.Position(), s.Gravity, s.DT)
		d.Shape.SetPosition(pos)
	}
}
