// Package physics integrates gravity for a single body per tick.
package physics

import "github.com/pthm-cable/drawpad/geom"

// DefaultTimestep is the tick duration in seconds at 60 Hz.
const DefaultTimestep = 1.0 / 60

// DefaultMass is the mass a new body starts with.
const DefaultMass = 10

// Body carries the integration state for one shape. It holds no reference
// to the shape it moves; the caller passes the position in and stores the
// result.
//
// Acceleration, Force, Friction and Restitution are carried but not read by
// any integrator yet. Do not rely on them having an effect.
type Body struct {
	Velocity     geom.Vec2
	Acceleration geom.Vec2
	Force        geom.Vec2
	Mass         float64 `inspect:"label,fmt:%.1f"`
	Friction     float64 `inspect:"bar"`
	Restitution  float64 `inspect:"bar"`
}

// NewBody returns a body at rest with DefaultMass.
func NewBody() *Body {
	return &Body{Mass: DefaultMass}
}

// ApplyGravity advances one tick with semi-implicit Euler and returns the new
// position. The impulse gravity*mass*dt is added to the velocity first, then
// the whole velocity is added to position. Velocity accumulates across calls,
// so results depend on call order.
func (b *Body) ApplyGravity(position, gravity geom.Vec2, dt float64) geom.Vec2 {
	impulse := gravity.Scale(b.Mass).Scale(dt)
	b.Velocity = b.Velocity.Add(impulse)
	return position.Add(b.Velocity)
}

// Reset stops the body.
func (b *Body) Reset() {
	b.Velocity = geom.Zero
}
