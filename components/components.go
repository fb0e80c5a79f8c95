// Package components defines ECS components for the pad scene.
package components

import (
	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/physics"
	"github.com/pthm-cable/drawpad/shapes"
)

// Drawable is carried by every entity on the pad.
type Drawable struct {
	Shape shapes.Shape
	Order uint64 // insertion sequence, draw order is ascending
}

// Motion moves a shape by a fixed amount every tick.
type Motion struct {
	// Position change per tick
	Velocity geom.Vec2
	// Rotation change per tick in radians, ignored for circles
	Spin float64 `inspect:"label,fmt:%.3f"`
	// Resize factor per tick (0 = none)
	Growth float64 `inspect:"label,fmt:%.4f"`
}

// IsZero reports whether the motion changes nothing.
func (m Motion) IsZero() bool {
	return m.Velocity == geom.Zero && m.Spin == 0 && (m.Growth == 0 || m.Growth == 1)
}

// Falling marks a shape pulled by gravity. Body is shared with whoever
// attached it, so the integration state is visible through that pointer.
type Falling struct {
	Body *physics.Body
}
