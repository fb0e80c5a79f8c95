package shapes

import (
	"image/color"

	"github.com/pthm-cable/drawpad/geom"
)

// Spec describes a shape independently of its variant. Only the size
// fields that apply to Kind are read.
type Spec struct {
	Kind     Kind
	Color    color.RGBA
	Position geom.Vec2
	Rotation float64

	Radius float64 // circle
	Width  float64 // rectangle
	Height float64 // rectangle
	Side   float64 // triangle
}

// New builds the shape described by spec. Rotation is ignored for circles.
func New(spec Spec) Shape {
	switch spec.Kind {
	case KindRectangle:
		return NewRectangle(spec.Color, spec.Width, spec.Height, spec.Position, spec.Rotation)
	case KindTriangle:
		return NewTriangle(spec.Color, spec.Side, spec.Position, spec.Rotation)
	default:
		return NewCircle(spec.Color, spec.Radius, spec.Position)
	}
}
