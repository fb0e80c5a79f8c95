package shapes

import (
	"image/color"

	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/render"
)

// Rectangle is anchored at its top-left corner and rotates about its
// geometric center.
type Rectangle struct {
	Base
	rotation
	Width, Height float64
}

func NewRectangle(col color.RGBA, width, height float64, position geom.Vec2, theta float64) *Rectangle {
	return &Rectangle{
		Base:     newBase(col, position),
		rotation: rotation{theta: theta},
		Width:    width,
		Height:   height,
	}
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Resize scales width and height uniformly.
func (r *Rectangle) Resize(factor float64) {
	r.Width *= factor
	r.Height *= factor
}

func (r *Rectangle) pivot() geom.Vec2 {
	return geom.V(r.Width/2, r.Height/2)
}

func (r *Rectangle) Centroid() geom.Vec2 {
	return r.position.Add(r.pivot())
}

func (r *Rectangle) Draw(cv render.Canvas) {
	render.Pivot(cv, r.position, r.pivot(), r.theta, func(c render.Canvas) {
		c.FillRect(geom.Zero, geom.V(r.Width, r.Height), r.color)
	})
}
