package shapes

import (
	"image/color"
	"math"

	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/render"
)

// Circle is anchored at the top-left corner of its bounding box.
// It has no rotation.
type Circle struct {
	Base
	Radius float64
}

// NewCircle creates a circle whose bounding box starts at position.
func NewCircle(col color.RGBA, radius float64, position geom.Vec2) *Circle {
	return &Circle{Base: newBase(col, position), Radius: radius}
}

func (c *Circle) Kind() Kind { return KindCircle }

// Area returns Pi*r^2.
func (c *Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c *Circle) Resize(factor float64) {
	c.Radius *= factor
}

// Draw fills the ellipse inscribed in the 2r x 2r box at the anchor.
func (c *Circle) Draw(cv render.Canvas) {
	d := 2 * c.Radius
	cv.FillEllipse(c.position, geom.V(d, d), c.color)
}
