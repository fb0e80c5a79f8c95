// Package render defines the drawing context shapes paint into and the
// pivot transform used by rotated shapes.
//
// Coordinates follow screen convention: x grows right, y grows down. A
// positive rotation is counter-clockwise in math terms, so it appears
// clockwise on screen.
package render

import (
	"image/color"

	"github.com/pthm-cable/drawpad/geom"
)

// Canvas is a 2D render context with an affine transform stack.
// Translate, Rotate and Scale post-multiply the current transform, so the
// last call applies first to the geometry drawn afterwards.
type Canvas interface {
	Push()
	Pop()
	Translate(d geom.Vec2)
	Rotate(theta float64)
	Scale(s float64)

	FillRect(min, size geom.Vec2, col color.RGBA)
	FillEllipse(min, size geom.Vec2, col color.RGBA)
	FillPolygon(points []geom.Vec2, col color.RGBA)
}

// Pivot draws local-space geometry rotated by theta about a pivot.
// position is the shape anchor and centroid the pivot offset in local space.
// The sequence is translate(position+centroid), rotate(theta),
// translate(-centroid), draw. Changing the order moves the shape.
func Pivot(c Canvas, position, centroid geom.Vec2, theta float64, draw func(Canvas)) {
	c.Push()
	defer c.Pop()

	c.Translate(position.Add(centroid))
	c.Rotate(theta)
	c.Translate(centroid.Scale(-1))
	draw(c)
}

