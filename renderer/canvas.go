// Package renderer draws the pad with raylib.
package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/render"
)

var _ render.Canvas = (*Canvas)(nil)

// Canvas implements render.Canvas on the rlgl matrix stack. It must be used
// between rl.BeginDrawing and rl.EndDrawing.
type Canvas struct{}

// NewCanvas creates a raylib canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) Push() { rl.PushMatrix() }
func (c *Canvas) Pop()  { rl.PopMatrix() }

func (c *Canvas) Translate(d geom.Vec2) {
	rl.Translatef(float32(d.X), float32(d.Y), 0)
}

// Rotate turns about the z axis. With y pointing down a positive angle
// appears clockwise on screen.
func (c *Canvas) Rotate(theta float64) {
	rl.Rotatef(float32(theta*180/math.Pi), 0, 0, 1)
}

func (c *Canvas) Scale(s float64) {
	rl.Scalef(float32(s), float32(s), 1)
}

func (c *Canvas) FillRect(min, size geom.Vec2, col color.RGBA) {
	rl.DrawRectangleV(vec(min), vec(size), col)
}

// FillEllipse fills the ellipse inscribed in the box. Circles keep their
// sub-pixel center; DrawEllipse only takes integer centers.
func (c *Canvas) FillEllipse(min, size geom.Vec2, col color.RGBA) {
	center := min.Add(size.Scale(0.5))
	rx, ry := math.Abs(size.X/2), math.Abs(size.Y/2)
	if rx == ry {
		rl.DrawCircleV(vec(center), float32(rx), col)
		return
	}
	rl.DrawEllipse(int32(center.X), int32(center.Y), float32(rx), float32(ry), col)
}

// FillPolygon fills a convex polygon as a triangle fan.
func (c *Canvas) FillPolygon(points []geom.Vec2, col color.RGBA) {
	if len(points) < 3 {
		return
	}
	// raylib culls triangles that are not counter-clockwise on screen,
	// which is a negative signed area with y pointing down.
	pts := points
	if signedArea(points) > 0 {
		pts = make([]geom.Vec2, len(points))
		for i, p := range points {
			pts[len(points)-1-i] = p
		}
	}
	for i := 1; i < len(pts)-1; i++ {
		rl.DrawTriangle(vec(pts[0]), vec(pts[i]), vec(pts[i+1]), col)
	}
}

func signedArea(points []geom.Vec2) float64 {
	var a float64
	for i := range points {
		a += geom.Cross(points[i], points[(i+1)%len(points)])
	}
	return a / 2
}

func vec(v geom.Vec2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}
