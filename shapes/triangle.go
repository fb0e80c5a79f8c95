package shapes

import (
	"image/color"
	"math"

	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/render"
)

var sqrt3 = math.Sqrt(3)

// Triangle is an equilateral triangle with side length Side. Its local
// vertices are (0,0), (side,0) and (side/2, sqrt(3)/2*side), so with y
// pointing down it is drawn apex-down from the anchor.
//
// It pivots about (side/2, sqrt(3)/4*side), half its height, which is not
// the same convention as Rectangle's geometric center.
type Triangle struct {
	Base
	rotation
	Side float64
}

func NewTriangle(col color.RGBA, side float64, position geom.Vec2, theta float64) *Triangle {
	return &Triangle{
		Base:     newBase(col, position),
		rotation: rotation{theta: theta},
		Side:     side,
	}
}

func (t *Triangle) Kind() Kind { return KindTriangle }

// Height returns sqrt(3)/2 * side.
func (t *Triangle) Height() float64 {
	return sqrt3 / 2 * t.Side
}

// Area returns sqrt(3)/4 * side^2.
func (t *Triangle) Area() float64 {
	return sqrt3 / 4 * t.Side * t.Side
}

func (t *Triangle) Resize(factor float64) {
	t.Side *= factor
}

// Vertices returns the local-space vertices.
func (t *Triangle) Vertices() []geom.Vec2 {
	return []geom.Vec2{
		geom.V(0, 0),
		geom.V(t.Side, 0),
		geom.V(t.Side/2, t.Height()),
	}
}

func (t *Triangle) pivot() geom.Vec2 {
	return geom.V(t.Side/2, t.Height()/2)
}

func (t *Triangle) Centroid() geom.Vec2 {
	return t.position.Add(t.pivot())
}

func (t *Triangle) Draw(cv render.Canvas) {
	render.Pivot(cv, t.position, t.pivot(), t.theta, func(c render.Canvas) {
		c.FillPolygon(t.Vertices(), t.color)
	})
}
