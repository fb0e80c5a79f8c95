// Package camera provides a 2D camera system for viewport control.
package camera

import (
	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/input"
	"github.com/pthm-cable/drawpad/render"
)

// Camera controls the viewport onto the pad. Unlike a world with fixed
// bounds, the pad is unbounded, so panning is never clamped.
type Camera struct {
	// Center is the camera center in world coordinates
	Center geom.Vec2

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	Viewport geom.Vec2

	// Zoom constraints
	MinZoom, MaxZoom float64

	home geom.Vec2
}

// New creates a camera showing the region (0,0)-(viewportW,viewportH) at 1:1 zoom.
func New(viewportW, viewportH, minZoom, maxZoom float64) *Camera {
	home := geom.V(viewportW/2, viewportH/2)
	return &Camera{
		Center:   home,
		Zoom:     1.0,
		Viewport: geom.V(viewportW, viewportH),
		MinZoom:  minZoom,
		MaxZoom:  maxZoom,
		home:     home,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(w geom.Vec2) geom.Vec2 {
	return c.Viewport.Scale(0.5).Add(w.Sub(c.Center).Scale(c.Zoom))
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(s geom.Vec2) geom.Vec2 {
	return c.Center.Add(s.Sub(c.Viewport.Scale(0.5)).Scale(1 / c.Zoom))
}

// Apply pushes the world-to-screen transform onto the canvas. The caller
// must Pop it after drawing.
func (c *Camera) Apply(cv render.Canvas) {
	cv.Push()
	cv.Translate(c.Viewport.Scale(0.5))
	cv.Scale(c.Zoom)
	cv.Translate(c.Center.Scale(-1))
}

// IsVisible returns true if a circle at w with the given radius could be
// visible on screen (conservative check for culling).
func (c *Camera) IsVisible(w geom.Vec2, radius float64) bool {
	d := w.Sub(c.Center)
	halfW := c.Viewport.X/(2*c.Zoom) + radius
	halfH := c.Viewport.Y/(2*c.Zoom) + radius
	return abs(d.X) <= halfW && abs(d.Y) <= halfH
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.Viewport = geom.V(viewportW, viewportH)
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(d geom.Vec2) {
	c.Center = c.Center.Add(d.Scale(1 / c.Zoom))
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset() {
	c.Center = c.home
	c.Zoom = 1.0
}

// HandleInput pans with the arrow keys and zooms with = and -.
func (c *Camera) HandleInput(keys input.KeyState, panSpeed, zoomStep float64) {
	var d geom.Vec2
	if keys.IsKeyDown(input.KeyLeft) {
		d.X -= panSpeed
	}
	if keys.IsKeyDown(input.KeyRight) {
		d.X += panSpeed
	}
	if keys.IsKeyDown(input.KeyUp) {
		d.Y -= panSpeed
	}
	if keys.IsKeyDown(input.KeyDown) {
		d.Y += panSpeed
	}
	if d != geom.Zero {
		c.Pan(d)
	}

	if keys.IsKeyDown(input.KeyEqual) {
		c.ZoomBy(zoomStep)
	}
	if keys.IsKeyDown(input.KeyMinus) {
		c.ZoomBy(1 / zoomStep)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
