package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drawpad/camera"
	"github.com/pthm-cable/drawpad/geom"
)

// BackgroundRenderer clears the screen and draws a world-space grid that
// follows the camera.
type BackgroundRenderer struct {
	Color     color.RGBA
	GridColor color.RGBA
	Spacing   float64 // world units between grid lines (0 = no grid)
}

// NewBackgroundRenderer creates a background with a faint grid a shade
// darker than base.
func NewBackgroundRenderer(base color.RGBA, spacing float64) *BackgroundRenderer {
	return &BackgroundRenderer{
		Color:     base,
		GridColor: color.RGBA{R: base.R / 10 * 9, G: base.G / 10 * 9, B: base.B / 10 * 9, A: 255},
		Spacing:   spacing,
	}
}

// Draw renders the background in screen space.
func (b *BackgroundRenderer) Draw(cam *camera.Camera) {
	rl.ClearBackground(b.Color)
	if b.Spacing <= 0 {
		return
	}

	min := cam.ScreenToWorld(geom.Zero)
	max := cam.ScreenToWorld(cam.Viewport)

	for x := math.Floor(min.X/b.Spacing) * b.Spacing; x <= max.X; x += b.Spacing {
		top := cam.WorldToScreen(geom.V(x, min.Y))
		bottom := cam.WorldToScreen(geom.V(x, max.Y))
		rl.DrawLineV(vec(top), vec(bottom), b.GridColor)
	}
	for y := math.Floor(min.Y/b.Spacing) * b.Spacing; y <= max.Y; y += b.Spacing {
		left := cam.WorldToScreen(geom.V(min.X, y))
		right := cam.WorldToScreen(geom.V(max.X, y))
		rl.DrawLineV(vec(left), vec(right), b.GridColor)
	}
}
