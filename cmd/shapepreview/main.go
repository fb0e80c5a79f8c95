// Shape preview tool - rotate and resize a single shape with sliders.
//
// Usage: go run ./cmd/shapepreview
package main

import (
	"fmt"
	"image/color"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/renderer"
	"github.com/pthm-cable/drawpad/shapes"
)

const (
	windowWidth  = 1000
	windowHeight = 620
	previewSize  = 560
	panelWidth   = windowWidth - previewSize - 30
)

// PreviewParams holds the slider state.
type PreviewParams struct {
	Kind     shapes.Kind
	Size     float32 // radius, rectangle width or triangle side
	Aspect   float32 // rectangle height / width
	Rotation float32 // radians
}

func (p PreviewParams) build() shapes.Shape {
	size := float64(p.Size)
	spec := shapes.Spec{
		Kind:     p.Kind,
		Color:    color.RGBA{R: 0, G: 121, B: 241, A: 255},
		Rotation: float64(p.Rotation),
		Radius:   size,
		Width:    size,
		Height:   size * float64(p.Aspect),
		Side:     size,
	}
	// Center the shape's pivot in the preview square
	half := geom.V(previewSize/2+10, previewSize/2+10)
	switch p.Kind {
	case shapes.KindCircle:
		spec.Position = half.Sub(geom.V(size, size))
	case shapes.KindRectangle:
		spec.Position = half.Sub(geom.V(size/2, spec.Height/2))
	case shapes.KindTriangle:
		spec.Position = half.Sub(geom.V(size/2, math.Sqrt(3)/4*size))
	}
	return shapes.New(spec)
}

func main() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "Shape Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	defaults := PreviewParams{Kind: shapes.KindRectangle, Size: 200, Aspect: 0.5}
	params := defaults
	shape := params.build()
	canvas := renderer.NewCanvas()
	spinning := false

	for !rl.WindowShouldClose() {
		if spinning {
			params.Rotation += rl.GetFrameTime()
			if params.Rotation > math.Pi {
				params.Rotation -= 2 * math.Pi
			}
		}
		shape = params.build()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
		shape.Draw(canvas)

		// Pivot marker
		pivot := shape.Position()
		if r, ok := shape.(shapes.Rotatable); ok {
			pivot = r.Centroid()
		}
		rl.DrawCircleV(rl.Vector2{X: float32(pivot.X), Y: float32(pivot.Y)}, 4, rl.Red)

		statsY := int32(previewSize + 20)
		rl.DrawText(fmt.Sprintf("Area: %.3f", shape.Area()), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Position: %s  Pivot: %s", shape.Position(), pivot), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Shape Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Kind buttons
		kinds := []shapes.Kind{shapes.KindCircle, shapes.KindRectangle, shapes.KindTriangle}
		btnWidth := float32(panelWidth-20) / float32(len(kinds))
		for i, k := range kinds {
			rect := rl.Rectangle{X: panelX + float32(i)*btnWidth, Y: panelY, Width: btnWidth - 5, Height: 28}
			if gui.Button(rect, k.String()) {
				params.Kind = k
			}
		}
		panelY += 45

		// Size slider
		rl.DrawText("Size (radius, width or side)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Size = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"10", "260",
			params.Size, 10, 260,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.Size), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		// Aspect slider
		rl.DrawText("Aspect (rectangle height / width)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Aspect = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.1", "2.0",
			params.Aspect, 0.1, 2.0,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Aspect), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		// Rotation slider
		rl.DrawText("Rotation (radians, positive = clockwise on screen)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		params.Rotation = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"-pi", "pi",
			params.Rotation, -math.Pi, math.Pi,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Rotation), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 35

		// Separator
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		// Resize buttons apply the shape's own Resize to the size parameter
		half := float32(panelWidth-20)/2 - 5
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: half, Height: 28}, "Resize x0.5") {
			params.Size = resized(params, 0.5)
		}
		if gui.Button(rl.Rectangle{X: panelX + half + 10, Y: panelY, Width: half, Height: 28}, "Resize x2") {
			params.Size = resized(params, 2)
		}
		panelY += 40

		spinLabel := "Spin"
		if spinning {
			spinLabel = "Stop"
		}
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: half, Height: 28}, spinLabel) {
			spinning = !spinning
		}
		if gui.Button(rl.Rectangle{X: panelX + half + 10, Y: panelY, Width: half, Height: 28}, "Reset") {
			params = defaults
			spinning = false
		}

		rl.EndDrawing()
	}
}

// resized returns the size parameter after Resize(factor), clamped to the slider range.
func resized(p PreviewParams, factor float64) float32 {
	s := p.build()
	s.Resize(factor)
	var size float64
	switch v := s.(type) {
	case *shapes.Circle:
		size = v.Radius
	case *shapes.Rectangle:
		size = v.Width
	case *shapes.Triangle:
		size = v.Side
	}
	return float32(math.Max(10, math.Min(260, size)))
}
