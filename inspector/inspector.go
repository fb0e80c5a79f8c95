package inspector

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drawpad/camera"
	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/pad"
	"github.com/pthm-cable/drawpad/shapes"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
	ColorHighlight   = rl.Color{R: 255, G: 160, B: 0, A: 255}
)

// Section is a titled group of fields.
type Section struct {
	Title  string
	Fields []Field
}

// shapeSummary holds the derived values shown for every shape.
type shapeSummary struct {
	Kind     string
	Color    color.RGBA
	Position geom.Vec2
	Area     float64 `inspect:"label,fmt:%.3f"`
}

// rotationSummary is shown for shapes that rotate.
type rotationSummary struct {
	Rotation float64 `inspect:"angle"`
	Pivot    geom.Vec2
}

// Describe lists the sections shown for entity e.
func Describe(p *pad.Pad, e ecs.Entity) []Section {
	s := p.Shape(e)
	if s == nil {
		return nil
	}

	shape := ExtractFields(shapeSummary{
		Kind:     s.Kind().String(),
		Color:    s.Color(),
		Position: s.Position(),
		Area:     s.Area(),
	})
	shape = append(shape, ExtractFields(s)...)
	if r, ok := s.(shapes.Rotatable); ok {
		shape = append(shape, ExtractFields(rotationSummary{Rotation: r.Rotation(), Pivot: r.Centroid()})...)
	}

	sections := []Section{{Title: "SHAPE", Fields: shape}}
	if m := p.Motion(e); m != nil {
		sections = append(sections, Section{Title: "MOTION", Fields: ExtractFields(m)})
	}
	if b := p.Body(e); b != nil {
		sections = append(sections, Section{Title: "BODY", Fields: ExtractFields(b)})
	}
	return sections
}

// Inspector manages shape selection and panel rendering.
type Inspector struct {
	selected     ecs.Entity
	hasSelected  bool
	panelX       int32
	panelY       int32
	screenWidth  int32
	screenHeight int32
}

// NewInspector creates a new inspector instance.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	ins := &Inspector{}
	ins.Resize(screenWidth, screenHeight)
	return ins
}

// Resize moves the panel to the right edge of the new screen size.
func (ins *Inspector) Resize(screenWidth, screenHeight int32) {
	ins.screenWidth = screenWidth
	ins.screenHeight = screenHeight
	ins.panelX = screenWidth - PanelWidth - 10
	ins.panelY = 100
}

// HandleInput selects the topmost shape under a left click.
func (ins *Inspector) HandleInput(p *pad.Pad, cam *camera.Camera) {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mouse := rl.GetMousePosition()
	mouseX, mouseY := int32(mouse.X), int32(mouse.Y)

	if ins.hasSelected {
		closeX := ins.panelX + PanelWidth - 25
		closeY := ins.panelY + 5
		if mouseX >= closeX && mouseX <= closeX+20 && mouseY >= closeY && mouseY <= closeY+20 {
			ins.Deselect()
			return
		}

		// Clicks inside the panel do not change the selection
		if mouseX >= ins.panelX && mouseX <= ins.panelX+PanelWidth && mouseY >= ins.panelY {
			return
		}
	}

	world := cam.ScreenToWorld(geom.V(float64(mouse.X), float64(mouse.Y)))
	if e, ok := p.HitTest(world); ok {
		ins.Select(e)
	} else {
		ins.Deselect()
	}
}

// Select sets the inspected entity.
func (ins *Inspector) Select(e ecs.Entity) {
	ins.selected = e
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected entity.
func (ins *Inspector) Selected() (ecs.Entity, bool) {
	return ins.selected, ins.hasSelected
}

// Draw renders the inspector panel if a shape is selected.
func (ins *Inspector) Draw(p *pad.Pad) {
	if !ins.hasSelected {
		return
	}

	// Shape may have been removed
	sections := Describe(p, ins.selected)
	if sections == nil {
		ins.Deselect()
		return
	}

	panelHeight := calculatePanelHeight(sections)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(panelHeight)},
		1,
		ColorPanelBorder,
	)

	// Header
	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	y := ins.panelY + HeaderHeight + PanelPadding
	x := ins.panelX + PanelPadding

	for i, section := range sections {
		if i > 0 {
			y += 4
			rl.DrawLine(x, y, ins.panelX+PanelWidth-PanelPadding, y, ColorPanelBorder)
			y += 8
		}
		ins.drawSectionHeader(x, y, section.Title)
		y += 20
		for _, f := range section.Fields {
			y += DrawField(x, y, f)
		}
	}
}

// drawSectionHeader renders a section title.
func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}

// calculatePanelHeight computes the panel height from the rows Draw emits.
func calculatePanelHeight(sections []Section) int32 {
	height := int32(HeaderHeight + PanelPadding)
	for i, section := range sections {
		if i > 0 {
			height += 12 // separator
		}
		height += 20 // section header
		for _, f := range section.Fields {
			height += rowHeight(f)
		}
	}
	return height + PanelPadding
}

// rowHeight mirrors the heights returned by the Draw* widgets.
func rowHeight(f Field) int32 {
	switch f.Widget {
	case WidgetAngle:
		if _, ok := GetFloatValue(f.Value); ok {
			return 44
		}
	case WidgetBar, WidgetBool, WidgetColor:
		return 18
	}
	return 20
}

// DrawSelectionHighlight outlines the selected shape's bounding box in screen space.
func (ins *Inspector) DrawSelectionHighlight(p *pad.Pad, cam *camera.Camera) {
	if !ins.hasSelected {
		return
	}
	s := p.Shape(ins.selected)
	if s == nil {
		return
	}

	min, max := pad.Bounds(s)
	a := cam.WorldToScreen(min)
	b := cam.WorldToScreen(max)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(a.X) - 3, Y: float32(a.Y) - 3, Width: float32(b.X-a.X) + 6, Height: float32(b.Y-a.Y) + 6},
		2,
		ColorHighlight,
	)
	rl.DrawText(s.Kind().String(), int32(a.X), int32(a.Y)-18, 14, ColorHighlight)
}
