package inspector

import (
	"image/color"
	"testing"

	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/pad"
	"github.com/pthm-cable/drawpad/shapes"
)

func TestParseTag(t *testing.T) {
	widget, opts := ParseTag("bar,max:200")
	if widget != WidgetBar {
		t.Errorf("expected bar widget, got %d", widget)
	}
	if GetMax(opts) != 200 {
		t.Errorf("expected max 200, got %f", GetMax(opts))
	}

	if w, _ := ParseTag("color"); w != WidgetColor {
		t.Errorf("expected color widget, got %d", w)
	}
	if w, _ := ParseTag(""); w != WidgetAuto {
		t.Errorf("expected auto widget, got %d", w)
	}
	if GetMax(nil) != 1 {
		t.Error("expected default max 1")
	}
}

func TestExtractFieldsSkipsEmbedded(t *testing.T) {
	rect := shapes.NewRectangle(shapes.Black, 10, 5, geom.Zero, 0)
	fields := ExtractFields(rect)

	if len(fields) != 2 || fields[0].Name != "Width" || fields[1].Name != "Height" {
		t.Errorf("expected Width and Height only, got %+v", fields)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		fmt   string
		want  string
	}{
		{1.23456, "", "1.23"},
		{geom.V(1, 2.5), "", "(1.00, 2.50)"},
		{color.RGBA{R: 255, A: 255}, "", "#ff0000ff"},
		{0.5, "%.3f", "0.500"},
		{"circle", "", "circle"},
	}
	for _, tc := range tests {
		if got := FormatValue(tc.value, tc.fmt); got != tc.want {
			t.Errorf("FormatValue(%v, %q): expected %q, got %q", tc.value, tc.fmt, tc.want, got)
		}
	}
}

func TestDescribe(t *testing.T) {
	p := pad.New(pad.DefaultOptions())
	still := p.Add(shapes.NewCircle(shapes.Black, 5, geom.V(1, 2)))
	moving := p.Add(
		shapes.NewTriangle(shapes.Black, 20, geom.Zero, 0.5),
		pad.WithMotion(geom.V(1, 0), 0.1, 0),
		pad.WithGravity(nil),
	)

	sections := Describe(p, still)
	if len(sections) != 1 || sections[0].Title != "SHAPE" {
		t.Fatalf("expected only a shape section, got %+v", sections)
	}
	names := map[string]bool{}
	for _, f := range sections[0].Fields {
		names[f.Name] = true
	}
	for _, want := range []string{"Kind", "Color", "Position", "Area", "Radius"} {
		if !names[want] {
			t.Errorf("expected field %s", want)
		}
	}
	if names["Rotation"] {
		t.Error("expected no rotation for a circle")
	}

	sections = Describe(p, moving)
	if len(sections) != 3 || sections[1].Title != "MOTION" || sections[2].Title != "BODY" {
		t.Fatalf("expected shape, motion and body sections, got %d", len(sections))
	}
	var rot Field
	for _, f := range sections[0].Fields {
		if f.Name == "Rotation" {
			rot = f
		}
	}
	if rot.Widget != WidgetAngle || rot.Value != 0.5 {
		t.Errorf("expected rotation angle widget with 0.5, got %+v", rot)
	}

	p.Remove(moving)
	if Describe(p, moving) != nil {
		t.Error("expected nil sections for removed entity")
	}
	if calculatePanelHeight(Describe(p, still)) <= HeaderHeight {
		t.Error("expected panel taller than its header")
	}
}
