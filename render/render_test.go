package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/pthm-cable/drawpad/geom"
)

var _ Canvas = (*Recorder)(nil)

var red = color.RGBA{R: 255, A: 255}

func TestRecorderIdentity(t *testing.T) {
	r := NewRecorder()
	r.FillRect(geom.V(1, 2), geom.V(3, 4), red)

	if len(r.Primitives) != 1 {
		t.Fatalf("expected 1 primitive, got %d", len(r.Primitives))
	}
	p := r.Primitives[0]
	want := []geom.Vec2{geom.V(1, 2), geom.V(4, 2), geom.V(4, 6), geom.V(1, 6)}
	for i, pt := range p.Points {
		if !pt.ApproxEqual(want[i], 1e-9) {
			t.Errorf("corner %d: expected %s, got %s", i, want[i], pt)
		}
	}
	if p.Color != red {
		t.Errorf("expected red, got %v", p.Color)
	}
}

func TestPivotRotatesAboutCentroid(t *testing.T) {
	r := NewRecorder()
	position := geom.V(10, 20)
	centroid := geom.V(5, 2)

	Pivot(r, position, centroid, math.Pi/2, func(c Canvas) {
		c.FillRect(geom.Zero, geom.V(10, 4), red)
	})

	if r.Depth() != 0 {
		t.Fatalf("expected balanced transform stack, got depth %d", r.Depth())
	}
	pts := r.Primitives[0].Points
	want := []geom.Vec2{geom.V(17, 17), geom.V(17, 27), geom.V(13, 27), geom.V(13, 17)}
	for i := range want {
		if !pts[i].ApproxEqual(want[i], 1e-9) {
			t.Errorf("corner %d: expected %s, got %s", i, want[i], pts[i])
		}
	}

	// The pivot itself never moves.
	min, max := r.Primitives[0].Bounds()
	center := geom.Lerp(min, max, 0.5)
	if !center.ApproxEqual(position.Add(centroid), 1e-9) {
		t.Errorf("expected rotated box centered on %s, got %s", position.Add(centroid), center)
	}
}

func TestPivotZeroRotationIsTranslation(t *testing.T) {
	r := NewRecorder()
	Pivot(r, geom.V(3, 4), geom.V(7, 7), 0, func(c Canvas) {
		c.FillPolygon([]geom.Vec2{geom.V(0, 0), geom.V(1, 0), geom.V(0, 1)}, red)
	})

	want := []geom.Vec2{geom.V(3, 4), geom.V(4, 4), geom.V(3, 5)}
	for i, pt := range r.Primitives[0].Points {
		if !pt.ApproxEqual(want[i], 1e-9) {
			t.Errorf("vertex %d: expected %s, got %s", i, want[i], pt)
		}
	}
}

func TestPivotOrderMatters(t *testing.T) {
	// Rotating before translating to the pivot swings the shape around the origin instead.
	wrong := NewRecorder()
	wrong.Rotate(math.Pi / 2)
	wrong.Translate(geom.V(15, 22))
	wrong.Translate(geom.V(-5, -2))
	wrong.FillRect(geom.Zero, geom.V(10, 4), red)

	right := NewRecorder()
	Pivot(right, geom.V(10, 20), geom.V(5, 2), math.Pi/2, func(c Canvas) {
		c.FillRect(geom.Zero, geom.V(10, 4), red)
	})

	if wrong.Primitives[0].Points[0].ApproxEqual(right.Primitives[0].Points[0], 1e-6) {
		t.Error("expected different results for different transform orders")
	}
}

func TestRecorderScale(t *testing.T) {
	r := NewRecorder()
	r.Translate(geom.V(100, 0))
	r.Scale(2)
	got := r.Apply(geom.V(1, 1))
	if !got.ApproxEqual(geom.V(102, 2), 1e-9) {
		t.Errorf("expected (102, 2), got %s", got)
	}
}

func TestRecorderPushPop(t *testing.T) {
	r := NewRecorder()
	r.Push()
	r.Translate(geom.V(5, 5))
	r.Pop()
	if got := r.Apply(geom.V(1, 1)); !got.ApproxEqual(geom.V(1, 1), 1e-9) {
		t.Errorf("expected transform restored, got %s", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on unbalanced Pop")
		}
	}()
	r.Pop()
}

func TestRecorderReset(t *testing.T) {
	r := NewRecorder()
	r.Push()
	r.Translate(geom.V(1, 1))
	r.FillEllipse(geom.Zero, geom.V(2, 2), red)
	r.Reset()

	if len(r.Primitives) != 0 || r.Depth() != 0 {
		t.Errorf("expected empty recorder, got %d primitives depth %d", len(r.Primitives), r.Depth())
	}
	if got := r.Apply(geom.V(1, 1)); got != geom.V(1, 1) {
		t.Errorf("expected identity after reset, got %s", got)
	}
}

func TestPrimitiveKindString(t *testing.T) {
	if PrimitivePolygon.String() != "polygon" || PrimitiveKind(9).String() != "unknown" {
		t.Error("unexpected primitive kind names")
	}
}

func TestPrimitiveBounds(t *testing.T) {
	r := NewRecorder()
	r.FillRect(geom.V(2, 3), geom.V(10, 5), red)
	min, max := r.Primitives[0].Bounds()
	if min != geom.V(2, 3) || max != geom.V(12, 8) {
		t.Errorf("expected box (2,3)-(12,8), got %s-%s", min, max)
	}

	min, max = Primitive{Kind: PrimitivePolygon}.Bounds()
	if min != geom.Zero || max != geom.Zero {
		t.Errorf("expected zero box without points, got %s-%s", min, max)
	}
}
