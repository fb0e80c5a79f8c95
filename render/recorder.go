package render

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/drawpad/geom"
)

// PrimitiveKind identifies what a recorded fill was.
type PrimitiveKind uint8

const (
	PrimitiveRect PrimitiveKind = iota
	PrimitiveEllipse
	PrimitivePolygon
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveRect:
		return "rect"
	case PrimitiveEllipse:
		return "ellipse"
	case PrimitivePolygon:
		return "polygon"
	}
	return "unknown"
}

// Primitive is one fill call with its geometry already in world space.
// Rects and ellipses store the four corners of their (bounding) box in
// local order: min, min+w, min+w+h, min+h.
type Primitive struct {
	Kind   PrimitiveKind
	Points []geom.Vec2
	Color  color.RGBA
}

// Bounds returns the axis-aligned world-space bounding box of the primitive.
// A primitive without points has the zero box.
func (p Primitive) Bounds() (min, max geom.Vec2) {
	if len(p.Points) == 0 {
		return geom.Zero, geom.Zero
	}
	min = geom.V(math.Inf(1), math.Inf(1))
	max = geom.V(math.Inf(-1), math.Inf(-1))
	for _, pt := range p.Points {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max
}

// Recorder is a headless Canvas. It keeps the transform stack as 3x3
// homogeneous matrices and records every fill in world coordinates.
type Recorder struct {
	stack      []*mat.Dense
	Primitives []Primitive
}

// NewRecorder returns a recorder with an identity transform.
func NewRecorder() *Recorder {
	return &Recorder{stack: []*mat.Dense{identity()}}
}

func identity() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

func (r *Recorder) top() *mat.Dense {
	return r.stack[len(r.stack)-1]
}

// mulTop post-multiplies the current transform by m.
func (r *Recorder) mulTop(m *mat.Dense) {
	var out mat.Dense
	out.Mul(r.top(), m)
	r.stack[len(r.stack)-1] = &out
}

// Depth returns the number of saved transforms above the base one.
func (r *Recorder) Depth() int {
	return len(r.stack) - 1
}

// Reset drops recorded primitives and restores the identity transform.
func (r *Recorder) Reset() {
	r.stack = r.stack[:1]
	r.stack[0] = identity()
	r.Primitives = r.Primitives[:0]
}

func (r *Recorder) Push() {
	r.stack = append(r.stack, mat.DenseCopyOf(r.top()))
}

// Pop restores the previous transform. Popping the base transform panics.
func (r *Recorder) Pop() {
	if len(r.stack) == 1 {
		panic("render: Pop without matching Push")
	}
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(d geom.Vec2) {
	r.mulTop(mat.NewDense(3, 3, []float64{
		1, 0, d.X,
		0, 1, d.Y,
		0, 0, 1,
	}))
}

func (r *Recorder) Rotate(theta float64) {
	sin, cos := math.Sincos(theta)
	r.mulTop(mat.NewDense(3, 3, []float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}))
}

func (r *Recorder) Scale(s float64) {
	r.mulTop(mat.NewDense(3, 3, []float64{
		s, 0, 0,
		0, s, 0,
		0, 0, 1,
	}))
}

// Apply maps a local-space point through the current transform.
func (r *Recorder) Apply(p geom.Vec2) geom.Vec2 {
	var out mat.VecDense
	out.MulVec(r.top(), mat.NewVecDense(3, []float64{p.X, p.Y, 1}))
	return geom.V(out.AtVec(0), out.AtVec(1))
}

func (r *Recorder) box(min, size geom.Vec2) []geom.Vec2 {
	return []geom.Vec2{
		r.Apply(min),
		r.Apply(min.Add(geom.V(size.X, 0))),
		r.Apply(min.Add(size)),
		r.Apply(min.Add(geom.V(0, size.Y))),
	}
}

func (r *Recorder) FillRect(min, size geom.Vec2, col color.RGBA) {
	r.Primitives = append(r.Primitives, Primitive{Kind: PrimitiveRect, Points: r.box(min, size), Color: col})
}

func (r *Recorder) FillEllipse(min, size geom.Vec2, col color.RGBA) {
	r.Primitives = append(r.Primitives, Primitive{Kind: PrimitiveEllipse, Points: r.box(min, size), Color: col})
}

func (r *Recorder) FillPolygon(points []geom.Vec2, col color.RGBA) {
	world := make([]geom.Vec2, len(points))
	for i, p := range points {
		world[i] = r.Apply(p)
	}
	r.Primitives = append(r.Primitives, Primitive{Kind: PrimitivePolygon, Points: world, Color: col})
}
