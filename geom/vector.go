// Package geom provides the immutable 2D vector type used by shapes, physics and rendering.
package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	// ErrZeroVector is returned when an operation needs a direction and the vector has none.
	ErrZeroVector = errors.New("zero vector")

	// ErrInvalidRange is returned by ClampMagnitude when min/max do not satisfy 0 <= min <= max.
	ErrInvalidRange = errors.New("invalid magnitude range")
)

// Vec2 is a 2D vector. It is a plain value: every operation returns a new Vec2.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Zero is the zero vector.
var Zero = Vec2{}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromR2 converts a gonum r2 vector.
func FromR2(v r2.Vec) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// R2 converts to a gonum r2 vector.
func (v Vec2) R2() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// FromPolar returns a vector of the given magnitude pointing along direction.
// A zero direction yields the zero vector.
func FromPolar(magnitude float64, direction Vec2) Vec2 {
	l := direction.Magnitude()
	if l == 0 {
		return Zero
	}
	return direction.Scale(magnitude / l)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return FromR2(r2.Add(v.R2(), o.R2()))
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return FromR2(r2.Sub(v.R2(), o.R2()))
}

func (v Vec2) Scale(s float64) Vec2 {
	return FromR2(r2.Scale(s, v.R2()))
}

// Magnitude returns the Euclidean length, always >= 0.
func (v Vec2) Magnitude() float64 {
	return r2.Norm(v.R2())
}

func (v Vec2) MagnitudeSquared() float64 {
	return r2.Norm2(v.R2())
}

// Angle returns atan2(y, x) in (-Pi, Pi]. The zero vector has angle 0.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize returns the unit vector with the same direction.
func (v Vec2) Normalize() (Vec2, error) {
	l := v.Magnitude()
	if l == 0 {
		return Zero, fmt.Errorf("normalize %s: %w", v, ErrZeroVector)
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, nil
}

// Rotate rotates counter-clockwise by theta radians (y up).
func (v Vec2) Rotate(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Project returns the projection of v onto o.
func (v Vec2) Project(o Vec2) (Vec2, error) {
	m2 := o.MagnitudeSquared()
	if m2 == 0 {
		return Zero, fmt.Errorf("project %s onto %s: %w", v, o, ErrZeroVector)
	}
	return o.Scale(Dot(v, o) / m2), nil
}

// Lerp interpolates between a and b. t is not clamped, so values outside
// [0, 1] extrapolate along the line through a and b.
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// ClampMagnitude rescales v so that min <= |v| <= max, keeping its direction.
// The zero vector cannot be rescaled: it is returned unchanged when min is 0
// and reported as ErrZeroVector otherwise.
func ClampMagnitude(v Vec2, min, max float64) (Vec2, error) {
	if min < 0 || min > max || math.IsNaN(min) || math.IsNaN(max) {
		return Zero, fmt.Errorf("clamp to [%g, %g]: %w", min, max, ErrInvalidRange)
	}

	l := v.Magnitude()
	var target float64
	switch {
	case l > max:
		target = max
	case l < min:
		target = min
	default:
		return v, nil
	}

	u, err := v.Normalize()
	if err != nil {
		return Zero, fmt.Errorf("clamp to [%g, %g]: %w", min, max, err)
	}
	return u.Scale(target), nil
}

// Dot returns the dot product.
func Dot(a, b Vec2) float64 {
	return r2.Dot(a.R2(), b.R2())
}

// Cross returns the z component of the 3D cross product, i.e. the signed
// area of the parallelogram spanned by a and b.
func Cross(a, b Vec2) float64 {
	return r2.Cross(a.R2(), b.R2())
}

// ApproxEqual reports whether both components are within tol of o.
func (v Vec2) ApproxEqual(o Vec2, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, o.X, tol) && scalar.EqualWithinAbs(v.Y, o.Y, tol)
}

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}
