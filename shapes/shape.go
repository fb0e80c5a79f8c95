// Package shapes implements the drawable shape variants: circle, rectangle
// and equilateral triangle.
//
// Sizes and resize factors are not validated. A negative factor produces a
// negative size and Area reports whatever the formula yields for it.
package shapes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/pthm-cable/drawpad/geom"
	"github.com/pthm-cable/drawpad/render"
)

// Black is the color shapes get when none is given.
var Black = color.RGBA{A: 255}

// Shape is the contract shared by all variants.
type Shape interface {
	Kind() Kind
	Color() color.RGBA
	SetColor(c color.RGBA)
	Position() geom.Vec2
	SetPosition(p geom.Vec2)

	// Resize scales the defining size parameters by factor.
	Resize(factor float64)
	Area() float64
	Draw(c render.Canvas)
}

// Rotatable is implemented by shapes drawn with a rotation pivot.
// Rotation is in radians and is never wrapped into [0, 2*Pi).
type Rotatable interface {
	Shape
	Rotation() float64
	SetRotation(theta float64)
	// Centroid returns the world-space pivot the shape rotates about.
	Centroid() geom.Vec2
}

// Kind identifies a shape variant.
type Kind uint8

const (
	KindCircle Kind = iota
	KindRectangle
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindTriangle:
		return "triangle"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind parses a variant name as used in config files.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return KindCircle, nil
	case "rectangle", "rect":
		return KindRectangle, nil
	case "triangle":
		return KindTriangle, nil
	}
	return 0, fmt.Errorf("unknown shape kind %q", s)
}

// Base holds the attributes every shape has.
type Base struct {
	color    color.RGBA
	position geom.Vec2
}

func newBase(col color.RGBA, position geom.Vec2) Base {
	return Base{color: col, position: position}
}

func (b *Base) Color() color.RGBA       { return b.color }
func (b *Base) SetColor(c color.RGBA)   { b.color = c }
func (b *Base) Position() geom.Vec2     { return b.position }
func (b *Base) SetPosition(p geom.Vec2) { b.position = p }

// rotation is embedded by the rotatable variants.
type rotation struct {
	theta float64
}

func (r *rotation) Rotation() float64         { return r.theta }
func (r *rotation) SetRotation(theta float64) { r.theta = theta }
