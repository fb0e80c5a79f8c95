package geom

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func TestAddSubScale(t *testing.T) {
	a := V(3, -2)
	b := V(-1, 5)

	if got := a.Add(b); got != V(2, 3) {
		t.Errorf("expected (2, 3), got %s", got)
	}
	if got := a.Add(b); got != b.Add(a) {
		t.Errorf("expected addition to commute, got %s vs %s", got, b.Add(a))
	}
	if got := a.Sub(b); got != V(4, -7) {
		t.Errorf("expected (4, -7), got %s", got)
	}
	if got := a.Scale(2.5); got != V(7.5, -5) {
		t.Errorf("expected (7.5, -5), got %s", got)
	}
	c := V(0.5, 0.25)
	if got, want := a.Add(b).Add(c), a.Add(b.Add(c)); !got.ApproxEqual(want, tol) {
		t.Errorf("expected addition to associate, got %s vs %s", got, want)
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{V(0, 0), 0},
		{V(3, 4), 5},
		{V(-3, -4), 5},
		{V(1e-3, 0), 1e-3},
	}
	for _, tc := range tests {
		if got := tc.v.Magnitude(); !scalar.EqualWithinAbs(got, tc.want, tol) {
			t.Errorf("expected |%s| = %f, got %f", tc.v, tc.want, got)
		}
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{V(0, 0), 0},
		{V(1, 0), 0},
		{V(1, 1), math.Pi / 4},
		{V(0, 1), math.Pi / 2},
		{V(-1, 0), math.Pi},
		{V(0, -1), -math.Pi / 2},
	}
	for _, tc := range tests {
		if got := tc.v.Angle(); !scalar.EqualWithinAbs(got, tc.want, tol) {
			t.Errorf("expected angle(%s) = %f, got %f", tc.v, tc.want, got)
		}
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	for _, v := range []Vec2{V(1, 0), V(3, 4), V(-7, 0.01), V(1e-6, -1e-6), V(1e6, 2e6)} {
		u, err := v.Normalize()
		if err != nil {
			t.Fatalf("normalize %s: %v", v, err)
		}
		if !scalar.EqualWithinAbs(u.Magnitude(), 1, tol) {
			t.Errorf("expected |normalize(%s)| = 1, got %f", v, u.Magnitude())
		}
		if !scalar.EqualWithinAbs(u.Angle(), v.Angle(), tol) {
			t.Errorf("expected normalize(%s) to keep direction", v)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	u, err := Zero.Normalize()
	if !errors.Is(err, ErrZeroVector) {
		t.Fatalf("expected ErrZeroVector, got %v", err)
	}
	if u.IsNaN() {
		t.Errorf("expected no NaN components on failure, got %s", u)
	}
}

func TestRotateIdentity(t *testing.T) {
	for _, v := range []Vec2{V(0, 0), V(1, 2), V(-5, 3.5)} {
		if got := v.Rotate(0); !got.ApproxEqual(v, tol) {
			t.Errorf("expected rotate(%s, 0) = %s, got %s", v, v, got)
		}
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	got := V(1, 0).Rotate(math.Pi / 2)
	if !got.ApproxEqual(V(0, 1), tol) {
		t.Errorf("expected counter-clockwise quarter turn to (0, 1), got %s", got)
	}
}

func TestRotateComposition(t *testing.T) {
	v := V(2, -3)
	angles := []float64{0, 0.3, -1.2, math.Pi, 2.5, -7}
	for _, a := range angles {
		for _, b := range angles {
			got := v.Rotate(a).Rotate(b)
			want := v.Rotate(a + b)
			if !got.ApproxEqual(want, 1e-9) {
				t.Errorf("rotate(rotate(v, %f), %f) = %s, expected %s", a, b, got, want)
			}
		}
	}
}

func TestRotatePreservesMagnitude(t *testing.T) {
	v := V(6, 8)
	for theta := -4.0; theta < 4; theta += 0.37 {
		if got := v.Rotate(theta).Magnitude(); !scalar.EqualWithinAbs(got, 10, tol) {
			t.Errorf("expected magnitude 10 after rotating by %f, got %f", theta, got)
		}
	}
}

func TestProject(t *testing.T) {
	got, err := V(3, 4).Project(V(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !got.ApproxEqual(V(3, 0), tol) {
		t.Errorf("expected (3, 0), got %s", got)
	}

	got, err = V(1, 0).Project(V(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if !got.ApproxEqual(V(0.5, 0.5), tol) {
		t.Errorf("expected (0.5, 0.5), got %s", got)
	}

	if _, err := V(1, 1).Project(Zero); !errors.Is(err, ErrZeroVector) {
		t.Errorf("expected ErrZeroVector projecting onto zero, got %v", err)
	}
}

func TestLerp(t *testing.T) {
	a := V(0, 0)
	b := V(10, -4)
	tests := []struct {
		t    float64
		want Vec2
	}{
		{0, a},
		{1, b},
		{0.5, V(5, -2)},
		{2, V(20, -8)},
		{-1, V(-10, 4)},
	}
	for _, tc := range tests {
		if got := Lerp(a, b, tc.t); !got.ApproxEqual(tc.want, tol) {
			t.Errorf("expected lerp(t=%f) = %s, got %s", tc.t, tc.want, got)
		}
	}
}

func TestClampMagnitude(t *testing.T) {
	v := V(6, 8) // |v| = 10
	got, err := ClampMagnitude(v, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(got.Magnitude(), 5, tol) {
		t.Errorf("expected magnitude 5, got %f", got.Magnitude())
	}
	if !scalar.EqualWithinAbs(got.Angle(), v.Angle(), tol) {
		t.Errorf("expected direction to be kept, got %s", got)
	}

	small := V(0.3, 0.4) // |v| = 0.5
	got, err = ClampMagnitude(small, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(got.Magnitude(), 1, tol) {
		t.Errorf("expected magnitude 1, got %f", got.Magnitude())
	}

	inside := V(2, 0)
	got, err = ClampMagnitude(inside, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got != inside {
		t.Errorf("expected %s unchanged, got %s", inside, got)
	}
}

func TestClampMagnitudeZeroVector(t *testing.T) {
	got, err := ClampMagnitude(Zero, 0, 5)
	if err != nil {
		t.Fatalf("expected zero vector to pass with min 0, got %v", err)
	}
	if got != Zero {
		t.Errorf("expected zero vector, got %s", got)
	}

	if _, err := ClampMagnitude(Zero, 1, 5); !errors.Is(err, ErrZeroVector) {
		t.Errorf("expected ErrZeroVector, got %v", err)
	}
}

func TestClampMagnitudeInvalidRange(t *testing.T) {
	for _, r := range [][2]float64{{-1, 5}, {5, 1}, {math.NaN(), 1}} {
		if _, err := ClampMagnitude(V(1, 1), r[0], r[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange for [%f, %f], got %v", r[0], r[1], err)
		}
	}
}

func TestDotCross(t *testing.T) {
	a := V(2, 3)
	b := V(4, -1)
	if got := Dot(a, b); got != 5 {
		t.Errorf("expected dot 5, got %f", got)
	}
	if got := Cross(a, b); got != -14 {
		t.Errorf("expected cross -14, got %f", got)
	}
	if Cross(a, b) != -Cross(b, a) {
		t.Error("expected cross product to be anti-commutative")
	}
	if got := Cross(V(1, 0), V(0, 1)); got != 1 {
		t.Errorf("expected unit square area 1, got %f", got)
	}
}

func TestFromPolar(t *testing.T) {
	got := FromPolar(10, V(3, 4))
	if !got.ApproxEqual(V(6, 8), tol) {
		t.Errorf("expected (6, 8), got %s", got)
	}
	if got := FromPolar(10, Zero); got != Zero {
		t.Errorf("expected zero vector for zero direction, got %s", got)
	}
}

func TestString(t *testing.T) {
	if got := V(1.5, -2).String(); got != "Vec2(1.5, -2)" {
		t.Errorf("unexpected string %q", got)
	}
}
