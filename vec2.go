package geoline

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns atan2(y, x).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// VecFromAngle returns a unit vector of the given angle, in radians.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{X: x, Y: y}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1 with the same angle as v.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Hypot()
	if l == 0 {
		return v
	}
	return v.Mul(1.0 / l)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Normal returns v rotated by +90°, ⟨-y, x⟩. It points to side 0 of a
// curve whose tangent is v.
func (v Vec2) Normal() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// IsZero reports whether both components are zero within [Epsilon].
func (v Vec2) IsZero() bool {
	return IsZero(v.X) && IsZero(v.Y)
}
