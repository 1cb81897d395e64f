package geoline

import (
	"fmt"
	"math"
)

// Point is a position in the plane. Points are values; equality between
// points is tolerance based, see [Point.Equal].
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Equal reports whether both coordinates are equal within [Epsilon].
func (pt Point) Equal(o Point) bool {
	return Equals(pt.X, o.X) && Equals(pt.Y, o.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Rotate rotates pt around center by th radians. A positive angle rotates
// the positive x axis into the positive y axis.
func (pt Point) Rotate(center Point, th float64) Point {
	return pt.Transform(RotateAbout(th, center))
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// isValid reports whether both coordinates are finite.
func (pt Point) isValid() bool {
	return isFinite(pt.X) && isFinite(pt.Y)
}

// dedupePoints returns pts without points that are equal to an earlier one.
func dedupePoints(pts []Point) []Point {
	out := pts[:0:0]
outer:
	for _, p := range pts {
		if !p.isValid() {
			continue
		}
		for _, q := range out {
			if p.Equal(q) {
				continue outer
			}
		}
		out = append(out, p)
	}
	return out
}
