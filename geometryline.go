package geoline

import (
	"fmt"
	"math"
)

// GeometryLine is one piece of a shape outline. It is implemented by exactly
// [Line], [Arc], [EllipseArc], [QuadBez] and [CubicBez]; code that dispatches
// on the kind uses a type switch over these five.
//
// The parameter t runs from 0 at Start to 1 at End for every kind. For arcs
// it is the fraction of the sweep.
type GeometryLine interface {
	Start() Point
	End() Point
	Eval(t float64) Point
	// Tangent returns the derivative with respect to t. Its direction is
	// the direction of travel.
	Tangent(t float64) Vec2
	// Nearest returns the squared distance to and the parameter of the
	// point of the line nearest to pt.
	Nearest(pt Point) (distSq, t float64)
	BoundingBox() Rect

	isGeometryLine()
}

func unknownKind(g GeometryLine) string {
	return fmt.Sprintf("geoline: unknown GeometryLine %T", g)
}

// TangentRadian returns the direction of travel at t, in radians.
func TangentRadian(g GeometryLine, t float64) float64 {
	return g.Tangent(t).Angle()
}

// Reverse returns g traversed in the opposite direction.
func Reverse(g GeometryLine) GeometryLine {
	switch g := g.(type) {
	case Line:
		return g.Reverse()
	case Arc:
		return g.Reverse()
	case EllipseArc:
		return g.Reverse()
	case QuadBez:
		return g.Reverse()
	case CubicBez:
		return g.Reverse()
	default:
		panic(unknownKind(g))
	}
}

// ReverseChain reverses the direction of a chain of lines.
func ReverseChain(lines []GeometryLine) []GeometryLine {
	out := make([]GeometryLine, len(lines))
	for i, l := range lines {
		out[len(lines)-1-i] = Reverse(l)
	}
	return out
}

// Subsegment returns the part of g between parameters t0 and t1. Parameters
// outside [0, 1] extend the line along its supporting curve.
func Subsegment(g GeometryLine, t0, t1 float64) GeometryLine {
	switch g := g.(type) {
	case Line:
		return g.Subsegment(t0, t1)
	case Arc:
		return g.Subsegment(t0, t1)
	case EllipseArc:
		return g.Subsegment(t0, t1)
	case QuadBez:
		return g.Subsegment(t0, t1)
	case CubicBez:
		return g.Subsegment(t0, t1)
	default:
		panic(unknownKind(g))
	}
}

// curveExtension is how far, in parameter space, Béziers are extended on both
// ends when their supporting curve is requested.
const curveExtension = 1.0

// ParamAtPoint returns the parameter of the point on g's supporting curve
// nearest to pt. The result may lie outside [0, 1].
func ParamAtPoint(g GeometryLine, pt Point) float64 {
	switch g := g.(type) {
	case Line:
		return g.ParamAtPoint(pt)
	case Arc:
		return g.ParamAtPoint(pt)
	case EllipseArc:
		return g.ParamAtPoint(pt)
	case QuadBez, CubicBez:
		lo, hi := -curveExtension, 1+curveExtension
		_, t := Subsegment(g, lo, hi).Nearest(pt)
		return lo + t*(hi-lo)
	default:
		panic(unknownKind(g))
	}
}

// PointIsOnGeometryLine reports whether pt lies on g within [Epsilon].
func PointIsOnGeometryLine(pt Point, g GeometryLine) bool {
	distSq, _ := g.Nearest(pt)
	return IsZero(math.Sqrt(distSq))
}

// IsClosed reports whether a chain of more than one line ends where it
// starts.
func IsClosed(lines []GeometryLine) bool {
	return len(lines) > 1 && lines[0].Start().Equal(lines[len(lines)-1].End())
}

// IsDegenerate reports whether g has no extent.
func IsDegenerate(g GeometryLine) bool {
	switch g := g.(type) {
	case Line:
		return g.P0.Equal(g.P1)
	case Arc:
		return IsZero(g.Radius)
	case EllipseArc:
		return IsZero(g.RX) || IsZero(g.RY)
	case QuadBez:
		return g.P0.Equal(g.P1) && g.P1.Equal(g.P2)
	case CubicBez:
		return g.P0.Equal(g.P1) && g.P1.Equal(g.P2) && g.P2.Equal(g.P3)
	default:
		panic(unknownKind(g))
	}
}

// ConnectedRuns splits lines into maximal runs in which each line starts where
// the previous one ends.
func ConnectedRuns(lines []GeometryLine) [][]GeometryLine {
	var out [][]GeometryLine
	start := 0
	for i := 1; i <= len(lines); i++ {
		if i == len(lines) || !lines[i-1].End().Equal(lines[i].Start()) {
			out = append(out, lines[start:i])
			start = i
		}
	}
	return out
}

// PolylineToGeometryLines returns the segments between consecutive points,
// skipping zero-length ones.
func PolylineToGeometryLines(points []Point) []GeometryLine {
	var out []GeometryLine
	for i := 1; i < len(points); i++ {
		if points[i-1].Equal(points[i]) {
			continue
		}
		out = append(out, Line{points[i-1], points[i]})
	}
	return out
}

// GeometryLinesToPoints samples a chain into a polyline. Straight lines
// contribute their end points; arcs are sampled every angleStep degrees and
// Béziers with segments samples each.
func GeometryLinesToPoints(lines []GeometryLine, angleStep float64, segments int) []Point {
	var out []Point
	push := func(p Point) {
		if len(out) > 0 && out[len(out)-1].Equal(p) {
			return
		}
		out = append(out, p)
	}
	for _, l := range lines {
		switch l := l.(type) {
		case Line:
			push(l.P0)
			push(l.P1)
		case Arc:
			for _, a := range l.Angles(angleStep) {
				push(l.PointAtAngle(a))
			}
		case EllipseArc:
			for _, a := range l.Angles(angleStep) {
				push(l.PointAtAngle(a))
			}
		case QuadBez, CubicBez:
			n := max(segments, 1)
			for i := range n + 1 {
				push(l.Eval(float64(i) / float64(n)))
			}
		default:
			panic(unknownKind(l))
		}
	}
	return out
}
