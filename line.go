package geoline

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ GeometryLine = Line{}

func (l Line) isGeometryLine() {}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Tangent returns the direction of the line, which is the same for all t.
func (l Line) Tangent(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

// Subsegment returns the part of the line between t0 and t1. Parameters
// outside [0, 1] extend the line.
func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{l.Eval(t0), l.Eval(t1)}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Translate(v Vec2) Line {
	return Line{l.P0.Translate(v), l.P1.Translate(v)}
}

// GeneralForm returns the supporting line of l in general form.
func (l Line) GeneralForm() GeneralFormLine {
	return TwoPointLineToGeneralForm(l.P0, l.P1)
}

// Nearest returns the squared distance and the parameter of the point on the
// segment nearest to pt.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dd := d.Hypot2()
	if dd == 0 {
		return pt.DistanceSquared(l.P0), 0
	}
	t = min(max(pt.Sub(l.P0).Dot(d)/dd, 0), 1)
	return pt.DistanceSquared(l.Eval(t)), t
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	return l.GeneralForm().Intersect(o.GeneralForm())
}

// ParamAtPoint returns the parameter of pt projected onto the supporting line.
func (l Line) ParamAtPoint(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	dd := d.Hypot2()
	if dd == 0 {
		return 0
	}
	return pt.Sub(l.P0).Dot(d) / dd
}

// GeneralFormLine is the line A·x + B·y + C = 0.
type GeneralFormLine struct {
	A, B, C float64
}

// TwoPointLineToGeneralForm returns the line through p1 and p2. The result
// is not normalized. Equal points produce a line with A and B both zero.
func TwoPointLineToGeneralForm(p1, p2 Point) GeneralFormLine {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return GeneralFormLine{
		A: dy,
		B: -dx,
		C: -p1.X*dy + p1.Y*dx,
	}
}

// IsDegenerate reports whether the line has no direction.
func (g GeneralFormLine) IsDegenerate() bool {
	return IsZero(g.A) && IsZero(g.B)
}

// Value returns A·x + B·y + C. Its sign tells the side of pt.
func (g GeneralFormLine) Value(pt Point) float64 {
	return g.A*pt.X + g.B*pt.Y + g.C
}

// Distance returns the perpendicular distance from pt to the line.
func (g GeneralFormLine) Distance(pt Point) float64 {
	return math.Abs(g.Value(pt)) / math.Hypot(g.A, g.B)
}

// Contains reports whether pt lies on the line.
func (g GeneralFormLine) Contains(pt Point) bool {
	return IsZero(g.Distance(pt))
}

// Direction returns a vector along the line, matching the direction of the
// points the line was constructed from.
func (g GeneralFormLine) Direction() Vec2 {
	return Vec2{X: -g.B, Y: g.A}
}

// Foot returns the perpendicular foot of pt on the line.
func (g GeneralFormLine) Foot(pt Point) Point {
	d := g.A*g.A + g.B*g.B
	v := g.Value(pt) / d
	return Point{X: pt.X - g.A*v, Y: pt.Y - g.B*v}
}

// Intersect returns the intersection point of two lines. It fails when the
// lines are parallel or coincident.
func (g GeneralFormLine) Intersect(o GeneralFormLine) (Point, bool) {
	d := o.A*g.B - g.A*o.B
	if IsZero(d) {
		return Point{}, false
	}
	return Point{
		X: (g.C*o.B - o.C*g.B) / d,
		Y: (o.C*g.A - g.C*o.A) / d,
	}, true
}

// Parallels returns the two lines at the given distance from g, one on each
// side. The first is on the side where [GeneralFormLine.Value] is positive.
func (g GeneralFormLine) Parallels(distance float64) [2]GeneralFormLine {
	d := distance * math.Hypot(g.A, g.B)
	return [2]GeneralFormLine{
		{A: g.A, B: g.B, C: g.C - d},
		{A: g.A, B: g.B, C: g.C + d},
	}
}

// PointIsOnLine reports whether pt lies on the infinite line through a and b.
func PointIsOnLine(pt, a, b Point) bool {
	if a.Equal(b) {
		return pt.Equal(a)
	}
	return TwoPointLineToGeneralForm(a, b).Contains(pt)
}

// PointIsOnLineSegment reports whether pt, assumed to lie on the line through
// a and b, lies between them.
func PointIsOnLineSegment(pt, a, b Point) bool {
	return IsBetween(pt.X, a.X, b.X) && IsBetween(pt.Y, a.Y, b.Y)
}

// PointLineSegmentDistance returns the minimum distance from pt to the segment
// between a and b.
func PointLineSegmentDistance(pt, a, b Point) float64 {
	distSq, _ := Line{a, b}.Nearest(pt)
	return math.Sqrt(distSq)
}
