package geoline

import "math"

type Circle struct {
	Center Point
	Radius float64
}

// PointAtAngle returns the point of the circle at angle degrees.
func (c Circle) PointAtAngle(deg float64) Point {
	return c.Center.Translate(VecFromAngle(radians(deg)).Mul(c.Radius))
}

// AngleOfPoint returns the angle of pt as seen from the center, in degrees.
func (c Circle) AngleOfPoint(pt Point) float64 {
	return degrees(pt.Sub(c.Center).Angle())
}

// Arc is a circular arc.
type Arc struct {
	Circle
	AngleRange
}

var _ GeometryLine = Arc{}

func (a Arc) isGeometryLine() {}

func (a Arc) Start() Point { return a.PointAtAngle(a.StartAngle) }
func (a Arc) End() Point   { return a.PointAtAngle(a.StartAngle + a.signedSweep()) }

// Eval returns the point at fraction t of the sweep.
func (a Arc) Eval(t float64) Point {
	return a.PointAtAngle(a.AngleAt(t))
}

// Tangent returns the derivative with respect to t.
func (a Arc) Tangent(t float64) Vec2 {
	s := radians(a.signedSweep())
	return VecFromAngle(radians(a.AngleAt(t))).Normal().Mul(a.Radius * s)
}

// ContainsPoint reports whether pt, assumed to lie on the circle, lies within
// the arc's sweep.
func (a Arc) ContainsPoint(pt Point) bool {
	if a.Radius <= 0 {
		return pt.Equal(a.Center)
	}
	return a.Contains(a.AngleOfPoint(pt))
}

// ParamAtPoint returns the parameter of pt's angle. Points outside the sweep
// produce parameters outside [0, 1].
func (a Arc) ParamAtPoint(pt Point) float64 {
	return a.ParamAt(a.AngleOfPoint(pt))
}

func (a Arc) Reverse() Arc {
	a.AngleRange = a.AngleRange.Reverse()
	return a
}

// Subsegment returns the arc between parameters t0 and t1. If t1 < t0 the
// result runs in the opposite direction.
func (a Arc) Subsegment(t0, t1 float64) Arc {
	a.AngleRange = a.AngleRange.sub(t0, t1)
	return a
}

func (r AngleRange) sub(t0, t1 float64) AngleRange {
	s0, s1 := r.AngleAt(t0), r.AngleAt(t1)
	ccw := r.Counterclockwise
	if t1 < t0 {
		ccw = !ccw
	}
	return AngleRange{StartAngle: s0, EndAngle: s1, Counterclockwise: ccw}
}

func (a Arc) Nearest(pt Point) (distSq, t float64) {
	if !pt.Equal(a.Center) && a.ContainsPoint(pt) {
		t = a.ParamAtPoint(pt)
		return pt.DistanceSquared(a.Eval(t)), min(max(t, 0), 1)
	}
	d0 := pt.DistanceSquared(a.Start())
	d1 := pt.DistanceSquared(a.End())
	if d1 < d0 {
		return d1, 1
	}
	return d0, 0
}

func (a Arc) BoundingBox() Rect {
	r := NewRectFromPoints(a.Start(), a.End())
	for _, deg := range [...]float64{0, 90, 180, 270} {
		if a.Contains(deg) {
			r = r.UnionPoint(a.PointAtAngle(deg))
		}
	}
	return r
}

// IntersectLineCircle returns the intersections of the infinite line through
// p0 and p1 with the circle c.
func IntersectLineCircle(p0, p1 Point, c Circle) []Point {
	g := TwoPointLineToGeneralForm(p0, p1)
	if g.IsDegenerate() {
		return nil
	}
	h := g.Distance(c.Center)
	foot := g.Foot(c.Center)
	if Equals(h, c.Radius) {
		return []Point{foot}
	}
	if h > c.Radius {
		return nil
	}
	d := g.Direction().Normalize().Mul(math.Sqrt(c.Radius*c.Radius - h*h))
	return []Point{foot.Translate(d.Negate()), foot.Translate(d)}
}

// IntersectCircles returns the intersections of two circles. Concentric
// circles have none.
func IntersectCircles(c1, c2 Circle) []Point {
	v := c2.Center.Sub(c1.Center)
	d := v.Hypot()
	if IsZero(d) {
		return nil
	}
	if d > c1.Radius+c2.Radius && !Equals(d, c1.Radius+c2.Radius) {
		return nil
	}
	diff := math.Abs(c1.Radius - c2.Radius)
	if d < diff && !Equals(d, diff) {
		return nil
	}
	a := (c1.Radius*c1.Radius - c2.Radius*c2.Radius + d*d) / (2 * d)
	h2 := c1.Radius*c1.Radius - a*a
	u := v.Mul(1 / d)
	base := c1.Center.Translate(u.Mul(a))
	if h2 <= 0 || IsZero(math.Sqrt(h2)) {
		return []Point{base}
	}
	off := u.Normal().Mul(math.Sqrt(h2))
	return []Point{base.Translate(off.Negate()), base.Translate(off)}
}
