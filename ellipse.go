package geoline

import "math"

// Ellipse is an ellipse with radii RX and RY, rotated by Angle degrees about
// its center.
type Ellipse struct {
	Center Point
	RX     float64
	RY     float64
	Angle  float64
}

// IsCircular reports whether both radii are equal.
func (e Ellipse) IsCircular() bool {
	return Equals(e.RX, e.RY)
}

// toLocal maps world coordinates into the ellipse's axis aligned frame.
func (e Ellipse) toLocal() Affine {
	return frame(e.Center, radians(e.Angle))
}

// toWorld maps local coordinates back into world space.
func (e Ellipse) toWorld() Affine {
	return e.toLocal().Invert()
}

// PointAtAngle returns the point at parametric angle deg.
func (e Ellipse) PointAtAngle(deg float64) Point {
	s, c := math.Sincos(radians(deg))
	return Pt(e.RX*c, e.RY*s).Transform(e.toWorld())
}

// AngleOfPoint returns the parametric angle of pt in degrees.
func (e Ellipse) AngleOfPoint(pt Point) float64 {
	l := pt.Transform(e.toLocal())
	return degrees(math.Atan2(l.Y/e.RY, l.X/e.RX))
}

// derivative returns the derivative of the point with respect to the
// parametric angle in radians.
func (e Ellipse) derivative(deg float64) Vec2 {
	s, c := math.Sincos(radians(deg))
	return rotateVec(Vec2{X: -e.RX * s, Y: e.RY * c}, radians(e.Angle))
}

func rotateVec(v Vec2, th float64) Vec2 {
	s, c := math.Sincos(th)
	return Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// conic returns the implicit form of e.
func (e Ellipse) conic() conic {
	return ellipseConic(e.Center, e.RX, e.RY, radians(e.Angle))
}

// EllipseArc is an arc of an ellipse. The angles of the AngleRange are
// parametric angles.
type EllipseArc struct {
	Ellipse
	AngleRange
}

var _ GeometryLine = EllipseArc{}

func (e EllipseArc) isGeometryLine() {}

func (e EllipseArc) Start() Point { return e.PointAtAngle(e.StartAngle) }
func (e EllipseArc) End() Point   { return e.PointAtAngle(e.StartAngle + e.signedSweep()) }

func (e EllipseArc) Eval(t float64) Point {
	return e.PointAtAngle(e.AngleAt(t))
}

func (e EllipseArc) Tangent(t float64) Vec2 {
	return e.derivative(e.AngleAt(t)).Mul(radians(e.signedSweep()))
}

// ContainsPoint reports whether pt, assumed to lie on the ellipse, lies
// within the sweep.
func (e EllipseArc) ContainsPoint(pt Point) bool {
	return e.Contains(e.AngleOfPoint(pt))
}

func (e EllipseArc) ParamAtPoint(pt Point) float64 {
	return e.ParamAt(e.AngleOfPoint(pt))
}

func (e EllipseArc) Reverse() EllipseArc {
	e.AngleRange = e.AngleRange.Reverse()
	return e
}

func (e EllipseArc) Subsegment(t0, t1 float64) EllipseArc {
	e.AngleRange = e.AngleRange.sub(t0, t1)
	return e
}

func (e EllipseArc) Nearest(pt Point) (distSq, t float64) {
	return nearestByRefinement(e.Eval, pt, 0, 1, 64)
}

func (e EllipseArc) BoundingBox() Rect {
	r := NewRectFromPoints(e.Start(), e.End())
	s, c := math.Sincos(radians(e.Angle))
	tx := degrees(math.Atan2(-e.RY*s, e.RX*c))
	ty := degrees(math.Atan2(e.RY*c, e.RX*s))
	for _, deg := range [...]float64{tx, tx + 180, ty, ty + 180} {
		if e.Contains(deg) {
			r = r.UnionPoint(e.PointAtAngle(deg))
		}
	}
	return r
}

// arc returns the circular arc describing a circular ellipse arc.
func (e EllipseArc) arc() Arc {
	return Arc{
		Circle: Circle{Center: e.Center, Radius: e.RX},
		AngleRange: AngleRange{
			StartAngle:       e.StartAngle + e.Angle,
			EndAngle:         e.EndAngle + e.Angle,
			Counterclockwise: e.Counterclockwise,
		},
	}
}

// conic is the implicit curve A·x² + B·x·y + C·y² + D·x + E·y + F = 0.
type conic struct {
	A, B, C, D, E, F float64
}

func (q conic) Value(pt Point) float64 {
	x, y := pt.X, pt.Y
	return q.A*x*x + q.B*x*y + q.C*y*y + q.D*x + q.E*y + q.F
}

// ellipseConic returns the implicit form of the ellipse centered on center
// with radii a and b rotated by th radians, normalized so that the value is
// 0 on the ellipse and -1 at its center.
func ellipseConic(center Point, a, b, th float64) conic {
	s, c := math.Sincos(th)
	ia, ib := 1/(a*a), 1/(b*b)
	p := c*c*ia + s*s*ib
	q := c * s * (ia - ib)
	r := s*s*ia + c*c*ib
	h, k := center.X, center.Y
	return conic{
		A: p,
		B: 2 * q,
		C: r,
		D: -2*p*h - 2*q*k,
		E: -2*q*h - 2*r*k,
		F: p*h*h + 2*q*h*k + r*k*k - 1,
	}
}

// onConic reports whether the conic value v, measured on an ellipse with the
// smaller radius r, corresponds to a point within Epsilon of the curve.
func onConic(v, r float64) bool {
	return IsZero(v * r / 2)
}

// IntersectLineEllipse returns the intersections of the infinite line through
// p0 and p1 with the ellipse e. The computation happens in the ellipse's
// local frame.
func IntersectLineEllipse(p0, p1 Point, e Ellipse) []Point {
	if e.IsCircular() {
		return IntersectLineCircle(p0, p1, Circle{Center: e.Center, Radius: e.RX})
	}
	loc := e.toLocal()
	q0 := p0.Transform(loc)
	d := p1.Transform(loc).Sub(q0)
	if d.IsZero() {
		return nil
	}
	irx2, iry2 := 1/(e.RX*e.RX), 1/(e.RY*e.RY)
	a := d.X*d.X*irx2 + d.Y*d.Y*iry2
	b := 2 * (q0.X*d.X*irx2 + q0.Y*d.Y*iry2)
	c := q0.X*q0.X*irx2 + q0.Y*q0.Y*iry2 - 1
	world := e.toWorld()
	roots, n := SolveQuadratic(c, b, a)
	if n == 0 {
		// tangency lost to rounding
		t := -b / (2 * a)
		if onConic(c-b*b/(4*a), min(e.RX, e.RY)) {
			return []Point{q0.Translate(d.Mul(t)).Transform(world)}
		}
		return nil
	}
	out := make([]Point, 0, n)
	for _, t := range roots[:n] {
		out = append(out, q0.Translate(d.Mul(t)).Transform(world))
	}
	return dedupePoints(out)
}

// sameEllipse reports whether e1 and e2 describe the same curve. Radii may
// be swapped and angles may differ by half turns, so the quadratic parts of
// the implicit forms are compared instead.
func sameEllipse(e1, e2 Ellipse) bool {
	if !e1.Center.Equal(e2.Center) {
		return false
	}
	q1, q2 := e1.conic(), e2.conic()
	scale := max(math.Abs(q1.A), math.Abs(q1.C), math.Abs(q2.A), math.Abs(q2.C))
	same := func(a, b float64) bool { return math.Abs(a-b) <= Epsilon*scale }
	return same(q1.A, q2.A) && same(q1.B, q2.B) && same(q1.C, q2.C)
}

// IntersectEllipses returns the intersections of two ellipses. Two circles
// use the circle-circle formula; otherwise the second ellipse is expressed
// as a conic in the first ellipse's local frame and the first ellipse's
// parametrization with u = tan(θ/2) turns the problem into a quartic in u.
func IntersectEllipses(e1, e2 Ellipse) []Point {
	if e1.IsCircular() && e2.IsCircular() {
		return IntersectCircles(
			Circle{Center: e1.Center, Radius: e1.RX},
			Circle{Center: e2.Center, Radius: e2.RX})
	}
	if e1.IsCircular() {
		// parametrize the non-circular one
		e1, e2 = e2, e1
	}
	if sameEllipse(e1, e2) {
		return nil
	}
	loc := e1.toLocal()
	q := ellipseConic(e2.Center.Transform(loc), e2.RX, e2.RY, radians(e2.Angle-e1.Angle))
	a, b := e1.RX, e1.RY
	c4 := q.A*a*a - q.D*a + q.F
	c3 := -2*q.B*a*b + 2*q.E*b
	c2 := -2*q.A*a*a + 4*q.C*b*b + 2*q.F
	c1 := 2*q.B*a*b + 2*q.E*b
	c0 := q.A*a*a + q.D*a + q.F

	world := e1.toWorld()
	rmin := min(e2.RX, e2.RY)
	var out []Point
	roots, n := SolveQuartic(c0, c1, c2, c3, c4)
	for _, u := range roots[:n] {
		th := 2 * math.Atan(u)
		s, c := math.Sincos(th)
		out = append(out, Pt(a*c, b*s).Transform(world))
	}
	// θ = π has no finite u
	if onConic(c4, rmin) {
		out = append(out, Pt(-a, 0).Transform(world))
	}
	return dedupePoints(out)
}
