package geoline

var _ GeometryLine = QuadBez{}

// QuadBez is a quadratic Bézier curve from P0 to P2 with control point P1.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) isGeometryLine() {}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

// Raise returns a cubic Bézier segment that exactly represents this
// quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Tangent returns the derivative at t.
func (q QuadBez) Tangent(t float64) Vec2 {
	d := q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t).Mul(2)
	if d.IsZero() {
		// cusp at an end with a coincident control point
		return q.P2.Sub(q.P0)
	}
	return d
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

// Subsegment returns the curve between t0 and t1. Parameters outside [0, 1]
// extrapolate the curve's polynomial.
func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

// Extrema returns the parameters in (0, 1) at which x or y is extremal.
func (q QuadBez) Extrema() ([2]float64, int) {
	var out [2]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

func (q QuadBez) BoundingBox() Rect {
	r := NewRectFromPoints(q.P0, q.P2)
	ts, n := q.Extrema()
	for _, t := range ts[:n] {
		r = r.UnionPoint(q.Eval(t))
	}
	return r
}

func (q QuadBez) controlBox() Rect {
	return NewRectFromPoints(q.P0, q.P1).UnionPoint(q.P2)
}

// Nearest finds the nearest point using the analytical solution of the
// cubic obtained from the derivative of the squared distance.
func (q QuadBez) Nearest(pt Point) (distSq, outT float64) {
	var rBest option[float64]
	tBest := 0.0
	evalT := func(t float64) {
		r := q.Eval(t).Sub(pt).Hypot2()
		if !rBest.isSet || r < rBest.value {
			rBest.set(r)
			tBest = t
		}
	}
	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2.0))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)
	for _, t := range roots[:n] {
		if t >= 0.0 && t <= 1.0 {
			evalT(t)
		}
	}
	evalT(0)
	evalT(1)
	return rBest.value, tBest
}

// lineRoots returns the parameters at which the curve crosses the infinite
// line g, by substituting the curve's polynomial into the line equation.
func (q QuadBez) lineRoots(g GeneralFormLine) []float64 {
	px0, px1, px2 := quadBezCoefficients(q.P0.X, q.P1.X, q.P2.X)
	py0, py1, py2 := quadBezCoefficients(q.P0.Y, q.P1.Y, q.P2.Y)
	ts, n := SolveQuadratic(
		g.A*px0+g.B*py0+g.C,
		g.A*px1+g.B*py1,
		g.A*px2+g.B*py2,
	)
	return ts[:n]
}

// Return polynomial coefficients given quadratic Bézier coordinates.
func quadBezCoefficients(x0, x1, x2 float64) (_, _, _ float64) {
	p0 := x0
	p1 := 2.0*x1 - 2.0*x0
	p2 := x2 - 2.0*x1 + x0
	return p0, p1, p2
}

type option[T any] struct {
	isSet bool
	value T
}

func (o *option[T]) set(v T) {
	o.isSet = true
	o.value = v
}
