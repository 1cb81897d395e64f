package geoline

var _ GeometryLine = CubicBez{}

// CubicBez is a cubic Bézier curve from P0 to P3 with control points P1
// and P2.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (c CubicBez) isGeometryLine() {}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	return Point(a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t)))
}

// Differentiate returns the derivative, which is a quadratic Bézier.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// Tangent returns the derivative at t, falling back to the chord between
// control points where the derivative vanishes.
func (c CubicBez) Tangent(t float64) Vec2 {
	d := Vec2(c.Differentiate().Eval(t))
	if !d.IsZero() {
		return d
	}
	switch {
	case t <= 0.5 && !c.P2.Equal(c.P0):
		return c.P2.Sub(c.P0)
	case t > 0.5 && !c.P3.Equal(c.P1):
		return c.P3.Sub(c.P1)
	default:
		return c.P3.Sub(c.P0)
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the curve between t0 and t1. Parameters outside [0, 1]
// extrapolate the curve's polynomial.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// Extrema returns the parameters in (0, 1) at which x or y is extremal,
// sorted.
func (c CubicBez) Extrema() ([4]float64, int) {
	var out [4]float64
	n := 0
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2.0*d1 + d2
		b := 2.0 * (d1 - d0)
		roots, rn := SolveQuadratic(d0, b, a)
		for _, t := range roots[:rn] {
			if t > 0.0 && t < 1.0 {
				out[n] = t
				n++
			}
		}
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	for i := 1; i < n; i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out, n
}

func (c CubicBez) BoundingBox() Rect {
	r := NewRectFromPoints(c.P0, c.P3)
	ts, n := c.Extrema()
	for _, t := range ts[:n] {
		r = r.UnionPoint(c.Eval(t))
	}
	return r
}

func (c CubicBez) controlBox() Rect {
	return NewRectFromPoints(c.P0, c.P1).UnionPoint(c.P2).UnionPoint(c.P3)
}

// Nearest finds the nearest point by sampling and refinement.
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	return nearestByRefinement(c.Eval, pt, 0, 1, 64)
}

// lineRoots returns the parameters at which the curve crosses the infinite
// line g.
func (c CubicBez) lineRoots(g GeneralFormLine) []float64 {
	px0, px1, px2, px3 := cubicBezCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	py0, py1, py2, py3 := cubicBezCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	ts, n := SolveCubic(
		g.A*px0+g.B*py0+g.C,
		g.A*px1+g.B*py1,
		g.A*px2+g.B*py2,
		g.A*px3+g.B*py3,
	)
	return ts[:n]
}

// Return polynomial coefficients given cubic Bézier coordinates.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}
