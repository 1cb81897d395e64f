package geoline

import (
	"math"
	"slices"
)

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, the root of the linear equation is
// returned and the other root, which might be out of representable range, is
// dropped. In the degenerate case where all coefficients are zero a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if isFinite(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1 * sc1 overflowed. Find one root using sc1 x + x² = 0, the
		// other as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !isFinite(root2) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// SolveCubic finds real roots of cubic equations, using Jim Blinn's
// formulation from "How to Solve a Cubic Equation".
//
// See: https://momentsingraphics.de/CubicRoots.html
//
// Returns values of x for which c0 + c1 x + c2 x² + c3 x³ = 0.0. When c3 is
// zero the quadratic is solved instead.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	c3Recip := 1.0 / c3
	scaledC2 := c2 * (1.0 / 3.0 * c3Recip)
	scaledC1 := c1 * (1.0 / 3.0 * c3Recip)
	scaledC0 := c0 * c3Recip
	if !isFinite(scaledC0) || !isFinite(scaledC1) || !isFinite(scaledC2) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}
	c0, c1, c2 = scaledC0, scaledC1, scaledC2
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	d := 4.0*d0*d2 - d1*d1
	de := math.FMA(-2.0*c2, d0, d1)
	if d < 0.0 {
		sq := math.Sqrt(-0.25 * d)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - c2}, 1
	} else if d == 0.0 {
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return [3]float64{t1 - c2, -2.0*t1 - c2}, 2
	}
	th := math.Atan2(math.Sqrt(d), -de) * (1.0 / 3.0)
	thSin, thCos := math.Sincos(th)
	r0 := thCos
	ss3 := thSin * math.Sqrt(3.0)
	r1 := 0.5 * (-thCos + ss3)
	r2 := 0.5 * (-thCos - ss3)
	t := 2.0 * math.Sqrt(-d0)
	return [3]float64{
		math.FMA(t, r0, -c2),
		math.FMA(t, r1, -c2),
		math.FMA(t, r2, -c2),
	}, 3
}

// SolveQuartic finds the real roots of c0 + c1 x + c2 x² + c3 x³ + c4 x⁴ = 0
// in closed form, using Ferrari's method with a cubic resolvent. Roots are
// polished with Newton steps, sorted, and deduplicated within [Epsilon].
// Complex roots are dropped. When c4 is zero the cubic is solved instead.
func SolveQuartic(c0, c1, c2, c3, c4 float64) ([4]float64, int) {
	var out [4]float64
	b, c, d, e := c3/c4, c2/c4, c1/c4, c0/c4
	if !isFinite(b) || !isFinite(c) || !isFinite(d) || !isFinite(e) {
		roots, n := SolveCubic(c0, c1, c2, c3)
		copy(out[:], roots[:n])
		return out, n
	}

	// depress with x = y - b/4
	bb := b * b
	p := c - 3*bb/8
	q := d - b*c/2 + bb*b/8
	r := e - b*d/4 + bb*c/16 - 3*bb*bb/256

	var ys []float64
	if math.Abs(q) < 1e-14*max(1, math.Abs(p), math.Abs(r)) {
		// biquadratic in y²
		for _, z := range looseMonicQuadratic(p, r) {
			if z < 0 {
				if z > -Epsilon {
					ys = append(ys, 0)
				}
				continue
			}
			s := math.Sqrt(z)
			ys = append(ys, s, -s)
		}
	} else {
		ms, n := SolveCubic(-q*q/8, p*p/4-r, p, 1)
		m := slices.Max(ms[:n])
		if m <= 0 {
			m = math.Abs(m)
		}
		s := math.Sqrt(2 * m)
		if s == 0 {
			return out, 0
		}
		qs := q / (2 * s)
		ys = append(ys, looseMonicQuadratic(s, p/2+m-qs)...)
		ys = append(ys, looseMonicQuadratic(-s, p/2+m+qs)...)
	}

	f := func(x float64) (float64, float64) {
		v := (((x+b)*x+c)*x+d)*x + e
		dv := ((4*x+3*b)*x+2*c)*x + d
		return v, dv
	}
	xs := make([]float64, 0, len(ys))
	for _, y := range ys {
		x := y - b/4
		for range 2 {
			v, dv := f(x)
			if dv == 0 {
				break
			}
			if nx := x - v/dv; isFinite(nx) {
				x = nx
			}
		}
		xs = append(xs, x)
	}
	slices.Sort(xs)
	n := 0
	for _, x := range xs {
		if n > 0 && Equals(out[n-1], x) {
			continue
		}
		out[n] = x
		n++
	}
	return out, n
}

// SolveMonicQuartic returns the distinct real roots of
// u⁴ + b u³ + c u² + d u + e = 0.
func SolveMonicQuartic(b, c, d, e float64) []float64 {
	roots, n := SolveQuartic(e, d, c, b, 1)
	return roots[:n]
}

// looseMonicQuadratic solves x² + b x + c = 0 and reports a double root when
// the discriminant is negative only by rounding.
func looseMonicQuadratic(b, c float64) []float64 {
	disc := b*b/4 - c
	if disc < 0 {
		if disc > -1e-12*max(1, b*b) {
			return []float64{-b / 2}
		}
		return nil
	}
	roots, n := SolveQuadratic(c, b, 1)
	return roots[:n]
}

// SolveITP solves an arbitrary function for a zero-crossing using the
// [ITP method].
//
// It is assumed that ya < 0.0 and yb > 0.0. The a and b parameters are the
// lower and upper bounds of the bracket. k2 is hardwired to 2; n0 controls
// the relative impact of the bisection and secant components, and a k1 of
// 0.2 / (b - a) works well.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// findRoots returns the zeros of f in [lo, hi], found by sampling n
// intervals. Sign changes are refined with [SolveITP]; local minima of |f|
// below tol are reported as touching roots.
func findRoots(f func(float64) float64, lo, hi float64, n int, tol float64) []float64 {
	const eps = 1e-12
	ts := make([]float64, n+1)
	vs := make([]float64, n+1)
	for i := range ts {
		ts[i] = lo + (hi-lo)*float64(i)/float64(n)
		vs[i] = f(ts[i])
	}
	var out []float64
	add := func(t float64) {
		if len(out) > 0 && math.Abs(out[len(out)-1]-t) < 1e-9 {
			return
		}
		out = append(out, t)
	}
	for i := range n + 1 {
		if vs[i] == 0 {
			add(ts[i])
			continue
		}
		if i < n && vs[i+1] != 0 && (vs[i] < 0) != (vs[i+1] < 0) {
			a, b := ts[i], ts[i+1]
			g := f
			ya, yb := vs[i], vs[i+1]
			if ya > 0 {
				g = func(t float64) float64 { return -f(t) }
				ya, yb = -ya, -yb
			}
			add(SolveITP(g, a, b, eps, 1, 0.2/(b-a), ya, yb))
			continue
		}
		if i > 0 && i < n &&
			math.Abs(vs[i]) <= math.Abs(vs[i-1]) && math.Abs(vs[i]) <= math.Abs(vs[i+1]) &&
			(vs[i-1] < 0) == (vs[i] < 0) && (vs[i+1] < 0) == (vs[i] < 0) {
			t := goldenMin(func(t float64) float64 { return math.Abs(f(t)) }, ts[i-1], ts[i+1])
			if math.Abs(f(t)) < tol {
				add(t)
			}
		}
	}
	return out
}

// goldenMin minimizes a unimodal f on [a, b] by golden section search.
func goldenMin(f func(float64) float64, a, b float64) float64 {
	const invPhi = 0.6180339887498949
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)
	for range 80 {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}
	return 0.5 * (a + b)
}

// nearestByRefinement finds the parameter in [lo, hi] of the point of a
// parametric curve nearest to pt by sampling n intervals and refining the
// best one.
func nearestByRefinement(eval func(float64) Point, pt Point, lo, hi float64, n int) (distSq, t float64) {
	best, bestI := math.Inf(1), 0
	step := (hi - lo) / float64(n)
	for i := range n + 1 {
		if d := pt.DistanceSquared(eval(lo + float64(i)*step)); d < best {
			best, bestI = d, i
		}
	}
	a := lo + float64(max(bestI-1, 0))*step
	b := lo + float64(min(bestI+1, n))*step
	t = goldenMin(func(t float64) float64 { return pt.DistanceSquared(eval(t)) }, a, b)
	if d := pt.DistanceSquared(eval(t)); d < best {
		return d, t
	}
	return best, lo + float64(bestI)*step
}
