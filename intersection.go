package geoline

import (
	"iter"
	"math"
)

// kindRank orders the GeometryLine kinds so that every unordered pair is
// handled by exactly one case.
func kindRank(g GeometryLine) int {
	switch g.(type) {
	case Line:
		return 0
	case Arc:
		return 1
	case EllipseArc:
		return 2
	case QuadBez:
		return 3
	case CubicBez:
		return 4
	default:
		panic(unknownKind(g))
	}
}

// Intersect returns the intersection points of a and b.
//
// Without extend only points on both lines are returned. With extend the
// supporting curves are intersected instead: lines become infinite, arcs
// become full circles and ellipses, and Béziers are extrapolated by one
// parameter unit on both ends. Tangential contacts yield a single point.
// Overlapping lines yield no points.
func Intersect(a, b GeometryLine, extend bool) []Point {
	if IsDegenerate(a) || IsDegenerate(b) {
		return nil
	}
	if kindRank(a) > kindRank(b) {
		a, b = b, a
	}
	if extend {
		a, b = extendBezier(a), extendBezier(b)
	}
	return dedupePoints(intersect(a, b, extend))
}

func extendBezier(g GeometryLine) GeometryLine {
	switch g := g.(type) {
	case QuadBez, CubicBez:
		return Subsegment(g, -curveExtension, 1+curveExtension)
	default:
		return g
	}
}

// intersect handles the pair with kindRank(a) <= kindRank(b).
func intersect(a, b GeometryLine, extend bool) []Point {
	switch a := a.(type) {
	case Line:
		onA := func(p Point) bool { return extend || PointIsOnLineSegment(p, a.P0, a.P1) }
		switch b := b.(type) {
		case Line:
			p, ok := a.CrossingPoint(b)
			if !ok || !onA(p) || !(extend || PointIsOnLineSegment(p, b.P0, b.P1)) {
				return nil
			}
			return []Point{p}
		case Arc:
			return filterPoints(IntersectLineCircle(a.P0, a.P1, b.Circle), func(p Point) bool {
				return onA(p) && (extend || b.ContainsPoint(p))
			})
		case EllipseArc:
			return filterPoints(IntersectLineEllipse(a.P0, a.P1, b.Ellipse), func(p Point) bool {
				return onA(p) && (extend || b.ContainsPoint(p))
			})
		case QuadBez:
			return filterPoints(evalRoots(b, b.lineRoots(a.GeneralForm())), onA)
		case CubicBez:
			return filterPoints(evalRoots(b, b.lineRoots(a.GeneralForm())), onA)
		}
	case Arc:
		onA := func(p Point) bool { return extend || a.ContainsPoint(p) }
		switch b := b.(type) {
		case Arc:
			return filterPoints(IntersectCircles(a.Circle, b.Circle), func(p Point) bool {
				return onA(p) && (extend || b.ContainsPoint(p))
			})
		case EllipseArc:
			e := Ellipse{Center: a.Center, RX: a.Radius, RY: a.Radius}
			return filterPoints(IntersectEllipses(e, b.Ellipse), func(p Point) bool {
				return onA(p) && (extend || b.ContainsPoint(p))
			})
		case QuadBez, CubicBez:
			q := ellipseConic(a.Center, a.Radius, a.Radius, 0)
			return filterPoints(conicRoots(q, a.Radius, b), onA)
		}
	case EllipseArc:
		onA := func(p Point) bool { return extend || a.ContainsPoint(p) }
		switch b := b.(type) {
		case EllipseArc:
			return filterPoints(IntersectEllipses(a.Ellipse, b.Ellipse), func(p Point) bool {
				return onA(p) && (extend || b.ContainsPoint(p))
			})
		case QuadBez, CubicBez:
			return filterPoints(conicRoots(a.conic(), min(a.RX, a.RY), b), onA)
		}
	case QuadBez:
		switch b := b.(type) {
		case QuadBez:
			return intersectCubics(a.Raise(), b.Raise())
		case CubicBez:
			return intersectCubics(a.Raise(), b)
		}
	case CubicBez:
		if b, ok := b.(CubicBez); ok {
			return intersectCubics(a, b)
		}
	}
	panic(unknownKind(b))
}

func filterPoints(pts []Point, keep func(Point) bool) []Point {
	out := pts[:0:0]
	for _, p := range pts {
		if p.isValid() && keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// evalRoots evaluates g at the roots that lie in [0, 1].
func evalRoots(g GeometryLine, ts []float64) []Point {
	var out []Point
	for _, t := range ts {
		if IsBetween(t, 0, 1) {
			out = append(out, g.Eval(t))
		}
	}
	return out
}

// conicRoots returns the points where the Bézier b meets the conic q, whose
// smaller radius is r. The conic is evaluated along the curve and the
// resulting polynomial in t, of degree four or six, is solved numerically.
func conicRoots(q conic, r float64, b GeometryLine) []Point {
	f := func(t float64) float64 { return q.Value(b.Eval(t)) }
	ts := findRoots(f, 0, 1, 64, 2*Epsilon/r)
	return evalRoots(b, ts)
}

// intersectBudget bounds the number of subdivision steps of intersectCubics.
const intersectBudget = 1 << 14

// intersectCubics intersects two cubic Béziers by recursive subdivision,
// discarding pairs whose control boxes are disjoint, until both pieces are
// flat enough to be intersected as segments. The parameters found on the
// segments are then refined on the curves themselves.
func intersectCubics(a, b CubicBez) []Point {
	var out []Point
	budget := intersectBudget
	exhausted := false
	var rec func(sa, sb CubicBez, t0, t1, u0, u1 float64, depth int)
	rec = func(sa, sb CubicBez, t0, t1, u0, u1 float64, depth int) {
		if budget <= 0 {
			exhausted = true
			return
		}
		budget--
		if !sa.controlBox().Overlaps(sb.controlBox()) {
			return
		}
		if depth > 50 || (isFlat(sa) && isFlat(sb)) {
			if p, ok := chordCrossing(a, b, sa, sb, t0, t1, u0, u1); ok {
				out = append(out, p)
			}
			return
		}
		tm, um := (t0+t1)/2, (u0+u1)/2
		a0, a1 := sa.Subdivide()
		b0, b1 := sb.Subdivide()
		rec(a0, b0, t0, tm, u0, um, depth+1)
		rec(a0, b1, t0, tm, um, u1, depth+1)
		rec(a1, b0, tm, t1, u0, um, depth+1)
		rec(a1, b1, tm, t1, um, u1, depth+1)
	}
	rec(a, b, 0, 1, 0, 1, 0)
	if exhausted {
		Logger().Warn("curve intersection exceeded subdivision budget",
			"budget", intersectBudget, "found", len(out))
	}
	return out
}

// chordCrossing intersects the chords of the pieces sa and sb, which span
// [t0, t1] of a and [u0, u1] of b. The parallel test is relative to the
// chord lengths, as chords of deep pieces are short.
func chordCrossing(a, b, sa, sb CubicBez, t0, t1, u0, u1 float64) (Point, bool) {
	const slack = 1e-9
	da, db := sa.P3.Sub(sa.P0), sb.P3.Sub(sb.P0)
	d := da.Cross(db)
	if math.Abs(d) <= Epsilon*da.Hypot()*db.Hypot() {
		switch {
		case sa.P0.Equal(sb.P0) || sa.P0.Equal(sb.P3):
			return sa.P0, true
		case sa.P3.Equal(sb.P0) || sa.P3.Equal(sb.P3):
			return sa.P3, true
		}
		return Point{}, false
	}
	w := sb.P0.Sub(sa.P0)
	s := w.Cross(db) / d
	r := w.Cross(da) / d
	if s < -slack || s > 1+slack || r < -slack || r > 1+slack {
		return Point{}, false
	}
	t := t0 + min(max(s, 0), 1)*(t1-t0)
	u := u0 + min(max(r, 0), 1)*(u1-u0)
	guess := sa.P0.Translate(da.Mul(s))
	if p, ok := refineCrossing(a, b, t, u); ok && p.Distance(guess) < 2*max(da.Hypot(), db.Hypot()) {
		return p, true
	}
	return guess, true
}

// refineCrossing runs Newton's method on a(t) - b(u) = 0, keeping both
// parameters in [0, 1].
func refineCrossing(a, b CubicBez, t, u float64) (Point, bool) {
	for range 8 {
		f := a.Eval(t).Sub(b.Eval(u))
		if f.Hypot() < Epsilon*1e-3 {
			break
		}
		ta, tb := a.Tangent(t), b.Tangent(u)
		det := tb.Cross(ta)
		if det == 0 {
			return Point{}, false
		}
		// solve ta·dt - tb·du = -f
		dt := tb.Cross(f) / det
		du := ta.Cross(f) / det
		t = min(max(t-dt, 0), 1)
		u = min(max(u-du, 0), 1)
	}
	pa, pb := a.Eval(t), b.Eval(u)
	if !isFinite(pa.X) || !isFinite(pa.Y) || pa.Distance(pb) > Epsilon {
		return Point{}, false
	}
	return pa, true
}

// isFlat reports whether the control points of c are within 1e-6 of its
// chord.
func isFlat(c CubicBez) bool {
	const tol = 1e-6
	chord := c.P3.Sub(c.P0)
	l := chord.Hypot()
	if l < tol {
		return c.P1.Distance(c.P0) < tol && c.P2.Distance(c.P0) < tol
	}
	d1 := math.Abs(chord.Cross(c.P1.Sub(c.P0))) / l
	d2 := math.Abs(chord.Cross(c.P2.Sub(c.P0))) / l
	return d1 < tol && d2 < tol
}

// IterateIntersections yields the distinct intersection points between every
// line of a and every line of b.
func IterateIntersections(a, b []GeometryLine, extend bool) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		var seen []Point
		for _, la := range a {
			for _, lb := range b {
			points:
				for _, p := range Intersect(la, lb, extend) {
					for _, q := range seen {
						if q.Equal(p) {
							continue points
						}
					}
					seen = append(seen, p)
					if !yield(p) {
						return
					}
				}
			}
		}
	}
}

// NearestIntersection returns the intersection of a and b closest to near.
func NearestIntersection(a, b GeometryLine, extend bool, near Point) (Point, bool) {
	pts := Intersect(a, b, extend)
	if len(pts) == 0 {
		return Point{}, false
	}
	best := pts[0]
	for _, p := range pts[1:] {
		if p.DistanceSquared(near) < best.DistanceSquared(near) {
			best = p
		}
	}
	return best, true
}
