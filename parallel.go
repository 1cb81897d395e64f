package geoline

import "math"

// Side identifies one side of a line relative to its direction of travel.
type Side int

const (
	// PositiveSide is the side the normal N = ⟨-T.y, T.x⟩ points to, T being
	// the tangent.
	PositiveSide Side = 0
	// NegativeSide is the side of -N.
	NegativeSide Side = 1
)

// Opposite returns the other side.
func (s Side) Opposite() Side { return 1 - s }

func (s Side) sign() float64 {
	if s == PositiveSide {
		return 1
	}
	return -1
}

func sideOf(v float64) Side {
	if v > 0 {
		return PositiveSide
	}
	return NegativeSide
}

// PointSide returns the side of g that pt lies on.
func PointSide(pt Point, g GeometryLine) Side {
	switch g := g.(type) {
	case Line:
		return sideOf(g.Tangent(0).Cross(pt.Sub(g.P0)))
	case Arc:
		inside := pt.Distance(g.Center) < g.Radius
		if inside != g.Counterclockwise {
			return PositiveSide
		}
		return NegativeSide
	case EllipseArc:
		inside := g.conic().Value(pt) < 0
		if inside != g.Counterclockwise {
			return PositiveSide
		}
		return NegativeSide
	case QuadBez, CubicBez:
		_, t := g.Nearest(pt)
		return sideOf(g.Tangent(t).Cross(pt.Sub(g.Eval(t))))
	default:
		panic(unknownKind(g))
	}
}

// ParallelLinesByDistance returns the segments at distance from l on the
// positive and the negative side.
func ParallelLinesByDistance(l Line, distance float64) [2]Line {
	n := l.Tangent(0).Normal().Normalize().Mul(distance)
	return [2]Line{l.Translate(n), l.Translate(n.Negate())}
}

// ParallelArcsByDistance returns the concentric arcs at distance from a on
// the positive and the negative side. A side whose radius would not be
// positive reports false.
func ParallelArcsByDistance(a Arc, distance float64) ([2]Arc, [2]bool) {
	// the normal points inwards when the angle increases
	sign := -1.0
	if a.Counterclockwise {
		sign = 1
	}
	var out [2]Arc
	var ok [2]bool
	for i, s := range [2]float64{sign, -sign} {
		out[i] = a
		out[i].Radius = a.Radius + s*distance
		ok[i] = out[i].Radius > 0 && !IsZero(out[i].Radius)
	}
	return out, ok
}

// ParallelEllipseArcsByDistance returns the ellipse arcs whose radii differ
// from e's by distance, on the positive and the negative side. The true
// offset of an ellipse is not an ellipse; this is the customary
// approximation.
func ParallelEllipseArcsByDistance(e EllipseArc, distance float64) ([2]EllipseArc, [2]bool) {
	sign := -1.0
	if e.Counterclockwise {
		sign = 1
	}
	var out [2]EllipseArc
	var ok [2]bool
	for i, s := range [2]float64{sign, -sign} {
		out[i] = e
		out[i].RX = e.RX + s*distance
		out[i].RY = e.RY + s*distance
		ok[i] = out[i].RX > 0 && out[i].RY > 0 && !IsZero(out[i].RX) && !IsZero(out[i].RY)
	}
	return out, ok
}

// ParallelQuadBezByDistance offsets the control polygon of q: both legs are
// shifted by distance and the new control point is where the shifted legs
// meet.
func ParallelQuadBezByDistance(q QuadBez, distance float64) [2]QuadBez {
	var out [2]QuadBez
	for i, s := range [2]Side{PositiveSide, NegativeSide} {
		pts := offsetControlPolygon([]Point{q.P0, q.P1, q.P2}, s.sign()*distance)
		out[i] = QuadBez{pts[0], pts[1], pts[2]}
	}
	return out
}

// ParallelCubicBezByDistance offsets the control polygon of c like
// [ParallelQuadBezByDistance].
func ParallelCubicBezByDistance(c CubicBez, distance float64) [2]CubicBez {
	var out [2]CubicBez
	for i, s := range [2]Side{PositiveSide, NegativeSide} {
		pts := offsetControlPolygon([]Point{c.P0, c.P1, c.P2, c.P3}, s.sign()*distance)
		out[i] = CubicBez{pts[0], pts[1], pts[2], pts[3]}
	}
	return out
}

// offsetControlPolygon shifts every leg of the polygon by d along its normal
// and returns the polygon formed by the shifted end points and the
// intersections of consecutive shifted legs. Zero length legs borrow the
// direction of the nearest leg that has one.
func offsetControlPolygon(pts []Point, d float64) []Point {
	legs := len(pts) - 1
	dirs := make([]Vec2, legs)
	for i := range legs {
		dirs[i] = pts[i+1].Sub(pts[i])
	}
	for i := range legs {
		if !dirs[i].IsZero() {
			continue
		}
		for j := 1; j < legs; j++ {
			if i+j < legs && !pts[i+j+1].Sub(pts[i+j]).IsZero() {
				dirs[i] = pts[i+j+1].Sub(pts[i+j])
				break
			}
			if i-j >= 0 && !pts[i-j+1].Sub(pts[i-j]).IsZero() {
				dirs[i] = pts[i-j+1].Sub(pts[i-j])
				break
			}
		}
		if dirs[i].IsZero() {
			dirs[i] = pts[legs].Sub(pts[0])
		}
	}
	shift := make([]Vec2, legs)
	for i, v := range dirs {
		shift[i] = v.Normal().Normalize().Mul(d)
	}
	out := make([]Point, len(pts))
	out[0] = pts[0].Translate(shift[0])
	out[legs] = pts[legs].Translate(shift[legs-1])
	for i := 1; i < legs; i++ {
		prev := TwoPointLineToGeneralForm(pts[i-1].Translate(shift[i-1]), pts[i-1].Translate(shift[i-1]).Translate(dirs[i-1]))
		next := TwoPointLineToGeneralForm(pts[i].Translate(shift[i]), pts[i].Translate(shift[i]).Translate(dirs[i]))
		if p, ok := prev.Intersect(next); ok {
			out[i] = p
		} else {
			out[i] = pts[i].Translate(shift[i])
		}
	}
	return out
}

// ParallelGeometryLineByDistance returns the offsets of g at distance on the
// positive and the negative side. A side that collapses is nil.
func ParallelGeometryLineByDistance(g GeometryLine, distance float64) [2]GeometryLine {
	switch g := g.(type) {
	case Line:
		p := ParallelLinesByDistance(g, distance)
		return [2]GeometryLine{p[0], p[1]}
	case Arc:
		p, ok := ParallelArcsByDistance(g, distance)
		return [2]GeometryLine{keepIf(p[0], ok[0]), keepIf(p[1], ok[1])}
	case EllipseArc:
		p, ok := ParallelEllipseArcsByDistance(g, distance)
		return [2]GeometryLine{keepIf(p[0], ok[0]), keepIf(p[1], ok[1])}
	case QuadBez:
		p := ParallelQuadBezByDistance(g, distance)
		return [2]GeometryLine{p[0], p[1]}
	case CubicBez:
		p := ParallelCubicBezByDistance(g, distance)
		return [2]GeometryLine{p[0], p[1]}
	default:
		panic(unknownKind(g))
	}
}

func keepIf(g GeometryLine, ok bool) GeometryLine {
	if !ok {
		return nil
	}
	return g
}

// ParallelGeometryLines offsets a connected chain of lines by distance on
// side. A negative distance offsets to the other side.
//
// Every line is offset on the same side. Consecutive offset pieces are
// joined at the intersection of their supporting curves and trimmed to run
// between those corners; when the supporting curves don't meet a straight
// connecting line is inserted. A closed chain is joined around its seam.
// Pieces that collapse are dropped.
func ParallelGeometryLines(lines []GeometryLine, distance float64, side Side) []GeometryLine {
	if distance < 0 {
		distance, side = -distance, side.Opposite()
	}
	if distance == 0 || len(lines) == 0 {
		return append([]GeometryLine(nil), lines...)
	}
	closed := IsClosed(lines)
	var pieces []GeometryLine
	for _, l := range lines {
		if IsDegenerate(l) {
			continue
		}
		if p := ParallelGeometryLineByDistance(l, distance)[side]; p != nil {
			pieces = append(pieces, p)
		}
	}
	n := len(pieces)
	if n == 0 {
		return nil
	}

	starts := make([]Point, n)
	ends := make([]Point, n)
	for i, p := range pieces {
		starts[i], ends[i] = p.Start(), p.End()
	}
	bridges := make([]GeometryLine, n)
	joins := n - 1
	if closed && n > 1 {
		joins = n
	}
	for i := range joins {
		a, b := pieces[i], pieces[(i+1)%n]
		if corner, ok := joinPoint(a, b); ok {
			ends[i], starts[(i+1)%n] = corner, corner
		} else {
			bridges[i] = Line{a.End(), b.Start()}
		}
	}

	out := make([]GeometryLine, 0, n)
	for i, p := range pieces {
		if t := trim(p, starts[i], ends[i]); t != nil {
			out = append(out, t)
		}
		if bridges[i] != nil {
			out = append(out, bridges[i])
		}
	}
	return out
}

// joinPoint returns where the offset pieces a and b should meet.
func joinPoint(a, b GeometryLine) (Point, bool) {
	if a.End().Equal(b.Start()) {
		return a.End(), true
	}
	pts := Intersect(a, b, true)
	if len(pts) == 0 {
		return Point{}, false
	}
	score := func(p Point) float64 { return p.Distance(a.End()) + p.Distance(b.Start()) }
	best := pts[0]
	for _, p := range pts[1:] {
		if score(p) < score(best) {
			best = p
		}
	}
	return best, true
}

// trim returns g cut or extended to run from start to end, both of which lie
// on its supporting curve. It returns nil if the result has no extent.
func trim(g GeometryLine, start, end Point) GeometryLine {
	if start.Equal(end) && !isFullTurn(g) {
		return nil
	}
	switch g := g.(type) {
	case Line:
		return Line{start, end}
	case Arc:
		if start.Equal(g.Start()) && end.Equal(g.End()) {
			return g
		}
		return g.Subsegment(g.ParamAtPoint(start), g.ParamAtPoint(end))
	case EllipseArc:
		if start.Equal(g.Start()) && end.Equal(g.End()) {
			return g
		}
		return g.Subsegment(g.ParamAtPoint(start), g.ParamAtPoint(end))
	case QuadBez:
		q := g.Subsegment(ParamAtPoint(g, start), ParamAtPoint(g, end))
		q.P0, q.P2 = start, end
		return q
	case CubicBez:
		c := g.Subsegment(ParamAtPoint(g, start), ParamAtPoint(g, end))
		c.P0, c.P3 = start, end
		return c
	default:
		panic(unknownKind(g))
	}
}

func isFullTurn(g GeometryLine) bool {
	switch g := g.(type) {
	case Arc:
		return Equals(g.Sweep(), 360)
	case EllipseArc:
		return Equals(g.Sweep(), 360)
	}
	return false
}

// MinimumDistance returns the smallest distance from pt to any of lines and
// the index of the nearest line, or -1 if there are no lines.
func MinimumDistance(pt Point, lines []GeometryLine) (float64, int) {
	best, idx := math.Inf(1), -1
	for i, l := range lines {
		if d, _ := l.Nearest(pt); d < best {
			best, idx = d, i
		}
	}
	return math.Sqrt(best), idx
}

// ParallelGeometryLinesByDistance offsets lines towards ref. If distance is
// zero the distance from ref to the nearest line is used, so that a caller
// can pick the offset by pointing at it. The side is taken from the line
// nearest to ref and applied to every line. The result holds one chain per
// connected run of lines.
func ParallelGeometryLinesByDistance(ref Point, lines []GeometryLine, distance float64) [][]GeometryLine {
	d, idx := MinimumDistance(ref, lines)
	if idx < 0 {
		return nil
	}
	if distance == 0 {
		distance = d
	}
	side := PointSide(ref, lines[idx])
	var out [][]GeometryLine
	for _, run := range ConnectedRuns(lines) {
		if p := ParallelGeometryLines(run, distance, side); len(p) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// ParallelPolyline offsets a polyline by distance on side. A closed polyline
// is joined around its seam and returned with its last point equal to its
// first.
func ParallelPolyline(points []Point, distance float64, side Side, closed bool) []Point {
	if closed && len(points) > 1 && !points[0].Equal(points[len(points)-1]) {
		points = append(append([]Point(nil), points...), points[0])
	}
	lines := ParallelGeometryLines(PolylineToGeometryLines(points), distance, side)
	if len(lines) == 0 {
		return nil
	}
	out := make([]Point, 0, len(lines)+1)
	for _, l := range lines {
		out = append(out, l.Start())
	}
	if closed {
		return append(out, out[0])
	}
	return append(out, lines[len(lines)-1].End())
}

// BoldGeometryLines grows the filled area of an outline made of closed loops
// by distance. The fill side is taken from the loop with the largest area,
// as outlines wind their outer contours and holes in opposite directions
// with the fill on the same side of travel; every loop is then offset away
// from the fill, so outer contours grow and holes shrink.
func BoldGeometryLines(loops [][]GeometryLine, distance float64) [][]GeometryLine {
	var largest float64
	for _, loop := range loops {
		a := PolygonSignedArea(GeometryLinesToPoints(loop, 5, 16))
		if math.Abs(a) > math.Abs(largest) {
			largest = a
		}
	}
	// a positive area means the interior is on the positive side
	grow := NegativeSide
	if largest < 0 {
		grow = PositiveSide
	}
	out := make([][]GeometryLine, 0, len(loops))
	for _, loop := range loops {
		if p := ParallelGeometryLines(loop, distance, grow); len(p) > 0 {
			out = append(out, p)
		}
	}
	return out
}
