package geoline

import (
	"iter"
	"math"

	"seehuhn.de/go/pdf/graphics"
)

// StrokeStyle describes how a polyline is stroked.
type StrokeStyle struct {
	// Width of the stroke.
	Width float64
	// Style for capping the ends of an open polyline.
	Cap graphics.LineCapStyle
	// Style for connecting segments.
	Join graphics.LineJoinStyle
	// Limit for miter joins, as the ratio of miter length to stroke
	// width. Sharper corners are beveled. Zero means no limit.
	MiterLimit float64
	// Closed strokes treat every vertex as a join, even if the first and
	// last point differ.
	Closed bool
	// Angular step of round caps and joins, in degrees.
	RoundStep float64
}

// DefaultMiterLimit matches PDF and PostScript.
const DefaultMiterLimit = 10.0

var DefaultStrokeStyle = StrokeStyle{
	Width:      1.0,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: DefaultMiterLimit,
	RoundStep:  15,
}

func (s StrokeStyle) WithWidth(width float64) StrokeStyle           { s.Width = width; return s }
func (s StrokeStyle) WithCap(c graphics.LineCapStyle) StrokeStyle   { s.Cap = c; return s }
func (s StrokeStyle) WithJoin(j graphics.LineJoinStyle) StrokeStyle { s.Join = j; return s }
func (s StrokeStyle) WithMiterLimit(limit float64) StrokeStyle      { s.MiterLimit = limit; return s }
func (s StrokeStyle) WithClosed(closed bool) StrokeStyle            { s.Closed = closed; return s }
func (s StrokeStyle) WithRoundStep(deg float64) StrokeStyle         { s.RoundStep = deg; return s }

// Triangles is a triangle strip: every three consecutive vertices form a
// triangle. Points holds the interleaved x and y coordinates of the
// vertices, and Base holds, for each vertex, the point of the centerline it
// was derived from.
type Triangles struct {
	Points []float64
	Base   []float64
}

// Len returns the number of vertices.
func (t Triangles) Len() int { return len(t.Points) / 2 }

// Vertex returns the i-th vertex.
func (t Triangles) Vertex(i int) Point { return Pt(t.Points[2*i], t.Points[2*i+1]) }

// BaseOf returns the centerline point of the i-th vertex.
func (t Triangles) BaseOf(i int) Point { return Pt(t.Base[2*i], t.Base[2*i+1]) }

// All yields the triangles of the strip, skipping those without area.
func (t Triangles) All() iter.Seq[[3]Point] {
	return func(yield func([3]Point) bool) {
		for i := 2; i < t.Len(); i++ {
			a, b, c := t.Vertex(i-2), t.Vertex(i-1), t.Vertex(i)
			if IsZero(b.Sub(a).Cross(c.Sub(a))) {
				continue
			}
			if !yield([3]Point{a, b, c}) {
				return
			}
		}
	}
}

type stripBuilder struct {
	out Triangles
}

func (b *stripBuilder) vertex(p, base Point) {
	b.out.Points = append(b.out.Points, p.X, p.Y)
	b.out.Base = append(b.out.Base, base.X, base.Y)
}

// pair emits the vertices on the positive and negative side of base.
func (b *stripBuilder) pair(pos, neg, base Point) {
	b.vertex(pos, base)
	b.vertex(neg, base)
}

// PolylineTriangles converts a stroked polyline into a triangle strip.
//
// Open polylines get caps at both ends. Closed polylines, either because
// style.Closed is set or because the first point equals the last, get joins
// at every vertex instead.
func PolylineTriangles(points []Point, style StrokeStyle) Triangles {
	var pts []Point
	for _, p := range points {
		if len(pts) == 0 || !pts[len(pts)-1].Equal(p) {
			pts = append(pts, p)
		}
	}
	closed := style.Closed
	if len(pts) > 2 && pts[0].Equal(pts[len(pts)-1]) {
		closed = true
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 || style.Width <= 0 {
		return Triangles{}
	}
	r := style.Width / 2
	step := style.RoundStep
	if step <= 0 {
		step = DefaultStrokeStyle.RoundStep
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	dirs := make([]Vec2, segs)
	for i := range segs {
		dirs[i] = pts[(i+1)%n].Sub(pts[i]).Normalize()
	}

	var b stripBuilder
	if closed {
		for i := range n {
			b.join(pts[i], dirs[(i+segs-1)%segs], dirs[i], r, style, step)
		}
		// back to the first vertex
		b.join(pts[0], dirs[segs-1], dirs[0], r, style, step)
		return b.out
	}

	b.startCap(pts[0], dirs[0], r, style.Cap, step)
	for i := 1; i < n-1; i++ {
		b.join(pts[i], dirs[i-1], dirs[i], r, style, step)
	}
	b.endCap(pts[n-1], dirs[segs-1], r, style.Cap, step)
	return b.out
}

// semicircle returns the points of a half circle of radius r around p,
// starting at angle a0 and sweeping by sweep radians, with an even number of
// steps.
func semicircle(p Point, r, a0, sweep, step float64) []Point {
	n := int(math.Ceil(180 / step))
	n += n % 2
	n = max(n, 2)
	out := make([]Point, n+1)
	for k := range n + 1 {
		out[k] = p.Translate(VecFromAngle(a0 + sweep*float64(k)/float64(n)).Mul(r))
	}
	return out
}

func (b *stripBuilder) startCap(p Point, t Vec2, r float64, c graphics.LineCapStyle, step float64) {
	nrm := t.Normal()
	switch c {
	case graphics.LineCapSquare:
		q := p.Translate(t.Mul(-r))
		b.pair(q.Translate(nrm.Mul(r)), q.Translate(nrm.Mul(-r)), p)
	case graphics.LineCapRound:
		// from +N through -T to -N, zigzagging out from the tip so that
		// the strip ends on the pair at p
		arc := semicircle(p, r, nrm.Angle(), math.Pi, step)
		m := len(arc) / 2
		b.vertex(arc[m], p)
		for j := 1; j <= m; j++ {
			b.vertex(arc[m-j], p)
			b.vertex(arc[m+j], p)
		}
	default:
		b.pair(p.Translate(nrm.Mul(r)), p.Translate(nrm.Mul(-r)), p)
	}
}

func (b *stripBuilder) endCap(p Point, t Vec2, r float64, c graphics.LineCapStyle, step float64) {
	nrm := t.Normal()
	switch c {
	case graphics.LineCapSquare:
		q := p.Translate(t.Mul(r))
		b.pair(q.Translate(nrm.Mul(r)), q.Translate(nrm.Mul(-r)), p)
	case graphics.LineCapRound:
		// from +N through +T to -N, zigzagging in towards the tip
		arc := semicircle(p, r, nrm.Angle(), -math.Pi, step)
		last := len(arc) - 1
		m := last / 2
		b.pair(arc[0], arc[last], p)
		for j := 1; j < m; j++ {
			b.vertex(arc[j], p)
			b.vertex(arc[last-j], p)
		}
		b.vertex(arc[m], p)
	default:
		b.pair(p.Translate(nrm.Mul(r)), p.Translate(nrm.Mul(-r)), p)
	}
}

// join emits the vertices where the segment with direction t1 meets the
// segment with direction t2 at p.
func (b *stripBuilder) join(p Point, t1, t2 Vec2, r float64, style StrokeStyle, step float64) {
	n1, n2 := t1.Normal(), t2.Normal()
	cross, dot := t1.Cross(t2), t1.Dot(t2)
	turn := math.Atan2(cross, dot)
	if turn == -math.Pi {
		turn = math.Pi
	}
	switch {
	case IsZero(turn):
		b.pair(p.Translate(n1.Mul(r)), p.Translate(n1.Mul(-r)), p)
		return
	case Equals(turn, math.Pi):
		b.pair(p.Translate(n1.Mul(r)), p.Translate(n1.Mul(-r)), p)
		b.pair(p.Translate(n2.Mul(r)), p.Translate(n2.Mul(-r)), p)
		return
	}

	// turning towards +N makes the positive side the inner one
	out := -1.0
	if turn < 0 {
		out = 1
	}
	bisector := n1.Add(n2).Mul(1 / (1 + dot))
	inner := p.Translate(bisector.Mul(-out * r))
	emit := func(outer Point) {
		if out > 0 {
			b.pair(outer, inner, p)
		} else {
			b.pair(inner, outer, p)
		}
	}
	o1 := p.Translate(n1.Mul(out * r))
	o2 := p.Translate(n2.Mul(out * r))

	switch style.Join {
	case graphics.LineJoinMiter:
		sinHalf := math.Sqrt((1 + dot) / 2)
		if style.MiterLimit <= 0 || sinHalf*style.MiterLimit >= 1 {
			emit(p.Translate(bisector.Mul(out * r)))
			return
		}
		emit(o1)
		emit(o2)
	case graphics.LineJoinRound:
		a0 := n1.Mul(out).Angle()
		k := max(int(math.Ceil(math.Abs(turn)/radians(step))), 1)
		for i := range k + 1 {
			emit(p.Translate(VecFromAngle(a0 + turn*float64(i)/float64(k)).Mul(r)))
		}
	default:
		emit(o1)
		emit(o2)
	}
}
