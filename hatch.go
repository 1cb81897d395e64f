package geoline

import (
	"cmp"
	"math"
	"slices"
)

// DefaultHatchMaxSteps is the default step allowance of a hatch walk, per
// line taking part in it. The budget of a walk is MaxSteps times the number
// of lines in range, not a fixed number of steps.
const DefaultHatchMaxSteps = 10

// HatchOptions tunes hatch tracing. Zero fields select the defaults.
type HatchOptions struct {
	// MaxSteps bounds the number of junctions a single walk may pass,
	// as a multiple of the number of lines in range.
	MaxSteps int
	// AngleStep is the sampling step in degrees used when testing
	// containment against arcs.
	AngleStep float64
	// Segments is the number of samples per Bézier used when testing
	// containment.
	Segments int
}

func (o HatchOptions) withDefaults() HatchOptions {
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultHatchMaxSteps
	}
	if o.AngleStep <= 0 {
		o.AngleStep = 5
	}
	if o.Segments <= 0 {
		o.Segments = 16
	}
	return o
}

func (o HatchOptions) polygon(lines []GeometryLine) []Point {
	return GeometryLinesToPoints(lines, o.AngleStep, o.Segments)
}

// Hatch is a region bounded by a closed border, minus its holes.
type Hatch struct {
	Border []GeometryLine
	Holes  [][]GeometryLine
}

// Loops returns the border followed by the holes.
func (h Hatch) Loops() [][]GeometryLine {
	return append([][]GeometryLine{h.Border}, h.Holes...)
}

// Contains reports whether pt lies inside the border and outside every hole.
func (h Hatch) Contains(pt Point, opts HatchOptions) bool {
	opts = opts.withDefaults()
	if !PointInPolygon(pt, opts.polygon(h.Border)) {
		return false
	}
	for _, hole := range h.Holes {
		if PointInPolygon(pt, opts.polygon(hole)) {
			return false
		}
	}
	return true
}

// FindHatch finds the region around pos, like a bucket fill would, together
// with its holes.
func FindHatch(pos Point, bounding Rect, index SpatialIndex, opts HatchOptions) (Hatch, bool) {
	border, ok := HatchByPosition(pos, bounding, index, opts)
	if !ok {
		return Hatch{}, false
	}
	return Hatch{Border: border, Holes: HatchHoles(border, index, opts)}, true
}

// HatchByPosition finds the closed loop of lines that most tightly encloses
// pos. The lines are the outlines of the shapes the index returns for
// bounding.
//
// A ray is cast from pos to the right edge of bounding. Starting from each
// line it crosses, nearest first, the loop is walked with pos on its left,
// turning as far left as possible at every junction. The first loop that
// closes and contains pos is returned, starting and ending on the ray.
func HatchByPosition(pos Point, bounding Rect, index SpatialIndex, opts HatchOptions) ([]GeometryLine, bool) {
	opts = opts.withDefaults()
	if !bounding.Contains(pos) {
		return nil, false
	}
	ray := Line{pos, Pt(bounding.X1, pos.Y)}
	if IsDegenerate(ray) {
		return nil, false
	}
	g := newHatchGraph(index.Query(bounding))

	type candidate struct {
		line int
		t    float64
		dist float64
	}
	var cands []candidate
	for i, l := range g.lines {
		for _, p := range Intersect(ray, l, false) {
			cands = append(cands, candidate{i, clampParam(ParamAtPoint(l, p)), p.X - pos.X})
		}
	}
	slices.SortStableFunc(cands, func(a, b candidate) int { return cmp.Compare(a.dist, b.dist) })

	for _, c := range cands {
		l := g.lines[c.line]
		side := l.Tangent(c.t).Cross(pos.Sub(l.Eval(c.t)))
		if IsZero(side) {
			continue
		}
		loop, _, ok := g.walk(c.line, c.t, side > 0, opts.MaxSteps*len(g.lines))
		if !ok {
			Logger().Debug("hatch candidate did not close", "line", c.line, "at", l.Eval(c.t))
			continue
		}
		if !PointInPolygon(pos, opts.polygon(loop)) {
			Logger().Debug("hatch candidate does not enclose position", "line", c.line, "pos", pos)
			continue
		}
		return loop, true
	}
	return nil, false
}

// HatchHoles finds the loops inside border that cut holes into the region it
// encloses. Lines of border itself are never part of a hole, and lines
// inside an already found hole start no further hole.
func HatchHoles(border []GeometryLine, index SpatialIndex, opts HatchOptions) [][]GeometryLine {
	if len(border) == 0 {
		return nil
	}
	opts = opts.withDefaults()
	g := newHatchGraph(index.Query(BoundingBoxOf(border)))
	outline := opts.polygon(border)
	onBorder := func(l GeometryLine) bool {
		m := l.Eval(0.5)
		for _, b := range border {
			if PointIsOnGeometryLine(m, b) {
				return true
			}
		}
		return false
	}
	inHole := func(pt Point, polys [][]Point) bool {
		for _, p := range polys {
			if PointInPolygon(pt, p) {
				return true
			}
		}
		return false
	}

	var holes [][]GeometryLine
	var polys [][]Point
	used := make([]bool, len(g.lines))
	for i, l := range g.lines {
		if used[i] || onBorder(l) {
			continue
		}
		mid := l.Eval(0.5)
		if !PointInPolygon(l.Start(), outline) || !PointInPolygon(mid, outline) || inHole(mid, polys) {
			continue
		}
	walks:
		for _, forward := range [...]bool{true, false} {
			loop, lines, ok := g.walk(i, 0.5, forward, opts.MaxSteps*len(g.lines))
			if !ok {
				continue
			}
			// walking with the surrounding region on the left goes clockwise
			// around a hole
			poly := opts.polygon(loop)
			if PolygonSignedArea(poly) >= 0 {
				continue
			}
			for _, j := range lines {
				if onBorder(g.lines[j]) {
					continue walks
				}
			}
			for _, p := range poly {
				if !PointInPolygon(p, outline) {
					continue walks
				}
			}
			for _, j := range lines {
				used[j] = true
			}
			holes = append(holes, loop)
			polys = append(polys, poly)
			break
		}
	}
	return holes
}

type junction struct {
	// t is the parameter on the line owning the junction, u the one on
	// the other line.
	t, u  float64
	other int
	at    Point
}

type hatchGraph struct {
	lines     []GeometryLine
	junctions [][]junction
	done      []bool
}

// junctionTolerance is the distance within which points are the same
// junction.
const junctionTolerance = 1e-6

func newHatchGraph(shapes []HatchGeometries) *hatchGraph {
	g := &hatchGraph{}
	seen := make(map[string]bool)
	for _, s := range shapes {
		if s.ID != "" {
			if seen[s.ID] {
				continue
			}
			seen[s.ID] = true
		}
		for _, l := range s.Lines {
			if IsDegenerate(l) {
				continue
			}
			if l.Start().Equal(l.End()) {
				// a closed line has no end to walk from; split it
				g.lines = append(g.lines, Subsegment(l, 0, 0.5), Subsegment(l, 0.5, 1))
				continue
			}
			g.lines = append(g.lines, l)
		}
	}
	g.junctions = make([][]junction, len(g.lines))
	g.done = make([]bool, len(g.lines))
	return g
}

func clampParam(t float64) float64 { return min(max(t, 0), 1) }

func (g *hatchGraph) junctionsOf(i int) []junction {
	if g.done[i] {
		return g.junctions[i]
	}
	li := g.lines[i]
	var out []junction
	for k, lk := range g.lines {
		if k == i {
			continue
		}
		pts := Intersect(li, lk, false)
		for _, p := range [...]Point{lk.Start(), lk.End()} {
			if PointIsOnGeometryLine(p, li) {
				pts = append(pts, p)
			}
		}
		for _, p := range [...]Point{li.Start(), li.End()} {
			if PointIsOnGeometryLine(p, lk) {
				pts = append(pts, p)
			}
		}
	points:
		for _, p := range pts {
			for _, j := range out {
				if j.other == k && j.at.Distance(p) < junctionTolerance {
					continue points
				}
			}
			out = append(out, junction{
				t:     clampParam(ParamAtPoint(li, p)),
				u:     clampParam(ParamAtPoint(lk, p)),
				other: k,
				at:    p,
			})
		}
	}
	g.junctions[i], g.done[i] = out, true
	return out
}

// direction returns the direction of travel along line i at t.
func (g *hatchGraph) direction(i int, t float64, forward bool) Vec2 {
	v := g.lines[i].Tangent(t)
	if !forward {
		v = v.Negate()
	}
	return v
}

// piece returns line i from a to b, in that direction.
func (g *hatchGraph) piece(i int, a, b float64) GeometryLine {
	if a <= b {
		return Subsegment(g.lines[i], a, b)
	}
	return Reverse(Subsegment(g.lines[i], b, a))
}

// walk follows lines from parameter t0 of line start, in the given
// direction, until it returns to its starting point. At every junction it
// takes the outgoing direction with the smallest clockwise angle from the
// direction it came from, keeping the region on its left. It returns the
// pieces walked and the indices of the lines they belong to.
func (g *hatchGraph) walk(start int, t0 float64, forward bool, budget int) ([]GeometryLine, []int, bool) {
	const paramEps = 1e-9
	var loop []GeometryLine
	var used []int
	cur, t, fwd := start, t0, forward
	ahead := func(from, to float64) float64 {
		if fwd {
			return to - from
		}
		return from - to
	}
	for step := 0; step < budget; step++ {
		best, bestAhead := -1, math.Inf(1)
		js := g.junctionsOf(cur)
		for j, jn := range js {
			if a := ahead(t, jn.t); a > paramEps && a < bestAhead {
				best, bestAhead = j, a
			}
		}
		if cur == start && fwd == forward && step > 0 {
			if a := ahead(t, t0); a > -paramEps && a <= bestAhead+paramEps {
				if a > paramEps {
					loop = append(loop, g.piece(cur, t, t0))
					used = append(used, cur)
				}
				return loop, used, true
			}
		}
		if best < 0 {
			return loop, used, false
		}
		end := js[best].t
		loop = append(loop, g.piece(cur, t, end))
		used = append(used, cur)

		at := g.lines[cur].Eval(end)
		back := g.direction(cur, end, fwd).Negate().Angle()
		next, nextU, nextFwd := -1, 0.0, false
		bestAngle := math.Inf(1)
		consider := func(k int, u float64) {
			for _, dir := range [...]bool{true, false} {
				if (dir && u >= 1-paramEps) || (!dir && u <= paramEps) {
					continue
				}
				if k == cur && dir != fwd {
					continue
				}
				cw := math.Mod(back-g.direction(k, u, dir).Angle(), 2*math.Pi)
				if cw < 0 {
					cw += 2 * math.Pi
				}
				if cw < paramEps || cw > 2*math.Pi-paramEps {
					// runs back along where the walk came from
					continue
				}
				if cw < bestAngle {
					next, nextU, nextFwd, bestAngle = k, u, dir, cw
				}
			}
		}
		consider(cur, end)
		for _, jn := range js {
			if jn.at.Distance(at) < junctionTolerance {
				consider(jn.other, jn.u)
			}
		}
		if next < 0 {
			return loop, used, false
		}
		cur, t, fwd = next, nextU, nextFwd
	}
	Logger().Warn("hatch walk exceeded step limit",
		"start", g.lines[start].Eval(t0), "steps", budget, "pieces", len(loop))
	return loop, used, false
}
