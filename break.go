package geoline

import "slices"

// BreakPolylineToPolylines splits a polyline at every break point that lies
// on one of its segments. Break points on the same segment are applied in
// order of their distance from the segment's start. Pieces share their
// break point: each piece ends where the next one starts.
//
// If the polyline is closed and no break point sits on its first point,
// the piece that wraps around the seam is merged into the first piece.
func BreakPolylineToPolylines(points []Point, breakPoints []Point) [][]Point {
	if len(points) < 2 {
		return nil
	}
	breakPoints = dedupePoints(slices.Clone(breakPoints))
	closed := len(points) > 2 && points[0].Equal(points[len(points)-1])

	var out [][]Point
	current := []Point{points[0]}
	emit := func() {
		if len(current) >= 2 {
			out = append(out, current)
		}
		current = []Point{current[len(current)-1]}
	}
	seamBroken := false
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		var onSegment []Point
		for _, p := range breakPoints {
			if PointIsOnLine(p, a, b) && PointIsOnLineSegment(p, a, b) {
				onSegment = append(onSegment, p)
			}
		}
		slices.SortFunc(onSegment, func(p, q Point) int {
			return cmpFloat(p.DistanceSquared(a), q.DistanceSquared(a))
		})
		for _, p := range onSegment {
			if closed && p.Equal(points[0]) {
				seamBroken = true
			}
			if !p.Equal(current[len(current)-1]) {
				current = append(current, p)
			}
			emit()
		}
		if !b.Equal(current[len(current)-1]) {
			current = append(current, b)
		}
	}
	if len(current) >= 2 {
		out = append(out, current)
	}
	if closed && !seamBroken && len(out) > 1 {
		last := out[len(out)-1]
		merged := append(slices.Clone(last[:len(last)-1]), out[0]...)
		out = append([][]Point{merged}, out[1:len(out)-1]...)
	}
	return out
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// BreakGeometryLines splits a chain of lines at every break point that lies
// on one of them, in the manner of [BreakPolylineToPolylines].
func BreakGeometryLines(lines []GeometryLine, breakPoints []Point) [][]GeometryLine {
	if len(lines) == 0 {
		return nil
	}
	breakPoints = dedupePoints(slices.Clone(breakPoints))
	closed := IsClosed(lines)
	seam := lines[0].Start()

	var out [][]GeometryLine
	var current []GeometryLine
	emit := func() {
		if len(current) > 0 {
			out = append(out, current)
		}
		current = nil
	}
	seamBroken := false
	for _, l := range lines {
		var ts []float64
		for _, p := range breakPoints {
			if !PointIsOnGeometryLine(p, l) {
				continue
			}
			if closed && p.Equal(seam) {
				seamBroken = true
			}
			ts = append(ts, ParamAtPoint(l, p))
		}
		slices.Sort(ts)
		prev := 0.0
		for _, t := range ts {
			if IsZero(t - prev) {
				if IsZero(t) {
					// break at the line's start
					emit()
				}
				continue
			}
			if Equals(t, 1) {
				current = append(current, Subsegment(l, prev, 1))
				prev = 1
				emit()
				continue
			}
			current = append(current, Subsegment(l, prev, t))
			emit()
			prev = t
		}
		if !Equals(prev, 1) {
			current = append(current, Subsegment(l, prev, 1))
		}
	}
	emit()
	if closed && !seamBroken && len(out) > 1 {
		merged := append(out[len(out)-1], out[0]...)
		out = append([][]GeometryLine{merged}, out[1:len(out)-1]...)
	}
	return out
}
