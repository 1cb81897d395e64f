package geoline

// PointInPolygon reports whether pt lies inside the polygon by the even-odd
// rule. The polygon may or may not repeat its first point at the end.
// Points on the border count as inside.
func PointInPolygon(pt Point, polygon []Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if PointIsOnLine(pt, a, b) && PointIsOnLineSegment(pt, a, b) {
			return true
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// PolygonSignedArea returns the signed area of the polygon by the shoelace
// formula. It is positive when the polygon winds from the positive x axis
// towards the positive y axis.
func PolygonSignedArea(polygon []Point) float64 {
	var a float64
	for i := range polygon {
		p, q := polygon[i], polygon[(i+1)%len(polygon)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
