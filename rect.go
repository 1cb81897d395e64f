package geoline

import "seehuhn.de/go/geom/rect"

// Rect is an axis aligned region given by two corners, (X0, Y0) being the
// minimum and (X1, Y1) the maximum corner.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring
// that width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// Start returns the minimum corner.
func (r Rect) Start() Point { return Point{r.X0, r.Y0} }

// End returns the maximum corner.
func (r Rect) End() Point { return Point{r.X1, r.Y1} }

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies inside r or on its border, within
// [Epsilon].
func (r Rect) Contains(pt Point) bool {
	return IsBetween(pt.X, r.X0, r.X1) && IsBetween(pt.Y, r.Y0, r.Y1)
}

// Overlaps reports whether r and o share at least one point.
func (r Rect) Overlaps(o Rect) bool {
	return LessOrEqual(r.X0, o.X1) && LessOrEqual(o.X0, r.X1) &&
		LessOrEqual(r.Y0, o.Y1) && LessOrEqual(o.Y0, r.Y1)
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// PDFRect converts r to the rectangle type of the PDF geometry packages.
func (r Rect) PDFRect() rect.Rect {
	return rect.Rect{LLx: r.X0, LLy: r.Y0, URx: r.X1, URy: r.Y1}
}

// RectFromPDF converts a PDF rectangle, normalizing its corners.
func RectFromPDF(r rect.Rect) Rect {
	return NewRectFromPoints(Pt(r.LLx, r.LLy), Pt(r.URx, r.URy))
}

// BoundingBoxOf returns the bounding box of a chain of lines.
func BoundingBoxOf(lines []GeometryLine) Rect {
	if len(lines) == 0 {
		return Rect{}
	}
	r := lines[0].BoundingBox()
	for _, l := range lines[1:] {
		r = r.Union(l.BoundingBox())
	}
	return r
}
