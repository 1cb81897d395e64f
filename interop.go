package geoline

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PDFVec returns pt as a vector of the PDF geometry packages.
func (pt Point) PDFVec() vec.Vec2 { return vec.Vec2{X: pt.X, Y: pt.Y} }

// PointFromVec converts a vector of the PDF geometry packages.
func PointFromVec(v vec.Vec2) Point { return Point{v.X, v.Y} }

// PathData converts p for use with the PDF geometry and rendering packages.
func (p BezPath) PathData() *path.Data {
	d := &path.Data{}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			d.MoveTo(el.P0.PDFVec())
		case LineToKind:
			d.LineTo(el.P0.PDFVec())
		case QuadToKind:
			d.QuadTo(el.P0.PDFVec(), el.P1.PDFVec())
		case CubicToKind:
			d.CubeTo(el.P0.PDFVec(), el.P1.PDFVec(), el.P2.PDFVec())
		case ClosePathKind:
			d.Close()
		}
	}
	return d
}

// BezPathFromData converts path data of the PDF geometry packages.
func BezPathFromData(d *path.Data) BezPath {
	var p BezPath
	i := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(PointFromVec(d.Coords[i]))
			i++
		case path.CmdLineTo:
			p.LineTo(PointFromVec(d.Coords[i]))
			i++
		case path.CmdQuadTo:
			p.QuadTo(PointFromVec(d.Coords[i]), PointFromVec(d.Coords[i+1]))
			i += 2
		case path.CmdCubeTo:
			p.CubicTo(PointFromVec(d.Coords[i]), PointFromVec(d.Coords[i+1]), PointFromVec(d.Coords[i+2]))
			i += 3
		case path.CmdClose:
			p.ClosePath()
		}
	}
	return p
}

// Matrix returns aff as a PDF transformation matrix. Both use the same
// coefficient order.
func (aff Affine) Matrix() matrix.Matrix {
	return matrix.Matrix{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// AffineFromMatrix converts a PDF transformation matrix.
func AffineFromMatrix(m matrix.Matrix) Affine {
	return Affine{m[0], m[1], m[2], m[3], m[4], m[5]}
}
