package geoline

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestPathDataRoundTrip(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(1, 2))
	p.LineTo(Pt(3, 4))
	p.QuadTo(Pt(5, 6), Pt(7, 8))
	p.CubicTo(Pt(9, 10), Pt(11, 12), Pt(13, 14))
	p.ClosePath()

	d := p.PathData()
	want := [...]path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose}
	if len(d.Cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(d.Cmds), len(want))
	}
	for i, cmd := range d.Cmds {
		if cmd != want[i] {
			t.Errorf("command %d: got %v, want %v", i, cmd, want[i])
		}
	}
	if len(d.Coords) != 7 {
		t.Errorf("got %d coordinates, want 7", len(d.Coords))
	}
	diff(t, p, BezPathFromData(d))
}

func TestChainPathData(t *testing.T) {
	lines := []GeometryLine{
		Line{Pt(0, 0), Pt(10, 0)},
		Arc{Circle: Circle{Center: Pt(10, 5), Radius: 5}, AngleRange: AngleRange{StartAngle: -90, EndAngle: 90}},
		Line{Pt(10, 10), Pt(0, 0)},
	}
	d := ChainPath(lines, 0).PathData()
	if d.Cmds[0] != path.CmdMoveTo || d.Cmds[len(d.Cmds)-1] != path.CmdClose {
		t.Errorf("got commands %v", d.Cmds)
	}
	last := d.Coords[len(d.Coords)-1]
	if last != (vec.Vec2{X: 0, Y: 0}) {
		t.Errorf("path ends at %v", last)
	}
}

func TestInteropConversions(t *testing.T) {
	pt := Pt(1.5, -2)
	diff(t, vec.Vec2{X: 1.5, Y: -2}, pt.PDFVec())
	diff(t, pt, PointFromVec(pt.PDFVec()))

	r := Rect{1, 2, 3, 4}
	diff(t, rect.Rect{LLx: 1, LLy: 2, URx: 3, URy: 4}, r.PDFRect())
	diff(t, r, RectFromPDF(rect.Rect{LLx: 3, LLy: 4, URx: 1, URy: 2}))

	aff := Rotate(math.Pi / 3).ThenTranslate(Vec(2, 3))
	m := aff.Matrix()
	diff(t, matrix.Matrix{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}, m)
	diff(t, aff, AffineFromMatrix(m))
}
