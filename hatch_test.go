package geoline

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func squareShape(id string, x0, y0, x1, y1 float64) HatchGeometries {
	return HatchGeometries{
		ID:    id,
		Lines: PolylineToGeometryLines([]Point{Pt(x0, y0), Pt(x1, y0), Pt(x1, y1), Pt(x0, y1), Pt(x0, y0)}),
	}
}

func loopArea(lines []GeometryLine) float64 {
	return PolygonSignedArea(GeometryLinesToPoints(lines, 1, 16))
}

var hatchBounds = Rect{-50, -50, 50, 50}

func TestHatchSquare(t *testing.T) {
	idx := LinearIndex{squareShape("a", 0, 0, 10, 10)}
	got, ok := HatchByPosition(Pt(5, 5), hatchBounds, idx, HatchOptions{})
	if !ok {
		t.Fatal("no hatch found")
	}
	if !IsClosed(got) {
		t.Error("hatch is not closed")
	}
	if a := loopArea(got); !Equals(a, 100) {
		t.Errorf("got area %v, want 100", a)
	}
	// starts and ends on the ray
	assertNear(t, got[0].Start(), Pt(10, 5), 1e-9)

	if _, ok := HatchByPosition(Pt(20, 5), hatchBounds, idx, HatchOptions{}); ok {
		t.Error("found hatch outside of the square")
	}
	if _, ok := HatchByPosition(Pt(60, 5), hatchBounds, idx, HatchOptions{}); ok {
		t.Error("found hatch outside of the bounds")
	}
}

func TestHatchCircle(t *testing.T) {
	circle := Arc{Circle: Circle{Center: Pt(1, 1), Radius: 4}, AngleRange: AngleRange{StartAngle: 0, EndAngle: 360}}
	idx := LinearIndex{{ID: "c", Lines: []GeometryLine{circle}}}
	got, ok := HatchByPosition(Pt(1, 1), hatchBounds, idx, HatchOptions{})
	if !ok {
		t.Fatal("no hatch found")
	}
	if len(got) != 2 {
		t.Fatalf("got %d lines, want the two halves of the circle", len(got))
	}
	if a := loopArea(got); math.Abs(a-16*math.Pi) > 0.01 {
		t.Errorf("got area %v, want %v", a, 16*math.Pi)
	}
}

func TestHatchNested(t *testing.T) {
	idx := LinearIndex{
		squareShape("outer", 0, 0, 10, 10),
		squareShape("inner", 3, 3, 7, 7),
	}

	h, ok := FindHatch(Pt(1, 5), hatchBounds, idx, HatchOptions{})
	if !ok {
		t.Fatal("no hatch found")
	}
	if a := loopArea(h.Border); !Equals(a, 100) {
		t.Errorf("got border area %v, want 100", a)
	}
	if len(h.Holes) != 1 {
		t.Fatalf("got %d holes, want 1", len(h.Holes))
	}
	if a := loopArea(h.Holes[0]); !Equals(a, -16) {
		t.Errorf("got hole area %v, want -16", a)
	}
	if len(h.Loops()) != 2 {
		t.Errorf("got %d loops, want 2", len(h.Loops()))
	}
	for _, tt := range []struct {
		pt   Point
		want bool
	}{
		{Pt(1, 5), true},
		{Pt(8, 8), true},
		{Pt(5, 5), false},
		{Pt(12, 5), false},
	} {
		if got := h.Contains(tt.pt, HatchOptions{}); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}

	// inside the inner square there is no hole
	h, ok = FindHatch(Pt(5, 5), hatchBounds, idx, HatchOptions{})
	if !ok {
		t.Fatal("no hatch found inside the inner square")
	}
	if a := loopArea(h.Border); !Equals(a, 16) {
		t.Errorf("got border area %v, want 16", a)
	}
	if len(h.Holes) != 0 {
		t.Errorf("got %d holes, want none", len(h.Holes))
	}
}

func TestHatchSharedEdge(t *testing.T) {
	idx := LinearIndex{
		squareShape("left", 0, 0, 10, 10),
		squareShape("right", 10, 0, 20, 10),
	}
	for _, tt := range []struct {
		pos    Point
		center Point
	}{
		{Pt(5, 5), Pt(5, 5)},
		{Pt(15, 5), Pt(15, 5)},
	} {
		got, ok := HatchByPosition(tt.pos, hatchBounds, idx, HatchOptions{})
		if !ok {
			t.Fatalf("no hatch around %v", tt.pos)
		}
		if a := loopArea(got); !Equals(a, 100) {
			t.Errorf("%v: got area %v, want 100", tt.pos, a)
		}
		c := BoundingBoxOf(got).Center()
		assertNear(t, c, tt.center, 1e-9)
	}
}

func TestHatchCrossingLines(t *testing.T) {
	// a square cut by a diagonal through two corners, drawn as separate
	// shapes
	idx := LinearIndex{
		squareShape("sq", 0, 0, 10, 10),
		{ID: "diag", Lines: []GeometryLine{Line{Pt(-5, -5), Pt(15, 15)}}},
	}
	got, ok := HatchByPosition(Pt(7, 3), hatchBounds, idx, HatchOptions{})
	if !ok {
		t.Fatal("no hatch found")
	}
	if a := loopArea(got); !Equals(a, 50) {
		t.Errorf("got area %v, want 50", a)
	}
	// duplicate shapes are ignored
	idx = append(idx, idx[0])
	if got2, ok := HatchByPosition(Pt(7, 3), hatchBounds, idx, HatchOptions{}); !ok || len(got2) != len(got) {
		t.Errorf("duplicate shape changed the hatch")
	}
}

func TestHatchStepLimit(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	idx := LinearIndex{squareShape("a", 0, 0, 10, 10)}
	if _, ok := HatchByPosition(Pt(5, 5), hatchBounds, idx, HatchOptions{MaxSteps: 1}); ok {
		t.Error("walk completed despite the step limit")
	}
	if !strings.Contains(buf.String(), "hatch walk exceeded step limit") {
		t.Errorf("missing warning in log output %q", buf.String())
	}

	buf.Reset()
	if _, ok := HatchByPosition(Pt(5, 5), hatchBounds, idx, HatchOptions{}); !ok {
		t.Error("default step limit too small for a square")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

func TestHatchStepsPerLine(t *testing.T) {
	const n = 24
	pts := make([]Point, n+1)
	for i := range pts {
		pts[i] = Pt(0, 0).Translate(VecFromAngle(2 * math.Pi * float64(i%n) / n).Mul(20))
	}
	idx := LinearIndex{{ID: "polygon", Lines: PolylineToGeometryLines(pts)}}
	// even two steps per line are enough to go around
	for _, steps := range []int{0, 2} {
		got, ok := HatchByPosition(Pt(1, 1), hatchBounds, idx, HatchOptions{MaxSteps: steps})
		if !ok {
			t.Fatalf("MaxSteps %d: walk around %d lines did not close", steps, n)
		}
		// the ray splits one side in two
		if len(got) != n+1 {
			t.Errorf("MaxSteps %d: got %d pieces, want %d", steps, len(got), n+1)
		}
		if !IsClosed(got) {
			t.Errorf("MaxSteps %d: hatch is not closed", steps)
		}
	}
}

func TestHatchHolesExcludeBorder(t *testing.T) {
	border := squareShape("b", 0, 0, 10, 10)
	idx := LinearIndex{
		border,
		squareShape("h1", 1, 1, 3, 3),
		squareShape("h2", 6, 6, 9, 9),
		squareShape("outside", 20, 20, 30, 30),
	}
	holes := HatchHoles(border.Lines, idx, HatchOptions{})
	if len(holes) != 2 {
		t.Fatalf("got %d holes, want 2", len(holes))
	}
	var areas []float64
	for _, h := range holes {
		areas = append(areas, loopArea(h))
	}
	diff(t, []float64{-4, -9}, areas, approx)

	if got := HatchHoles(nil, idx, HatchOptions{}); got != nil {
		t.Errorf("got holes %v for no border", got)
	}
}
